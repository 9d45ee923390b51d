package growth

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/sprawl/pkg/errors"
	"github.com/matzehuels/sprawl/pkg/grid"
	"github.com/matzehuels/sprawl/pkg/observability"
	"github.com/matzehuels/sprawl/pkg/selector"
)

// DefaultSteps is the number of growth steps used when none is configured.
const DefaultSteps = 128

// State is the lifecycle state of an Engine.
type State int

const (
	// StateGrowing means at least one step remains.
	StateGrowing State = iota
	// StateDone means every configured step has run.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateGrowing:
		return "growing"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Options configures an Engine.
type Options struct {
	// Steps is the number of cells to annex. Must be >= 0.
	Steps int

	// Seed seeds the default uniform selector. Zero picks a random seed.
	// Ignored when Selector is set.
	Seed uint64

	// Selector overrides the default uniform selector.
	Selector selector.Selector

	// Verify makes Run check the finished shape: n+1 cells after n steps,
	// all edge-connected to the origin.
	Verify bool
}

// Engine grows a single shape. It is not safe for concurrent use.
type Engine struct {
	occupied *grid.Set
	selector selector.Selector
	steps    int
	done     int
	seed     uint64
	frontier int
	verify   bool
}

// New creates an engine whose shape holds only the origin.
func New(opts Options) (*Engine, error) {
	if opts.Steps < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "steps must be >= 0, got %d", opts.Steps)
	}
	e := &Engine{
		occupied: grid.NewSet(grid.Origin),
		selector: opts.Selector,
		steps:    opts.Steps,
		seed:     opts.Seed,
		verify:   opts.Verify,
	}
	if e.selector == nil {
		if e.seed == 0 {
			e.seed = rand.Uint64()
		}
		e.selector = selector.NewUniform(e.seed)
	}
	return e, nil
}

// State reports whether the engine still has steps to run.
func (e *Engine) State() State {
	if e.done >= e.steps {
		return StateDone
	}
	return StateGrowing
}

// Completed returns the number of steps run so far.
func (e *Engine) Completed() int { return e.done }

// Seed returns the seed of the default selector, or the configured seed when
// a custom selector was supplied.
func (e *Engine) Seed() uint64 { return e.seed }

// LastFrontier returns the frontier size seen by the most recent step.
func (e *Engine) LastFrontier() int { return e.frontier }

// Occupied returns a copy of the current shape.
func (e *Engine) Occupied() *grid.Set { return e.occupied.Clone() }

// Step annexes one frontier cell and returns it.
func (e *Engine) Step(ctx context.Context) (grid.Coord, error) {
	if e.State() == StateDone {
		return grid.Coord{}, errors.New(errors.ErrCodeInternal, "step after %d of %d steps", e.done, e.steps)
	}

	frontier := grid.Frontier(e.occupied)
	if frontier.IsEmpty() {
		return grid.Coord{}, errors.New(errors.ErrCodeEmptyFrontier, "no frontier around %d cells", e.occupied.Len())
	}

	cell := e.selector.Select(frontier.Cells())
	if !frontier.Contains(cell) {
		return grid.Coord{}, errors.New(errors.ErrCodeInternal, "selected cell %v is not on the frontier", cell)
	}
	e.occupied.Insert(cell)
	e.done++
	e.frontier = frontier.Len()

	observability.Growth().OnStep(ctx, e.done, cell, e.frontier)
	return cell, nil
}

// Run steps until the engine is done and returns the final shape.
func (e *Engine) Run(ctx context.Context) (*grid.Set, error) {
	hooks := observability.Growth()
	start := time.Now()
	hooks.OnGrowStart(ctx, e.steps-e.done)

	for e.State() == StateGrowing {
		if _, err := e.Step(ctx); err != nil {
			hooks.OnGrowComplete(ctx, e.occupied.Len(), time.Since(start), err)
			return nil, err
		}
	}

	if e.verify {
		if err := e.check(); err != nil {
			hooks.OnGrowComplete(ctx, e.occupied.Len(), time.Since(start), err)
			return nil, err
		}
	}

	hooks.OnGrowComplete(ctx, e.occupied.Len(), time.Since(start), nil)
	return e.Occupied(), nil
}

func (e *Engine) check() error {
	if n := e.occupied.Len(); n != e.done+1 {
		return errors.New(errors.ErrCodeInternal, "%d cells after %d steps", n, e.done)
	}
	if !grid.Connected(e.occupied, grid.Origin) {
		return errors.New(errors.ErrCodeInternal, "shape of %d cells is not connected to the origin", e.occupied.Len())
	}
	return nil
}

// Grow is a convenience wrapper that builds an engine from opts and runs it.
func Grow(ctx context.Context, opts Options) (*grid.Set, error) {
	e, err := New(opts)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx)
}
