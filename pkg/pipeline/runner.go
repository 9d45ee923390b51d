package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sprawl/pkg/grid"
	"github.com/matzehuels/sprawl/pkg/growth"
	"github.com/matzehuels/sprawl/pkg/render"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results, so one Runner can serve several runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute grows a shape and renders it to w.
func (r *Runner) Execute(ctx context.Context, w io.Writer, opts Options) (*Result, error) {
	opts.setDefaults()
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	// Stage 1: Grow
	growStart := time.Now()
	verify := logger.GetLevel() <= log.DebugLevel
	engine, err := growth.New(growth.Options{
		Steps:    opts.Steps,
		Seed:     opts.Seed,
		Selector: opts.Selector,
		Verify:   verify,
	})
	if err != nil {
		return nil, fmt.Errorf("grow: %w", err)
	}
	shape, err := engine.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("grow: %w", err)
	}

	box, err := grid.Bounds(shape)
	if err != nil {
		return nil, fmt.Errorf("grow: %w", err)
	}

	result := &Result{
		Shape:  shape,
		Bounds: box,
		Seed:   engine.Seed(),
		Stats: Stats{
			Cells:       shape.Len(),
			Width:       box.Width(),
			Height:      box.Height(),
			Frontier:    engine.LastFrontier(),
			Fingerprint: shape.Fingerprint(),
			GrowTime:    time.Since(growStart),
		},
	}

	logger.Debug("grew shape",
		"cells", result.Stats.Cells,
		"width", result.Stats.Width,
		"height", result.Stats.Height,
		"seed", result.Seed,
		"verified", verify,
		"fingerprint", fmt.Sprintf("%016x", result.Stats.Fingerprint),
		"duration", result.Stats.GrowTime)

	// Stage 2: Render
	renderStart := time.Now()
	if err := render.Text(ctx, w, shape, opts.Style); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Debug("rendered image",
		"lines", 2*box.Height(),
		"duration", result.Stats.RenderTime)

	return result, nil
}
