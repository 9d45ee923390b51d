// Package selector picks the next cell a shape grows into.
//
// A [Selector] receives the candidate cells as a slice in a caller-defined
// order and returns one of them. [Uniform] gives every candidate the same
// probability, 1/len(candidates), and draws from an explicitly supplied
// generator so that a seed fully determines its choices.
package selector

import (
	"math/rand/v2"

	"github.com/matzehuels/sprawl/pkg/errors"
	"github.com/matzehuels/sprawl/pkg/grid"
)

// Selector chooses one cell out of a non-empty candidate list.
// Passing an empty list is a programming error and panics.
type Selector interface {
	Select(candidates []grid.Coord) grid.Coord
}

// Uniform selects candidates with equal probability.
// It is not safe for concurrent use.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a Uniform selector backed by a PCG generator seeded
// with seed. Equal seeds yield equal choice sequences.
func NewUniform(seed uint64) *Uniform {
	return NewUniformFromRand(rand.New(rand.NewPCG(seed, seed^0xdeadbeef)))
}

// NewUniformFromRand returns a Uniform selector drawing from rng.
func NewUniformFromRand(rng *rand.Rand) *Uniform {
	return &Uniform{rng: rng}
}

// Select returns candidates[i] for i drawn uniformly from [0, len(candidates)).
func (u *Uniform) Select(candidates []grid.Coord) grid.Coord {
	if len(candidates) == 0 {
		panic(errors.New(errors.ErrCodeEmptyCandidates, "select from zero candidates"))
	}
	return candidates[u.rng.IntN(len(candidates))]
}

// Func adapts a plain function to the Selector interface.
type Func func(candidates []grid.Coord) grid.Coord

// Select calls f(candidates).
func (f Func) Select(candidates []grid.Coord) grid.Coord {
	return f(candidates)
}

var _ Selector = (*Uniform)(nil)
