// Package pipeline runs the complete grow → render sequence for sprawl.
//
// The CLI and tests go through a [Runner] so that logging, stage timing and
// error wrapping are handled in one place.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, os.Stdout, pipeline.Options{
//	    Steps: 128,
//	    Style: render.Brick,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Cells)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sprawl/pkg/config"
	"github.com/matzehuels/sprawl/pkg/grid"
	"github.com/matzehuels/sprawl/pkg/render"
	"github.com/matzehuels/sprawl/pkg/selector"
)

// Options contains all configuration for one pipeline run.
type Options struct {
	// Steps is the number of growth steps.
	Steps int

	// Style is the glyph set used for rendering. The zero value means render.Brick.
	Style render.Style

	// Seed fixes the random source. Zero draws a fresh seed.
	Seed uint64

	// Selector overrides the default uniform selector (tests).
	Selector selector.Selector

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// FromConfig builds Options from loaded settings.
func FromConfig(c config.Config) Options {
	return Options{
		Steps: c.Steps,
		Style: c.Glyphs.Style(),
	}
}

func (o *Options) setDefaults() {
	if o.Style == (render.Style{}) {
		o.Style = render.Brick
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Shape is the grown set of cells.
	Shape *grid.Set

	// Bounds is the bounding box of Shape.
	Bounds grid.Rect

	// Seed is the seed the run actually used.
	Seed uint64

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cells       int
	Width       int
	Height      int
	Frontier    int    // frontier size at the last step
	Fingerprint uint64 // grid.Set.Fingerprint of the shape
	GrowTime    time.Duration
	RenderTime  time.Duration
}
