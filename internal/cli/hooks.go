package cli

import (
	"context"
	"time"

	"github.com/matzehuels/sprawl/pkg/grid"
	"github.com/matzehuels/sprawl/pkg/observability"
)

// logHooks forwards growth and render events to the logger carried by ctx.
// Per-step events are logged at debug level only.
type logHooks struct{}

func (logHooks) OnGrowStart(ctx context.Context, steps int) {
	loggerFromContext(ctx).Debug("growing", "steps", steps)
}

func (logHooks) OnStep(ctx context.Context, step int, cell grid.Coord, frontier int) {
	loggerFromContext(ctx).Debug("annexed", "step", step, "cell", cell, "frontier", frontier)
}

func (logHooks) OnGrowComplete(ctx context.Context, cells int, d time.Duration, err error) {
	if err != nil {
		loggerFromContext(ctx).Error("growth failed", "cells", cells, "err", err)
		return
	}
	loggerFromContext(ctx).Debug("growth complete", "cells", cells, "duration", d)
}

func (logHooks) OnRenderStart(ctx context.Context, rows, cols int) {
	loggerFromContext(ctx).Debug("rendering", "rows", rows, "cols", cols)
}

func (logHooks) OnRenderComplete(ctx context.Context, lines int, d time.Duration, err error) {
	if err != nil {
		loggerFromContext(ctx).Error("render failed", "err", err)
	}
}

var (
	_ observability.GrowthHooks = logHooks{}
	_ observability.RenderHooks = logHooks{}
)
