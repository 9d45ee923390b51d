package render

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/matzehuels/sprawl/pkg/grid"
	"github.com/matzehuels/sprawl/pkg/observability"
)

// Text writes the image of shape to w using style.
// It fails when shape is empty or style is invalid; nothing is written then.
func Text(ctx context.Context, w io.Writer, shape *grid.Set, style Style) (err error) {
	if err := style.Validate(); err != nil {
		return err
	}
	box, err := grid.Bounds(shape)
	if err != nil {
		return err
	}

	hooks := observability.Render()
	start := time.Now()
	hooks.OnRenderStart(ctx, box.Height(), box.Width())
	lines := 0
	defer func() {
		hooks.OnRenderComplete(ctx, lines, time.Since(start), err)
	}()

	bw := bufio.NewWriter(w)
	for y := box.MinY; y <= box.MaxY; y++ {
		writeRow(bw, shape, box, y, style.Top, style.Blank)
		writeRow(bw, shape, box, y, style.Bottom, style.Blank)
		lines += 2
	}
	return bw.Flush()
}

// String renders shape to a string.
func String(shape *grid.Set, style Style) (string, error) {
	var sb strings.Builder
	if err := Text(context.Background(), &sb, shape, style); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeRow(w *bufio.Writer, shape *grid.Set, box grid.Rect, y int, brick, blank string) {
	for x := box.MinX; x <= box.MaxX; x++ {
		if shape.Contains(grid.C(x, y)) {
			w.WriteString(blank)
		} else {
			w.WriteString(brick)
		}
	}
	w.WriteByte('\n')
}
