// Package render turns a grown shape into a printable block-character image.
//
// # Layout
//
// The image covers the shape's bounding box. Every grid row becomes two text
// lines and every grid column one glyph group per line. Occupied cells are
// drawn as blanks; every other cell in the box is drawn as a brick whose top
// half is [Style.Top] and bottom half is [Style.Bottom]. The shape therefore
// shows up as a hole cut out of a brick wall.
//
// For a box of rows×cols cells the output is exactly 2*rows lines, each made
// of cols glyph groups and terminated by a newline. No color codes or other
// decoration are emitted.
//
//	shape := grid.NewSet(grid.Origin, grid.C(1, 0))
//	_ = render.Text(ctx, os.Stdout, shape, render.Brick)
package render
