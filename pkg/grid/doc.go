// Package grid provides the cell geometry sprawl grows shapes on.
//
// The grid is unbounded in every direction and uses four-way (axis-aligned)
// adjacency only. A shape is a [Set] of [Coord] values; [Frontier] derives the
// unoccupied cells a shape may grow into and [Bounds] computes the tight
// rectangle around it.
//
// # Core Types
//
//   - [Coord]: a comparable (x, y) cell identity, usable directly as a map key
//   - [Set]: a deduplicated collection of cells with no removal operation
//   - [Rect]: an inclusive axis-aligned bounding box
//
// # Ordering
//
// Sets are unordered. Whenever a sequence is needed, [Set.Cells] returns cells
// in canonical row-major order (ascending Y, then ascending X) so that any
// consumer driven by a seeded random source stays reproducible.
//
// # Example
//
//	shape := grid.NewSet(grid.Origin)
//	shape.Insert(grid.C(1, 0))
//	for _, c := range grid.Frontier(shape).Cells() {
//	    fmt.Println(c)
//	}
package grid
