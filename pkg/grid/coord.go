package grid

import "fmt"

// Coord identifies one cell on the grid.
// Two coordinates are equal iff both components match; Go's structural
// hashing of the struct is what makes it usable as a map key.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Origin is the cell every shape grows from.
var Origin = Coord{}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors returns the four axis-aligned neighbors of c in the order
// right, down, left, up.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{
		c.Add(1, 0),
		c.Add(0, 1),
		c.Add(-1, 0),
		c.Add(0, -1),
	}
}

// Adjacent reports whether o shares an edge with c.
func (c Coord) Adjacent(o Coord) bool {
	dx, dy := abs(c.X-o.X), abs(c.Y-o.Y)
	return dx+dy == 1
}

// Less orders coordinates row-major: by Y, then by X.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
