package grid

import (
	"github.com/matzehuels/sprawl/pkg/errors"
)

// Rect is an inclusive axis-aligned rectangle of cells.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns the number of columns spanned by r.
func (r Rect) Width() int { return r.MaxX - r.MinX + 1 }

// Height returns the number of rows spanned by r.
func (r Rect) Height() int { return r.MaxY - r.MinY + 1 }

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

// Bounds returns the tightest Rect containing every cell of s.
// It fails with an EMPTY_SET error when s has no cells.
func Bounds(s *Set) (Rect, error) {
	if s.IsEmpty() {
		return Rect{}, errors.New(errors.ErrCodeEmptySet, "bounding box of an empty set")
	}
	first := true
	var r Rect
	for c := range s.m {
		if first {
			r = Rect{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
			first = false
			continue
		}
		r.MinX = min(r.MinX, c.X)
		r.MinY = min(r.MinY, c.Y)
		r.MaxX = max(r.MaxX, c.X)
		r.MaxY = max(r.MaxY, c.Y)
	}
	return r, nil
}
