package grid

import (
	"encoding/binary"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Set is a deduplicated, unordered collection of cells.
// Cells can be added but never removed. The zero value is not usable;
// create sets with [NewSet].
type Set struct {
	m map[Coord]struct{}
}

// NewSet creates a set holding the given cells.
func NewSet(cells ...Coord) *Set {
	s := &Set{m: make(map[Coord]struct{}, len(cells))}
	for _, c := range cells {
		s.m[c] = struct{}{}
	}
	return s
}

// Insert adds c and reports whether it was not already present.
func (s *Set) Insert(c Coord) bool {
	if _, ok := s.m[c]; ok {
		return false
	}
	s.m[c] = struct{}{}
	return true
}

// Contains reports whether c is in the set.
func (s *Set) Contains(c Coord) bool {
	_, ok := s.m[c]
	return ok
}

// Len returns the number of cells.
func (s *Set) Len() int {
	return len(s.m)
}

// IsEmpty reports whether the set has no cells.
func (s *Set) IsEmpty() bool {
	return len(s.m) == 0
}

// Cells returns the cells in row-major order (ascending Y, then X).
// The returned slice is a fresh copy.
func (s *Set) Cells() []Coord {
	cells := slices.Collect(maps.Keys(s.m))
	slices.SortFunc(cells, compare)
	return cells
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return &Set{m: maps.Clone(s.m)}
}

// Equal reports whether s and o hold exactly the same cells.
func (s *Set) Equal(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for c := range s.m {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

// Fingerprint returns a digest of the set's contents that is independent of
// insertion order. Equal sets always share a fingerprint.
func (s *Set) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, c := range s.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(int64(c.X)))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.Y)))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func compare(a, b Coord) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
