package grid

// Frontier returns every cell that is edge-adjacent to at least one cell of
// occupied but not itself occupied. The result never overlaps occupied and
// occupied is left untouched.
func Frontier(occupied *Set) *Set {
	f := NewSet()
	for c := range occupied.m {
		for _, n := range c.Neighbors() {
			if !occupied.Contains(n) {
				f.m[n] = struct{}{}
			}
		}
	}
	return f
}

// Connected reports whether every cell of s can reach root through a path of
// edge-adjacent cells of s. An empty set, or one not containing root, is not
// connected.
func Connected(s *Set, root Coord) bool {
	if !s.Contains(root) {
		return false
	}
	seen := NewSet(root)
	queue := []Coord{root}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range c.Neighbors() {
			if s.Contains(n) && seen.Insert(n) {
				queue = append(queue, n)
			}
		}
	}
	return seen.Len() == s.Len()
}
