package tetra

import "github.com/bits-and-blooms/bitset"

// IsFamily reports whether tets is a family: exactly 8 tets at the
// same level, sharing the same parent, each a distinct child 0..7.
// Distinctness of child indices is tracked with a bitset the same way
// the teacher tracks small non-negative integer membership (octets
// there, child indices 0..7 here).
func IsFamily(tets []Tet) bool {
	if len(tets) != 8 {
		return false
	}
	level := tets[0].level
	if level == 0 {
		return false
	}
	parent, err := tets[0].Parent()
	if err != nil {
		return false
	}

	seen := bitset.New(8)
	for _, t := range tets {
		if t.level != level {
			return false
		}
		p, err := t.Parent()
		if err != nil || !p.Equal(parent) {
			return false
		}
		idx := uint(t.CubeID())
		if seen.Test(idx) {
			return false
		}
		seen.Set(idx)
	}
	return seen.Count() == 8
}
