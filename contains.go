package tetra

import "gonum.org/v1/gonum/spatial/r3"

// ContainsPoint reports whether p lies within (or on the boundary of)
// t's S0-S5 tetrahedron. It computes four signed tetrahedron-volume
// determinants, one per face, each opposite one vertex, as
// r3.Dot(b-a, r3.Cross(c-a, d-a)), and requires each to carry the same
// sign as the whole tet's own signed volume. Because that whole-tet
// volume is itself negative for the mirrored types {1,3,4} (their
// vertex winding is left-handed), comparing against it rather than a
// fixed reference sign has the mirror-sign inversion the spec calls
// for built in. Determinants of exactly zero are treated as a match
// in either direction, so boundary points count as inside on at least
// one of the ambiguous faces.
func (t Tet) ContainsPoint(p r3.Vec) bool {
	v := t.VerticesSubdivision()
	total := signedVolume6(v[0], v[1], v[2], v[3])
	if total == 0 {
		return false
	}
	sub := [4]float64{
		signedVolume6(p, v[1], v[2], v[3]),
		signedVolume6(v[0], p, v[2], v[3]),
		signedVolume6(v[0], v[1], p, v[3]),
		signedVolume6(v[0], v[1], v[2], p),
	}
	for _, s := range sub {
		if total > 0 && s < 0 {
			return false
		}
		if total < 0 && s > 0 {
			return false
		}
	}
	return true
}

// signedVolume6 is six times the signed volume of tetrahedron (a,b,c,d).
func signedVolume6(a, b, c, d r3.Vec) float64 {
	return r3.Dot(r3.Sub(b, a), r3.Cross(r3.Sub(c, a), r3.Sub(d, a)))
}
