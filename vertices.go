package tetra

import "gonum.org/v1/gonum/spatial/r3"

// VerticesCanonical returns the four vertices of t under the
// canonical (t8code) convention, used for geometric reporting and
// legacy compatibility. Let h = length, ei = type/2, ej = (ei + 2 if
// type even else ei + 1) mod 3.
func (t Tet) VerticesCanonical() [4]r3.Vec {
	h := float64(t.Length())
	anchor := r3.Vec{X: float64(t.x), Y: float64(t.y), Z: float64(t.z)}
	ei := t.typ / 2
	var ej int
	if t.typ%2 == 0 {
		ej = (ei + 2) % 3
	} else {
		ej = (ei + 1) % 3
	}
	v0 := anchor
	v1 := addAxis(v0, ei, h)
	v2 := addAxis(v1, ej, h)
	v3 := addAxis(addAxis(anchor, (ei+1)%3, h), (ei+2)%3, h)
	return [4]r3.Vec{v0, v1, v2, v3}
}

// VerticesSubdivision returns the four vertices of t under the S0-S5
// convention used for containment and subdivision.
func (t Tet) VerticesSubdivision() [4]r3.Vec {
	h := float64(t.Length())
	anchor := r3.Vec{X: float64(t.x), Y: float64(t.y), Z: float64(t.z)}
	v3 := r3.Vec{X: anchor.X + h, Y: anchor.Y + h, Z: anchor.Z + h}
	var v1, v2 r3.Vec
	switch t.typ {
	case 0:
		v1 = r3.Vec{X: anchor.X + h, Y: anchor.Y, Z: anchor.Z}
		v2 = r3.Vec{X: anchor.X + h, Y: anchor.Y + h, Z: anchor.Z}
	case 1:
		v1 = r3.Vec{X: anchor.X, Y: anchor.Y + h, Z: anchor.Z}
		v2 = r3.Vec{X: anchor.X + h, Y: anchor.Y + h, Z: anchor.Z}
	case 2:
		v1 = r3.Vec{X: anchor.X, Y: anchor.Y, Z: anchor.Z + h}
		v2 = r3.Vec{X: anchor.X + h, Y: anchor.Y, Z: anchor.Z + h}
	case 3:
		v1 = r3.Vec{X: anchor.X, Y: anchor.Y, Z: anchor.Z + h}
		v2 = r3.Vec{X: anchor.X, Y: anchor.Y + h, Z: anchor.Z + h}
	case 4:
		v1 = r3.Vec{X: anchor.X + h, Y: anchor.Y, Z: anchor.Z}
		v2 = r3.Vec{X: anchor.X + h, Y: anchor.Y, Z: anchor.Z + h}
	case 5:
		v1 = r3.Vec{X: anchor.X, Y: anchor.Y + h, Z: anchor.Z}
		v2 = r3.Vec{X: anchor.X, Y: anchor.Y + h, Z: anchor.Z + h}
	default:
		panic("tetra: type out of range")
	}
	return [4]r3.Vec{anchor, v1, v2, v3}
}

// Vertex returns the single vertex at the given index (0-3) of the
// S0-S5 tetrahedron, per the external interface's vertex accessor.
func (t Tet) Vertex(index int) (r3.Vec, error) {
	if index < 0 || index > 3 {
		return r3.Vec{}, &VertexIndexOutOfRange{Index: index}
	}
	return t.VerticesSubdivision()[index], nil
}

func addAxis(v r3.Vec, axis int, h float64) r3.Vec {
	switch axis {
	case 0:
		v.X += h
	case 1:
		v.Y += h
	case 2:
		v.Z += h
	}
	return v
}
