package tetra

import "github.com/tetrakit/tetra/internal/conn"

// LMax is the maximum refinement level; level 21 tets have unit edge length.
const LMax = 21

// NumTypes is the number of tetrahedron types tiling a cube (S0..S5).
const NumTypes = conn.NumTypes

// Tet is one tetrahedron in the refinement: an anchor coordinate, a
// refinement level and a type in [0,5]. Tet values are immutable.
type Tet struct {
	x, y, z int64
	level   int
	typ     int
}

// Root is the unique level-0 tet covering the positive octant.
var Root = Tet{x: 0, y: 0, z: 0, level: 0, typ: 0}

// NewUnchecked constructs a Tet without validating any invariant from
// section 3. Used on hot paths where the caller already knows the
// inputs are well-formed; violating the invariants is undefined
// behavior, not a reported error.
func NewUnchecked(x, y, z int64, level, typ int) Tet {
	return Tet{x: x, y: y, z: z, level: level, typ: typ}
}

// NewValidated constructs a Tet, rejecting any input that violates the
// invariants in section 3 of the specification. For level > 0 it
// reconstructs the expected type by walking the coordinate-bit path
// from the root and checking it against typ.
func NewValidated(x, y, z int64, level, typ int) (Tet, error) {
	if level < 0 || level > LMax {
		return Tet{}, &LevelOutOfRange{Level: level}
	}
	if typ < 0 || typ >= NumTypes {
		return Tet{}, &TypeOutOfRange{Type: typ}
	}
	if x < 0 {
		return Tet{}, &NegativeCoordinate{Axis: "x", Value: x}
	}
	if y < 0 {
		return Tet{}, &NegativeCoordinate{Axis: "y", Value: y}
	}
	if z < 0 {
		return Tet{}, &NegativeCoordinate{Axis: "z", Value: z}
	}
	bound := int64(1) << LMax
	if x >= bound {
		return Tet{}, &CoordinateOutOfBounds{Axis: "x", Value: x}
	}
	if y >= bound {
		return Tet{}, &CoordinateOutOfBounds{Axis: "y", Value: y}
	}
	if z >= bound {
		return Tet{}, &CoordinateOutOfBounds{Axis: "z", Value: z}
	}

	if level == 0 {
		if x != 0 || y != 0 || z != 0 || typ != 0 {
			return Tet{}, &InvalidRootTet{X: x, Y: y, Z: z, Type: typ}
		}
		return Root, nil
	}

	length := int64(1) << (LMax - level)
	if x%length != 0 {
		return Tet{}, &MisalignedCoordinate{Axis: "x", Value: x, Length: length}
	}
	if y%length != 0 {
		return Tet{}, &MisalignedCoordinate{Axis: "y", Value: y, Length: length}
	}
	if z%length != 0 {
		return Tet{}, &MisalignedCoordinate{Axis: "z", Value: z, Length: length}
	}

	want, err := typeFromPath(x, y, z, level)
	if err != nil {
		return Tet{}, err
	}
	if want != typ {
		return Tet{}, &InconsistentType{Got: typ, Want: want}
	}
	return Tet{x: x, y: y, z: z, level: level, typ: typ}, nil
}

// typeFromPath walks the coordinate-bit path from the root to level,
// reconstructing the type each step of the way via the
// parent-type/local-index child-type connectivity table.
func typeFromPath(x, y, z int64, level int) (int, error) {
	typ := 0
	for i := 0; i < level; i++ {
		shift := uint(LMax - 1 - i)
		cubeID := cubeIDBits(x, y, z, shift)
		parentType := typ
		typ = conn.Gen.ParentTypeLocalIndexToType[parentType][cubeID]
	}
	return typ, nil
}

func cubeIDBits(x, y, z int64, shift uint) int {
	xb := int((x >> shift) & 1)
	yb := int((y >> shift) & 1)
	zb := int((z >> shift) & 1)
	return (zb << 2) | (yb << 1) | xb
}

// X, Y, Z return the anchor coordinates.
func (t Tet) X() int64 { return t.x }
func (t Tet) Y() int64 { return t.y }
func (t Tet) Z() int64 { return t.z }

// Level returns the refinement level, 0 (root) to LMax.
func (t Tet) Level() int { return t.level }

// Type returns the tet's type, 0 through 5.
func (t Tet) Type() int { return t.typ }

// Length returns the edge length in integer grid units: 2^(LMax-level).
func (t Tet) Length() int64 { return int64(1) << (LMax - t.level) }

// IsMirrored reports whether t's type is one of the left-handed types {1,3,4}.
func (t Tet) IsMirrored() bool { return isMirroredType(t.typ) }

func isMirroredType(typ int) bool { return typ == 1 || typ == 3 || typ == 4 }

// CubeID returns the 3-bit cube-id of t within its immediate parent's
// bounding cube: (z_bit<<2)|(y_bit<<1)|x_bit at the bit position one
// level coarser than t.
func (t Tet) CubeID() int {
	if t.level == 0 {
		return 0
	}
	return cubeIDBits(t.x, t.y, t.z, uint(LMax-t.level))
}

// CubeIDAt returns the cube-id of the ancestor of t at the given level,
// obtained by bit-extraction from the anchor at position LMax-level.
func (t Tet) CubeIDAt(level int) int {
	if level <= 0 {
		return 0
	}
	return cubeIDBits(t.x, t.y, t.z, uint(LMax-level))
}

// ComputeType returns the type of the ancestor of t at the given
// level (<= t.Level()), by iterating from t.Level() down to level,
// applying the cube-id/type parent-type table at each step.
func (t Tet) ComputeType(level int) int {
	typ := t.typ
	for l := t.level; l > level; l-- {
		cubeID := t.CubeIDAt(l)
		typ = conn.Gen.CubeIDTypeToParentType[cubeID][typ]
	}
	return typ
}

// Equal reports whether two tets have identical fields.
func (t Tet) Equal(o Tet) bool {
	return t.x == o.x && t.y == o.y && t.z == o.z && t.level == o.level && t.typ == o.typ
}
