package tetra

import "github.com/tetrakit/tetra/internal/conn"

// Parent returns the parent of t: clears the bit worth t's own length
// in each coordinate, decrements the level, and recovers the parent's
// type from the cube-id/type parent-type table.
func (t Tet) Parent() (Tet, error) {
	if t.level == 0 {
		return Tet{}, &NoParent{}
	}
	bit := t.Length()
	cubeID := t.CubeID()
	parentType := conn.Gen.CubeIDTypeToParentType[cubeID][t.typ]
	return Tet{
		x:     t.x &^ bit,
		y:     t.y &^ bit,
		z:     t.z &^ bit,
		level: t.level - 1,
		typ:   parentType,
	}, nil
}

// Child returns the Morton-indexed (0..7) child of t: the cube id of
// the child equals the Morton index directly (Z-order traversal of a
// cube's octants is the cube-id numbering), its type comes from the
// parent-type/local-index connectivity table, and its anchor steps by
// half of t's length along the axes selected by the index's bits.
func (t Tet) Child(morton int) (Tet, error) {
	if t.level == LMax {
		return Tet{}, &NoChildAtMaxLevel{}
	}
	if morton < 0 || morton > 7 {
		return Tet{}, &ChildIndexOutOfRange{Index: morton}
	}
	childLen := t.Length() / 2
	childType := conn.Gen.ParentTypeLocalIndexToType[t.typ][morton]
	x, y, z := t.x, t.y, t.z
	if morton&1 != 0 {
		x += childLen
	}
	if morton&2 != 0 {
		y += childLen
	}
	if morton&4 != 0 {
		z += childLen
	}
	return Tet{x: x, y: y, z: z, level: t.level + 1, typ: childType}, nil
}

// Sibling returns the i'th child of t's parent; undefined (an error)
// at the root.
func (t Tet) Sibling(i int) (Tet, error) {
	p, err := t.Parent()
	if err != nil {
		return Tet{}, err
	}
	return p.Child(i)
}

// FirstDescendant returns the descendant of t at the given level
// reached by repeatedly taking child(0).
func (t Tet) FirstDescendant(level int) (Tet, error) {
	return descendant(t, level, 0)
}

// LastDescendant returns the descendant of t at the given level
// reached by repeatedly taking child(7).
func (t Tet) LastDescendant(level int) (Tet, error) {
	return descendant(t, level, 7)
}

func descendant(t Tet, level, morton int) (Tet, error) {
	if level < t.level || level > LMax {
		return Tet{}, &LevelOutOfRange{Level: level}
	}
	cur := t
	for cur.level < level {
		next, err := cur.Child(morton)
		if err != nil {
			return Tet{}, err
		}
		cur = next
	}
	return cur, nil
}

// FaceNeighbor is the tet across one of t's four faces, together with
// the face index from that neighbor's own perspective.
type FaceNeighbor struct {
	Face int
	Tet  Tet
}

// axisForType is the axis (0=x,1=y,2=z) that faces 0 and 3 step along
// for a tet of the given type: one past the type's own primary axis
// (type/2), matching the worked example in the spec (a type-0 tet
// steps face 3 along -y).
func axisForType(typ int) int { return (typ/2 + 1) % 3 }

// FaceNeighbor returns the tet across face (0..3) of t, or false if
// the neighbor would leave the positive octant.
func (t Tet) FaceNeighbor(face int) (FaceNeighbor, bool) {
	switch face {
	case 1, 2:
		delta := 1
		reportFace := 2
		if face == 2 {
			delta = -1
			reportFace = 1
		}
		neighType := ((t.typ+delta)%NumTypes + NumTypes) % NumTypes
		n := Tet{x: t.x, y: t.y, z: t.z, level: t.level, typ: neighType}
		return FaceNeighbor{Face: reportFace, Tet: n}, true
	case 0, 3:
		axis := axisForType(t.typ)
		step := t.Length()
		if face == 3 {
			step = -step
		}
		x, y, z := t.x, t.y, t.z
		switch axis {
		case 0:
			x += step
		case 1:
			y += step
		case 2:
			z += step
		}
		if x < 0 || y < 0 || z < 0 {
			return FaceNeighbor{}, false
		}
		bound := int64(1) << LMax
		if x >= bound || y >= bound || z >= bound {
			return FaceNeighbor{}, false
		}
		n := Tet{x: x, y: y, z: z, level: t.level, typ: t.typ}
		return FaceNeighbor{Face: 3 - face, Tet: n}, true
	default:
		return FaceNeighbor{}, false
	}
}
