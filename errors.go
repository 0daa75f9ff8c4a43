package tetra

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// LevelOutOfRange reports a level outside [0, LMax].
type LevelOutOfRange struct{ Level int }

func (e *LevelOutOfRange) Error() string {
	return fmt.Sprintf("tetra: level %d out of range [0,%d]", e.Level, LMax)
}

// TypeOutOfRange reports a type outside [0,5].
type TypeOutOfRange struct{ Type int }

func (e *TypeOutOfRange) Error() string {
	return fmt.Sprintf("tetra: type %d out of range [0,5]", e.Type)
}

// NegativeCoordinate reports a coordinate below zero.
type NegativeCoordinate struct {
	Axis  string
	Value int64
}

func (e *NegativeCoordinate) Error() string {
	return fmt.Sprintf("tetra: negative coordinate %s=%d", e.Axis, e.Value)
}

// CoordinateOutOfBounds reports a coordinate at or beyond 2^LMax.
type CoordinateOutOfBounds struct {
	Axis  string
	Value int64
}

func (e *CoordinateOutOfBounds) Error() string {
	return fmt.Sprintf("tetra: coordinate %s=%d out of bounds [0,2^%d)", e.Axis, e.Value, LMax)
}

// MisalignedCoordinate reports a coordinate not divisible by the level's length.
type MisalignedCoordinate struct {
	Axis   string
	Value  int64
	Length int64
}

func (e *MisalignedCoordinate) Error() string {
	return fmt.Sprintf("tetra: coordinate %s=%d not aligned to length %d", e.Axis, e.Value, e.Length)
}

// InvalidRootTet reports a level-0 tet with a non-origin anchor or non-zero type.
type InvalidRootTet struct {
	X, Y, Z int64
	Type    int
}

func (e *InvalidRootTet) Error() string {
	return fmt.Sprintf("tetra: invalid root tet (%d,%d,%d) type=%d, want (0,0,0) type=0", e.X, e.Y, e.Z, e.Type)
}

// InconsistentType reports that validated construction found a type that
// disagrees with the type implied by the coordinate path from the root.
type InconsistentType struct {
	Got, Want int
}

func (e *InconsistentType) Error() string {
	return fmt.Sprintf("tetra: inconsistent type %d, path implies %d", e.Got, e.Want)
}

// NoParent is returned by Parent() on the root tet.
type NoParent struct{}

func (e *NoParent) Error() string { return "tetra: root tet has no parent" }

// NoChildAtMaxLevel is returned by Child() on a tet already at LMax.
type NoChildAtMaxLevel struct{}

func (e *NoChildAtMaxLevel) Error() string { return "tetra: no child at max level" }

// ChildIndexOutOfRange reports a morton index outside [0,7].
type ChildIndexOutOfRange struct{ Index int }

func (e *ChildIndexOutOfRange) Error() string {
	return fmt.Sprintf("tetra: child index %d out of range [0,7]", e.Index)
}

// VertexIndexOutOfRange reports a vertex index outside [0,3].
type VertexIndexOutOfRange struct{ Index int }

func (e *VertexIndexOutOfRange) Error() string {
	return fmt.Sprintf("tetra: vertex index %d out of range [0,3]", e.Index)
}

// NotLocated is returned by EnclosingPoint when no type's tetrahedron
// contains the point at the requested level, and by EnclosingBounds
// when no level has a type whose tetrahedron fully contains the
// bounds (Level is -1 in that case, since no single level is at fault).
type NotLocated struct {
	Point r3.Vec
	Level int
}

func (e *NotLocated) Error() string {
	if e.Level < 0 {
		return "tetra: no tetrahedron encloses the given bounds at any level"
	}
	return fmt.Sprintf("tetra: no tetrahedron at level %d contains point %v", e.Level, e.Point)
}

// RangesNotMergeable is returned by SFCRange.Merge for ranges that are
// neither adjacent nor overlapping, or that live at different levels.
type RangesNotMergeable struct {
	A, B SFCRange
}

func (e *RangesNotMergeable) Error() string {
	return fmt.Sprintf("tetra: ranges %v and %v are not mergeable", e.A, e.B)
}
