package tetra

import "gonum.org/v1/gonum/spatial/r3"

// VolumeBounds is an axis-aligned bounding box in floating point,
// the lingua franca for queries: (minX,minY,minZ,maxX,maxY,maxZ)
// with min <= max per axis.
type VolumeBounds struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// Volume returns the box's volume in cubic units.
func (b VolumeBounds) Volume() float64 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY) * (b.MaxZ - b.MinZ)
}

// MaxExtent returns the largest of the box's three edge lengths.
func (b VolumeBounds) MaxExtent() float64 {
	ex := b.MaxX - b.MinX
	ey := b.MaxY - b.MinY
	ez := b.MaxZ - b.MinZ
	m := ex
	if ey > m {
		m = ey
	}
	if ez > m {
		m = ez
	}
	return m
}

func (b VolumeBounds) containsPoint(p r3.Vec) bool {
	return p.X >= b.MinX && p.X <= b.MaxX &&
		p.Y >= b.MinY && p.Y <= b.MaxY &&
		p.Z >= b.MinZ && p.Z <= b.MaxZ
}

func (b VolumeBounds) corners() [8]r3.Vec {
	return [8]r3.Vec{
		{X: b.MinX, Y: b.MinY, Z: b.MinZ},
		{X: b.MaxX, Y: b.MinY, Z: b.MinZ},
		{X: b.MinX, Y: b.MaxY, Z: b.MinZ},
		{X: b.MaxX, Y: b.MaxY, Z: b.MinZ},
		{X: b.MinX, Y: b.MinY, Z: b.MaxZ},
		{X: b.MaxX, Y: b.MinY, Z: b.MaxZ},
		{X: b.MinX, Y: b.MaxY, Z: b.MaxZ},
		{X: b.MaxX, Y: b.MaxY, Z: b.MaxZ},
	}
}

// boundsOf returns the tight axis-aligned bounding box of t's S0-S5 vertices.
func (t Tet) boundsOf() VolumeBounds {
	v := t.VerticesSubdivision()
	b := VolumeBounds{MinX: v[0].X, MinY: v[0].Y, MinZ: v[0].Z, MaxX: v[0].X, MaxY: v[0].Y, MaxZ: v[0].Z}
	for _, p := range v[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Z < b.MinZ {
			b.MinZ = p.Z
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
		if p.Z > b.MaxZ {
			b.MaxZ = p.Z
		}
	}
	return b
}

func boundsOverlap(a, b VolumeBounds) bool {
	return a.MinX <= b.MaxX && a.MaxX >= b.MinX &&
		a.MinY <= b.MaxY && a.MaxY >= b.MinY &&
		a.MinZ <= b.MaxZ && a.MaxZ >= b.MinZ
}

const segmentParallelEps = 1e-6

// segmentIntersectsAABB is the slab method: parameter t in [0,1] along
// the segment from p0 to p1; an axis-aligned segment parallel to a
// slab is handled by a bounds check rather than a division.
func segmentIntersectsAABB(p0, p1 r3.Vec, b VolumeBounds) bool {
	tmin, tmax := 0.0, 1.0
	axes := [3]struct{ p0, p1, lo, hi float64 }{
		{p0.X, p1.X, b.MinX, b.MaxX},
		{p0.Y, p1.Y, b.MinY, b.MaxY},
		{p0.Z, p1.Z, b.MinZ, b.MaxZ},
	}
	for _, a := range axes {
		d := a.p1 - a.p0
		if d > -segmentParallelEps && d < segmentParallelEps {
			if a.p0 < a.lo || a.p0 > a.hi {
				return false
			}
			continue
		}
		t0 := (a.lo - a.p0) / d
		t1 := (a.hi - a.p0) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}

// AABBIntersect reports whether t's tetrahedron intersects bounds:
// early-reject by t's own bounding box, then test any tet vertex
// inside bounds, any bounds corner inside t, or any of t's six edges
// crossing bounds via the segment-slab test. The fallback is
// conservatively true, to avoid false negatives on face-face
// touching, as the spec's open question on this predicate allows.
func (t Tet) AABBIntersect(bounds VolumeBounds) bool {
	if !boundsOverlap(t.boundsOf(), bounds) {
		return false
	}
	v := t.VerticesSubdivision()
	for _, p := range v {
		if bounds.containsPoint(p) {
			return true
		}
	}
	for _, c := range bounds.corners() {
		if t.ContainsPoint(c) {
			return true
		}
	}
	edges := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, e := range edges {
		if segmentIntersectsAABB(v[e[0]], v[e[1]], bounds) {
			return true
		}
	}
	return true
}

// AABBContains reports whether all four of t's vertices lie inside bounds.
func (t Tet) AABBContains(bounds VolumeBounds) bool {
	for _, p := range t.VerticesSubdivision() {
		if !bounds.containsPoint(p) {
			return false
		}
	}
	return true
}
