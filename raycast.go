package tetra

import "gonum.org/v1/gonum/spatial/r3"

// Ray is a parametric ray: points are Origin + t*Direction for t >= 0,
// up to MaxDistance.
type Ray struct {
	Origin      r3.Vec
	Direction   r3.Vec
	MaxDistance float64
}

// PointAt returns the point at parameter t along the ray.
func (r Ray) PointAt(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Direction))
}

// RayHit is the result of a successful ray/tetrahedron intersection.
type RayHit struct {
	Distance float64
	Face     int
	Normal   r3.Vec
}

const rayEpsilon = 1e-6

// faceVertices returns, for face index 0..3, the three vertices of
// the face opposite that vertex index, in a fixed winding.
func faceVertices(v [4]r3.Vec, face int) (a, b, c r3.Vec) {
	switch face {
	case 0:
		return v[1], v[2], v[3]
	case 1:
		return v[0], v[2], v[3]
	case 2:
		return v[0], v[1], v[3]
	default:
		return v[0], v[1], v[2]
	}
}

// mollerTrumbore intersects a ray's line against triangle (a,b,c),
// returning the hit parameter t and whether the line crosses the
// triangle. t may be zero or negative; callers filter it.
func mollerTrumbore(origin, dir, a, b, c r3.Vec) (float64, bool) {
	edge1 := r3.Sub(b, a)
	edge2 := r3.Sub(c, a)
	pvec := r3.Cross(dir, edge2)
	det := r3.Dot(edge1, pvec)
	if det > -rayEpsilon && det < rayEpsilon {
		return 0, false
	}
	invDet := 1.0 / det
	tvec := r3.Sub(origin, a)
	u := r3.Dot(tvec, pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}
	qvec := r3.Cross(tvec, edge1)
	v := r3.Dot(dir, qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := r3.Dot(edge2, qvec) * invDet
	return t, true
}

// RayIntersect returns the nearest forward hit (smallest t > epsilon,
// t <= ray.MaxDistance) of ray against t's four triangular faces. If
// the ray origin is already inside t, the result reports distance 0
// and, if the ray exits through one of the faces within range, that
// exit face.
func (t Tet) RayIntersect(ray Ray) (RayHit, bool) {
	v := t.VerticesSubdivision()
	inside := t.ContainsPoint(ray.Origin)

	bestT := ray.MaxDistance
	bestFace := -1
	for face := 0; face < 4; face++ {
		a, b, c := faceVertices(v, face)
		tt, ok := mollerTrumbore(ray.Origin, ray.Direction, a, b, c)
		if !ok || tt <= rayEpsilon || tt > ray.MaxDistance {
			continue
		}
		if bestFace == -1 || tt < bestT {
			bestT = tt
			bestFace = face
		}
	}

	if inside {
		hit := RayHit{Distance: 0, Face: -1}
		if bestFace != -1 {
			hit.Face = bestFace
			a, b, c := faceVertices(v, bestFace)
			hit.Normal = faceNormal(a, b, c)
		}
		return hit, true
	}
	if bestFace == -1 {
		return RayHit{}, false
	}
	a, b, c := faceVertices(v, bestFace)
	return RayHit{Distance: bestT, Face: bestFace, Normal: faceNormal(a, b, c)}, true
}

func faceNormal(a, b, c r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	return r3.Scale(1/r3.Norm(n), n)
}
