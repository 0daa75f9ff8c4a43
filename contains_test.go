package tetra

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestContainsPointVerticesAndCentroid(t *testing.T) {
	for typ := 0; typ < NumTypes; typ++ {
		tet := NewUnchecked(0, 0, 0, 0, 0)
		tet.typ = typ
		v := tet.VerticesSubdivision()

		for _, p := range v {
			require.True(t, tet.ContainsPoint(p), "type %d vertex %v", typ, p)
		}

		centroid := r3.Scale(0.25, r3.Add(r3.Add(v[0], v[1]), r3.Add(v[2], v[3])))
		require.True(t, tet.ContainsPoint(centroid), "type %d centroid", typ)
	}
}

func TestContainsPointRejectsFarAwayPoint(t *testing.T) {
	tet := Root
	far := r3.Vec{X: -1, Y: -1, Z: -1}
	require.False(t, tet.ContainsPoint(far))
}

func TestContainsPointMirroredTypesStillContainTheirOwnVertices(t *testing.T) {
	for _, typ := range []int{1, 3, 4} {
		tet := NewUnchecked(0, 0, 0, 0, 0)
		tet.typ = typ
		for _, p := range tet.VerticesSubdivision() {
			require.True(t, tet.ContainsPoint(p), "mirrored type %d", typ)
		}
	}
}

func TestSixTypesCoverTheCubeCentroid(t *testing.T) {
	h := float64(Root.Length())
	cubeCenter := r3.Vec{X: h / 2, Y: h / 2, Z: h / 2}

	hits := 0
	for typ := 0; typ < NumTypes; typ++ {
		tet := NewUnchecked(0, 0, 0, 0, 0)
		tet.typ = typ
		if tet.ContainsPoint(cubeCenter) {
			hits++
		}
	}
	require.GreaterOrEqual(t, hits, 1)
}
