package tetra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAABBContainsWholeCubeBox(t *testing.T) {
	h := float64(Root.Length())
	whole := VolumeBounds{MinX: 0, MinY: 0, MinZ: 0, MaxX: h, MaxY: h, MaxZ: h}

	for typ := 0; typ < NumTypes; typ++ {
		tet := NewUnchecked(0, 0, 0, 0, 0)
		tet.typ = typ
		require.True(t, tet.AABBContains(whole), "type %d", typ)
		require.True(t, tet.AABBIntersect(whole), "type %d", typ)
	}
}

func TestAABBIntersectRejectsDisjointBox(t *testing.T) {
	h := float64(Root.Length())
	tet := NewUnchecked(0, 0, 0, 0, 0)
	far := VolumeBounds{MinX: 10 * h, MinY: 10 * h, MinZ: 10 * h, MaxX: 11 * h, MaxY: 11 * h, MaxZ: 11 * h}
	require.False(t, tet.AABBIntersect(far))
	require.False(t, tet.AABBContains(far))
}

func TestAABBContainsRejectsPartialOverlap(t *testing.T) {
	h := float64(Root.Length())
	tet := NewUnchecked(0, 0, 0, 0, 0) // type 0
	small := VolumeBounds{MinX: 0, MinY: 0, MinZ: 0, MaxX: h / 4, MaxY: h / 4, MaxZ: h / 4}
	require.False(t, tet.AABBContains(small))
}

func TestVolumeAndMaxExtent(t *testing.T) {
	b := VolumeBounds{MinX: 0, MinY: 0, MinZ: 0, MaxX: 2, MaxY: 3, MaxZ: 4}
	require.Equal(t, 24.0, b.Volume())
	require.Equal(t, 4.0, b.MaxExtent())
}
