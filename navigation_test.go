package tetra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChildParentRoundTrip(t *testing.T) {
	for morton := 0; morton < 8; morton++ {
		child, err := Root.Child(morton)
		require.NoError(t, err)
		require.Equal(t, 1, child.Level())
		require.Equal(t, morton, child.CubeID())

		parent, err := child.Parent()
		require.NoError(t, err)
		require.True(t, parent.Equal(Root))
	}
}

func TestParentAtRootFails(t *testing.T) {
	_, err := Root.Parent()
	require.IsType(t, &NoParent{}, err)
}

func TestChildAtMaxLevelFails(t *testing.T) {
	cur := Root
	var err error
	for cur.Level() < LMax {
		cur, err = cur.Child(0)
		require.NoError(t, err)
	}
	_, err = cur.Child(0)
	require.IsType(t, &NoChildAtMaxLevel{}, err)
}

func TestChildRejectsOutOfRangeIndex(t *testing.T) {
	_, err := Root.Child(8)
	require.IsType(t, &ChildIndexOutOfRange{}, err)

	_, err = Root.Child(-1)
	require.IsType(t, &ChildIndexOutOfRange{}, err)
}

func TestSiblingMatchesParentChild(t *testing.T) {
	child, err := Root.Child(2)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		sib, err := child.Sibling(i)
		require.NoError(t, err)
		want, err := Root.Child(i)
		require.NoError(t, err)
		require.True(t, sib.Equal(want))
	}
}

func TestFirstAndLastDescendant(t *testing.T) {
	first, err := Root.FirstDescendant(3)
	require.NoError(t, err)
	require.Equal(t, 3, first.Level())

	cur := Root
	for i := 0; i < 3; i++ {
		cur, err = cur.Child(0)
		require.NoError(t, err)
	}
	require.True(t, cur.Equal(first))

	last, err := Root.LastDescendant(3)
	require.NoError(t, err)
	cur = Root
	for i := 0; i < 3; i++ {
		cur, err = cur.Child(7)
		require.NoError(t, err)
	}
	require.True(t, cur.Equal(last))
}

func TestDescendantRejectsLevelBelowCurrent(t *testing.T) {
	child, err := Root.Child(0)
	require.NoError(t, err)
	_, err = child.FirstDescendant(0)
	require.IsType(t, &LevelOutOfRange{}, err)
}

func TestFaceNeighborRoundTripsReportedFace(t *testing.T) {
	cur := Root
	var err error
	for _, m := range []int{3, 5, 1} {
		cur, err = cur.Child(m)
		require.NoError(t, err)
	}

	for face := 0; face < 4; face++ {
		n, ok := cur.FaceNeighbor(face)
		if !ok {
			continue
		}
		back, ok := n.Tet.FaceNeighbor(n.Face)
		require.True(t, ok, "face neighbor round trip must exist for face %d", n.Face)
		require.True(t, back.Tet.Equal(cur), "face %d round trip: got %v want %v", face, back.Tet, cur)
		require.Equal(t, face, back.Face)
	}
}

func TestFaceNeighborTypeSwingStaysInLevelAndCoordinates(t *testing.T) {
	child, err := Root.Child(4)
	require.NoError(t, err)

	n, ok := child.FaceNeighbor(1)
	require.True(t, ok)
	require.Equal(t, child.Level(), n.Tet.Level())
	require.Equal(t, child.X(), n.Tet.X())
	require.Equal(t, child.Y(), n.Tet.Y())
	require.Equal(t, child.Z(), n.Tet.Z())
	require.NotEqual(t, child.Type(), n.Tet.Type())
}
