package tetra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootInvariants(t *testing.T) {
	require.Equal(t, int64(0), Root.X())
	require.Equal(t, int64(0), Root.Y())
	require.Equal(t, int64(0), Root.Z())
	require.Equal(t, 0, Root.Level())
	require.Equal(t, 0, Root.Type())
	require.Equal(t, int64(1)<<LMax, Root.Length())
	require.False(t, Root.IsMirrored())
}

func TestNewValidatedRoot(t *testing.T) {
	got, err := NewValidated(0, 0, 0, 0, 0)
	require.NoError(t, err)
	require.True(t, got.Equal(Root))

	_, err = NewValidated(1, 0, 0, 0, 0)
	require.Error(t, err)
	require.IsType(t, &InvalidRootTet{}, err)

	_, err = NewValidated(0, 0, 0, 0, 1)
	require.Error(t, err)
	require.IsType(t, &InvalidRootTet{}, err)
}

func TestNewValidatedRejectsOutOfRangeLevel(t *testing.T) {
	_, err := NewValidated(0, 0, 0, -1, 0)
	require.IsType(t, &LevelOutOfRange{}, err)

	_, err = NewValidated(0, 0, 0, LMax+1, 0)
	require.IsType(t, &LevelOutOfRange{}, err)
}

func TestNewValidatedRejectsOutOfRangeType(t *testing.T) {
	child, err := Root.Child(0)
	require.NoError(t, err)
	_, err = NewValidated(child.X(), child.Y(), child.Z(), child.Level(), NumTypes)
	require.IsType(t, &TypeOutOfRange{}, err)
}

func TestNewValidatedRejectsNegativeAndOutOfBoundsCoordinates(t *testing.T) {
	_, err := NewValidated(-1, 0, 0, 1, 0)
	require.IsType(t, &NegativeCoordinate{}, err)

	bound := int64(1) << LMax
	_, err = NewValidated(bound, 0, 0, 1, 0)
	require.IsType(t, &CoordinateOutOfBounds{}, err)
}

func TestNewValidatedRejectsMisalignedCoordinate(t *testing.T) {
	child, err := Root.Child(1) // steps x by childLen
	require.NoError(t, err)
	_, err = NewValidated(child.X()+1, child.Y(), child.Z(), child.Level(), child.Type())
	require.IsType(t, &MisalignedCoordinate{}, err)
}

func TestNewValidatedRejectsInconsistentType(t *testing.T) {
	child, err := Root.Child(0)
	require.NoError(t, err)
	wrongType := (child.Type() + 1) % NumTypes
	_, err = NewValidated(child.X(), child.Y(), child.Z(), child.Level(), wrongType)
	require.IsType(t, &InconsistentType{}, err)
}

func TestNewValidatedAcceptsEveryChildOfRoot(t *testing.T) {
	for morton := 0; morton < 8; morton++ {
		child, err := Root.Child(morton)
		require.NoError(t, err)
		got, err := NewValidated(child.X(), child.Y(), child.Z(), child.Level(), child.Type())
		require.NoError(t, err)
		require.True(t, got.Equal(child))
	}
}

func TestComputeTypeMatchesAncestorWalk(t *testing.T) {
	t8, err := Root.Child(3)
	require.NoError(t, err)
	t8, err = t8.Child(5)
	require.NoError(t, err)

	parent, err := t8.Parent()
	require.NoError(t, err)
	require.Equal(t, parent.Type(), t8.ComputeType(t8.Level()-1))
	require.Equal(t, Root.Type(), t8.ComputeType(0))
	require.Equal(t, t8.Type(), t8.ComputeType(t8.Level()))
}

func TestCubeIDAtMatchesAncestorCubeID(t *testing.T) {
	cur := Root
	var err error
	path := []int{2, 6, 1}
	for _, m := range path {
		cur, err = cur.Child(m)
		require.NoError(t, err)
	}
	for level := 1; level <= cur.Level(); level++ {
		ancestor := cur
		for ancestor.Level() > level {
			ancestor, err = ancestor.Parent()
			require.NoError(t, err)
		}
		require.Equal(t, ancestor.CubeID(), cur.CubeIDAt(level))
	}
}
