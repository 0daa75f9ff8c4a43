package tetra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCleanFamily(t *testing.T) {
	var kids []Tet
	for m := 0; m < 8; m++ {
		c, err := Root.Child(m)
		require.NoError(t, err)
		kids = append(kids, c)
	}
	tets := append([]Tet{Root}, kids...)

	report := Validate(tets, nil)
	require.Empty(t, report.InvalidTets)
	require.Empty(t, report.Orphans)
	require.Empty(t, report.InvalidParentChild)
	require.Equal(t, 0, report.OrderingViolations)
	require.Equal(t, 8, report.Stats.CountByLevel[1])
	require.Equal(t, 1, report.Stats.CountByLevel[0])
}

func TestValidateDetectsOrphan(t *testing.T) {
	child, err := Root.Child(3)
	require.NoError(t, err)
	// Root intentionally omitted: child's parent is not present.
	report := Validate([]Tet{child}, nil)
	require.Len(t, report.Orphans, 1)
	require.True(t, report.Orphans[0].Equal(child))
}

func TestValidateFaceNeighborClaims(t *testing.T) {
	child, err := Root.Child(4)
	require.NoError(t, err)
	neighbor, ok := child.FaceNeighbor(1)
	require.True(t, ok)

	good := FaceNeighborClaim{T: child, Other: neighbor.Tet, Face: 1, ReportFace: neighbor.Face}
	bad := FaceNeighborClaim{T: child, Other: Root, Face: 1, ReportFace: neighbor.Face}

	report := Validate([]Tet{child, neighbor.Tet}, []FaceNeighborClaim{good, bad})
	require.Len(t, report.InvalidFaceNeighbors, 1)
	require.Equal(t, bad, report.InvalidFaceNeighbors[0])
}

func TestValidateNoOpWhenDisabled(t *testing.T) {
	SetValidationEnabled(false)
	defer SetValidationEnabled(true)

	report := Validate([]Tet{{x: -1}}, nil)
	require.Equal(t, Report{}, report)
}

func TestValidationEnabledDefaultsTrue(t *testing.T) {
	require.True(t, ValidationEnabled())
}
