// The tables here are generated, not transcribed from a reference
// implementation (see the package doc in tables.go for why). This file
// is the golden-style self-check that stands in for comparing against
// upstream literal constants: it re-derives the bijection properties
// the generated tables must hold and fails loudly if generation ever
// regresses, mirroring the teacher's gold_table_test.go pattern of
// checking structural invariants against an independent slow model
// rather than a literal expected-value table.
package conn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalIndexIsIdentityWithCubeID(t *testing.T) {
	for pt := 0; pt < NumTypes; pt++ {
		for li := 0; li < NumCubes; li++ {
			require.Equal(t, li, Gen.ParentTypeLocalIndexToCubeID[pt][li])
		}
	}
	for ty := 0; ty < NumTypes; ty++ {
		for c := 0; c < NumCubes; c++ {
			require.Equal(t, c, Gen.TypeCubeIDToLocalIndex[ty][c])
		}
	}
}

func TestParentTypeLocalIndexToTypeIsWithinRange(t *testing.T) {
	for pt := 0; pt < NumTypes; pt++ {
		for li := 0; li < NumCubes; li++ {
			ty := Gen.ParentTypeLocalIndexToType[pt][li]
			require.GreaterOrEqual(t, ty, 0)
			require.Less(t, ty, NumTypes)
		}
	}
}

func TestCubeIDTypeToParentTypeIsInverseOfChildTable(t *testing.T) {
	for pt := 0; pt < NumTypes; pt++ {
		for c := 0; c < NumCubes; c++ {
			childType := Gen.ParentTypeLocalIndexToType[pt][c]
			require.Equal(t, pt, Gen.CubeIDTypeToParentType[c][childType],
				"parent type %d, cube id %d, child type %d", pt, c, childType)
		}
	}
}

func TestChildTypeAtAgreesWithGeneratedTable(t *testing.T) {
	// For a fixed cube id, the 6 parent types need not produce 6
	// distinct child types (multiple parent types may route the same
	// cube id to the same child type), but every parent type must
	// produce some valid, in-range type — already checked above. This
	// test instead checks the specific invariant childTypeAt enforces:
	// re-deriving the child type independently must agree with Gen.
	for pt := 0; pt < NumTypes; pt++ {
		for c := 0; c < NumCubes; c++ {
			want, ok := childTypeAt(pt, c)
			require.True(t, ok)
			require.Equal(t, want, Gen.ParentTypeLocalIndexToType[pt][c])
		}
	}
}

func TestContainsPointRejectsDegenerateVolume(t *testing.T) {
	verts := [4]point3{{}, {}, {}, {}}
	require.False(t, containsPoint(verts, point3{1, 1, 1}))
}

func TestSignedVolume6OfRootTypeZero(t *testing.T) {
	v := subdivisionVertices(point3{}, refLength, 0)
	vol := signedVolume6(v[0], v[1], v[2], v[3])
	require.NotZero(t, vol)
}
