package tetra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyLessOrdersByLevelThenBits(t *testing.T) {
	a := Compact(3, 10)
	b := Compact(3, 11)
	c := Compact(4, 0)

	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.True(t, b.Less(c))
	require.False(t, a.Less(a))
}

func TestKeyMax(t *testing.T) {
	a := Compact(5, 100)
	b := Compact(5, 200)
	require.Equal(t, b, a.Max(b))
	require.Equal(t, b, b.Max(a))
}

func TestRootKeyIsValidAndZero(t *testing.T) {
	require.True(t, RootKey.IsValid())
	require.Equal(t, 0, RootKey.Level())
	require.Equal(t, uint64(0), RootKey.LowBits())
	require.Equal(t, uint64(0), RootKey.HighBits())
}

func TestKeyIsValidRejectsStrayHighBitsInCompactForm(t *testing.T) {
	// level 2 only uses 12 bits; bit 12 set is out of range for the level.
	k := Compact(2, 1<<12)
	require.False(t, k.IsValid())
}

func TestKeyIsAdjacentTo(t *testing.T) {
	a := Compact(10, 5)
	b := Compact(10, 6)
	c := Compact(10, 7)
	d := Compact(9, 6)

	require.True(t, a.IsAdjacentTo(b))
	require.True(t, b.IsAdjacentTo(a))
	require.False(t, a.IsAdjacentTo(c))
	require.False(t, a.IsAdjacentTo(d)) // different level
}

func TestKeyCanMergeWith(t *testing.T) {
	a := Compact(6, 20)
	b := Compact(6, 21)
	c := Compact(6, 25)

	require.True(t, a.CanMergeWith(b))
	require.False(t, a.CanMergeWith(c))
}

func TestExtendedKeySpillsIntoHigh(t *testing.T) {
	k := Extended(15, 0xFFFFFFFFFFFFFFFF, 3)
	require.Equal(t, 15, k.Level())
	require.Equal(t, uint64(3), k.HighBits())
}
