package arena_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/arena"
	"github.com/stretchr/testify/require"
)

func TestAllocateGetFree(t *testing.T) {
	a := arena.New[string]()

	id := a.Allocate("hello")
	v, ok := a.Get(id)
	require.True(t, ok)
	require.Equal(t, "hello", *v)
	require.Equal(t, 1, a.Len())

	require.True(t, a.Free(id))
	_, ok = a.Get(id)
	require.False(t, ok)
	require.Equal(t, 0, a.Len())
}

func TestFreedSlotIsReusedWithBumpedGeneration(t *testing.T) {
	a := arena.New[int]()

	first := a.Allocate(1)
	a.Free(first)
	second := a.Allocate(2)

	require.True(t, a.Contains(second))
	require.False(t, a.Contains(first), "stale id must not alias the reused slot")

	v, ok := a.Get(second)
	require.True(t, ok)
	require.Equal(t, 2, *v)
}

func TestFreeUnknownIDIsNoop(t *testing.T) {
	a := arena.New[int]()
	require.False(t, a.Free(arena.ID{}))
}

func TestAllVisitsLiveElementsOnly(t *testing.T) {
	a := arena.New[int]()
	id1 := a.Allocate(10)
	id2 := a.Allocate(20)
	a.Allocate(30)
	a.Free(id2)

	seen := map[int]bool{}
	a.All(func(id arena.ID, v *int) bool {
		seen[*v] = true
		return true
	})

	require.True(t, seen[10])
	require.True(t, seen[30])
	require.False(t, seen[20])
	require.Len(t, a.IDs(), 2)
	require.NotEqual(t, arena.ID{}, id1)
}

func TestCloneIsIndependent(t *testing.T) {
	a := arena.New[int]()
	id := a.Allocate(1)

	clone := a.Clone()
	clone.Free(id)

	_, okOriginal := a.Get(id)
	_, okClone := clone.Get(id)
	require.True(t, okOriginal)
	require.False(t, okClone)
}
