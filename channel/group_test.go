package channel_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/channel"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func TestGroupEnsureIsIdempotent(t *testing.T) {
	g := channel.NewGroup[int, vecmath.Vec3]()
	a := g.Ensure("position", vecmath.Zero)
	b := g.Ensure("position", vecmath.Vec3{1, 1, 1})
	require.Equal(t, a, b)

	w, err := g.Write(a)
	require.NoError(t, err)
	require.Equal(t, vecmath.Zero, w.Get(0))
	w.Release()
}

func TestGroupCreateRejectsDuplicateName(t *testing.T) {
	g := channel.NewGroup[int, float32]()
	_, err := g.Create("length", 0)
	require.NoError(t, err)

	_, err = g.Create("length", 0)
	require.Error(t, err)
	require.Equal(t, mesherr.KindChannelMissing, mesherr.KindOf(err))
}

func TestGroupWriteConflictsWithWrite(t *testing.T) {
	g := channel.NewGroup[int, bool]()
	id := g.Ensure("selected", false)

	w1, err := g.Write(id)
	require.NoError(t, err)
	defer w1.Release()

	_, err = g.Write(id)
	require.Error(t, err)
	require.Equal(t, mesherr.KindChannelBorrowed, mesherr.KindOf(err))
}

func TestGroupReadConflictsWithWrite(t *testing.T) {
	g := channel.NewGroup[int, bool]()
	id := g.Ensure("selected", false)

	w, err := g.Write(id)
	require.NoError(t, err)
	defer w.Release()

	_, err = g.Read(id)
	require.Error(t, err)
	require.Equal(t, mesherr.KindChannelBorrowed, mesherr.KindOf(err))
}

func TestGroupMultipleReadersAllowed(t *testing.T) {
	g := channel.NewGroup[int, bool]()
	id := g.Ensure("selected", false)

	r1, err := g.Read(id)
	require.NoError(t, err)
	defer r1.Release()

	r2, err := g.Read(id)
	require.NoError(t, err)
	defer r2.Release()
}

func TestGroupRemoveFailsWhileBorrowed(t *testing.T) {
	g := channel.NewGroup[int, bool]()
	id := g.Ensure("selected", false)

	r, err := g.Read(id)
	require.NoError(t, err)

	_, err = g.Remove(id)
	require.Error(t, err)
	require.Equal(t, mesherr.KindChannelBorrowed, mesherr.KindOf(err))

	r.Release()

	_, err = g.Remove(id)
	require.NoError(t, err)

	_, ok := g.Lookup("selected")
	require.False(t, ok)
}

func TestGroupCloneIsIndependent(t *testing.T) {
	g := channel.NewGroup[int, float32]()
	id := g.Ensure("weight", 1)
	w, _ := g.Write(id)
	w.Set(0, 5)
	w.Release()

	clone := g.Clone()
	cloneID, ok := clone.Lookup("weight")
	require.True(t, ok)

	r, err := clone.Read(cloneID)
	require.NoError(t, err)
	require.Equal(t, float32(5), r.Get(0))
	r.Release()

	w2, _ := g.Write(id)
	w2.Set(0, 9)
	w2.Release()

	r2, _ := clone.Read(cloneID)
	require.Equal(t, float32(5), r2.Get(0))
	r2.Release()
}
