package mesh_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/channel"
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func TestMeshChannelsPositionDefault(t *testing.T) {
	mc := mesh.NewMeshChannels()
	dc := mesh.DefaultChannels{}
	_ = dc

	id := mc.Positions.Ensure("position", vecmath.Zero)
	r, err := mc.Positions.Read(id)
	require.NoError(t, err)
	defer r.Release()

	require.Equal(t, vecmath.Zero, r.Get(mesh.VertexID{}))
}

func TestMeshChannelsDynRoundTrip(t *testing.T) {
	mc := mesh.NewMeshChannels()
	require.NoError(t, mc.EnsureDyn(channel.FaceKey, channel.F32Value, "area", channel.DynF32(0)))

	w, err := mc.WriteDyn(channel.FaceKey, channel.F32Value, "area")
	require.NoError(t, err)
	w.Set(mesh.FaceID{}, channel.DynF32(2.5))
	w.Release()

	r, err := mc.ReadDyn(channel.FaceKey, channel.F32Value, "area")
	require.NoError(t, err)
	defer r.Release()

	v := r.Get(mesh.FaceID{})
	require.Equal(t, channel.F32Value, v.Kind)
	require.InDelta(t, 2.5, float64(v.F32), 1e-6)
}

func TestMeshChannelsCloneIsIndependent(t *testing.T) {
	mc := mesh.NewMeshChannels()
	id := mc.Positions.Ensure("position", vecmath.Zero)
	w, _ := mc.Positions.Write(id)
	w.Set(mesh.VertexID{}, vecmath.Vec3{1, 2, 3})
	w.Release()

	clone := mc.Clone()
	r, err := clone.Positions.Read(id)
	require.NoError(t, err)
	require.Equal(t, vecmath.Vec3{1, 2, 3}, r.Get(mesh.VertexID{}))
	r.Release()

	w2, _ := mc.Positions.Write(id)
	w2.Set(mesh.VertexID{}, vecmath.Vec3{9, 9, 9})
	w2.Release()

	r2, _ := clone.Positions.Read(id)
	require.Equal(t, vecmath.Vec3{1, 2, 3}, r2.Get(mesh.VertexID{}))
	r2.Release()
}
