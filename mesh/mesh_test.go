package mesh_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func TestNewMeshHasPositionChannel(t *testing.T) {
	m := mesh.New()
	_, ok := m.Channels().Positions.Lookup("position")
	require.True(t, ok)
}

func TestBoundingBoxOfCube(t *testing.T) {
	m, err := mesh.BuildFromPolygons(cubePositions(), cubeFaces())
	require.NoError(t, err)

	min, max := m.BoundingBox()
	require.Equal(t, [3]float32{-1, -1, -1}, min)
	require.Equal(t, [3]float32{1, 1, 1}, max)
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := mesh.BuildFromPolygons(cubePositions(), cubeFaces())
	require.NoError(t, err)

	clone := m.Clone()

	w, err := m.Channels().Positions.Write(m.DefaultChannels().Position)
	require.NoError(t, err)
	var firstVertex mesh.VertexID
	r := m.ReadConnectivity()
	r.Conn().AllVertices(func(v mesh.VertexID, _ mesh.Vertex) bool {
		firstVertex = v
		return false
	})
	r.Release()
	w.Set(firstVertex, vecmath.Vec3{100, 100, 100})
	w.Release()

	cloneRead, err := clone.Channels().Positions.Read(clone.DefaultChannels().Position)
	require.NoError(t, err)
	defer cloneRead.Release()
	require.NotEqual(t, vecmath.Vec3{100, 100, 100}, cloneRead.Get(firstVertex))
}
