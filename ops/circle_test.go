package ops_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/ops"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func TestCircleBuildsClosedPolygon(t *testing.T) {
	m, err := ops.Circle(vecmath.Vec3{0, 0, 0}, 1.0, 8)
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()

	require.Len(t, r.Conn().VertexIDs(), 8)
	faces := r.Conn().FaceIDs()
	require.Len(t, faces, 1)
	edges, err := r.Conn().FaceEdges(faces[0])
	require.NoError(t, err)
	require.Len(t, edges, 8)
}

func TestCircleOpenHasNoFace(t *testing.T) {
	m, err := ops.CircleOpen(vecmath.Vec3{0, 0, 0}, 1.0, 6)
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()

	require.Len(t, r.Conn().VertexIDs(), 6)
	require.Len(t, r.Conn().FaceIDs(), 0)
}
