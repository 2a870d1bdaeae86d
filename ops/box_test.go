package ops_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/ops"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func TestBoxHasEightVerticesAndSixQuadFaces(t *testing.T) {
	m, err := ops.Box(vecmath.Vec3{0, 0, 0}, vecmath.Vec3{2, 2, 2})
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()

	verts := r.Conn().VertexIDs()
	require.Len(t, verts, 8)

	faces := r.Conn().FaceIDs()
	require.Len(t, faces, 6)
	for _, f := range faces {
		edges, err := r.Conn().FaceEdges(f)
		require.NoError(t, err)
		require.Len(t, edges, 4)
	}
}
