package ops_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/ops"
	"github.com/stretchr/testify/require"
)

func TestChamferVertexReplacesHubWithHexagon(t *testing.T) {
	m := hexFan(t)
	r := m.ReadConnectivity()
	hub := r.Conn().VertexIDs()[0]
	beforeFaces := len(r.Conn().FaceIDs())
	r.Release()

	f, newVerts, err := ops.ChamferVertex(m, hub, 0.3)
	require.NoError(t, err)
	require.True(t, f.Valid())
	require.Len(t, newVerts, 6)

	rr := m.ReadConnectivity()
	defer rr.Release()

	edges, err := rr.Conn().FaceEdges(f)
	require.NoError(t, err)
	require.Len(t, edges, 6)

	// The six original triangles each lost their corner at the hub and
	// gained one edge, plus the one new hexagonal chamfer face.
	require.Len(t, rr.Conn().FaceIDs(), beforeFaces+1)

	for _, id := range rr.Conn().VertexIDs() {
		require.NotEqual(t, hub, id)
	}
}

func TestChamferVertexRejectsAmountOutOfRange(t *testing.T) {
	m := hexFan(t)
	r := m.ReadConnectivity()
	hub := r.Conn().VertexIDs()[0]
	r.Release()

	_, _, err := ops.ChamferVertex(m, hub, 1.5)
	require.Error(t, err)
}
