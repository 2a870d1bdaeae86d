package ops_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/ops"
	"github.com/stretchr/testify/require"
)

func TestDuplicateEdgeCreatesDetachedTwinPair(t *testing.T) {
	m := buildTriangle(t)
	r := m.ReadConnectivity()
	faces := r.Conn().FaceIDs()
	r.Release()
	h := firstHalfedge(t, m, faces[0])

	r = m.ReadConnectivity()
	srcWant, dstWant, err := r.Conn().EdgeEndpoints(h)
	require.NoError(t, err)
	r.Release()

	fwd, err := ops.DuplicateEdge(m, h)
	require.NoError(t, err)
	require.True(t, fwd.Valid())

	rr := m.ReadConnectivity()
	defer rr.Release()
	rec, ok := rr.Conn().HalfEdge(fwd)
	require.True(t, ok)
	require.False(t, rec.Face.Valid())
	require.Equal(t, srcWant, rec.Vertex)

	twinRec, ok := rr.Conn().HalfEdge(rec.Twin)
	require.True(t, ok)
	require.Equal(t, dstWant, twinRec.Vertex)
	require.Equal(t, rec.Twin, rec.Next, "the duplicated pair should form its own two-halfedge loop")
	require.Equal(t, fwd, twinRec.Next)
}
