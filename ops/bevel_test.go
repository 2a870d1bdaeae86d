package ops_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/ops"
	"github.com/stretchr/testify/require"
)

func TestBevelEdgesAddsOneFaceAndTwoVertices(t *testing.T) {
	m, shared := twoTriangles(t)

	r := m.ReadConnectivity()
	beforeFaces := len(r.Conn().FaceIDs())
	beforeVerts := len(r.Conn().VertexIDs())
	r.Release()

	newFaces, err := ops.BevelEdges(m, []mesh.HalfEdgeID{shared}, 0.1)
	require.NoError(t, err)
	require.Len(t, newFaces, 1)

	rr := m.ReadConnectivity()
	defer rr.Release()
	require.Equal(t, beforeFaces+1, len(rr.Conn().FaceIDs()), "bevel_edges adds exactly one new face per edge")
	require.Equal(t, beforeVerts+2, len(rr.Conn().VertexIDs()), "bevel_edges adds exactly two new vertices per edge")

	verts, err := rr.Conn().FaceVertices(newFaces[0])
	require.NoError(t, err)
	require.Len(t, verts, 4, "the new face is a quad strip segment")
}

func TestBevelEdgesDeduplicatesByTwin(t *testing.T) {
	m, shared := twoTriangles(t)

	r := m.ReadConnectivity()
	rec, ok := r.Conn().HalfEdge(shared)
	require.True(t, ok)
	twin := rec.Twin
	beforeFaces := len(r.Conn().FaceIDs())
	r.Release()

	newFaces, err := ops.BevelEdges(m, []mesh.HalfEdgeID{shared, twin}, 0.1)
	require.NoError(t, err)
	require.Len(t, newFaces, 1, "passing both directions of one edge must bevel it once")

	rr := m.ReadConnectivity()
	defer rr.Release()
	require.Equal(t, beforeFaces+1, len(rr.Conn().FaceIDs()))
}

func TestBevelEdgesRejectsBoundaryEdge(t *testing.T) {
	m, shared := twoTriangles(t)

	r := m.ReadConnectivity()
	rec, ok := r.Conn().HalfEdge(shared)
	require.True(t, ok)
	var boundary mesh.HalfEdgeID
	for _, h := range r.Conn().HalfEdgeIDs() {
		he, ok := r.Conn().HalfEdge(h)
		if !ok || h == shared || h == rec.Twin {
			continue
		}
		twin, ok := r.Conn().HalfEdge(he.Twin)
		if ok && (!he.Face.Valid() || !twin.Face.Valid()) {
			boundary = h
			break
		}
	}
	r.Release()
	require.True(t, boundary.Valid(), "expected to find a boundary edge on the open mesh")

	_, err := ops.BevelEdges(m, []mesh.HalfEdgeID{boundary}, 0.1)
	require.Error(t, err)
}

func TestBevelEdgesRejectsNonPositiveAmount(t *testing.T) {
	m, shared := twoTriangles(t)

	_, err := ops.BevelEdges(m, []mesh.HalfEdgeID{shared}, 0)
	require.Error(t, err)
}
