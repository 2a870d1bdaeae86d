package ops_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/ops"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

// twoTriangles builds a unit square split into two triangles sharing
// the diagonal edge 1-3, with boundary halfedges added so the shared
// edge has a real twin on each side.
func twoTriangles(t *testing.T) (*mesh.HalfEdgeMesh, mesh.HalfEdgeID) {
	t.Helper()
	positions := []vecmath.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	m, err := mesh.BuildFromPolygons(positions, [][]int{{0, 1, 3}, {1, 2, 3}})
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()
	var shared mesh.HalfEdgeID
	for _, h := range r.Conn().HalfEdgeIDs() {
		rec, _ := r.Conn().HalfEdge(h)
		twin, ok := r.Conn().HalfEdge(rec.Twin)
		if ok && rec.Face.Valid() && twin.Face.Valid() && rec.Face != twin.Face {
			shared = h
			break
		}
	}
	require.True(t, shared.Valid(), "expected to find the shared diagonal halfedge")
	return m, shared
}

func TestDissolveEdgeMergesTwoTrianglesIntoOneFace(t *testing.T) {
	m, shared := twoTriangles(t)

	err := ops.DissolveEdge(m, shared)
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()
	require.Len(t, r.Conn().FaceIDs(), 1)

	faces := r.Conn().FaceIDs()
	edges, err := r.Conn().FaceEdges(faces[0])
	require.NoError(t, err)
	require.Len(t, edges, 4, "merged face should be the original quad")
}

func TestDissolveEdgeRejectsMissingTwin(t *testing.T) {
	m := mesh.New()
	w := m.WriteConnectivity()
	h := w.Conn().AllocHalfEdge(mesh.HalfEdge{})
	w.Release()

	err := ops.DissolveEdge(m, h)
	require.Error(t, err)
}
