package traverse_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/traverse"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func buildTriangle(t *testing.T) *mesh.HalfEdgeMesh {
	t.Helper()
	positions := []vecmath.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	m, err := mesh.BuildFromPolygons(positions, [][]int{{0, 1, 2}})
	require.NoError(t, err)
	return m
}

func TestTwinNextRoundTrip(t *testing.T) {
	m := buildTriangle(t)
	r := m.ReadConnectivity()
	defer r.Release()

	faces := r.Conn().FaceIDs()
	require.Len(t, faces, 1)

	h := traverse.AtFace(r.Conn(), faces[0]).Halfedge().End()

	back := traverse.AtHalfEdge(r.Conn(), h).Next().Next().Next().End()
	require.Equal(t, h, back)
}

func TestCycleAroundFanReturnsToStart(t *testing.T) {
	m := buildTriangle(t)
	r := m.ReadConnectivity()
	defer r.Release()

	verts := r.Conn().VertexIDs()
	require.Len(t, verts, 3)

	h0 := traverse.AtVertex(r.Conn(), verts[0]).Halfedge().End()
	h := traverse.AtHalfEdge(r.Conn(), h0).CycleAroundFan().End()
	require.NotEqual(t, mesh.NilHalfEdge, h)

	// A corner of a lone triangle has two outgoing halfedges (one on the
	// face, one on the boundary loop), so a second step closes the cycle.
	back := traverse.AtHalfEdge(r.Conn(), h).CycleAroundFan().End()
	require.Equal(t, h0, back)
}

func TestPreviousUndoesNext(t *testing.T) {
	m := buildTriangle(t)
	r := m.ReadConnectivity()
	defer r.Release()

	faces := r.Conn().FaceIDs()
	h := traverse.AtFace(r.Conn(), faces[0]).Halfedge().End()

	next := traverse.AtHalfEdge(r.Conn(), h).Next().End()
	prev := traverse.AtHalfEdge(r.Conn(), next).Previous().End()
	require.Equal(t, h, prev)
}

func TestIsBoundaryDistinguishesInteriorFromHole(t *testing.T) {
	m := buildTriangle(t)
	r := m.ReadConnectivity()
	defer r.Release()

	faces := r.Conn().FaceIDs()
	interior := traverse.AtFace(r.Conn(), faces[0]).Halfedge().End()

	isBoundary, err := traverse.AtHalfEdge(r.Conn(), interior).IsBoundary()
	require.NoError(t, err)
	require.False(t, isBoundary)

	outer := traverse.AtHalfEdge(r.Conn(), interior).Twin().End()
	isBoundary, err = traverse.AtHalfEdge(r.Conn(), outer).IsBoundary()
	require.NoError(t, err)
	require.True(t, isBoundary)
}

func TestTryEndReportsMissingTwin(t *testing.T) {
	conn := mesh.NewConnectivity()
	h := conn.AllocHalfEdge(mesh.HalfEdge{})

	_, err := traverse.AtHalfEdge(conn, h).Twin().TryEnd()
	require.Error(t, err)
}
