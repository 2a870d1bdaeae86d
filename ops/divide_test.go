package ops_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/ops"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func buildTriangle(t *testing.T) *mesh.HalfEdgeMesh {
	t.Helper()
	positions := []vecmath.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}}
	m, err := mesh.BuildFromPolygons(positions, [][]int{{0, 1, 2}})
	require.NoError(t, err)
	return m
}

func firstHalfedge(t *testing.T, m *mesh.HalfEdgeMesh, f mesh.FaceID) mesh.HalfEdgeID {
	t.Helper()
	r := m.ReadConnectivity()
	defer r.Release()
	face, ok := r.Conn().Face(f)
	require.True(t, ok)
	return face.HalfEdge
}

func TestDivideEdgeInsertsMidpointWithoutChangingFaceCount(t *testing.T) {
	m := buildTriangle(t)
	r := m.ReadConnectivity()
	faces := r.Conn().FaceIDs()
	require.Len(t, faces, 1)
	r.Release()

	h := firstHalfedge(t, m, faces[0])
	r = m.ReadConnectivity()
	rec, ok := r.Conn().HalfEdge(h)
	require.True(t, ok)
	srcV := rec.Vertex
	nextRec, ok := r.Conn().HalfEdge(rec.Next)
	require.True(t, ok)
	dstV := nextRec.Vertex
	r.Release()

	pos, err := m.Channels().Positions.Read(m.DefaultChannels().Position)
	require.NoError(t, err)
	src := pos.Get(srcV)
	dst := pos.Get(dstV)
	want := vecmath.Lerp(src, dst, 0.5)
	pos.Release()

	newV, err := ops.DivideEdge(m, h, 0.5)
	require.NoError(t, err)

	rr := m.ReadConnectivity()
	defer rr.Release()
	require.Len(t, rr.Conn().FaceIDs(), 1, "divide_edge must not change face count")

	rec, ok = rr.Conn().HalfEdge(h)
	require.True(t, ok)
	next, ok := rr.Conn().HalfEdge(rec.Next)
	require.True(t, ok)
	require.Equal(t, newV, next.Vertex)

	pos, err = m.Channels().Positions.Read(m.DefaultChannels().Position)
	require.NoError(t, err)
	defer pos.Release()
	require.Equal(t, want, pos.Get(newV))
}

func TestDivideEdgeOnBoundaryHalfedgeKeepsFaceCount(t *testing.T) {
	m := buildTriangle(t)
	w := m.WriteConnectivity()
	require.NoError(t, w.Conn().AddBoundaryHalfEdges())
	w.Release()

	r := m.ReadConnectivity()
	faces := r.Conn().FaceIDs()
	h := firstHalfedge(t, m, faces[0])
	rec, ok := r.Conn().HalfEdge(h)
	require.True(t, ok)
	boundary := rec.Twin
	require.True(t, boundary.Valid())
	r.Release()

	_, err := ops.DivideEdge(m, boundary, 0.5)
	require.NoError(t, err)

	rr := m.ReadConnectivity()
	defer rr.Release()
	require.Len(t, rr.Conn().FaceIDs(), 1)
}
