package buffers_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/buffers"
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/ops"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func buildCube(t *testing.T) *mesh.HalfEdgeMesh {
	t.Helper()
	m, err := ops.Box(vecmath.Vec3{0, 0, 0}, vecmath.Vec3{1, 1, 1})
	require.NoError(t, err)
	return m
}

func TestFlatTrianglesProducesTwoTrianglesPerQuadFace(t *testing.T) {
	m := buildCube(t)
	buf, err := buffers.FlatTriangles(m, true)
	require.NoError(t, err)

	// 6 quad faces, fan-triangulated into 2 triangles each.
	require.Len(t, buf.Positions, 6*2*3)
	require.Len(t, buf.Normals, len(buf.Positions))
	require.Len(t, buf.Indices, len(buf.Positions))
	for i, idx := range buf.Indices {
		require.EqualValues(t, i, idx)
	}
}

func TestFlatTrianglesSharesNoVerticesAcrossFaces(t *testing.T) {
	m := buildCube(t)
	buf, err := buffers.FlatTriangles(m, true)
	require.NoError(t, err)

	// No corner is shared: the cube's 8 vertices are repeated once per
	// triangle corner, and no index is used twice.
	require.Len(t, buf.Positions, 6*2*3)
	seen := make(map[uint32]bool, len(buf.Indices))
	for _, idx := range buf.Indices {
		require.False(t, seen[idx])
		seen[idx] = true
	}
	// Every corner of a triangle carries the same flat face normal.
	require.NotZero(t, buf.Normals[0].Len())
	require.Equal(t, buf.Normals[0], buf.Normals[1])
	require.Equal(t, buf.Normals[0], buf.Normals[2])
}

func TestSmoothTrianglesDeduplicatesVertices(t *testing.T) {
	m := buildCube(t)
	buf, err := buffers.SmoothTriangles(m, true)
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()
	require.Len(t, buf.Positions, len(r.Conn().VertexIDs()))
	require.Len(t, buf.Normals, len(buf.Positions))
	// 6 faces * 2 triangles * 3 indices.
	require.Len(t, buf.Indices, 6*2*3)
}

func TestPointsReturnsOnePositionPerVertex(t *testing.T) {
	m := buildCube(t)
	buf, err := buffers.Points(m)
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()
	require.Len(t, buf.Positions, len(r.Conn().VertexIDs()))
}

func TestLinesDeduplicatesByTwin(t *testing.T) {
	m := buildCube(t)
	buf, err := buffers.Lines(m)
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()
	// A cube has 12 undirected edges, regardless of its 24 halfedges.
	require.Len(t, buf.Positions, 12*2)
	require.Len(t, buf.Colors, len(buf.Positions))
}

func TestHalfEdgeArrowsEmitsOneArrowPerHalfEdge(t *testing.T) {
	m := buildCube(t)
	buf, err := buffers.HalfEdgeArrows(m)
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()
	numHalfEdges := len(r.Conn().HalfEdgeIDs())
	// Each arrow contributes 3 segments (shaft + two head strokes) of 2
	// points each.
	require.Len(t, buf.Positions, numHalfEdges*6)
	require.Len(t, buf.Colors, len(buf.Positions))
}

func TestFaceOverlayAssignsDistinctIdsStartingAtOne(t *testing.T) {
	m := buildCube(t)
	r := m.ReadConnectivity()
	faces := r.Conn().FaceIDs()
	r.Release()

	buf, err := buffers.FaceOverlay(m, faces[0])
	require.NoError(t, err)

	require.Len(t, buf.Positions, 6*2*3)
	require.Len(t, buf.Ids, len(buf.Positions))
	for _, id := range buf.Ids {
		require.NotZero(t, id)
	}
	// The hovered face's triangles carry the reduced hover alpha.
	require.Contains(t, buf.Alphas, float32(0.5))
}

func TestFaceOverlayWithNoHoverUsesFullAlpha(t *testing.T) {
	m := buildCube(t)
	buf, err := buffers.FaceOverlay(m, mesh.NilFace)
	require.NoError(t, err)
	for _, a := range buf.Alphas {
		require.Equal(t, float32(1.0), a)
	}
}
