package compact_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/compact"
	"github.com/blackjack3d/meshkit/ops"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func buildCubeCompact(t *testing.T) *compact.Mesh {
	t.Helper()
	m, err := ops.Box(vecmath.Vec3{0, 0, 0}, vecmath.Vec3{2, 2, 2})
	require.NoError(t, err)
	cm, err := compact.FromHalfEdge(m)
	require.NoError(t, err)
	return cm
}

func TestFromHalfEdgeMirrorsCubeTopology(t *testing.T) {
	cm := buildCubeCompact(t)
	require.Len(t, cm.Positions, 8)
	require.Equal(t, 6, cm.NumFaces())
	for f := 0; f < cm.NumFaces(); f++ {
		require.Len(t, cm.FaceVertices(f), 4)
	}
	// A cube has 12 edges.
	require.Len(t, cm.EdgeEndpoints, 12)
}

func TestSubdivideOnceLinearQuadruplesFacesAndKeepsOldPositions(t *testing.T) {
	cm := buildCubeCompact(t)
	oldPositions := append([]vecmath.Vec3(nil), cm.Positions...)

	next, err := cm.SubdivideOnce(compact.Linear)
	require.NoError(t, err)

	require.Equal(t, cm.NumFaces()*4, next.NumFaces())
	for f := 0; f < next.NumFaces(); f++ {
		require.Len(t, next.FaceVertices(f), 4)
	}
	for i, p := range oldPositions {
		require.Equal(t, p, next.Positions[i], "linear subdivision must not move original vertices")
	}
}

func TestSubdivideOnceCatmullClarkMovesOriginalVertices(t *testing.T) {
	cm := buildCubeCompact(t)
	oldPositions := append([]vecmath.Vec3(nil), cm.Positions...)

	next, err := cm.SubdivideOnce(compact.CatmullClark)
	require.NoError(t, err)

	moved := false
	for i := range oldPositions {
		if next.Positions[i] != oldPositions[i] {
			moved = true
			break
		}
	}
	require.True(t, moved, "catmull-clark subdivision should reposition original vertices")
}

func TestSubdivideMultiChainsSubdivisions(t *testing.T) {
	cm := buildCubeCompact(t)
	next, err := cm.SubdivideMulti(2, compact.Linear)
	require.NoError(t, err)
	require.Equal(t, cm.NumFaces()*16, next.NumFaces())
}

func TestToHalfEdgeRoundTripsFaceCount(t *testing.T) {
	cm := buildCubeCompact(t)
	next, err := cm.SubdivideOnce(compact.CatmullClark)
	require.NoError(t, err)

	m, err := next.ToHalfEdge()
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()
	require.Len(t, r.Conn().FaceIDs(), next.NumFaces())
}
