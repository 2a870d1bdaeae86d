package mesh_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func cubePositions() []vecmath.Vec3 {
	return []vecmath.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
}

func cubeFaces() [][]int {
	return [][]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{1, 2, 6, 5}, // right
		{2, 3, 7, 6}, // back
		{3, 0, 4, 7}, // left
	}
}

func TestBuildFromPolygonsCube(t *testing.T) {
	m, err := mesh.BuildFromPolygons(cubePositions(), cubeFaces())
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()

	require.Equal(t, 8, r.Conn().NumVertices())
	require.Equal(t, 6, r.Conn().NumFaces())
	require.Equal(t, 24, r.Conn().NumHalfEdges())

	r.Conn().AllHalfEdges(func(id mesh.HalfEdgeID, he mesh.HalfEdge) bool {
		require.True(t, he.Twin.Valid())
		require.True(t, he.Next.Valid())
		require.True(t, he.Vertex.Valid())
		return true
	})
}

func TestBuildFromPolygonsRejectsShortPolygon(t *testing.T) {
	_, err := mesh.BuildFromPolygons(cubePositions(), [][]int{{0, 1}})
	require.Error(t, err)
	require.Equal(t, mesherr.KindNonManifold, mesherr.KindOf(err))
}

func TestBuildFromPolygonsRejectsDuplicateIndices(t *testing.T) {
	_, err := mesh.BuildFromPolygons(cubePositions(), [][]int{{0, 1, 1}})
	require.Error(t, err)
	require.Equal(t, mesherr.KindNonManifold, mesherr.KindOf(err))
}

func TestBuildFromPolygonsRejectsOutOfBoundsIndex(t *testing.T) {
	_, err := mesh.BuildFromPolygons(cubePositions(), [][]int{{0, 1, 99}})
	require.Error(t, err)
}

func TestBuildFromPolygonsOpenDisk(t *testing.T) {
	// A single triangle has a boundary loop around its outside: every
	// halfedge ends up with a twin after add_boundary_halfedges, and
	// the boundary halfedges carry no face.
	positions := []vecmath.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	m, err := mesh.BuildFromPolygons(positions, [][]int{{0, 1, 2}})
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()

	require.Equal(t, 6, r.Conn().NumHalfEdges())

	boundaryCount := 0
	r.Conn().AllHalfEdges(func(id mesh.HalfEdgeID, he mesh.HalfEdge) bool {
		if !he.Face.Valid() {
			boundaryCount++
		}
		return true
	})
	require.Equal(t, 3, boundaryCount)
}

func TestFaceVerticesMatchInput(t *testing.T) {
	m, err := mesh.BuildFromPolygons(cubePositions(), cubeFaces())
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()

	faces := r.Conn().FaceIDs()
	require.Len(t, faces, 6)
	for _, f := range faces {
		verts, err := r.Conn().FaceVertices(f)
		require.NoError(t, err)
		require.Len(t, verts, 4)
	}
}
