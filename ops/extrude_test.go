package ops_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/ops"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func TestExtrudeFacesAddsCapAndSideFaces(t *testing.T) {
	m := buildQuad(t)
	r := m.ReadConnectivity()
	faces := r.Conn().FaceIDs()
	require.Len(t, faces, 1)
	r.Release()

	caps, err := ops.ExtrudeFaces(m, faces, 1.0)
	require.NoError(t, err)
	require.Len(t, caps, 1)
	require.True(t, caps[0].Valid())

	rr := m.ReadConnectivity()
	defer rr.Release()

	// One quad extruded produces 4 side quads + 1 cap quad, replacing
	// the original face.
	allFaces := rr.Conn().FaceIDs()
	require.Len(t, allFaces, 5)

	capEdges, err := rr.Conn().FaceEdges(caps[0])
	require.NoError(t, err)
	require.Len(t, capEdges, 4)

	quadCount, otherCount := 0, 0
	for _, f := range allFaces {
		edges, err := rr.Conn().FaceEdges(f)
		require.NoError(t, err)
		if len(edges) == 4 {
			quadCount++
		} else {
			otherCount++
		}
	}
	require.Equal(t, 5, quadCount)
	require.Equal(t, 0, otherCount)

	pos, err := m.Channels().Positions.Read(m.DefaultChannels().Position)
	require.NoError(t, err)
	defer pos.Release()
	require.Equal(t, 8, pos.Len())
}

func TestExtrudeFacesRejectsDegenerateFace(t *testing.T) {
	positions := []vecmath.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	m, err := mesh.BuildFromPolygons(positions, [][]int{{0, 1, 2}})
	require.NoError(t, err)

	r := m.ReadConnectivity()
	faces := r.Conn().FaceIDs()
	r.Release()

	_, err = ops.ExtrudeFaces(m, faces, 1.0)
	require.Error(t, err)
}
