package ops_test

import (
	"math"
	"testing"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/ops"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

// hexFan builds a hub vertex (index 0) surrounded by six triangles, a
// flat hexagon in the z = 0 plane, so the hub has a full interior fan
// of six outgoing edges with no boundary.
func hexFan(t *testing.T) *mesh.HalfEdgeMesh {
	t.Helper()
	positions := []vecmath.Vec3{{0, 0, 0}}
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		positions = append(positions, vecmath.Vec3{float32(math.Cos(a)), float32(math.Sin(a)), 0})
	}
	var faces [][]int
	for i := 1; i <= 6; i++ {
		next := i + 1
		if next > 6 {
			next = 1
		}
		faces = append(faces, []int{0, i, next})
	}
	m, err := mesh.BuildFromPolygons(positions, faces)
	require.NoError(t, err)
	return m
}

func TestSplitVertexAddsTwoFacesAndSeparatesFans(t *testing.T) {
	m := hexFan(t)
	r := m.ReadConnectivity()
	verts := r.Conn().VertexIDs()
	require.Len(t, verts, 7)
	hub := verts[0]
	vRight := verts[1]
	vLeft := verts[4]
	r.Release()

	newW, err := ops.SplitVertex(m, hub, vLeft, vRight, vecmath.Vec3{0, 0, 1})
	require.NoError(t, err)
	require.True(t, newW.Valid())
	require.NotEqual(t, hub, newW)

	rr := m.ReadConnectivity()
	defer rr.Release()
	require.Len(t, rr.Conn().FaceIDs(), 8, "splitting a closed fan adds exactly two faces")
	require.Len(t, rr.Conn().VertexIDs(), 8)

	hubFan, err := rr.Conn().VertexFan(hub)
	require.NoError(t, err)
	wFan, err := rr.Conn().VertexFan(newW)
	require.NoError(t, err)
	require.NotEmpty(t, hubFan)
	require.NotEmpty(t, wFan)
}
