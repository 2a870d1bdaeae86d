package objio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/objio"
	"github.com/blackjack3d/meshkit/ops"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadRoundTripsCube(t *testing.T) {
	m, err := ops.Box(vecmath.Vec3{0, 0, 0}, vecmath.Vec3{1, 1, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, objio.Write(&buf, m))

	got, err := objio.Read(&buf)
	require.NoError(t, err)

	r := m.ReadConnectivity()
	defer r.Release()
	rr := got.ReadConnectivity()
	defer rr.Release()
	require.Equal(t, len(r.Conn().VertexIDs()), len(rr.Conn().VertexIDs()))
	require.Equal(t, len(r.Conn().FaceIDs()), len(rr.Conn().FaceIDs()))
}

func TestReadRejectsFaceWithTooFewVertices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2\n"
	_, err := objio.Read(strings.NewReader(src))
	require.Error(t, err)
	require.Equal(t, mesherr.KindNonManifold, mesherr.KindOf(err))
	require.ErrorContains(t, err, "line 4")
}

func TestReadRejectsFaceWithDuplicateIndex(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 1\n"
	_, err := objio.Read(strings.NewReader(src))
	require.Error(t, err)
	require.Equal(t, mesherr.KindNonManifold, mesherr.KindOf(err))
	require.ErrorContains(t, err, "line 4")
}

func TestReadSkipsUnsupportedLines(t *testing.T) {
	src := "# a comment\nvn 0 0 1\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := objio.Read(strings.NewReader(src))
	require.NoError(t, err)
	r := m.ReadConnectivity()
	defer r.Release()
	require.Len(t, r.Conn().FaceIDs(), 1)
}

func TestReadAcceptsSlashSuffixedFaceIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/2 3/3\n"
	m, err := objio.Read(strings.NewReader(src))
	require.NoError(t, err)
	r := m.ReadConnectivity()
	defer r.Release()
	require.Len(t, r.Conn().FaceIDs(), 1)
}
