package mesherr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/stretchr/testify/require"
)

func TestErrorKindAndMessage(t *testing.T) {
	err := mesherr.New(mesherr.KindNonManifold, "vertex %d has two fans", 3)
	require.Equal(t, mesherr.KindNonManifold, err.Kind())
	require.Contains(t, err.Error(), "NonManifold")
	require.Contains(t, err.Error(), "vertex 3 has two fans")
}

func TestWrapPreservesCauseAndKind(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := mesherr.Wrap(mesherr.KindIoError, cause, "writing OBJ")

	require.ErrorIs(t, err, cause)
	require.Equal(t, mesherr.KindIoError, mesherr.KindOf(err))
}

func TestIsComparesByKindOnly(t *testing.T) {
	a := mesherr.New(mesherr.KindChannelBorrowed, "reader active")
	b := mesherr.New(mesherr.KindChannelBorrowed, "writer active")

	require.True(t, errors.Is(a, b))
	require.False(t, errors.Is(a, mesherr.New(mesherr.KindChannelMissing, "x")))
}

func TestKindOfUnknownForPlainError(t *testing.T) {
	require.Equal(t, mesherr.KindUnknown, mesherr.KindOf(errors.New("plain")))
}

func TestErrorIsSentinel(t *testing.T) {
	err := mesherr.New(mesherr.KindNonManifold, "vertex %d has two fans", 3)
	require.True(t, errors.Is(err, mesherr.ErrNonManifold))
	require.False(t, errors.Is(err, mesherr.ErrCorruptMesh))
}

func TestWrapIsSentinel(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := mesherr.Wrap(mesherr.KindIoError, cause, "writing OBJ")
	require.True(t, errors.Is(err, mesherr.ErrIoError))
	require.True(t, errors.Is(err, cause))
}
