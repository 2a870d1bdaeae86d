package noisefield_test

import (
	"math"
	"testing"

	"github.com/blackjack3d/meshkit/noisefield"
	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func TestHeightMapIsDeterministicForSameSeed(t *testing.T) {
	a := noisefield.NewHeightMap(42)
	b := noisefield.NewHeightMap(42)

	require.Equal(t, a.Get3D(1.5, -2.25, 0.75), b.Get3D(1.5, -2.25, 0.75))
}

func TestHeightMapDiffersAcrossSeeds(t *testing.T) {
	a := noisefield.NewHeightMap(1)
	b := noisefield.NewHeightMap(2)

	// Sampled off the integer lattice: gradient noise is 0 at every
	// lattice point whatever the seed.
	require.NotEqual(t, a.Get3D(3.3, 4.6, 5.2), b.Get3D(3.3, 4.6, 5.2))
}

func TestHeightMapReturnsNaNForNonFiniteInput(t *testing.T) {
	h := noisefield.NewHeightMap(7)

	require.True(t, math.IsNaN(float64(h.Get3D(float32(math.Inf(1)), 0, 0))))
	require.True(t, math.IsNaN(float64(h.Get3D(0, float32(math.NaN()), 0))))
}

func TestHeightMapDisplaceMovesAlongNormal(t *testing.T) {
	h := noisefield.NewHeightMap(3)
	p := vecmath.Vec3{1, 2, 3}
	n := vecmath.Vec3{0, 1, 0}

	out := h.Displace(p, n, 0.5)
	require.Equal(t, p[0], out[0], "displacement along a y-normal must not move x")
	require.Equal(t, p[2], out[2], "displacement along a y-normal must not move z")
}
