package vecmath_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/vecmath"
	"github.com/stretchr/testify/require"
)

func TestSafeNormalizeHandlesZeroVector(t *testing.T) {
	n := vecmath.SafeNormalize(vecmath.Vec3{})
	require.InDelta(t, 1.0, float64(n.Dot(n)), 1e-6)
}

func TestSafeNormalizeUnitLength(t *testing.T) {
	n := vecmath.SafeNormalize(vecmath.Vec3{3, 0, 4})
	require.InDelta(t, 1.0, float64(n.Dot(n)), 1e-5)
}

func TestLerp(t *testing.T) {
	a := vecmath.Vec3{0, 0, 0}
	b := vecmath.Vec3{10, 0, 0}
	mid := vecmath.Lerp(a, b, 0.5)
	require.InDelta(t, 5.0, float64(mid.X()), 1e-6)
}

func TestFaceNormalDegenerate(t *testing.T) {
	_, ok := vecmath.FaceNormal(vecmath.Vec3{0, 0, 0}, vecmath.Vec3{1, 0, 0}, vecmath.Vec3{2, 0, 0})
	require.False(t, ok)
}

func TestFaceNormalRegular(t *testing.T) {
	n, ok := vecmath.FaceNormal(vecmath.Vec3{0, 0, 0}, vecmath.Vec3{1, 0, 0}, vecmath.Vec3{0, 1, 0})
	require.True(t, ok)
	require.InDelta(t, 0.0, float64(n.X()), 1e-6)
	require.InDelta(t, 0.0, float64(n.Y()), 1e-6)
	require.InDelta(t, 1.0, float64(n.Z()), 1e-6)
}
