// Package vecmath provides the small set of Vec3 helpers meshkit's
// geometry needs on top of github.com/go-gl/mathgl/mgl32, plus the
// mesh-space numeric semantics spec.md §4.6 calls out explicitly: safe
// normalization against the zero vector, and FiniteOr for replacing a
// non-finite result with a fallback. Noise sampling lives in noisefield.
package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is meshkit's position/normal/offset type. It is a plain alias
// for mgl32.Vec3 so every channel, buffer, and edit-op signature can
// use the same arithmetic (Add, Sub, Cross, Dot, ...) the mathgl
// package already provides.
type Vec3 = mgl32.Vec3

// Zero is the additive identity, and the default value for channels
// that don't configure one explicitly (normals, UVs).
var Zero = Vec3{}

// SafeNormalize returns v normalized to unit length. Per spec.md
// §4.6 ("normalize is safe against zero vectors"), a zero (or
// near-zero) vector returns an arbitrary unit vector (+X) instead of
// producing NaN components.
func SafeNormalize(v Vec3) Vec3 {
	if v.Dot(v) < 1e-12 {
		return Vec3{1, 0, 0}
	}
	return v.Normalize()
}

// Lerp linearly interpolates between a and b by t (unclamped, matching
// spec.md's divide_edge "lerp(src, dst, t)").
func Lerp(a, b Vec3, t float32) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// FaceNormal computes a face normal from its first three vertices, per
// spec.md §4.6 ("extrude_faces... normals computed from the first
// three vertices"). Returns (normal, false) for a degenerate triangle
// (collinear or coincident points), since callers must fail rather than
// silently extrude along an undefined direction.
func FaceNormal(p0, p1, p2 Vec3) (Vec3, bool) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	n := e1.Cross(e2)
	if n.Dot(n) < 1e-12 {
		return Vec3{}, false
	}
	return n.Normalize(), true
}

// FiniteOr returns v if every component is finite, otherwise def. Used
// when a computed value (e.g. a centroid average) must degrade
// gracefully instead of poisoning downstream buffers with NaN.
func FiniteOr(v, def Vec3) Vec3 {
	if isFinite(v.X()) && isFinite(v.Y()) && isFinite(v.Z()) {
		return v
	}
	return def
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
