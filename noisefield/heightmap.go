// SPDX-License-Identifier: MIT

// Package noisefield provides the HeightMap value type: a gradient-noise
// field sampled by dataflow nodes (spec.md §4.6's PerlinNoise.get_3d) to
// drive vertex displacement.
package noisefield

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/blackjack3d/meshkit/vecmath"
)

// Fixed octave/persistence parameters for the underlying gradient noise:
// three octaves, each sampled at twice the frequency (beta) and half the
// weight (alpha) of the one before. None of them is exposed to callers.
const (
	defaultAlpha   = 2.0
	defaultBeta    = 2.0
	defaultOctaves = int32(3)
)

// HeightMap is a seeded 3D gradient noise field. It is immutable once
// constructed: every Get3D call is a pure function of (x, y, z).
type HeightMap struct {
	p *perlin.Perlin
}

// NewHeightMap builds a HeightMap seeded deterministically by seed, so
// that the same seed always reproduces the same field. This matches
// PerlinNoise's role as a dataflow Value: two nodes constructed with the
// same seed parameter must sample identical fields.
func NewHeightMap(seed int64) *HeightMap {
	return &HeightMap{p: perlin.NewPerlin(defaultAlpha, defaultBeta, defaultOctaves, seed)}
}

// Get3D samples the field at (x, y, z). Non-finite inputs return NaN
// rather than panicking or propagating into the underlying generator,
// matching PerlinNoise.get_3d's guard in spec.md §4.6: a malformed
// upstream dataflow value must not crash the whole graph evaluation.
func (h *HeightMap) Get3D(x, y, z float32) float32 {
	if !isFinite32(x) || !isFinite32(y) || !isFinite32(z) {
		return float32(math.NaN())
	}
	return float32(h.p.Noise3D(float64(x), float64(y), float64(z)))
}

// Displace samples the field at p and returns p moved along n by the
// sampled value scaled by amplitude. It is the building block the
// nodelib displacement node applies per vertex.
func (h *HeightMap) Displace(p, n vecmath.Vec3, amplitude float32) vecmath.Vec3 {
	v := h.Get3D(p[0], p[1], p[2]) * amplitude
	return vecmath.Vec3{p[0] + n[0]*v, p[1] + n[1]*v, p[2] + n[2]*v}
}

func isFinite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
