// SPDX-License-Identifier: MIT
package ops

import (
	"math"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/vecmath"
)

// UVSphere builds a latitude/longitude sphere: a top and bottom pole,
// `rings-1` intermediate latitude rings of `segments` vertices each,
// triangular caps, and quad bands between intermediate rings. Grounded
// on original_source/.../mesh/halfedge/primitives.rs's UVSphere::build.
func UVSphere(center vecmath.Vec3, segments, rings int, radius float32) (*mesh.HalfEdgeMesh, error) {
	if segments < 3 || rings < 2 {
		return nil, mesherr.New(mesherr.KindNonManifold, "uv_sphere requires segments >= 3 and rings >= 2, got segments=%d rings=%d", segments, rings)
	}

	var positions []vecmath.Vec3
	positions = append(positions, vecmath.Vec3{center[0], center[1] + radius, center[2]})

	for i := 0; i < rings-1; i++ {
		phi := math.Pi * float64(i+1) / float64(rings)
		for j := 0; j < segments; j++ {
			theta := 2.0 * math.Pi * float64(j) / float64(segments)
			x := float32(math.Sin(phi)*math.Cos(theta)) * radius
			y := float32(math.Cos(phi)) * radius
			z := float32(math.Sin(phi)*math.Sin(theta)) * radius
			positions = append(positions, vecmath.Vec3{center[0] + x, center[1] + y, center[2] + z})
		}
	}

	bottomVertex := len(positions)
	positions = append(positions, vecmath.Vec3{center[0], center[1] - radius, center[2]})

	var polygons [][]int
	topVertex := 0
	for i := 0; i < segments; i++ {
		i0 := i + 1
		i1 := (i+1)%segments + 1
		polygons = append(polygons, []int{topVertex, i1, i0})
	}
	for i := 0; i < segments; i++ {
		i0 := i + segments*(rings-2) + 1
		i1 := (i+1)%segments + segments*(rings-2) + 1
		polygons = append(polygons, []int{bottomVertex, i0, i1})
	}
	for j := 0; j < rings-2; j++ {
		j0 := j*segments + 1
		j1 := (j+1)*segments + 1
		for i := 0; i < segments; i++ {
			i0 := j0 + i
			i1 := j0 + (i+1)%segments
			i2 := j1 + (i+1)%segments
			i3 := j1 + i
			polygons = append(polygons, []int{i0, i1, i2, i3})
		}
	}

	return mesh.BuildFromPolygons(positions, polygons)
}
