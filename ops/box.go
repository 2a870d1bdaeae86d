// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
)

// Box builds an axis-aligned box mesh centered at center with the
// given size, one quad face per side. Grounded on
// original_source/.../mesh/halfedge/primitives.rs's Box::build: eight
// corner vertices and six explicit quad windings (top, bottom, front,
// back, left, right).
func Box(center, size vecmath.Vec3) (*mesh.HalfEdgeMesh, error) {
	h := vecmath.Vec3{size[0] * 0.5, size[1] * 0.5, size[2] * 0.5}

	v1 := vecmath.Vec3{center[0] - h[0], center[1] - h[1], center[2] - h[2]}
	v2 := vecmath.Vec3{center[0] + h[0], center[1] - h[1], center[2] - h[2]}
	v3 := vecmath.Vec3{center[0] + h[0], center[1] - h[1], center[2] + h[2]}
	v4 := vecmath.Vec3{center[0] - h[0], center[1] - h[1], center[2] + h[2]}
	v5 := vecmath.Vec3{center[0] - h[0], center[1] + h[1], center[2] - h[2]}
	v6 := vecmath.Vec3{center[0] - h[0], center[1] + h[1], center[2] + h[2]}
	v7 := vecmath.Vec3{center[0] + h[0], center[1] + h[1], center[2] + h[2]}
	v8 := vecmath.Vec3{center[0] + h[0], center[1] + h[1], center[2] - h[2]}

	positions := []vecmath.Vec3{v1, v2, v3, v4, v5, v6, v7, v8}
	faces := [][]int{
		{0, 1, 2, 3}, // bottom
		{4, 5, 6, 7}, // top
		{4, 7, 1, 0}, // front
		{3, 2, 6, 5}, // back
		{5, 4, 0, 3}, // left
		{6, 2, 1, 7}, // right
	}
	return mesh.BuildFromPolygons(positions, faces)
}
