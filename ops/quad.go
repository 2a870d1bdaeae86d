// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
)

// Quad builds a single rectangular face centered at center, lying in
// the plane spanned by right and normal.Cross(right), with dimensions
// size. Grounded on
// original_source/.../mesh/halfedge/primitives.rs's Quad::build.
func Quad(center, normal, right vecmath.Vec3, size [2]float32) (*mesh.HalfEdgeMesh, error) {
	n := vecmath.SafeNormalize(normal)
	r := vecmath.SafeNormalize(right)
	forward := n.Cross(r)

	hx, hy := size[0]*0.5, size[1]*0.5

	v1 := center.Add(r.Mul(hx)).Add(forward.Mul(hy))
	v2 := center.Sub(r.Mul(hx)).Add(forward.Mul(hy))
	v3 := center.Sub(r.Mul(hx)).Sub(forward.Mul(hy))
	v4 := center.Add(r.Mul(hx)).Sub(forward.Mul(hy))

	return mesh.BuildFromPolygons([]vecmath.Vec3{v1, v2, v3, v4}, [][]int{{0, 1, 2, 3}})
}
