// SPDX-License-Identifier: MIT
package compact

import (
	"github.com/blackjack3d/meshkit/mesh"
)

// ToHalfEdge reconstructs a halfedge mesh from cm (spec.md §4.7's
// to_halfedge), via mesh.BuildFromPolygons.
func (cm *Mesh) ToHalfEdge() (*mesh.HalfEdgeMesh, error) {
	polygons := make([][]int, cm.NumFaces())
	for f := 0; f < cm.NumFaces(); f++ {
		verts := cm.FaceVertices(f)
		ints := make([]int, len(verts))
		for i, v := range verts {
			ints[i] = int(v)
		}
		polygons[f] = ints
	}
	return mesh.BuildFromPolygons(cm.Positions, polygons)
}
