// SPDX-License-Identifier: MIT
// Package compact implements the dense, index-based mirror of a
// halfedge mesh spec.md §4.7 calls the CompactMesh, used purely as a
// fast subdivision engine: parallel position/face-index/edge-endpoint
// arrays instead of arena-backed pointer structures. Its dense-array
// idiom is adapted from the teacher's matrix.Dense (flat backing
// slices, explicit offset arithmetic) applied to a mesh instead of a
// row-major grid.
package compact

import (
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/vecmath"
)

// Method selects the subdivision scheme SubdivideOnce/SubdivideMulti
// apply (spec.md §4.7).
type Method int

const (
	// Linear subdivision splits every face into quads without moving
	// any existing vertex: new face/edge points are plain averages.
	Linear Method = iota
	// CatmullClark additionally repositions every original vertex per
	// the standard smoothing formula.
	CatmullClark
)

// Mesh is the dense mirror: Positions indexed 0..len(Positions)-1;
// FaceVerts holds every face's vertex indices back to back;
// FaceOffsets[i]..FaceOffsets[i+1] slices out face i's run in
// FaceVerts (len(FaceOffsets) == NumFaces()+1); EdgeEndpoints lists
// each undirected edge once, as a canonical (min, max) index pair.
type Mesh struct {
	Positions     []vecmath.Vec3
	FaceVerts     []int32
	FaceOffsets   []int32
	EdgeEndpoints [][2]int32
}

// NumFaces returns the number of faces encoded in FaceOffsets.
func (cm *Mesh) NumFaces() int {
	if len(cm.FaceOffsets) == 0 {
		return 0
	}
	return len(cm.FaceOffsets) - 1
}

// FaceVertices returns face f's vertex indices, in winding order.
func (cm *Mesh) FaceVertices(f int) []int32 {
	return cm.FaceVerts[cm.FaceOffsets[f]:cm.FaceOffsets[f+1]]
}

// canonicalEdge orders an edge's two endpoints (min, max) so the same
// undirected edge always hashes to the same key regardless of winding
// direction.
func canonicalEdge(a, b int32) [2]int32 {
	if a < b {
		return [2]int32{a, b}
	}
	return [2]int32{b, a}
}

func errDegenerateFace(f int, n int) error {
	return mesherr.New(mesherr.KindNonManifold, "compact mesh: face %d has %d vertices, need at least 3", f, n)
}
