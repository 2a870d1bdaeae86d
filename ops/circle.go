// SPDX-License-Identifier: MIT
package ops

import (
	"math"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
)

// Circle builds a closed, filled num-gon of the given radius centered
// at center, in the XZ plane. Grounded on
// original_source/.../mesh/halfedge/primitives.rs's Circle::build
// (vertices placed by rotating (0,0,radius) around Y).
func Circle(center vecmath.Vec3, radius float32, numVertices int) (*mesh.HalfEdgeMesh, error) {
	verts := circleVertices(center, radius, numVertices)
	polygon := make([]int, numVertices)
	for i := range polygon {
		polygon[i] = i
	}
	return mesh.BuildFromPolygons(verts, [][]int{polygon})
}

// CircleOpen builds the same ring of vertices as Circle but leaves the
// interior unfilled: its single face is cleared, producing a boundary
// loop instead. Grounded on primitives.rs's Circle::build_open.
func CircleOpen(center vecmath.Vec3, radius float32, numVertices int) (*mesh.HalfEdgeMesh, error) {
	m, err := Circle(center, radius, numVertices)
	if err != nil {
		return nil, err
	}

	w := m.WriteConnectivity()
	defer w.Release()
	conn := w.Conn()

	faces := conn.FaceIDs()
	if len(faces) == 0 {
		return m, nil
	}
	f := faces[0]
	face, ok := conn.Face(f)
	if !ok {
		return m, nil
	}
	loop, err := conn.HalfEdgeLoop(face.HalfEdge)
	if err != nil {
		return nil, err
	}
	for _, h := range loop {
		conn.SetFace(h, mesh.NilFace)
	}
	conn.RemoveFace(f)
	return m, nil
}

func circleVertices(center vecmath.Vec3, radius float32, numVertices int) []vecmath.Vec3 {
	verts := make([]vecmath.Vec3, numVertices)
	angleDelta := (2.0 * math.Pi) / float64(numVertices)
	for i := 0; i < numVertices; i++ {
		theta := angleDelta * float64(i)
		x := float32(math.Sin(theta)) * radius
		z := float32(math.Cos(theta)) * radius
		verts[i] = vecmath.Vec3{center[0] + x, center[1], center[2] + z}
	}
	return verts
}
