// SPDX-License-Identifier: MIT
package compact

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
)

// FromHalfEdge builds a Mesh mirroring m's current connectivity, in
// arena vertex/face iteration order (spec.md §4.7's from_halfedge).
// Fails if any face has fewer than 3 vertices.
func FromHalfEdge(m *mesh.HalfEdgeMesh) (*Mesh, error) {
	r := m.ReadConnectivity()
	defer r.Release()
	conn := r.Conn()

	vertexIDs := conn.VertexIDs()
	indexOf := make(map[mesh.VertexID]int32, len(vertexIDs))
	for i, v := range vertexIDs {
		indexOf[v] = int32(i)
	}

	posRead, err := m.Channels().Positions.Read(m.DefaultChannels().Position)
	if err != nil {
		return nil, err
	}
	posSlice := make([]vecmath.Vec3, len(vertexIDs))
	for i, v := range vertexIDs {
		posSlice[i] = posRead.Get(v)
	}
	posRead.Release()

	faceIDs := conn.FaceIDs()
	var faceVerts []int32
	faceOffsets := make([]int32, 1, len(faceIDs)+1)
	faceOffsets[0] = 0

	edgeSeen := make(map[[2]int32]bool)
	var edges [][2]int32

	for fi, f := range faceIDs {
		verts, err := conn.FaceVertices(f)
		if err != nil {
			return nil, err
		}
		if len(verts) < 3 {
			return nil, errDegenerateFace(fi, len(verts))
		}
		n := len(verts)
		for i, v := range verts {
			idx := indexOf[v]
			faceVerts = append(faceVerts, idx)
			next := indexOf[verts[(i+1)%n]]
			key := canonicalEdge(idx, next)
			if !edgeSeen[key] {
				edgeSeen[key] = true
				edges = append(edges, key)
			}
		}
		faceOffsets = append(faceOffsets, int32(len(faceVerts)))
	}

	return &Mesh{
		Positions:     posSlice,
		FaceVerts:     faceVerts,
		FaceOffsets:   faceOffsets,
		EdgeEndpoints: edges,
	}, nil
}
