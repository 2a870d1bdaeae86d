// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
)

// ChamferVertex replaces v with a new face whose vertices sit along
// each of v's outgoing edges at parametric distance amount from v
// (spec.md §4.6). It composes three already-proven primitives: each
// incident edge is first divided at amount (shrinking it toward v
// without touching face count), then each pair of consecutive new
// vertices is connected with CutFace, cutting v's corner off every
// incident face into its own small triangle; finally DissolveVertex
// merges that ring of triangles — now the only thing left around
// v — into the chamfer face.
func ChamferVertex(m *mesh.HalfEdgeMesh, v mesh.VertexID, amount float32) (mesh.FaceID, []mesh.VertexID, error) {
	if amount <= 0 || amount >= 1 {
		return mesh.NilFace, nil, mesherr.New(mesherr.KindNonManifold, "chamfer_vertex requires amount in (0,1), got %v", amount)
	}

	r := m.ReadConnectivity()
	fan, err := r.Conn().VertexFan(v)
	r.Release()
	if err != nil {
		return mesh.NilFace, nil, err
	}
	if len(fan) < 3 {
		return mesh.NilFace, nil, mesherr.New(mesherr.KindNonManifold, "chamfer_vertex requires a vertex with at least 3 incident edges")
	}

	newVerts := make([]mesh.VertexID, len(fan))
	for k, h := range fan {
		newVerts[k], err = DivideEdge(m, h, amount)
		if err != nil {
			return mesh.NilFace, nil, err
		}
	}

	n := len(newVerts)
	for k := 0; k < n; k++ {
		if _, err := CutFace(m, newVerts[k], newVerts[(k+1)%n]); err != nil {
			return mesh.NilFace, nil, err
		}
	}

	if err := DissolveVertex(m, v); err != nil {
		return mesh.NilFace, nil, err
	}

	h, err := halfedgeBetween(m, newVerts[0], newVerts[1%n])
	if err != nil {
		return mesh.NilFace, nil, err
	}
	rr := m.ReadConnectivity()
	defer rr.Release()
	rec, ok := rr.Conn().HalfEdge(h)
	if !ok || !rec.Face.Valid() {
		return mesh.NilFace, nil, mesherr.New(mesherr.KindCorruptMesh, "chamfer_vertex: lost track of the resulting face")
	}
	return rec.Face, newVerts, nil
}
