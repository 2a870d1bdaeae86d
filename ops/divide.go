// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/vecmath"
)

// DivideEdge inserts a new vertex at lerp(src, dst, t) on halfedge h,
// without changing face count (spec.md §4.6). It splits both h and
// its twin (if any) into two consecutive halfedges sharing the new
// vertex.
func DivideEdge(m *mesh.HalfEdgeMesh, h mesh.HalfEdgeID, t float32) (mesh.VertexID, error) {
	w := m.WriteConnectivity()
	defer w.Release()
	conn := w.Conn()

	rec, ok := conn.HalfEdge(h)
	if !ok {
		return mesh.NilVertex, mesherr.New(mesherr.KindMissingPointer, "halfedge %v not found", h)
	}
	nextRec, ok := conn.HalfEdge(rec.Next)
	if !ok {
		return mesh.NilVertex, mesherr.New(mesherr.KindMissingPointer, "halfedge %v has no next", h)
	}

	posWrite, err := m.Channels().Positions.Write(m.DefaultChannels().Position)
	if err != nil {
		return mesh.NilVertex, err
	}
	defer posWrite.Release()

	src := posWrite.Get(rec.Vertex)
	dst := posWrite.Get(nextRec.Vertex)
	mid := vecmath.Lerp(src, dst, t)

	newV := conn.AllocVertex(mesh.NilHalfEdge)
	posWrite.Set(newV, mid)

	// h: src -> newV -> (new halfedge) -> dst, reusing h's record for
	// the first half and allocating hB for the second half.
	hB := conn.AllocHalfEdge(mesh.HalfEdge{Next: rec.Next, Vertex: newV, Face: rec.Face})
	conn.SetNext(h, hB)
	conn.SetVertexHalfEdge(newV, hB)

	if rec.Twin.Valid() {
		twinRec, ok := conn.HalfEdge(rec.Twin)
		if !ok {
			return mesh.NilVertex, mesherr.New(mesherr.KindMissingPointer, "halfedge %v's twin missing", h)
		}
		// The twin runs dst -> src; split it symmetrically so the new
		// boundary/interior shares newV, and re-link the twin pairs.
		twinB := conn.AllocHalfEdge(mesh.HalfEdge{Next: twinRec.Next, Vertex: newV, Face: twinRec.Face})
		conn.SetNext(rec.Twin, twinB)
		conn.SetVertexHalfEdge(newV, twinB)

		conn.SetTwin(h, twinB)
		conn.SetTwin(twinB, h)
		conn.SetTwin(hB, rec.Twin)
		conn.SetTwin(rec.Twin, hB)
	}

	return newV, nil
}
