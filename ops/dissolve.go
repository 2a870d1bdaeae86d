// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
)

// DissolveEdge removes the edge between h.Face and h.Twin.Face,
// merging the two faces into one (spec.md §4.6). Fails if either side
// is a boundary loop that would drop below three edges after removal.
func DissolveEdge(m *mesh.HalfEdgeMesh, h mesh.HalfEdgeID) error {
	w := m.WriteConnectivity()
	defer w.Release()
	conn := w.Conn()

	rec, ok := conn.HalfEdge(h)
	if !ok {
		return mesherr.New(mesherr.KindMissingPointer, "halfedge %v not found", h)
	}
	if !rec.Twin.Valid() {
		return mesherr.New(mesherr.KindMissingPointer, "halfedge %v has no twin", h)
	}
	twin, ok := conn.HalfEdge(rec.Twin)
	if !ok {
		return mesherr.New(mesherr.KindMissingPointer, "halfedge %v's twin not found", h)
	}

	loopA, err := conn.HalfEdgeLoop(h)
	if err != nil {
		return err
	}
	loopB, err := conn.HalfEdgeLoop(rec.Twin)
	if err != nil {
		return err
	}
	if (!rec.Face.Valid() && len(loopA) <= 3) || (!twin.Face.Valid() && len(loopB) <= 3) {
		return mesherr.New(mesherr.KindNonManifold, "dissolving edge %v would leave a degenerate boundary loop", h)
	}

	hPrev := prevInLoop(loopA, h)
	twinPrev := prevInLoop(loopB, rec.Twin)
	hNext := rec.Next
	twinNext := twin.Next

	// Splice: hPrev now continues into the twin's loop, skipping both
	// h and its twin; twinPrev continues into h's former loop.
	conn.SetNext(hPrev, twinNext)
	conn.SetNext(twinPrev, hNext)

	// Merge the two faces into one, preferring a real face over a
	// boundary (NilFace) when only one side has one.
	survivor := rec.Face
	if !survivor.Valid() {
		survivor = twin.Face
	}
	if survivor.Valid() {
		conn.SetFaceHalfEdge(survivor, hNext)
		for _, he := range loopA {
			if he != h {
				conn.SetFace(he, survivor)
			}
		}
		for _, he := range loopB {
			if he != rec.Twin {
				conn.SetFace(he, survivor)
			}
		}
		if rec.Face.Valid() && twin.Face.Valid() && rec.Face != twin.Face {
			conn.RemoveFace(twin.Face)
		}
	}

	if srcV, ok := conn.Vertex(rec.Vertex); ok && srcV.HalfEdge == h {
		conn.SetVertexHalfEdge(rec.Vertex, twinNext)
	}
	if dstV, ok := conn.Vertex(twin.Vertex); ok && dstV.HalfEdge == rec.Twin {
		conn.SetVertexHalfEdge(twin.Vertex, hNext)
	}

	conn.RemoveHalfEdge(h)
	conn.RemoveHalfEdge(rec.Twin)
	return nil
}

func prevInLoop(loop []mesh.HalfEdgeID, h mesh.HalfEdgeID) mesh.HalfEdgeID {
	for i, he := range loop {
		if he == h {
			return loop[(i-1+len(loop))%len(loop)]
		}
	}
	return mesh.NilHalfEdge
}
