// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
)

// CutFace inserts a new edge between vertices u and v, both on the
// boundary of the same face, splitting it into two faces (spec.md
// §4.6). u and v must be distinct and non-adjacent; otherwise the cut
// would produce a degenerate (two-edge) face.
func CutFace(m *mesh.HalfEdgeMesh, u, v mesh.VertexID) (mesh.HalfEdgeID, error) {
	w := m.WriteConnectivity()
	defer w.Release()
	conn := w.Conn()

	f, loop, uPos, vPos, err := findSharedFace(conn, u, v)
	if err != nil {
		return mesh.NilHalfEdge, err
	}
	if uPos == vPos {
		return mesh.NilHalfEdge, mesherr.New(mesherr.KindNonManifold, "cut_face requires two distinct vertices")
	}

	huIn := loop[(uPos-1+len(loop))%len(loop)] // ...->u
	hvIn := loop[(vPos-1+len(loop))%len(loop)] // ...->v
	huOut := loop[uPos]                        // u->...
	hvOut := loop[vPos]                        // v->...
	if huOut == hvIn || hvOut == huIn {
		return mesh.NilHalfEdge, mesherr.New(mesherr.KindNonManifold, "cut_face vertices are already adjacent")
	}

	newFace := conn.AllocFace(mesh.NilHalfEdge)

	hUV := conn.AllocHalfEdge(mesh.HalfEdge{Next: hvOut, Vertex: u, Face: f})
	hVU := conn.AllocHalfEdge(mesh.HalfEdge{Next: huOut, Vertex: v, Face: newFace})
	conn.SetTwin(hUV, hVU)
	conn.SetTwin(hVU, hUV)

	conn.SetNext(huIn, hUV)
	conn.SetNext(hvIn, hVU)

	conn.SetFaceHalfEdge(f, hUV)
	conn.SetFaceHalfEdge(newFace, hVU)
	for he := huOut; he != hVU; {
		conn.SetFace(he, newFace)
		rec, ok := conn.HalfEdge(he)
		if !ok {
			return mesh.NilHalfEdge, mesherr.New(mesherr.KindMissingPointer, "cut_face: broken loop while relabeling faces")
		}
		he = rec.Next
	}

	return hUV, nil
}

// findSharedFace locates the single face incident to both u and v,
// returning its boundary loop and each vertex's position within it.
func findSharedFace(conn *mesh.Connectivity, u, v mesh.VertexID) (mesh.FaceID, []mesh.HalfEdgeID, int, int, error) {
	fan, err := conn.VertexFan(u)
	if err != nil {
		return mesh.NilFace, nil, 0, 0, err
	}
	for _, h := range fan {
		rec, ok := conn.HalfEdge(h)
		if !ok || !rec.Face.Valid() {
			continue
		}
		loop, err := conn.HalfEdgeLoop(h)
		if err != nil {
			return mesh.NilFace, nil, 0, 0, err
		}
		uPos, vPos := -1, -1
		for i, he := range loop {
			rec, ok := conn.HalfEdge(he)
			if !ok {
				continue
			}
			if rec.Vertex == u {
				uPos = i
			}
			if rec.Vertex == v {
				vPos = i
			}
		}
		if uPos >= 0 && vPos >= 0 {
			return rec.Face, loop, uPos, vPos, nil
		}
	}
	return mesh.NilFace, nil, 0, 0, mesherr.New(mesherr.KindNonManifold, "cut_face: no single face is incident to both vertices")
}
