// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/mesh"
)

// Merge copies every vertex, face, and halfedge of src into dst,
// remapping all internal pointers, then merges src's channel data
// (spec.md §4.3's merge_with) under the same remapping. dst is
// modified in place; src is left untouched.
func Merge(dst, src *mesh.HalfEdgeMesh) error {
	dw := dst.WriteConnectivity()
	sr := src.ReadConnectivity()

	dConn := dw.Conn()
	sConn := sr.Conn()

	vertexKeys := sConn.VertexIDs()
	faceKeys := sConn.FaceIDs()
	halfEdgeKeys := sConn.HalfEdgeIDs()

	vmap := make(map[mesh.VertexID]mesh.VertexID, len(vertexKeys))
	fmap := make(map[mesh.FaceID]mesh.FaceID, len(faceKeys))
	hmap := make(map[mesh.HalfEdgeID]mesh.HalfEdgeID, len(halfEdgeKeys))

	// First pass: reserve new elements with no pointers set yet.
	for _, v := range vertexKeys {
		vmap[v] = dConn.AllocVertex(mesh.NilHalfEdge)
	}
	for _, f := range faceKeys {
		fmap[f] = dConn.AllocFace(mesh.NilHalfEdge)
	}
	for _, h := range halfEdgeKeys {
		hmap[h] = dConn.AllocHalfEdge(mesh.HalfEdge{})
	}

	// Second pass: wire every pointer through the id maps.
	for _, v := range vertexKeys {
		rec, ok := sConn.Vertex(v)
		if ok && rec.HalfEdge.Valid() {
			dConn.SetVertexHalfEdge(vmap[v], hmap[rec.HalfEdge])
		}
	}
	for _, f := range faceKeys {
		rec, ok := sConn.Face(f)
		if ok && rec.HalfEdge.Valid() {
			dConn.SetFaceHalfEdge(fmap[f], hmap[rec.HalfEdge])
		}
	}
	for _, h := range halfEdgeKeys {
		rec, ok := sConn.HalfEdge(h)
		if !ok {
			continue
		}
		newRec := mesh.HalfEdge{}
		if rec.Twin.Valid() {
			newRec.Twin = hmap[rec.Twin]
		}
		if rec.Next.Valid() {
			newRec.Next = hmap[rec.Next]
		}
		if rec.Vertex.Valid() {
			newRec.Vertex = vmap[rec.Vertex]
		}
		if rec.Face.Valid() {
			newRec.Face = fmap[rec.Face]
		}
		dConn.SetHalfEdge(hmap[h], newRec)
	}

	sr.Release()
	dw.Release()

	dst.Channels().MergeWith(src.Channels(), vertexKeys, faceKeys, halfEdgeKeys, vmap, fmap, hmap)
	return nil
}
