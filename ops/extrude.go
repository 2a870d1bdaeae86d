// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/channel"
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/vecmath"
)

// ExtrudeFaces duplicates each listed face, offsets the duplicate along
// its face normal by amount, and bridges the gap between original and
// duplicate with a ring of quads (spec.md §4.6). It returns the new
// "cap" face for each input face, in the same order. Faces are
// extruded independently; overlapping input faces are not detected.
func ExtrudeFaces(m *mesh.HalfEdgeMesh, faces []mesh.FaceID, amount float32) ([]mesh.FaceID, error) {
	w := m.WriteConnectivity()
	defer w.Release()
	conn := w.Conn()

	posWrite, err := m.Channels().Positions.Write(m.DefaultChannels().Position)
	if err != nil {
		return nil, err
	}
	defer posWrite.Release()

	caps := make([]mesh.FaceID, len(faces))
	for i, f := range faces {
		frontFace, err := extrudeFace(conn, posWrite, f, amount)
		if err != nil {
			return nil, err
		}
		caps[i] = frontFace
	}
	return caps, nil
}

func extrudeFace(conn *mesh.Connectivity, posWrite *channel.WriteGuard[mesh.VertexID, vecmath.Vec3], f mesh.FaceID, amount float32) (mesh.FaceID, error) {
	verts, err := conn.FaceVertices(f)
	if err != nil {
		return mesh.NilFace, err
	}
	edges, err := conn.FaceEdges(f)
	if err != nil {
		return mesh.NilFace, err
	}
	n := len(verts)
	if n < 3 {
		return mesh.NilFace, mesherr.New(mesherr.KindNonManifold, "extrude_faces: face %v has fewer than 3 vertices", f)
	}

	normal, ok := vecmath.FaceNormal(posWrite.Get(verts[0]), posWrite.Get(verts[1]), posWrite.Get(verts[2]))
	if !ok {
		return mesh.NilFace, mesherr.New(mesherr.KindNonManifold, "extrude_faces: face %v is degenerate", f)
	}
	delta := vecmath.Vec3{normal[0] * amount, normal[1] * amount, normal[2] * amount}

	newVerts := make([]mesh.VertexID, n)
	for i, v := range verts {
		pos := posWrite.Get(v)
		newVerts[i] = conn.AllocVertex(mesh.NilHalfEdge)
		posWrite.Set(newVerts[i], vecmath.Vec3{pos[0] + delta[0], pos[1] + delta[1], pos[2] + delta[2]})
	}

	pairToHalfEdge := make(map[[2]mesh.VertexID]mesh.HalfEdgeID, n*3)
	for i, h := range edges {
		pairToHalfEdge[[2]mesh.VertexID{verts[i], verts[(i+1)%n]}] = h
	}

	for i := 0; i < n; i++ {
		v1, v2 := verts[i], verts[(i+1)%n]
		v1n, v2n := newVerts[i], newVerts[(i+1)%n]
		if _, err := addExtrudeFace(conn, []mesh.VertexID{v1, v2, v2n, v1n}, pairToHalfEdge); err != nil {
			return mesh.NilFace, err
		}
	}

	frontFace, err := addExtrudeFace(conn, newVerts, pairToHalfEdge)
	if err != nil {
		return mesh.NilFace, err
	}

	conn.RemoveFace(f)
	return frontFace, nil
}

// addExtrudeFace allocates a new face from a winding-ordered vertex
// loop, reusing any halfedge already recorded in pairToHalfEdge for a
// given (v, next) pair instead of allocating a duplicate, and wiring
// twins against the reverse pair when present.
func addExtrudeFace(conn *mesh.Connectivity, verts []mesh.VertexID, pairToHalfEdge map[[2]mesh.VertexID]mesh.HalfEdgeID) (mesh.FaceID, error) {
	n := len(verts)
	f := conn.AllocFace(mesh.NilHalfEdge)
	halfedges := make([]mesh.HalfEdgeID, n)

	for i, v := range verts {
		v2 := verts[(i+1)%n]
		key := [2]mesh.VertexID{v, v2}
		h, exists := pairToHalfEdge[key]
		if exists {
			conn.SetFace(h, f)
		} else {
			h = conn.AllocHalfEdge(mesh.HalfEdge{Vertex: v, Face: f})
		}
		pairToHalfEdge[key] = h
		halfedges[i] = h
		conn.SetVertexHalfEdge(v, h)
	}

	for i, h := range halfedges {
		conn.SetNext(h, halfedges[(i+1)%n])
	}
	conn.SetFaceHalfEdge(f, halfedges[0])

	for i := 0; i < n; i++ {
		a, b := verts[i], verts[(i+1)%n]
		if hba, ok := pairToHalfEdge[[2]mesh.VertexID{b, a}]; ok {
			conn.SetTwin(hba, halfedges[i])
			conn.SetTwin(halfedges[i], hba)
		}
	}

	return f, nil
}
