// Package buffers extracts GPU-ready vertex/index buffers from a mesh:
// flat and smooth-shaded triangles, points, lines, halfedge arrows, and a
// flat-colored face overlay for picking, per spec.md §4.9.
package buffers

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
)

// VertexIndexBuffers is the triangle-list representation suitable for
// wgpu/OpenGL-style indexed drawing: positions and normals share an
// index space, Indices is 3*N for N triangles.
type VertexIndexBuffers struct {
	Positions []vecmath.Vec3
	Normals   []vecmath.Vec3
	Indices   []uint32
}

// FlatTriangles fan-triangulates every face and emits one (position,
// normal) pair per triangle corner — no vertex sharing, so each
// triangle gets a flat, per-face normal. Degenerate faces (fewer than
// 3 vertices, or a first triangle with zero area) contribute no
// triangles. If forceGen is false and the mesh already carries a face
// normal channel, those cached values are used instead of recomputing.
func FlatTriangles(m *mesh.HalfEdgeMesh, forceGen bool) (VertexIndexBuffers, error) {
	r := m.ReadConnectivity()
	defer r.Release()
	conn := r.Conn()

	posRead, err := m.Channels().Positions.Read(m.DefaultChannels().Position)
	if err != nil {
		return VertexIndexBuffers{}, err
	}
	defer posRead.Release()

	faceNormal, release, err := faceNormalLookup(m, forceGen)
	if err != nil {
		return VertexIndexBuffers{}, err
	}
	defer release()

	var out VertexIndexBuffers
	for _, f := range conn.FaceIDs() {
		verts, err := conn.FaceVertices(f)
		if err != nil {
			return VertexIndexBuffers{}, err
		}
		if len(verts) < 3 {
			continue
		}
		p0 := posRead.Get(verts[0])
		if _, ok := vecmath.FaceNormal(p0, posRead.Get(verts[1]), posRead.Get(verts[2])); !ok {
			continue
		}
		n := faceNormal(f, posRead, verts)
		for i := 1; i+1 < len(verts); i++ {
			p1 := posRead.Get(verts[i])
			p2 := posRead.Get(verts[i+1])
			out.Positions = append(out.Positions, p0, p1, p2)
			out.Normals = append(out.Normals, n, n, n)
		}
	}
	out.Indices = sequentialIndices(len(out.Positions))
	return out, nil
}

// SmoothTriangles deduplicates vertices by VertexID, assigning each a
// sequential index, and emits one normal per vertex (per-vertex normals
// give a smooth-shaded appearance across shared edges). Indices come
// from the same fan-triangulation as FlatTriangles, but reference the
// deduplicated vertex list instead of repeating corners.
func SmoothTriangles(m *mesh.HalfEdgeMesh, forceGen bool) (VertexIndexBuffers, error) {
	r := m.ReadConnectivity()
	defer r.Release()
	conn := r.Conn()

	posRead, err := m.Channels().Positions.Read(m.DefaultChannels().Position)
	if err != nil {
		return VertexIndexBuffers{}, err
	}
	defer posRead.Release()

	vertexNormal, release, err := vertexNormalLookup(m, forceGen, posRead, conn)
	if err != nil {
		return VertexIndexBuffers{}, err
	}
	defer release()

	var out VertexIndexBuffers
	idx := make(map[mesh.VertexID]uint32)
	for _, v := range conn.VertexIDs() {
		idx[v] = uint32(len(out.Positions))
		out.Positions = append(out.Positions, posRead.Get(v))
		out.Normals = append(out.Normals, vertexNormal(v))
	}

	for _, f := range conn.FaceIDs() {
		verts, err := conn.FaceVertices(f)
		if err != nil {
			return VertexIndexBuffers{}, err
		}
		if len(verts) < 3 {
			continue
		}
		v0 := idx[verts[0]]
		for i := 1; i+1 < len(verts); i++ {
			out.Indices = append(out.Indices, v0, idx[verts[i]], idx[verts[i+1]])
		}
	}
	return out, nil
}

func sequentialIndices(n int) []uint32 {
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}
	return idx
}
