// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/mesh"
)

// DuplicateEdge allocates a parallel halfedge pair with the same
// endpoints as h, detached from any face (spec.md §4.6: "used as a
// primitive by bevel"). The two new halfedges form a standalone
// two-sided loop — each other's twin and next — left for the caller
// to splice into the mesh. It returns the halfedge running the same
// direction as h (src -> dst).
func DuplicateEdge(m *mesh.HalfEdgeMesh, h mesh.HalfEdgeID) (mesh.HalfEdgeID, error) {
	w := m.WriteConnectivity()
	defer w.Release()
	conn := w.Conn()

	src, dst, err := conn.EdgeEndpoints(h)
	if err != nil {
		return mesh.NilHalfEdge, err
	}

	fwd := conn.AllocHalfEdge(mesh.HalfEdge{Vertex: src})
	bwd := conn.AllocHalfEdge(mesh.HalfEdge{Vertex: dst})
	conn.SetNext(fwd, bwd)
	conn.SetNext(bwd, fwd)
	conn.SetTwin(fwd, bwd)
	conn.SetTwin(bwd, fwd)

	return fwd, nil
}
