// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/traverse"
	"github.com/blackjack3d/meshkit/vecmath"
)

// SplitEdge splits both endpoints of h via SplitVertex and dissolves
// the edge left behind connecting their two new vertices, producing a
// single new edge across the split (spec.md §4.6). Returns the
// halfedge running from h's split source to h's split destination.
func SplitEdge(m *mesh.HalfEdgeMesh, h mesh.HalfEdgeID, delta vecmath.Vec3) (mesh.HalfEdgeID, error) {
	v, w, vPrev, wNext, err := splitEdgeNeighbors(m, h)
	if err != nil {
		return mesh.NilHalfEdge, err
	}

	vSplit, err := SplitVertex(m, v, vPrev, w, delta)
	if err != nil {
		return mesh.NilHalfEdge, err
	}
	wSplit, err := SplitVertex(m, w, v, wNext, delta)
	if err != nil {
		return mesh.NilHalfEdge, err
	}

	arcToDissolve, err := halfedgeBetween(m, wSplit, v)
	if err != nil {
		return mesh.NilHalfEdge, err
	}
	if err := DissolveEdge(m, arcToDissolve); err != nil {
		return mesh.NilHalfEdge, err
	}

	return halfedgeBetween(m, vSplit, wSplit)
}

// splitEdgeNeighbors locates the two "outer" vertices flanking h's
// endpoints, used to tell SplitVertex which wedge of each endpoint's
// fan stays behind. For an endpoint's previous/next vertex, stepping
// previous-twin-previous walks across the adjacent face into the
// neighboring fan wedge.
func splitEdgeNeighbors(m *mesh.HalfEdgeMesh, h mesh.HalfEdgeID) (v, w, vPrev, wNext mesh.VertexID, err error) {
	r := m.ReadConnectivity()
	defer r.Release()
	conn := r.Conn()

	v, w, err = traverse.AtHalfEdge(conn, h).SrcDstPair()
	if err != nil {
		return
	}
	vPrev, err = traverse.AtHalfEdge(conn, h).Previous().Twin().Previous().Vertex().TryEnd()
	if err != nil {
		return
	}
	twinH, err := traverse.AtHalfEdge(conn, h).Twin().TryEnd()
	if err != nil {
		return
	}
	wNext, err = traverse.AtHalfEdge(conn, twinH).Previous().Twin().Previous().Vertex().TryEnd()
	return
}

func halfedgeBetween(m *mesh.HalfEdgeMesh, from, to mesh.VertexID) (mesh.HalfEdgeID, error) {
	r := m.ReadConnectivity()
	defer r.Release()
	conn := r.Conn()

	fan, err := conn.VertexFan(from)
	if err != nil {
		return mesh.NilHalfEdge, err
	}
	_, h, err := outgoingTo(conn, fan, to)
	return h, err
}
