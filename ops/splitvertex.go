// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/vecmath"
)

// SplitVertex splits v into v and a new vertex w, placed at
// pos(v)+delta (spec.md §4.6). The fan of edges around v is cut at
// vLeft and vRight: the wedge from vRight to vLeft (exclusive, walking
// forward around v's outgoing fan) stays attached to w; the remaining
// wedge, including the edges to vLeft and vRight themselves, stays
// attached to v. vLeft and vRight must both be neighbors of v.
func SplitVertex(m *mesh.HalfEdgeMesh, v, vLeft, vRight mesh.VertexID, delta vecmath.Vec3) (mesh.VertexID, error) {
	w := m.WriteConnectivity()
	defer w.Release()
	conn := w.Conn()

	posWrite, err := m.Channels().Positions.Write(m.DefaultChannels().Position)
	if err != nil {
		return mesh.NilVertex, err
	}
	defer posWrite.Release()
	vPos := posWrite.Get(v)

	outgoing, err := conn.VertexFan(v)
	if err != nil {
		return mesh.NilVertex, err
	}
	i, hVR, err := outgoingTo(conn, outgoing, vRight)
	if err != nil {
		return mesh.NilVertex, err
	}
	j, hVL, err := outgoingTo(conn, outgoing, vLeft)
	if err != nil {
		return mesh.NilVertex, err
	}

	hVRRec, ok := conn.HalfEdge(hVR)
	if !ok || !hVRRec.Twin.Valid() {
		return mesh.NilVertex, mesherr.New(mesherr.KindMissingPointer, "edge v->v_right has no twin")
	}
	hVLRec, ok := conn.HalfEdge(hVL)
	if !ok || !hVLRec.Twin.Valid() {
		return mesh.NilVertex, mesherr.New(mesherr.KindMissingPointer, "edge v->v_left has no twin")
	}
	hRV := hVRRec.Twin

	n := len(outgoing)
	var middle []mesh.HalfEdgeID
	for k := (i + 1) % n; k != j; k = (k + 1) % n {
		middle = append(middle, outgoing[k])
	}

	fLOldOK, fLOld := faceOf(conn, hVL)
	fROldOK, fROld := faceOf(conn, hRV)

	hRVLoop, err := conn.HalfEdgeLoop(hRV)
	if err != nil {
		return mesh.NilVertex, err
	}
	prevHRV := prevInLoop(hRVLoop, hRV)
	nextHVL := hVLRec.Next

	newW := conn.AllocVertex(mesh.NilHalfEdge)
	posWrite.Set(newW, vecmath.Vec3{vPos[0] + delta[0], vPos[1] + delta[1], vPos[2] + delta[2]})

	hVW := conn.AllocHalfEdge(mesh.HalfEdge{})
	hWV := conn.AllocHalfEdge(mesh.HalfEdge{})
	hLW := conn.AllocHalfEdge(mesh.HalfEdge{})
	hWL := conn.AllocHalfEdge(mesh.HalfEdge{})
	hRW := conn.AllocHalfEdge(mesh.HalfEdge{})
	hWR := conn.AllocHalfEdge(mesh.HalfEdge{})
	fL := conn.AllocFace(mesh.NilHalfEdge)
	fR := conn.AllocFace(mesh.NilHalfEdge)

	conn.SetNext(hWV, hVL)
	conn.SetNext(hVL, hLW)
	conn.SetNext(hLW, hWV)
	conn.SetFace(hWV, fL)
	conn.SetFace(hVL, fL)
	conn.SetFace(hLW, fL)

	conn.SetNext(hVW, hWR)
	conn.SetNext(hWR, hRV)
	conn.SetNext(hRV, hVW)
	conn.SetFace(hVW, fR)
	conn.SetFace(hWR, fR)
	conn.SetFace(hRV, fR)

	conn.SetVertex(hVW, v)
	conn.SetVertex(hWV, newW)
	conn.SetVertex(hLW, vLeft)
	conn.SetVertex(hWL, newW)
	conn.SetVertex(hRW, vRight)
	conn.SetVertex(hWR, newW)

	conn.SetFaceHalfEdge(fL, hLW)
	conn.SetFaceHalfEdge(fR, hWR)
	conn.SetVertexHalfEdge(newW, hWV)

	conn.SetTwin(hVW, hWV)
	conn.SetTwin(hWV, hVW)
	conn.SetTwin(hLW, hWL)
	conn.SetTwin(hWL, hLW)
	conn.SetTwin(hRW, hWR)
	conn.SetTwin(hWR, hRW)

	conn.SetFace(hWL, fLOld)
	if fLOldOK {
		conn.SetFaceHalfEdge(fLOld, hWL)
	}
	conn.SetFace(hRW, fROld)
	if fROldOK {
		conn.SetFaceHalfEdge(fROld, hRW)
	}
	conn.SetVertexHalfEdge(v, hVW)

	conn.SetNext(prevHRV, hRW)
	conn.SetNext(hWL, nextHVL)

	if len(middle) > 0 {
		conn.SetNext(hRW, middle[0])
		last, ok := conn.HalfEdge(middle[len(middle)-1])
		if !ok || !last.Twin.Valid() {
			return mesh.NilVertex, mesherr.New(mesherr.KindMissingPointer, "split_vertex: incident edge has no twin")
		}
		conn.SetNext(last.Twin, hWL)
	} else {
		conn.SetNext(hRW, hWL)
	}

	for _, outH := range middle {
		conn.SetVertex(outH, newW)
	}

	return newW, nil
}

// outgoingTo finds the outgoing halfedge from v (already resolved into
// fan) whose destination is target, returning its position in fan.
func outgoingTo(conn *mesh.Connectivity, fan []mesh.HalfEdgeID, target mesh.VertexID) (int, mesh.HalfEdgeID, error) {
	for i, h := range fan {
		_, dst, err := conn.EdgeEndpoints(h)
		if err != nil {
			return 0, mesh.NilHalfEdge, err
		}
		if dst == target {
			return i, h, nil
		}
	}
	return 0, mesh.NilHalfEdge, mesherr.New(mesherr.KindMissingPointer, "vertex has no outgoing edge to the requested neighbor")
}

func faceOf(conn *mesh.Connectivity, h mesh.HalfEdgeID) (bool, mesh.FaceID) {
	rec, ok := conn.HalfEdge(h)
	if !ok || !rec.Face.Valid() {
		return false, mesh.NilFace
	}
	return true, rec.Face
}
