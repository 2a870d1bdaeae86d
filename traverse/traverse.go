// Package traverse implements the chainable halfedge-mesh traversal
// DSL of spec.md §4.4: a wrapper that carries either a valid
// (connectivity, location) pair or the first error encountered, so a
// chain like AtVertex(v).Halfedge().Twin().Next().Vertex() composes
// without the caller checking an error after every step. Ported in
// spirit from
// original_source/blackjack_engine/src/mesh/halfedge/traversals.rs.
//
// Go has no way to specialize methods per generic instantiation (a
// vertex traversal's only step is Halfedge; a halfedge traversal's are
// Twin/Next/Face/Vertex/...), so the three locations get three
// concrete wrapper types instead of one generic Traversal[L] — the
// same "enumerate the small fixed set" choice spec.md §4.3 makes for
// channel (key, value) kinds.
package traverse

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
)

func errVertexHasNoHalfEdge(v mesh.VertexID) error {
	return mesherr.New(mesherr.KindMissingPointer, "vertex %v has no halfedge", v)
}

func errFaceHasNoHalfEdge(f mesh.FaceID) error {
	return mesherr.New(mesherr.KindMissingPointer, "face %v has no halfedge", f)
}

func errHalfEdgeHasNoNext(h mesh.HalfEdgeID) error {
	return mesherr.New(mesherr.KindMissingPointer, "halfedge %v has no next", h)
}

func errHalfEdgeHasNoTwin(h mesh.HalfEdgeID) error {
	return mesherr.New(mesherr.KindMissingPointer, "halfedge %v has no twin", h)
}

func errHalfEdgeHasNoVertex(h mesh.HalfEdgeID) error {
	return mesherr.New(mesherr.KindMissingPointer, "halfedge %v has no vertex", h)
}

func errNotFound(kind string, id any) error {
	return mesherr.New(mesherr.KindCorruptMesh, "%s %v not found", kind, id)
}

// Vertex is a traversal currently at a vertex (or a sticky error).
type Vertex struct {
	conn *mesh.Connectivity
	loc  mesh.VertexID
	err  error
}

// Face is a traversal currently at a face (or a sticky error).
type Face struct {
	conn *mesh.Connectivity
	loc  mesh.FaceID
	err  error
}

// HalfEdge is a traversal currently at a halfedge (or a sticky error).
type HalfEdge struct {
	conn *mesh.Connectivity
	loc  mesh.HalfEdgeID
	err  error
}

// AtVertex starts a traversal at v.
func AtVertex(conn *mesh.Connectivity, v mesh.VertexID) Vertex {
	return Vertex{conn: conn, loc: v}
}

// AtFace starts a traversal at f.
func AtFace(conn *mesh.Connectivity, f mesh.FaceID) Face {
	return Face{conn: conn, loc: f}
}

// AtHalfEdge starts a traversal at h.
func AtHalfEdge(conn *mesh.Connectivity, h mesh.HalfEdgeID) HalfEdge {
	return HalfEdge{conn: conn, loc: h}
}

// End returns t's vertex, panicking if the traversal failed.
func (t Vertex) End() mesh.VertexID {
	if t.err != nil {
		panic(t.err)
	}
	return t.loc
}

// TryEnd returns t's vertex and its error, if any.
func (t Vertex) TryEnd() (mesh.VertexID, error) { return t.loc, t.err }

// Halfedge steps from a vertex to one of its outgoing halfedges.
func (t Vertex) Halfedge() HalfEdge {
	if t.err != nil {
		return HalfEdge{conn: t.conn, err: t.err}
	}
	v, ok := t.conn.Vertex(t.loc)
	if !ok {
		return HalfEdge{conn: t.conn, err: errNotFound("vertex", t.loc)}
	}
	if !v.HalfEdge.Valid() {
		return HalfEdge{conn: t.conn, err: errVertexHasNoHalfEdge(t.loc)}
	}
	return HalfEdge{conn: t.conn, loc: v.HalfEdge}
}

// OutgoingHalfedges returns every halfedge leaving t's vertex, walking
// the fan via Twin().Next() (spec.md §4.4).
func (t Vertex) OutgoingHalfedges() ([]mesh.HalfEdgeID, error) {
	if t.err != nil {
		return nil, t.err
	}
	return t.conn.VertexFan(t.loc)
}

// AdjacentFaces returns the (non-boundary) faces touching t's vertex.
func (t Vertex) AdjacentFaces() ([]mesh.FaceID, error) {
	fan, err := t.OutgoingHalfedges()
	if err != nil {
		return nil, err
	}
	var faces []mesh.FaceID
	for _, h := range fan {
		he, ok := t.conn.HalfEdge(h)
		if !ok {
			return nil, errNotFound("halfedge", h)
		}
		if he.Face.Valid() {
			faces = append(faces, he.Face)
		}
	}
	return faces, nil
}

// End returns t's face, panicking if the traversal failed.
func (t Face) End() mesh.FaceID {
	if t.err != nil {
		panic(t.err)
	}
	return t.loc
}

// TryEnd returns t's face and its error, if any.
func (t Face) TryEnd() (mesh.FaceID, error) { return t.loc, t.err }

// Halfedge steps from a face to its recorded boundary halfedge.
func (t Face) Halfedge() HalfEdge {
	if t.err != nil {
		return HalfEdge{conn: t.conn, err: t.err}
	}
	f, ok := t.conn.Face(t.loc)
	if !ok {
		return HalfEdge{conn: t.conn, err: errNotFound("face", t.loc)}
	}
	if !f.HalfEdge.Valid() {
		return HalfEdge{conn: t.conn, err: errFaceHasNoHalfEdge(t.loc)}
	}
	return HalfEdge{conn: t.conn, loc: f.HalfEdge}
}

// Halfedges returns every halfedge of t's face boundary loop.
func (t Face) Halfedges() ([]mesh.HalfEdgeID, error) {
	if t.err != nil {
		return nil, t.err
	}
	return t.conn.FaceEdges(t.loc)
}

// Vertices returns every vertex of t's face boundary loop.
func (t Face) Vertices() ([]mesh.VertexID, error) {
	if t.err != nil {
		return nil, t.err
	}
	return t.conn.FaceVertices(t.loc)
}

// End returns t's halfedge, panicking if the traversal failed.
func (t HalfEdge) End() mesh.HalfEdgeID {
	if t.err != nil {
		panic(t.err)
	}
	return t.loc
}

// TryEnd returns t's halfedge and its error, if any.
func (t HalfEdge) TryEnd() (mesh.HalfEdgeID, error) { return t.loc, t.err }

func (t HalfEdge) record() (mesh.HalfEdge, error) {
	if t.err != nil {
		return mesh.HalfEdge{}, t.err
	}
	he, ok := t.conn.HalfEdge(t.loc)
	if !ok {
		return mesh.HalfEdge{}, errNotFound("halfedge", t.loc)
	}
	return he, nil
}

// Twin steps to this halfedge's twin.
func (t HalfEdge) Twin() HalfEdge {
	he, err := t.record()
	if err != nil {
		return HalfEdge{conn: t.conn, err: err}
	}
	if !he.Twin.Valid() {
		return HalfEdge{conn: t.conn, err: errHalfEdgeHasNoTwin(t.loc)}
	}
	return HalfEdge{conn: t.conn, loc: he.Twin}
}

// Next steps to the next halfedge around this one's face (or
// boundary) loop.
func (t HalfEdge) Next() HalfEdge {
	he, err := t.record()
	if err != nil {
		return HalfEdge{conn: t.conn, err: err}
	}
	if !he.Next.Valid() {
		return HalfEdge{conn: t.conn, err: errHalfEdgeHasNoNext(t.loc)}
	}
	return HalfEdge{conn: t.conn, loc: he.Next}
}

// Previous steps to the halfedge preceding this one in its loop, found
// by a linear scan (spec.md §4.4: "previous (linear scan of the
// loop)" — halfedges only carry a next pointer, not prev).
func (t HalfEdge) Previous() HalfEdge {
	if t.err != nil {
		return HalfEdge{conn: t.conn, err: t.err}
	}
	loop, err := t.conn.HalfEdgeLoop(t.loc)
	if err != nil {
		return HalfEdge{conn: t.conn, err: err}
	}
	for i, h := range loop {
		if h == t.loc {
			prev := loop[(i-1+len(loop))%len(loop)]
			return HalfEdge{conn: t.conn, loc: prev}
		}
	}
	return HalfEdge{conn: t.conn, err: mesherr.New(mesherr.KindCorruptMesh, "halfedge %v not found in its own loop", t.loc)}
}

// CycleAroundFan steps Twin().Next(), the canonical "move to the next
// outgoing halfedge around the shared vertex" step.
func (t HalfEdge) CycleAroundFan() HalfEdge {
	return t.Twin().Next()
}

// Face steps to this halfedge's face.
func (t HalfEdge) Face() Face {
	he, err := t.record()
	if err != nil {
		return Face{conn: t.conn, err: err}
	}
	if !he.Face.Valid() {
		return Face{conn: t.conn, err: mesherr.New(mesherr.KindMissingPointer, "halfedge %v has no face (it is a boundary halfedge)", t.loc)}
	}
	return Face{conn: t.conn, loc: he.Face}
}

// FaceOrBoundary steps to this halfedge's face, returning NilFace
// (rather than an error) if the halfedge is a boundary halfedge.
func (t HalfEdge) FaceOrBoundary() Face {
	he, err := t.record()
	if err != nil {
		return Face{conn: t.conn, err: err}
	}
	return Face{conn: t.conn, loc: he.Face}
}

// Vertex steps to this halfedge's source vertex.
func (t HalfEdge) Vertex() Vertex {
	he, err := t.record()
	if err != nil {
		return Vertex{conn: t.conn, err: err}
	}
	if !he.Vertex.Valid() {
		return Vertex{conn: t.conn, err: errHalfEdgeHasNoVertex(t.loc)}
	}
	return Vertex{conn: t.conn, loc: he.Vertex}
}

// SrcVertex returns this halfedge's source vertex (alias for Vertex,
// named to match the (src, dst) terminology of SrcDstPair).
func (t HalfEdge) SrcVertex() Vertex { return t.Vertex() }

// DstVertex returns this halfedge's destination vertex (its next's
// source).
func (t HalfEdge) DstVertex() Vertex { return t.Next().Vertex() }

// SrcDstPair returns (src, dst) vertex IDs for this halfedge in one
// call, matching Connectivity.EdgeEndpoints.
func (t HalfEdge) SrcDstPair() (mesh.VertexID, mesh.VertexID, error) {
	if t.err != nil {
		return mesh.NilVertex, mesh.NilVertex, t.err
	}
	return t.conn.EdgeEndpoints(t.loc)
}

// IsBoundary reports whether this halfedge carries no face.
func (t HalfEdge) IsBoundary() (bool, error) {
	if t.err != nil {
		return false, t.err
	}
	return t.conn.IsBoundary(t.loc)
}
