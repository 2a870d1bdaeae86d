// Package mesh implements the halfedge mesh connectivity structure,
// its per-element channel storage and the HalfEdgeMesh facade that
// combines them, grounded on
// original_source/blackjack_engine/src/mesh/halfedge.rs.
package mesh

import "github.com/blackjack3d/meshkit/arena"

// VertexID, FaceID and HalfEdgeID wrap arena.ID with distinct Go types
// so a FaceID can never be passed where a VertexID is expected, even
// though both are backed by the same arena.ID representation (spec.md
// §4.1: "handles must be cheap to copy").
type VertexID struct{ raw arena.ID }

// FaceID identifies a face allocated in a Connectivity.
type FaceID struct{ raw arena.ID }

// HalfEdgeID identifies a halfedge allocated in a Connectivity.
type HalfEdgeID struct{ raw arena.ID }

// NilVertex is the zero VertexID, never returned by AllocVertex.
var NilVertex = VertexID{raw: arena.Nil}

// NilFace is the zero FaceID, never returned by AllocFace. A
// HalfEdge's Face field uses this to represent a boundary halfedge
// (spec.md §4.2's "face = None").
var NilFace = FaceID{raw: arena.Nil}

// NilHalfEdge is the zero HalfEdgeID, never returned by AllocHalfEdge.
var NilHalfEdge = HalfEdgeID{raw: arena.Nil}

// Valid reports whether v refers to a non-nil slot.
func (v VertexID) Valid() bool { return v.raw.Valid() }

// Valid reports whether f refers to a non-nil slot.
func (f FaceID) Valid() bool { return f.raw.Valid() }

// Valid reports whether h refers to a non-nil slot.
func (h HalfEdgeID) Valid() bool { return h.raw.Valid() }
