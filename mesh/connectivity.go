package mesh

import (
	"github.com/blackjack3d/meshkit/arena"
	"github.com/blackjack3d/meshkit/mesherr"
)

// maxLoopIterations bounds every loop-following traversal so a
// malformed mesh (a broken next/twin cycle) produces a CorruptMesh
// error instead of hanging, matching spec.md §4.2's fixed iteration
// bound (ported from halfedge.rs's MAX_LOOP_ITERATIONS).
const maxLoopIterations = 8196

// HalfEdge is one directed edge of a face (or, with Face == NilFace, a
// boundary loop around a hole).
type HalfEdge struct {
	Twin   HalfEdgeID
	Next   HalfEdgeID
	Vertex VertexID
	Face   FaceID
}

// Vertex records one outgoing halfedge, enough to reach its whole fan
// via repeated Twin().Next() steps.
type Vertex struct {
	HalfEdge HalfEdgeID
}

// Face records one halfedge of its boundary loop.
type Face struct {
	HalfEdge HalfEdgeID
}

// DebugColor is a packed RGBA debug annotation color.
type DebugColor uint32

// DebugMark labels a vertex or halfedge for diagnostic visualization;
// it carries no mesh semantics of its own.
type DebugMark struct {
	Label string
	Color DebugColor
}

// Connectivity holds the three element arenas (vertices, faces,
// halfedges) and their debug annotations. It has no notion of channels
// or generation config; those live on HalfEdgeMesh.
type Connectivity struct {
	vertices  *arena.Arena[Vertex]
	faces     *arena.Arena[Face]
	halfedges *arena.Arena[HalfEdge]

	debugVertices map[VertexID]DebugMark
	debugEdges    map[HalfEdgeID]DebugMark
}

// NewConnectivity returns an empty Connectivity.
func NewConnectivity() *Connectivity {
	return &Connectivity{
		vertices:      arena.New[Vertex](),
		faces:         arena.New[Face](),
		halfedges:     arena.New[HalfEdge](),
		debugVertices: make(map[VertexID]DebugMark),
		debugEdges:    make(map[HalfEdgeID]DebugMark),
	}
}

// AllocVertex inserts a disconnected vertex and returns its handle.
func (c *Connectivity) AllocVertex(he HalfEdgeID) VertexID {
	return VertexID{raw: c.vertices.Allocate(Vertex{HalfEdge: he})}
}

// AllocFace inserts a disconnected face and returns its handle.
func (c *Connectivity) AllocFace(he HalfEdgeID) FaceID {
	return FaceID{raw: c.faces.Allocate(Face{HalfEdge: he})}
}

// AllocHalfEdge inserts a halfedge record and returns its handle.
func (c *Connectivity) AllocHalfEdge(rec HalfEdge) HalfEdgeID {
	return HalfEdgeID{raw: c.halfedges.Allocate(rec)}
}

// RemoveVertex removes v. It does not repair connectivity; the caller
// must finish repairs within the same operation (spec.md §4.2).
func (c *Connectivity) RemoveVertex(v VertexID) {
	c.vertices.Free(v.raw)
	delete(c.debugVertices, v)
}

// RemoveFace removes f. It does not repair connectivity.
func (c *Connectivity) RemoveFace(f FaceID) {
	c.faces.Free(f.raw)
}

// RemoveHalfEdge removes h. It does not repair connectivity.
func (c *Connectivity) RemoveHalfEdge(h HalfEdgeID) {
	c.halfedges.Free(h.raw)
	delete(c.debugEdges, h)
}

// Vertex returns the live vertex record at v.
func (c *Connectivity) Vertex(v VertexID) (Vertex, bool) {
	p, ok := c.vertices.Get(v.raw)
	if !ok {
		return Vertex{}, false
	}
	return *p, true
}

// Face returns the live face record at f.
func (c *Connectivity) Face(f FaceID) (Face, bool) {
	p, ok := c.faces.Get(f.raw)
	if !ok {
		return Face{}, false
	}
	return *p, true
}

// HalfEdge returns the live halfedge record at h.
func (c *Connectivity) HalfEdge(h HalfEdgeID) (HalfEdge, bool) {
	p, ok := c.halfedges.Get(h.raw)
	if !ok {
		return HalfEdge{}, false
	}
	return *p, true
}

// SetVertexHalfEdge updates v's outgoing halfedge pointer.
func (c *Connectivity) SetVertexHalfEdge(v VertexID, he HalfEdgeID) {
	if p, ok := c.vertices.Get(v.raw); ok {
		p.HalfEdge = he
	}
}

// SetFaceHalfEdge updates f's boundary halfedge pointer.
func (c *Connectivity) SetFaceHalfEdge(f FaceID, he HalfEdgeID) {
	if p, ok := c.faces.Get(f.raw); ok {
		p.HalfEdge = he
	}
}

// SetHalfEdge overwrites the record at h.
func (c *Connectivity) SetHalfEdge(h HalfEdgeID, rec HalfEdge) {
	if p, ok := c.halfedges.Get(h.raw); ok {
		*p = rec
	}
}

// SetTwin sets h's twin pointer.
func (c *Connectivity) SetTwin(h, twin HalfEdgeID) {
	if p, ok := c.halfedges.Get(h.raw); ok {
		p.Twin = twin
	}
}

// SetNext sets h's next pointer.
func (c *Connectivity) SetNext(h, next HalfEdgeID) {
	if p, ok := c.halfedges.Get(h.raw); ok {
		p.Next = next
	}
}

// SetFace sets h's face pointer (NilFace marks a boundary halfedge).
func (c *Connectivity) SetFace(h HalfEdgeID, f FaceID) {
	if p, ok := c.halfedges.Get(h.raw); ok {
		p.Face = f
	}
}

// NumVertices returns the live vertex count.
func (c *Connectivity) NumVertices() int { return c.vertices.Len() }

// NumFaces returns the live face count.
func (c *Connectivity) NumFaces() int { return c.faces.Len() }

// NumHalfEdges returns the live halfedge count.
func (c *Connectivity) NumHalfEdges() int { return c.halfedges.Len() }

// AllVertices calls fn for every live vertex.
func (c *Connectivity) AllVertices(fn func(VertexID, Vertex) bool) {
	c.vertices.All(func(id arena.ID, v *Vertex) bool { return fn(VertexID{raw: id}, *v) })
}

// AllFaces calls fn for every live face.
func (c *Connectivity) AllFaces(fn func(FaceID, Face) bool) {
	c.faces.All(func(id arena.ID, f *Face) bool { return fn(FaceID{raw: id}, *f) })
}

// AllHalfEdges calls fn for every live halfedge.
func (c *Connectivity) AllHalfEdges(fn func(HalfEdgeID, HalfEdge) bool) {
	c.halfedges.All(func(id arena.ID, h *HalfEdge) bool { return fn(HalfEdgeID{raw: id}, *h) })
}

// VertexIDs returns the live vertex IDs in arena order.
func (c *Connectivity) VertexIDs() []VertexID {
	ids := make([]VertexID, 0, c.vertices.Len())
	c.AllVertices(func(id VertexID, _ Vertex) bool { ids = append(ids, id); return true })
	return ids
}

// FaceIDs returns the live face IDs in arena order.
func (c *Connectivity) FaceIDs() []FaceID {
	ids := make([]FaceID, 0, c.faces.Len())
	c.AllFaces(func(id FaceID, _ Face) bool { ids = append(ids, id); return true })
	return ids
}

// HalfEdgeIDs returns the live halfedge IDs in arena order.
func (c *Connectivity) HalfEdgeIDs() []HalfEdgeID {
	ids := make([]HalfEdgeID, 0, c.halfedges.Len())
	c.AllHalfEdges(func(id HalfEdgeID, _ HalfEdge) bool { ids = append(ids, id); return true })
	return ids
}

// VertexDebugMark returns v's debug annotation, if any.
func (c *Connectivity) VertexDebugMark(v VertexID) (DebugMark, bool) {
	m, ok := c.debugVertices[v]
	return m, ok
}

// SetVertexDebugMark annotates v for diagnostics.
func (c *Connectivity) SetVertexDebugMark(v VertexID, m DebugMark) {
	c.debugVertices[v] = m
}

// HalfEdgeDebugMark returns h's debug annotation, if any.
func (c *Connectivity) HalfEdgeDebugMark(h HalfEdgeID) (DebugMark, bool) {
	m, ok := c.debugEdges[h]
	return m, ok
}

// SetHalfEdgeDebugMark annotates h for diagnostics.
func (c *Connectivity) SetHalfEdgeDebugMark(h HalfEdgeID, m DebugMark) {
	c.debugEdges[h] = m
}

// ClearDebug removes every debug annotation.
func (c *Connectivity) ClearDebug() {
	c.debugVertices = make(map[VertexID]DebugMark)
	c.debugEdges = make(map[HalfEdgeID]DebugMark)
}

// FaceEdges returns the cyclically ordered halfedges of f's boundary
// loop, starting at f's recorded halfedge.
func (c *Connectivity) FaceEdges(f FaceID) ([]HalfEdgeID, error) {
	face, ok := c.Face(f)
	if !ok || !face.HalfEdge.Valid() {
		return nil, mesherr.New(mesherr.KindCorruptMesh, "face has no halfedge")
	}
	return c.HalfEdgeLoop(face.HalfEdge)
}

// FaceVertices returns the vertices of f, in the same cyclic order as
// FaceEdges (each edge's source vertex).
func (c *Connectivity) FaceVertices(f FaceID) ([]VertexID, error) {
	edges, err := c.FaceEdges(f)
	if err != nil {
		return nil, err
	}
	verts := make([]VertexID, 0, len(edges))
	for _, h := range edges {
		he, ok := c.HalfEdge(h)
		if !ok {
			return nil, mesherr.New(mesherr.KindCorruptMesh, "dangling halfedge %v in face loop", h)
		}
		verts = append(verts, he.Vertex)
	}
	return verts, nil
}

// EdgeEndpoints returns (src, dst) for halfedge h: src is h's own
// vertex, dst is h.Next's vertex.
func (c *Connectivity) EdgeEndpoints(h HalfEdgeID) (VertexID, VertexID, error) {
	he, ok := c.HalfEdge(h)
	if !ok {
		return NilVertex, NilVertex, mesherr.New(mesherr.KindMissingPointer, "halfedge %v not found", h)
	}
	next, ok := c.HalfEdge(he.Next)
	if !ok {
		return NilVertex, NilVertex, mesherr.New(mesherr.KindMissingPointer, "halfedge %v has no next", h)
	}
	return he.Vertex, next.Vertex, nil
}

// HalfEdgeLoop follows Next starting at h0 until it returns to h0,
// bounded by maxLoopIterations.
func (c *Connectivity) HalfEdgeLoop(h0 HalfEdgeID) ([]HalfEdgeID, error) {
	loop := []HalfEdgeID{h0}
	h := h0
	for i := 0; ; i++ {
		if i > maxLoopIterations {
			return nil, mesherr.New(mesherr.KindCorruptMesh, "halfedge loop exceeded %d iterations starting at %v", maxLoopIterations, h0)
		}
		he, ok := c.HalfEdge(h)
		if !ok || !he.Next.Valid() {
			return nil, mesherr.New(mesherr.KindMissingPointer, "halfedge %v has no next", h)
		}
		h = he.Next
		if h == h0 {
			break
		}
		loop = append(loop, h)
	}
	return loop, nil
}

// VertexFan returns the outgoing halfedges around v, obtained by
// repeatedly stepping Twin().Next(), bounded by maxLoopIterations.
func (c *Connectivity) VertexFan(v VertexID) ([]HalfEdgeID, error) {
	vert, ok := c.Vertex(v)
	if !ok || !vert.HalfEdge.Valid() {
		return nil, mesherr.New(mesherr.KindCorruptMesh, "vertex %v has no halfedge", v)
	}
	h0 := vert.HalfEdge
	fan := []HalfEdgeID{h0}
	h := h0
	for i := 0; ; i++ {
		if i > maxLoopIterations {
			return nil, mesherr.New(mesherr.KindCorruptMesh, "vertex fan exceeded %d iterations at %v", maxLoopIterations, v)
		}
		he, ok := c.HalfEdge(h)
		if !ok || !he.Twin.Valid() {
			return nil, mesherr.New(mesherr.KindMissingPointer, "halfedge %v has no twin", h)
		}
		twin, ok := c.HalfEdge(he.Twin)
		if !ok || !twin.Next.Valid() {
			return nil, mesherr.New(mesherr.KindMissingPointer, "halfedge %v's twin has no next", h)
		}
		h = twin.Next
		if h == h0 {
			break
		}
		fan = append(fan, h)
	}
	return fan, nil
}

// IsBoundary reports whether h carries no face (spec.md's "face =
// None" boundary marker).
func (c *Connectivity) IsBoundary(h HalfEdgeID) (bool, error) {
	he, ok := c.HalfEdge(h)
	if !ok {
		return false, mesherr.New(mesherr.KindMissingPointer, "halfedge %v not found", h)
	}
	return !he.Face.Valid(), nil
}

// AddBoundaryHalfEdges closes every hole left by a twin-less halfedge:
// for each maximal run of twin-less halfedges around a boundary loop,
// it allocates matching boundary halfedges (Face == NilFace) and
// threads them into a cycle going the opposite direction, exactly as
// original_source's add_boundary_halfedges.
func (c *Connectivity) AddBoundaryHalfEdges() error {
	starts := c.HalfEdgeIDs()

	for _, h0 := range starts {
		rec, ok := c.HalfEdge(h0)
		if !ok || rec.Twin.Valid() {
			continue
		}

		var boundary []HalfEdgeID
		hIt := h0
		for i := 0; ; i++ {
			if i > maxLoopIterations {
				return mesherr.New(mesherr.KindCorruptMesh, "boundary closure exceeded %d iterations starting at %v", maxLoopIterations, h0)
			}
			t := c.AllocHalfEdge(HalfEdge{})
			boundary = append(boundary, t)
			c.SetTwin(hIt, t)
			c.SetTwin(t, hIt)

			hItRec, _ := c.HalfEdge(hIt)
			nextRec, ok := c.HalfEdge(hItRec.Next)
			if !ok {
				return mesherr.New(mesherr.KindMissingPointer, "halfedge %v has no next", hIt)
			}
			c.SetVertex(t, nextRec.Vertex)

			hIt = hItRec.Next
			for hIt != h0 {
				cur, ok := c.HalfEdge(hIt)
				if !ok {
					return mesherr.New(mesherr.KindMissingPointer, "halfedge %v not found", hIt)
				}
				if !cur.Twin.Valid() {
					break
				}
				twinRec, ok := c.HalfEdge(cur.Twin)
				if !ok || !twinRec.Next.Valid() {
					return mesherr.New(mesherr.KindMissingPointer, "halfedge %v's twin has no next", hIt)
				}
				hIt = twinRec.Next
			}

			if hIt == h0 {
				break
			}
		}

		// boundary[] was discovered walking forward around the hole, but
		// the boundary loop's Next direction runs opposite the interior
		// loop, so link it in reverse (matches add_boundary_halfedges's
		// `.rev().circular_tuple_windows()`).
		n := len(boundary)
		for i := 0; i < n; i++ {
			cur := boundary[n-1-i]
			nxt := boundary[(n-1-i-1+n)%n]
			c.SetNext(cur, nxt)
		}
	}
	return nil
}

// SetVertex sets h's source-vertex pointer.
func (c *Connectivity) SetVertex(h HalfEdgeID, v VertexID) {
	if p, ok := c.halfedges.Get(h.raw); ok {
		p.Vertex = v
	}
}

// Clone deep-copies the connectivity (arenas and debug maps).
func (c *Connectivity) Clone() *Connectivity {
	clone := &Connectivity{
		vertices:      c.vertices.Clone(),
		faces:         c.faces.Clone(),
		halfedges:     c.halfedges.Clone(),
		debugVertices: make(map[VertexID]DebugMark, len(c.debugVertices)),
		debugEdges:    make(map[HalfEdgeID]DebugMark, len(c.debugEdges)),
	}
	for k, v := range c.debugVertices {
		clone.debugVertices[k] = v
	}
	for k, v := range c.debugEdges {
		clone.debugEdges[k] = v
	}
	return clone
}
