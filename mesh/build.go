package mesh

import (
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/vecmath"
)

type edgeKey struct {
	a, b int
}

// BuildFromPolygons constructs a new HalfEdgeMesh from a flat position
// list and a list of polygons of indices into it, following spec.md
// §4.2's six-step algorithm (ported from build_from_polygons in
// original_source/blackjack_engine/src/mesh/halfedge.rs). On error the
// partially built mesh is discarded; the caller never observes it.
func BuildFromPolygons(positions []vecmath.Vec3, polygons [][]int) (*HalfEdgeMesh, error) {
	m := New()
	conn := m.connectivity
	posWrite, err := m.channels.Positions.Write(m.defaultChannels.Position)
	if err != nil {
		return nil, err
	}
	defer posWrite.Release()

	indexToVertex := make(map[int]VertexID)
	vertexDegree := make(map[VertexID]int)

	for _, polygon := range polygons {
		if len(polygon) < 3 {
			return nil, mesherr.New(mesherr.KindNonManifold, "cannot build meshes where polygons have less than three vertices")
		}
		seen := make(map[int]bool, len(polygon))
		for _, idx := range polygon {
			if seen[idx] {
				return nil, mesherr.New(mesherr.KindNonManifold, "cannot build meshes where a polygon has duplicate vertices")
			}
			seen[idx] = true
		}

		for _, idx := range polygon {
			if idx < 0 || idx >= len(positions) {
				return nil, mesherr.New(mesherr.KindNonManifold, "out-of-bounds index %d in the polygon array", idx)
			}
			v, ok := indexToVertex[idx]
			if !ok {
				v = conn.AllocVertex(NilHalfEdge)
				posWrite.Set(v, positions[idx])
				indexToVertex[idx] = v
			}
			vertexDegree[v]++
		}
	}

	pairToHalfEdge := make(map[edgeKey]HalfEdgeID)

	for _, polygon := range polygons {
		halfEdgesInFace := make([]HalfEdgeID, 0, len(polygon))
		face := conn.AllocFace(NilHalfEdge)

		n := len(polygon)
		for i := 0; i < n; i++ {
			a := polygon[i]
			b := polygon[(i+1)%n]

			if _, exists := pairToHalfEdge[edgeKey{a, b}]; exists {
				return nil, mesherr.New(mesherr.KindNonManifold,
					"found multiple oriented edges with the same indices: either the surface is non-manifold or faces are not oriented consistently")
			}

			h := conn.AllocHalfEdge(HalfEdge{})
			conn.SetFace(h, face)
			conn.SetFaceHalfEdge(face, h)

			vA := indexToVertex[a]
			conn.SetVertex(h, vA)
			conn.SetVertexHalfEdge(vA, h)

			halfEdgesInFace = append(halfEdgesInFace, h)
			pairToHalfEdge[edgeKey{a, b}] = h

			if other, ok := pairToHalfEdge[edgeKey{b, a}]; ok {
				conn.SetTwin(h, other)
				conn.SetTwin(other, h)
			}
		}

		for i, h1 := range halfEdgesInFace {
			h2 := halfEdgesInFace[(i+1)%len(halfEdgesInFace)]
			conn.SetNext(h1, h2)
		}
	}

	if err := conn.AddBoundaryHalfEdges(); err != nil {
		return nil, err
	}

	var buildErr error
	conn.AllVertices(func(v VertexID, vertex Vertex) bool {
		if !vertex.HalfEdge.Valid() {
			buildErr = mesherr.New(mesherr.KindNonManifold, "there is at least a single vertex that's disconnected from any polygon")
			return false
		}

		h0 := vertex.HalfEdge
		h := h0
		count := 0
		for i := 0; ; i++ {
			if i > maxLoopIterations {
				buildErr = mesherr.New(mesherr.KindCorruptMesh, "manifoldness check exceeded %d iterations at vertex %v", maxLoopIterations, v)
				return false
			}
			boundary, err := conn.IsBoundary(h)
			if err != nil {
				buildErr = err
				return false
			}
			if !boundary {
				count++
			}
			he, _ := conn.HalfEdge(h)
			twin, ok := conn.HalfEdge(he.Twin)
			if !ok {
				buildErr = mesherr.New(mesherr.KindMissingPointer, "halfedge %v has no twin", h)
				return false
			}
			h = twin.Next
			if h == h0 {
				break
			}
		}

		if count != vertexDegree[v] {
			buildErr = mesherr.New(mesherr.KindNonManifold,
				"at least one of the vertices is not a polygon fan, but some other nonmanifold structure instead")
			return false
		}
		return true
	})
	if buildErr != nil {
		return nil, buildErr
	}

	return m, nil
}
