// SPDX-License-Identifier: MIT
package compact

import (
	"github.com/blackjack3d/meshkit/vecmath"
)

// SubdivideOnce splits every face into one quad per original corner,
// introducing a face point and an edge point per original element
// (spec.md §4.7). Topology construction is identical for both methods;
// only the Linear/CatmullClark choice of where the new points (and,
// for CatmullClark, the original vertices) end up differs.
func (cm *Mesh) SubdivideOnce(method Method) (*Mesh, error) {
	numFaces := cm.NumFaces()

	facePoints := make([]vecmath.Vec3, numFaces)
	for f := 0; f < numFaces; f++ {
		verts := cm.FaceVertices(f)
		sum := vecmath.Vec3{}
		for _, vi := range verts {
			sum = sum.Add(cm.Positions[vi])
		}
		facePoints[f] = sum.Mul(1.0 / float32(len(verts)))
	}

	edgeFaces := make(map[[2]int32][]int32, len(cm.EdgeEndpoints))
	for f := 0; f < numFaces; f++ {
		verts := cm.FaceVertices(f)
		n := len(verts)
		for i := 0; i < n; i++ {
			key := canonicalEdge(verts[i], verts[(i+1)%n])
			edgeFaces[key] = append(edgeFaces[key], int32(f))
		}
	}

	edgeIndex := make(map[[2]int32]int32, len(cm.EdgeEndpoints))
	edgePoints := make([]vecmath.Vec3, len(cm.EdgeEndpoints))
	for i, e := range cm.EdgeEndpoints {
		edgeIndex[e] = int32(i)
		a, b := cm.Positions[e[0]], cm.Positions[e[1]]
		switch {
		case method == Linear:
			edgePoints[i] = vecmath.Lerp(a, b, 0.5)
		case len(edgeFaces[e]) == 2:
			fp1, fp2 := facePoints[edgeFaces[e][0]], facePoints[edgeFaces[e][1]]
			edgePoints[i] = a.Add(b).Add(fp1).Add(fp2).Mul(0.25)
		default:
			// Boundary edge (incident to exactly one face): midpoint,
			// per spec.md §4.7's boundary rule.
			edgePoints[i] = vecmath.Lerp(a, b, 0.5)
		}
	}

	newPositions := make([]vecmath.Vec3, len(cm.Positions))
	if method == Linear {
		copy(newPositions, cm.Positions)
	} else {
		cm.repositionVertices(facePoints, edgeFaces, newPositions)
	}

	newFaceVerts, newFaceOffsets := cm.subdivideTopology(edgeIndex, int32(len(cm.Positions)), int32(numFaces))

	allPositions := make([]vecmath.Vec3, 0, len(newPositions)+len(facePoints)+len(edgePoints))
	allPositions = append(allPositions, newPositions...)
	allPositions = append(allPositions, facePoints...)
	allPositions = append(allPositions, edgePoints...)

	result := &Mesh{
		Positions:   allPositions,
		FaceVerts:   newFaceVerts,
		FaceOffsets: newFaceOffsets,
	}
	result.EdgeEndpoints = result.rebuildEdgeEndpoints()
	return result, nil
}

// SubdivideMulti chains n subdivisions of method, returning the
// original mesh unchanged when n == 0.
func (cm *Mesh) SubdivideMulti(n int, method Method) (*Mesh, error) {
	current := cm
	for i := 0; i < n; i++ {
		next, err := current.SubdivideOnce(method)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// repositionVertices fills newPositions with the Catmull-Clark smoothed
// position of every original vertex: interior vertices use
// (F + 2R + (n-3)P)/n (F = avg adjacent face points, R = avg adjacent
// edge midpoints, n = valence, P = old position); boundary vertices
// (incident to two or more boundary edges) instead move to 0.75 * P plus
// 0.25 * the average of their boundary edges' midpoints.
func (cm *Mesh) repositionVertices(facePoints []vecmath.Vec3, edgeFaces map[[2]int32][]int32, newPositions []vecmath.Vec3) {
	numFaces := cm.NumFaces()
	vertFaces := make([][]int32, len(cm.Positions))
	for f := 0; f < numFaces; f++ {
		for _, vi := range cm.FaceVertices(f) {
			vertFaces[vi] = append(vertFaces[vi], int32(f))
		}
	}
	vertEdges := make([][]int32, len(cm.Positions))
	for i, e := range cm.EdgeEndpoints {
		vertEdges[e[0]] = append(vertEdges[e[0]], int32(i))
		vertEdges[e[1]] = append(vertEdges[e[1]], int32(i))
	}

	for v := range cm.Positions {
		p := cm.Positions[v]
		incidentEdges := vertEdges[v]
		if len(incidentEdges) == 0 {
			newPositions[v] = p
			continue
		}

		var boundaryEdges []int32
		for _, ei := range incidentEdges {
			if len(edgeFaces[cm.EdgeEndpoints[ei]]) < 2 {
				boundaryEdges = append(boundaryEdges, ei)
			}
		}

		if len(boundaryEdges) >= 2 {
			sum := vecmath.Vec3{}
			for _, ei := range boundaryEdges {
				e := cm.EdgeEndpoints[ei]
				other := e[0]
				if other == int32(v) {
					other = e[1]
				}
				sum = sum.Add(vecmath.Lerp(p, cm.Positions[other], 0.5))
			}
			avgBoundaryMidpoint := sum.Mul(1.0 / float32(len(boundaryEdges)))
			newPositions[v] = p.Mul(0.75).Add(avgBoundaryMidpoint.Mul(0.25))
			continue
		}

		faces := vertFaces[v]
		valence := float32(len(incidentEdges))

		fsum := vecmath.Vec3{}
		for _, fi := range faces {
			fsum = fsum.Add(facePoints[fi])
		}
		f := fsum.Mul(1.0 / float32(len(faces)))

		rsum := vecmath.Vec3{}
		for _, ei := range incidentEdges {
			e := cm.EdgeEndpoints[ei]
			other := e[0]
			if other == int32(v) {
				other = e[1]
			}
			rsum = rsum.Add(vecmath.Lerp(p, cm.Positions[other], 0.5))
		}
		r := rsum.Mul(1.0 / valence)

		newPositions[v] = f.Add(r.Mul(2)).Add(p.Mul(valence - 3)).Mul(1.0 / valence)
	}
}

// subdivideTopology builds the new face list: each original face's n
// corners each become one quad [vertex, next-edge-point, face-point,
// prev-edge-point]. facePointBase/numOriginalFaces locate the
// newly-appended face points (edge points start right after them).
func (cm *Mesh) subdivideTopology(edgeIndex map[[2]int32]int32, facePointBase, numOriginalFaces int32) ([]int32, []int32) {
	edgePointBase := facePointBase + numOriginalFaces

	var faceVerts []int32
	faceOffsets := []int32{0}

	for f := 0; f < cm.NumFaces(); f++ {
		verts := cm.FaceVertices(f)
		n := len(verts)
		fp := facePointBase + int32(f)
		for i := 0; i < n; i++ {
			vCur := verts[i]
			vPrev := verts[(i-1+n)%n]
			vNext := verts[(i+1)%n]
			ePrev := edgePointBase + edgeIndex[canonicalEdge(vPrev, vCur)]
			eNext := edgePointBase + edgeIndex[canonicalEdge(vCur, vNext)]
			faceVerts = append(faceVerts, vCur, eNext, fp, ePrev)
			faceOffsets = append(faceOffsets, int32(len(faceVerts)))
		}
	}

	return faceVerts, faceOffsets
}

// rebuildEdgeEndpoints recomputes the unique undirected edge list from
// a freshly built face list.
func (cm *Mesh) rebuildEdgeEndpoints() [][2]int32 {
	seen := make(map[[2]int32]bool)
	var edges [][2]int32
	for f := 0; f < cm.NumFaces(); f++ {
		verts := cm.FaceVertices(f)
		n := len(verts)
		for i := 0; i < n; i++ {
			key := canonicalEdge(verts[i], verts[(i+1)%n])
			if !seen[key] {
				seen[key] = true
				edges = append(edges, key)
			}
		}
	}
	return edges
}
