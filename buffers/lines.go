package buffers

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
)

// LineBuffers is a flat list of line segments: every consecutive pair
// of Positions/Colors is one segment's endpoints, for wireframe/debug
// overlay rendering.
type LineBuffers struct {
	Positions []vecmath.Vec3
	Colors    []vecmath.Vec3
}

const (
	arrowShrink    = float32(0.1)
	arrowHeadLen   = float32(0.15)
	arrowHeadWidth = float32(0.06)
)

// Lines emits one segment per undirected edge: a halfedge is visited
// only once its twin hasn't already contributed a segment, matching
// generate_line_buffers' dedup-by-twin strategy. Segment color comes
// from either halfedge's debug mark, defaulting to white.
func Lines(m *mesh.HalfEdgeMesh) (LineBuffers, error) {
	r := m.ReadConnectivity()
	defer r.Release()
	conn := r.Conn()

	posRead, err := m.Channels().Positions.Read(m.DefaultChannels().Position)
	if err != nil {
		return LineBuffers{}, err
	}
	defer posRead.Release()

	var out LineBuffers
	visited := make(map[mesh.HalfEdgeID]bool)
	for _, h := range conn.HalfEdgeIDs() {
		if visited[h] {
			continue
		}
		he, ok := conn.HalfEdge(h)
		if !ok {
			continue
		}
		visited[h] = true
		if he.Twin.Valid() {
			visited[he.Twin] = true
		}

		src, dst, err := conn.EdgeEndpoints(h)
		if err != nil {
			return LineBuffers{}, err
		}
		c := edgeColor(conn, h, he.Twin)
		out.Positions = append(out.Positions, posRead.Get(src), posRead.Get(dst))
		out.Colors = append(out.Colors, c, c)
	}
	return out, nil
}

// HalfEdgeArrows emits a small shrunk arrow per live halfedge (one per
// directed halfedge, not deduplicated by twin) pointing from its
// source toward its destination, nudged toward its face's centroid so
// the two arrows of an edge don't overlap — mirrors
// generate_halfedge_arrow_buffers.
func HalfEdgeArrows(m *mesh.HalfEdgeMesh) (LineBuffers, error) {
	r := m.ReadConnectivity()
	defer r.Release()
	conn := r.Conn()

	posRead, err := m.Channels().Positions.Read(m.DefaultChannels().Position)
	if err != nil {
		return LineBuffers{}, err
	}
	defer posRead.Release()

	var out LineBuffers
	for _, h := range conn.HalfEdgeIDs() {
		he, ok := conn.HalfEdge(h)
		if !ok {
			continue
		}
		src, dst, err := conn.EdgeEndpoints(h)
		if err != nil {
			return LineBuffers{}, err
		}
		p0, p1 := posRead.Get(src), posRead.Get(dst)
		edge := p1.Sub(p0)
		length := edge.Len()
		if length < 1e-9 {
			continue
		}
		tangent := edge.Mul(1 / length)

		start := vecmath.Lerp(p0, p1, arrowShrink)
		tip := vecmath.Lerp(p0, p1, 1-arrowShrink)
		start, tip = nudgeTowardFace(conn, posRead, he.Face, start, tip)

		normal := faceNormalOrDefault(conn, posRead, he.Face)
		bitangent := vecmath.SafeNormalize(normal.Cross(tangent))

		headBase := vecmath.Lerp(tip, start, arrowHeadLen)
		left := headBase.Add(bitangent.Mul(arrowHeadWidth))
		right := headBase.Sub(bitangent.Mul(arrowHeadWidth))

		c := shaftColor(conn, h)
		out.Positions = append(out.Positions, start, tip, tip, left, tip, right)
		out.Colors = append(out.Colors, c, c, c, c, c, c)
	}
	return out, nil
}

func edgeColor(conn *mesh.Connectivity, h, twin mesh.HalfEdgeID) vecmath.Vec3 {
	if mark, ok := conn.HalfEdgeDebugMark(h); ok {
		return unpackRGB(mark.Color)
	}
	if twin.Valid() {
		if mark, ok := conn.HalfEdgeDebugMark(twin); ok {
			return unpackRGB(mark.Color)
		}
	}
	return white
}

func shaftColor(conn *mesh.Connectivity, h mesh.HalfEdgeID) vecmath.Vec3 {
	if mark, ok := conn.HalfEdgeDebugMark(h); ok {
		return unpackRGB(mark.Color)
	}
	return white
}

// nudgeTowardFace offsets start/tip a small amount toward f's centroid,
// so the two arrows drawn for an edge's pair of halfedges sit visibly
// apart instead of overlapping. Boundary halfedges (f invalid) are
// returned unchanged.
func nudgeTowardFace(conn *mesh.Connectivity, pos faceVertexReader, f mesh.FaceID, start, tip vecmath.Vec3) (vecmath.Vec3, vecmath.Vec3) {
	if !f.Valid() {
		return start, tip
	}
	verts, err := conn.FaceVertices(f)
	if err != nil || len(verts) == 0 {
		return start, tip
	}
	centroid := vecmath.Zero
	for _, v := range verts {
		centroid = centroid.Add(pos.Get(v))
	}
	centroid = centroid.Mul(1 / float32(len(verts)))

	mid := vecmath.Lerp(start, tip, 0.5)
	toward := vecmath.SafeNormalize(centroid.Sub(mid))
	offset := toward.Mul(arrowHeadWidth)
	return start.Add(offset), tip.Add(offset)
}

func faceNormalOrDefault(conn *mesh.Connectivity, pos faceVertexReader, f mesh.FaceID) vecmath.Vec3 {
	if f.Valid() {
		if verts, err := conn.FaceVertices(f); err == nil && len(verts) >= 3 {
			if n, ok := vecmath.FaceNormal(pos.Get(verts[0]), pos.Get(verts[1]), pos.Get(verts[2])); ok {
				return n
			}
		}
	}
	return vecmath.Vec3{0, 0, 1}
}

// faceVertexReader is the subset of a channel.ReadGuard[VertexID, Vec3]
// that nudgeTowardFace/faceNormalOrDefault need.
type faceVertexReader interface {
	Get(mesh.VertexID) vecmath.Vec3
}
