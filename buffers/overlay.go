package buffers

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
)

// defaultOverlayAlpha is the Alphas value used for a non-hovered
// overlay triangle.
const defaultOverlayAlpha = float32(1.0)

// hoverOverlayAlpha is used instead when a face is the hovered one,
// matching generate_face_overlay_buffers' 0.5 hover alpha.
const hoverOverlayAlpha = float32(0.5)

// FaceOverlayBuffers is a flat-colored triangle list for GPU picking
// and face-hover highlighting: Colors is the RGB color, Alphas the
// matching per-corner alpha, and Ids the face-picking id (the face's
// position in face iteration order + 1, so 0 stays free as the picking
// "no face" clear color) repeated per triangle corner.
type FaceOverlayBuffers struct {
	Positions []vecmath.Vec3
	Colors    []vecmath.Vec3
	Alphas    []float32
	Ids       []uint32
}

// FaceOverlay fan-triangulates every face (same traversal as
// FlatTriangles) and tags each triangle's corners with the face's
// 1-based picking id, setting hover's alpha to hoverOverlayAlpha and
// every other face's to defaultOverlayAlpha.
func FaceOverlay(m *mesh.HalfEdgeMesh, hover mesh.FaceID) (FaceOverlayBuffers, error) {
	r := m.ReadConnectivity()
	defer r.Release()
	conn := r.Conn()

	posRead, err := m.Channels().Positions.Read(m.DefaultChannels().Position)
	if err != nil {
		return FaceOverlayBuffers{}, err
	}
	defer posRead.Release()

	var out FaceOverlayBuffers
	for i, f := range conn.FaceIDs() {
		verts, err := conn.FaceVertices(f)
		if err != nil {
			return FaceOverlayBuffers{}, err
		}
		if len(verts) < 3 {
			continue
		}
		id := uint32(i + 1)
		alpha := defaultOverlayAlpha
		if hover.Valid() && f == hover {
			alpha = hoverOverlayAlpha
		}
		color := pickingColor(id)

		p0 := posRead.Get(verts[0])
		for k := 1; k+1 < len(verts); k++ {
			p1 := posRead.Get(verts[k])
			p2 := posRead.Get(verts[k+1])
			out.Positions = append(out.Positions, p0, p1, p2)
			out.Colors = append(out.Colors, color, color, color)
			out.Alphas = append(out.Alphas, alpha, alpha, alpha)
			out.Ids = append(out.Ids, id, id, id)
		}
	}
	return out, nil
}

// pickingColor derives a stable, visually distinct color from a
// picking id; FaceOverlay uses it as every face's overlay color.
func pickingColor(id uint32) vecmath.Vec3 {
	r := float32((id*2654435761)&0xFF) / 255
	g := float32((id*2246822519)&0xFF) / 255
	b := float32((id*3266489917)&0xFF) / 255
	return vecmath.Vec3{r, g, b}
}
