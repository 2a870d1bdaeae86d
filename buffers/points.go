package buffers

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
)

// PointBuffers is one position per live vertex, for point-cloud
// rendering (generate_point_buffers).
type PointBuffers struct {
	Positions []vecmath.Vec3
}

// Points returns one position per live vertex, in arena order.
func Points(m *mesh.HalfEdgeMesh) (PointBuffers, error) {
	r := m.ReadConnectivity()
	defer r.Release()
	conn := r.Conn()

	posRead, err := m.Channels().Positions.Read(m.DefaultChannels().Position)
	if err != nil {
		return PointBuffers{}, err
	}
	defer posRead.Release()

	ids := conn.VertexIDs()
	out := PointBuffers{Positions: make([]vecmath.Vec3, len(ids))}
	for i, v := range ids {
		out.Positions[i] = posRead.Get(v)
	}
	return out, nil
}
