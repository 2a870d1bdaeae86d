// Package objio implements the Wavefront OBJ subset spec.md §6 defines
// as the core's one built-in wire format: "v"/"f" lines only, no
// normals or UVs, 1-based indices.
package objio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
)

// Write emits m as Wavefront OBJ: one "v x y z" line per live vertex in
// arena iteration order, then one "f i1 i2 ... in" line per face using
// face_vertices' traversal order, 1-based per the OBJ convention.
func Write(w io.Writer, m *mesh.HalfEdgeMesh) error {
	r := m.ReadConnectivity()
	defer r.Release()
	conn := r.Conn()

	posRead, err := m.Channels().Positions.Read(m.DefaultChannels().Position)
	if err != nil {
		return err
	}
	defer posRead.Release()

	bw := bufio.NewWriter(w)

	vertexIDs := conn.VertexIDs()
	index := make(map[mesh.VertexID]int, len(vertexIDs))
	for i, v := range vertexIDs {
		index[v] = i + 1
		p := posRead.Get(v)
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2]); err != nil {
			return mesherr.Wrap(mesherr.KindIoError, err, "objio: writing OBJ")
		}
	}

	for _, f := range conn.FaceIDs() {
		verts, err := conn.FaceVertices(f)
		if err != nil {
			return err
		}
		if _, err := bw.WriteString("f"); err != nil {
			return mesherr.Wrap(mesherr.KindIoError, err, "objio: writing OBJ")
		}
		for _, v := range verts {
			if _, err := fmt.Fprintf(bw, " %d", index[v]); err != nil {
				return mesherr.Wrap(mesherr.KindIoError, err, "objio: writing OBJ")
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return mesherr.Wrap(mesherr.KindIoError, err, "objio: writing OBJ")
		}
	}

	if err := bw.Flush(); err != nil {
		return mesherr.Wrap(mesherr.KindIoError, err, "objio: writing OBJ")
	}
	return nil
}
