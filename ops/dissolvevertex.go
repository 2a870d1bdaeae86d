// SPDX-License-Identifier: MIT
package ops

import (
	"github.com/blackjack3d/meshkit/mesh"
)

// DissolveVertex removes v, merging every face in its fan into one
// (spec.md §4.6). It is implemented as repeated DissolveEdge calls
// over v's incident edges followed by removing the now-isolated
// vertex; each dissolve leaves the remaining incident edges' ids
// untouched, so the fan captured up front stays valid throughout.
func DissolveVertex(m *mesh.HalfEdgeMesh, v mesh.VertexID) error {
	r := m.ReadConnectivity()
	fan, err := r.Conn().VertexFan(v)
	r.Release()
	if err != nil {
		return err
	}

	for _, h := range fan {
		if err := DissolveEdge(m, h); err != nil {
			return err
		}
	}

	w := m.WriteConnectivity()
	defer w.Release()
	w.Conn().RemoveVertex(v)
	return nil
}
