package buffers

import (
	"github.com/blackjack3d/meshkit/channel"
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
)

// faceNormalFn returns the normal to use for face f, given its live
// vertex loop verts (already fetched by the caller).
type faceNormalFn func(f mesh.FaceID, pos *channel.ReadGuard[mesh.VertexID, vecmath.Vec3], verts []mesh.VertexID) vecmath.Vec3

// faceNormalLookup returns a faceNormalFn reading from the mesh's
// cached face-normal channel when one exists and forceGen is false,
// falling back to a per-call vecmath.FaceNormal computation over the
// face's first three vertices otherwise — mirroring
// generate_triangle_buffers_flat's "use cached normals unless
// force_gen" branch.
func faceNormalLookup(m *mesh.HalfEdgeMesh, forceGen bool) (faceNormalFn, func(), error) {
	dc := m.DefaultChannels()
	if !forceGen && dc.FaceNormals.Valid() {
		r, err := m.Channels().FaceVec3.Read(dc.FaceNormals)
		if err != nil {
			return nil, nil, err
		}
		fn := func(f mesh.FaceID, _ *channel.ReadGuard[mesh.VertexID, vecmath.Vec3], _ []mesh.VertexID) vecmath.Vec3 {
			return r.Get(f)
		}
		return fn, r.Release, nil
	}

	fn := func(_ mesh.FaceID, pos *channel.ReadGuard[mesh.VertexID, vecmath.Vec3], verts []mesh.VertexID) vecmath.Vec3 {
		n, ok := vecmath.FaceNormal(pos.Get(verts[0]), pos.Get(verts[1]), pos.Get(verts[2]))
		if !ok {
			return vecmath.Zero
		}
		return n
	}
	return fn, func() {}, nil
}

// vertexNormalFn returns the smoothed normal for vertex v.
type vertexNormalFn func(v mesh.VertexID) vecmath.Vec3

// vertexNormalLookup mirrors generate_triangle_buffers_smooth: when a
// cached vertex-normal channel exists and forceGen is false, it is used
// directly; otherwise every face's triangle-fan normal is accumulated
// into its corner vertices and the per-vertex sum is safely normalized,
// matching the original's "global normal accumulation map" strategy.
func vertexNormalLookup(m *mesh.HalfEdgeMesh, forceGen bool, pos *channel.ReadGuard[mesh.VertexID, vecmath.Vec3], conn *mesh.Connectivity) (vertexNormalFn, func(), error) {
	dc := m.DefaultChannels()
	if !forceGen && dc.VertexNormals.Valid() {
		r, err := m.Channels().VertexVec3.Read(dc.VertexNormals)
		if err != nil {
			return nil, nil, err
		}
		fn := func(v mesh.VertexID) vecmath.Vec3 { return r.Get(v) }
		return fn, r.Release, nil
	}

	accum := make(map[mesh.VertexID]vecmath.Vec3)
	for _, f := range conn.FaceIDs() {
		verts, err := conn.FaceVertices(f)
		if err != nil {
			return nil, nil, err
		}
		if len(verts) < 3 {
			continue
		}
		n, ok := vecmath.FaceNormal(pos.Get(verts[0]), pos.Get(verts[1]), pos.Get(verts[2]))
		if !ok {
			continue
		}
		for _, v := range verts {
			accum[v] = accum[v].Add(n)
		}
	}

	fn := func(v mesh.VertexID) vecmath.Vec3 {
		return vecmath.SafeNormalize(accum[v])
	}
	return fn, func() {}, nil
}
