package mesh

import "sync"

// GenerationConfig holds a mesh's flat/smooth normal preference (spec.md
// §4.9's flat/smooth normal choice). Clone copies it; no builder or
// buffer extractor in this module reads it: buffers.FlatTriangles and
// buffers.SmoothTriangles each fix their own normal mode.
type GenerationConfig struct {
	// SmoothNormals records a preference for per-vertex (Phong) normals
	// over per-face (flat) normals.
	SmoothNormals bool
}

// HalfEdgeMesh is the facade spec.md §3/§4.2-§4.4 describes: a
// connectivity graph plus its channel storage, guarded independently
// so a long-lived read lease on channels doesn't block a connectivity
// write and vice versa (teacher idiom: separate RWMutexes per
// resource, as in core.Graph's muVert/muEdgeAdj split).
type HalfEdgeMesh struct {
	mu           sync.RWMutex
	connectivity *Connectivity

	channels        MeshChannels
	defaultChannels DefaultChannels

	GenConfig GenerationConfig
}

// New returns an empty HalfEdgeMesh with a default "position" channel
// already created.
func New() *HalfEdgeMesh {
	channels := NewMeshChannels()
	return &HalfEdgeMesh{
		connectivity:    NewConnectivity(),
		channels:        channels,
		defaultChannels: newDefaultChannels(channels),
	}
}

// ConnReadGuard is a live shared-read lease on a mesh's connectivity.
type ConnReadGuard struct {
	mu   *sync.RWMutex
	conn *Connectivity
}

// Conn exposes the connectivity for reading.
func (g *ConnReadGuard) Conn() *Connectivity { return g.conn }

// Release gives up the read lease.
func (g *ConnReadGuard) Release() { g.mu.RUnlock() }

// ConnWriteGuard is a live exclusive-write lease on a mesh's
// connectivity.
type ConnWriteGuard struct {
	mu   *sync.RWMutex
	conn *Connectivity
}

// Conn exposes the connectivity for reading and writing.
func (g *ConnWriteGuard) Conn() *Connectivity { return g.conn }

// Release gives up the write lease.
func (g *ConnWriteGuard) Release() { g.mu.Unlock() }

// ReadConnectivity acquires a shared read lease on m's connectivity.
func (m *HalfEdgeMesh) ReadConnectivity() *ConnReadGuard {
	m.mu.RLock()
	return &ConnReadGuard{mu: &m.mu, conn: m.connectivity}
}

// WriteConnectivity acquires an exclusive write lease on m's
// connectivity.
func (m *HalfEdgeMesh) WriteConnectivity() *ConnWriteGuard {
	m.mu.Lock()
	return &ConnWriteGuard{mu: &m.mu, conn: m.connectivity}
}

// Channels exposes the mesh's channel storage (itself internally
// lease-guarded per channel, see channel.Group).
func (m *HalfEdgeMesh) Channels() MeshChannels { return m.channels }

// DefaultChannels exposes the well-known channel IDs (position and,
// once created, normals/UVs).
func (m *HalfEdgeMesh) DefaultChannels() *DefaultChannels { return &m.defaultChannels }

// BoundingBox returns the axis-aligned min/max corners over every live
// vertex position. Returns (Zero, Zero) for an empty mesh.
func (m *HalfEdgeMesh) BoundingBox() (min, max [3]float32) {
	r := m.ReadConnectivity()
	defer r.Release()

	posRead, err := m.channels.Positions.Read(m.defaultChannels.Position)
	if err != nil {
		return
	}
	defer posRead.Release()

	first := true
	r.Conn().AllVertices(func(v VertexID, _ Vertex) bool {
		p := posRead.Get(v)
		if first {
			min = [3]float32{p.X(), p.Y(), p.Z()}
			max = min
			first = false
			return true
		}
		if p.X() < min[0] {
			min[0] = p.X()
		}
		if p.Y() < min[1] {
			min[1] = p.Y()
		}
		if p.Z() < min[2] {
			min[2] = p.Z()
		}
		if p.X() > max[0] {
			max[0] = p.X()
		}
		if p.Y() > max[1] {
			max[1] = p.Y()
		}
		if p.Z() > max[2] {
			max[2] = p.Z()
		}
		return true
	})
	return
}

// Clone deep-copies the mesh: connectivity, channels, and default
// channel IDs (which refer to the cloned channel arenas, not the
// originals — Clone on channel.Group preserves slot layout so the IDs
// still resolve correctly).
func (m *HalfEdgeMesh) Clone() *HalfEdgeMesh {
	r := m.ReadConnectivity()
	defer r.Release()

	return &HalfEdgeMesh{
		connectivity:    r.Conn().Clone(),
		channels:        m.channels.Clone(),
		defaultChannels: m.defaultChannels,
		GenConfig:       m.GenConfig,
	}
}
