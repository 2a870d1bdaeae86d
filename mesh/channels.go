package mesh

import (
	"fmt"
	"sort"

	"github.com/blackjack3d/meshkit/channel"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/vecmath"
)

// MeshChannels is the heterogeneous (KeyKind, ValueKind) -> *Group
// table spec.md §4.3 calls MeshChannels: nine concrete groups (the
// fixed cross product of {Vertex,Face,HalfEdge} x {Vec3,f32,bool}),
// avoiding reflection-based dynamic dispatch in favor of an enumerated
// set of typed fields, per SPEC_FULL.md §6.3.
type MeshChannels struct {
	VertexVec3   *channel.Group[VertexID, vecmath.Vec3]
	VertexF32    *channel.Group[VertexID, float32]
	VertexBool   *channel.Group[VertexID, bool]
	FaceVec3     *channel.Group[FaceID, vecmath.Vec3]
	FaceF32      *channel.Group[FaceID, float32]
	FaceBool     *channel.Group[FaceID, bool]
	HalfEdgeVec3 *channel.Group[HalfEdgeID, vecmath.Vec3]
	HalfEdgeF32  *channel.Group[HalfEdgeID, float32]
	HalfEdgeBool *channel.Group[HalfEdgeID, bool]

	// Positions is an alias for VertexVec3, named to match spec.md's
	// Positions = Channel<VertexId, Vec3> type alias.
	Positions *channel.Group[VertexID, vecmath.Vec3]
}

// NewMeshChannels constructs an empty MeshChannels with all nine
// groups initialized.
func NewMeshChannels() MeshChannels {
	positions := channel.NewGroup[VertexID, vecmath.Vec3]()
	return MeshChannels{
		VertexVec3:   positions,
		VertexF32:    channel.NewGroup[VertexID, float32](),
		VertexBool:   channel.NewGroup[VertexID, bool](),
		FaceVec3:     channel.NewGroup[FaceID, vecmath.Vec3](),
		FaceF32:      channel.NewGroup[FaceID, float32](),
		FaceBool:     channel.NewGroup[FaceID, bool](),
		HalfEdgeVec3: channel.NewGroup[HalfEdgeID, vecmath.Vec3](),
		HalfEdgeF32:  channel.NewGroup[HalfEdgeID, float32](),
		HalfEdgeBool: channel.NewGroup[HalfEdgeID, bool](),
		Positions:    positions,
	}
}

// Clone deep-copies every group in mc.
func (mc MeshChannels) Clone() MeshChannels {
	positions := mc.VertexVec3.Clone()
	return MeshChannels{
		VertexVec3:   positions,
		VertexF32:    mc.VertexF32.Clone(),
		VertexBool:   mc.VertexBool.Clone(),
		FaceVec3:     mc.FaceVec3.Clone(),
		FaceF32:      mc.FaceF32.Clone(),
		FaceBool:     mc.FaceBool.Clone(),
		HalfEdgeVec3: mc.HalfEdgeVec3.Clone(),
		HalfEdgeF32:  mc.HalfEdgeF32.Clone(),
		HalfEdgeBool: mc.HalfEdgeBool.Clone(),
		Positions:    positions,
	}
}

// DefaultChannels names the well-known channels every mesh carries:
// position is mandatory; vertex/face normals and per-halfedge UVs are
// created lazily and tracked as optional (spec.md §4.3, §4.9).
type DefaultChannels struct {
	Position      channel.ID[VertexID, vecmath.Vec3]
	VertexNormals channel.ID[VertexID, vecmath.Vec3]
	FaceNormals   channel.ID[FaceID, vecmath.Vec3]
	UVs           channel.ID[HalfEdgeID, vecmath.Vec3]
}

func newDefaultChannels(mc MeshChannels) DefaultChannels {
	return DefaultChannels{
		Position: mc.Positions.Ensure("position", vecmath.Zero),
	}
}

// EnsureVertexNormals creates (if absent) and returns the vertex
// normal channel ID.
func (mc MeshChannels) EnsureVertexNormals(dc *DefaultChannels) channel.ID[VertexID, vecmath.Vec3] {
	if !dc.VertexNormals.Valid() {
		dc.VertexNormals = mc.VertexVec3.Ensure("normal", vecmath.Zero)
	}
	return dc.VertexNormals
}

// EnsureFaceNormals creates (if absent) and returns the face normal
// channel ID.
func (mc MeshChannels) EnsureFaceNormals(dc *DefaultChannels) channel.ID[FaceID, vecmath.Vec3] {
	if !dc.FaceNormals.Valid() {
		dc.FaceNormals = mc.FaceVec3.Ensure("normal", vecmath.Zero)
	}
	return dc.FaceNormals
}

// EnsureUVs creates (if absent) and returns the per-halfedge UV
// channel ID.
func (mc MeshChannels) EnsureUVs(dc *DefaultChannels) channel.ID[HalfEdgeID, vecmath.Vec3] {
	if !dc.UVs.Valid() {
		dc.UVs = mc.HalfEdgeVec3.Ensure("uv", vecmath.Zero)
	}
	return dc.UVs
}

// DynGroup is the type-erased view of a Group used by the dynamic
// access path (spec.md §4.3's ensure_dyn/read_dyn/write_dyn) and by a
// scripting-host collaborator that only knows a channel's ValueKind at
// run time, not its Go type parameter.
type DynGroup interface {
	EnsureDyn(name string, def channel.DynValue) error
	ReadDyn(name string) (DynReadGuard, error)
	WriteDyn(name string) (DynWriteGuard, error)
	Names() []string
}

// DynReadGuard is the type-erased read lease returned by ReadDyn. key
// must hold the concrete ID type matching the KeyKind the guard was
// obtained for (VertexID, FaceID or HalfEdgeID); passing any other
// type panics, matching the caller contract of a kind-dispatched API.
type DynReadGuard interface {
	Get(key any) channel.DynValue
	Release()
}

// DynWriteGuard is the type-erased write lease returned by WriteDyn.
type DynWriteGuard interface {
	Get(key any) channel.DynValue
	Set(key any, v channel.DynValue)
	Release()
}

// groupOf returns the concrete Group backing (keyKind, valueKind), or
// an error if the combination is unrecognized (spec.md §4.3: the
// recognized key/value kind sets are fixed).
func (mc MeshChannels) groupOf(keyKind channel.KeyKind, valueKind channel.ValueKind) (any, error) {
	switch keyKind {
	case channel.VertexKey:
		switch valueKind {
		case channel.Vec3Value:
			return mc.VertexVec3, nil
		case channel.F32Value:
			return mc.VertexF32, nil
		case channel.BoolValue:
			return mc.VertexBool, nil
		}
	case channel.FaceKey:
		switch valueKind {
		case channel.Vec3Value:
			return mc.FaceVec3, nil
		case channel.F32Value:
			return mc.FaceF32, nil
		case channel.BoolValue:
			return mc.FaceBool, nil
		}
	case channel.HalfEdgeKey:
		switch valueKind {
		case channel.Vec3Value:
			return mc.HalfEdgeVec3, nil
		case channel.F32Value:
			return mc.HalfEdgeF32, nil
		case channel.BoolValue:
			return mc.HalfEdgeBool, nil
		}
	}
	return nil, mesherr.New(mesherr.KindChannelTypeMismatch, "unrecognized channel kind (%v, %v)", keyKind, valueKind)
}

// IntrospectEntry is one row of an Introspect report: the channel's
// per-element values rendered as strings, in the same order as the
// caller-supplied key list.
type IntrospectEntry struct {
	KeyKind   channel.KeyKind
	ValueKind channel.ValueKind
	Name      string
	Values    []string
}

// Introspect renders every channel's values against the supplied live
// key lists, for UI display (mirrors original_source's channels.rs
// Introspect trait: one formatted string per key, grouped by
// (KeyKind, ValueKind, name)).
func (mc MeshChannels) Introspect(vertexKeys []VertexID, faceKeys []FaceID, halfEdgeKeys []HalfEdgeID) []IntrospectEntry {
	var entries []IntrospectEntry

	appendGroup := func(kk channel.KeyKind, vk channel.ValueKind, names []string, render func(name string) []string) {
		sort.Strings(names)
		for _, name := range names {
			entries = append(entries, IntrospectEntry{KeyKind: kk, ValueKind: vk, Name: name, Values: render(name)})
		}
	}

	appendGroup(channel.VertexKey, channel.Vec3Value, mc.VertexVec3.Names(), func(name string) []string {
		return introspectGroup(mc.VertexVec3, name, vertexKeys, func(v vecmath.Vec3) string { return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X(), v.Y(), v.Z()) })
	})
	appendGroup(channel.VertexKey, channel.F32Value, mc.VertexF32.Names(), func(name string) []string {
		return introspectGroup(mc.VertexF32, name, vertexKeys, func(v float32) string { return fmt.Sprintf("%.4f", v) })
	})
	appendGroup(channel.VertexKey, channel.BoolValue, mc.VertexBool.Names(), func(name string) []string {
		return introspectGroup(mc.VertexBool, name, vertexKeys, func(v bool) string { return fmt.Sprintf("%v", v) })
	})
	appendGroup(channel.FaceKey, channel.Vec3Value, mc.FaceVec3.Names(), func(name string) []string {
		return introspectGroup(mc.FaceVec3, name, faceKeys, func(v vecmath.Vec3) string { return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X(), v.Y(), v.Z()) })
	})
	appendGroup(channel.FaceKey, channel.F32Value, mc.FaceF32.Names(), func(name string) []string {
		return introspectGroup(mc.FaceF32, name, faceKeys, func(v float32) string { return fmt.Sprintf("%.4f", v) })
	})
	appendGroup(channel.FaceKey, channel.BoolValue, mc.FaceBool.Names(), func(name string) []string {
		return introspectGroup(mc.FaceBool, name, faceKeys, func(v bool) string { return fmt.Sprintf("%v", v) })
	})
	appendGroup(channel.HalfEdgeKey, channel.Vec3Value, mc.HalfEdgeVec3.Names(), func(name string) []string {
		return introspectGroup(mc.HalfEdgeVec3, name, halfEdgeKeys, func(v vecmath.Vec3) string { return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X(), v.Y(), v.Z()) })
	})
	appendGroup(channel.HalfEdgeKey, channel.F32Value, mc.HalfEdgeF32.Names(), func(name string) []string {
		return introspectGroup(mc.HalfEdgeF32, name, halfEdgeKeys, func(v float32) string { return fmt.Sprintf("%.4f", v) })
	})
	appendGroup(channel.HalfEdgeKey, channel.BoolValue, mc.HalfEdgeBool.Names(), func(name string) []string {
		return introspectGroup(mc.HalfEdgeBool, name, halfEdgeKeys, func(v bool) string { return fmt.Sprintf("%v", v) })
	})

	return entries
}

func introspectGroup[K comparable, V any](g *channel.Group[K, V], name string, keys []K, render func(V) string) []string {
	id, ok := g.Lookup(name)
	if !ok {
		return nil
	}
	r, err := g.Read(id)
	if err != nil {
		return nil
	}
	defer r.Release()

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = render(r.Get(k))
	}
	return out
}
