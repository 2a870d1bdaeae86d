package mesh

import (
	"github.com/blackjack3d/meshkit/channel"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/vecmath"
)

func toDynVec3(v vecmath.Vec3) channel.DynValue   { return channel.DynVec3(v) }
func fromDynVec3(d channel.DynValue) vecmath.Vec3 { return d.Vec3 }
func toDynF32(v float32) channel.DynValue         { return channel.DynF32(v) }
func fromDynF32(d channel.DynValue) float32       { return d.F32 }
func toDynBool(v bool) channel.DynValue           { return channel.DynBool(v) }
func fromDynBool(d channel.DynValue) bool         { return d.Bool }

type dynAdapter[K comparable, V any] struct {
	group   *channel.Group[K, V]
	toDyn   func(V) channel.DynValue
	fromDyn func(channel.DynValue) V
}

func (a dynAdapter[K, V]) Names() []string { return a.group.Names() }

func (a dynAdapter[K, V]) EnsureDyn(name string, def channel.DynValue) error {
	a.group.Ensure(name, a.fromDyn(def))
	return nil
}

func (a dynAdapter[K, V]) ReadDyn(name string) (DynReadGuard, error) {
	id, ok := a.group.Lookup(name)
	if !ok {
		return nil, mesherr.New(mesherr.KindChannelMissing, "channel %q not found", name)
	}
	guard, err := a.group.Read(id)
	if err != nil {
		return nil, err
	}
	return dynReadGuard[K, V]{guard: guard, toDyn: a.toDyn}, nil
}

func (a dynAdapter[K, V]) WriteDyn(name string) (DynWriteGuard, error) {
	id, ok := a.group.Lookup(name)
	if !ok {
		return nil, mesherr.New(mesherr.KindChannelMissing, "channel %q not found", name)
	}
	guard, err := a.group.Write(id)
	if err != nil {
		return nil, err
	}
	return dynWriteGuard[K, V]{guard: guard, toDyn: a.toDyn, fromDyn: a.fromDyn}, nil
}

type dynReadGuard[K comparable, V any] struct {
	guard *channel.ReadGuard[K, V]
	toDyn func(V) channel.DynValue
}

func (g dynReadGuard[K, V]) Get(key any) channel.DynValue { return g.toDyn(g.guard.Get(key.(K))) }
func (g dynReadGuard[K, V]) Release()                     { g.guard.Release() }

type dynWriteGuard[K comparable, V any] struct {
	guard   *channel.WriteGuard[K, V]
	toDyn   func(V) channel.DynValue
	fromDyn func(channel.DynValue) V
}

func (g dynWriteGuard[K, V]) Get(key any) channel.DynValue { return g.toDyn(g.guard.Get(key.(K))) }
func (g dynWriteGuard[K, V]) Set(key any, v channel.DynValue) {
	g.guard.Set(key.(K), g.fromDyn(v))
}
func (g dynWriteGuard[K, V]) Release() { g.guard.Release() }

// dynGroupOf resolves the DynGroup adapter for (keyKind, valueKind).
func (mc MeshChannels) dynGroupOf(keyKind channel.KeyKind, valueKind channel.ValueKind) (DynGroup, error) {
	switch keyKind {
	case channel.VertexKey:
		switch valueKind {
		case channel.Vec3Value:
			return dynAdapter[VertexID, vecmath.Vec3]{mc.VertexVec3, toDynVec3, fromDynVec3}, nil
		case channel.F32Value:
			return dynAdapter[VertexID, float32]{mc.VertexF32, toDynF32, fromDynF32}, nil
		case channel.BoolValue:
			return dynAdapter[VertexID, bool]{mc.VertexBool, toDynBool, fromDynBool}, nil
		}
	case channel.FaceKey:
		switch valueKind {
		case channel.Vec3Value:
			return dynAdapter[FaceID, vecmath.Vec3]{mc.FaceVec3, toDynVec3, fromDynVec3}, nil
		case channel.F32Value:
			return dynAdapter[FaceID, float32]{mc.FaceF32, toDynF32, fromDynF32}, nil
		case channel.BoolValue:
			return dynAdapter[FaceID, bool]{mc.FaceBool, toDynBool, fromDynBool}, nil
		}
	case channel.HalfEdgeKey:
		switch valueKind {
		case channel.Vec3Value:
			return dynAdapter[HalfEdgeID, vecmath.Vec3]{mc.HalfEdgeVec3, toDynVec3, fromDynVec3}, nil
		case channel.F32Value:
			return dynAdapter[HalfEdgeID, float32]{mc.HalfEdgeF32, toDynF32, fromDynF32}, nil
		case channel.BoolValue:
			return dynAdapter[HalfEdgeID, bool]{mc.HalfEdgeBool, toDynBool, fromDynBool}, nil
		}
	}
	return nil, mesherr.New(mesherr.KindChannelTypeMismatch, "unrecognized channel kind (%v, %v)", keyKind, valueKind)
}

// EnsureDyn creates (if absent) the channel named name under
// (keyKind, valueKind) with default def, per spec.md §4.3's
// ensure_dyn.
func (mc MeshChannels) EnsureDyn(keyKind channel.KeyKind, valueKind channel.ValueKind, name string, def channel.DynValue) error {
	g, err := mc.dynGroupOf(keyKind, valueKind)
	if err != nil {
		return err
	}
	return g.EnsureDyn(name, def)
}

// ReadDyn acquires a type-erased read lease on the named channel under
// (keyKind, valueKind).
func (mc MeshChannels) ReadDyn(keyKind channel.KeyKind, valueKind channel.ValueKind, name string) (DynReadGuard, error) {
	g, err := mc.dynGroupOf(keyKind, valueKind)
	if err != nil {
		return nil, err
	}
	return g.ReadDyn(name)
}

// WriteDyn acquires a type-erased write lease on the named channel
// under (keyKind, valueKind).
func (mc MeshChannels) WriteDyn(keyKind channel.KeyKind, valueKind channel.ValueKind, name string) (DynWriteGuard, error) {
	g, err := mc.dynGroupOf(keyKind, valueKind)
	if err != nil {
		return nil, err
	}
	return g.WriteDyn(name)
}
