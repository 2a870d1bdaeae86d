package channel

import "github.com/blackjack3d/meshkit/vecmath"

// KeyKind tags which mesh element a channel is indexed by, for the
// dynamic access path and for MeshChannels.Introspect. The recognized
// set is fixed and small per spec.md §4.3: Vertex, Face, HalfEdge.
type KeyKind int

const (
	VertexKey KeyKind = iota
	FaceKey
	HalfEdgeKey
)

// String renders the KeyKind for diagnostics and introspection labels.
func (k KeyKind) String() string {
	switch k {
	case VertexKey:
		return "VertexId"
	case FaceKey:
		return "FaceId"
	case HalfEdgeKey:
		return "HalfEdgeId"
	default:
		return "UnknownKey"
	}
}

// ValueKind tags the value type stored by a channel, for the dynamic
// access path. The recognized set is fixed and extensible in principle,
// but only Vec3, f32 and bool are wired per spec.md §4.3.
type ValueKind int

const (
	Vec3Value ValueKind = iota
	F32Value
	BoolValue
)

// String renders the ValueKind for diagnostics and introspection.
func (v ValueKind) String() string {
	switch v {
	case Vec3Value:
		return "Vec3"
	case F32Value:
		return "f32"
	case BoolValue:
		return "bool"
	default:
		return "UnknownValue"
	}
}

// DynValue is a type-erased channel value boxed by its ValueKind tag,
// used by the dynamic access path and the scripting-host collaborator
// for bulk import/export. Only the field matching Kind is meaningful.
type DynValue struct {
	Kind ValueKind
	Vec3 vecmath.Vec3
	F32  float32
	Bool bool
}

// DynVec3 boxes a Vec3 as a DynValue.
func DynVec3(v vecmath.Vec3) DynValue { return DynValue{Kind: Vec3Value, Vec3: v} }

// DynF32 boxes an f32 as a DynValue.
func DynF32(v float32) DynValue { return DynValue{Kind: F32Value, F32: v} }

// DynBool boxes a bool as a DynValue.
func DynBool(v bool) DynValue { return DynValue{Kind: BoolValue, Bool: v} }
