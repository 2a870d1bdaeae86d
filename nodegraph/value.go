package nodegraph

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/noisefield"
	"github.com/blackjack3d/meshkit/selection"
	"github.com/blackjack3d/meshkit/vecmath"
)

// ValueKind discriminates which field of Value is populated. A Value with
// the zero ValueKind (ValueNone) carries no data, mirroring a parameter
// that accepts only connections.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueVector
	ValueScalar
	ValueSelection
	ValueEnum
	ValueString
	ValuePath
	ValueMesh
	ValueHeightMap
)

// Scalar is a bounded numeric parameter: a current value plus the
// inclusive range and display precision a UI widget would clamp/round to.
type Scalar struct {
	Value    float32
	Min      float32
	Max      float32
	SoftMin  float32
	SoftMax  float32
	Decimals int
}

// Enum is a closed choice of string values with an optional current
// selection index; Selected == nil means nothing is chosen yet.
type Enum struct {
	Values   []string
	Selected *uint32
}

// Str is a string-valued parameter, flagged for multiline editing the way
// spec.md's String{text, multiline} variant is.
type Str struct {
	Text      string
	Multiline bool
}

// Value is the tagged union carried on every port: spec.md §3's parameter
// value, extended per spec.md §4.8 with the interpreter-only Mesh and
// HeightMap variants that never appear as an externally-editable default.
type Value struct {
	Kind ValueKind

	Vector    vecmath.Vec3
	Scalar    Scalar
	Selection selection.Expression
	Enum      Enum
	String    Str
	Path      *string
	Mesh      *mesh.HalfEdgeMesh
	HeightMap *noisefield.HeightMap
}

// DataType reports the DataType this Value's Kind corresponds to, used to
// check a connection's source output against its destination input.
func (v Value) DataType() DataType {
	switch v.Kind {
	case ValueVector:
		return DataTypeVector
	case ValueScalar:
		return DataTypeScalar
	case ValueSelection:
		return DataTypeSelection
	case ValueEnum:
		return DataTypeEnum
	case ValueString:
		return DataTypeString
	case ValuePath:
		return DataTypePath
	case ValueMesh:
		return DataTypeMesh
	case ValueHeightMap:
		return DataTypeHeightMap
	default:
		return DataTypeScalar
	}
}

func VectorValue(v vecmath.Vec3) Value { return Value{Kind: ValueVector, Vector: v} }
func ScalarValue(s Scalar) Value       { return Value{Kind: ValueScalar, Scalar: s} }
func MeshValue(m *mesh.HalfEdgeMesh) Value { return Value{Kind: ValueMesh, Mesh: m} }
func HeightMapValue(h *noisefield.HeightMap) Value {
	return Value{Kind: ValueHeightMap, HeightMap: h}
}
