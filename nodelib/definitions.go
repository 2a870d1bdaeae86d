package nodelib

import (
	"io"

	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/nodegraph"
	"gopkg.in/yaml.v3"
)

// docRoot is the top-level YAML shape LoadDefinitions parses: a map from
// node name to its definition, mirroring original_source's
// load_nodes_from_table (a Lua table keyed the same way, re-targeted here
// at a declarative file format instead of an embedded scripting table).
type docRoot map[string]docNodeDefinition

type docNodeDefinition struct {
	Label      string         `yaml:"label"`
	Returns    string         `yaml:"returns"`
	Executable bool           `yaml:"executable"`
	Inputs     []docInput     `yaml:"inputs"`
	Outputs    []docOutput    `yaml:"outputs"`
}

type docInput struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type"`
	Default  []float32 `yaml:"default"`
	Min      float32   `yaml:"min"`
	Max      float32   `yaml:"max"`
	Values   []string  `yaml:"values"`
	Selected *uint32   `yaml:"selected"`
	Text     string    `yaml:"text"`
	Multiline bool      `yaml:"multiline"`
}

type docOutput struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadDefinitions parses a YAML node library file into a set of
// nodegraph.NodeDefinitions, one concrete realization of the "external
// declarative source" nodegraph itself stays agnostic about. The
// per-datatype default-value shape mirrors
// original_source's InputDefinition::from_lua exactly, one "type" string
// per nodegraph.DataType ("vec3", "scalar", "selection", "mesh", "enum",
// "file", "string", "height_map").
func LoadDefinitions(r io.Reader) (map[string]*nodegraph.NodeDefinition, error) {
	var doc docRoot
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, mesherr.Wrap(mesherr.KindIoError, err, "nodelib: decoding node definitions")
	}

	defs := make(map[string]*nodegraph.NodeDefinition, len(doc))
	for name, d := range doc {
		def, err := buildDefinition(name, d)
		if err != nil {
			return nil, err
		}
		defs[name] = def
	}
	return defs, nil
}

func buildDefinition(name string, d docNodeDefinition) (*nodegraph.NodeDefinition, error) {
	inputs := make([]nodegraph.InputDescriptor, 0, len(d.Inputs))
	for _, in := range d.Inputs {
		desc, err := buildInput(name, in)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, desc)
	}

	outputs := make([]nodegraph.OutputDescriptor, 0, len(d.Outputs))
	for _, out := range d.Outputs {
		dt, err := dataTypeFromString(out.Type)
		if err != nil {
			return nil, mesherr.Wrap(mesherr.KindIoError, err, "nodelib: node %q output %q", name, out.Name)
		}
		outputs = append(outputs, nodegraph.OutputDescriptor{Name: out.Name, Type: dt})
	}

	var returns *string
	if d.Returns != "" {
		returns = &d.Returns
	}

	return &nodegraph.NodeDefinition{
		Name:       name,
		Label:      d.Label,
		Inputs:     inputs,
		Outputs:    outputs,
		Returns:    returns,
		Executable: d.Executable,
	}, nil
}

func buildInput(nodeName string, in docInput) (nodegraph.InputDescriptor, error) {
	dt, err := dataTypeFromString(in.Type)
	if err != nil {
		return nodegraph.InputDescriptor{}, mesherr.Wrap(mesherr.KindIoError, err, "nodelib: node %q input %q", nodeName, in.Name)
	}

	def := nodegraph.Value{}
	switch dt {
	case nodegraph.DataTypeVector:
		v := [3]float32{}
		for i := 0; i < len(in.Default) && i < 3; i++ {
			v[i] = in.Default[i]
		}
		def = nodegraph.VectorValue(v)
	case nodegraph.DataTypeScalar:
		value := float32(0)
		if len(in.Default) > 0 {
			value = in.Default[0]
		}
		def = nodegraph.ScalarValue(nodegraph.Scalar{Value: value, Min: in.Min, Max: in.Max, SoftMin: in.Min, SoftMax: in.Max})
	case nodegraph.DataTypeEnum:
		def = nodegraph.Value{Kind: nodegraph.ValueEnum, Enum: nodegraph.Enum{Values: in.Values, Selected: in.Selected}}
	case nodegraph.DataTypeString:
		def = nodegraph.Value{Kind: nodegraph.ValueString, String: nodegraph.Str{Text: in.Text, Multiline: in.Multiline}}
	case nodegraph.DataTypePath:
		def = nodegraph.Value{Kind: nodegraph.ValuePath, Path: nil}
	case nodegraph.DataTypeSelection:
		def = nodegraph.Value{Kind: nodegraph.ValueSelection}
	case nodegraph.DataTypeMesh, nodegraph.DataTypeHeightMap:
		// Mesh/HeightMap inputs accept only connections, matching
		// InputDefinition::from_lua's DataType::Mesh => None branch.
	}

	return nodegraph.InputDescriptor{Name: in.Name, Type: dt, Default: def}, nil
}

func dataTypeFromString(s string) (nodegraph.DataType, error) {
	switch s {
	case "vec3":
		return nodegraph.DataTypeVector, nil
	case "scalar":
		return nodegraph.DataTypeScalar, nil
	case "selection":
		return nodegraph.DataTypeSelection, nil
	case "mesh":
		return nodegraph.DataTypeMesh, nil
	case "enum":
		return nodegraph.DataTypeEnum, nil
	case "file":
		return nodegraph.DataTypePath, nil
	case "string":
		return nodegraph.DataTypeString, nil
	case "height_map":
		return nodegraph.DataTypeHeightMap, nil
	default:
		return 0, mesherr.New(mesherr.KindIoError, "invalid datatype in node definition %q", s)
	}
}
