package nodegraph

// InputDescriptor names one input port of a NodeDefinition: its type, and
// the default Value it carries when an instance's input is left on the
// external dependency kind without an explicit override.
type InputDescriptor struct {
	Name    string
	Type    DataType
	Default Value
}

// OutputDescriptor names one output port of a NodeDefinition.
type OutputDescriptor struct {
	Name string
	Type DataType
}

// NodeDefinition is the template a Node instantiates: spec.md §3's
// Node/NodeDefinition entity, mirroring original_source's graph.rs
// NodeDefinition (name, label, inputs, outputs, returns, executable).
type NodeDefinition struct {
	Name     string
	Label    string
	Inputs   []InputDescriptor
	Outputs  []OutputDescriptor
	Returns  *string
	Executable bool
}

// Input looks up an input descriptor by name.
func (d *NodeDefinition) Input(name string) (InputDescriptor, bool) {
	for _, in := range d.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return InputDescriptor{}, false
}

// Output looks up an output descriptor by name.
func (d *NodeDefinition) Output(name string) (OutputDescriptor, bool) {
	for _, out := range d.Outputs {
		if out.Name == name {
			return out, true
		}
	}
	return OutputDescriptor{}, false
}
