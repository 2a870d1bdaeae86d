package nodegraph

import "github.com/blackjack3d/meshkit/mesherr"

// DependencyTag discriminates DependencyKind: whether an input reads from
// the external-parameter store or from another node's output.
type DependencyTag int

const (
	DependencyExternal DependencyTag = iota
	DependencyConnection
)

// DependencyKind is spec.md §4.8's per-input dependency kind: either
// External{promoted?} or Connection{src_node, src_param}.
type DependencyKind struct {
	Tag      DependencyTag
	Promoted *string // set only when Tag == DependencyExternal and the parameter is exposed under a friendly name
	SrcNode  NodeID
	SrcParam string
}

// External builds a DependencyKind reading from the external-parameter
// store, optionally exposed to an end user under promoted.
func External(promoted *string) DependencyKind {
	return DependencyKind{Tag: DependencyExternal, Promoted: promoted}
}

// FromConnection builds a DependencyKind reading srcParam's value from
// srcNode's matching output.
func FromConnection(srcNode NodeID, srcParam string) DependencyKind {
	return DependencyKind{Tag: DependencyConnection, SrcNode: srcNode, SrcParam: srcParam}
}

// Node is one instance of a NodeDefinition in the graph, carrying a
// per-input dependency kind and, for external inputs, which parameter
// store slot it reads.
type Node struct {
	ID             NodeID
	DefinitionName string
	Inputs         map[string]DependencyKind
	ExternalParams map[string]ExternalParamID // keyed by input name, valid when Inputs[name].Tag == DependencyExternal
}

// Connection records one wire from an output port to an input port,
// redundant with the DependencyConnection entry on the destination Node
// but kept as its own value (spec.md §3's "Connections (from_output,
// to_input)") so a caller can enumerate wires without walking every node.
type Connection struct {
	FromNode   NodeID
	FromOutput string
	ToNode     NodeID
	ToInput    string
}

// Graph is the full dataflow graph: a definition table, the node
// instances, and the connections between them.
type Graph struct {
	Definitions map[string]*NodeDefinition
	Nodes       map[NodeID]*Node
	Connections []Connection
	order       []NodeID // insertion order, for deterministic iteration independent of map order
}

// NewGraph builds an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Definitions: make(map[string]*NodeDefinition),
		Nodes:       make(map[NodeID]*Node),
	}
}

// Register adds def to the graph's definition table, keyed by def.Name.
func (g *Graph) Register(def *NodeDefinition) {
	g.Definitions[def.Name] = def
}

// AddNode instantiates a node of the named definition, with every input
// defaulted to DependencyExternal (an unpromoted, unbound external slot)
// until the caller wires a Connect or SetExternal call.
func (g *Graph) AddNode(defName string) (*Node, error) {
	def, ok := g.Definitions[defName]
	if !ok {
		return nil, mesherr.New(mesherr.KindUnknownOp, "nodegraph: no definition registered for %q", defName)
	}
	n := &Node{
		ID:             NewNodeID(),
		DefinitionName: defName,
		Inputs:         make(map[string]DependencyKind, len(def.Inputs)),
		ExternalParams: make(map[string]ExternalParamID),
	}
	for _, in := range def.Inputs {
		n.Inputs[in.Name] = External(nil)
	}
	g.Nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return n, nil
}

// SetExternal binds node's named input to an external-parameter slot,
// optionally exposed under a promoted display name.
func (g *Graph) SetExternal(nodeID NodeID, input string, param ExternalParamID, promoted *string) error {
	n, def, err := g.lookupInput(nodeID, input)
	if err != nil {
		return err
	}
	_ = def
	n.Inputs[input] = External(promoted)
	n.ExternalParams[input] = param
	return nil
}

// Connect wires fromNode's fromOutput to toNode's toInput, replacing
// whatever dependency kind toInput previously had. Both ports must exist
// on their node's definition and agree on DataType.
func (g *Graph) Connect(fromNode NodeID, fromOutput string, toNode NodeID, toInput string) error {
	src, srcDef, err := g.lookupNode(fromNode)
	if err != nil {
		return err
	}
	outDesc, ok := srcDef.Output(fromOutput)
	if !ok {
		return mesherr.New(mesherr.KindMissingInput, "nodegraph: node %s (%s) has no output %q", src.ID, srcDef.Name, fromOutput)
	}

	dst, dstDef, err := g.lookupNode(toNode)
	if err != nil {
		return err
	}
	inDesc, ok := dstDef.Input(toInput)
	if !ok {
		return mesherr.New(mesherr.KindMissingInput, "nodegraph: node %s (%s) has no input %q", dst.ID, dstDef.Name, toInput)
	}

	if outDesc.Type != inDesc.Type {
		return mesherr.New(mesherr.KindTypeMismatch, "nodegraph: cannot connect %s output %q (%s) to %s input %q (%s)",
			srcDef.Name, fromOutput, outDesc.Type, dstDef.Name, toInput, inDesc.Type)
	}

	dst.Inputs[toInput] = FromConnection(fromNode, fromOutput)
	delete(dst.ExternalParams, toInput)
	g.Connections = append(g.Connections, Connection{FromNode: fromNode, FromOutput: fromOutput, ToNode: toNode, ToInput: toInput})
	return nil
}

// Dependencies returns the distinct set of node IDs that id's inputs
// connect to, in no particular order. Used by the interpreter to build a
// dependency graph for topological ordering.
func (g *Graph) Dependencies(id NodeID) ([]NodeID, error) {
	n, ok := g.Nodes[id]
	if !ok {
		return nil, mesherr.New(mesherr.KindMissingInput, "nodegraph: node %s not found", id)
	}
	seen := make(map[NodeID]bool)
	var deps []NodeID
	for _, dep := range n.Inputs {
		if dep.Tag == DependencyConnection && !seen[dep.SrcNode] {
			seen[dep.SrcNode] = true
			deps = append(deps, dep.SrcNode)
		}
	}
	return deps, nil
}

// NodeOrder returns every node ID in insertion order, giving the
// interpreter a deterministic seed order for topological traversal
// independent of Go's randomized map iteration.
func (g *Graph) NodeOrder() []NodeID {
	return append([]NodeID(nil), g.order...)
}

// Definition returns n's NodeDefinition.
func (g *Graph) Definition(n *Node) (*NodeDefinition, bool) {
	def, ok := g.Definitions[n.DefinitionName]
	return def, ok
}

func (g *Graph) lookupNode(id NodeID) (*Node, *NodeDefinition, error) {
	n, ok := g.Nodes[id]
	if !ok {
		return nil, nil, mesherr.New(mesherr.KindMissingInput, "nodegraph: node %s not found", id)
	}
	def, ok := g.Definitions[n.DefinitionName]
	if !ok {
		return nil, nil, mesherr.New(mesherr.KindUnknownOp, "nodegraph: node %s has unregistered definition %q", id, n.DefinitionName)
	}
	return n, def, nil
}

func (g *Graph) lookupInput(nodeID NodeID, input string) (*Node, *NodeDefinition, error) {
	n, def, err := g.lookupNode(nodeID)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := def.Input(input); !ok {
		return nil, nil, mesherr.New(mesherr.KindMissingInput, "nodegraph: node %s (%s) has no input %q", nodeID, def.Name, input)
	}
	return n, def, nil
}
