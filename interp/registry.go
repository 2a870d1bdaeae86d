// Package interp implements the dataflow graph interpreter: given a
// nodegraph.Graph and a target node, it topologically orders the target's
// ancestors and dispatches each to a registered operation, per spec.md
// §4.8's 4-step evaluate algorithm.
package interp

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/nodegraph"
)

// OpFunc is the operation-provider vtable entry of spec.md §6: given the
// non-mesh inputs and the mesh inputs of one node, produce its named
// outputs or an error. Mesh-typed values are split into meshIns rather
// than boxed in ins so an operation's signature never has to unwrap a
// nodegraph.Value to reach the *mesh.HalfEdgeMesh it actually operates on.
type OpFunc func(ins map[string]nodegraph.Value, meshIns map[string]*mesh.HalfEdgeMesh) (map[string]nodegraph.Value, error)

// OpRegistry maps a NodeDefinition's name (its op_name) to the
// implementation that executes it.
type OpRegistry map[string]OpFunc

// NewOpRegistry builds an empty registry.
func NewOpRegistry() OpRegistry {
	return make(OpRegistry)
}

// Register installs fn under opName, overwriting any previous
// registration — later registrations win, matching a node library that
// loads built-ins first and user overrides second.
func (r OpRegistry) Register(opName string, fn OpFunc) {
	r[opName] = fn
}

// Lookup finds the implementation registered for opName.
func (r OpRegistry) Lookup(opName string) (OpFunc, error) {
	fn, ok := r[opName]
	if !ok {
		return nil, mesherr.New(mesherr.KindUnknownOp, "interp: no operation registered for %q", opName)
	}
	return fn, nil
}

// ExternalValues is the external-parameter value store: a flat map from
// stable parameter slot to its current value, read by nodes whose input
// has dependency kind External.
type ExternalValues map[nodegraph.ExternalParamID]nodegraph.Value

// Clone returns a shallow copy, so Evaluate can return an updated store
// without the caller's original map being mutated in place.
func (ev ExternalValues) Clone() ExternalValues {
	out := make(ExternalValues, len(ev))
	for k, v := range ev {
		out[k] = v
	}
	return out
}
