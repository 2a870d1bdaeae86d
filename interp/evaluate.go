package interp

import (
	"context"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/nodegraph"
)

// Evaluator holds the operation registry a Graph is evaluated against.
type Evaluator struct {
	registry OpRegistry
	ctx      context.Context
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRegistry sets the operation registry to dispatch against. Without
// it, NewEvaluator starts from an empty registry, and an Evaluate call
// whose ordering and input checks pass fails with KindUnknownOp at the
// first node it dispatches.
func WithRegistry(r OpRegistry) Option {
	return func(e *Evaluator) { e.registry = r }
}

// WithContext sets a cancellation context checked between node
// dispatches, so a caller can abort a long evaluation of a deep graph
// without waiting for it to finish.
func WithContext(ctx context.Context) Option {
	return func(e *Evaluator) {
		if ctx != nil {
			e.ctx = ctx
		}
	}
}

// NewEvaluator builds an Evaluator, applying opts over a Background
// context and an empty registry.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{registry: NewOpRegistry(), ctx: context.Background()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of evaluating a graph up to one target node.
type Result struct {
	// Output is the target node's *returns* output, the renderable
	// result per spec.md §4.8 step 4. Zero-valued if the target
	// definition declares no returns output.
	Output nodegraph.Value
	// NodeOutputs is every evaluated ancestor's full output map, keyed
	// by node, for introspection or caching across repeated evaluations.
	NodeOutputs map[nodegraph.NodeID]map[string]nodegraph.Value
	// UpdatedExternal is the external-parameter store after evaluation.
	// Cloned from the input store; present so an operation that writes
	// back (e.g. an interactive gizmo clamping a dragged value) has
	// somewhere to put the update, even though none of the built-in
	// operations in this module currently do.
	UpdatedExternal ExternalValues
}

// Evaluate performs spec.md §4.8's 4-step algorithm: topologically sort
// target's ancestors, gather each node's arguments in order, dispatch to
// the registered operation, and return target's *returns* output.
func (e *Evaluator) Evaluate(g *nodegraph.Graph, target nodegraph.NodeID, ext ExternalValues) (Result, error) {
	order, err := topologicalOrder(g, target)
	if err != nil {
		return Result{}, err
	}

	cache := make(map[nodegraph.NodeID]map[string]nodegraph.Value, len(order))

	for _, id := range order {
		select {
		case <-e.ctx.Done():
			return Result{}, e.ctx.Err()
		default:
		}

		n, ok := g.Nodes[id]
		if !ok {
			return Result{}, mesherr.New(mesherr.KindMissingInput, "interp: node %s vanished mid-evaluation", id)
		}
		def, ok := g.Definition(n)
		if !ok {
			return Result{}, mesherr.New(mesherr.KindUnknownOp, "interp: node %s has unregistered definition %q", n.ID, n.DefinitionName)
		}

		ins, meshIns, err := gatherArguments(n, def, ext, cache)
		if err != nil {
			return Result{}, err
		}

		fn, err := e.registry.Lookup(def.Name)
		if err != nil {
			return Result{}, mesherr.Wrap(mesherr.KindOf(err), err, "interp: node %s (%s)", n.ID, def.Name)
		}

		outs, err := fn(ins, meshIns)
		if err != nil {
			kind := mesherr.KindOf(err)
			if kind == mesherr.KindUnknown {
				kind = mesherr.KindIoError
			}
			return Result{}, mesherr.Wrap(kind, err, "interp: node %s (%s) failed", n.ID, def.Name)
		}
		cache[n.ID] = outs
	}

	targetNode, ok := g.Nodes[target]
	if !ok {
		return Result{}, mesherr.New(mesherr.KindMissingInput, "interp: target node %s not found", target)
	}
	targetDef, ok := g.Definition(targetNode)
	if !ok {
		return Result{}, mesherr.New(mesherr.KindUnknownOp, "interp: target node %s has unregistered definition %q", target, targetNode.DefinitionName)
	}

	var out nodegraph.Value
	if targetDef.Returns != nil {
		out = cache[target][*targetDef.Returns]
	}

	return Result{Output: out, NodeOutputs: cache, UpdatedExternal: ext.Clone()}, nil
}

// gatherArguments resolves every input of n to a concrete Value (step 2
// of spec.md §4.8), splitting Mesh-kind values into meshIns so operation
// signatures never unbox a nodegraph.Value to reach their mesh argument.
func gatherArguments(
	n *nodegraph.Node,
	def *nodegraph.NodeDefinition,
	ext ExternalValues,
	cache map[nodegraph.NodeID]map[string]nodegraph.Value,
) (map[string]nodegraph.Value, map[string]*mesh.HalfEdgeMesh, error) {
	ins := make(map[string]nodegraph.Value)
	meshIns := make(map[string]*mesh.HalfEdgeMesh)

	for _, inDesc := range def.Inputs {
		dep, ok := n.Inputs[inDesc.Name]
		if !ok {
			return nil, nil, mesherr.New(mesherr.KindMissingInput, "interp: node %s (%s) has no binding for input %q", n.ID, def.Name, inDesc.Name)
		}

		var v nodegraph.Value
		switch dep.Tag {
		case nodegraph.DependencyConnection:
			srcOuts, ok := cache[dep.SrcNode]
			if !ok {
				return nil, nil, mesherr.New(mesherr.KindCorruptMesh, "interp: node %s (%s) input %q depends on %s, evaluated out of order", n.ID, def.Name, inDesc.Name, dep.SrcNode)
			}
			v, ok = srcOuts[dep.SrcParam]
			if !ok {
				return nil, nil, mesherr.New(mesherr.KindMissingInput, "interp: node %s (%s) input %q connects to missing output %q on %s", n.ID, def.Name, inDesc.Name, dep.SrcParam, dep.SrcNode)
			}
		case nodegraph.DependencyExternal:
			if param, bound := n.ExternalParams[inDesc.Name]; bound {
				if ev, ok := ext[param]; ok {
					v = ev
					break
				}
			}
			if inDesc.Default.Kind == nodegraph.ValueNone {
				return nil, nil, mesherr.New(mesherr.KindMissingInput, "interp: node %s (%s) input %q is unconnected and has no default", n.ID, def.Name, inDesc.Name)
			}
			v = inDesc.Default
		}

		if v.Kind == nodegraph.ValueMesh {
			meshIns[inDesc.Name] = v.Mesh
		} else {
			ins[inDesc.Name] = v
		}
	}

	return ins, meshIns, nil
}
