package interp

import (
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/nodegraph"
)

// topologicalOrder returns target and every node it transitively depends
// on, ordered so each node appears after every node it depends on.
//
// Grounded on the teacher's dfs.TopologicalSort (White/Gray/Black
// cycle detection over a directed graph), but reworked from recursive
// DFS into an explicit worklist (Kahn's algorithm): spec.md §9 calls for
// exactly this so evaluation of a deep graph does not grow the Go call
// stack with it.
func topologicalOrder(g *nodegraph.Graph, target nodegraph.NodeID) ([]nodegraph.NodeID, error) {
	ancestors, err := collectAncestors(g, target)
	if err != nil {
		return nil, err
	}

	indegree := make(map[nodegraph.NodeID]int, len(ancestors))
	dependents := make(map[nodegraph.NodeID][]nodegraph.NodeID, len(ancestors))
	for id := range ancestors {
		deps, err := g.Dependencies(id)
		if err != nil {
			return nil, err
		}
		indegree[id] = len(deps)
		for _, d := range deps {
			dependents[d] = append(dependents[d], id)
		}
	}

	queue := make([]nodegraph.NodeID, 0, len(ancestors))
	for _, id := range g.NodeOrder() {
		if ancestors[id] && indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]nodegraph.NodeID, 0, len(ancestors))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, dep := range dependents[id] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(order) != len(ancestors) {
		return nil, mesherr.New(mesherr.KindGraphCycle, "interp: cycle detected among ancestors of node %s", target)
	}

	return order, nil
}

// collectAncestors walks Dependencies from target with an explicit stack
// (not recursion), collecting target and every node reachable through
// it, and failing MissingInput the first time it finds a connection-only
// input (one with no default value) left unresolved.
func collectAncestors(g *nodegraph.Graph, target nodegraph.NodeID) (map[nodegraph.NodeID]bool, error) {
	ancestors := map[nodegraph.NodeID]bool{target: true}
	stack := []nodegraph.NodeID{target}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := checkInputsResolved(g, id); err != nil {
			return nil, err
		}

		deps, err := g.Dependencies(id)
		if err != nil {
			return nil, err
		}
		for _, d := range deps {
			if !ancestors[d] {
				ancestors[d] = true
				stack = append(stack, d)
			}
		}
	}

	return ancestors, nil
}

// checkInputsResolved fails MissingInput if id has an input descriptor
// with no default value (connection-only) that is not backed by a live
// Connection dependency kind, per spec.md §4.8 step 1, and fails
// TypeMismatch if a connected input's DataType differs from the DataType
// of the source output it reads.
func checkInputsResolved(g *nodegraph.Graph, id nodegraph.NodeID) error {
	n, ok := g.Nodes[id]
	if !ok {
		return mesherr.New(mesherr.KindMissingInput, "interp: node %s not found", id)
	}
	def, ok := g.Definition(n)
	if !ok {
		return mesherr.New(mesherr.KindUnknownOp, "interp: node %s has unregistered definition %q", id, n.DefinitionName)
	}

	for _, inDesc := range def.Inputs {
		if inDesc.Default.Kind != nodegraph.ValueNone {
			continue // has a default, never unresolved
		}
		dep, ok := n.Inputs[inDesc.Name]
		if !ok || dep.Tag != nodegraph.DependencyConnection {
			return mesherr.New(mesherr.KindMissingInput, "interp: node %s (%s) input %q requires a connection and has none", id, def.Name, inDesc.Name)
		}
		if _, ok := g.Nodes[dep.SrcNode]; !ok {
			return mesherr.New(mesherr.KindMissingInput, "interp: node %s (%s) input %q connects to missing node %s", id, def.Name, inDesc.Name, dep.SrcNode)
		}
	}

	for _, inDesc := range def.Inputs {
		dep := n.Inputs[inDesc.Name]
		src, ok := g.Nodes[dep.SrcNode]
		if dep.Tag != nodegraph.DependencyConnection || !ok {
			continue
		}
		if srcDef, ok := g.Definition(src); ok {
			if out, ok := srcDef.Output(dep.SrcParam); ok && out.Type != inDesc.Type {
				return mesherr.New(mesherr.KindTypeMismatch, "interp: node %s (%s) input %q (%s) is connected to a %s output", id, def.Name, inDesc.Name, inDesc.Type, out.Type)
			}
		}
	}
	return nil
}
