package interp_test

import (
	"fmt"

	"github.com/blackjack3d/meshkit/interp"
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/nodegraph"
)

// ExampleEvaluator_Evaluate runs a two-node Source -> Sink pipeline
// and reports the resolved output's value kind.
func ExampleEvaluator_Evaluate() {
	g := nodegraph.NewGraph()
	g.Register(sourceDef())
	g.Register(sinkDef())

	src, err := g.AddNode("Source")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sink, err := g.AddNode("Sink")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := g.Connect(src.ID, "out_mesh", sink.ID, "in_mesh"); err != nil {
		fmt.Println("error:", err)
		return
	}

	reg := interp.NewOpRegistry()
	reg.Register("Source", func(ins map[string]nodegraph.Value, meshIns map[string]*mesh.HalfEdgeMesh) (map[string]nodegraph.Value, error) {
		m, err := mesh.BuildFromPolygons(nil, nil)
		if err != nil {
			return nil, err
		}
		return map[string]nodegraph.Value{"out_mesh": nodegraph.MeshValue(m)}, nil
	})
	reg.Register("Sink", func(ins map[string]nodegraph.Value, meshIns map[string]*mesh.HalfEdgeMesh) (map[string]nodegraph.Value, error) {
		return map[string]nodegraph.Value{"out_mesh": nodegraph.MeshValue(meshIns["in_mesh"])}, nil
	})

	ev := interp.NewEvaluator(interp.WithRegistry(reg))
	result, err := ev.Evaluate(g, sink.ID, interp.ExternalValues{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result.Output.DataType())

	// Output:
	// mesh
}
