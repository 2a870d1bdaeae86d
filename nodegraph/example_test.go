package nodegraph_test

import (
	"fmt"

	"github.com/blackjack3d/meshkit/nodegraph"
)

// ExampleGraph_Connect wires a MakeBox node's output into a
// BevelEdges node's mesh input and reports the resulting dependency
// count.
func ExampleGraph_Connect() {
	g := nodegraph.NewGraph()
	g.Register(boxDef())
	g.Register(bevelDef())

	box, err := g.AddNode("MakeBox")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	bevel, err := g.AddNode("BevelEdges")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := g.Connect(box.ID, "out_mesh", bevel.ID, "in_mesh"); err != nil {
		fmt.Println("error:", err)
		return
	}

	deps, err := g.Dependencies(bevel.ID)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(deps))

	// Output:
	// 1
}
