package nodelib_test

import (
	"testing"

	"github.com/blackjack3d/meshkit/interp"
	"github.com/blackjack3d/meshkit/nodegraph"
	"github.com/blackjack3d/meshkit/nodelib"
	"github.com/blackjack3d/meshkit/selection"
	"github.com/stretchr/testify/require"
)

func newGraph(t *testing.T) (*nodegraph.Graph, *interp.Evaluator) {
	t.Helper()
	g := nodegraph.NewGraph()
	for _, def := range nodelib.BuiltinDefinitions() {
		g.Register(def)
	}
	reg := interp.NewOpRegistry()
	nodelib.Register(reg)
	return g, interp.NewEvaluator(interp.WithRegistry(reg))
}

// TestMakeBoxThenBevelEdgesProducesMoreFacesThanTheBox mirrors spec.md
// §4.10 scenario S5: MakeBox(size=1) -> BevelEdges(edges="0..3",
// amount=0.1) -> evaluating with the bevel as target returns a single
// mesh whose face count exceeds the unbeveled box's 6.
func TestMakeBoxThenBevelEdgesProducesMoreFacesThanTheBox(t *testing.T) {
	g, ev := newGraph(t)

	box, err := g.AddNode("MakeBox")
	require.NoError(t, err)

	bevel, err := g.AddNode("BevelEdges")
	require.NoError(t, err)
	require.NoError(t, g.Connect(box.ID, "Mesh", bevel.ID, "Mesh"))

	sel, err := selection.Parse("0..3")
	require.NoError(t, err)
	require.NoError(t, g.SetExternal(bevel.ID, "Edges", nodegraph.NewExternalParamID(), nil))
	edgesParam := bevel.ExternalParams["Edges"]

	ext := interp.ExternalValues{
		edgesParam: nodegraph.Value{Kind: nodegraph.ValueSelection, Selection: sel},
	}

	result, err := ev.Evaluate(g, bevel.ID, ext)
	require.NoError(t, err)
	require.Equal(t, nodegraph.ValueMesh, result.Output.Kind)

	r := result.Output.Mesh.ReadConnectivity()
	defer r.Release()
	require.Greater(t, len(r.Conn().FaceIDs()), 6)
}

func TestSubdivideMeshIncreasesFaceCount(t *testing.T) {
	g, ev := newGraph(t)

	box, err := g.AddNode("MakeBox")
	require.NoError(t, err)

	sub, err := g.AddNode("SubdivideMesh")
	require.NoError(t, err)
	require.NoError(t, g.Connect(box.ID, "Mesh", sub.ID, "Mesh"))

	result, err := ev.Evaluate(g, sub.ID, interp.ExternalValues{})
	require.NoError(t, err)

	r := result.Output.Mesh.ReadConnectivity()
	defer r.Release()
	// One Catmull-Clark/linear subdivision turns each of the box's 6
	// quads into 4 quads.
	require.Equal(t, 24, len(r.Conn().FaceIDs()))
}

func TestExportOBJWritesFileAndPassesMeshThrough(t *testing.T) {
	g, ev := newGraph(t)

	box, err := g.AddNode("MakeBox")
	require.NoError(t, err)

	export, err := g.AddNode("ExportOBJ")
	require.NoError(t, err)
	require.NoError(t, g.Connect(box.ID, "Mesh", export.ID, "Mesh"))

	path := t.TempDir() + "/box.obj"
	require.NoError(t, g.SetExternal(export.ID, "Path", nodegraph.NewExternalParamID(), nil))
	pathParam := export.ExternalParams["Path"]

	ext := interp.ExternalValues{
		pathParam: nodegraph.Value{Kind: nodegraph.ValuePath, Path: &path},
	}

	result, err := ev.Evaluate(g, export.ID, ext)
	require.NoError(t, err)
	require.Equal(t, nodegraph.ValueMesh, result.Output.Kind)
}
