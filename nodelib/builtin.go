package nodelib

import "github.com/blackjack3d/meshkit/nodegraph"

// BuiltinDefinitions returns the NodeDefinitions matching the operations
// Register wires into an OpRegistry, built directly in Go rather than
// parsed from a LoadDefinitions file — the definition a caller needs to
// assemble a graph by hand (scenario-style, as in S5) without first
// writing a YAML fixture to disk.
func BuiltinDefinitions() map[string]*nodegraph.NodeDefinition {
	defs := []*nodegraph.NodeDefinition{
		{
			Name:  "MakeBox",
			Label: "Make Box",
			Inputs: []nodegraph.InputDescriptor{
				{Name: "Center", Type: nodegraph.DataTypeVector, Default: nodegraph.VectorValue(vec3(0, 0, 0))},
				{Name: "Size", Type: nodegraph.DataTypeVector, Default: nodegraph.VectorValue(vec3(1, 1, 1))},
			},
			Outputs: []nodegraph.OutputDescriptor{{Name: "Mesh", Type: nodegraph.DataTypeMesh}},
			Returns: strPtr("Mesh"),
		},
		{
			Name:  "MakeQuad",
			Label: "Make Quad",
			Inputs: []nodegraph.InputDescriptor{
				{Name: "Center", Type: nodegraph.DataTypeVector, Default: nodegraph.VectorValue(vec3(0, 0, 0))},
				{Name: "Normal", Type: nodegraph.DataTypeVector, Default: nodegraph.VectorValue(vec3(0, 1, 0))},
				{Name: "Right", Type: nodegraph.DataTypeVector, Default: nodegraph.VectorValue(vec3(1, 0, 0))},
				{Name: "Width", Type: nodegraph.DataTypeScalar, Default: scalar(1, 0, 1000)},
				{Name: "Height", Type: nodegraph.DataTypeScalar, Default: scalar(1, 0, 1000)},
			},
			Outputs: []nodegraph.OutputDescriptor{{Name: "Mesh", Type: nodegraph.DataTypeMesh}},
			Returns: strPtr("Mesh"),
		},
		{
			Name:  "BevelEdges",
			Label: "Bevel Edges",
			Inputs: []nodegraph.InputDescriptor{
				{Name: "Mesh", Type: nodegraph.DataTypeMesh},
				{Name: "Edges", Type: nodegraph.DataTypeSelection, Default: nodegraph.Value{Kind: nodegraph.ValueSelection}},
				{Name: "Amount", Type: nodegraph.DataTypeScalar, Default: scalar(0.1, 0, 1000)},
			},
			Outputs: []nodegraph.OutputDescriptor{{Name: "Mesh", Type: nodegraph.DataTypeMesh}},
			Returns: strPtr("Mesh"),
		},
		{
			Name:  "ChamferVertices",
			Label: "Chamfer Vertices",
			Inputs: []nodegraph.InputDescriptor{
				{Name: "Mesh", Type: nodegraph.DataTypeMesh},
				{Name: "Vertices", Type: nodegraph.DataTypeSelection, Default: nodegraph.Value{Kind: nodegraph.ValueSelection}},
				{Name: "Amount", Type: nodegraph.DataTypeScalar, Default: scalar(0.1, 0, 1000)},
			},
			Outputs: []nodegraph.OutputDescriptor{{Name: "Mesh", Type: nodegraph.DataTypeMesh}},
			Returns: strPtr("Mesh"),
		},
		{
			Name:  "ExtrudeFaces",
			Label: "Extrude Faces",
			Inputs: []nodegraph.InputDescriptor{
				{Name: "Mesh", Type: nodegraph.DataTypeMesh},
				{Name: "Faces", Type: nodegraph.DataTypeSelection, Default: nodegraph.Value{Kind: nodegraph.ValueSelection}},
				{Name: "Amount", Type: nodegraph.DataTypeScalar, Default: scalar(0.5, -1000, 1000)},
			},
			Outputs: []nodegraph.OutputDescriptor{{Name: "Mesh", Type: nodegraph.DataTypeMesh}},
			Returns: strPtr("Mesh"),
		},
		{
			Name:  "SubdivideMesh",
			Label: "Subdivide Mesh",
			Inputs: []nodegraph.InputDescriptor{
				{Name: "Mesh", Type: nodegraph.DataTypeMesh},
				{Name: "Iterations", Type: nodegraph.DataTypeScalar, Default: scalar(1, 1, 6)},
				{Name: "Method", Type: nodegraph.DataTypeEnum, Default: nodegraph.Value{Kind: nodegraph.ValueEnum, Enum: nodegraph.Enum{Values: []string{"Linear", "CatmullClark"}, Selected: uint32Ptr(0)}}},
			},
			Outputs: []nodegraph.OutputDescriptor{{Name: "Mesh", Type: nodegraph.DataTypeMesh}},
			Returns: strPtr("Mesh"),
		},
		{
			Name:  "PerlinNoise",
			Label: "Perlin Noise",
			Inputs: []nodegraph.InputDescriptor{
				{Name: "Mesh", Type: nodegraph.DataTypeMesh},
				{Name: "HeightMap", Type: nodegraph.DataTypeHeightMap},
				{Name: "Seed", Type: nodegraph.DataTypeScalar, Default: scalar(0, 0, 1<<30)},
				{Name: "Amplitude", Type: nodegraph.DataTypeScalar, Default: scalar(0.1, -1000, 1000)},
			},
			Outputs: []nodegraph.OutputDescriptor{{Name: "Mesh", Type: nodegraph.DataTypeMesh}},
			Returns: strPtr("Mesh"),
		},
		{
			Name:       "ExportOBJ",
			Label:      "Export OBJ",
			Executable: true,
			Inputs: []nodegraph.InputDescriptor{
				{Name: "Mesh", Type: nodegraph.DataTypeMesh},
				{Name: "Path", Type: nodegraph.DataTypePath, Default: nodegraph.Value{Kind: nodegraph.ValuePath}},
			},
			Outputs: []nodegraph.OutputDescriptor{{Name: "Mesh", Type: nodegraph.DataTypeMesh}},
			Returns: strPtr("Mesh"),
		},
	}

	out := make(map[string]*nodegraph.NodeDefinition, len(defs))
	for _, d := range defs {
		out[d.Name] = d
	}
	return out
}

func vec3(x, y, z float32) [3]float32 { return [3]float32{x, y, z} }

func scalar(value, min, max float32) nodegraph.Value {
	return nodegraph.ScalarValue(nodegraph.Scalar{Value: value, Min: min, Max: max, SoftMin: min, SoftMax: max})
}

func strPtr(s string) *string { return &s }

func uint32Ptr(v uint32) *uint32 { return &v }
