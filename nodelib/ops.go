// Package nodelib is the built-in node library: a handful of concrete
// operations wired into an interp.OpRegistry, each delegating to
// ops/compact/objio/noisefield to turn the dataflow graph from an
// abstract structure into something that actually builds meshes.
package nodelib

import (
	"os"

	"github.com/blackjack3d/meshkit/compact"
	"github.com/blackjack3d/meshkit/interp"
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/noisefield"
	"github.com/blackjack3d/meshkit/nodegraph"
	"github.com/blackjack3d/meshkit/objio"
	"github.com/blackjack3d/meshkit/ops"
	"github.com/blackjack3d/meshkit/vecmath"
)

// Register installs every built-in node implementation into r, keyed by
// the op name its NodeDefinition carries in a definitions file. Later
// calls to r.Register under the same name (e.g. a user override loaded
// afterward) take precedence, per OpRegistry's last-write-wins policy.
func Register(r interp.OpRegistry) {
	r.Register("MakeBox", opMakeBox)
	r.Register("MakeQuad", opMakeQuad)
	r.Register("BevelEdges", opBevelEdges)
	r.Register("ChamferVertices", opChamferVertices)
	r.Register("ExtrudeFaces", opExtrudeFaces)
	r.Register("SubdivideMesh", opSubdivideMesh)
	r.Register("PerlinNoise", opPerlinNoise)
	r.Register("ExportOBJ", opExportOBJ)
}

func opMakeBox(ins map[string]nodegraph.Value, _ map[string]*mesh.HalfEdgeMesh) (map[string]nodegraph.Value, error) {
	center := ins["Center"].Vector
	size := ins["Size"].Vector
	m, err := ops.Box(center, size)
	if err != nil {
		return nil, err
	}
	return map[string]nodegraph.Value{"Mesh": nodegraph.MeshValue(m)}, nil
}

func opMakeQuad(ins map[string]nodegraph.Value, _ map[string]*mesh.HalfEdgeMesh) (map[string]nodegraph.Value, error) {
	center := ins["Center"].Vector
	normal := ins["Normal"].Vector
	right := ins["Right"].Vector
	size := [2]float32{ins["Width"].Scalar.Value, ins["Height"].Scalar.Value}
	m, err := ops.Quad(center, normal, right, size)
	if err != nil {
		return nil, err
	}
	return map[string]nodegraph.Value{"Mesh": nodegraph.MeshValue(m)}, nil
}

func opBevelEdges(ins map[string]nodegraph.Value, meshIns map[string]*mesh.HalfEdgeMesh) (map[string]nodegraph.Value, error) {
	src, err := requireMesh(meshIns, "Mesh")
	if err != nil {
		return nil, err
	}
	m := src.Clone()
	edges, err := ins["Edges"].Selection.ResolveHalfEdges(m)
	if err != nil {
		return nil, err
	}
	amount := ins["Amount"].Scalar.Value
	if _, err := ops.BevelEdges(m, edges, amount); err != nil {
		return nil, err
	}
	return map[string]nodegraph.Value{"Mesh": nodegraph.MeshValue(m)}, nil
}

func opChamferVertices(ins map[string]nodegraph.Value, meshIns map[string]*mesh.HalfEdgeMesh) (map[string]nodegraph.Value, error) {
	src, err := requireMesh(meshIns, "Mesh")
	if err != nil {
		return nil, err
	}
	m := src.Clone()
	verts, err := ins["Vertices"].Selection.ResolveVertices(m)
	if err != nil {
		return nil, err
	}
	amount := ins["Amount"].Scalar.Value
	for _, v := range verts {
		if _, _, err := ops.ChamferVertex(m, v, amount); err != nil {
			return nil, err
		}
	}
	return map[string]nodegraph.Value{"Mesh": nodegraph.MeshValue(m)}, nil
}

func opExtrudeFaces(ins map[string]nodegraph.Value, meshIns map[string]*mesh.HalfEdgeMesh) (map[string]nodegraph.Value, error) {
	src, err := requireMesh(meshIns, "Mesh")
	if err != nil {
		return nil, err
	}
	m := src.Clone()
	faces, err := ins["Faces"].Selection.ResolveFaces(m)
	if err != nil {
		return nil, err
	}
	amount := ins["Amount"].Scalar.Value
	if _, err := ops.ExtrudeFaces(m, faces, amount); err != nil {
		return nil, err
	}
	return map[string]nodegraph.Value{"Mesh": nodegraph.MeshValue(m)}, nil
}

func opSubdivideMesh(ins map[string]nodegraph.Value, meshIns map[string]*mesh.HalfEdgeMesh) (map[string]nodegraph.Value, error) {
	src, err := requireMesh(meshIns, "Mesh")
	if err != nil {
		return nil, err
	}

	method := compact.Linear
	if sel := ins["Method"].Enum.Selected; sel != nil && *sel == 1 {
		method = compact.CatmullClark
	}
	iterations := int(ins["Iterations"].Scalar.Value)
	if iterations < 1 {
		iterations = 1
	}

	cm, err := compact.FromHalfEdge(src)
	if err != nil {
		return nil, err
	}
	cm, err = cm.SubdivideMulti(iterations, method)
	if err != nil {
		return nil, err
	}
	out, err := cm.ToHalfEdge()
	if err != nil {
		return nil, err
	}
	return map[string]nodegraph.Value{"Mesh": nodegraph.MeshValue(out)}, nil
}

func opPerlinNoise(ins map[string]nodegraph.Value, meshIns map[string]*mesh.HalfEdgeMesh) (map[string]nodegraph.Value, error) {
	src, err := requireMesh(meshIns, "Mesh")
	if err != nil {
		return nil, err
	}
	m := src.Clone()

	hm := ins["HeightMap"].HeightMap
	if hm == nil {
		hm = noisefield.NewHeightMap(int64(ins["Seed"].Scalar.Value))
	}
	amplitude := ins["Amplitude"].Scalar.Value

	if err := displaceAlongNormals(m, hm, amplitude); err != nil {
		return nil, err
	}
	return map[string]nodegraph.Value{"Mesh": nodegraph.MeshValue(m)}, nil
}

func opExportOBJ(ins map[string]nodegraph.Value, meshIns map[string]*mesh.HalfEdgeMesh) (map[string]nodegraph.Value, error) {
	src, err := requireMesh(meshIns, "Mesh")
	if err != nil {
		return nil, err
	}
	path := ins["Path"].Path
	if path == nil || *path == "" {
		return nil, mesherr.New(mesherr.KindIoError, "nodelib: ExportOBJ requires a non-empty Path")
	}

	f, err := os.Create(*path)
	if err != nil {
		return nil, mesherr.Wrap(mesherr.KindIoError, err, "nodelib: creating %q", *path)
	}
	defer f.Close()

	if err := objio.Write(f, src); err != nil {
		return nil, err
	}
	return map[string]nodegraph.Value{"Mesh": nodegraph.MeshValue(src)}, nil
}

func requireMesh(meshIns map[string]*mesh.HalfEdgeMesh, name string) (*mesh.HalfEdgeMesh, error) {
	m, ok := meshIns[name]
	if !ok || m == nil {
		return nil, mesherr.New(mesherr.KindMissingInput, "nodelib: missing mesh input %q", name)
	}
	return m, nil
}

// displaceAlongNormals moves every vertex along its accumulated-face
// normal by hm's sampled height scaled by amplitude, writing the result
// back into the mesh's position channel in place.
func displaceAlongNormals(m *mesh.HalfEdgeMesh, hm *noisefield.HeightMap, amplitude float32) error {
	r := m.ReadConnectivity()
	conn := r.Conn()

	posRead, err := m.Channels().Positions.Read(m.DefaultChannels().Position)
	if err != nil {
		r.Release()
		return err
	}

	accum := make(map[mesh.VertexID]vecmath.Vec3)
	for _, f := range conn.FaceIDs() {
		verts, err := conn.FaceVertices(f)
		if err != nil {
			posRead.Release()
			r.Release()
			return err
		}
		if len(verts) < 3 {
			continue
		}
		n, ok := vecmath.FaceNormal(posRead.Get(verts[0]), posRead.Get(verts[1]), posRead.Get(verts[2]))
		if !ok {
			continue
		}
		for _, v := range verts {
			accum[v] = accum[v].Add(n)
		}
	}

	positions := make(map[mesh.VertexID]vecmath.Vec3, len(accum))
	for _, v := range conn.VertexIDs() {
		n := vecmath.SafeNormalize(accum[v])
		positions[v] = hm.Displace(posRead.Get(v), n, amplitude)
	}
	posRead.Release()
	r.Release()

	posWrite, err := m.Channels().Positions.Write(m.DefaultChannels().Position)
	if err != nil {
		return err
	}
	defer posWrite.Release()
	for v, p := range positions {
		posWrite.Set(v, p)
	}
	return nil
}
