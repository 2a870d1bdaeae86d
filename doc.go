// Package meshkit is a procedural 3D modeling core: a halfedge mesh
// with a generic typed-channel attribute system, a set of topological
// edit operations (bevel, chamfer, extrude, dissolve, split, divide,
// cut), a compact-mesh subdivision engine (linear and Catmull-Clark),
// and a small dataflow graph runtime for composing those operations
// into reusable procedural generators.
//
// Everything is organized under a handful of subpackages:
//
//	arena/      — generational-handle slot allocator underlying every mesh element ID
//	mesh/       — HalfEdgeMesh, its connectivity, and its channel-backed attributes
//	channel/    — generic typed attribute storage with single-writer/multi-reader leases
//	ops/        — topological edit operations and mesh generators (box, quad, sphere...)
//	compact/    — dense-array mesh representation and subdivision
//	selection/  — the "*"/index/range selection-expression language
//	nodegraph/  — dataflow graph structure: nodes, connections, values
//	interp/     — topological evaluation of a nodegraph.Graph
//	nodelib/    — built-in node implementations wired into an interp.OpRegistry
//	buffers/    — GPU-friendly vertex/index/line/overlay buffer generation
//	objio/      — Wavefront OBJ import/export
//	noisefield/ — seeded gradient-noise fields for displacement nodes
//	mesherr/    — the package's shared error kind taxonomy
package meshkit
