package objio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/mesherr"
	"github.com/blackjack3d/meshkit/vecmath"
)

// Read parses Wavefront OBJ text into a mesh via mesh.BuildFromPolygons.
// Only "v"/"f" lines are meaningful per spec.md §6; every other line
// (vn, vt, o, g, s, mtllib, usemtl, comments, blank lines) is skipped.
// Polygons with fewer than three vertices or a repeated vertex index are
// rejected with the offending line number, per spec.md §6's explicit
// import-validation requirement.
func Read(r io.Reader) (*mesh.HalfEdgeMesh, error) {
	scanner := bufio.NewScanner(r)

	var positions []vecmath.Vec3
	var polygons [][]int
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseVertexLine(fields[1:], lineNo)
			if err != nil {
				return nil, err
			}
			positions = append(positions, p)
		case "f":
			poly, err := parseFaceLine(fields[1:], lineNo)
			if err != nil {
				return nil, err
			}
			polygons = append(polygons, poly)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, mesherr.Wrap(mesherr.KindIoError, err, "objio: reading OBJ stream")
	}

	return mesh.BuildFromPolygons(positions, polygons)
}

func parseVertexLine(coords []string, lineNo int) (vecmath.Vec3, error) {
	if len(coords) < 3 {
		return vecmath.Vec3{}, mesherr.New(mesherr.KindIoError, "objio: line %d: vertex requires 3 coordinates, got %d", lineNo, len(coords))
	}
	var p vecmath.Vec3
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(coords[i], 32)
		if err != nil {
			return vecmath.Vec3{}, mesherr.Wrap(mesherr.KindIoError, err, "objio: line %d: malformed vertex coordinate %q", lineNo, coords[i])
		}
		p[i] = float32(v)
	}
	return p, nil
}

func parseFaceLine(tokens []string, lineNo int) ([]int, error) {
	if len(tokens) < 3 {
		return nil, mesherr.New(mesherr.KindNonManifold, "objio: line %d: face has fewer than 3 vertices (%d)", lineNo, len(tokens))
	}
	seen := make(map[int]bool, len(tokens))
	poly := make([]int, len(tokens))
	for i, tok := range tokens {
		// OBJ face elements may carry /vt/vn suffixes; only the vertex
		// index (before the first slash) is part of this core's subset.
		tok = strings.SplitN(tok, "/", 2)[0]
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, mesherr.Wrap(mesherr.KindIoError, err, "objio: line %d: malformed face index %q", lineNo, tok)
		}
		if n <= 0 {
			return nil, mesherr.New(mesherr.KindIoError, "objio: line %d: face index must be 1-based and positive, got %d", lineNo, n)
		}
		idx := n - 1
		if seen[idx] {
			return nil, mesherr.New(mesherr.KindNonManifold, "objio: line %d: face has duplicate vertex index %d", lineNo, n)
		}
		seen[idx] = true
		poly[i] = idx
	}
	return poly, nil
}
