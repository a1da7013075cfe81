// Package obj loads triangle meshes from the Wavefront OBJ text format.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/polaris-render/bvhtrace/bvh"
	"github.com/polaris-render/bvhtrace/types"
)

// Load parses an OBJ stream into a flat triangle list. Only "v" and "f"
// lines are interpreted; normals, texture coordinates, groups and material
// directives are scanned over and discarded. Faces with more than three
// vertices are triangulated as a fan around their first vertex.
func Load(r io.Reader) ([]bvh.Triangle, error) {
	var vertices []types.Vec3
	var tris []bvh.Triangle

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || tokens[0] == "#" {
			continue
		}

		switch tokens[0] {
		case "v":
			v, err := parseVertex(tokens)
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", lineNum, err)
			}
			vertices = append(vertices, v)
		case "f":
			faceTris, err := parseFace(tokens, vertices)
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", lineNum, err)
			}
			tris = append(tris, faceTris...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: scan: %w", err)
	}

	return tris, nil
}

func parseVertex(tokens []string) (types.Vec3, error) {
	if len(tokens) < 4 {
		return types.Vec3{}, fmt.Errorf("'v' expects 3 arguments; got %d", len(tokens)-1)
	}

	var v types.Vec3
	for i := 0; i < 3; i++ {
		coord, err := strconv.ParseFloat(tokens[i+1], 32)
		if err != nil {
			return types.Vec3{}, fmt.Errorf("bad vertex coordinate %q: %w", tokens[i+1], err)
		}
		v[i] = float32(coord)
	}
	return v, nil
}

// parseFace triangulates a face line into a fan of triangles around its
// first vertex. Each face argument may carry "/"-separated uv/normal
// indices; only the leading vertex index is used.
func parseFace(tokens []string, vertices []types.Vec3) ([]bvh.Triangle, error) {
	if len(tokens) < 4 {
		return nil, fmt.Errorf("'f' expects at least 3 arguments; got %d", len(tokens)-1)
	}

	indices := make([]int, len(tokens)-1)
	for i, tok := range tokens[1:] {
		idx, err := faceVertexIndex(tok, len(vertices))
		if err != nil {
			return nil, fmt.Errorf("face argument %d: %w", i, err)
		}
		indices[i] = idx
	}

	tris := make([]bvh.Triangle, 0, len(indices)-2)
	for i := 1; i+1 < len(indices); i++ {
		tris = append(tris, bvh.Triangle{
			P0: vertices[indices[0]],
			P1: vertices[indices[i]],
			P2: vertices[indices[i+1]],
		})
	}
	return tris, nil
}

// faceVertexIndex resolves the vertex-index portion of a face argument
// (e.g. "12", "12/4", "12//7", "-1/3/7") to a zero-based offset into
// vertices. Positive indices are 1-based; negative indices count back
// from the end of the vertex list.
func faceVertexIndex(arg string, vertexCount int) (int, error) {
	vToken := arg
	if slash := strings.IndexByte(arg, '/'); slash >= 0 {
		vToken = arg[:slash]
	}
	if vToken == "" {
		return 0, fmt.Errorf("missing vertex index in %q", arg)
	}

	n, err := strconv.ParseInt(vToken, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad vertex index %q: %w", vToken, err)
	}

	var idx int
	if n < 0 {
		idx = vertexCount + int(n)
	} else {
		idx = int(n) - 1
	}
	if idx < 0 || idx >= vertexCount {
		return 0, fmt.Errorf("vertex index %d out of range [0,%d)", idx, vertexCount)
	}
	return idx, nil
}
