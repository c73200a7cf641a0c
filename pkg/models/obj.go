package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadOBJ parses a Wavefront OBJ file into a Mesh. Only the first object in
// the file is read. Faces with more than three corners are triangulated as a
// fan; the result has one vertex per face corner, so callers that want a
// shared vertex pool should follow up with JoinIdenticalVertices.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	return parseOBJ(f, filepath.Base(path))
}

// objCorner identifies one face corner by its position and texcoord indices
// (0-based, -1 for an absent texcoord).
type objCorner struct {
	pos int
	tex int
}

func parseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name, nil, nil)

	var positions [][3]float32
	var texcoords [][2]float32
	sawObject := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "o", "g":
			// Only the first object is imported.
			if sawObject && len(mesh.Indices) > 0 {
				return mesh, nil
			}
			sawObject = true

		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var p [3]float32
			for i := range 3 {
				val, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: parse vertex: %w", lineNo, err)
				}
				p[i] = float32(val)
			}
			positions = append(positions, p)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texcoord needs 2 coordinates", lineNo)
			}
			var t [2]float32
			for i := range 2 {
				val, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: parse texcoord: %w", lineNo, err)
				}
				t[i] = float32(val)
			}
			texcoords = append(texcoords, t)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners", lineNo)
			}
			corners := make([]objCorner, 0, len(fields)-1)
			for _, spec := range fields[1:] {
				c, err := parseCorner(spec, len(positions), len(texcoords))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners = append(corners, c)
			}
			// Fan triangulation around the first corner.
			for i := 1; i+1 < len(corners); i++ {
				for _, c := range []objCorner{corners[0], corners[i], corners[i+1]} {
					v := Vertex{
						X: positions[c.pos][0],
						Y: positions[c.pos][1],
						Z: positions[c.pos][2],
					}
					if c.tex >= 0 {
						v.U = texcoords[c.tex][0]
						v.V = texcoords[c.tex][1]
					}
					mesh.Indices = append(mesh.Indices, uint32(len(mesh.Vertices)))
					mesh.Vertices = append(mesh.Vertices, v)
				}
			}

		default:
			// vn, s, usemtl, mtllib and friends carry no geometry we use.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	return mesh, nil
}

// parseCorner parses one face corner spec of the form "v", "v/vt", "v//vn" or
// "v/vt/vn". OBJ indices are 1-based; negative values count back from the end
// of the list parsed so far.
func parseCorner(spec string, numPos, numTex int) (objCorner, error) {
	parts := strings.Split(spec, "/")

	pos, err := resolveIndex(parts[0], numPos)
	if err != nil {
		return objCorner{}, fmt.Errorf("face corner %q: %w", spec, err)
	}

	tex := -1
	if len(parts) > 1 && parts[1] != "" {
		tex, err = resolveIndex(parts[1], numTex)
		if err != nil {
			return objCorner{}, fmt.Errorf("face corner %q: %w", spec, err)
		}
	}

	return objCorner{pos: pos, tex: tex}, nil
}

// resolveIndex converts a 1-based (or negative relative) OBJ index into a
// 0-based slice index.
func resolveIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse index: %w", err)
	}
	switch {
	case n > 0:
		n--
	case n < 0:
		n += count
	default:
		return 0, fmt.Errorf("index 0 is not valid")
	}
	if n < 0 || n >= count {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, count)
	}
	return n, nil
}
