package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ImportFirstMesh loads the first mesh of a 3D asset file and applies the
// realtime post-processing steps: identical vertices are joined into a shared
// pool, and when flipUVs is set every V coordinate is inverted (v' = 1 - v)
// for assets whose texture-space origin is the bottom-left corner.
//
// Supported formats are Wavefront OBJ (.obj) and glTF (.gltf, .glb). There is
// no fallback scene; callers treat a failed import as fatal.
func ImportFirstMesh(path string, flipUVs bool) (*Mesh, error) {
	var (
		mesh *Mesh
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		mesh, err = LoadOBJ(path)
	case ".gltf", ".glb":
		mesh, err = LoadGLTF(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj, .gltf or .glb)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}

	if flipUVs {
		mesh.FlipUVs()
	}
	mesh.JoinIdenticalVertices()

	if mesh.FaceCount() == 0 {
		return nil, fmt.Errorf("import %s: no triangle geometry", path)
	}
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}

	return mesh, nil
}
