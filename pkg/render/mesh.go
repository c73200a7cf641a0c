package render

import (
	"fmt"
	"unsafe"

	"github.com/taigrr/vitrine/pkg/models"
)

// Mesh is triangle geometry resident on the GPU: a vertex array object, the
// number of index entries it draws, and the texture it samples. The vertex
// and index buffers are immutable after construction.
type Mesh struct {
	vao        uint32
	indexCount int32
	texture    *Texture
	bounds     AABB
}

// BuildMesh uploads a vertex and index list to the GPU and returns a drawable
// mesh. Attribute 0 is bound to the three position floats and attribute 1 to
// the two texture coordinate floats of each vertex. The vertex array is left
// unbound on return; activation is explicit at draw time.
//
// The index list must describe whole triangles and reference only existing
// vertices; both are checked here because the GPU would not.
func BuildMesh(g GL, vertices []models.Vertex, indices []uint32) (*Mesh, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("mesh needs at least one triangle, got %d vertices and %d indices", len(vertices), len(indices))
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("index %d at position %d out of range (have %d vertices)", idx, i, len(vertices))
		}
	}

	min, max := (&models.Mesh{Vertices: vertices}).Bounds()
	m := &Mesh{
		indexCount: int32(len(indices)),
		bounds:     AABB{Min: min, Max: max},
	}

	g.GenVertexArrays(1, &m.vao)
	g.BindVertexArray(m.vao)
	defer g.BindVertexArray(0)

	var vbo uint32
	g.GenBuffers(1, &vbo)
	g.BindBuffer(ArrayBuffer, vbo)
	g.BufferData(ArrayBuffer, len(vertices)*models.VertexStride, unsafe.Pointer(&vertices[0]), StaticDraw)

	g.VertexAttribPointer(0, 3, Float, false, models.VertexStride, 0)
	g.EnableVertexAttribArray(0)
	g.VertexAttribPointer(1, 2, Float, false, models.VertexStride, models.UVOffset)
	g.EnableVertexAttribArray(1)

	// The element buffer binding is recorded in the vertex array, so it must
	// stay bound until the array is unbound.
	var ebo uint32
	g.GenBuffers(1, &ebo)
	g.BindBuffer(ElementArrayBuffer, ebo)
	g.BufferData(ElementArrayBuffer, len(indices)*4, unsafe.Pointer(&indices[0]), StaticDraw)

	return m, nil
}

// BuildFrom uploads a CPU mesh. The mesh must pass Validate.
func BuildFrom(g GL, mesh *models.Mesh) (*Mesh, error) {
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("mesh %q: %w", mesh.Name, err)
	}
	m, err := BuildMesh(g, mesh.Vertices, mesh.Indices)
	if err != nil {
		return nil, fmt.Errorf("mesh %q: %w", mesh.Name, err)
	}
	return m, nil
}

// FaceCount returns the number of triangles the mesh draws.
func (m *Mesh) FaceCount() int {
	return int(m.indexCount) / 3
}

// Bounds returns the model-space bounding box of the uploaded vertices.
func (m *Mesh) Bounds() AABB {
	return m.bounds
}

// SetTexture attaches the texture sampled while drawing. Meant to be called
// once after construction; the mesh owns its texture exclusively.
func (m *Mesh) SetTexture(t *Texture) {
	m.texture = t
}

// Activate binds the mesh's vertex array for subsequent draw calls.
func (m *Mesh) Activate(g GL) {
	g.BindVertexArray(m.vao)
}

// Deactivate unbinds the vertex array.
func (m *Mesh) Deactivate(g GL) {
	g.BindVertexArray(0)
}

// Draw issues one indexed triangle draw call for the whole mesh. The texture
// and vertex array are activated for the call and deactivated on every exit
// path.
func (m *Mesh) Draw(g GL) {
	if m.texture != nil {
		m.texture.Activate(g)
		defer m.texture.Deactivate(g)
	}
	m.Activate(g)
	defer m.Deactivate(g)

	g.DrawElements(Triangles, m.indexCount, UnsignedInt, 0)
}
