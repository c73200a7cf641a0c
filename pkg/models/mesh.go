// Package models provides mesh loading and representation for Vitrine.
package models

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex holds the attributes of a single mesh vertex. The field order is the
// GPU attribute layout: three position floats followed by two texture
// coordinate floats, tightly packed.
type Vertex struct {
	X, Y, Z float32
	U, V    float32
}

// VertexStride is the size of one Vertex in bytes.
const VertexStride = 5 * 4

// UVOffset is the byte offset of the texture coordinates within a Vertex.
const UVOffset = 3 * 4

// Position returns the vertex position as a vector.
func (v Vertex) Position() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Mesh represents triangle geometry on the CPU: a vertex list and an index
// list describing triangles. Indices come in groups of three.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// NewMesh creates a mesh from a vertex and an index list. Both may be nil for
// a mesh that is filled in afterwards.
func NewMesh(name string, vertices []Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int {
	return len(m.Indices) / 3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Validate checks the triangle invariants: the index count is a multiple of
// three and every index references an existing vertex.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("index %d at position %d out of range (have %d vertices)", idx, i, len(m.Vertices))
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the mesh.
// The zero box is returned for an empty mesh.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}

	min = m.Vertices[0].Position()
	max = min

	for _, v := range m.Vertices[1:] {
		min[0] = math32.Min(min[0], v.X)
		min[1] = math32.Min(min[1], v.Y)
		min[2] = math32.Min(min[2], v.Z)
		max[0] = math32.Max(max[0], v.X)
		max[1] = math32.Max(max[1], v.Y)
		max[2] = math32.Max(max[2], v.Z)
	}

	return min, max
}

// BoundingRadius returns the radius of a sphere centered on the bounding box
// center that contains every vertex.
func (m *Mesh) BoundingRadius() float32 {
	min, max := m.Bounds()
	half := max.Sub(min).Mul(0.5)
	return math32.Sqrt(half[0]*half[0] + half[1]*half[1] + half[2]*half[2])
}

// FlipUVs inverts the V coordinate of every vertex in place. Needed when an
// asset defines texture-space origin at the bottom-left instead of top-left.
func (m *Mesh) FlipUVs() {
	for i := range m.Vertices {
		m.Vertices[i].V = 1 - m.Vertices[i].V
	}
}

// JoinIdenticalVertices merges vertices with identical attributes and remaps
// the index list accordingly. Parsers that expand faces into per-corner
// vertices call this to restore a shared vertex pool.
func (m *Mesh) JoinIdenticalVertices() {
	seen := make(map[Vertex]uint32, len(m.Vertices))
	joined := make([]Vertex, 0, len(m.Vertices))
	remap := make([]uint32, len(m.Vertices))

	for i, v := range m.Vertices {
		idx, ok := seen[v]
		if !ok {
			idx = uint32(len(joined))
			joined = append(joined, v)
			seen[v] = idx
		}
		remap[i] = idx
	}

	for i, idx := range m.Indices {
		m.Indices[i] = remap[idx]
	}
	m.Vertices = joined
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:     m.Name,
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  make([]uint32, len(m.Indices)),
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Indices, m.Indices)
	return clone
}
