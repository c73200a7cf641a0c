package render

import "github.com/go-gl/mathgl/mgl32"

// Transform is the placement state of a rendered object: position, Euler
// orientation in radians, and per-axis scale. Fields are plain data so a
// caller can animate them between frames.
type Transform struct {
	Position    mgl32.Vec3
	Orientation mgl32.Vec3 // Euler angles, applied Z then X then Y
	Scale       mgl32.Vec3
}

// NewTransform returns an identity transform: origin position, zero rotation,
// unit scale.
func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// ModelMatrix composes the object-to-world matrix from the current state.
// Rotation applies around Z, then X, then Y; the order is part of the
// contract, since Euler rotations do not commute.
func (t Transform) ModelMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
	m = m.Mul4(mgl32.HomogRotate3DZ(t.Orientation.Z()))
	m = m.Mul4(mgl32.HomogRotate3DX(t.Orientation.X()))
	m = m.Mul4(mgl32.HomogRotate3DY(t.Orientation.Y()))
	return m
}
