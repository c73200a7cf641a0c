package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera represents a perspective camera described by a look-at view and a
// vertical field of view.
type Camera struct {
	// View parameters
	Eye    mgl32.Vec3 // Camera position in world space
	Target mgl32.Vec3 // Point the camera looks at
	Up     mgl32.Vec3 // World-space up reference

	// Projection parameters
	FOV         float32 // Vertical field of view in radians
	AspectRatio float32 // Width / Height
	Near        float32 // Near clipping plane
	Far         float32 // Far clipping plane

	// Cached matrices (computed on demand)
	viewMatrix     mgl32.Mat4
	projMatrix     mgl32.Mat4
	viewProjMatrix mgl32.Mat4
	viewDirty      bool
	projDirty      bool
	viewProjDirty  bool
}

// NewCamera creates a camera at the origin looking down the negative Z axis,
// with a 45 degree field of view and clip planes at 0.1 and 100.
func NewCamera() *Camera {
	return &Camera{
		Eye:           mgl32.Vec3{0, 0, 0},
		Target:        mgl32.Vec3{0, 0, -1},
		Up:            mgl32.Vec3{0, 1, 0},
		FOV:           mgl32.DegToRad(45),
		AspectRatio:   1,
		Near:          0.1,
		Far:           100,
		viewDirty:     true,
		projDirty:     true,
		viewProjDirty: true,
	}
}

// SetView sets the camera position, look target and up reference.
func (c *Camera) SetView(eye, target, up mgl32.Vec3) {
	c.Eye = eye
	c.Target = target
	c.Up = up
	c.viewDirty = true
	c.viewProjDirty = true
}

// SetFOV sets the vertical field of view (in radians).
func (c *Camera) SetFOV(fov float32) {
	c.FOV = fov
	c.projDirty = true
	c.viewProjDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float32) {
	c.AspectRatio = aspect
	c.projDirty = true
	c.viewProjDirty = true
}

// SetViewport derives the aspect ratio from a framebuffer size in pixels.
// Degenerate sizes (a minimized window reports zero) leave the ratio as is.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.SetAspectRatio(float32(width) / float32(height))
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float32) {
	c.Near = near
	c.Far = far
	c.projDirty = true
	c.viewProjDirty = true
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	if c.viewDirty {
		c.computeViewMatrix()
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	if c.projDirty {
		c.computeProjectionMatrix()
		c.projDirty = false
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns the combined view-projection matrix. It has
// its own dirty flag so the cache survives callers that read the view and
// projection matrices separately first.
func (c *Camera) ViewProjectionMatrix() mgl32.Mat4 {
	if c.viewProjDirty {
		c.viewProjMatrix = c.ProjectionMatrix().Mul4(c.ViewMatrix())
		c.viewProjDirty = false
	}
	return c.viewProjMatrix
}

func (c *Camera) computeViewMatrix() {
	c.viewMatrix = mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *Camera) computeProjectionMatrix() {
	c.projMatrix = mgl32.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
}
