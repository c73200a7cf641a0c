package render

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/taigrr/vitrine/pkg/window"
)

// State names the lifecycle phase of a render loop.
type State int

const (
	// Running means the loop will draw more frames.
	Running State = iota
	// Stopped means a close event was observed; no further frames are drawn.
	Stopped
)

// Scene binds one textured mesh, its placement and the camera viewing it.
type Scene struct {
	Mesh      *Mesh
	Transform *Transform
	Camera    *Camera
	Program   *Program
}

// Loop drives the per-frame render cycle: drain events, update matrices,
// clear, draw, swap. It stops as soon as a close event is observed, before
// the next draw.
type Loop struct {
	gl    GL
	win   window.Window
	scene Scene
	state State

	// OnFrame, when set, runs once per frame with the time since the
	// previous frame. The first frame reports zero.
	OnFrame func(dt float32)

	lastFrame time.Time
	now       func() time.Time
}

// NewLoop prepares fixed GL state for the scene and returns a loop in the
// Running state. Depth testing and multisampling are enabled here once
// rather than per frame.
func NewLoop(g GL, win window.Window, scene Scene) *Loop {
	g.Enable(DepthTest)
	g.Enable(Multisample)
	g.ClearColor(0, 0, 0, 1)

	w, h := win.FramebufferSize()
	scene.Camera.SetViewport(w, h)
	g.Viewport(0, 0, int32(w), int32(h))

	return &Loop{
		gl:    g,
		win:   win,
		scene: scene,
		state: Running,
		now:   time.Now,
	}
}

// State reports whether the loop will draw more frames.
func (l *Loop) State() State {
	return l.state
}

// Step runs a single frame and returns the resulting state. Events drained
// at the top of the frame take effect immediately: a close event stops the
// loop before anything is drawn.
func (l *Loop) Step() State {
	if l.state == Stopped {
		return Stopped
	}

	for _, ev := range l.win.Poll() {
		switch ev := ev.(type) {
		case window.CloseEvent:
			l.state = Stopped
		case window.ResizeEvent:
			l.gl.Viewport(0, 0, int32(ev.Width), int32(ev.Height))
		}
	}
	if l.state == Stopped {
		return Stopped
	}

	now := l.now()
	var dt float32
	if !l.lastFrame.IsZero() {
		dt = float32(now.Sub(l.lastFrame).Seconds())
	}
	l.lastFrame = now
	if l.OnFrame != nil {
		l.OnFrame(dt)
	}

	// The projection tracks the drawable size, so resizing the window never
	// stretches the scene.
	w, h := l.win.FramebufferSize()
	l.scene.Camera.SetViewport(w, h)

	l.scene.Program.Activate(l.gl)
	l.scene.Program.SetMat4(l.gl, "view", l.scene.Camera.ViewMatrix())
	l.scene.Program.SetMat4(l.gl, "projection", l.scene.Camera.ProjectionMatrix())

	model := l.scene.Transform.ModelMatrix()
	l.scene.Program.SetMat4(l.gl, "model", model)

	l.gl.Clear(ColorBufferBit | DepthBufferBit)

	if l.visible(model) {
		l.scene.Mesh.Draw(l.gl)
	}

	l.win.Swap()
	return Running
}

// Run steps frames until a close event stops the loop.
func (l *Loop) Run() {
	for l.Step() == Running {
	}
}

// visible tests the mesh bounds against the view frustum so an off-screen
// object costs no draw call.
func (l *Loop) visible(model mgl32.Mat4) bool {
	frustum := l.scene.Camera.GetFrustum()
	return frustum.IntersectAABB(l.scene.Mesh.Bounds().Transform(model))
}
