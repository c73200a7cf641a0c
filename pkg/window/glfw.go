package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFW owns a native window with an OpenGL 4.1 core profile context.
type GLFW struct {
	win     *glfw.Window
	pending []Event
}

// New initializes GLFW and opens a window with the requested options. The GL
// context is made current on the calling goroutine, which must stay locked to
// its OS thread for the window's lifetime.
func New(opts Options) (*GLFW, error) {
	opts = opts.withDefaults()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, opts.DepthBits)
	glfw.WindowHint(glfw.StencilBits, opts.StencilBits)
	glfw.WindowHint(glfw.Samples, opts.Samples)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &GLFW{win: win}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.pending = append(w.pending, ResizeEvent{Width: width, Height: height})
	})
	return w, nil
}

// Poll pumps the native event queue and returns pending events. A close
// request from the window manager arrives as a CloseEvent.
func (w *GLFW) Poll() []Event {
	glfw.PollEvents()
	events := w.pending
	w.pending = nil
	if w.win.ShouldClose() {
		events = append(events, CloseEvent{})
	}
	return events
}

// FramebufferSize returns the drawable size in pixels.
func (w *GLFW) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// Swap presents the back buffer. With a swap interval of 1 this blocks until
// the next vertical refresh.
func (w *GLFW) Swap() {
	w.win.SwapBuffers()
}

// Destroy closes the window and shuts GLFW down.
func (w *GLFW) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
