// Package window abstracts the native presentation surface: event polling,
// framebuffer queries and buffer swaps. The render loop drives any Window
// implementation, so tests can substitute a scripted one.
package window

// Event is something that happened to the window since the last poll.
type Event any

// CloseEvent reports that the user asked to close the window.
type CloseEvent struct{}

// ResizeEvent reports a new framebuffer size in pixels.
type ResizeEvent struct {
	Width  int
	Height int
}

// Window is the presentation surface the render loop drives.
type Window interface {
	// Poll pumps the native event queue and returns pending events in
	// arrival order.
	Poll() []Event

	// FramebufferSize returns the drawable size in pixels. On high-DPI
	// displays this differs from the window size.
	FramebufferSize() (width, height int)

	// Swap presents the back buffer.
	Swap()

	// Destroy releases the window and its rendering context.
	Destroy()
}

// Options configure the native window and its rendering context. Zero values
// fall back to the defaults below.
type Options struct {
	Title       string
	Width       int // Default 1200
	Height      int // Default 800
	DepthBits   int // Default 24
	StencilBits int // Default 8
	Samples     int // MSAA samples per pixel, default 2
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Modern OpenGL"
	}
	if o.Width <= 0 {
		o.Width = 1200
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.DepthBits <= 0 {
		o.DepthBits = 24
	}
	if o.StencilBits <= 0 {
		o.StencilBits = 8
	}
	if o.Samples <= 0 {
		o.Samples = 2
	}
	return o
}
