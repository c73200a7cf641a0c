// vitrine - Minimal real-time model viewer
// Displays a textured mesh in a native window with a perspective camera.
//
// There are no flags and no environment variables; the scene is selected by
// the config struct below. Edit it and rebuild to change what is shown.
package main

import (
	"fmt"
	"image/color"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/taigrr/vitrine/pkg/models"
	"github.com/taigrr/vitrine/pkg/render"
	"github.com/taigrr/vitrine/pkg/window"
)

// config selects the demo scene. Asset paths are resolved relative to the
// working directory at startup.
type config struct {
	modelPath   string  // ignored when triangle is set
	texturePath string  // PNG, JPEG or WebP
	flipUVs     bool    // model files with a bottom-left UV origin need this
	triangle    bool    // show the built-in triangle instead of a model file
	spinRate    float64 // Y-axis spin in radians per second, 0 = static
	vertPath    string
	fragPath    string
}

var cfg = config{
	modelPath:   "models/cube.obj",
	texturePath: "models/checker.png",
	flipUVs:     true,
	vertPath:    "shaders/texture_perspective.vert",
	fragPath:    "shaders/texturing.frag",
}

func init() {
	// The window and its GL context must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// FPSMeter aggregates frame counts and prints the rate once per second. The
// displayed value is spring-smoothed so one slow frame does not make the
// readout jump.
type FPSMeter struct {
	frames   int
	since    time.Time
	display  float64
	velocity float64
	spring   harmonica.Spring
}

// NewFPSMeter creates a meter with a critically damped smoothing spring.
func NewFPSMeter() *FPSMeter {
	return &FPSMeter{
		since: time.Now(),
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(1), 4.0, 1.0),
	}
}

// Frame counts one frame; once a second has elapsed it prints the smoothed
// rate and starts a new measuring window.
func (f *FPSMeter) Frame() {
	f.frames++
	elapsed := time.Since(f.since)
	if elapsed < time.Second {
		return
	}

	measured := float64(f.frames) / elapsed.Seconds()
	if f.display == 0 {
		f.display = measured
	}
	f.display, f.velocity = f.spring.Update(f.display, f.velocity, measured)
	fmt.Printf("%.0f FPS\n", f.display)

	f.frames = 0
	f.since = time.Now()
}

// triangleMesh is the smallest possible scene: one textured triangle in
// front of the camera.
func triangleMesh() *models.Mesh {
	return models.NewMesh("triangle",
		[]models.Vertex{
			{X: -0.5, Y: -0.5, Z: 0, U: 0, V: 1},
			{X: -0.5, Y: 0.5, Z: 0, U: 0, V: 0},
			{X: 0.5, Y: 0.5, Z: 0, U: 1, V: 0},
		},
		[]uint32{2, 1, 0})
}

func run(cfg config) error {
	win, err := window.New(window.Options{Title: "vitrine"})
	if err != nil {
		return err
	}
	defer win.Destroy()

	g, err := render.NewOpenGL()
	if err != nil {
		return err
	}
	fmt.Printf("OpenGL %s\n", g.Version())

	program, err := render.LoadProgram(g, cfg.vertPath, cfg.fragPath)
	if err != nil {
		return fmt.Errorf("load shaders: %w", err)
	}

	// Load geometry
	var mesh *models.Mesh
	if cfg.triangle {
		mesh = triangleMesh()
	} else {
		mesh, err = models.ImportFirstMesh(cfg.modelPath, cfg.flipUVs)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
	}
	fmt.Printf("Loaded: %s (%d vertices, %d triangles)\n", mesh.Name, mesh.VertexCount(), mesh.FaceCount())

	gpuMesh, err := render.BuildFrom(g, mesh)
	if err != nil {
		return err
	}

	// Load texture, falling back to a procedural checkerboard
	texture, err := render.LoadTextureFile(g, cfg.texturePath, render.TextureOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load texture: %v\n", err)
		checker := render.CheckerImage(64, 64, 8,
			color.RGBA{R: 200, G: 200, B: 200, A: 255},
			color.RGBA{R: 100, G: 100, B: 100, A: 255})
		texture = render.UploadTexture(g, checker, render.TextureOptions{})
	}
	gpuMesh.SetTexture(texture)

	// Place the object in front of the camera
	camera := render.NewCamera()
	camera.SetView(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})

	transform := render.NewTransform()
	transform.Position = mgl32.Vec3{0, 0, -3}
	transform.Scale = mgl32.Vec3{3, 3, 3}

	loop := render.NewLoop(g, win, render.Scene{
		Mesh:      gpuMesh,
		Transform: &transform,
		Camera:    camera,
		Program:   program,
	})

	meter := NewFPSMeter()
	loop.OnFrame = func(dt float32) {
		meter.Frame()
		if cfg.spinRate != 0 {
			transform.Orientation[1] += float32(float64(dt) * cfg.spinRate)
		}
	}

	loop.Run()
	return nil
}
