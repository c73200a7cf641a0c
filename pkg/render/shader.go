package render

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Program is a compiled and linked vertex/fragment shader pair. Uniform
// locations are looked up lazily and cached by name.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// NewProgram compiles both shader stages from source and links them. Compile
// and link failures carry the driver's info log in the returned error.
func NewProgram(g GL, vertexSrc, fragmentSrc string) (*Program, error) {
	vertex, err := compileShader(g, VertexShader, vertexSrc)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer g.DeleteShader(vertex)

	fragment, err := compileShader(g, FragmentShader, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer g.DeleteShader(fragment)

	program := g.CreateProgram()
	g.AttachShader(program, vertex)
	g.AttachShader(program, fragment)
	g.LinkProgram(program)

	var status int32
	g.GetProgramiv(program, LinkStatus, &status)
	if status == 0 {
		return nil, fmt.Errorf("failed to link program: %s", g.GetProgramInfoLog(program))
	}

	return &Program{id: program, uniforms: make(map[string]int32)}, nil
}

// LoadProgram reads a vertex and a fragment shader from source files and
// links them into a program.
func LoadProgram(g GL, vertexPath, fragmentPath string) (*Program, error) {
	vertexSrc, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vertex shader: %w", err)
	}
	fragmentSrc, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment shader: %w", err)
	}
	p, err := NewProgram(g, string(vertexSrc), string(fragmentSrc))
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertexPath, fragmentPath, err)
	}
	return p, nil
}

func compileShader(g GL, stage uint32, src string) (uint32, error) {
	shader := g.CreateShader(stage)
	g.ShaderSource(shader, src)
	g.CompileShader(shader)

	var status int32
	g.GetShaderiv(shader, CompileStatus, &status)
	if status == 0 {
		log := g.GetShaderInfoLog(shader)
		g.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile: %s", log)
	}
	return shader, nil
}

// Activate makes the program current for subsequent draw calls.
func (p *Program) Activate(g GL) {
	g.UseProgram(p.id)
}

// Deactivate clears the current program.
func (p *Program) Deactivate(g GL) {
	g.UseProgram(0)
}

// SetMat4 uploads a 4x4 matrix uniform by name. Unknown names resolve to
// location -1, which the GPU ignores.
func (p *Program) SetMat4(g GL, name string, m mgl32.Mat4) {
	g.UniformMatrix4fv(p.location(g, name), 1, false, &m[0])
}

func (p *Program) location(g GL, name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := g.GetUniformLocation(p.id, name)
	p.uniforms[name] = loc
	return loc
}
