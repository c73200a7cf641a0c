package render

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// OpenGL is the real GL backend. It is a thin pass-through to the go-gl
// bindings; all calls must happen on the thread that owns the context.
type OpenGL struct{}

// NewOpenGL initializes the OpenGL bindings for the current context and
// returns the backend. A context must be current on the calling thread.
func NewOpenGL() (*OpenGL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize opengl: %w", err)
	}
	return &OpenGL{}, nil
}

// Version returns the version string reported by the driver.
func (*OpenGL) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (*OpenGL) Enable(cap uint32)                  { gl.Enable(cap) }
func (*OpenGL) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (*OpenGL) Clear(mask uint32)                  { gl.Clear(mask) }
func (*OpenGL) Viewport(x, y, w, h int32)          { gl.Viewport(x, y, w, h) }
func (*OpenGL) GenVertexArrays(n int32, a *uint32) { gl.GenVertexArrays(n, a) }
func (*OpenGL) BindVertexArray(array uint32)       { gl.BindVertexArray(array) }
func (*OpenGL) GenBuffers(n int32, b *uint32)      { gl.GenBuffers(n, b) }
func (*OpenGL) BindBuffer(target, buffer uint32)   { gl.BindBuffer(target, buffer) }

func (*OpenGL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (*OpenGL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
}

func (*OpenGL) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*OpenGL) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	gl.DrawElementsWithOffset(mode, count, xtype, uintptr(offset))
}

func (*OpenGL) GenTextures(n int32, t *uint32)     { gl.GenTextures(n, t) }
func (*OpenGL) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }

func (*OpenGL) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (*OpenGL) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.TexImage2D(target, level, internalFormat, width, height, border, format, xtype, pixels)
}

func (*OpenGL) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }

func (*OpenGL) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (*OpenGL) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (*OpenGL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*OpenGL) GetShaderiv(shader, pname uint32, params *int32) {
	gl.GetShaderiv(shader, pname, params)
}

func (*OpenGL) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*OpenGL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }
func (*OpenGL) CreateProgram() uint32      { return gl.CreateProgram() }

func (*OpenGL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (*OpenGL) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (*OpenGL) GetProgramiv(program, pname uint32, params *int32) {
	gl.GetProgramiv(program, pname, params)
}

func (*OpenGL) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*OpenGL) UseProgram(program uint32) { gl.UseProgram(program) }

func (*OpenGL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*OpenGL) UniformMatrix4fv(location, count int32, transpose bool, value *float32) {
	gl.UniformMatrix4fv(location, count, transpose, value)
}
