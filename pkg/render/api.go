// Package render drives the GPU pipeline for Vitrine: mesh upload, texture
// upload, shader programs, transform composition and the frame loop.
package render

import "unsafe"

// GL is the slice of the OpenGL API this package renders through. The real
// backend lives in opengl.go; tests substitute a recording fake so the
// pipeline logic runs without a GPU or a context.
type GL interface {
	Enable(cap uint32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)

	GenVertexArrays(n int32, arrays *uint32)
	BindVertexArray(array uint32)
	GenBuffers(n int32, buffers *uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DrawElements(mode uint32, count int32, xtype uint32, offset int)

	GenTextures(n int32, textures *uint32)
	BindTexture(target, texture uint32)
	TexParameteri(target, pname uint32, param int32)
	TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer)
	GenerateMipmap(target uint32)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32, params *int32)
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program, pname uint32, params *int32)
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location, count int32, transpose bool, value *float32)
}

// OpenGL enum values, mirrored here so the rest of the package stays free of
// the binding import. Untyped so they fit whichever parameter they name.
const (
	ArrayBuffer        = 0x8892
	ElementArrayBuffer = 0x8893
	StaticDraw         = 0x88E4

	Float        = 0x1406
	UnsignedByte = 0x1401
	UnsignedInt  = 0x1405

	Triangles = 0x0004

	Texture2D          = 0x0DE1
	TextureMinFilter   = 0x2801
	TextureMagFilter   = 0x2800
	TextureWrapS       = 0x2802
	TextureWrapT       = 0x2803
	Nearest            = 0x2600
	Linear             = 0x2601
	LinearMipmapLinear = 0x2703
	Repeat             = 0x2901
	ClampToEdge        = 0x812F
	RGBA               = 0x1908

	VertexShader   = 0x8B31
	FragmentShader = 0x8B30
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82

	DepthTest   = 0x0B71
	Multisample = 0x809D

	ColorBufferBit = 0x4000
	DepthBufferBit = 0x0100
)
