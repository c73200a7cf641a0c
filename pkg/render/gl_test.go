package render

import (
	"fmt"
	"image/color"
	"unsafe"
)

func gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// fakeGL records every GL call so pipeline logic can be tested without a GPU
// or a context. Handles are allocated sequentially; bound state is tracked so
// recorded calls carry the binding they operated on.
type fakeGL struct {
	calls      []string
	nextHandle uint32

	boundVAO     uint32
	boundTexture uint32
	boundBuffers map[uint32]uint32 // target -> buffer

	// True if an element array buffer was ever bound with no vertex array
	// bound; that binding would be lost.
	eboBoundOutsideVAO bool

	bufferBytes map[uint32][]byte // buffer -> last uploaded data
	attribs     []fakeAttrib
	enabled     []uint32
	enabledCaps []uint32

	texParams map[[2]uint32]int32 // {target, pname} -> param
	texImages []fakeTexImage

	draws []fakeDraw

	shaderTypes   map[uint32]uint32
	shaderSources map[uint32]string
	failCompile   map[uint32]string // shader stage -> info log
	failLink      string

	attached       map[uint32][]uint32
	deletedShaders []uint32
	usedPrograms   []uint32

	uniformLocations map[string]int32
	uniformLookups   map[string]int
	matrices         map[int32][16]float32
}

var _ GL = (*fakeGL)(nil)

type fakeAttrib struct {
	index       uint32
	size        int32
	xtype       uint32
	normalized  bool
	stride      int32
	offset      int
	vao         uint32
	arrayBuffer uint32
}

type fakeTexImage struct {
	texture        uint32
	internalFormat int32
	width, height  int32
	format, xtype  uint32
	pixels         []byte
}

type fakeDraw struct {
	mode    uint32
	count   int32
	xtype   uint32
	offset  int
	vao     uint32
	texture uint32
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		boundBuffers:     make(map[uint32]uint32),
		bufferBytes:      make(map[uint32][]byte),
		texParams:        make(map[[2]uint32]int32),
		shaderTypes:      make(map[uint32]uint32),
		shaderSources:    make(map[uint32]string),
		failCompile:      make(map[uint32]string),
		attached:         make(map[uint32][]uint32),
		uniformLocations: make(map[string]int32),
		uniformLookups:   make(map[string]int),
		matrices:         make(map[int32][16]float32),
	}
}

func (f *fakeGL) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) handle() uint32 {
	f.nextHandle++
	return f.nextHandle
}

// matrix returns the last matrix uploaded to the named uniform.
func (f *fakeGL) matrix(name string) ([16]float32, bool) {
	loc, ok := f.uniformLocations[name]
	if !ok {
		return [16]float32{}, false
	}
	m, ok := f.matrices[loc]
	return m, ok
}

func (f *fakeGL) Enable(cap uint32) {
	f.enabledCaps = append(f.enabledCaps, cap)
	f.record("Enable(%#x)", cap)
}
func (f *fakeGL) ClearColor(r, g, b, a float32) { f.record("ClearColor") }
func (f *fakeGL) Clear(mask uint32)             { f.record("Clear(%#x)", mask) }
func (f *fakeGL) Viewport(x, y, w, h int32)     { f.record("Viewport(%d,%d,%d,%d)", x, y, w, h) }

func (f *fakeGL) GenVertexArrays(n int32, arrays *uint32) {
	*arrays = f.handle()
	f.record("GenVertexArrays->%d", *arrays)
}

func (f *fakeGL) BindVertexArray(array uint32) {
	f.boundVAO = array
	f.record("BindVertexArray(%d)", array)
}

func (f *fakeGL) GenBuffers(n int32, buffers *uint32) {
	*buffers = f.handle()
	f.record("GenBuffers->%d", *buffers)
}

func (f *fakeGL) BindBuffer(target, buffer uint32) {
	f.boundBuffers[target] = buffer
	if target == ElementArrayBuffer && buffer != 0 && f.boundVAO == 0 {
		f.eboBoundOutsideVAO = true
	}
	f.record("BindBuffer(%#x,%d)", target, buffer)
}

func (f *fakeGL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	buf := f.boundBuffers[target]
	if data != nil {
		b := make([]byte, size)
		copy(b, unsafe.Slice((*byte)(data), size))
		f.bufferBytes[buf] = b
	}
	f.record("BufferData(%#x,%d)", target, size)
}

func (f *fakeGL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	f.attribs = append(f.attribs, fakeAttrib{
		index:       index,
		size:        size,
		xtype:       xtype,
		normalized:  normalized,
		stride:      stride,
		offset:      offset,
		vao:         f.boundVAO,
		arrayBuffer: f.boundBuffers[ArrayBuffer],
	})
	f.record("VertexAttribPointer(%d)", index)
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) {
	f.enabled = append(f.enabled, index)
	f.record("EnableVertexAttribArray(%d)", index)
}

func (f *fakeGL) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	f.draws = append(f.draws, fakeDraw{
		mode:    mode,
		count:   count,
		xtype:   xtype,
		offset:  offset,
		vao:     f.boundVAO,
		texture: f.boundTexture,
	})
	f.record("DrawElements(%d)", count)
}

func (f *fakeGL) GenTextures(n int32, textures *uint32) {
	*textures = f.handle()
	f.record("GenTextures->%d", *textures)
}

func (f *fakeGL) BindTexture(target, texture uint32) {
	f.boundTexture = texture
	f.record("BindTexture(%d)", texture)
}

func (f *fakeGL) TexParameteri(target, pname uint32, param int32) {
	f.texParams[[2]uint32{target, pname}] = param
	f.record("TexParameteri(%#x,%d)", pname, param)
}

func (f *fakeGL) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	img := fakeTexImage{
		texture:        f.boundTexture,
		internalFormat: internalFormat,
		width:          width,
		height:         height,
		format:         format,
		xtype:          xtype,
	}
	if pixels != nil {
		n := int(width) * int(height) * 4
		img.pixels = make([]byte, n)
		copy(img.pixels, unsafe.Slice((*byte)(pixels), n))
	}
	f.texImages = append(f.texImages, img)
	f.record("TexImage2D(%dx%d)", width, height)
}

func (f *fakeGL) GenerateMipmap(target uint32) { f.record("GenerateMipmap") }

func (f *fakeGL) CreateShader(xtype uint32) uint32 {
	id := f.handle()
	f.shaderTypes[id] = xtype
	f.record("CreateShader(%#x)->%d", xtype, id)
	return id
}

func (f *fakeGL) ShaderSource(shader uint32, src string) {
	f.shaderSources[shader] = src
	f.record("ShaderSource(%d)", shader)
}

func (f *fakeGL) CompileShader(shader uint32) { f.record("CompileShader(%d)", shader) }

func (f *fakeGL) GetShaderiv(shader, pname uint32, params *int32) {
	if pname != CompileStatus {
		return
	}
	if _, bad := f.failCompile[f.shaderTypes[shader]]; bad {
		*params = 0
		return
	}
	*params = 1
}

func (f *fakeGL) GetShaderInfoLog(shader uint32) string {
	return f.failCompile[f.shaderTypes[shader]]
}

func (f *fakeGL) DeleteShader(shader uint32) {
	f.deletedShaders = append(f.deletedShaders, shader)
	f.record("DeleteShader(%d)", shader)
}

func (f *fakeGL) CreateProgram() uint32 {
	id := f.handle()
	f.record("CreateProgram->%d", id)
	return id
}

func (f *fakeGL) AttachShader(program, shader uint32) {
	f.attached[program] = append(f.attached[program], shader)
	f.record("AttachShader(%d,%d)", program, shader)
}

func (f *fakeGL) LinkProgram(program uint32) { f.record("LinkProgram(%d)", program) }

func (f *fakeGL) GetProgramiv(program, pname uint32, params *int32) {
	if pname != LinkStatus {
		return
	}
	if f.failLink != "" {
		*params = 0
		return
	}
	*params = 1
}

func (f *fakeGL) GetProgramInfoLog(program uint32) string { return f.failLink }

func (f *fakeGL) UseProgram(program uint32) {
	f.usedPrograms = append(f.usedPrograms, program)
	f.record("UseProgram(%d)", program)
}

func (f *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	f.uniformLookups[name]++
	if loc, ok := f.uniformLocations[name]; ok {
		return loc
	}
	loc := int32(len(f.uniformLocations) + 1)
	f.uniformLocations[name] = loc
	return loc
}

func (f *fakeGL) UniformMatrix4fv(location, count int32, transpose bool, value *float32) {
	var m [16]float32
	copy(m[:], unsafe.Slice(value, 16))
	f.matrices[location] = m
	f.record("UniformMatrix4fv(%d)", location)
}
