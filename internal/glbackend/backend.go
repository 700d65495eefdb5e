// Package glbackend implements glapi.API on top of a real OpenGL 2.1 context
// via the go-gl bindings. A context must be current on the calling thread
// before Open is called, and all further calls must stay on that thread.
package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"

	"video-gl/glapi"
)

// Backend forwards glapi.API calls to the current OpenGL context.
type Backend struct{}

// Open loads the OpenGL function pointers for the current context.
func Open() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return &Backend{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (b *Backend) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (b *Backend) Enable(cap uint32)              { gl.Enable(cap) }
func (b *Backend) Disable(cap uint32)             { gl.Disable(cap) }
func (b *Backend) DepthMask(flag bool)            { gl.DepthMask(flag) }
func (b *Backend) ClearColor(r, g, bl, a float32) { gl.ClearColor(r, g, bl, a) }
func (b *Backend) Clear(mask uint32)              { gl.Clear(mask) }

func (b *Backend) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (b *Backend) CreateShader(shaderType uint32) uint32 { return gl.CreateShader(shaderType) }

func (b *Backend) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (b *Backend) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (b *Backend) GetShaderParameter(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (b *Backend) ShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (b *Backend) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (b *Backend) CreateProgram() uint32           { return gl.CreateProgram() }
func (b *Backend) AttachShader(program, sh uint32) { gl.AttachShader(program, sh) }
func (b *Backend) LinkProgram(program uint32)      { gl.LinkProgram(program) }
func (b *Backend) DeleteProgram(program uint32)    { gl.DeleteProgram(program) }
func (b *Backend) UseProgram(program uint32)       { gl.UseProgram(program) }

func (b *Backend) GetProgramParameter(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (b *Backend) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (b *Backend) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (b *Backend) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (b *Backend) Uniform1i(location int32, v int32)   { gl.Uniform1i(location, v) }
func (b *Backend) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (b *Backend) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (b *Backend) GenBuffers(n int) []uint32 {
	bufs := make([]uint32, n)
	gl.GenBuffers(int32(n), &bufs[0])
	return bufs
}

func (b *Backend) DeleteBuffers(buffers []uint32) {
	if len(buffers) == 0 {
		return
	}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
}

func (b *Backend) BindBuffer(target uint32, buffer uint32) { gl.BindBuffer(target, buffer) }

func (b *Backend) BufferDataFloat32(target uint32, data []float32, usage uint32) {
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (b *Backend) BufferDataUint16(target uint32, data []uint16, usage uint32) {
	gl.BufferData(target, len(data)*2, gl.Ptr(data), usage)
}

func (b *Backend) GenTextures(n int) []uint32 {
	texs := make([]uint32, n)
	gl.GenTextures(int32(n), &texs[0])
	return texs
}

func (b *Backend) DeleteTextures(textures []uint32) {
	if len(textures) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(textures)), &textures[0])
}

func (b *Backend) ActiveTexture(unit uint32)          { gl.ActiveTexture(unit) }
func (b *Backend) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }

func (b *Backend) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (b *Backend) TexImage2D(target uint32, internalFormat int32, width, height int32, format, pixelType uint32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(target, 0, internalFormat, width, height, 0, format, pixelType, ptr)
}

func (b *Backend) TexSubImage2D(target uint32, xoffset, yoffset, width, height int32, format, pixelType uint32, pixels []byte) {
	gl.TexSubImage2D(target, 0, xoffset, yoffset, width, height, format, pixelType, gl.Ptr(pixels))
}

func (b *Backend) EnableVertexAttribArray(index uint32)  { gl.EnableVertexAttribArray(index) }
func (b *Backend) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (b *Backend) VertexAttribPointer(index uint32, size int32, attribType uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, attribType, normalized, stride, offset)
}

func (b *Backend) DrawElements(mode uint32, count int32, elementType uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, elementType, offset)
}

var _ glapi.API = (*Backend)(nil)
