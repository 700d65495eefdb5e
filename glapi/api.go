// Package glapi defines the graphics capability table the video renderer is
// programmed against. The renderer never calls OpenGL directly: it receives an
// API value, so the same code runs against the real context-backed
// implementation (internal/glbackend) or against Fake in unit tests.
//
// The surface is the subset of GL 2.1 entry points the renderer and its
// collaborators actually invoke, with Go-typed signatures (strings instead of
// C pointers, slices instead of count/pointer pairs). The caller is assumed to
// have capability-checked the context for this feature level already.
package glapi

import "github.com/go-gl/mathgl/mgl32"

// API is the injected graphics function table.
//
// All calls must come from the thread owning the graphics context; no
// implementation is required to be safe for concurrent use.
type API interface {
	// Global state.
	Enable(cap uint32)
	Disable(cap uint32)
	DepthMask(flag bool)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	PixelStorei(pname uint32, param int32)

	// Shaders and programs.
	CreateShader(shaderType uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderParameter(shader uint32, pname uint32) int32
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramParameter(program uint32, pname uint32) int32
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32

	// Uniforms.
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	UniformMatrix4fv(location int32, m mgl32.Mat4)

	// Buffer objects.
	GenBuffers(n int) []uint32
	DeleteBuffers(buffers []uint32)
	BindBuffer(target uint32, buffer uint32)
	BufferDataFloat32(target uint32, data []float32, usage uint32)
	BufferDataUint16(target uint32, data []uint16, usage uint32)

	// Textures.
	GenTextures(n int) []uint32
	DeleteTextures(textures []uint32)
	ActiveTexture(unit uint32)
	BindTexture(target, texture uint32)
	TexParameteri(target, pname uint32, param int32)
	TexImage2D(target uint32, internalFormat int32, width, height int32, format, pixelType uint32, pixels []byte)
	TexSubImage2D(target uint32, xoffset, yoffset, width, height int32, format, pixelType uint32, pixels []byte)

	// Vertex attributes and drawing.
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, attribType uint32, normalized bool, stride int32, offset uintptr)
	DrawElements(mode uint32, count int32, elementType uint32, offset uintptr)
}
