package glapi

import "github.com/go-gl/mathgl/mgl32"

// Fake is a context-free API implementation for unit tests. It hands out
// object names, tracks which are alive, counts uploads and draw calls, and can
// be told to fail shader compilation, linking, or location lookups.
//
// The zero value is not usable; call NewFake.
type Fake struct {
	// Failure injection.
	FailCompile     bool
	FailLink        bool
	CompileLog      string
	LinkLog         string
	MissingUniforms map[string]bool
	MissingAttribs  map[string]bool

	// Live object tracking.
	Buffers  map[uint32]bool
	Textures map[uint32]bool
	Shaders  map[uint32]bool
	Programs map[uint32]bool

	// Resolved locations by name, and uploaded uniform values by location.
	UniformLocs map[string]int32
	AttribLocs  map[string]int32
	Matrices    map[int32]mgl32.Mat4
	Ints        map[int32]int32
	Floats      map[int32]float32

	// Enabled vertex attribute arrays.
	EnabledAttribs map[uint32]bool

	// Counters.
	BufferUploads int
	TexAllocs     int
	TexUploads    int
	DrawCalls     int
	Clears        int

	BoundProgram  uint32
	LastDrawCount int32

	nextID  uint32
	nextLoc int32
}

// NewFake returns a ready-to-use Fake.
func NewFake() *Fake {
	return &Fake{
		MissingUniforms: make(map[string]bool),
		MissingAttribs:  make(map[string]bool),
		Buffers:         make(map[uint32]bool),
		Textures:        make(map[uint32]bool),
		Shaders:         make(map[uint32]bool),
		Programs:        make(map[uint32]bool),
		UniformLocs:     make(map[string]int32),
		AttribLocs:      make(map[string]int32),
		Matrices:        make(map[int32]mgl32.Mat4),
		Ints:            make(map[int32]int32),
		Floats:          make(map[int32]float32),
		EnabledAttribs:  make(map[uint32]bool),
	}
}

func (f *Fake) newID() uint32 {
	f.nextID++
	return f.nextID
}

func (f *Fake) Enable(cap uint32)             {}
func (f *Fake) Disable(cap uint32)            {}
func (f *Fake) DepthMask(flag bool)           {}
func (f *Fake) ClearColor(r, g, b, a float32) {}
func (f *Fake) Clear(mask uint32)             { f.Clears++ }

func (f *Fake) PixelStorei(pname uint32, p int32) {}

func (f *Fake) CreateShader(shaderType uint32) uint32 {
	id := f.newID()
	f.Shaders[id] = true
	return id
}

func (f *Fake) ShaderSource(shader uint32, source string) {}
func (f *Fake) CompileShader(shader uint32)               {}

func (f *Fake) GetShaderParameter(shader uint32, pname uint32) int32 {
	switch pname {
	case CompileStatus:
		if f.FailCompile {
			return False
		}
		return True
	case InfoLogLength:
		return int32(len(f.CompileLog))
	}
	return 0
}

func (f *Fake) ShaderInfoLog(shader uint32) string { return f.CompileLog }

func (f *Fake) DeleteShader(shader uint32) { delete(f.Shaders, shader) }

func (f *Fake) CreateProgram() uint32 {
	id := f.newID()
	f.Programs[id] = true
	return id
}

func (f *Fake) AttachShader(program, shader uint32) {}
func (f *Fake) LinkProgram(program uint32)          {}

func (f *Fake) GetProgramParameter(program uint32, pname uint32) int32 {
	switch pname {
	case LinkStatus:
		if f.FailLink {
			return False
		}
		return True
	case InfoLogLength:
		return int32(len(f.LinkLog))
	}
	return 0
}

func (f *Fake) ProgramInfoLog(program uint32) string { return f.LinkLog }

func (f *Fake) DeleteProgram(program uint32) { delete(f.Programs, program) }
func (f *Fake) UseProgram(program uint32)    { f.BoundProgram = program }

func (f *Fake) GetUniformLocation(program uint32, name string) int32 {
	if f.MissingUniforms[name] {
		return -1
	}
	if loc, ok := f.UniformLocs[name]; ok {
		return loc
	}
	f.nextLoc++
	f.UniformLocs[name] = f.nextLoc
	return f.nextLoc
}

func (f *Fake) GetAttribLocation(program uint32, name string) int32 {
	if f.MissingAttribs[name] {
		return -1
	}
	if loc, ok := f.AttribLocs[name]; ok {
		return loc
	}
	f.nextLoc++
	f.AttribLocs[name] = f.nextLoc
	return f.nextLoc
}

func (f *Fake) Uniform1i(location int32, v int32)   { f.Ints[location] = v }
func (f *Fake) Uniform1f(location int32, v float32) { f.Floats[location] = v }

func (f *Fake) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	f.Matrices[location] = m
}

func (f *Fake) GenBuffers(n int) []uint32 {
	bufs := make([]uint32, n)
	for i := range bufs {
		bufs[i] = f.newID()
		f.Buffers[bufs[i]] = true
	}
	return bufs
}

func (f *Fake) DeleteBuffers(buffers []uint32) {
	for _, b := range buffers {
		delete(f.Buffers, b)
	}
}

func (f *Fake) BindBuffer(target uint32, buffer uint32) {}

func (f *Fake) BufferDataFloat32(target uint32, data []float32, usage uint32) {
	f.BufferUploads++
}

func (f *Fake) BufferDataUint16(target uint32, data []uint16, usage uint32) {
	f.BufferUploads++
}

func (f *Fake) GenTextures(n int) []uint32 {
	texs := make([]uint32, n)
	for i := range texs {
		texs[i] = f.newID()
		f.Textures[texs[i]] = true
	}
	return texs
}

func (f *Fake) DeleteTextures(textures []uint32) {
	for _, t := range textures {
		delete(f.Textures, t)
	}
}

func (f *Fake) ActiveTexture(unit uint32)          {}
func (f *Fake) BindTexture(target, texture uint32) {}

func (f *Fake) TexParameteri(target, pname uint32, param int32) {}

func (f *Fake) TexImage2D(target uint32, internalFormat int32, width, height int32, format, pixelType uint32, pixels []byte) {
	f.TexAllocs++
}

func (f *Fake) TexSubImage2D(target uint32, xoffset, yoffset, width, height int32, format, pixelType uint32, pixels []byte) {
	f.TexUploads++
}

func (f *Fake) EnableVertexAttribArray(index uint32)  { f.EnabledAttribs[index] = true }
func (f *Fake) DisableVertexAttribArray(index uint32) { delete(f.EnabledAttribs, index) }

func (f *Fake) VertexAttribPointer(index uint32, size int32, attribType uint32, normalized bool, stride int32, offset uintptr) {
}

func (f *Fake) DrawElements(mode uint32, count int32, elementType uint32, offset uintptr) {
	f.DrawCalls++
	f.LastDrawCount = count
}

var _ API = (*Fake)(nil)
