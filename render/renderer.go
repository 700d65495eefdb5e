// Package render maps decoded video frames onto projection geometry and draws
// them through an injected graphics capability table.
//
// A Renderer is bound to the thread owning the graphics context: every method
// is synchronous, runs to completion, and must not be called concurrently.
// The lifecycle is New → (Prepare/Draw/SetViewpoint/SetWindowAspectRatio)* →
// Destroy; a destroyed renderer cannot be revived.
package render

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"video-gl/core"
	"video-gl/glapi"
)

// Config carries everything a Renderer needs at construction.
type Config struct {
	// API is the graphics capability table. Required.
	API glapi.API

	// Interop uploads decoded planes into textures. Required; the renderer
	// takes ownership and closes it on Destroy (and on failed construction).
	Interop Interop

	// FragmentShader supplies the pixel-format-specific fragment shader and
	// its uniform hooks. Required.
	FragmentShader FragmentShader

	// Format describes the video to render.
	Format core.Format

	// Logger receives shader diagnostics. Nil discards them.
	Logger *slog.Logger

	// SupportsNPOT reports whether the context handles non-power-of-two
	// textures. When false, plane textures are over-allocated to the next
	// power of two and sampling coordinates are scaled accordingly.
	SupportsNPOT bool

	// DumpShaders logs the assembled shader sources at debug level.
	DumpShaders bool

	// GLSLVersion overrides the #version of the vertex shader (default 120).
	GLSLVersion int

	// AspectRatio is the initial window aspect ratio (default 1).
	AspectRatio float32

	// Viewpoint is the initial camera for immersive projections. The zero
	// value selects the straight-ahead default.
	Viewpoint core.Viewpoint
}

// Renderer owns the GPU resources and cached state needed to draw decoded
// frames: the shader program, vertex/index/texture-coordinate buffers, the
// four viewpoint matrices and the last tessellated source rectangle.
type Renderer struct {
	api     glapi.API
	log     *slog.Logger
	interop Interop
	frag    FragmentShader

	format      core.Format
	glslVersion int
	dumpShaders bool

	program uint32
	uloc    uniformLocations
	aloc    attribLocations

	texWidths  []int32
	texHeights []int32
	textures   []uint32

	vertexBuffer uint32
	indexBuffer  uint32
	texBuffers   []uint32
	indexCount   int32

	// Viewpoint state. vp is stored reversed, as a world transform; fovx and
	// fovy are in radians.
	fovx float32
	fovy float32
	z    float32
	sar  float32
	vp   core.Viewpoint

	mat struct {
		Orientation mgl32.Mat4
		Projection  mgl32.Mat4
		View        mgl32.Mat4
		Zoom        mgl32.Mat4
	}

	lastSource  core.Rect
	hasGeometry bool
	destroyed   bool
}

// New builds the shader program, sizes and allocates the plane textures and
// creates the GPU buffers. Any failure releases everything acquired up to
// that point (including cfg.Interop) and returns it; there is no partially
// constructed renderer.
func New(cfg Config) (*Renderer, error) {
	if cfg.API == nil || cfg.Interop == nil || cfg.FragmentShader == nil {
		return nil, fmt.Errorf("%w: missing API, interop or fragment shader", ErrInvalidArgument)
	}
	if cfg.Format.Width == 0 || cfg.Format.Height == 0 {
		return nil, fmt.Errorf("%w: zero frame dimensions", ErrInvalidArgument)
	}
	planes := cfg.Interop.TexCount()
	if planes < 1 || planes > maxPlanes {
		return nil, fmt.Errorf("%w: %d texture planes", ErrInvalidArgument, planes)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	vp := cfg.Viewpoint
	if vp == (core.Viewpoint{}) {
		vp = core.DefaultViewpoint()
	}
	if vp.FOV > core.FOVDegreesMax || vp.FOV < core.FOVDegreesMin {
		return nil, fmt.Errorf("%w: initial fov %v", ErrInvalidArgument, vp.FOV)
	}

	sar := cfg.AspectRatio
	if sar == 0 {
		sar = 1
	}
	version := cfg.GLSLVersion
	if version == 0 {
		version = glslDefaultVersion
	}

	r := &Renderer{
		api:         cfg.API,
		log:         log,
		interop:     cfg.Interop,
		frag:        cfg.FragmentShader,
		format:      cfg.Format,
		glslVersion: version,
		dumpShaders: cfg.DumpShaders,
		sar:         sar,
		fovx:        mgl32.DegToRad(vp.FOV),
		vp:          vp.Reversed(),
	}
	r.updateFOVy()
	r.updateZ()

	if err := r.linkProgram(); err != nil {
		r.interop.Close()
		return nil, err
	}

	r.mat.Orientation = orientationMatrix(cfg.Format.Orientation)
	r.updateViewpointMatrices()

	// Plane texture sizes: the visible frame scaled per plane, padded up to a
	// power of two when the context requires it.
	r.texWidths = make([]int32, planes)
	r.texHeights = make([]int32, planes)
	for j := 0; j < planes; j++ {
		sw, sh := r.interop.TexScale(j)
		w := int32(cfg.Format.VisibleWidth * sw.Num / sw.Den)
		h := int32(cfg.Format.VisibleHeight * sh.Num / sh.Den)
		if cfg.SupportsNPOT {
			r.texWidths[j], r.texHeights[j] = w, h
		} else {
			r.texWidths[j], r.texHeights[j] = alignPOT(w), alignPOT(h)
		}
	}

	if r.interop.HandlesTextureGen() {
		r.textures = make([]uint32, planes)
	} else {
		textures, err := r.interop.AllocTextures(r.texWidths, r.texHeights)
		if err != nil {
			r.api.DeleteProgram(r.program)
			r.interop.Close()
			return nil, fmt.Errorf("texture allocation: %w", err)
		}
		r.textures = textures
	}

	r.api.Disable(glapi.Blend)
	r.api.Disable(glapi.DepthTest)
	r.api.DepthMask(false)
	r.api.Enable(glapi.CullFace)
	r.api.ClearColor(0, 0, 0, 1)
	r.api.Clear(glapi.ColorBufferBit)

	bufs := r.api.GenBuffers(2)
	r.vertexBuffer, r.indexBuffer = bufs[0], bufs[1]
	r.texBuffers = r.api.GenBuffers(planes)

	return r, nil
}

// Prepare uploads the picture's planes into the renderer's textures. It is a
// plain passthrough to the interop collaborator.
func (r *Renderer) Prepare(pic *core.Picture) error {
	return r.interop.UpdateTextures(r.textures, r.texWidths, r.texHeights, pic)
}

// Draw renders the given source rectangle (offset plus visible size in frame
// pixels) into the currently bound framebuffer.
//
// Geometry is rebuilt and re-uploaded only when the source rectangle differs
// from the previous draw; viewpoint changes never trigger a rebuild. If the
// rebuild fails the previous geometry stays intact and only this frame's draw
// is skipped.
func (r *Renderer) Draw(source core.Rect) error {
	r.api.Clear(glapi.ColorBufferBit)
	r.api.UseProgram(r.program)

	if !r.hasGeometry || source != r.lastSource {
		planes := r.interop.TexCount()
		crops := make([]texCrop, planes)
		for j := 0; j < planes; j++ {
			sw, sh := r.interop.TexScale(j)
			scaleW := sw.Float() / float32(r.texWidths[j])
			scaleH := sh.Float() / float32(r.texHeights[j])

			// When NPOT is unsupported the texture is over-allocated, so the
			// right/bottom coordinates land on the edge between the last
			// uploaded texel and its uninitialized neighbor. Linear sampling
			// may then show a green line on those borders. Mirroring the
			// texture edges or subtracting one texel would instead drop the
			// last row/column, so the arithmetic stays as is.
			crops[j] = texCrop{
				left:   float32(source.X) * scaleW,
				top:    float32(source.Y) * scaleH,
				right:  float32(source.X+source.Width) * scaleW,
				bottom: float32(source.Y+source.Height) * scaleH,
			}
		}

		stereoCrop(r.format.Multiview, crops)

		padW := float32(r.format.CubemapPadding) / float32(r.format.Width)
		padH := float32(r.format.CubemapPadding) / float32(r.format.Height)
		geo, err := buildGeometry(r.format.Projection, crops, padW, padH)
		if err != nil {
			return err
		}
		r.uploadGeometry(geo)

		r.lastSource = source
		r.hasGeometry = true
	}

	r.drawWithProgram()
	return nil
}

func (r *Renderer) uploadGeometry(geo *geometry) {
	for j := 0; j < geo.planes; j++ {
		r.api.BindBuffer(glapi.ArrayBuffer, r.texBuffers[j])
		r.api.BufferDataFloat32(glapi.ArrayBuffer, geo.planeTexCoords(j), glapi.StaticDraw)
	}

	r.api.BindBuffer(glapi.ArrayBuffer, r.vertexBuffer)
	r.api.BufferDataFloat32(glapi.ArrayBuffer, geo.vertices, glapi.StaticDraw)

	r.api.BindBuffer(glapi.ElementArrayBuffer, r.indexBuffer)
	r.api.BufferDataUint16(glapi.ElementArrayBuffer, geo.indices, glapi.StaticDraw)

	r.indexCount = int32(len(geo.indices))
}

func (r *Renderer) drawWithProgram() {
	r.frag.PrepareDraw(r.texWidths, r.texHeights)

	target := r.interop.TexTarget()
	for j := 0; j < r.interop.TexCount(); j++ {
		r.api.ActiveTexture(glapi.Texture0 + uint32(j))
		r.api.BindTexture(target, r.textures[j])

		r.api.BindBuffer(glapi.ArrayBuffer, r.texBuffers[j])
		r.api.EnableVertexAttribArray(uint32(r.aloc.MultiTexCoord[j]))
		r.api.VertexAttribPointer(uint32(r.aloc.MultiTexCoord[j]), 2, glapi.Float, false, 0, 0)
	}

	r.api.BindBuffer(glapi.ArrayBuffer, r.vertexBuffer)
	r.api.BindBuffer(glapi.ElementArrayBuffer, r.indexBuffer)
	r.api.EnableVertexAttribArray(uint32(r.aloc.VertexPosition))
	r.api.VertexAttribPointer(uint32(r.aloc.VertexPosition), 3, glapi.Float, false, 0, 0)

	transform := mgl32.Ident4()
	if tm := r.interop.TransformMatrix(); tm != nil {
		transform = *tm
	}
	r.api.UniformMatrix4fv(r.uloc.TransformMatrix, transform)
	r.api.UniformMatrix4fv(r.uloc.OrientationMatrix, r.mat.Orientation)
	r.api.UniformMatrix4fv(r.uloc.ProjectionMatrix, r.mat.Projection)
	r.api.UniformMatrix4fv(r.uloc.ViewMatrix, r.mat.View)
	r.api.UniformMatrix4fv(r.uloc.ZoomMatrix, r.mat.Zoom)

	r.api.DrawElements(glapi.Triangles, r.indexCount, glapi.UnsignedShort, 0)
}

// Destroy releases the GPU buffers, the plane textures (unless the interop
// manages its own), the interop and the shader program, in reverse order of
// acquisition. Destroy is idempotent; no other method may be called after it.
func (r *Renderer) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true

	r.api.DeleteBuffers([]uint32{r.vertexBuffer, r.indexBuffer})
	r.api.DeleteBuffers(r.texBuffers)

	if !r.interop.HandlesTextureGen() {
		r.api.DeleteTextures(r.textures)
	}
	r.interop.Close()

	if r.program != 0 {
		r.api.DeleteProgram(r.program)
	}
}

// alignPOT rounds up to the next power of two.
func alignPOT(v int32) int32 {
	aligned := int32(1)
	for aligned < v {
		aligned <<= 1
	}
	return aligned
}
