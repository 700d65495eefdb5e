package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"video-gl/core"
)

// Interop is the texture-upload collaborator: it knows the plane layout of a
// pixel format and how to move decoded planes into GPU textures. The renderer
// owns the Interop it is created with and closes it on Destroy.
type Interop interface {
	// TexCount returns the number of texture planes, between 1 and 3.
	TexCount() int

	// TexTarget returns the texture target all planes are bound to.
	TexTarget() uint32

	// TexScale returns the dimensions of plane texture relative to the full
	// frame, e.g. 1/2 × 1/2 for subsampled chroma.
	TexScale(plane int) (w, h core.Rational)

	// HandlesTextureGen reports whether the interop allocates its own
	// textures. When false, the renderer calls AllocTextures once and
	// deletes the returned textures on Destroy.
	HandlesTextureGen() bool

	// AllocTextures creates and sizes one texture per plane.
	AllocTextures(widths, heights []int32) ([]uint32, error)

	// UpdateTextures uploads the picture planes into the given textures.
	UpdateTextures(textures []uint32, widths, heights []int32, pic *core.Picture) error

	// TransformMatrix returns an extra per-frame texture-coordinate
	// transform, or nil when the format needs none.
	TransformMatrix() *mgl32.Mat4

	// Close releases interop resources. Textures returned by AllocTextures
	// are not the interop's to release; the renderer deletes those.
	Close()
}

// FragmentShader is the pixel-format-specific half of the shader program. The
// renderer assembles and compiles the vertex shader itself, links it against
// Source, and delegates format-specific uniform handling to the two hooks.
type FragmentShader interface {
	// Source returns the fragment shader source to link.
	Source() string

	// FetchLocations resolves the fragment shader's own uniform and
	// attribute locations from the linked program. An error is fatal to
	// renderer construction.
	FetchLocations(program uint32) error

	// PrepareDraw sets the fragment shader's uniforms before a draw.
	PrepareDraw(texWidths, texHeights []int32)
}
