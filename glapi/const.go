package glapi

import "github.com/go-gl/gl/v2.1/gl"

// GL enum values used with API. Re-exported from the go-gl bindings so the
// renderer packages never import go-gl directly.
const (
	ArrayBuffer        = gl.ARRAY_BUFFER
	ElementArrayBuffer = gl.ELEMENT_ARRAY_BUFFER
	StaticDraw         = gl.STATIC_DRAW

	VertexShader   = gl.VERTEX_SHADER
	FragmentShader = gl.FRAGMENT_SHADER
	CompileStatus  = gl.COMPILE_STATUS
	LinkStatus     = gl.LINK_STATUS
	InfoLogLength  = gl.INFO_LOG_LENGTH

	Triangles     = gl.TRIANGLES
	UnsignedShort = gl.UNSIGNED_SHORT
	UnsignedByte  = gl.UNSIGNED_BYTE
	Float         = gl.FLOAT

	Blend          = gl.BLEND
	DepthTest      = gl.DEPTH_TEST
	CullFace       = gl.CULL_FACE
	ColorBufferBit = gl.COLOR_BUFFER_BIT

	Texture2D        = gl.TEXTURE_2D
	Texture0         = gl.TEXTURE0
	TextureMinFilter = gl.TEXTURE_MIN_FILTER
	TextureMagFilter = gl.TEXTURE_MAG_FILTER
	TextureWrapS     = gl.TEXTURE_WRAP_S
	TextureWrapT     = gl.TEXTURE_WRAP_T
	Linear           = gl.LINEAR
	ClampToEdge      = gl.CLAMP_TO_EDGE

	UnpackAlignment = gl.UNPACK_ALIGNMENT
	UnpackRowLength = gl.UNPACK_ROW_LENGTH

	RGBA           = gl.RGBA
	Luminance      = gl.LUMINANCE
	LuminanceAlpha = gl.LUMINANCE_ALPHA

	True  = gl.TRUE
	False = gl.FALSE
)
