package interop

import (
	"fmt"
	"strings"

	"video-gl/core"
	"video-gl/glapi"
	"video-gl/render"
)

// Limited-range YUV to full-range RGB conversion, as mat3 columns (y, u, v
// coefficients) plus the per-channel offsets applied before the matrix.
var yuvCoefficients = map[core.ColorSpace]string{
	core.ColorSpaceBT601: "" +
		"const mat3 ConvMatrix = mat3(\n" +
		" 1.164, 1.164, 1.164,\n" +
		" 0.0, -0.392, 2.017,\n" +
		" 1.596, -0.813, 0.0);\n",
	core.ColorSpaceBT709: "" +
		"const mat3 ConvMatrix = mat3(\n" +
		" 1.164, 1.164, 1.164,\n" +
		" 0.0, -0.213, 2.112,\n" +
		" 1.793, -0.533, 0.0);\n",
}

const yuvOffsets = "const vec3 ConvOffsets = vec3(-0.0625, -0.5, -0.5);\n"

// FragmentShader is the render.FragmentShader for the software plane layouts:
// a passthrough for RGBA and a limited-range YUV conversion for NV12 and I420.
type FragmentShader struct {
	api      glapi.API
	source   string
	samplers int
	locs     []int32
}

var _ render.FragmentShader = (*FragmentShader)(nil)

// NewFragmentShader assembles the fragment shader for a pixel format and
// color space. version overrides the GLSL #version (default 120); the color
// space only matters for the YUV formats.
func NewFragmentShader(api glapi.API, pixFmt core.PixelFormat, colorSpace core.ColorSpace, version int) (*FragmentShader, error) {
	if version == 0 {
		version = 120
	}
	conv, ok := yuvCoefficients[colorSpace]
	if !ok {
		return nil, fmt.Errorf("%w: color space %d", render.ErrInvalidArgument, colorSpace)
	}

	var samplers int
	var body string
	switch pixFmt {
	case core.PixFmtRGBA:
		samplers = 1
		conv = ""
		body = " gl_FragColor = texture2D(Texture0, TexCoord0);\n"
	case core.PixFmtNV12:
		samplers = 2
		body = "" +
			" vec3 yuv;\n" +
			" yuv.x = texture2D(Texture0, TexCoord0).x;\n" +
			" yuv.yz = texture2D(Texture1, TexCoord1).xw;\n" +
			" gl_FragColor = vec4(ConvMatrix * (yuv + ConvOffsets), 1.0);\n"
	case core.PixFmtI420:
		samplers = 3
		body = "" +
			" vec3 yuv;\n" +
			" yuv.x = texture2D(Texture0, TexCoord0).x;\n" +
			" yuv.y = texture2D(Texture1, TexCoord1).x;\n" +
			" yuv.z = texture2D(Texture2, TexCoord2).x;\n" +
			" gl_FragColor = vec4(ConvMatrix * (yuv + ConvOffsets), 1.0);\n"
	default:
		return nil, fmt.Errorf("%w: pixel format %d has no fragment shader", render.ErrInvalidArgument, pixFmt)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#version %d\n", version)
	for i := 0; i < samplers; i++ {
		fmt.Fprintf(&b, "varying vec2 TexCoord%d;\n", i)
		fmt.Fprintf(&b, "uniform sampler2D Texture%d;\n", i)
	}
	if conv != "" {
		b.WriteString(conv)
		b.WriteString(yuvOffsets)
	}
	b.WriteString("void main() {\n")
	b.WriteString(body)
	b.WriteString("}")

	return &FragmentShader{api: api, source: b.String(), samplers: samplers}, nil
}

func (f *FragmentShader) Source() string { return f.source }

// FetchLocations resolves the sampler uniforms from the linked program.
func (f *FragmentShader) FetchLocations(program uint32) error {
	f.locs = make([]int32, f.samplers)
	var missing []string
	for i := range f.locs {
		name := fmt.Sprintf("Texture%d", i)
		f.locs[i] = f.api.GetUniformLocation(program, name)
		if f.locs[i] == -1 {
			missing = append(missing, name)
		}
	}
	if missing != nil {
		return &render.LocationError{Missing: missing}
	}
	return nil
}

// PrepareDraw points each sampler at its texture unit.
func (f *FragmentShader) PrepareDraw(texWidths, texHeights []int32) {
	for i, loc := range f.locs {
		f.api.Uniform1i(loc, int32(i))
	}
}
