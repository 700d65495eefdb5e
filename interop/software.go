// Package interop moves decoded pictures into GPU textures and supplies the
// matching fragment shaders. The software interop covers CPU-decoded RGBA,
// NV12 and I420 pictures; hardware decoders plug in by implementing
// render.Interop themselves.
package interop

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"video-gl/core"
	"video-gl/glapi"
	"video-gl/render"
)

// planeDesc fixes one texture plane of a pixel format: its scale relative to
// the frame, its GL pixel format and the byte size of one texel.
type planeDesc struct {
	scaleW    core.Rational
	scaleH    core.Rational
	format    uint32
	pixelSize int
}

var planeLayouts = map[core.PixelFormat][]planeDesc{
	core.PixFmtRGBA: {
		{core.Rational{Num: 1, Den: 1}, core.Rational{Num: 1, Den: 1}, glapi.RGBA, 4},
	},
	core.PixFmtNV12: {
		{core.Rational{Num: 1, Den: 1}, core.Rational{Num: 1, Den: 1}, glapi.Luminance, 1},
		{core.Rational{Num: 1, Den: 2}, core.Rational{Num: 1, Den: 2}, glapi.LuminanceAlpha, 2},
	},
	core.PixFmtI420: {
		{core.Rational{Num: 1, Den: 1}, core.Rational{Num: 1, Den: 1}, glapi.Luminance, 1},
		{core.Rational{Num: 1, Den: 2}, core.Rational{Num: 1, Den: 2}, glapi.Luminance, 1},
		{core.Rational{Num: 1, Den: 2}, core.Rational{Num: 1, Den: 2}, glapi.Luminance, 1},
	},
}

// Software uploads CPU-decoded planes with TexSubImage2D. It owns no GPU
// resources itself; textures are allocated on request and released by the
// renderer.
type Software struct {
	api    glapi.API
	planes []planeDesc
}

var _ render.Interop = (*Software)(nil)

// NewSoftware returns the software interop for one of the supported CPU pixel
// formats.
func NewSoftware(api glapi.API, format core.PixelFormat) (*Software, error) {
	layout, ok := planeLayouts[format]
	if !ok {
		return nil, fmt.Errorf("%w: pixel format %d has no software plane layout",
			render.ErrInvalidArgument, format)
	}
	return &Software{api: api, planes: layout}, nil
}

func (s *Software) TexCount() int     { return len(s.planes) }
func (s *Software) TexTarget() uint32 { return glapi.Texture2D }

func (s *Software) TexScale(plane int) (w, h core.Rational) {
	return s.planes[plane].scaleW, s.planes[plane].scaleH
}

func (s *Software) HandlesTextureGen() bool { return false }

// AllocTextures creates one texture per plane, sized but unfilled, with linear
// filtering and edge clamping.
func (s *Software) AllocTextures(widths, heights []int32) ([]uint32, error) {
	textures := s.api.GenTextures(len(s.planes))

	for j, d := range s.planes {
		s.api.BindTexture(glapi.Texture2D, textures[j])
		s.api.TexParameteri(glapi.Texture2D, glapi.TextureMinFilter, glapi.Linear)
		s.api.TexParameteri(glapi.Texture2D, glapi.TextureMagFilter, glapi.Linear)
		s.api.TexParameteri(glapi.Texture2D, glapi.TextureWrapS, glapi.ClampToEdge)
		s.api.TexParameteri(glapi.Texture2D, glapi.TextureWrapT, glapi.ClampToEdge)
		s.api.TexImage2D(glapi.Texture2D, int32(d.format), widths[j], heights[j],
			d.format, glapi.UnsignedByte, nil)
	}

	return textures, nil
}

// UpdateTextures uploads the picture's planes. Row pitch is forwarded to the
// unpack row length so padded strides need no repacking, which requires the
// pitch to be a whole number of texels.
func (s *Software) UpdateTextures(textures []uint32, widths, heights []int32, pic *core.Picture) error {
	if len(pic.Planes) != len(s.planes) {
		return fmt.Errorf("%w: %d picture planes for a %d-plane layout",
			render.ErrInvalidArgument, len(pic.Planes), len(s.planes))
	}

	s.api.PixelStorei(glapi.UnpackAlignment, 1)
	for j, d := range s.planes {
		plane := pic.Planes[j]
		if plane.Pitch%d.pixelSize != 0 {
			return fmt.Errorf("%w: plane %d pitch %d is not a multiple of the %d-byte texel",
				render.ErrInvalidArgument, j, plane.Pitch, d.pixelSize)
		}

		width := int32(pic.Format.Width) * int32(d.scaleW.Num) / int32(d.scaleW.Den)
		height := int32(pic.Format.Height) * int32(d.scaleH.Num) / int32(d.scaleH.Den)
		if width > widths[j] {
			width = widths[j]
		}
		if height > heights[j] {
			height = heights[j]
		}

		s.api.PixelStorei(glapi.UnpackRowLength, int32(plane.Pitch/d.pixelSize))
		s.api.BindTexture(glapi.Texture2D, textures[j])
		s.api.TexSubImage2D(glapi.Texture2D, 0, 0, width, height,
			d.format, glapi.UnsignedByte, plane.Pixels)
	}
	s.api.PixelStorei(glapi.UnpackRowLength, 0)

	return nil
}

// TransformMatrix returns nil: software planes are stored exactly as sampled.
func (s *Software) TransformMatrix() *mgl32.Mat4 { return nil }

func (s *Software) Close() {}
