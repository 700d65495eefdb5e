package main

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"video-gl/core"
)

// seed pattern resolution; it is repainted every frame and scaled up to the
// full frame size, which keeps per-frame CPU work independent of the video
// resolution.
const (
	seedWidth  = 256
	seedHeight = 128
)

// frameSource produces synthetic animated RGBA pictures so the demo needs no
// decoder: a drifting color gradient with a coarse grid overlaid, useful for
// eyeballing orientation, cropping and projection behavior.
type frameSource struct {
	format core.Format
	seed   *image.RGBA
	frame  *image.RGBA
	tick   float64
}

func newFrameSource(format core.Format) *frameSource {
	return &frameSource{
		format: format,
		seed:   image.NewRGBA(image.Rect(0, 0, seedWidth, seedHeight)),
		frame:  image.NewRGBA(image.Rect(0, 0, int(format.Width), int(format.Height))),
	}
}

// Next paints and returns the next frame. The returned picture aliases the
// source's internal buffer and is only valid until the following call.
func (f *frameSource) Next() *core.Picture {
	f.tick += 0.02

	for y := 0; y < seedHeight; y++ {
		for x := 0; x < seedWidth; x++ {
			fx := float64(x) / seedWidth
			fy := float64(y) / seedHeight

			r := 0.5 + 0.5*math.Sin(2*math.Pi*(fx+f.tick))
			g := 0.5 + 0.5*math.Sin(2*math.Pi*(fy-f.tick))
			b := 0.5 + 0.5*math.Sin(2*math.Pi*(fx+fy))

			c := color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
			if x%32 == 0 || y%32 == 0 {
				c = color.RGBA{R: 32, G: 32, B: 32, A: 255}
			}
			f.seed.SetRGBA(x, y, c)
		}
	}

	xdraw.ApproxBiLinear.Scale(f.frame, f.frame.Bounds(), f.seed, f.seed.Bounds(), xdraw.Src, nil)

	return &core.Picture{
		Format: f.format,
		Planes: []core.Plane{{Pixels: f.frame.Pix, Pitch: f.frame.Stride}},
	}
}
