package core

// Projection describes how decoded video maps onto 3D geometry.
type Projection int

const (
	// ProjectionRectangular is ordinary flat video.
	ProjectionRectangular Projection = iota
	// ProjectionEquirectangular is 360° video mapped onto a sphere.
	ProjectionEquirectangular
	// ProjectionCubemap is 360° video packed as a 4-column/2-row face atlas.
	ProjectionCubemap
)

func (p Projection) String() string {
	switch p {
	case ProjectionRectangular:
		return "rectangular"
	case ProjectionEquirectangular:
		return "equirectangular"
	case ProjectionCubemap:
		return "cubemap"
	}
	return "unknown"
}

// Orientation is the source picture orientation. The renderer compensates for
// it with a texture-coordinate transform, so planes are always uploaded as
// stored.
type Orientation int

const (
	OrientNormal Orientation = iota
	OrientRotated90
	OrientRotated180
	OrientRotated270
	OrientHFlipped
	OrientVFlipped
	OrientTransposed
	OrientAntiTransposed
)

// Multiview describes how two stereo eye views are packed in a single frame.
type Multiview int

const (
	MultiviewMono Multiview = iota
	// MultiviewStereoTB packs left eye on top, right eye below.
	MultiviewStereoTB
	// MultiviewStereoSBS packs left eye left, right eye right.
	MultiviewStereoSBS
)

// ColorSpace selects the YUV→RGB coefficient set.
type ColorSpace int

const (
	ColorSpaceBT601 ColorSpace = iota
	ColorSpaceBT709
)

// PixelFormat identifies the plane layout of decoded pictures.
type PixelFormat int

const (
	// PixFmtRGBA is a single interleaved 8-bit RGBA plane.
	PixFmtRGBA PixelFormat = iota
	// PixFmtNV12 is a full-resolution luma plane plus one interleaved
	// half-resolution chroma plane.
	PixFmtNV12
	// PixFmtI420 is a full-resolution luma plane plus two half-resolution
	// chroma planes.
	PixFmtI420
)

// Rational is a positive ratio, used for per-plane texture scale factors.
type Rational struct {
	Num uint32
	Den uint32
}

// Float returns the ratio as a float32.
func (r Rational) Float() float32 {
	return float32(r.Num) / float32(r.Den)
}

// Rect is a pixel-space rectangle: offset into the full frame plus visible size.
type Rect struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

// Format describes a video stream: full and visible dimensions, plane layout
// and the 3D mapping attributes consumed by the renderer.
type Format struct {
	PixelFormat PixelFormat
	ColorSpace  ColorSpace

	// Full (coded) frame size, including any non-visible padding.
	Width  uint32
	Height uint32

	// Visible region within the coded frame.
	VisibleX      uint32
	VisibleY      uint32
	VisibleWidth  uint32
	VisibleHeight uint32

	Orientation Orientation
	Projection  Projection
	Multiview   Multiview

	// CubemapPadding is the margin in pixels between cube-face regions of
	// the atlas, kept clear of sampling to avoid cross-face bleed.
	CubemapPadding uint32
}

// VisibleRect returns the visible region of the coded frame.
func (f Format) VisibleRect() Rect {
	return Rect{X: f.VisibleX, Y: f.VisibleY, Width: f.VisibleWidth, Height: f.VisibleHeight}
}

// Plane holds the pixel data of one picture plane. Pitch is the byte distance
// between the starts of two consecutive rows and may exceed the row payload.
type Plane struct {
	Pixels []byte
	Pitch  int
}

// Picture is one decoded frame: plane data plus the format it was decoded as.
type Picture struct {
	Format Format
	Planes []Plane
}
