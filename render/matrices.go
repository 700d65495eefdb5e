package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"video-gl/core"
)

const (
	sphereRadius = 1.0

	zNear = 0.01
	zFar  = 1000.0

	// Horizontal fov changes smaller than this (in radians) do not trigger a
	// recomputation of the vertical fov and zoom bound. The value matches the
	// visual behavior tuning of the original renderer; do not re-derive it.
	fovDebounceRadians = 0.001

	// Horizontal fov (in degrees) above which the camera is zoomed out
	// dynamically so the sphere keeps covering the whole viewport.
	zoomThresholdDegrees = 90.0
)

// orientationMatrix maps a source orientation to the texture-coordinate
// transform that displays the picture upright. Rotations are built from the
// fixed cosines and sines of multiples of 90°, with a translation keeping
// coordinates in [0,1]. Unknown values map to the identity.
func orientationMatrix(orientation core.Orientation) mgl32.Mat4 {
	m := mgl32.Ident4()

	const (
		cosPi   = -1
		cosPi2  = 0
		cosNPi2 = 0

		sinPi   = 0
		sinPi2  = 1
		sinNPi2 = -1
	)

	switch orientation {
	case core.OrientRotated90:
		m[0] = cosPi2
		m[1] = -sinPi2
		m[4] = sinPi2
		m[5] = cosPi2
		m[13] = 1
	case core.OrientRotated180:
		m[0] = cosPi
		m[1] = -sinPi
		m[4] = sinPi
		m[5] = cosPi
		m[12] = 1
		m[13] = 1
	case core.OrientRotated270:
		m[0] = cosNPi2
		m[1] = -sinNPi2
		m[4] = sinNPi2
		m[5] = cosNPi2
		m[12] = 1
	case core.OrientHFlipped:
		m[0] = -1
		m[12] = 1
	case core.OrientVFlipped:
		m[5] = -1
		m[13] = 1
	case core.OrientTransposed:
		m[0] = 0
		m[5] = 0
		m[10] = -1
		m[1] = 1
		m[4] = 1
	case core.OrientAntiTransposed:
		m[0] = 0
		m[5] = 0
		m[10] = -1
		m[1] = -1
		m[4] = -1
		m[12] = 1
		m[13] = 1
	}

	return m
}

// projectionMatrix builds the perspective projection for the given window
// aspect ratio and vertical fov in radians, near plane 0.01 and far plane 1000.
func projectionMatrix(sar, fovy float32) mgl32.Mat4 {
	f := float32(1 / math.Tan(float64(fovy)/2))

	return mgl32.Mat4{
		f / sar, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (zNear + zFar) / (zNear - zFar), -1,
		0, 0, (2 * zNear * zFar) / (zNear - zFar), 0,
	}
}

// zoomMatrix translates by z along the depth axis.
func zoomMatrix(z float32) mgl32.Mat4 {
	m := mgl32.Ident4()
	m[14] = z
	return m
}

// updateFOVy derives the vertical fov from the horizontal fov and the window
// aspect ratio.
func (r *Renderer) updateFOVy() {
	r.fovy = 2 * float32(math.Atan(math.Tan(float64(r.fovx)/2)/float64(r.sar)))
}

// updateZ recomputes the bounded zoom value: the minimal z that still keeps
// the inside of the sphere covering the viewport, so zooming out never shows
// black past the sphere's edge. Zoom engages only above zoomThresholdDegrees
// of horizontal fov and is interpolated linearly from there, clamped to zMin.
func (r *Renderer) updateZ() {
	tanFovX2 := float32(math.Tan(float64(r.fovx) / 2))
	tanFovY2 := float32(math.Tan(float64(r.fovy) / 2))
	zMin := -sphereRadius / float32(math.Sin(math.Atan(math.Sqrt(
		float64(tanFovX2*tanFovX2+tanFovY2*tanFovY2)))))

	thresh := float32(zoomThresholdDegrees * math.Pi / 180)
	if r.fovx <= thresh {
		r.z = 0
		return
	}

	f := zMin / float32((core.FOVDegreesMax-zoomThresholdDegrees)*math.Pi/180)
	r.z = f*r.fovx - f*thresh
	if r.z < zMin {
		r.z = zMin
	}
}

// updateViewpointMatrices rebuilds the projection, zoom and view matrices for
// the current viewpoint state. Non-immersive projection modes use identity
// matrices throughout.
func (r *Renderer) updateViewpointMatrices() {
	switch r.format.Projection {
	case core.ProjectionEquirectangular, core.ProjectionCubemap:
		r.mat.Projection = projectionMatrix(r.sar, r.fovy)
		r.mat.Zoom = zoomMatrix(r.z)
		// r.vp has been reversed and is a world transform.
		r.mat.View = r.vp.Mat4()
	default:
		r.mat.Projection = mgl32.Ident4()
		r.mat.Zoom = mgl32.Ident4()
		r.mat.View = mgl32.Ident4()
	}
}

// SetViewpoint points the virtual camera for immersive projections. It fails
// with ErrInvalidArgument when vp.FOV lies outside
// [core.FOVDegreesMin, core.FOVDegreesMax], leaving all state unchanged.
//
// The vertical fov and zoom bound are recomputed only when the horizontal fov
// moved by at least 0.001 radians, so sub-threshold jitter never churns them.
func (r *Renderer) SetViewpoint(vp core.Viewpoint) error {
	if vp.FOV > core.FOVDegreesMax || vp.FOV < core.FOVDegreesMin {
		return ErrInvalidArgument
	}

	fovx := mgl32.DegToRad(vp.FOV)

	// The viewpoint is stored reversed, as a world transform.
	r.vp = vp.Reversed()

	if float32(math.Abs(float64(fovx-r.fovx))) >= fovDebounceRadians {
		r.fovx = fovx
		r.updateFOVy()
		r.updateZ()
	}
	r.updateViewpointMatrices()

	return nil
}

// SetWindowAspectRatio adjusts the matrices to a new window aspect ratio.
// Both the vertical fov and the minimum zoom depend on it, so they are always
// recomputed.
func (r *Renderer) SetWindowAspectRatio(sar float32) {
	r.sar = sar
	r.updateFOVy()
	r.updateZ()
	r.updateViewpointMatrices()
}
