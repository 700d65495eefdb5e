package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Field-of-view bounds in degrees for immersive projections.
const (
	FOVDegreesMin     = 20.0
	FOVDegreesMax     = 150.0
	FOVDegreesDefault = 80.0
)

// Viewpoint is the virtual camera orientation used for immersive projections.
// Angles and field of view are in degrees. Rotations compose in YXZ order:
// yaw about the vertical axis, then pitch, then roll.
type Viewpoint struct {
	Yaw   float32
	Pitch float32
	Roll  float32
	FOV   float32
}

// DefaultViewpoint is the straight-ahead camera with the default field of view.
func DefaultViewpoint() Viewpoint {
	return Viewpoint{FOV: FOVDegreesDefault}
}

func (vp Viewpoint) quat() mgl32.Quat {
	return mgl32.AnglesToQuat(
		mgl32.DegToRad(vp.Yaw),
		mgl32.DegToRad(vp.Pitch),
		mgl32.DegToRad(vp.Roll),
		mgl32.YXZ,
	)
}

// Mat4 returns the rotation matrix of the viewpoint, Ry(yaw)·Rx(pitch)·Rz(roll).
func (vp Viewpoint) Mat4() mgl32.Mat4 {
	return vp.quat().Mat4()
}

// Reversed returns the viewpoint describing the inverse rotation. Applying it
// to the scene turns a camera viewpoint into a world transform: increasing yaw
// rotates the world opposite to the camera. The field of view is unchanged.
func (vp Viewpoint) Reversed() Viewpoint {
	m := vp.quat().Conjugate().Mat4()

	// Extract YXZ Euler angles from R = Ry·Rx·Rz:
	//   R[1][2] = -sin(pitch)
	//   R[0][2] / R[2][2] = tan(yaw)
	//   R[1][0] / R[1][1] = tan(roll)
	sp := float64(-m.At(1, 2))
	if sp > 1 {
		sp = 1
	} else if sp < -1 {
		sp = -1
	}
	yaw := math.Atan2(float64(m.At(0, 2)), float64(m.At(2, 2)))
	pitch := math.Asin(sp)
	roll := math.Atan2(float64(m.At(1, 0)), float64(m.At(1, 1)))

	return Viewpoint{
		Yaw:   mgl32.RadToDeg(float32(yaw)),
		Pitch: mgl32.RadToDeg(float32(pitch)),
		Roll:  mgl32.RadToDeg(float32(roll)),
		FOV:   vp.FOV,
	}
}
