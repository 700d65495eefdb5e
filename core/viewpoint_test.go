package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const angleEpsilon = 0.001

func TestDefaultViewpoint(t *testing.T) {
	vp := DefaultViewpoint()
	if vp.Yaw != 0 || vp.Pitch != 0 || vp.Roll != 0 {
		t.Errorf("DefaultViewpoint: expected zero angles, got %+v", vp)
	}
	if vp.FOV != FOVDegreesDefault {
		t.Errorf("DefaultViewpoint: expected fov %v, got %v", FOVDegreesDefault, vp.FOV)
	}
}

func TestViewpointMat4Identity(t *testing.T) {
	m := (Viewpoint{FOV: FOVDegreesDefault}).Mat4()
	if !m.ApproxEqualThreshold(mgl32.Ident4(), angleEpsilon) {
		t.Errorf("Mat4 of zero rotation: expected identity, got %v", m)
	}
}

func TestViewpointReversedYawOnly(t *testing.T) {
	vp := Viewpoint{Yaw: 30, FOV: 80}
	rev := vp.Reversed()

	if math.Abs(float64(rev.Yaw+30)) > angleEpsilon {
		t.Errorf("Reversed yaw: expected -30, got %v", rev.Yaw)
	}
	if math.Abs(float64(rev.Pitch)) > angleEpsilon || math.Abs(float64(rev.Roll)) > angleEpsilon {
		t.Errorf("Reversed yaw: expected zero pitch/roll, got %+v", rev)
	}
	if rev.FOV != 80 {
		t.Errorf("Reversed: fov must be unchanged, got %v", rev.FOV)
	}
}

func TestViewpointReversedRoundTrip(t *testing.T) {
	cases := []Viewpoint{
		{Yaw: 30, FOV: 80},
		{Pitch: -20, FOV: 80},
		{Roll: 45, FOV: 80},
		{Yaw: 25, Pitch: 40, Roll: -15, FOV: 80},
		{Yaw: -60, Pitch: -35, Roll: 10, FOV: 120},
	}

	for _, vp := range cases {
		back := vp.Reversed().Reversed()
		if math.Abs(float64(back.Yaw-vp.Yaw)) > angleEpsilon ||
			math.Abs(float64(back.Pitch-vp.Pitch)) > angleEpsilon ||
			math.Abs(float64(back.Roll-vp.Roll)) > angleEpsilon {
			t.Errorf("Reversed round trip of %+v: got %+v", vp, back)
		}
	}
}

func TestViewpointReversedMatrixIsInverse(t *testing.T) {
	vp := Viewpoint{Yaw: 25, Pitch: 40, Roll: -15, FOV: 80}

	product := vp.Mat4().Mul4(vp.Reversed().Mat4())
	if !product.ApproxEqualThreshold(mgl32.Ident4(), angleEpsilon) {
		t.Errorf("Mat4 * Reversed().Mat4(): expected identity, got %v", product)
	}
}
