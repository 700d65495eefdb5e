package render

import (
	"errors"
	"math"
	"testing"

	"video-gl/core"
)

func fullCrop() texCrop {
	return texCrop{left: 0, top: 0, right: 1, bottom: 1}
}

func TestBuildGeometryUnknownProjection(t *testing.T) {
	_, err := buildGeometry(core.Projection(7), []texCrop{fullCrop()}, 0, 0)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func checkGeometry(t *testing.T, g *geometry, vertices, indices, planes int) {
	t.Helper()

	if got := g.vertexCount(); got != vertices {
		t.Errorf("expected %d vertices, got %d", vertices, got)
	}
	if len(g.indices) != indices {
		t.Errorf("expected %d indices, got %d", indices, len(g.indices))
	}
	if len(g.texCoords) != planes*vertices*2 {
		t.Errorf("expected %d texture coordinates, got %d", planes*vertices*2, len(g.texCoords))
	}
	for i, idx := range g.indices {
		if int(idx) >= vertices {
			t.Fatalf("index %d out of range: %d >= %d", i, idx, vertices)
		}
	}
	if len(g.indices)%3 != 0 {
		t.Errorf("index count %d is not a whole number of triangles", len(g.indices))
	}
}

func TestBuildRectangle(t *testing.T) {
	crop := texCrop{left: 0.1, top: 0.2, right: 0.8, bottom: 0.9}
	g := buildRectangle([]texCrop{crop})

	checkGeometry(t, g, 4, 6, 1)

	// Vertex order is top-left, bottom-left, top-right, bottom-right; texture
	// coordinates come straight from the crop corners.
	want := []float32{
		crop.left, crop.top,
		crop.left, crop.bottom,
		crop.right, crop.top,
		crop.right, crop.bottom,
	}
	for i, v := range want {
		if g.texCoords[i] != v {
			t.Errorf("texCoords[%d]: expected %v, got %v", i, v, g.texCoords[i])
		}
	}
}

func TestBuildRectanglePerPlaneCrops(t *testing.T) {
	crops := []texCrop{
		{left: 0, top: 0, right: 1, bottom: 1},
		{left: 0, top: 0, right: 0.5, bottom: 0.5},
	}
	g := buildRectangle(crops)

	checkGeometry(t, g, 4, 6, 2)

	first := g.planeTexCoords(0)
	second := g.planeTexCoords(1)
	if len(first) != 8 || len(second) != 8 {
		t.Fatalf("expected 8 coordinates per plane, got %d and %d", len(first), len(second))
	}
	// Bottom-right corner of each plane reflects its own crop.
	if first[6] != 1 || first[7] != 1 {
		t.Errorf("plane 0 bottom-right: expected (1,1), got (%v,%v)", first[6], first[7])
	}
	if second[6] != 0.5 || second[7] != 0.5 {
		t.Errorf("plane 1 bottom-right: expected (0.5,0.5), got (%v,%v)", second[6], second[7])
	}
}

func TestBuildSphere(t *testing.T) {
	g := buildSphere([]texCrop{fullCrop()})

	checkGeometry(t, g, 16641, 98304, 1)

	// Every vertex lies on the sphere surface.
	for i := 0; i < len(g.vertices); i += 3 {
		x, y, z := g.vertices[i], g.vertices[i+1], g.vertices[i+2]
		radius := math.Sqrt(float64(x*x + y*y + z*z))
		if math.Abs(radius-sphereRadius) > 0.0001 {
			t.Fatalf("vertex %d: expected radius %v, got %v", i/3, float64(sphereRadius), radius)
		}
	}
}

func TestBuildSphereTexCoordRange(t *testing.T) {
	crop := texCrop{left: 0, top: 0, right: 0.5, bottom: 1}
	g := buildSphere([]texCrop{crop})

	var maxU, maxV float32
	for i := 0; i < len(g.texCoords); i += 2 {
		if g.texCoords[i] > maxU {
			maxU = g.texCoords[i]
		}
		if g.texCoords[i+1] > maxV {
			maxV = g.texCoords[i+1]
		}
	}
	if math.Abs(float64(maxU-0.5)) > 0.0001 {
		t.Errorf("expected maximum u of 0.5 (crop width), got %v", maxU)
	}
	if math.Abs(float64(maxV-1)) > 0.0001 {
		t.Errorf("expected maximum v of 1 (crop height), got %v", maxV)
	}
}

func TestBuildCube(t *testing.T) {
	g := buildCube([]texCrop{fullCrop()}, 0, 0)
	checkGeometry(t, g, 24, 36, 1)

	// Unpadded full crop: all texture coordinates stay on the 4x2 atlas grid.
	for i := 0; i < len(g.texCoords); i += 2 {
		u, v := g.texCoords[i], g.texCoords[i+1]
		if u < 0 || u > 1 || v < 0 || v > 1 {
			t.Fatalf("texCoord %d out of range: (%v,%v)", i/2, u, v)
		}
	}
}

func TestBuildCubePaddingInsetsFaces(t *testing.T) {
	const padW, padH = 0.01, 0.02
	padded := buildCube([]texCrop{fullCrop()}, padW, padH)
	plain := buildCube([]texCrop{fullCrop()}, 0, 0)

	// Every padded coordinate moved inward by exactly the padding amount.
	for i := 0; i < len(plain.texCoords); i += 2 {
		du := math.Abs(float64(padded.texCoords[i] - plain.texCoords[i]))
		dv := math.Abs(float64(padded.texCoords[i+1] - plain.texCoords[i+1]))
		if math.Abs(du-padW) > 0.0001 {
			t.Fatalf("texCoord %d: expected u inset %v, got %v", i/2, float64(padW), du)
		}
		if math.Abs(dv-padH) > 0.0001 {
			t.Fatalf("texCoord %d: expected v inset %v, got %v", i/2, float64(padH), dv)
		}
	}
}

func BenchmarkBuildSphere(b *testing.B) {
	crops := []texCrop{fullCrop()}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := buildGeometry(core.ProjectionEquirectangular, crops, 0, 0); err != nil {
			b.Fatal(err)
		}
	}
}
