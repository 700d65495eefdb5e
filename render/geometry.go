package render

import (
	"fmt"
	"math"

	"video-gl/core"
)

// texCrop is the texture-coordinate rectangle of one plane, in [0,1] texture
// space of the (possibly padded) plane texture.
type texCrop struct {
	left   float32
	top    float32
	right  float32
	bottom float32
}

// geometry is one tessellated projection surface: vertex positions (3 floats
// per vertex), texture coordinates laid out plane-major (2 floats per vertex
// per plane) and a 16-bit triangle-list index array.
type geometry struct {
	vertices  []float32
	texCoords []float32
	indices   []uint16
	planes    int
}

func (g *geometry) vertexCount() int { return len(g.vertices) / 3 }

// planeTexCoords returns the texture-coordinate slice of one plane.
func (g *geometry) planeTexCoords(plane int) []float32 {
	n := g.vertexCount() * 2
	return g.texCoords[plane*n : (plane+1)*n]
}

// buildGeometry tessellates the projection surface for the given per-plane
// crop rectangles. padW and padH are the cubemap inter-face padding as a
// fraction of the frame dimensions; they are ignored by the other modes.
func buildGeometry(mode core.Projection, crops []texCrop, padW, padH float32) (*geometry, error) {
	switch mode {
	case core.ProjectionRectangular:
		return buildRectangle(crops), nil
	case core.ProjectionEquirectangular:
		return buildSphere(crops), nil
	case core.ProjectionCubemap:
		return buildCube(crops, padW, padH), nil
	}
	return nil, fmt.Errorf("%w: projection mode %d", ErrInvalidArgument, mode)
}

// buildRectangle is the flat-video quad: 4 vertices, 2 triangles, texture
// coordinates straight from the crop rectangle corners.
func buildRectangle(crops []texCrop) *geometry {
	g := &geometry{
		planes: len(crops),
		vertices: []float32{
			-1, 1, -1,
			-1, -1, -1,
			1, 1, -1,
			1, -1, -1,
		},
		indices: []uint16{
			0, 1, 2,
			2, 1, 3,
		},
	}

	g.texCoords = make([]float32, 0, len(crops)*4*2)
	for _, c := range crops {
		g.texCoords = append(g.texCoords,
			c.left, c.top,
			c.left, c.bottom,
			c.right, c.top,
			c.right, c.bottom,
		)
	}

	return g
}

// Sphere tessellation density. 128 bands each way keeps the vertex count
// (129×129 = 16641) within 16-bit index range.
const (
	sphereLatBands = 128
	sphereLonBands = 128
)

// buildSphere tessellates the unit sphere for equirectangular video with a
// fixed latitude/longitude grid. Texture coordinates advance proportionally to
// the latitude/longitude fraction, scaled into each plane's crop rectangle.
func buildSphere(crops []texCrop) *geometry {
	nbVertices := (sphereLatBands + 1) * (sphereLonBands + 1)
	nbIndices := sphereLatBands * sphereLonBands * 3 * 2

	g := &geometry{
		planes:    len(crops),
		vertices:  make([]float32, nbVertices*3),
		texCoords: make([]float32, len(crops)*nbVertices*2),
		indices:   make([]uint16, nbIndices),
	}

	for lat := 0; lat <= sphereLatBands; lat++ {
		theta := float64(lat) * math.Pi / sphereLatBands
		sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

		for lon := 0; lon <= sphereLonBands; lon++ {
			phi := float64(lon) * 2 * math.Pi / sphereLonBands
			sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

			x := float32(cosPhi * sinTheta)
			y := float32(cosTheta)
			z := float32(sinPhi * sinTheta)

			off := (lat*(sphereLonBands+1) + lon) * 3
			g.vertices[off] = sphereRadius * x
			g.vertices[off+1] = sphereRadius * y
			g.vertices[off+2] = sphereRadius * z

			for p, c := range crops {
				off := (p*nbVertices + lat*(sphereLonBands+1) + lon) * 2
				width := c.right - c.left
				height := c.bottom - c.top
				g.texCoords[off] = float32(lon) / sphereLonBands * width
				g.texCoords[off+1] = float32(lat) / sphereLatBands * height
			}
		}
	}

	for lat := 0; lat < sphereLatBands; lat++ {
		for lon := 0; lon < sphereLonBands; lon++ {
			first := lat*(sphereLonBands+1) + lon
			second := first + sphereLonBands + 1

			off := (lat*sphereLonBands + lon) * 3 * 2

			g.indices[off] = uint16(first)
			g.indices[off+1] = uint16(second)
			g.indices[off+2] = uint16(first + 1)

			g.indices[off+3] = uint16(second)
			g.indices[off+4] = uint16(second + 1)
			g.indices[off+5] = uint16(first + 1)
		}
	}

	return g
}

// buildCube tessellates the unit cube for cubemap video. The atlas is 4
// columns × 2 rows; padW/padH inset every face's texture rectangle so linear
// sampling never crosses into the neighboring face.
func buildCube(crops []texCrop, padW, padH float32) *geometry {
	g := &geometry{
		planes: len(crops),
		vertices: []float32{
			-1, 1, -1, // front
			-1, -1, -1,
			1, 1, -1,
			1, -1, -1,

			-1, 1, 1, // back
			-1, -1, 1,
			1, 1, 1,
			1, -1, 1,

			-1, 1, -1, // left
			-1, -1, -1,
			-1, 1, 1,
			-1, -1, 1,

			1, 1, -1, // right
			1, -1, -1,
			1, 1, 1,
			1, -1, 1,

			-1, -1, 1, // bottom
			-1, -1, -1,
			1, -1, 1,
			1, -1, -1,

			-1, 1, 1, // top
			-1, 1, -1,
			1, 1, 1,
			1, 1, -1,
		},
		indices: []uint16{
			0, 1, 2, 2, 1, 3, // front
			6, 7, 4, 4, 7, 5, // back
			10, 11, 8, 8, 11, 9, // left
			12, 13, 14, 14, 13, 15, // right
			18, 19, 16, 16, 19, 17, // bottom
			20, 21, 22, 22, 21, 23, // top
		},
	}

	g.texCoords = make([]float32, 0, len(crops)*24*2)
	for _, c := range crops {
		width := c.right - c.left
		height := c.bottom - c.top

		col := [4]float32{
			c.left,
			c.left + width*1/3,
			c.left + width*2/3,
			c.left + width,
		}
		row := [3]float32{
			c.top,
			c.top + height*1/2,
			c.top + height,
		}

		g.texCoords = append(g.texCoords,
			col[1]+padW, row[1]+padH, // front
			col[1]+padW, row[2]-padH,
			col[2]-padW, row[1]+padH,
			col[2]-padW, row[2]-padH,

			col[3]-padW, row[1]+padH, // back
			col[3]-padW, row[2]-padH,
			col[2]+padW, row[1]+padH,
			col[2]+padW, row[2]-padH,

			col[2]-padW, row[0]+padH, // left
			col[2]-padW, row[1]-padH,
			col[1]+padW, row[0]+padH,
			col[1]+padW, row[1]-padH,

			col[0]+padW, row[0]+padH, // right
			col[0]+padW, row[1]-padH,
			col[1]-padW, row[0]+padH,
			col[1]-padW, row[1]-padH,

			col[0]+padW, row[2]-padH, // bottom
			col[0]+padW, row[1]+padH,
			col[1]-padW, row[2]-padH,
			col[1]-padW, row[1]+padH,

			col[2]+padW, row[0]+padH, // top
			col[2]+padW, row[1]-padH,
			col[3]-padW, row[0]+padH,
			col[3]-padW, row[1]-padH,
		)
	}

	return g
}
