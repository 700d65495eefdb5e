package render

import (
	"fmt"
	"strings"
)

// glslDefaultVersion targets the attribute/varying pipeline of GL 2.1.
// OpenGL ES 2 contexts use 100 instead.
const glslDefaultVersion = 120

// The vertex shader is assembled from structured fragments rather than one
// format string, so the declaration block and main body for each plane count
// can be verified independently.

// vertexShaderDeclarations returns the declaration lines of the vertex
// shader: one varying/attribute pair per texture plane, the vertex position
// attribute and the five matrix uniforms.
func vertexShaderDeclarations(planes int) []string {
	decls := make([]string, 0, 2*planes+6)
	for p := 0; p < planes; p++ {
		decls = append(decls,
			fmt.Sprintf("varying vec2 TexCoord%d;", p),
			fmt.Sprintf("attribute vec4 MultiTexCoord%d;", p),
		)
	}
	return append(decls,
		"attribute vec3 VertexPosition;",
		"uniform mat4 TransformMatrix;",
		"uniform mat4 OrientationMatrix;",
		"uniform mat4 ProjectionMatrix;",
		"uniform mat4 ZoomMatrix;",
		"uniform mat4 ViewMatrix;",
	)
}

// vertexShaderBody returns the statements of main(): one texture-coordinate
// assignment per plane, then the position transform.
func vertexShaderBody(planes int) []string {
	lines := make([]string, 0, planes+2)
	for p := 0; p < planes; p++ {
		lines = append(lines, fmt.Sprintf(
			" TexCoord%d = vec4(TransformMatrix * OrientationMatrix * MultiTexCoord%d).st;", p, p))
	}
	return append(lines,
		" gl_Position = ProjectionMatrix * ZoomMatrix * ViewMatrix",
		"               * vec4(VertexPosition, 1.0);",
	)
}

// vertexShaderSource assembles the complete vertex shader for the given GLSL
// version and plane count (1–3).
func vertexShaderSource(version, planes int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#version %d\n", version)
	for _, line := range vertexShaderDeclarations(planes) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("void main() {\n")
	for _, line := range vertexShaderBody(planes) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("}")
	return b.String()
}
