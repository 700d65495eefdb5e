package render

import (
	"fmt"

	"video-gl/glapi"
)

// maxPlanes is the most texture planes any supported pixel format carries.
const maxPlanes = 3

// uniformLocations are the renderer's own uniform slots; the fragment shader
// resolves its format-specific ones through its FetchLocations hook.
type uniformLocations struct {
	TransformMatrix   int32
	OrientationMatrix int32
	ProjectionMatrix  int32
	ViewMatrix        int32
	ZoomMatrix        int32
}

type attribLocations struct {
	VertexPosition int32
	// MultiTexCoord holds one attribute per plane; entries past the plane
	// count are -1 (the compiler may optimize unused attributes out).
	MultiTexCoord [maxPlanes]int32
}

func (r *Renderer) compileShader(stage string, shaderType uint32, source string) (uint32, error) {
	shader := r.api.CreateShader(shaderType)
	r.api.ShaderSource(shader, source)
	r.api.CompileShader(shader)

	// Surface non-trivial compiler messages even on success.
	if infoLog := r.api.ShaderInfoLog(shader); len(infoLog) > 1 {
		r.log.Warn("shader compiler message", "stage", stage, "log", infoLog)
	}

	if r.api.GetShaderParameter(shader, glapi.CompileStatus) == glapi.False {
		infoLog := r.api.ShaderInfoLog(shader)
		r.api.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage, Log: infoLog}
	}
	return shader, nil
}

// linkProgram builds the vertex shader for the interop's plane count, links
// it with the fragment shader source and resolves all locations. On any
// failure the shaders and the partially created program are destroyed and the
// renderer's program handle stays zero.
func (r *Renderer) linkProgram() error {
	vertexSrc := vertexShaderSource(r.glslVersion, r.interop.TexCount())
	if r.dumpShaders {
		r.log.Debug("vertex shader", "source", vertexSrc)
		r.log.Debug("fragment shader", "source", r.frag.Source())
	}

	vertex, err := r.compileShader("vertex", glapi.VertexShader, vertexSrc)
	if err != nil {
		return err
	}
	fragment, err := r.compileShader("fragment", glapi.FragmentShader, r.frag.Source())
	if err != nil {
		r.api.DeleteShader(vertex)
		return err
	}

	program := r.api.CreateProgram()
	r.api.AttachShader(program, fragment)
	r.api.AttachShader(program, vertex)
	r.api.LinkProgram(program)

	r.api.DeleteShader(vertex)
	r.api.DeleteShader(fragment)

	if infoLog := r.api.ProgramInfoLog(program); len(infoLog) > 1 {
		r.log.Warn("program linker message", "log", infoLog)
	}
	if r.api.GetProgramParameter(program, glapi.LinkStatus) == glapi.False {
		infoLog := r.api.ProgramInfoLog(program)
		r.api.DeleteProgram(program)
		return &LinkError{Log: infoLog}
	}

	if err := r.fetchLocations(program); err != nil {
		r.api.DeleteProgram(program)
		return err
	}
	if err := r.frag.FetchLocations(program); err != nil {
		r.api.DeleteProgram(program)
		return fmt.Errorf("fragment shader locations: %w", err)
	}

	r.program = program
	return nil
}

// fetchLocations resolves the renderer's uniform and attribute locations from
// a static descriptor table. Every required entry is probed and all failures
// are collected into a single LocationError rather than aborting at the first.
func (r *Renderer) fetchLocations(program uint32) error {
	planes := r.interop.TexCount()

	descs := []struct {
		name     string
		dst      *int32
		attrib   bool
		required bool
	}{
		{"TransformMatrix", &r.uloc.TransformMatrix, false, true},
		{"OrientationMatrix", &r.uloc.OrientationMatrix, false, true},
		{"ProjectionMatrix", &r.uloc.ProjectionMatrix, false, true},
		{"ViewMatrix", &r.uloc.ViewMatrix, false, true},
		{"ZoomMatrix", &r.uloc.ZoomMatrix, false, true},
		{"VertexPosition", &r.aloc.VertexPosition, true, true},
		{"MultiTexCoord0", &r.aloc.MultiTexCoord[0], true, true},
		{"MultiTexCoord1", &r.aloc.MultiTexCoord[1], true, planes > 1},
		{"MultiTexCoord2", &r.aloc.MultiTexCoord[2], true, planes > 2},
	}

	var missing []string
	for _, d := range descs {
		if !d.required {
			*d.dst = -1
			continue
		}
		if d.attrib {
			*d.dst = r.api.GetAttribLocation(program, d.name)
		} else {
			*d.dst = r.api.GetUniformLocation(program, d.name)
		}
		if *d.dst == -1 {
			missing = append(missing, d.name)
		}
	}
	if missing != nil {
		err := &LocationError{Missing: missing}
		r.log.Error("unable to resolve shader locations", "missing", missing)
		return err
	}
	return nil
}
