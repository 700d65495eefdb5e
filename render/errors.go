package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument reports a caller error: a field of view outside the
// allowed range, an unsupported projection mode, or a bad configuration.
var ErrInvalidArgument = errors.New("invalid argument")

// ShaderError reports a failed shader compilation, with the compiler log.
type ShaderError struct {
	Stage string // "vertex" or "fragment"
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError reports a failed program link, with the linker log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program link failed: %s", strings.TrimSpace(e.Log))
}

// LocationError reports required uniforms or attributes that did not resolve
// to a location in the linked program. All failures are collected before the
// error is returned, so Missing lists every unresolved name.
type LocationError struct {
	Missing []string
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("shader program is missing locations: %s", strings.Join(e.Missing, ", "))
}
