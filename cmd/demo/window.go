package main

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

// window wraps the GLFW window carrying the GL 2.1 context the demo renders
// into. All renderer calls must stay on the goroutine that created it.
type window struct {
	handle *glfw.Window
}

func newWindow(width, height int, title string) (*window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	handle, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	handle.MakeContextCurrent()
	glfw.SwapInterval(1)

	return &window{handle: handle}, nil
}

func (w *window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

func (w *window) PollEvents() {
	glfw.PollEvents()
}

func (w *window) SwapBuffers() {
	w.handle.SwapBuffers()
}

func (w *window) GetFramebufferSize() (int, int) {
	return w.handle.GetFramebufferSize()
}

func (w *window) IsKeyPressed(key glfw.Key) bool {
	return w.handle.GetKey(key) == glfw.Press
}

func (w *window) SetTitle(title string) {
	w.handle.SetTitle(title)
}

func (w *window) Destroy() {
	w.handle.Destroy()
	glfw.Terminate()
}
