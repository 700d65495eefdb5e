// The demo renders a synthetic animated test pattern through the full video
// pipeline: software interop, fragment shader assembly and the projection
// renderer, into a GLFW window with a GL 2.1 context.
//
// The -projection flag selects flat, 360 (equirectangular sphere) or cube
// (cubemap atlas) mapping; for the immersive modes the arrow keys steer the
// viewpoint and -/= adjust the field of view.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"video-gl/core"
	"video-gl/internal/glbackend"
	"video-gl/interop"
	"video-gl/render"
)

func main() {
	var (
		projFlag   = flag.String("projection", "flat", "projection mode: flat, 360 or cube")
		widthFlag  = flag.Int("width", 1280, "video frame width")
		heightFlag = flag.Int("height", 720, "video frame height")
		dumpFlag   = flag.Bool("dump-shaders", false, "log assembled shader sources")
	)
	flag.Parse()

	if err := run(*projFlag, *widthFlag, *heightFlag, *dumpFlag); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

func run(projName string, width, height int, dumpShaders bool) error {
	var projection core.Projection
	switch projName {
	case "flat":
		projection = core.ProjectionRectangular
	case "360":
		projection = core.ProjectionEquirectangular
	case "cube":
		projection = core.ProjectionCubemap
	default:
		return fmt.Errorf("unknown projection %q", projName)
	}

	win, err := newWindow(width, height, "video-gl demo")
	if err != nil {
		return err
	}
	defer win.Destroy()

	backend, err := glbackend.Open()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	log.Info("context ready", "gl", backend.Version())

	format := core.Format{
		PixelFormat:   core.PixFmtRGBA,
		Width:         uint32(width),
		Height:        uint32(height),
		VisibleWidth:  uint32(width),
		VisibleHeight: uint32(height),
		Projection:    projection,
	}

	sw, err := interop.NewSoftware(backend, format.PixelFormat)
	if err != nil {
		return err
	}
	frag, err := interop.NewFragmentShader(backend, format.PixelFormat, format.ColorSpace, 0)
	if err != nil {
		return err
	}

	fbWidth, fbHeight := win.GetFramebufferSize()
	r, err := render.New(render.Config{
		API:            backend,
		Interop:        sw,
		FragmentShader: frag,
		Format:         format,
		Logger:         log,
		SupportsNPOT:   true,
		DumpShaders:    dumpShaders,
		AspectRatio:    float32(fbWidth) / float32(fbHeight),
	})
	if err != nil {
		return err
	}
	defer r.Destroy()

	frames := newFrameSource(format)
	vp := core.DefaultViewpoint()

	frameCount := 0
	lastTitle := time.Now()
	lastFBWidth, lastFBHeight := fbWidth, fbHeight

	for !win.ShouldClose() {
		win.PollEvents()
		if win.IsKeyPressed(glfw.KeyEscape) {
			break
		}

		if w, h := win.GetFramebufferSize(); w != lastFBWidth || h != lastFBHeight {
			lastFBWidth, lastFBHeight = w, h
			if h > 0 {
				r.SetWindowAspectRatio(float32(w) / float32(h))
			}
		}

		if projection != core.ProjectionRectangular {
			steerViewpoint(win, &vp)
			if err := r.SetViewpoint(vp); err != nil {
				return err
			}
		}

		if err := r.Prepare(frames.Next()); err != nil {
			return err
		}
		if err := r.Draw(format.VisibleRect()); err != nil {
			return err
		}
		win.SwapBuffers()

		frameCount++
		if now := time.Now(); now.Sub(lastTitle) >= time.Second {
			win.SetTitle(fmt.Sprintf("video-gl demo | FPS: %d | fov %.0f°", frameCount, vp.FOV))
			frameCount = 0
			lastTitle = now
		}
	}

	return nil
}

// steerViewpoint applies per-frame key steering: arrows for yaw/pitch, comma
// and period for roll, minus and equal for fov, home to reset.
func steerViewpoint(win *window, vp *core.Viewpoint) {
	const (
		turnStep = 1.2
		fovStep  = 0.8
	)

	if win.IsKeyPressed(glfw.KeyLeft) {
		vp.Yaw -= turnStep
	}
	if win.IsKeyPressed(glfw.KeyRight) {
		vp.Yaw += turnStep
	}
	if win.IsKeyPressed(glfw.KeyUp) {
		vp.Pitch += turnStep
	}
	if win.IsKeyPressed(glfw.KeyDown) {
		vp.Pitch -= turnStep
	}
	if win.IsKeyPressed(glfw.KeyComma) {
		vp.Roll -= turnStep
	}
	if win.IsKeyPressed(glfw.KeyPeriod) {
		vp.Roll += turnStep
	}
	if win.IsKeyPressed(glfw.KeyMinus) {
		vp.FOV += fovStep
	}
	if win.IsKeyPressed(glfw.KeyEqual) {
		vp.FOV -= fovStep
	}
	if win.IsKeyPressed(glfw.KeyHome) {
		*vp = core.DefaultViewpoint()
	}

	if vp.FOV > core.FOVDegreesMax {
		vp.FOV = core.FOVDegreesMax
	}
	if vp.FOV < core.FOVDegreesMin {
		vp.FOV = core.FOVDegreesMin
	}
}
