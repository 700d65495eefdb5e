package render

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"video-gl/core"
	"video-gl/glapi"
)

// stubInterop is a minimal Interop for renderer tests: full-resolution planes,
// renderer-managed textures, optional failure injection.
type stubInterop struct {
	planes    int
	transform *mgl32.Mat4
	allocErr  error

	api     glapi.API
	closed  bool
	updates int
}

func (s *stubInterop) TexCount() int     { return s.planes }
func (s *stubInterop) TexTarget() uint32 { return glapi.Texture2D }

func (s *stubInterop) TexScale(plane int) (w, h core.Rational) {
	return core.Rational{Num: 1, Den: 1}, core.Rational{Num: 1, Den: 1}
}

func (s *stubInterop) HandlesTextureGen() bool { return false }

func (s *stubInterop) AllocTextures(widths, heights []int32) ([]uint32, error) {
	if s.allocErr != nil {
		return nil, s.allocErr
	}
	return s.api.GenTextures(len(widths)), nil
}

func (s *stubInterop) UpdateTextures(textures []uint32, widths, heights []int32, pic *core.Picture) error {
	s.updates++
	return nil
}

func (s *stubInterop) TransformMatrix() *mgl32.Mat4 { return s.transform }
func (s *stubInterop) Close()                       { s.closed = true }

// stubFrag is a minimal FragmentShader with an injectable location failure.
type stubFrag struct {
	fetchErr error
	prepared int
}

func (s *stubFrag) Source() string { return "void main() { gl_FragColor = vec4(1.0); }" }

func (s *stubFrag) FetchLocations(program uint32) error { return s.fetchErr }

func (s *stubFrag) PrepareDraw(texWidths, texHeights []int32) { s.prepared++ }

func flatFormat() core.Format {
	return core.Format{
		Width:         1920,
		Height:        1080,
		VisibleWidth:  1920,
		VisibleHeight: 1080,
	}
}

func newTestRenderer(t *testing.T, fake *glapi.Fake, format core.Format) (*Renderer, *stubInterop, *stubFrag) {
	t.Helper()

	it := &stubInterop{planes: 1, api: fake}
	frag := &stubFrag{}
	r, err := New(Config{
		API:            fake,
		Interop:        it,
		FragmentShader: frag,
		Format:         format,
		SupportsNPOT:   true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r, it, frag
}

func TestNewRejectsBadConfig(t *testing.T) {
	fake := glapi.NewFake()
	it := &stubInterop{planes: 1, api: fake}
	frag := &stubFrag{}

	cases := []struct {
		name string
		cfg  Config
	}{
		{"nil API", Config{Interop: it, FragmentShader: frag, Format: flatFormat()}},
		{"nil interop", Config{API: fake, FragmentShader: frag, Format: flatFormat()}},
		{"nil fragment shader", Config{API: fake, Interop: it, Format: flatFormat()}},
		{"zero dimensions", Config{API: fake, Interop: it, FragmentShader: frag}},
		{"zero planes", Config{API: fake, Interop: &stubInterop{planes: 0, api: fake}, FragmentShader: frag, Format: flatFormat()}},
		{"too many planes", Config{API: fake, Interop: &stubInterop{planes: 4, api: fake}, FragmentShader: frag, Format: flatFormat()}},
		{"fov too wide", Config{API: fake, Interop: it, FragmentShader: frag, Format: flatFormat(), Viewpoint: core.Viewpoint{FOV: 170}}},
	}

	for _, tc := range cases {
		if _, err := New(tc.cfg); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", tc.name, err)
		}
	}
}

func TestNewUnwindsOnCompileFailure(t *testing.T) {
	fake := glapi.NewFake()
	fake.FailCompile = true
	fake.CompileLog = "0:1: syntax error"

	it := &stubInterop{planes: 1, api: fake}
	_, err := New(Config{API: fake, Interop: it, FragmentShader: &stubFrag{}, Format: flatFormat()})

	var shaderErr *ShaderError
	if !errors.As(err, &shaderErr) {
		t.Fatalf("expected *ShaderError, got %v", err)
	}
	if shaderErr.Log != "0:1: syntax error" {
		t.Errorf("expected compiler log in error, got %q", shaderErr.Log)
	}
	if len(fake.Shaders) != 0 || len(fake.Programs) != 0 {
		t.Errorf("expected no live shader objects, got %d shaders %d programs",
			len(fake.Shaders), len(fake.Programs))
	}
	if !it.closed {
		t.Error("expected interop closed after failed construction")
	}
}

func TestNewUnwindsOnLinkFailure(t *testing.T) {
	fake := glapi.NewFake()
	fake.FailLink = true
	fake.LinkLog = "attribute mismatch"

	it := &stubInterop{planes: 1, api: fake}
	_, err := New(Config{API: fake, Interop: it, FragmentShader: &stubFrag{}, Format: flatFormat()})

	var linkErr *LinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("expected *LinkError, got %v", err)
	}
	if len(fake.Programs) != 0 {
		t.Errorf("expected no live programs, got %d", len(fake.Programs))
	}
	if !it.closed {
		t.Error("expected interop closed after failed construction")
	}
}

func TestNewCollectsAllMissingLocations(t *testing.T) {
	fake := glapi.NewFake()
	fake.MissingUniforms["ProjectionMatrix"] = true
	fake.MissingUniforms["ZoomMatrix"] = true
	fake.MissingAttribs["VertexPosition"] = true

	it := &stubInterop{planes: 1, api: fake}
	_, err := New(Config{API: fake, Interop: it, FragmentShader: &stubFrag{}, Format: flatFormat()})

	var locErr *LocationError
	if !errors.As(err, &locErr) {
		t.Fatalf("expected *LocationError, got %v", err)
	}
	if len(locErr.Missing) != 3 {
		t.Errorf("expected all 3 missing names collected, got %v", locErr.Missing)
	}
	if len(fake.Programs) != 0 {
		t.Errorf("expected no live programs, got %d", len(fake.Programs))
	}
}

func TestNewUnwindsOnTextureAllocFailure(t *testing.T) {
	fake := glapi.NewFake()
	allocErr := errors.New("out of texture memory")
	it := &stubInterop{planes: 1, api: fake, allocErr: allocErr}

	_, err := New(Config{API: fake, Interop: it, FragmentShader: &stubFrag{}, Format: flatFormat()})
	if !errors.Is(err, allocErr) {
		t.Fatalf("expected wrapped alloc error, got %v", err)
	}
	if len(fake.Programs) != 0 {
		t.Errorf("expected program deleted after alloc failure, got %d live", len(fake.Programs))
	}
	if !it.closed {
		t.Error("expected interop closed after failed construction")
	}
}

func TestPrepareForwardsToInterop(t *testing.T) {
	fake := glapi.NewFake()
	r, it, _ := newTestRenderer(t, fake, flatFormat())
	defer r.Destroy()

	pic := &core.Picture{Format: flatFormat(), Planes: []core.Plane{{}}}
	if err := r.Prepare(pic); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if it.updates != 1 {
		t.Errorf("expected one interop update, got %d", it.updates)
	}
}

func TestDrawCachesGeometryAcrossFrames(t *testing.T) {
	fake := glapi.NewFake()
	format := flatFormat()
	r, _, frag := newTestRenderer(t, fake, format)
	defer r.Destroy()

	source := format.VisibleRect()
	if err := r.Draw(source); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// One plane: texture coordinates, vertices and indices.
	uploads := fake.BufferUploads
	if uploads != 3 {
		t.Fatalf("expected 3 buffer uploads for first draw, got %d", uploads)
	}
	if fake.LastDrawCount != 6 {
		t.Errorf("expected 6 indices for flat video, got %d", fake.LastDrawCount)
	}

	if err := r.Draw(source); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if fake.BufferUploads != uploads {
		t.Errorf("identical source must reuse geometry, uploads %d -> %d", uploads, fake.BufferUploads)
	}

	cropped := core.Rect{X: 8, Y: 8, Width: 640, Height: 360}
	if err := r.Draw(cropped); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if fake.BufferUploads != uploads*2 {
		t.Errorf("changed source must re-upload geometry, got %d uploads", fake.BufferUploads)
	}

	if fake.DrawCalls != 3 {
		t.Errorf("expected 3 draw calls, got %d", fake.DrawCalls)
	}
	if frag.prepared != 3 {
		t.Errorf("expected fragment shader prepared per draw, got %d", frag.prepared)
	}
}

func TestDrawRejectsUnknownProjection(t *testing.T) {
	fake := glapi.NewFake()
	format := flatFormat()
	format.Projection = core.Projection(42)
	r, _, _ := newTestRenderer(t, fake, format)
	defer r.Destroy()

	if err := r.Draw(format.VisibleRect()); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if fake.DrawCalls != 0 {
		t.Errorf("expected no draw call after geometry failure, got %d", fake.DrawCalls)
	}
}

func TestDrawUploadsInteropTransform(t *testing.T) {
	fake := glapi.NewFake()
	transform := mgl32.Translate3D(0.25, 0, 0)

	it := &stubInterop{planes: 1, api: fake, transform: &transform}
	r, err := New(Config{
		API:            fake,
		Interop:        it,
		FragmentShader: &stubFrag{},
		Format:         flatFormat(),
		SupportsNPOT:   true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Destroy()

	if err := r.Draw(flatFormat().VisibleRect()); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	loc := fake.UniformLocs["TransformMatrix"]
	if got := fake.Matrices[loc]; got != transform {
		t.Errorf("TransformMatrix: expected %v, got %v", transform, got)
	}
}

func TestDestroyReleasesEverything(t *testing.T) {
	fake := glapi.NewFake()
	r, it, _ := newTestRenderer(t, fake, flatFormat())

	if err := r.Draw(flatFormat().VisibleRect()); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	r.Destroy()

	if len(fake.Buffers) != 0 {
		t.Errorf("expected all buffers deleted, %d live", len(fake.Buffers))
	}
	if len(fake.Textures) != 0 {
		t.Errorf("expected all textures deleted, %d live", len(fake.Textures))
	}
	if len(fake.Programs) != 0 {
		t.Errorf("expected program deleted, %d live", len(fake.Programs))
	}
	if !it.closed {
		t.Error("expected interop closed")
	}

	// Idempotent.
	r.Destroy()
}

func TestAlignPOT(t *testing.T) {
	cases := []struct{ in, out int32 }{
		{1, 1}, {2, 2}, {3, 4}, {640, 1024}, {1024, 1024}, {1080, 2048}, {1920, 2048},
	}
	for _, tc := range cases {
		if got := alignPOT(tc.in); got != tc.out {
			t.Errorf("alignPOT(%d): expected %d, got %d", tc.in, tc.out, got)
		}
	}
}
