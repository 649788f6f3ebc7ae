package filament

import (
	"testing"
	"time"

	"github.com/gogpu/filament/driver"
)

// newRenderableEntity creates an entity carrying a one-triangle renderable.
func newRenderableEntity(t *testing.T, e *Engine) Entity {
	t.Helper()
	vb := must(triangleVertices().Build(e))(t)
	t.Cleanup(vb.Release)
	ib := must(NewIndexBufferBuilder().IndexCount(3).BufferType(IndexUShort).Build(e))(t)
	t.Cleanup(ib.Release)

	entity := e.EntityManager().Create()
	err := NewRenderableBuilder(1).
		Geometry(0, PrimitiveTriangles, vb, ib).
		BoundingBox(Box{HalfExtent: [3]float32{1, 1, 1}}).
		Build(e, entity)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	t.Cleanup(func() { e.RenderableManager().Destroy(entity) })
	return entity
}

func TestSceneAddRemove(t *testing.T) {
	e, _ := newTestEngine(t)
	s := must(e.CreateScene())(t)
	t.Cleanup(s.Release)
	entity := newRenderableEntity(t, e)

	if !s.IsEmpty() {
		t.Fatalf("IsEmpty() = false, want true")
	}
	before := s.Len()

	s.Add(entity)
	if got := s.Len(); got != before+1 {
		t.Errorf("Len() after Add = %d, want %d", got, before+1)
	}
	if !s.Has(entity) {
		t.Error("Has() = false, want true")
	}

	s.Add(entity)
	if got := s.Len(); got != before+1 {
		t.Errorf("Len() after second Add = %d, want %d", got, before+1)
	}

	s.Remove(entity)
	if got := s.Len(); got != before {
		t.Errorf("Len() after Remove = %d, want %d", got, before)
	}
	if s.Has(entity) {
		t.Error("Has() after Remove = true, want false")
	}
}

func TestSceneAddEntities(t *testing.T) {
	e, _ := newTestEngine(t)
	s := must(e.CreateScene())(t)
	t.Cleanup(s.Release)

	a, b := newRenderableEntity(t, e), newRenderableEntity(t, e)
	plain := e.EntityManager().Create()
	s.AddEntities([]Entity{a, b, plain})
	s.AddEntities(nil)

	if got := s.RenderableCount(); got != 2 {
		t.Errorf("RenderableCount() = %d, want 2", got)
	}
	if got := s.LightCount(); got != 0 {
		t.Errorf("LightCount() = %d, want 0", got)
	}
	if !s.Has(plain) {
		t.Error("Has(plain) = false, want true")
	}
}

func TestViewSettings(t *testing.T) {
	e, d := newTestEngine(t)
	v := must(e.CreateView())(t)
	t.Cleanup(v.Release)
	s := must(e.CreateScene())(t)
	t.Cleanup(s.Release)
	c := must(e.CreateCamera(e.EntityManager().Create()))(t)
	t.Cleanup(c.Release)

	v.SetScene(s)
	v.SetCamera(c)
	gotScene, gotCamera := d.ViewAttachments(v.h.raw())
	if gotScene != s.h.raw() || gotCamera != c.h.raw() {
		t.Errorf("ViewAttachments() = %#x, %#x; want %#x, %#x", gotScene, gotCamera, s.ID(), c.ID())
	}
	v.SetScene(nil)
	if gotScene, _ := d.ViewAttachments(v.h.raw()); gotScene != 0 {
		t.Errorf("ViewAttachments() scene after SetScene(nil) = %#x, want 0", gotScene)
	}

	vp := Viewport{Left: 10, Bottom: 20, Width: 640, Height: 480}
	v.SetViewport(vp)
	if got := v.Viewport(); got != vp {
		t.Errorf("Viewport() = %+v, want %+v", got, vp)
	}

	v.SetName("main view")
	if got := v.Name(); got != "main view" {
		t.Errorf("Name() = %q, want %q", got, "main view")
	}

	v.SetAmbientOcclusion(AmbientOcclusionSSAO)
	if got := v.AmbientOcclusion(); got != AmbientOcclusionSSAO {
		t.Errorf("AmbientOcclusion() = %v, want %v", got, AmbientOcclusionSSAO)
	}
	ao := AmbientOcclusionOptions{Radius: 0.3, Bias: 0.005, Power: 1, Resolution: 0.5, Intensity: 1, Quality: QualityHigh}
	v.SetAmbientOcclusionOptions(ao)
	if got := v.AmbientOcclusionOptions(); got != ao {
		t.Errorf("AmbientOcclusionOptions() = %+v, want %+v", got, ao)
	}

	v.SetAntiAliasing(AntiAliasingNone)
	if got := v.AntiAliasing(); got != AntiAliasingNone {
		t.Errorf("AntiAliasing() = %v, want %v", got, AntiAliasingNone)
	}
	v.SetDithering(DitheringNone)
	if got := v.Dithering(); got != DitheringNone {
		t.Errorf("Dithering() = %v, want %v", got, DitheringNone)
	}
	v.SetToneMapping(ToneMappingLinear)
	if got := v.ToneMapping(); got != ToneMappingLinear {
		t.Errorf("ToneMapping() = %v, want %v", got, ToneMappingLinear)
	}
}

func TestRendererFrame(t *testing.T) {
	e, d := newTestEngine(t)
	r := must(e.CreateRenderer())(t)
	t.Cleanup(r.Release)
	sc := must(e.CreateHeadlessSwapChain(320, 240, 0))(t)
	t.Cleanup(sc.Release)
	v := must(e.CreateView())(t)
	t.Cleanup(v.Release)

	r.SetClearOptions(DefaultClearOptions())
	r.SetDisplayInfo(DisplayInfo{RefreshRate: 120, PresentationDeadline: 2 * time.Millisecond})
	r.SetFrameRateOptions(FrameRateOptions{HeadRoomRatio: 0.1, ScaleRate: 0.25, History: 9, Interval: 2})

	for range 3 {
		if !r.BeginFrame(sc, 0) {
			t.Fatal("BeginFrame() = false, want true")
		}
		r.Render(v)
		r.CopyFrame(sc, sc.Viewport(), sc.Viewport(), CopyFrameCommit)
		r.EndFrame()
	}

	stats := d.RendererStats(r.h.raw())
	if stats.Frames != 3 || stats.ViewsRendered != 3 || stats.Copies != 3 {
		t.Errorf("RendererStats() = %d frames, %d views, %d copies; want 3 each",
			stats.Frames, stats.ViewsRendered, stats.Copies)
	}
	wantClear := driver.ClearOptions{ClearColor: [4]float32{0, 0, 1, 1}, Clear: true, Discard: true}
	if stats.Clear != wantClear {
		t.Errorf("Clear = %+v, want %+v", stats.Clear, wantClear)
	}
	wantDisplay := driver.DisplayInfo{RefreshRate: 120, PresentationDeadlineNanos: 2_000_000}
	if stats.Display != wantDisplay {
		t.Errorf("Display = %+v, want %+v", stats.Display, wantDisplay)
	}
	if stats.FrameRate.History != 9 || stats.FrameRate.Interval != 2 {
		t.Errorf("FrameRate = %+v, want History 9 and Interval 2", stats.FrameRate)
	}

	r.ResetUserTime()
	if got := r.UserTime(); got < 0 {
		t.Errorf("UserTime() = %v, want >= 0", got)
	}
}
