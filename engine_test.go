package filament

import (
	"errors"
	"testing"

	"github.com/gogpu/filament/driver"
	"github.com/gogpu/filament/driver/noop"
)

// newTestEngine creates an engine on a fresh noop driver and releases it
// when the test ends.
func newTestEngine(t *testing.T, opts ...noop.Option) (*Engine, *noop.Driver) {
	t.Helper()
	d := noop.New(opts...)
	e, err := NewEngine(BackendNoop, WithDriver(d))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	t.Cleanup(e.Release)
	return e, d
}

func TestNewEngine(t *testing.T) {
	e, d := newTestEngine(t)

	if got := e.Backend(); got != BackendNoop {
		t.Errorf("Backend() = %v, want %v", got, BackendNoop)
	}
	if got := e.Driver(); got != driver.Driver(d) {
		t.Errorf("Driver() = %v, want the injected driver", got)
	}
	if got := d.Live(noop.KindEngine); got != 1 {
		t.Errorf("Live(Engine) = %d, want 1", got)
	}
	if e.ID() == 0 {
		t.Error("ID() = 0, want native address")
	}
}

func TestNewEngineFailure(t *testing.T) {
	d := noop.New(noop.WithFailing(noop.KindEngine))
	e, err := NewEngine(BackendNoop, WithDriver(d))
	if !errors.Is(err, ErrCreationFailed) {
		t.Fatalf("NewEngine() error = %v, want ErrCreationFailed", err)
	}
	if e != nil {
		t.Errorf("NewEngine() = %v, want nil", e)
	}
	if got := d.Destroyed(noop.KindEngine); got != 0 {
		t.Errorf("Destroyed(Engine) = %d, want 0", got)
	}
}

func TestNewEngineUnknownDriver(t *testing.T) {
	_, err := NewEngine(BackendDefault, WithDriverName("does-not-exist"))
	if !errors.Is(err, ErrCreationFailed) {
		t.Errorf("NewEngine() error = %v, want ErrCreationFailed", err)
	}
	if !errors.Is(err, driver.ErrUnavailable) {
		t.Errorf("NewEngine() error = %v, want ErrUnavailable in chain", err)
	}
}

func TestEngineCloneRelease(t *testing.T) {
	d := noop.New()
	e, err := NewEngine(BackendNoop, WithDriver(d))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	c := e.Clone()
	if !c.Equal(e) {
		t.Error("Clone().Equal(e) = false, want true")
	}

	e.Release()
	e.Release()
	if got := d.Destroyed(noop.KindEngine); got != 0 {
		t.Fatalf("Destroyed(Engine) after first owner = %d, want 0", got)
	}
	c.Release()
	if got := d.Destroyed(noop.KindEngine); got != 1 {
		t.Errorf("Destroyed(Engine) = %d, want 1", got)
	}
}

// The native engine outlives the caller's clone while objects created
// from it are alive.
func TestEngineDeferredTeardown(t *testing.T) {
	d := noop.New()
	e, err := NewEngine(BackendNoop, WithDriver(d))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	s, err := e.CreateScene()
	if err != nil {
		t.Fatalf("CreateScene() error = %v", err)
	}
	v, err := e.CreateView()
	if err != nil {
		t.Fatalf("CreateView() error = %v", err)
	}

	e.Release()
	if got := d.Live(noop.KindEngine); got != 1 {
		t.Fatalf("Live(Engine) with dependents = %d, want 1", got)
	}
	if got := s.Engine().Backend(); got != BackendNoop {
		t.Errorf("Scene.Engine().Backend() = %v, want %v", got, BackendNoop)
	}

	s.Release()
	if got := d.Live(noop.KindEngine); got != 1 {
		t.Errorf("Live(Engine) with one dependent = %d, want 1", got)
	}
	v.Release()
	if got := d.Live(noop.KindEngine); got != 0 {
		t.Errorf("Live(Engine) = %d, want 0", got)
	}
	if got := d.Destroyed(noop.KindScene); got != 1 {
		t.Errorf("Destroyed(Scene) = %d, want 1", got)
	}
}

func TestEngineUseAfterRelease(t *testing.T) {
	d := noop.New()
	e, err := NewEngine(BackendNoop, WithDriver(d))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	e.Release()

	tests := []struct {
		name string
		fn   func()
	}{
		{"Backend", func() { e.Backend() }},
		{"FlushAndWait", func() { e.FlushAndWait() }},
		{"Clone", func() { e.Clone() }},
		{"CreateScene", func() { _, _ = e.CreateScene() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPanics(t, "filament: use of released Engine", tt.fn)
		})
	}
}

func TestTextureFormatSupported(t *testing.T) {
	e, _ := newTestEngine(t)
	if !e.IsTextureFormatSupported(FormatRGBA8) {
		t.Error("IsTextureFormatSupported(RGBA8) = false, want true")
	}
}

// assertPanics fails t unless fn panics with want.
func assertPanics(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("no panic, want %q", want)
		}
		if got, _ := r.(string); got != want {
			t.Errorf("panic = %v, want %q", r, want)
		}
	}()
	fn()
}
