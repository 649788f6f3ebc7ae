package filament

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/filament/driver/noop"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestNopHandler_Handle(t *testing.T) {
	h := nopHandler{}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
}

func TestNopHandler_WithAttrsAndGroup(t *testing.T) {
	h := nopHandler{}
	if got := h.WithAttrs([]slog.Attr{slog.String("key", "val")}); got != (nopHandler{}) {
		t.Errorf("nopHandler.WithAttrs() returned %T, want nopHandler", got)
	}
	if got := h.WithGroup("group"); got != (nopHandler{}) {
		t.Errorf("nopHandler.WithGroup() returned %T, want nopHandler", got)
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	SetLogger(custom)

	if got := Logger(); got != custom {
		t.Fatal("Logger() did not return the custom logger set via SetLogger")
	}

	e, _ := newTestEngine(t)
	s := must(e.CreateScene())(t)
	s.Release()

	out := buf.String()
	for _, want := range []string{"filament: create", "filament: destroy", "kind=Scene"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

// loggingDriver records the loggers it is given.
type loggingDriver struct {
	*noop.Driver

	mu     sync.Mutex
	logger *slog.Logger
}

func (d *loggingDriver) SetLogger(l *slog.Logger) {
	d.mu.Lock()
	d.logger = l
	d.mu.Unlock()
	d.Driver.SetLogger(l)
}

func (d *loggingDriver) current() *slog.Logger {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.logger
}

func TestLoggerPropagatesToDriver(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	before := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(before)

	d := &loggingDriver{Driver: noop.New()}
	e, err := NewEngine(BackendNoop, WithDriver(d))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if got := d.current(); got != before {
		t.Error("NewEngine did not hand the current logger to the driver")
	}

	after := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(after)
	if got := d.current(); got != after {
		t.Error("SetLogger did not propagate to the driver of a live engine")
	}

	e.Release()
	SetLogger(before)
	if got := d.current(); got != after {
		t.Error("SetLogger reached the driver of a destroyed engine")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	e, _ := newTestEngine(t)

	var wg sync.WaitGroup
	const goroutines = 100

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
			}
			l.Debug("concurrent read")
		}()
	}

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.DiscardHandler))
			SetLogger(nil)
		}()
	}

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := e.CreateScene()
			if err != nil {
				t.Error(err)
				return
			}
			s.Release()
		}()
	}

	wg.Wait()
}

func BenchmarkLoggerLoad(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		l := Logger()
		_ = l
	}
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
