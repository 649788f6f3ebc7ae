package filament

import (
	"errors"
	"testing"

	"github.com/gogpu/filament/driver"
	"github.com/gogpu/filament/driver/noop"
)

func TestWithDriver(t *testing.T) {
	d := noop.New()
	var o engineOptions
	WithDriver(d)(&o)
	if o.driver != driver.Driver(d) {
		t.Errorf("WithDriver() driver = %v, want %v", o.driver, d)
	}
}

func TestWithDriverName(t *testing.T) {
	var o engineOptions
	WithDriverName(driver.DriverNoop)(&o)
	if o.driverName != driver.DriverNoop {
		t.Errorf("WithDriverName() name = %q, want %q", o.driverName, driver.DriverNoop)
	}
}

// TestNewEngineByName creates an engine through the registry.
func TestNewEngineByName(t *testing.T) {
	e, err := NewEngine(BackendNoop, WithDriverName(driver.DriverNoop))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	defer e.Release()

	if got := e.Driver().Name(); got != driver.DriverNoop {
		t.Errorf("Driver().Name() = %q, want %q", got, driver.DriverNoop)
	}
}

// WithDriver takes precedence over WithDriverName.
func TestWithDriverPrecedence(t *testing.T) {
	d := noop.New()
	e, err := NewEngine(BackendNoop, WithDriverName("does-not-exist"), WithDriver(d))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	defer e.Release()

	if got := d.Live(noop.KindEngine); got != 1 {
		t.Errorf("Live(Engine) = %d, want 1", got)
	}
}

func TestNewEngineBackend(t *testing.T) {
	tests := []struct {
		backend Backend
		wantErr bool
	}{
		{BackendDefault, false},
		{BackendOpenGL, false},
		{BackendVulkan, false},
		{BackendMetal, false},
		{BackendNoop, false},
		{Backend(42), true},
	}
	for _, tt := range tests {
		t.Run(tt.backend.String(), func(t *testing.T) {
			e, err := NewEngine(tt.backend, WithDriver(noop.New()))
			if tt.wantErr {
				if !errors.Is(err, ErrCreationFailed) {
					t.Errorf("NewEngine(%v) error = %v, want ErrCreationFailed", tt.backend, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewEngine(%v) error = %v", tt.backend, err)
			}
			e.Release()
		})
	}
}

func TestBackendString(t *testing.T) {
	tests := []struct {
		backend Backend
		want    string
	}{
		{BackendDefault, "Default"},
		{BackendOpenGL, "OpenGL"},
		{BackendVulkan, "Vulkan"},
		{BackendMetal, "Metal"},
		{BackendNoop, "Noop"},
		{Backend(9), "Backend(9)"},
	}
	for _, tt := range tests {
		if got := tt.backend.String(); got != tt.want {
			t.Errorf("Backend(%d).String() = %q, want %q", uint8(tt.backend), got, tt.want)
		}
	}
}
