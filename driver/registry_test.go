package driver_test

import (
	"errors"
	"slices"
	"testing"
	"unsafe"

	"github.com/gogpu/filament/driver"
	"github.com/gogpu/filament/driver/noop"
)

func TestRegistryNoopRegistered(t *testing.T) {
	if !driver.IsRegistered(driver.DriverNoop) {
		t.Fatal("noop driver should be registered on import")
	}
	if !slices.Contains(driver.Available(), driver.DriverNoop) {
		t.Errorf("Available() = %v, want it to contain %q", driver.Available(), driver.DriverNoop)
	}
	d := driver.Get(driver.DriverNoop)
	if d == nil {
		t.Fatal("Get(noop) returned nil")
	}
	if d.Name() != driver.DriverNoop {
		t.Errorf("Name() = %q, want %q", d.Name(), driver.DriverNoop)
	}
}

func TestRegistryGetReturnsFreshInstances(t *testing.T) {
	a := driver.Get(driver.DriverNoop)
	b := driver.Get(driver.DriverNoop)
	if a == b {
		t.Error("Get(noop) returned the same instance twice")
	}
}

func TestRegistryDefaultSkipsNilFactories(t *testing.T) {
	const name = "test-nil"
	driver.Register(name, func() driver.Driver { return nil })
	t.Cleanup(func() { driver.Unregister(name) })

	if d := driver.Get(name); d != nil {
		t.Errorf("Get(%q) = %v, want nil", name, d)
	}
	d := driver.Default()
	if d == nil {
		t.Fatal("Default() returned nil with noop registered")
	}
}

func TestRegistryUnregister(t *testing.T) {
	const name = "test-unregister"
	driver.Register(name, func() driver.Driver { return noop.New() })
	if !driver.IsRegistered(name) {
		t.Fatalf("IsRegistered(%q) = false after Register", name)
	}
	driver.Unregister(name)
	if driver.IsRegistered(name) {
		t.Errorf("IsRegistered(%q) = true after Unregister", name)
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr bool
	}{
		{"default", "", false},
		{"noop", driver.DriverNoop, false},
		{"unknown", "does-not-exist", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := driver.Open(tt.driver)
			if tt.wantErr {
				if !errors.Is(err, driver.ErrUnavailable) {
					t.Errorf("Open(%q) error = %v, want ErrUnavailable", tt.driver, err)
				}
				var ue *driver.UnavailableError
				if !errors.As(err, &ue) || ue.Name != tt.driver {
					t.Errorf("Open(%q) error = %#v, want UnavailableError{%q}", tt.driver, err, tt.driver)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open(%q) error = %v", tt.driver, err)
			}
			if d == nil {
				t.Fatalf("Open(%q) returned nil driver", tt.driver)
			}
		})
	}
}

func TestBufferDescriptorRelease(t *testing.T) {
	data := []byte{1, 2, 3}
	var gotPtr unsafe.Pointer
	var gotSize, gotUser uintptr
	calls := 0
	desc := driver.BufferDescriptor{
		Buffer: unsafe.Pointer(&data[0]),
		Size:   uintptr(len(data)),
		Callback: func(buffer unsafe.Pointer, size uintptr, user uintptr) {
			calls++
			gotPtr, gotSize, gotUser = buffer, size, user
		},
		User: 42,
	}
	desc.Release()

	if calls != 1 {
		t.Fatalf("callback calls = %d, want 1", calls)
	}
	if gotPtr != unsafe.Pointer(&data[0]) || gotSize != 3 || gotUser != 42 {
		t.Errorf("callback(%p, %d, %d), want (%p, 3, 42)", gotPtr, gotSize, gotUser, &data[0])
	}

	var empty driver.BufferDescriptor
	empty.Release() // no callback, must not panic
}
