package driver

import (
	"github.com/gogpu/gpucontext"
)

// Driver names known to the registry.
const (
	// DriverNative is the goffi driver over the filament_c shared library.
	DriverNative = "native"

	// DriverNoop is the in-process engine emulation.
	DriverNoop = "noop"
)

// Factory creates a driver instance. A factory may return nil when the
// driver cannot run in the current build or environment.
type Factory func() Driver

// drivers holds registered drivers. The native driver is preferred when it
// loads; noop is the fallback.
var drivers = gpucontext.NewRegistry[Driver](
	gpucontext.WithPriority(DriverNative, DriverNoop),
)

// Register registers a driver factory with the given name.
// This is typically called from init() functions in driver packages.
// If a driver with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	drivers.Register(name, factory)
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	drivers.Unregister(name)
}

// IsRegistered reports whether a driver with the given name is registered.
func IsRegistered(name string) bool {
	return drivers.Has(name)
}

// Available returns the names of all registered drivers.
func Available() []string {
	return drivers.Available()
}

// Get returns a driver instance by name.
// Returns nil if the driver is not registered or cannot be created.
func Get(name string) Driver {
	return drivers.Get(name)
}

// Default returns the best available driver, following the priority
// native > noop and skipping factories that return nil.
// Returns nil if no driver can be created.
func Default() Driver {
	for _, name := range []string{DriverNative, DriverNoop} {
		if d := drivers.Get(name); d != nil {
			return d
		}
	}
	for _, name := range drivers.Available() {
		if d := drivers.Get(name); d != nil {
			return d
		}
	}
	return nil
}

// Open returns the named driver, or the default one when name is empty.
// It returns ErrUnavailable when no driver can be created.
func Open(name string) (Driver, error) {
	var d Driver
	if name == "" {
		d = Default()
	} else {
		d = Get(name)
	}
	if d == nil {
		if name == "" {
			name = "default"
		}
		return nil, &UnavailableError{Name: name}
	}
	return d, nil
}
