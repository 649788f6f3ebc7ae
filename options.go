package filament

import "github.com/gogpu/filament/driver"

// EngineOption configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default driver: native when the library loads, otherwise noop
//	engine, err := filament.NewEngine(filament.BackendDefault)
//
//	// Explicit driver (dependency injection)
//	engine, err := filament.NewEngine(filament.BackendNoop, filament.WithDriver(noop.New()))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	driver     driver.Driver
	driverName string
}

// WithDriver sets the driver the engine forwards every call to.
// It takes precedence over WithDriverName.
//
// Example:
//
//	d := noop.New(noop.WithAsyncRelease())
//	engine, err := filament.NewEngine(filament.BackendNoop, filament.WithDriver(d))
func WithDriver(d driver.Driver) EngineOption {
	return func(o *engineOptions) {
		o.driver = d
	}
}

// WithDriverName selects a registered driver by name, for example
// driver.DriverNative to require the shared library instead of falling
// back to the emulation.
func WithDriverName(name string) EngineOption {
	return func(o *engineOptions) {
		o.driverName = name
	}
}
