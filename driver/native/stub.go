//go:build cgo || !(linux || darwin || freebsd) || !(amd64 || arm64)

package native

import "github.com/gogpu/filament/driver"

// init registers a nil-returning factory when goffi cannot be used.
// This allows driver.Get(driver.DriverNative) to return nil gracefully.
func init() {
	driver.Register(driver.DriverNative, func() driver.Driver {
		return nil
	})
}

// Open always fails with ErrUnsupported in this build.
func Open(path string) (driver.Driver, error) {
	return nil, ErrUnsupported
}
