//go:build !cgo && (linux || darwin || freebsd) && (amd64 || arm64)

package native

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"

	"github.com/gogpu/filament/driver"
)

// init registers the native driver on package import. The factory loads
// the default library once; when it cannot be loaded the factory returns
// nil and the registry falls back to the next driver.
func init() {
	driver.Register(driver.DriverNative, func() driver.Driver {
		d, err := loadDefault()
		if err != nil {
			return nil
		}
		return d
	})
}

var defaultLib struct {
	once sync.Once
	drv  *Driver
	err  error
}

func loadDefault() (*Driver, error) {
	defaultLib.once.Do(func() {
		defaultLib.drv, defaultLib.err = open(libraryName())
	})
	return defaultLib.drv, defaultLib.err
}

func libraryName() string {
	if runtime.GOOS == "darwin" {
		return "libfilament_c.dylib"
	}
	return "libfilament_c.so"
}

// function is one bound C function.
type function struct {
	name string
	ptr  unsafe.Pointer

	// mu serializes use of cif, which goffi does not allow concurrently.
	mu  sync.Mutex
	cif types.CallInterface
}

// Driver forwards every call to the filament_c library.
type Driver struct {
	lib    unsafe.Pointer
	fns    [symCount]function
	logger atomic.Pointer[slog.Logger]
}

var _ driver.Driver = (*Driver)(nil)

// Open loads the filament_c library at path and binds every function the
// driver needs. An empty path loads the default library name from the
// dynamic loader search path.
func Open(path string) (driver.Driver, error) {
	if path == "" {
		path = libraryName()
	}
	d, err := open(path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func open(path string) (*Driver, error) {
	lib, err := ffi.LoadLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, path, err)
	}
	d := &Driver{lib: lib}
	d.logger.Store(slog.New(slog.DiscardHandler))
	for i := range d.fns {
		if err := d.bind(sym(i)); err != nil {
			_ = ffi.FreeLibrary(lib)
			return nil, err
		}
	}
	return d, nil
}

func (d *Driver) bind(s sym) error {
	sig := signatures[s]
	f := &d.fns[s]
	f.name = sig.name
	ptr, err := ffi.GetSymbol(d.lib, sig.name)
	if err != nil || ptr == nil {
		return fmt.Errorf("%w: %s", ErrMissingSymbol, sig.name)
	}
	f.ptr = ptr
	if err := ffi.PrepareCallInterface(&f.cif, types.DefaultCall, sig.ret, sig.args); err != nil {
		return fmt.Errorf("native: prepare %s: %w", sig.name, err)
	}
	return nil
}

// Name returns "native".
func (d *Driver) Name() string { return driver.DriverNative }

// SetLogger sets the logger for driver events. nil discards them.
func (d *Driver) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	d.logger.Store(l)
	setReleaseLogger(l)
}

// call invokes function s. ret points at the return slot (nil for void);
// each arg points at the value of one argument.
func (d *Driver) call(s sym, ret unsafe.Pointer, args ...unsafe.Pointer) {
	f := &d.fns[s]
	f.mu.Lock()
	err := ffi.CallFunction(&f.cif, f.ptr, ret, args)
	f.mu.Unlock()
	if err != nil {
		panic(fmt.Sprintf("native: %s: %v", f.name, err))
	}
}

func boolArg(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// cstring returns a NUL-terminated copy of s.
func cstring(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// gostring copies the NUL-terminated string at p.
func gostring(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}
