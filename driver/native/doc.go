// Package native is the driver that calls the Filament engine through its C
// API, the filament_c shared library, without cgo.
//
// Calls go through github.com/go-webgpu/goffi, which loads the library
// with dlopen and calls into it from pure Go. goffi requires CGO_ENABLED=0
// and supports linux, darwin and freebsd on amd64 and arm64. In any other
// build the package registers a factory that returns nil, so
// driver.Default falls back to the noop driver.
//
// # Registration
//
// Importing the package registers the driver as "native":
//
//	import _ "github.com/gogpu/filament/driver/native"
//
// The registered factory loads libfilament_c.so (libfilament_c.dylib on
// darwin) from the dynamic loader search path once per process. Use Open
// to load a library from an explicit path.
//
// # C ABI
//
// Each driver.Driver method maps to one filc_* function. Booleans cross as
// uint8_t, strings as NUL-terminated copies, slices as a pointer and a
// size_t count, matrices and vectors as pointers to float or double arrays.
// Buffer descriptors are passed by pointer to
//
//	struct filc_buffer_descriptor {
//		void *buffer;
//		size_t size;
//		void (*callback)(void *buffer, size_t size, void *user);
//		void *user;
//	};
//
// The callback is a single goffi trampoline shared by every descriptor.
// The library must call it exactly once per descriptor, from any thread.
package native
