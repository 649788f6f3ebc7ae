// Package driver defines the foreign call boundary between the filament
// bindings and the native engine.
//
// Every native operation the bindings use is a method on [Driver]. The
// bindings never touch native memory directly; they pass opaque pointers
// (distinct uintptr types such as [Engine] or [Texture]) back into the
// driver. Enums cross the boundary as fixed-width unsigned integers and
// structs ([Viewport], [ClearOptions], ...) mirror the C layout.
//
// # Drivers
//
// Two drivers ship with the module:
//
//   - noop (package driver/noop): an in-process emulation of the engine's
//     NOOP backend. It keeps object tables in Go, counts creations and
//     destructions, and fires buffer release callbacks when the engine
//     flushes. It is always available.
//   - native (package driver/native): a pure Go (no cgo) driver that loads
//     the filament_c shared library through goffi. It is compiled only
//     with CGO_ENABLED=0 on linux, darwin and freebsd for amd64 and arm64;
//     other builds register a stub that yields no driver.
//
// Drivers register themselves on import:
//
//	import _ "github.com/gogpu/filament/driver/noop"
//
//	d := driver.Default() // native if it loads, otherwise noop
//
// # Buffer ownership
//
// [BufferDescriptor] and [PixelBufferDescriptor] hand a memory block to the
// engine. Once submitted, the engine owns the memory until it invokes the
// descriptor's [ReleaseFunc], exactly once, from any thread.
package driver
