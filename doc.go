// Package filament provides ownership-safe Go bindings for the Filament
// rendering engine.
//
// # Overview
//
// Every engine object (renderer, scene, view, camera, swapchain, buffers,
// textures, materials) is wrapped in an owned handle. A handle can be
// cloned; the native object is destroyed exactly once, when the last clone
// is released. Objects keep their engine alive, so the native engine is
// torn down only after everything created from it is gone.
//
// # Quick Start
//
//	import "github.com/gogpu/filament"
//
//	engine, err := filament.NewEngine(filament.BackendDefault)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer engine.Release()
//
//	renderer, _ := engine.CreateRenderer()
//	defer renderer.Release()
//
//	sc, _ := engine.CreateHeadlessSwapChain(640, 480, 0)
//	defer sc.Release()
//
//	if renderer.BeginFrame(sc, 0) {
//		renderer.Render(view)
//		renderer.EndFrame()
//	}
//
// # Memory Transfer
//
// Data uploaded to the engine travels in a Buffer. Passing a Buffer to
// VertexBuffer.SetBufferAt, IndexBuffer.SetBuffer or Texture.SetImage
// transfers it: the memory stays pinned until the engine's release callback
// fires, and the Buffer cannot be reused.
//
// # Drivers
//
// Calls reach the engine through a driver.Driver. The native driver loads
// the engine's C API at runtime; the noop driver is an in-process stand-in
// that validates calls and records uploads, used when no native library is
// present and in tests. Select one with WithDriver or WithDriverName.
//
// # Misuse
//
// Using a released handle, transferring a Buffer twice, or building a
// builder twice panics. Creation failures are reported as errors wrapping
// ErrCreationFailed.
package filament

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
