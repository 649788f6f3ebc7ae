// Package noop provides an in-process emulation of the engine, equivalent
// to running Filament with its NOOP backend.
//
// The driver keeps every engine object in Go maps keyed by fake addresses
// and validates pointers the way the engine's preconditions do: an unknown
// pointer panics. Nothing is rendered, but the observable state is kept:
// scene membership, view settings, transform hierarchies, uploaded buffer
// contents and texture images.
//
// # Buffer uploads
//
// Uploads are queued and consumed when the engine is flushed (Execute,
// FlushAndWait or DestroyEngine). Consuming an upload copies the bytes into
// the destination object and fires the descriptor's release callback
// exactly once. With [WithAsyncRelease] the callbacks run on a separate
// goroutine, which exercises callers' cross-thread release paths.
//
// # Instrumentation
//
// The driver counts creations and destructions per [Kind] and can be told
// to fail creation of selected kinds:
//
//	d := noop.New(noop.WithFailing(noop.KindTexture))
//	...
//	if d.Live(noop.KindRenderer) != 0 {
//		// leaked renderer
//	}
//
// Importing the package registers the driver under the name "noop".
package noop
