package filament

import (
	"runtime"
	"sync/atomic"
)

// native is the set of opaque engine pointer types.
type native interface {
	~uintptr
}

// shared is the state common to every clone of a handle: the native
// pointer and the number of clones that still own it.
type shared[P native] struct {
	ptr  P
	kind string
	refs atomic.Int64

	// destroy frees the native object; nil for borrowed objects.
	destroy func(P)
	// after runs once destroy returned, typically releasing the engine
	// or parent clone the object kept.
	after func()
}

// handle is one owning clone of a native object. The clone whose Release
// drops the count to zero destroys the object, exactly once.
type handle[P native] struct {
	s        *shared[P]
	released atomic.Bool
	cleanup  runtime.Cleanup
}

// newHandle wraps ptr with a reference count of one.
func newHandle[P native](kind string, ptr P, destroy func(P), after func()) *handle[P] {
	s := &shared[P]{ptr: ptr, kind: kind, destroy: destroy, after: after}
	s.refs.Store(1)
	Logger().Debug("filament: create", "kind", kind, "ptr", uintptr(ptr))
	return s.newClone()
}

func (s *shared[P]) newClone() *handle[P] {
	h := &handle[P]{s: s}
	h.cleanup = runtime.AddCleanup(h, leaked, s.kind)
	return h
}

// leaked reports a clone collected without Release. The native object is
// not destroyed from the collector.
func leaked(kind string) {
	Logger().Warn("filament: handle garbage collected without Release", "kind", kind)
}

// check panics if this clone was released.
func (h *handle[P]) check() {
	if h.released.Load() {
		panic("filament: use of released " + h.s.kind)
	}
}

// raw returns the native pointer.
func (h *handle[P]) raw() P {
	h.check()
	return h.s.ptr
}

// clone returns a new owner of the same native object.
func (h *handle[P]) clone() *handle[P] {
	h.check()
	h.s.refs.Add(1)
	return h.s.newClone()
}

// release gives up this clone's ownership. Releasing the same clone again
// is a no-op.
func (h *handle[P]) release() {
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	h.cleanup.Stop()

	s := h.s
	if s.refs.Add(-1) > 0 {
		return
	}
	Logger().Debug("filament: destroy", "kind", s.kind, "ptr", uintptr(s.ptr))
	if s.destroy != nil {
		s.destroy(s.ptr)
	}
	if s.after != nil {
		s.after()
	}
}

// id returns the native pointer as an integer without checking the clone.
func (h *handle[P]) id() uintptr {
	return uintptr(h.s.ptr)
}

// same reports whether a and b refer to the same native object.
func same[P native](a, b *handle[P]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.s.ptr == b.s.ptr
}
