//go:build !cgo && (linux || darwin || freebsd) && (amd64 || arm64)

package native

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"

	"github.com/gogpu/filament/driver"
)

// cBufferDescriptor is struct filc_buffer_descriptor.
type cBufferDescriptor struct {
	buffer   unsafe.Pointer
	size     uintptr
	callback uintptr
	user     uintptr
}

// cPixelBufferDescriptor is struct filc_pixel_buffer_descriptor.
type cPixelBufferDescriptor struct {
	cBufferDescriptor
	format    uint8
	typ       uint8
	alignment uint8
	_         uint8
	left      uint32
	top       uint32
	stride    uint32
}

// releases maps the user token handed to C to the Go descriptor waiting
// for its callback. goffi callbacks are never freed, so one trampoline
// serves every descriptor.
var releases struct {
	once       sync.Once
	trampoline uintptr

	mu      sync.Mutex
	next    uintptr
	pending map[uintptr]driver.BufferDescriptor

	logger atomic.Pointer[slog.Logger]
}

func setReleaseLogger(l *slog.Logger) { releases.logger.Store(l) }

func releaseLogger() *slog.Logger {
	if l := releases.logger.Load(); l != nil {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// releaseTrampoline is the C callback of every buffer descriptor.
func releaseTrampoline(buffer unsafe.Pointer, size uintptr, user uintptr) {
	releases.mu.Lock()
	desc, ok := releases.pending[user]
	delete(releases.pending, user)
	releases.mu.Unlock()

	if !ok {
		releaseLogger().Warn("native: release callback for unknown descriptor", "user", user)
		return
	}
	if desc.Callback != nil {
		desc.Callback(buffer, size, desc.User)
	}
}

// descriptor registers desc and returns its C form. The Go callback runs
// when the library calls the trampoline with the returned token.
func descriptor(desc *driver.BufferDescriptor) cBufferDescriptor {
	releases.once.Do(func() {
		releases.trampoline = ffi.NewCallback(releaseTrampoline)
		releases.pending = make(map[uintptr]driver.BufferDescriptor)
	})

	releases.mu.Lock()
	releases.next++
	token := releases.next
	releases.pending[token] = *desc
	releases.mu.Unlock()

	return cBufferDescriptor{
		buffer:   desc.Buffer,
		size:     desc.Size,
		callback: releases.trampoline,
		user:     token,
	}
}

// pendingReleases returns the number of descriptors whose callback has
// not fired.
func pendingReleases() int {
	releases.mu.Lock()
	defer releases.mu.Unlock()
	return len(releases.pending)
}
