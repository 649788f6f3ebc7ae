// Package transfer implements the ownership hand-off of Go memory to the
// native engine.
//
// A block handed to the engine is pinned so the collector can neither move
// nor free it, and is recorded in a [Table] under a fresh token. The token
// travels to the engine as the descriptor's opaque user value; when the
// engine invokes the release callback, [Table.Reclaim] finds the record,
// unpins the block and drops the last Go reference to it.
package transfer

import (
	"log/slog"
	"runtime"
	"sync"
	"unsafe"

	"github.com/gogpu/filament/driver"
)

// entry is one block owned by the engine.
type entry struct {
	buffer unsafe.Pointer
	size   uintptr
	keep   any
	pinner *runtime.Pinner
}

// Table tracks blocks that were handed to the engine and have not been
// released yet. It is safe for concurrent use; Reclaim may run on any
// goroutine or engine thread.
type Table struct {
	mu       sync.Mutex
	next     uintptr
	inflight map[uintptr]*entry
	logger   func() *slog.Logger
}

// NewTable creates an empty table. logger is consulted on every event so
// that logger changes apply to blocks already in flight.
func NewTable(logger func() *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default
	}
	return &Table{
		inflight: make(map[uintptr]*entry),
		logger:   logger,
	}
}

// Hand records a block and returns the descriptor that gives it to the
// engine. keep must reference the storage behind buffer so it stays
// reachable while the engine owns it; pin is called with the entry's pinner
// when size is non-zero.
//
// After Hand returns, the caller must not touch the block again.
func (t *Table) Hand(buffer unsafe.Pointer, size uintptr, keep any, pin func(*runtime.Pinner)) driver.BufferDescriptor {
	e := &entry{buffer: buffer, size: size, keep: keep}
	if size > 0 && pin != nil {
		e.pinner = new(runtime.Pinner)
		pin(e.pinner)
	}

	t.mu.Lock()
	t.next++
	token := t.next
	t.inflight[token] = e
	t.mu.Unlock()

	t.logger().Debug("filament: buffer handed to engine", "token", token, "size", size)

	return driver.BufferDescriptor{
		Buffer:   buffer,
		Size:     size,
		Callback: t.Reclaim,
		User:     token,
	}
}

// Reclaim is the release callback of every descriptor produced by Hand.
// The engine guarantees a single invocation per descriptor; a token that is
// not in flight is logged and ignored.
func (t *Table) Reclaim(buffer unsafe.Pointer, size uintptr, user uintptr) {
	t.mu.Lock()
	e, ok := t.inflight[user]
	if ok {
		delete(t.inflight, user)
	}
	t.mu.Unlock()

	if !ok {
		t.logger().Warn("filament: release callback for unknown buffer", "token", user, "size", size)
		return
	}
	if e.buffer != buffer || e.size != size {
		t.logger().Error("filament: release callback does not match transfer",
			"token", user, "size", size, "recorded_size", e.size)
	}

	if e.pinner != nil {
		e.pinner.Unpin()
	}
	e.keep = nil
	e.buffer = nil

	t.logger().Debug("filament: buffer reclaimed", "token", user, "size", size)
}

// Len returns the number of blocks still owned by the engine.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inflight)
}

// leaked keeps blocks whose engine went away without releasing them. They
// stay pinned and reachable for the life of the process.
var leaked struct {
	mu      sync.Mutex
	entries []*entry
}

// Abandon gives up on every block still in flight, typically after the
// engine was destroyed without firing their callbacks. The blocks are
// leaked on purpose: native code may still hold their addresses. It returns
// the number of abandoned blocks.
func (t *Table) Abandon() int {
	t.mu.Lock()
	pending := make([]*entry, 0, len(t.inflight))
	for token, e := range t.inflight {
		pending = append(pending, e)
		delete(t.inflight, token)
	}
	t.mu.Unlock()

	if len(pending) == 0 {
		return 0
	}

	leaked.mu.Lock()
	leaked.entries = append(leaked.entries, pending...)
	leaked.mu.Unlock()

	var bytes uintptr
	for _, e := range pending {
		bytes += e.size
	}
	t.logger().Warn("filament: buffers never released by engine", "count", len(pending), "bytes", bytes)
	return len(pending)
}
