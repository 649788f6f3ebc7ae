package filament

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/filament/driver"
	"github.com/gogpu/filament/internal/transfer"
)

// Buffer is a block of Go memory on its way to the engine.
//
// A Buffer starts out owned by the caller. Passing it to a set-data call
// (VertexBuffer.SetBufferAt, IndexBuffer.SetBuffer, Texture.SetImage)
// transfers it: the memory is pinned and belongs to the engine until the
// engine's release callback fires, after which the collector frees it.
// A transferred Buffer cannot be used again; doing so panics.
//
// The backing slice is not copied. The caller must not modify it after
// creating the Buffer, and the element type must not contain Go pointers.
type Buffer struct {
	ptr  unsafe.Pointer
	size uintptr
	keep any
	pin  func(*runtime.Pinner)

	transferred atomic.Bool
}

// NewBuffer creates a Buffer over data. Its byte length is len(data) times
// the size of T. An empty slice gives a valid zero-length Buffer.
func NewBuffer[T any](data []T) *Buffer {
	var zero T
	b := &Buffer{
		size: uintptr(len(data)) * unsafe.Sizeof(zero),
		keep: data,
	}
	if b.size > 0 {
		first := &data[0]
		b.ptr = unsafe.Pointer(first)
		b.pin = func(p *runtime.Pinner) { p.Pin(first) }
	}
	return b
}

// NewBufferFromBytes creates a Buffer over raw bytes.
func NewBufferFromBytes(data []byte) *Buffer {
	return NewBuffer(data)
}

// Len returns the byte length of the buffer.
func (b *Buffer) Len() int { return int(b.size) }

// Transferred reports whether the buffer was handed to the engine.
func (b *Buffer) Transferred() bool { return b.transferred.Load() }

// transfer gives the buffer to the engine through table and returns the
// descriptor to submit. It panics if b was already transferred.
func (b *Buffer) transfer(table *transfer.Table) driver.BufferDescriptor {
	if !b.transferred.CompareAndSwap(false, true) {
		panic("filament: buffer already transferred")
	}
	desc := table.Hand(b.ptr, b.size, b.keep, b.pin)
	b.ptr, b.keep, b.pin = nil, nil, nil
	return desc
}
