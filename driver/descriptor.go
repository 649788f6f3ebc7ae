package driver

import "unsafe"

// ReleaseFunc is the completion callback of a buffer descriptor. The engine
// calls it exactly once, possibly from one of its own threads, with the
// pointer and byte size recorded in the descriptor and the opaque user
// token.
type ReleaseFunc func(buffer unsafe.Pointer, size uintptr, user uintptr)

// BufferDescriptor is filament::backend::BufferDescriptor: a block of memory
// whose ownership moves to the engine when the descriptor is submitted.
//
// Size may be zero, in which case Buffer may be nil and must not be read.
type BufferDescriptor struct {
	Buffer   unsafe.Pointer
	Size     uintptr
	Callback ReleaseFunc
	User     uintptr
}

// Release hands the memory back by invoking the callback. Drivers call it
// once the engine no longer needs the data.
func (d *BufferDescriptor) Release() {
	if d.Callback != nil {
		d.Callback(d.Buffer, d.Size, d.User)
	}
}

// PixelBufferDescriptor is filament::backend::PixelBufferDescriptor.
type PixelBufferDescriptor struct {
	BufferDescriptor

	// Format is the backend PixelDataFormat.
	Format uint8
	// Type is the backend PixelDataType.
	Type uint8
	// Alignment is the row alignment in bytes (1, 2, 4 or 8).
	Alignment uint8

	Left   uint32
	Top    uint32
	Stride uint32
}
