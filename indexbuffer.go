package filament

import "github.com/gogpu/filament/driver"

// IndexType is the storage type of indices.
type IndexType uint8

const (
	IndexUShort IndexType = 12
	IndexUInt   IndexType = 17
)

// Size returns the size of one index in bytes.
func (t IndexType) Size() int {
	if t == IndexUShort {
		return 2
	}
	return 4
}

// IndexBufferBuilder configures an IndexBuffer. Settings are recorded and
// applied by Build.
type IndexBufferBuilder struct {
	rec recorder[driver.IndexBufferBuilder]
}

// NewIndexBufferBuilder returns an empty builder.
func NewIndexBufferBuilder() *IndexBufferBuilder {
	return &IndexBufferBuilder{rec: recorder[driver.IndexBufferBuilder]{kind: "IndexBuffer"}}
}

// IndexCount sets the number of indices.
func (b *IndexBufferBuilder) IndexCount(n uint32) *IndexBufferBuilder {
	b.rec.record(func(d driver.Driver, nb driver.IndexBufferBuilder) {
		d.IndexBufferBuilderIndexCount(nb, n)
	})
	return b
}

// BufferType sets the index storage type.
func (b *IndexBufferBuilder) BufferType(t IndexType) *IndexBufferBuilder {
	b.rec.record(func(d driver.Driver, nb driver.IndexBufferBuilder) {
		d.IndexBufferBuilderBufferType(nb, uint8(t))
	})
	return b
}

// Build creates the index buffer. It returns ErrCreationFailed when the
// engine rejects the configuration. A builder can be built only once.
func (b *IndexBufferBuilder) Build(e *Engine) (*IndexBuffer, error) {
	d := e.api()
	var p driver.IndexBuffer
	b.rec.build(d, d.NewIndexBufferBuilder, d.DestroyIndexBufferBuilder, func(nb driver.IndexBufferBuilder) {
		p = d.IndexBufferBuilderBuild(nb, e.raw())
	})
	if p == 0 {
		return nil, creationFailed("index buffer")
	}
	h, ec := dependent(e, "IndexBuffer", p, d.DestroyIndexBuffer)
	return &IndexBuffer{h: h, engine: ec}, nil
}

// IndexBuffer holds index data in engine memory.
type IndexBuffer struct {
	h      *handle[driver.IndexBuffer]
	engine *Engine
}

// Clone returns a new owner of the same index buffer.
func (ib *IndexBuffer) Clone() *IndexBuffer {
	return &IndexBuffer{h: ib.h.clone(), engine: ib.engine}
}

// Release gives up this clone; the last release destroys the buffer.
func (ib *IndexBuffer) Release() { ib.h.release() }

// Equal reports whether ib and other refer to the same native buffer.
func (ib *IndexBuffer) Equal(other *IndexBuffer) bool { return other != nil && same(ib.h, other.h) }

// ID returns the native address, usable as a map key.
func (ib *IndexBuffer) ID() uintptr { return ib.h.id() }

// Engine returns the engine that owns ib. The returned Engine is borrowed
// and must not be released.
func (ib *IndexBuffer) Engine() *Engine { return ib.engine }

// IndexCount returns the number of indices.
func (ib *IndexBuffer) IndexCount() int {
	return int(ib.engine.core.drv.IndexBufferIndexCount(ib.h.raw()))
}

// SetBuffer uploads buf at byteOffset. buf is transferred to the engine and
// released once the upload completed.
func (ib *IndexBuffer) SetBuffer(buf *Buffer, byteOffset uint32) {
	p := ib.h.raw()
	e := ib.engine
	desc := buf.transfer(e.core.table)
	e.core.drv.IndexBufferSetBuffer(e.raw(), p, &desc, byteOffset)
}
