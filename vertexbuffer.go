package filament

import "github.com/gogpu/filament/driver"

// VertexAttribute names a vertex shader input.
type VertexAttribute uint8

const (
	AttributePosition    VertexAttribute = 0
	AttributeTangents    VertexAttribute = 1
	AttributeColor       VertexAttribute = 2
	AttributeUV0         VertexAttribute = 3
	AttributeUV1         VertexAttribute = 4
	AttributeBoneIndices VertexAttribute = 5
	AttributeBoneWeights VertexAttribute = 6
	AttributeCustom0     VertexAttribute = 8
)

// AttributeType is the storage type of a vertex attribute.
type AttributeType uint8

const (
	AttributeByte AttributeType = iota
	AttributeByte2
	AttributeByte3
	AttributeByte4
	AttributeUByte
	AttributeUByte2
	AttributeUByte3
	AttributeUByte4
	AttributeShort
	AttributeShort2
	AttributeShort3
	AttributeShort4
	AttributeUShort
	AttributeUShort2
	AttributeUShort3
	AttributeUShort4
	AttributeInt
	AttributeUInt
	AttributeFloat
	AttributeFloat2
	AttributeFloat3
	AttributeFloat4
	AttributeHalf
	AttributeHalf2
	AttributeHalf3
	AttributeHalf4
)

// VertexBufferBuilder configures a VertexBuffer. Settings are recorded and
// applied by Build; the builder owns no engine state.
type VertexBufferBuilder struct {
	rec recorder[driver.VertexBufferBuilder]
}

// NewVertexBufferBuilder returns an empty builder.
func NewVertexBufferBuilder() *VertexBufferBuilder {
	return &VertexBufferBuilder{rec: recorder[driver.VertexBufferBuilder]{kind: "VertexBuffer"}}
}

// BufferCount sets the number of buffer slots.
func (b *VertexBufferBuilder) BufferCount(n uint8) *VertexBufferBuilder {
	b.rec.record(func(d driver.Driver, nb driver.VertexBufferBuilder) {
		d.VertexBufferBuilderBufferCount(nb, n)
	})
	return b
}

// VertexCount sets the number of vertices.
func (b *VertexBufferBuilder) VertexCount(n uint32) *VertexBufferBuilder {
	b.rec.record(func(d driver.Driver, nb driver.VertexBufferBuilder) {
		d.VertexBufferBuilderVertexCount(nb, n)
	})
	return b
}

// Attribute declares where attr is read from: buffer slot bufferIndex,
// starting at byteOffset, byteStride bytes apart.
func (b *VertexBufferBuilder) Attribute(attr VertexAttribute, bufferIndex uint8, typ AttributeType, byteOffset uint32, byteStride uint8) *VertexBufferBuilder {
	b.rec.record(func(d driver.Driver, nb driver.VertexBufferBuilder) {
		d.VertexBufferBuilderAttribute(nb, uint8(attr), bufferIndex, uint8(typ), byteOffset, byteStride)
	})
	return b
}

// Normalized makes integer attribute data read as normalized floats.
func (b *VertexBufferBuilder) Normalized(attr VertexAttribute, normalized bool) *VertexBufferBuilder {
	b.rec.record(func(d driver.Driver, nb driver.VertexBufferBuilder) {
		d.VertexBufferBuilderNormalized(nb, uint8(attr), normalized)
	})
	return b
}

// Build creates the vertex buffer. It returns ErrCreationFailed when the
// engine rejects the configuration. A builder can be built only once.
func (b *VertexBufferBuilder) Build(e *Engine) (*VertexBuffer, error) {
	d := e.api()
	var p driver.VertexBuffer
	b.rec.build(d, d.NewVertexBufferBuilder, d.DestroyVertexBufferBuilder, func(nb driver.VertexBufferBuilder) {
		p = d.VertexBufferBuilderBuild(nb, e.raw())
	})
	if p == 0 {
		return nil, creationFailed("vertex buffer")
	}
	h, ec := dependent(e, "VertexBuffer", p, d.DestroyVertexBuffer)
	return &VertexBuffer{h: h, engine: ec}, nil
}

// VertexBuffer holds vertex data in engine memory.
type VertexBuffer struct {
	h      *handle[driver.VertexBuffer]
	engine *Engine
}

// Clone returns a new owner of the same vertex buffer.
func (vb *VertexBuffer) Clone() *VertexBuffer {
	return &VertexBuffer{h: vb.h.clone(), engine: vb.engine}
}

// Release gives up this clone; the last release destroys the buffer.
func (vb *VertexBuffer) Release() { vb.h.release() }

// Equal reports whether vb and other refer to the same native buffer.
func (vb *VertexBuffer) Equal(other *VertexBuffer) bool { return other != nil && same(vb.h, other.h) }

// ID returns the native address, usable as a map key.
func (vb *VertexBuffer) ID() uintptr { return vb.h.id() }

// Engine returns the engine that owns vb. The returned Engine is borrowed
// and must not be released.
func (vb *VertexBuffer) Engine() *Engine { return vb.engine }

// VertexCount returns the number of vertices.
func (vb *VertexBuffer) VertexCount() int {
	return int(vb.engine.core.drv.VertexBufferVertexCount(vb.h.raw()))
}

// SetBufferAt uploads buf into buffer slot index at byteOffset. buf is
// transferred to the engine and released once the upload completed.
func (vb *VertexBuffer) SetBufferAt(index uint8, buf *Buffer, byteOffset uint32) {
	p := vb.h.raw()
	e := vb.engine
	desc := buf.transfer(e.core.table)
	e.core.drv.VertexBufferSetBufferAt(e.raw(), p, index, &desc, byteOffset)
}
