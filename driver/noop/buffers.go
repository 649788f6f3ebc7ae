package noop

import "github.com/gogpu/filament/driver"

// Engine limits enforced by the builders.
const (
	maxVertexBufferCount    = 16
	maxVertexAttributeCount = 16

	indexTypeUShort = 12
	indexTypeUInt   = 17
)

type vertexAttribute struct {
	bufferIndex   uint8
	attributeType uint8
	byteOffset    uint32
	byteStride    uint8
	normalized    bool
}

type vertexBufferBuilder struct {
	bufferCount uint8
	vertexCount uint32
	attributes  map[uint8]vertexAttribute
}

type vertexBufferState struct {
	owned
	bufferCount uint8
	vertexCount uint32
	attributes  map[uint8]vertexAttribute
	data        [][]byte
}

type indexBufferBuilder struct {
	indexCount uint32
	indexType  uint8
}

type indexBufferState struct {
	owned
	indexCount uint32
	indexType  uint8
	data       []byte
}

// write copies src into *dst at offset, growing it as needed.
func write(dst *[]byte, offset uint32, src []byte) {
	end := int(offset) + len(src)
	if len(*dst) < end {
		grown := make([]byte, end)
		copy(grown, *dst)
		*dst = grown
	}
	copy((*dst)[offset:], src)
}

func (d *Driver) NewVertexBufferBuilder() driver.VertexBufferBuilder {
	d.mu.Lock()
	defer d.mu.Unlock()
	b := driver.VertexBufferBuilder(d.alloc())
	d.vbBuilders[b] = &vertexBufferBuilder{bufferCount: 1, attributes: make(map[uint8]vertexAttribute)}
	return b
}

func (d *Driver) DestroyVertexBufferBuilder(b driver.VertexBufferBuilder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.vbBuilders, b, "VertexBuffer::Builder")
	delete(d.vbBuilders, b)
}

func (d *Driver) VertexBufferBuilderBufferCount(b driver.VertexBufferBuilder, count uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.vbBuilders, b, "VertexBuffer::Builder").bufferCount = count
}

func (d *Driver) VertexBufferBuilderVertexCount(b driver.VertexBufferBuilder, count uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.vbBuilders, b, "VertexBuffer::Builder").vertexCount = count
}

func (d *Driver) VertexBufferBuilderAttribute(b driver.VertexBufferBuilder, attribute, bufferIndex, attributeType uint8, byteOffset uint32, byteStride uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	bs := lookup(d.vbBuilders, b, "VertexBuffer::Builder")
	a := bs.attributes[attribute]
	a.bufferIndex = bufferIndex
	a.attributeType = attributeType
	a.byteOffset = byteOffset
	a.byteStride = byteStride
	bs.attributes[attribute] = a
}

func (d *Driver) VertexBufferBuilderNormalized(b driver.VertexBufferBuilder, attribute uint8, normalized bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	bs := lookup(d.vbBuilders, b, "VertexBuffer::Builder")
	a := bs.attributes[attribute]
	a.normalized = normalized
	bs.attributes[attribute] = a
}

// VertexBufferBuilderBuild validates the builder and creates the buffer.
// Invalid configurations yield null.
func (d *Driver) VertexBufferBuilderBuild(b driver.VertexBufferBuilder, e driver.Engine) driver.VertexBuffer {
	d.mu.Lock()
	defer d.mu.Unlock()
	bs := lookup(d.vbBuilders, b, "VertexBuffer::Builder")
	lookup(d.engines, e, KindEngine)
	if d.fails(KindVertexBuffer) || bs.vertexCount == 0 ||
		bs.bufferCount == 0 || bs.bufferCount > maxVertexBufferCount {
		return 0
	}
	attrs := make(map[uint8]vertexAttribute, len(bs.attributes))
	for k, a := range bs.attributes {
		if k >= maxVertexAttributeCount || a.bufferIndex >= bs.bufferCount {
			return 0
		}
		attrs[k] = a
	}
	vb := driver.VertexBuffer(d.alloc())
	d.vertexBufs[vb] = &vertexBufferState{
		owned:       owned{engine: e},
		bufferCount: bs.bufferCount,
		vertexCount: bs.vertexCount,
		attributes:  attrs,
		data:        make([][]byte, bs.bufferCount),
	}
	d.track(KindVertexBuffer)
	return vb
}

func (d *Driver) DestroyVertexBuffer(e driver.Engine, vb driver.VertexBuffer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	lookup(d.vertexBufs, vb, KindVertexBuffer)
	delete(d.vertexBufs, vb)
	d.untrack(KindVertexBuffer)
}

// VertexBufferSetBufferAt queues an upload. The data is copied and the
// descriptor released at the next flush of e. An out of range buffer index
// drops the data but still releases the descriptor.
func (d *Driver) VertexBufferSetBufferAt(e driver.Engine, vb driver.VertexBuffer, bufferIndex uint8, desc *driver.BufferDescriptor, byteOffset uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	vs := lookup(d.vertexBufs, vb, KindVertexBuffer)
	if bufferIndex >= vs.bufferCount {
		d.log().Error("noop: buffer index out of range", "index", bufferIndex, "count", vs.bufferCount)
		d.enqueue(e, desc, nil)
		return
	}
	d.enqueue(e, desc, func(data []byte) {
		write(&vs.data[bufferIndex], byteOffset, data)
	})
}

func (d *Driver) VertexBufferVertexCount(vb driver.VertexBuffer) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return uint64(lookup(d.vertexBufs, vb, KindVertexBuffer).vertexCount)
}

// VertexBufferData returns a copy of the bytes uploaded to buffer slot
// index of vb so far.
func (d *Driver) VertexBufferData(vb driver.VertexBuffer, index uint8) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	vs := lookup(d.vertexBufs, vb, KindVertexBuffer)
	if index >= vs.bufferCount {
		return nil
	}
	return append([]byte(nil), vs.data[index]...)
}

func (d *Driver) NewIndexBufferBuilder() driver.IndexBufferBuilder {
	d.mu.Lock()
	defer d.mu.Unlock()
	b := driver.IndexBufferBuilder(d.alloc())
	d.ibBuilders[b] = &indexBufferBuilder{indexType: indexTypeUInt}
	return b
}

func (d *Driver) DestroyIndexBufferBuilder(b driver.IndexBufferBuilder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.ibBuilders, b, "IndexBuffer::Builder")
	delete(d.ibBuilders, b)
}

func (d *Driver) IndexBufferBuilderIndexCount(b driver.IndexBufferBuilder, count uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.ibBuilders, b, "IndexBuffer::Builder").indexCount = count
}

func (d *Driver) IndexBufferBuilderBufferType(b driver.IndexBufferBuilder, indexType uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.ibBuilders, b, "IndexBuffer::Builder").indexType = indexType
}

// IndexBufferBuilderBuild creates the buffer. Only 16 and 32 bit unsigned
// index types are accepted.
func (d *Driver) IndexBufferBuilderBuild(b driver.IndexBufferBuilder, e driver.Engine) driver.IndexBuffer {
	d.mu.Lock()
	defer d.mu.Unlock()
	bs := lookup(d.ibBuilders, b, "IndexBuffer::Builder")
	lookup(d.engines, e, KindEngine)
	if d.fails(KindIndexBuffer) || bs.indexCount == 0 ||
		(bs.indexType != indexTypeUShort && bs.indexType != indexTypeUInt) {
		return 0
	}
	ib := driver.IndexBuffer(d.alloc())
	d.indexBufs[ib] = &indexBufferState{owned: owned{engine: e}, indexCount: bs.indexCount, indexType: bs.indexType}
	d.track(KindIndexBuffer)
	return ib
}

func (d *Driver) DestroyIndexBuffer(e driver.Engine, ib driver.IndexBuffer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	lookup(d.indexBufs, ib, KindIndexBuffer)
	delete(d.indexBufs, ib)
	d.untrack(KindIndexBuffer)
}

// IndexBufferSetBuffer queues an upload released at the next flush of e.
func (d *Driver) IndexBufferSetBuffer(e driver.Engine, ib driver.IndexBuffer, desc *driver.BufferDescriptor, byteOffset uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	is := lookup(d.indexBufs, ib, KindIndexBuffer)
	d.enqueue(e, desc, func(data []byte) {
		write(&is.data, byteOffset, data)
	})
}

func (d *Driver) IndexBufferIndexCount(ib driver.IndexBuffer) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return uint64(lookup(d.indexBufs, ib, KindIndexBuffer).indexCount)
}

// IndexBufferData returns a copy of the bytes uploaded to ib so far.
func (d *Driver) IndexBufferData(ib driver.IndexBuffer) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]byte(nil), lookup(d.indexBufs, ib, KindIndexBuffer).data...)
}
