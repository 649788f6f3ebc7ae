//go:build !cgo && (linux || darwin || freebsd) && (amd64 || arm64)

package native

import (
	"runtime"
	"unsafe"

	"github.com/gogpu/filament/driver"
)

func (d *Driver) NewVertexBufferBuilder() driver.VertexBufferBuilder {
	var b driver.VertexBufferBuilder
	d.call(symVertexBufferBuilderCreate, unsafe.Pointer(&b))
	return b
}

func (d *Driver) DestroyVertexBufferBuilder(b driver.VertexBufferBuilder) {
	d.call(symVertexBufferBuilderDestroy, nil, unsafe.Pointer(&b))
}

func (d *Driver) VertexBufferBuilderBufferCount(b driver.VertexBufferBuilder, count uint8) {
	d.call(symVertexBufferBuilderBufferCount, nil, unsafe.Pointer(&b), unsafe.Pointer(&count))
}

func (d *Driver) VertexBufferBuilderVertexCount(b driver.VertexBufferBuilder, count uint32) {
	d.call(symVertexBufferBuilderVertexCount, nil, unsafe.Pointer(&b), unsafe.Pointer(&count))
}

func (d *Driver) VertexBufferBuilderAttribute(b driver.VertexBufferBuilder, attribute, bufferIndex, attributeType uint8, byteOffset uint32, byteStride uint8) {
	d.call(symVertexBufferBuilderAttribute, nil, unsafe.Pointer(&b), unsafe.Pointer(&attribute),
		unsafe.Pointer(&bufferIndex), unsafe.Pointer(&attributeType), unsafe.Pointer(&byteOffset),
		unsafe.Pointer(&byteStride))
}

func (d *Driver) VertexBufferBuilderNormalized(b driver.VertexBufferBuilder, attribute uint8, normalized bool) {
	n := boolArg(normalized)
	d.call(symVertexBufferBuilderNormalized, nil, unsafe.Pointer(&b), unsafe.Pointer(&attribute), unsafe.Pointer(&n))
}

func (d *Driver) VertexBufferBuilderBuild(b driver.VertexBufferBuilder, e driver.Engine) driver.VertexBuffer {
	var vb driver.VertexBuffer
	d.call(symVertexBufferBuilderBuild, unsafe.Pointer(&vb), unsafe.Pointer(&b), unsafe.Pointer(&e))
	return vb
}

func (d *Driver) DestroyVertexBuffer(e driver.Engine, vb driver.VertexBuffer) {
	d.call(symVertexBufferDestroy, nil, unsafe.Pointer(&e), unsafe.Pointer(&vb))
}

func (d *Driver) VertexBufferSetBufferAt(e driver.Engine, vb driver.VertexBuffer, bufferIndex uint8, desc *driver.BufferDescriptor, byteOffset uint32) {
	cd := descriptor(desc)
	p := unsafe.Pointer(&cd)
	d.call(symVertexBufferSetBufferAt, nil, unsafe.Pointer(&e), unsafe.Pointer(&vb),
		unsafe.Pointer(&bufferIndex), unsafe.Pointer(&p), unsafe.Pointer(&byteOffset))
	runtime.KeepAlive(&cd)
}

func (d *Driver) VertexBufferVertexCount(vb driver.VertexBuffer) uint64 {
	var n uint64
	d.call(symVertexBufferGetVertexCount, unsafe.Pointer(&n), unsafe.Pointer(&vb))
	return n
}

func (d *Driver) NewIndexBufferBuilder() driver.IndexBufferBuilder {
	var b driver.IndexBufferBuilder
	d.call(symIndexBufferBuilderCreate, unsafe.Pointer(&b))
	return b
}

func (d *Driver) DestroyIndexBufferBuilder(b driver.IndexBufferBuilder) {
	d.call(symIndexBufferBuilderDestroy, nil, unsafe.Pointer(&b))
}

func (d *Driver) IndexBufferBuilderIndexCount(b driver.IndexBufferBuilder, count uint32) {
	d.call(symIndexBufferBuilderIndexCount, nil, unsafe.Pointer(&b), unsafe.Pointer(&count))
}

func (d *Driver) IndexBufferBuilderBufferType(b driver.IndexBufferBuilder, indexType uint8) {
	d.call(symIndexBufferBuilderBufferType, nil, unsafe.Pointer(&b), unsafe.Pointer(&indexType))
}

func (d *Driver) IndexBufferBuilderBuild(b driver.IndexBufferBuilder, e driver.Engine) driver.IndexBuffer {
	var ib driver.IndexBuffer
	d.call(symIndexBufferBuilderBuild, unsafe.Pointer(&ib), unsafe.Pointer(&b), unsafe.Pointer(&e))
	return ib
}

func (d *Driver) DestroyIndexBuffer(e driver.Engine, ib driver.IndexBuffer) {
	d.call(symIndexBufferDestroy, nil, unsafe.Pointer(&e), unsafe.Pointer(&ib))
}

func (d *Driver) IndexBufferSetBuffer(e driver.Engine, ib driver.IndexBuffer, desc *driver.BufferDescriptor, byteOffset uint32) {
	cd := descriptor(desc)
	p := unsafe.Pointer(&cd)
	d.call(symIndexBufferSetBuffer, nil, unsafe.Pointer(&e), unsafe.Pointer(&ib),
		unsafe.Pointer(&p), unsafe.Pointer(&byteOffset))
	runtime.KeepAlive(&cd)
}

func (d *Driver) IndexBufferIndexCount(ib driver.IndexBuffer) uint64 {
	var n uint64
	d.call(symIndexBufferGetIndexCount, unsafe.Pointer(&n), unsafe.Pointer(&ib))
	return n
}

func (d *Driver) NewTextureBuilder() driver.TextureBuilder {
	var b driver.TextureBuilder
	d.call(symTextureBuilderCreate, unsafe.Pointer(&b))
	return b
}

func (d *Driver) DestroyTextureBuilder(b driver.TextureBuilder) {
	d.call(symTextureBuilderDestroy, nil, unsafe.Pointer(&b))
}

func (d *Driver) TextureBuilderWidth(b driver.TextureBuilder, width uint32) {
	d.call(symTextureBuilderWidth, nil, unsafe.Pointer(&b), unsafe.Pointer(&width))
}

func (d *Driver) TextureBuilderHeight(b driver.TextureBuilder, height uint32) {
	d.call(symTextureBuilderHeight, nil, unsafe.Pointer(&b), unsafe.Pointer(&height))
}

func (d *Driver) TextureBuilderDepth(b driver.TextureBuilder, depth uint32) {
	d.call(symTextureBuilderDepth, nil, unsafe.Pointer(&b), unsafe.Pointer(&depth))
}

func (d *Driver) TextureBuilderLevels(b driver.TextureBuilder, levels uint8) {
	d.call(symTextureBuilderLevels, nil, unsafe.Pointer(&b), unsafe.Pointer(&levels))
}

func (d *Driver) TextureBuilderSampler(b driver.TextureBuilder, sampler uint8) {
	d.call(symTextureBuilderSampler, nil, unsafe.Pointer(&b), unsafe.Pointer(&sampler))
}

func (d *Driver) TextureBuilderFormat(b driver.TextureBuilder, format uint16) {
	d.call(symTextureBuilderFormat, nil, unsafe.Pointer(&b), unsafe.Pointer(&format))
}

func (d *Driver) TextureBuilderUsage(b driver.TextureBuilder, usage uint8) {
	d.call(symTextureBuilderUsage, nil, unsafe.Pointer(&b), unsafe.Pointer(&usage))
}

func (d *Driver) TextureBuilderSwizzle(b driver.TextureBuilder, r, g, bl, a uint8) {
	d.call(symTextureBuilderSwizzle, nil, unsafe.Pointer(&b), unsafe.Pointer(&r),
		unsafe.Pointer(&g), unsafe.Pointer(&bl), unsafe.Pointer(&a))
}

func (d *Driver) TextureBuilderImport(b driver.TextureBuilder, id uintptr) {
	d.call(symTextureBuilderImport, nil, unsafe.Pointer(&b), unsafe.Pointer(&id))
}

func (d *Driver) TextureBuilderBuild(b driver.TextureBuilder, e driver.Engine) driver.Texture {
	var t driver.Texture
	d.call(symTextureBuilderBuild, unsafe.Pointer(&t), unsafe.Pointer(&b), unsafe.Pointer(&e))
	return t
}

func (d *Driver) DestroyTexture(e driver.Engine, t driver.Texture) {
	d.call(symTextureDestroy, nil, unsafe.Pointer(&e), unsafe.Pointer(&t))
}

func (d *Driver) TextureWidth(t driver.Texture, level uint64) uint64 {
	var n uint64
	d.call(symTextureGetWidth, unsafe.Pointer(&n), unsafe.Pointer(&t), unsafe.Pointer(&level))
	return n
}

func (d *Driver) TextureHeight(t driver.Texture, level uint64) uint64 {
	var n uint64
	d.call(symTextureGetHeight, unsafe.Pointer(&n), unsafe.Pointer(&t), unsafe.Pointer(&level))
	return n
}

func (d *Driver) TextureDepth(t driver.Texture, level uint64) uint64 {
	var n uint64
	d.call(symTextureGetDepth, unsafe.Pointer(&n), unsafe.Pointer(&t), unsafe.Pointer(&level))
	return n
}

func (d *Driver) TextureLevels(t driver.Texture) uint64 {
	var n uint64
	d.call(symTextureGetLevels, unsafe.Pointer(&n), unsafe.Pointer(&t))
	return n
}

func (d *Driver) TextureTarget(t driver.Texture) uint8 {
	var v uint8
	d.call(symTextureGetTarget, unsafe.Pointer(&v), unsafe.Pointer(&t))
	return v
}

func (d *Driver) TextureFormat(t driver.Texture) uint16 {
	var v uint16
	d.call(symTextureGetFormat, unsafe.Pointer(&v), unsafe.Pointer(&t))
	return v
}

func (d *Driver) TextureSetImage(e driver.Engine, t driver.Texture, level uint64, desc *driver.PixelBufferDescriptor) {
	cd := &cPixelBufferDescriptor{
		cBufferDescriptor: descriptor(&desc.BufferDescriptor),
		format:            desc.Format,
		typ:               desc.Type,
		alignment:         desc.Alignment,
		left:              desc.Left,
		top:               desc.Top,
		stride:            desc.Stride,
	}
	p := unsafe.Pointer(cd)
	d.call(symTextureSetImage, nil, unsafe.Pointer(&e), unsafe.Pointer(&t), unsafe.Pointer(&level), unsafe.Pointer(&p))
	runtime.KeepAlive(cd)
}

func (d *Driver) TextureSetExternalImage(e driver.Engine, t driver.Texture, image unsafe.Pointer) {
	d.call(symTextureSetExternalImage, nil, unsafe.Pointer(&e), unsafe.Pointer(&t), unsafe.Pointer(&image))
}

func (d *Driver) TextureGenerateMipmaps(e driver.Engine, t driver.Texture) {
	d.call(symTextureGenerateMipmaps, nil, unsafe.Pointer(&e), unsafe.Pointer(&t))
}

func (d *Driver) TextureFormatSupported(e driver.Engine, format uint16) bool {
	var ok uint8
	d.call(symEngineIsTextureFormatSupported, unsafe.Pointer(&ok), unsafe.Pointer(&e), unsafe.Pointer(&format))
	return ok != 0
}

func (d *Driver) CreateMaterial(e driver.Engine, pkg []byte) driver.Material {
	if len(pkg) == 0 {
		return 0
	}
	var m driver.Material
	p, n := unsafe.Pointer(&pkg[0]), uint64(len(pkg))
	d.call(symMaterialCreate, unsafe.Pointer(&m), unsafe.Pointer(&e), unsafe.Pointer(&p), unsafe.Pointer(&n))
	runtime.KeepAlive(pkg)
	return m
}

func (d *Driver) DestroyMaterial(e driver.Engine, m driver.Material) {
	d.call(symMaterialDestroy, nil, unsafe.Pointer(&e), unsafe.Pointer(&m))
}

func (d *Driver) MaterialDefaultInstance(m driver.Material) driver.MaterialInstance {
	var mi driver.MaterialInstance
	d.call(symMaterialGetDefaultInstance, unsafe.Pointer(&mi), unsafe.Pointer(&m))
	return mi
}

func (d *Driver) MaterialCreateInstance(m driver.Material) driver.MaterialInstance {
	var mi driver.MaterialInstance
	d.call(symMaterialCreateInstance, unsafe.Pointer(&mi), unsafe.Pointer(&m))
	return mi
}

func (d *Driver) DestroyMaterialInstance(e driver.Engine, mi driver.MaterialInstance) {
	d.call(symMaterialInstanceDestroy, nil, unsafe.Pointer(&e), unsafe.Pointer(&mi))
}

func (d *Driver) MaterialInstanceSetTexture(mi driver.MaterialInstance, name string, t driver.Texture, samplerParams uint32) {
	s := cstring(name)
	p := unsafe.Pointer(&s[0])
	d.call(symMaterialInstanceSetTexture, nil, unsafe.Pointer(&mi), unsafe.Pointer(&p),
		unsafe.Pointer(&t), unsafe.Pointer(&samplerParams))
	runtime.KeepAlive(s)
}

func (d *Driver) MaterialInstanceSetFloat(mi driver.MaterialInstance, name string, v float32) {
	s := cstring(name)
	p := unsafe.Pointer(&s[0])
	d.call(symMaterialInstanceSetFloat, nil, unsafe.Pointer(&mi), unsafe.Pointer(&p), unsafe.Pointer(&v))
	runtime.KeepAlive(s)
}

func (d *Driver) MaterialInstanceSetFloat4(mi driver.MaterialInstance, name string, v [4]float32) {
	s := cstring(name)
	p, pv := unsafe.Pointer(&s[0]), unsafe.Pointer(&v)
	d.call(symMaterialInstanceSetFloat4, nil, unsafe.Pointer(&mi), unsafe.Pointer(&p), unsafe.Pointer(&pv))
	runtime.KeepAlive(s)
}
