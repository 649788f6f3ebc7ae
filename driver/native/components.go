//go:build !cgo && (linux || darwin || freebsd) && (amd64 || arm64)

package native

import (
	"unsafe"

	"github.com/gogpu/filament/driver"
)

func (d *Driver) NewRenderableBuilder(count uint64) driver.RenderableBuilder {
	var b driver.RenderableBuilder
	d.call(symRenderableBuilderCreate, unsafe.Pointer(&b), unsafe.Pointer(&count))
	return b
}

func (d *Driver) DestroyRenderableBuilder(b driver.RenderableBuilder) {
	d.call(symRenderableBuilderDestroy, nil, unsafe.Pointer(&b))
}

func (d *Driver) RenderableBuilderMaterial(b driver.RenderableBuilder, index uint64, mi driver.MaterialInstance) {
	d.call(symRenderableBuilderMaterial, nil, unsafe.Pointer(&b), unsafe.Pointer(&index), unsafe.Pointer(&mi))
}

func (d *Driver) RenderableBuilderGeometry(b driver.RenderableBuilder, index uint64, primitive uint8, vb driver.VertexBuffer, ib driver.IndexBuffer) {
	d.call(symRenderableBuilderGeometry, nil, unsafe.Pointer(&b), unsafe.Pointer(&index),
		unsafe.Pointer(&primitive), unsafe.Pointer(&vb), unsafe.Pointer(&ib))
}

// flag calls a builder setter taking one boolean.
func (d *Driver) flag(s sym, b driver.RenderableBuilder, enable bool) {
	v := boolArg(enable)
	d.call(s, nil, unsafe.Pointer(&b), unsafe.Pointer(&v))
}

func (d *Driver) RenderableBuilderCulling(b driver.RenderableBuilder, enable bool) {
	d.flag(symRenderableBuilderCulling, b, enable)
}

func (d *Driver) RenderableBuilderCastShadows(b driver.RenderableBuilder, enable bool) {
	d.flag(symRenderableBuilderCastShadows, b, enable)
}

func (d *Driver) RenderableBuilderReceiveShadows(b driver.RenderableBuilder, enable bool) {
	d.flag(symRenderableBuilderReceiveShadows, b, enable)
}

func (d *Driver) RenderableBuilderScreenSpaceContactShadows(b driver.RenderableBuilder, enable bool) {
	d.flag(symRenderableBuilderScreenSpaceContactShadows, b, enable)
}

func (d *Driver) RenderableBuilderMorphing(b driver.RenderableBuilder, enable bool) {
	d.flag(symRenderableBuilderMorphing, b, enable)
}

func (d *Driver) RenderableBuilderBoundingBox(b driver.RenderableBuilder, center, halfExtent [3]float32) {
	pc, ph := unsafe.Pointer(&center), unsafe.Pointer(&halfExtent)
	d.call(symRenderableBuilderBoundingBox, nil, unsafe.Pointer(&b), unsafe.Pointer(&pc), unsafe.Pointer(&ph))
}

func (d *Driver) RenderableBuilderBuild(b driver.RenderableBuilder, e driver.Engine, entity uint32) bool {
	var ok uint8
	d.call(symRenderableBuilderBuild, unsafe.Pointer(&ok), unsafe.Pointer(&b), unsafe.Pointer(&e), unsafe.Pointer(&entity))
	return ok != 0
}

func (d *Driver) RenderableHasComponent(e driver.Engine, entity uint32) bool {
	var ok uint8
	d.call(symRenderableHasComponent, unsafe.Pointer(&ok), unsafe.Pointer(&e), unsafe.Pointer(&entity))
	return ok != 0
}

func (d *Driver) RenderableDestroy(e driver.Engine, entity uint32) {
	d.call(symRenderableDestroy, nil, unsafe.Pointer(&e), unsafe.Pointer(&entity))
}

func (d *Driver) TransformManager(e driver.Engine) driver.TransformManager {
	var tm driver.TransformManager
	d.call(symEngineGetTransformManager, unsafe.Pointer(&tm), unsafe.Pointer(&e))
	return tm
}

func (d *Driver) TransformCreate(tm driver.TransformManager, entity, parent uint32, local *[16]float32) {
	p := unsafe.Pointer(local)
	d.call(symTransformCreate, nil, unsafe.Pointer(&tm), unsafe.Pointer(&entity), unsafe.Pointer(&parent), unsafe.Pointer(&p))
}

func (d *Driver) TransformInstance(tm driver.TransformManager, entity uint32) uint32 {
	var i uint32
	d.call(symTransformGetInstance, unsafe.Pointer(&i), unsafe.Pointer(&tm), unsafe.Pointer(&entity))
	return i
}

func (d *Driver) TransformSetTransform(tm driver.TransformManager, instance uint32, local *[16]float32) {
	p := unsafe.Pointer(local)
	d.call(symTransformSetTransform, nil, unsafe.Pointer(&tm), unsafe.Pointer(&instance), unsafe.Pointer(&p))
}

func (d *Driver) matrix(s sym, tm driver.TransformManager, instance uint32) ([16]float32, bool) {
	out := new([16]float32)
	p := unsafe.Pointer(out)
	var ok uint8
	d.call(s, unsafe.Pointer(&ok), unsafe.Pointer(&tm), unsafe.Pointer(&instance), unsafe.Pointer(&p))
	return *out, ok != 0
}

func (d *Driver) TransformTransform(tm driver.TransformManager, instance uint32) ([16]float32, bool) {
	return d.matrix(symTransformGetTransform, tm, instance)
}

func (d *Driver) TransformWorldTransform(tm driver.TransformManager, instance uint32) ([16]float32, bool) {
	return d.matrix(symTransformGetWorldTransform, tm, instance)
}

func (d *Driver) TransformSetParent(tm driver.TransformManager, instance, parent uint32) {
	d.call(symTransformSetParent, nil, unsafe.Pointer(&tm), unsafe.Pointer(&instance), unsafe.Pointer(&parent))
}

func (d *Driver) TransformParent(tm driver.TransformManager, instance uint32) uint32 {
	var entity uint32
	d.call(symTransformGetParent, unsafe.Pointer(&entity), unsafe.Pointer(&tm), unsafe.Pointer(&instance))
	return entity
}

func (d *Driver) TransformDestroy(tm driver.TransformManager, entity uint32) {
	d.call(symTransformDestroy, nil, unsafe.Pointer(&tm), unsafe.Pointer(&entity))
}

func (d *Driver) EntityManager() driver.EntityManager {
	var em driver.EntityManager
	d.call(symEntityManagerGet, unsafe.Pointer(&em))
	return em
}

// entities calls s with list passed as a pointer and count.
func (d *Driver) entities(s sym, em driver.EntityManager, list []uint32) {
	if len(list) == 0 {
		return
	}
	p, n := unsafe.Pointer(&list[0]), uint64(len(list))
	d.call(s, nil, unsafe.Pointer(&em), unsafe.Pointer(&p), unsafe.Pointer(&n))
}

func (d *Driver) EntityCreate(em driver.EntityManager, out []uint32) {
	d.entities(symEntityCreate, em, out)
}

func (d *Driver) EntityDestroy(em driver.EntityManager, entities []uint32) {
	d.entities(symEntityDestroy, em, entities)
}

func (d *Driver) EntityIsAlive(em driver.EntityManager, entity uint32) bool {
	var ok uint8
	d.call(symEntityIsAlive, unsafe.Pointer(&ok), unsafe.Pointer(&em), unsafe.Pointer(&entity))
	return ok != 0
}
