package noop

import "github.com/gogpu/filament/driver"

type primitive struct {
	material  driver.MaterialInstance
	primitive uint8
	vb        driver.VertexBuffer
	ib        driver.IndexBuffer
}

type renderableBuilder struct {
	primitives     []primitive
	culling        bool
	castShadows    bool
	receiveShadows bool
	contactShadows bool
	morphing       bool
	center         [3]float32
	halfExtent     [3]float32
}

type renderableState struct {
	primitives     []primitive
	castShadows    bool
	receiveShadows bool
}

func (d *Driver) NewRenderableBuilder(count uint64) driver.RenderableBuilder {
	d.mu.Lock()
	defer d.mu.Unlock()
	b := driver.RenderableBuilder(d.alloc())
	d.rbBuilders[b] = &renderableBuilder{
		primitives:     make([]primitive, count),
		culling:        true,
		receiveShadows: true,
	}
	return b
}

func (d *Driver) DestroyRenderableBuilder(b driver.RenderableBuilder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.rbBuilders, b, "RenderableManager::Builder")
	delete(d.rbBuilders, b)
}

func (d *Driver) rbBuilder(b driver.RenderableBuilder) *renderableBuilder {
	return lookup(d.rbBuilders, b, "RenderableManager::Builder")
}

// RenderableBuilderMaterial sets the material of primitive index. Out of
// range indices are ignored.
func (d *Driver) RenderableBuilderMaterial(b driver.RenderableBuilder, index uint64, mi driver.MaterialInstance) {
	d.mu.Lock()
	defer d.mu.Unlock()
	bs := d.rbBuilder(b)
	if index < uint64(len(bs.primitives)) {
		bs.primitives[index].material = mi
	}
}

// RenderableBuilderGeometry sets the geometry of primitive index. Out of
// range indices are ignored.
func (d *Driver) RenderableBuilderGeometry(b driver.RenderableBuilder, index uint64, prim uint8, vb driver.VertexBuffer, ib driver.IndexBuffer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	bs := d.rbBuilder(b)
	if index < uint64(len(bs.primitives)) {
		p := &bs.primitives[index]
		p.primitive, p.vb, p.ib = prim, vb, ib
	}
}

func (d *Driver) RenderableBuilderCulling(b driver.RenderableBuilder, enable bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rbBuilder(b).culling = enable
}

func (d *Driver) RenderableBuilderCastShadows(b driver.RenderableBuilder, enable bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rbBuilder(b).castShadows = enable
}

func (d *Driver) RenderableBuilderReceiveShadows(b driver.RenderableBuilder, enable bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rbBuilder(b).receiveShadows = enable
}

func (d *Driver) RenderableBuilderScreenSpaceContactShadows(b driver.RenderableBuilder, enable bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rbBuilder(b).contactShadows = enable
}

func (d *Driver) RenderableBuilderMorphing(b driver.RenderableBuilder, enable bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rbBuilder(b).morphing = enable
}

func (d *Driver) RenderableBuilderBoundingBox(b driver.RenderableBuilder, center, halfExtent [3]float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	bs := d.rbBuilder(b)
	bs.center, bs.halfExtent = center, halfExtent
}

// RenderableBuilderBuild attaches a renderable component to entity,
// replacing any previous one. It fails when the entity is dead, when there
// are no primitives, or when a primitive lacks a vertex and index buffer of
// engine e.
func (d *Driver) RenderableBuilderBuild(b driver.RenderableBuilder, e driver.Engine, entity uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	bs := d.rbBuilder(b)
	es := lookup(d.engines, e, KindEngine)
	if d.fails(KindRenderable) || !d.entities.isAlive(entity) || len(bs.primitives) == 0 {
		return false
	}
	for _, p := range bs.primitives {
		vb, ok := d.vertexBufs[p.vb]
		if !ok || vb.engine != e {
			return false
		}
		ib, ok := d.indexBufs[p.ib]
		if !ok || ib.engine != e {
			return false
		}
		if p.material != 0 {
			if _, ok := d.instances[p.material]; !ok {
				return false
			}
		}
	}
	if _, ok := es.renderables[entity]; ok {
		d.untrack(KindRenderable)
	}
	es.renderables[entity] = &renderableState{
		primitives:     append([]primitive(nil), bs.primitives...),
		castShadows:    bs.castShadows,
		receiveShadows: bs.receiveShadows,
	}
	d.track(KindRenderable)
	return true
}

func (d *Driver) RenderableHasComponent(e driver.Engine, entity uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := lookup(d.engines, e, KindEngine).renderables[entity]
	return ok
}

func (d *Driver) RenderableDestroy(e driver.Engine, entity uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	es := lookup(d.engines, e, KindEngine)
	if _, ok := es.renderables[entity]; ok {
		delete(es.renderables, entity)
		d.untrack(KindRenderable)
	}
}

// RenderablePrimitiveCount returns the number of primitives of entity's
// renderable, or 0 when it has none.
func (d *Driver) RenderablePrimitiveCount(e driver.Engine, entity uint32) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r, ok := lookup(d.engines, e, KindEngine).renderables[entity]; ok {
		return len(r.primitives)
	}
	return 0
}
