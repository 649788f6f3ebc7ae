package filament

import "github.com/gogpu/filament/driver"

// PrimitiveType is the topology of a renderable primitive.
type PrimitiveType uint8

const (
	PrimitivePoints        PrimitiveType = 0
	PrimitiveLines         PrimitiveType = 1
	PrimitiveLineStrip     PrimitiveType = 3
	PrimitiveTriangles     PrimitiveType = 4
	PrimitiveTriangleStrip PrimitiveType = 5
)

// Box is an axis-aligned bounding box.
type Box struct {
	Center     [3]float32
	HalfExtent [3]float32
}

// RenderableBuilder configures the renderable component of an entity.
// Settings are recorded and applied by Build.
//
// The builder does not keep the buffers and material instances it is given
// alive. They must stay unreleased until the renderable is destroyed.
type RenderableBuilder struct {
	count uint64
	rec   recorder[driver.RenderableBuilder]
}

// NewRenderableBuilder returns a builder for a renderable with count
// primitives.
func NewRenderableBuilder(count int) *RenderableBuilder {
	return &RenderableBuilder{
		count: uint64(count),
		rec:   recorder[driver.RenderableBuilder]{kind: "Renderable"},
	}
}

func (b *RenderableBuilder) set(op func(driver.Driver, driver.RenderableBuilder)) *RenderableBuilder {
	b.rec.record(op)
	return b
}

// Material sets the material instance of primitive index.
func (b *RenderableBuilder) Material(index int, mi *MaterialInstance) *RenderableBuilder {
	return b.set(func(d driver.Driver, nb driver.RenderableBuilder) {
		d.RenderableBuilderMaterial(nb, uint64(index), mi.h.raw())
	})
}

// Geometry sets the topology and buffers of primitive index.
func (b *RenderableBuilder) Geometry(index int, prim PrimitiveType, vb *VertexBuffer, ib *IndexBuffer) *RenderableBuilder {
	return b.set(func(d driver.Driver, nb driver.RenderableBuilder) {
		d.RenderableBuilderGeometry(nb, uint64(index), uint8(prim), vb.h.raw(), ib.h.raw())
	})
}

// Culling enables frustum culling. Enabled by default.
func (b *RenderableBuilder) Culling(enable bool) *RenderableBuilder {
	return b.set(func(d driver.Driver, nb driver.RenderableBuilder) { d.RenderableBuilderCulling(nb, enable) })
}

// CastShadows makes the renderable cast shadows. Disabled by default.
func (b *RenderableBuilder) CastShadows(enable bool) *RenderableBuilder {
	return b.set(func(d driver.Driver, nb driver.RenderableBuilder) { d.RenderableBuilderCastShadows(nb, enable) })
}

// ReceiveShadows is enabled by default.
func (b *RenderableBuilder) ReceiveShadows(enable bool) *RenderableBuilder {
	return b.set(func(d driver.Driver, nb driver.RenderableBuilder) { d.RenderableBuilderReceiveShadows(nb, enable) })
}

// ScreenSpaceContactShadows enables contact shadows computed in screen
// space. Disabled by default.
func (b *RenderableBuilder) ScreenSpaceContactShadows(enable bool) *RenderableBuilder {
	return b.set(func(d driver.Driver, nb driver.RenderableBuilder) {
		d.RenderableBuilderScreenSpaceContactShadows(nb, enable)
	})
}

// Morphing enables vertex morphing. Disabled by default.
func (b *RenderableBuilder) Morphing(enable bool) *RenderableBuilder {
	return b.set(func(d driver.Driver, nb driver.RenderableBuilder) { d.RenderableBuilderMorphing(nb, enable) })
}

// BoundingBox sets the object-space bounds used for culling.
func (b *RenderableBuilder) BoundingBox(box Box) *RenderableBuilder {
	return b.set(func(d driver.Driver, nb driver.RenderableBuilder) {
		d.RenderableBuilderBoundingBox(nb, box.Center, box.HalfExtent)
	})
}

// Build attaches the renderable component to entity, replacing any
// previous one. It returns ErrCreationFailed when the engine rejects the
// configuration. A builder can be built only once.
func (b *RenderableBuilder) Build(e *Engine, entity Entity) error {
	d := e.api()
	var ok bool
	b.rec.build(d, func() driver.RenderableBuilder { return d.NewRenderableBuilder(b.count) },
		d.DestroyRenderableBuilder,
		func(nb driver.RenderableBuilder) { ok = d.RenderableBuilderBuild(nb, e.raw(), uint32(entity)) })
	if !ok {
		return creationFailed("renderable")
	}
	return nil
}

// RenderableManager gives access to the renderable components of an
// engine. It is borrowed from the engine and has no lifetime of its own.
type RenderableManager struct {
	engine *Engine
}

// HasComponent reports whether entity has a renderable component.
func (rm *RenderableManager) HasComponent(entity Entity) bool {
	return rm.engine.api().RenderableHasComponent(rm.engine.raw(), uint32(entity))
}

// Destroy removes entity's renderable component, if any.
func (rm *RenderableManager) Destroy(entity Entity) {
	rm.engine.api().RenderableDestroy(rm.engine.raw(), uint32(entity))
}
