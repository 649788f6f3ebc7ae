package filament

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/filament/driver"
)

// Material is a compiled shading model. Parameters are set on its
// instances.
type Material struct {
	h      *handle[driver.Material]
	engine *Engine
}

// Clone returns a new owner of the same material.
func (m *Material) Clone() *Material { return &Material{h: m.h.clone(), engine: m.engine} }

// Release gives up this clone. The material is destroyed once every clone
// and every instance obtained from it is released.
func (m *Material) Release() { m.h.release() }

// Equal reports whether m and other refer to the same native material.
func (m *Material) Equal(other *Material) bool { return other != nil && same(m.h, other.h) }

// ID returns the native address, usable as a map key.
func (m *Material) ID() uintptr { return m.h.id() }

// Engine returns the engine that owns m. The returned Engine is borrowed
// and must not be released.
func (m *Material) Engine() *Engine { return m.engine }

// DefaultInstance returns the instance the engine created with the
// material. It belongs to the material: releasing it only drops the
// reference it keeps on m, the instance itself is never destroyed.
func (m *Material) DefaultInstance() (*MaterialInstance, error) {
	p := m.engine.core.drv.MaterialDefaultInstance(m.h.raw())
	if p == 0 {
		return nil, creationFailed("default material instance")
	}
	mc := m.Clone()
	return &MaterialInstance{
		h:      newHandle("MaterialInstance", p, nil, mc.Release),
		engine: m.engine,
	}, nil
}

// CreateInstance creates a new instance with the material's default
// parameter values.
func (m *Material) CreateInstance() (*MaterialInstance, error) {
	d := m.engine.core.drv
	p := d.MaterialCreateInstance(m.h.raw())
	if p == 0 {
		return nil, creationFailed("material instance")
	}
	mc := m.Clone()
	e := mc.engine
	h := newHandle("MaterialInstance", p, func(p driver.MaterialInstance) {
		d.DestroyMaterialInstance(e.raw(), p)
	}, mc.Release)
	return &MaterialInstance{h: h, engine: e}, nil
}

// MaterialInstance holds parameter values for a Material.
type MaterialInstance struct {
	h      *handle[driver.MaterialInstance]
	engine *Engine
}

// Clone returns a new owner of the same instance.
func (mi *MaterialInstance) Clone() *MaterialInstance {
	return &MaterialInstance{h: mi.h.clone(), engine: mi.engine}
}

// Release gives up this clone; the last release destroys an instance
// created with CreateInstance.
func (mi *MaterialInstance) Release() { mi.h.release() }

// Equal reports whether mi and other refer to the same native instance.
func (mi *MaterialInstance) Equal(other *MaterialInstance) bool {
	return other != nil && same(mi.h, other.h)
}

// ID returns the native address, usable as a map key.
func (mi *MaterialInstance) ID() uintptr { return mi.h.id() }

// Engine returns the engine that owns mi. The returned Engine is borrowed
// and must not be released.
func (mi *MaterialInstance) Engine() *Engine { return mi.engine }

// SetTexture binds texture to the sampler parameter name.
func (mi *MaterialInstance) SetTexture(name string, texture *Texture, sampler TextureSampler) {
	mi.engine.core.drv.MaterialInstanceSetTexture(mi.h.raw(), name, texture.h.raw(), sampler.Params())
}

// SetFloat sets a float parameter.
func (mi *MaterialInstance) SetFloat(name string, v float32) {
	mi.engine.core.drv.MaterialInstanceSetFloat(mi.h.raw(), name, v)
}

// SetFloat4 sets a float4 parameter.
func (mi *MaterialInstance) SetFloat4(name string, v [4]float32) {
	mi.engine.core.drv.MaterialInstanceSetFloat4(mi.h.raw(), name, v)
}

// SetColor sets a float4 parameter from a color.
func (mi *MaterialInstance) SetColor(name string, c gputypes.Color) {
	mi.SetFloat4(name, [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)})
}
