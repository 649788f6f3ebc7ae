package noop

import "github.com/gogpu/filament/driver"

type materialState struct {
	owned
	pkg             []byte
	defaultInstance driver.MaterialInstance
	live            int
}

type instanceState struct {
	owned
	material  driver.Material
	isDefault bool
	params    map[string]any
}

// TextureParameter is the value recorded by MaterialInstanceSetTexture.
type TextureParameter struct {
	Texture       driver.Texture
	SamplerParams uint32
}

// CreateMaterial accepts any non-empty package; the bytes are copied. The
// material comes with its default instance.
func (d *Driver) CreateMaterial(e driver.Engine, pkg []byte) driver.Material {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	if len(pkg) == 0 || d.fails(KindMaterial) {
		return 0
	}
	m := driver.Material(d.alloc())
	mi := driver.MaterialInstance(d.alloc())
	d.materials[m] = &materialState{
		owned:           owned{engine: e},
		pkg:             append([]byte(nil), pkg...),
		defaultInstance: mi,
	}
	d.instances[mi] = &instanceState{
		owned:     owned{engine: e},
		material:  m,
		isDefault: true,
		params:    make(map[string]any),
	}
	d.track(KindMaterial)
	return m
}

// DestroyMaterial destroys m and its default instance. It panics while
// other instances of m are alive.
func (d *Driver) DestroyMaterial(e driver.Engine, m driver.Material) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	ms := lookup(d.materials, m, KindMaterial)
	if ms.live > 0 {
		panic("noop: destroying a material with live instances")
	}
	delete(d.instances, ms.defaultInstance)
	delete(d.materials, m)
	d.untrack(KindMaterial)
}

// MaterialDefaultInstance returns null while instance creation is failing.
func (d *Driver) MaterialDefaultInstance(m driver.Material) driver.MaterialInstance {
	d.mu.Lock()
	defer d.mu.Unlock()
	ms := lookup(d.materials, m, KindMaterial)
	if d.fails(KindMaterialInstance) {
		return 0
	}
	return ms.defaultInstance
}

func (d *Driver) MaterialCreateInstance(m driver.Material) driver.MaterialInstance {
	d.mu.Lock()
	defer d.mu.Unlock()
	ms := lookup(d.materials, m, KindMaterial)
	if d.fails(KindMaterialInstance) {
		return 0
	}
	mi := driver.MaterialInstance(d.alloc())
	d.instances[mi] = &instanceState{
		owned:    owned{engine: ms.engine},
		material: m,
		params:   make(map[string]any),
	}
	ms.live++
	d.track(KindMaterialInstance)
	return mi
}

// DestroyMaterialInstance destroys mi. The default instance belongs to its
// material and cannot be destroyed.
func (d *Driver) DestroyMaterialInstance(e driver.Engine, mi driver.MaterialInstance) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	is := lookup(d.instances, mi, KindMaterialInstance)
	if is.isDefault {
		panic("noop: destroying a default material instance")
	}
	if ms, ok := d.materials[is.material]; ok {
		ms.live--
	}
	delete(d.instances, mi)
	d.untrack(KindMaterialInstance)
}

func (d *Driver) MaterialInstanceSetTexture(mi driver.MaterialInstance, name string, t driver.Texture, samplerParams uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	is := lookup(d.instances, mi, KindMaterialInstance)
	lookup(d.textures, t, KindTexture)
	is.params[name] = TextureParameter{Texture: t, SamplerParams: samplerParams}
}

func (d *Driver) MaterialInstanceSetFloat(mi driver.MaterialInstance, name string, v float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.instances, mi, KindMaterialInstance).params[name] = v
}

func (d *Driver) MaterialInstanceSetFloat4(mi driver.MaterialInstance, name string, v [4]float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.instances, mi, KindMaterialInstance).params[name] = v
}

// MaterialInstanceParameter returns the value last set for name on mi: a
// float32, a [4]float32 or a TextureParameter.
func (d *Driver) MaterialInstanceParameter(mi driver.MaterialInstance, name string) (any, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := lookup(d.instances, mi, KindMaterialInstance).params[name]
	return v, ok
}
