package noop

import (
	"fmt"

	"github.com/gogpu/filament/driver"
)

var identity = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// mul returns a*b for column-major 4x4 matrices.
func mul(a, b *[16]float32) [16]float32 {
	var r [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = s
		}
	}
	return r
}

type transformNode struct {
	entity uint32
	parent uint32
	local  [16]float32
}

// transformTable stores transform components. Instances index nodes and
// are never reused; instance 0 means "none".
type transformTable struct {
	nodes    []transformNode
	byEntity map[uint32]uint32
}

func newTransformTable() *transformTable {
	return &transformTable{
		nodes:    make([]transformNode, 1),
		byEntity: make(map[uint32]uint32),
	}
}

func (t *transformTable) valid(inst uint32) bool {
	return inst != 0 && int(inst) < len(t.nodes) && t.nodes[inst].entity != 0
}

func (t *transformTable) create(entity, parent uint32, local [16]float32) uint32 {
	if !t.valid(parent) {
		parent = 0
	}
	if inst, ok := t.byEntity[entity]; ok {
		t.nodes[inst].local = local
		t.setParent(inst, parent)
		return inst
	}
	inst := uint32(len(t.nodes))
	t.nodes = append(t.nodes, transformNode{entity: entity, parent: parent, local: local})
	t.byEntity[entity] = inst
	return inst
}

// setParent reparents inst, ignoring changes that would create a cycle.
func (t *transformTable) setParent(inst, parent uint32) {
	for p := parent; p != 0; p = t.nodes[p].parent {
		if p == inst {
			return
		}
	}
	t.nodes[inst].parent = parent
}

func (t *transformTable) world(inst uint32) [16]float32 {
	m := t.nodes[inst].local
	for p := t.nodes[inst].parent; p != 0; p = t.nodes[p].parent {
		m = mul(&t.nodes[p].local, &m)
	}
	return m
}

func (t *transformTable) destroy(entity uint32) {
	inst, ok := t.byEntity[entity]
	if !ok {
		return
	}
	delete(t.byEntity, entity)
	t.nodes[inst] = transformNode{}
	for i := range t.nodes {
		if t.nodes[i].parent == inst {
			t.nodes[i].parent = 0
		}
	}
}

// transforms returns the table behind tm. Caller holds mu.
func (d *Driver) transforms(tm driver.TransformManager) *transformTable {
	e, ok := d.transformMgr[tm]
	if !ok {
		panic(fmt.Sprintf("noop: invalid TransformManager %#x", uintptr(tm)))
	}
	return d.engines[e].transforms
}

// TransformManager returns the engine's transform manager.
func (d *Driver) TransformManager(e driver.Engine) driver.TransformManager {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.engines, e, KindEngine).tm
}

// TransformCreate attaches a transform component to entity. A nil local
// means identity; an invalid parent means none.
func (d *Driver) TransformCreate(tm driver.TransformManager, entity, parent uint32, local *[16]float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	m := identity
	if local != nil {
		m = *local
	}
	d.transforms(tm).create(entity, parent, m)
}

// TransformInstance returns the component instance of entity, or 0.
func (d *Driver) TransformInstance(tm driver.TransformManager, entity uint32) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.transforms(tm).byEntity[entity]
}

// TransformSetTransform replaces the local transform of instance.
func (d *Driver) TransformSetTransform(tm driver.TransformManager, instance uint32, local *[16]float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := d.transforms(tm)
	if t.valid(instance) {
		t.nodes[instance].local = *local
	}
}

// TransformTransform returns the local transform of instance.
func (d *Driver) TransformTransform(tm driver.TransformManager, instance uint32) ([16]float32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := d.transforms(tm)
	if !t.valid(instance) {
		return [16]float32{}, false
	}
	return t.nodes[instance].local, true
}

// TransformWorldTransform returns the transform of instance composed with
// all of its ancestors.
func (d *Driver) TransformWorldTransform(tm driver.TransformManager, instance uint32) ([16]float32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := d.transforms(tm)
	if !t.valid(instance) {
		return [16]float32{}, false
	}
	return t.world(instance), true
}

// TransformSetParent reparents instance; parent 0 detaches it.
func (d *Driver) TransformSetParent(tm driver.TransformManager, instance, parent uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := d.transforms(tm)
	if !t.valid(instance) {
		return
	}
	if !t.valid(parent) {
		parent = 0
	}
	t.setParent(instance, parent)
}

// TransformParent returns the entity of the parent of instance, or 0.
func (d *Driver) TransformParent(tm driver.TransformManager, instance uint32) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := d.transforms(tm)
	if !t.valid(instance) {
		return 0
	}
	if p := t.nodes[instance].parent; p != 0 {
		return t.nodes[p].entity
	}
	return 0
}

// TransformDestroy removes the transform component of entity. Its children
// become roots.
func (d *Driver) TransformDestroy(tm driver.TransformManager, entity uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.transforms(tm).destroy(entity)
}
