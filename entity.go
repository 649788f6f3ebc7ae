package filament

import "github.com/gogpu/filament/driver"

// Entity identifies a set of components (renderable, camera, transform).
// The low 17 bits index a slot and the upper bits hold the slot's
// generation, so an id is never confused with a later entity reusing its
// slot. The zero Entity is null.
type Entity uint32

// NullEntity is the entity that refers to nothing.
const NullEntity Entity = 0

const entityIndexBits = 17

// IsNull reports whether e is the null entity.
func (e Entity) IsNull() bool { return e == NullEntity }

// Index returns the slot index of e.
func (e Entity) Index() uint32 { return uint32(e) & (1<<entityIndexBits - 1) }

// Generation returns the generation of e's slot.
func (e Entity) Generation() uint32 { return uint32(e) >> entityIndexBits }

// EntityManager creates and destroys entities. It is obtained from an
// Engine and shared by every engine of the same driver.
type EntityManager struct {
	drv driver.Driver
	em  driver.EntityManager
}

// Create returns a new entity.
func (m *EntityManager) Create() Entity {
	var out [1]uint32
	m.drv.EntityCreate(m.em, out[:])
	return Entity(out[0])
}

// CreateN returns n new entities.
func (m *EntityManager) CreateN(n int) []Entity {
	out := make([]Entity, n)
	m.Fill(out)
	return out
}

// Fill replaces every element of out with a new entity.
func (m *EntityManager) Fill(out []Entity) {
	if len(out) == 0 {
		return
	}
	raw := make([]uint32, len(out))
	m.drv.EntityCreate(m.em, raw)
	for i, e := range raw {
		out[i] = Entity(e)
	}
}

// Destroy releases entities. Their components must be destroyed first
// with Engine.DestroyEntity. Dead and null entities are ignored.
func (m *EntityManager) Destroy(entities ...Entity) {
	if len(entities) == 0 {
		return
	}
	m.drv.EntityDestroy(m.em, toRaw(entities))
}

// IsAlive reports whether e was created and not destroyed.
func (m *EntityManager) IsAlive(e Entity) bool {
	return m.drv.EntityIsAlive(m.em, uint32(e))
}

func toRaw(entities []Entity) []uint32 {
	raw := make([]uint32, len(entities))
	for i, e := range entities {
		raw[i] = uint32(e)
	}
	return raw
}
