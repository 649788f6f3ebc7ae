package noop

import "github.com/gogpu/filament/driver"

// Entity layout: the low bits index a slot, the high bits carry the slot's
// generation so a stale id never matches a reused slot. Zero is null.
const (
	entityIndexBits = 17
	entityIndexMask = 1<<entityIndexBits - 1
	entityGenMask   = 1<<(32-entityIndexBits) - 1
)

// entityRegistry hands out entity ids with a free list and per-slot
// generations. Slot 0 is reserved for the null entity.
type entityRegistry struct {
	gens  []uint32
	alive []bool
	free  []uint32
}

func newEntityRegistry() entityRegistry {
	return entityRegistry{gens: []uint32{0}, alive: []bool{false}}
}

func (r *entityRegistry) create() uint32 {
	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		index = uint32(len(r.gens))
		if index > entityIndexMask {
			return 0
		}
		r.gens = append(r.gens, 0)
		r.alive = append(r.alive, false)
	}
	r.alive[index] = true
	return r.gens[index]<<entityIndexBits | index
}

func (r *entityRegistry) isAlive(e uint32) bool {
	index := e & entityIndexMask
	if e == 0 || int(index) >= len(r.gens) {
		return false
	}
	return r.alive[index] && r.gens[index] == e>>entityIndexBits
}

func (r *entityRegistry) destroy(e uint32) bool {
	if !r.isAlive(e) {
		return false
	}
	index := e & entityIndexMask
	r.alive[index] = false
	r.gens[index] = (r.gens[index] + 1) & entityGenMask
	r.free = append(r.free, index)
	return true
}

// EntityManager returns the driver's entity manager.
func (d *Driver) EntityManager() driver.EntityManager {
	return d.entityMgr
}

// EntityCreate fills out with new entities. Slots that cannot be allocated
// are set to the null entity.
func (d *Driver) EntityCreate(em driver.EntityManager, out []uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.checkEntityManager(em)
	for i := range out {
		out[i] = d.entities.create()
	}
}

// EntityDestroy releases entities. Dead or null entities are ignored.
func (d *Driver) EntityDestroy(em driver.EntityManager, entities []uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.checkEntityManager(em)
	for _, e := range entities {
		d.entities.destroy(e)
	}
}

// EntityIsAlive reports whether entity was created and not destroyed.
func (d *Driver) EntityIsAlive(em driver.EntityManager, entity uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.checkEntityManager(em)
	return d.entities.isAlive(entity)
}

func (d *Driver) checkEntityManager(em driver.EntityManager) {
	if em != d.entityMgr {
		panic("noop: invalid EntityManager")
	}
}
