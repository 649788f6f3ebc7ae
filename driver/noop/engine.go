package noop

import "github.com/gogpu/filament/driver"

// backendNoop is the value EngineBackend reports for every engine.
const backendNoop = 4

// owned is embedded by every object that belongs to an engine.
type owned struct {
	engine driver.Engine
}

func (o owned) owner() driver.Engine { return o.engine }

type engineState struct {
	transforms  *transformTable
	tm          driver.TransformManager
	renderables map[uint32]*renderableState
	cameraOf    map[uint32]driver.Camera
}

// CreateEngine creates an engine. Backends above Noop are rejected.
func (d *Driver) CreateEngine(backend uint8) driver.Engine {
	d.mu.Lock()
	defer d.mu.Unlock()
	if backend > backendNoop || d.fails(KindEngine) {
		return 0
	}
	e := driver.Engine(d.alloc())
	tm := driver.TransformManager(d.alloc())
	d.engines[e] = &engineState{
		transforms:  newTransformTable(),
		tm:          tm,
		renderables: make(map[uint32]*renderableState),
		cameraOf:    make(map[uint32]driver.Camera),
	}
	d.transformMgr[tm] = e
	d.track(KindEngine)
	return e
}

// DestroyEngine flushes pending uploads, waits for their callbacks and frees
// every object the engine still owns.
func (d *Driver) DestroyEngine(e driver.Engine) {
	d.flush(e)
	d.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	es := lookup(d.engines, e, KindEngine)

	leaked := sweep(d.renderers, e) + sweep(d.scenes, e) + sweep(d.views, e) +
		sweep(d.cameras, e) + sweep(d.swapChains, e) + sweep(d.vertexBufs, e) +
		sweep(d.indexBufs, e) + sweep(d.textures, e) + sweep(d.instances, e) +
		sweep(d.materials, e)
	if leaked > 0 {
		d.log().Warn("noop: engine destroyed with live objects", "count", leaked)
	}

	delete(d.transformMgr, es.tm)
	delete(d.engines, e)
	d.untrack(KindEngine)
}

// sweep deletes the objects of m owned by e and returns how many there were.
func sweep[K comparable, V interface{ owner() driver.Engine }](m map[K]V, e driver.Engine) int {
	n := 0
	for k, v := range m {
		if v.owner() == e {
			delete(m, k)
			n++
		}
	}
	return n
}

// EngineBackend reports the Noop backend.
func (d *Driver) EngineBackend(e driver.Engine) uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	return backendNoop
}

// Execute consumes pending uploads without waiting for asynchronous
// callbacks.
func (d *Driver) Execute(e driver.Engine) {
	d.mu.Lock()
	lookup(d.engines, e, KindEngine)
	d.mu.Unlock()
	d.flush(e)
}

// FlushAndWait consumes pending uploads and waits for their callbacks.
func (d *Driver) FlushAndWait(e driver.Engine) {
	d.mu.Lock()
	lookup(d.engines, e, KindEngine)
	d.mu.Unlock()
	d.flush(e)
	d.Wait()
}

// DestroyEntity removes the renderable, camera and transform components of
// entity. The entity id itself stays alive.
func (d *Driver) DestroyEntity(e driver.Engine, entity uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	es := lookup(d.engines, e, KindEngine)
	if _, ok := es.renderables[entity]; ok {
		delete(es.renderables, entity)
		d.untrack(KindRenderable)
	}
	if c, ok := es.cameraOf[entity]; ok {
		delete(es.cameraOf, entity)
		delete(d.cameras, c)
		d.untrack(KindCamera)
	}
	es.transforms.destroy(entity)
}
