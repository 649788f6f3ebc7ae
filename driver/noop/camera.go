package noop

import (
	"math"
	"unsafe"

	"github.com/gogpu/filament/driver"
)

type cameraState struct {
	owned
	entity     uint32
	orphan     bool
	projection int32
	near       float64
	far        float64
}

type swapChainState struct {
	owned
	window unsafe.Pointer
	width  uint32
	height uint32
	flags  uint64
}

// CreateCamera attaches a camera component to entity, replacing any
// previous one. The entity gets an identity transform if it has none.
func (d *Driver) CreateCamera(e driver.Engine, entity uint32) driver.Camera {
	d.mu.Lock()
	defer d.mu.Unlock()
	es := lookup(d.engines, e, KindEngine)
	if d.fails(KindCamera) || !d.entities.isAlive(entity) {
		return 0
	}
	if old, ok := es.cameraOf[entity]; ok {
		delete(d.cameras, old)
		d.untrack(KindCamera)
	}
	c := driver.Camera(d.alloc())
	d.cameras[c] = &cameraState{owned: owned{engine: e}, entity: entity, near: 0.1, far: 100}
	es.cameraOf[entity] = c
	if _, ok := es.transforms.byEntity[entity]; !ok {
		es.transforms.create(entity, 0, identity)
	}
	d.track(KindCamera)
	return c
}

// CreateOrphanCamera creates a camera on a fresh entity that the camera
// owns.
func (d *Driver) CreateOrphanCamera(e driver.Engine) driver.Camera {
	d.mu.Lock()
	defer d.mu.Unlock()
	es := lookup(d.engines, e, KindEngine)
	if d.fails(KindCamera) {
		return 0
	}
	entity := d.entities.create()
	if entity == 0 {
		return 0
	}
	c := driver.Camera(d.alloc())
	d.cameras[c] = &cameraState{owned: owned{engine: e}, entity: entity, orphan: true, near: 0.1, far: 100}
	es.cameraOf[entity] = c
	es.transforms.create(entity, 0, identity)
	d.track(KindCamera)
	return c
}

// DestroyCamera removes the camera component. Destroying a camera that is
// already gone is a no-op.
func (d *Driver) DestroyCamera(e driver.Engine, c driver.Camera) {
	d.mu.Lock()
	defer d.mu.Unlock()
	es := lookup(d.engines, e, KindEngine)
	cs, ok := d.cameras[c]
	if !ok {
		return
	}
	delete(d.cameras, c)
	delete(es.cameraOf, cs.entity)
	if cs.orphan {
		es.transforms.destroy(cs.entity)
		d.entities.destroy(cs.entity)
	}
	d.untrack(KindCamera)
}

func (d *Driver) CameraSetProjection(c driver.Camera, projection int32, _, _, _, _, near, far float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cs := lookup(d.cameras, c, KindCamera)
	cs.projection = projection
	cs.near, cs.far = near, far
}

func (d *Driver) CameraSetProjectionFov(c driver.Camera, _, _, near, far float64, _ int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cs := lookup(d.cameras, c, KindCamera)
	cs.projection = 0
	cs.near, cs.far = near, far
}

// CameraLookAt sets the model matrix of the camera's entity.
func (d *Driver) CameraLookAt(c driver.Camera, eye, center, up [3]float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cs := lookup(d.cameras, c, KindCamera)
	t := d.engines[cs.engine].transforms
	m := lookAt(eye, center, up)
	if inst, ok := t.byEntity[cs.entity]; ok {
		t.nodes[inst].local = m
	} else {
		t.create(cs.entity, 0, m)
	}
}

func (d *Driver) CameraNear(c driver.Camera) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.cameras, c, KindCamera).near
}

func (d *Driver) CameraCullingFar(c driver.Camera) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.cameras, c, KindCamera).far
}

func (d *Driver) CameraEntity(c driver.Camera) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.cameras, c, KindCamera).entity
}

// lookAt builds the camera model matrix (the inverse of the view matrix).
func lookAt(eye, center, up [3]float64) [16]float32 {
	z := normalize(sub(eye, center))
	x := normalize(cross(up, z))
	y := cross(z, x)
	return [16]float32{
		float32(x[0]), float32(x[1]), float32(x[2]), 0,
		float32(y[0]), float32(y[1]), float32(y[2]), 0,
		float32(z[0]), float32(z[1]), float32(z[2]), 0,
		float32(eye[0]), float32(eye[1]), float32(eye[2]), 1,
	}
}

func sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float64) [3]float64 {
	l := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return v
	}
	return [3]float64{v[0] / l, v[1] / l, v[2] / l}
}

// CreateSwapChain wraps a native window. A nil window yields null.
func (d *Driver) CreateSwapChain(e driver.Engine, nativeWindow unsafe.Pointer, flags uint64) driver.SwapChain {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	if nativeWindow == nil || d.fails(KindSwapChain) {
		return 0
	}
	sc := driver.SwapChain(d.alloc())
	d.swapChains[sc] = &swapChainState{owned: owned{engine: e}, window: nativeWindow, flags: flags}
	d.track(KindSwapChain)
	return sc
}

// CreateHeadlessSwapChain creates an offscreen swapchain. Zero sizes yield
// null.
func (d *Driver) CreateHeadlessSwapChain(e driver.Engine, width, height uint32, flags uint64) driver.SwapChain {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	if width == 0 || height == 0 || d.fails(KindSwapChain) {
		return 0
	}
	sc := driver.SwapChain(d.alloc())
	d.swapChains[sc] = &swapChainState{owned: owned{engine: e}, width: width, height: height, flags: flags}
	d.track(KindSwapChain)
	return sc
}

func (d *Driver) DestroySwapChain(e driver.Engine, sc driver.SwapChain) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	lookup(d.swapChains, sc, KindSwapChain)
	delete(d.swapChains, sc)
	d.untrack(KindSwapChain)
}

// SwapChainNativeWindow returns the window the swapchain was created with;
// nil for headless swapchains.
func (d *Driver) SwapChainNativeWindow(sc driver.SwapChain) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.swapChains, sc, KindSwapChain).window
}

// SwapChainSize returns the size of a headless swapchain.
func (d *Driver) SwapChainSize(sc driver.SwapChain) (width, height uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := lookup(d.swapChains, sc, KindSwapChain)
	return s.width, s.height
}
