package noop

import "github.com/gogpu/filament/driver"

type sceneState struct {
	owned
	entities map[uint32]struct{}
}

type viewState struct {
	owned
	name        string
	scene       driver.Scene
	camera      driver.Camera
	viewport    driver.Viewport
	ao          uint8
	aoOptions   driver.AmbientOcclusionOptions
	aa          uint8
	dithering   uint8
	toneMapping uint8
}

// CreateScene creates an empty scene.
func (d *Driver) CreateScene(e driver.Engine) driver.Scene {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	if d.fails(KindScene) {
		return 0
	}
	s := driver.Scene(d.alloc())
	d.scenes[s] = &sceneState{owned: owned{engine: e}, entities: make(map[uint32]struct{})}
	d.track(KindScene)
	return s
}

// DestroyScene destroys s. Views still pointing at s lose their scene.
func (d *Driver) DestroyScene(e driver.Engine, s driver.Scene) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	lookup(d.scenes, s, KindScene)
	delete(d.scenes, s)
	for _, v := range d.views {
		if v.scene == s {
			v.scene = 0
		}
	}
	d.untrack(KindScene)
}

func (d *Driver) SceneAddEntity(s driver.Scene, entity uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if entity == 0 {
		return
	}
	lookup(d.scenes, s, KindScene).entities[entity] = struct{}{}
}

func (d *Driver) SceneAddEntities(s driver.Scene, entities []uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ss := lookup(d.scenes, s, KindScene)
	for _, e := range entities {
		if e != 0 {
			ss.entities[e] = struct{}{}
		}
	}
}

func (d *Driver) SceneRemove(s driver.Scene, entity uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(lookup(d.scenes, s, KindScene).entities, entity)
}

func (d *Driver) SceneHasEntity(s driver.Scene, entity uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := lookup(d.scenes, s, KindScene).entities[entity]
	return ok
}

// SceneRenderableCount counts the scene's entities that carry a renderable
// component.
func (d *Driver) SceneRenderableCount(s driver.Scene) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	ss := lookup(d.scenes, s, KindScene)
	es := d.engines[ss.engine]
	var n uint64
	for e := range ss.entities {
		if _, ok := es.renderables[e]; ok {
			n++
		}
	}
	return n
}

// SceneLightCount is always zero: the driver has no light manager.
func (d *Driver) SceneLightCount(s driver.Scene) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.scenes, s, KindScene)
	return 0
}

// CreateView creates a view with the engine's default post-processing.
func (d *Driver) CreateView(e driver.Engine) driver.View {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	if d.fails(KindView) {
		return 0
	}
	v := driver.View(d.alloc())
	d.views[v] = &viewState{
		owned: owned{engine: e},
		aoOptions: driver.AmbientOcclusionOptions{
			Radius:     0.3,
			Bias:       0.0005,
			Power:      1,
			Resolution: 0.5,
			Intensity:  1,
		},
		aa:          1,
		dithering:   1,
		toneMapping: 1,
	}
	d.track(KindView)
	return v
}

func (d *Driver) DestroyView(e driver.Engine, v driver.View) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	lookup(d.views, v, KindView)
	delete(d.views, v)
	d.untrack(KindView)
}

// ViewSetScene attaches s to v; 0 detaches.
func (d *Driver) ViewSetScene(v driver.View, s driver.Scene) {
	d.mu.Lock()
	defer d.mu.Unlock()
	vs := lookup(d.views, v, KindView)
	if s != 0 {
		lookup(d.scenes, s, KindScene)
	}
	vs.scene = s
}

// ViewSetCamera attaches c to v; 0 detaches.
func (d *Driver) ViewSetCamera(v driver.View, c driver.Camera) {
	d.mu.Lock()
	defer d.mu.Unlock()
	vs := lookup(d.views, v, KindView)
	if c != 0 {
		lookup(d.cameras, c, KindCamera)
	}
	vs.camera = c
}

func (d *Driver) ViewSetViewport(v driver.View, vp *driver.Viewport) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.views, v, KindView).viewport = *vp
}

func (d *Driver) ViewViewport(v driver.View) driver.Viewport {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.views, v, KindView).viewport
}

func (d *Driver) ViewSetName(v driver.View, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.views, v, KindView).name = name
}

func (d *Driver) ViewName(v driver.View) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.views, v, KindView).name
}

func (d *Driver) ViewSetAmbientOcclusion(v driver.View, mode uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.views, v, KindView).ao = mode
}

func (d *Driver) ViewAmbientOcclusion(v driver.View) uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.views, v, KindView).ao
}

func (d *Driver) ViewSetAmbientOcclusionOptions(v driver.View, opts *driver.AmbientOcclusionOptions) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.views, v, KindView).aoOptions = *opts
}

func (d *Driver) ViewAmbientOcclusionOptions(v driver.View) driver.AmbientOcclusionOptions {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.views, v, KindView).aoOptions
}

func (d *Driver) ViewSetAntiAliasing(v driver.View, mode uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.views, v, KindView).aa = mode
}

func (d *Driver) ViewAntiAliasing(v driver.View) uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.views, v, KindView).aa
}

func (d *Driver) ViewSetDithering(v driver.View, mode uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.views, v, KindView).dithering = mode
}

func (d *Driver) ViewDithering(v driver.View) uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.views, v, KindView).dithering
}

func (d *Driver) ViewSetToneMapping(v driver.View, mode uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.views, v, KindView).toneMapping = mode
}

func (d *Driver) ViewToneMapping(v driver.View) uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.views, v, KindView).toneMapping
}

// ViewAttachments returns the scene and camera currently attached to v.
func (d *Driver) ViewAttachments(v driver.View) (driver.Scene, driver.Camera) {
	d.mu.Lock()
	defer d.mu.Unlock()
	vs := lookup(d.views, v, KindView)
	return vs.scene, vs.camera
}
