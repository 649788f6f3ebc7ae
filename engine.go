package filament

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/filament/driver"
	_ "github.com/gogpu/filament/driver/native" // registers the native driver
	_ "github.com/gogpu/filament/driver/noop"   // registers the fallback driver
	"github.com/gogpu/filament/internal/transfer"
)

// engineCore is shared by every clone of an Engine.
type engineCore struct {
	drv   driver.Driver
	table *transfer.Table
}

// Engine is the root resource owner. Every other object is created through
// an Engine and keeps a clone of it, so the native engine is destroyed only
// after the caller's clones and every object created from it are released.
type Engine struct {
	h    *handle[driver.Engine]
	core *engineCore
}

// NewEngine creates an engine on the requested backend.
//
// It returns an error wrapping ErrCreationFailed when no driver is available
// or the engine could not be created.
func NewEngine(backend Backend, opts ...EngineOption) (*Engine, error) {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	drv := o.driver
	if drv == nil {
		var err error
		if drv, err = driver.Open(o.driverName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCreationFailed, err)
		}
	}

	p := drv.CreateEngine(uint8(backend))
	if p == 0 {
		return nil, fmt.Errorf("%w: engine (backend %s, driver %s)", ErrCreationFailed, backend, drv.Name())
	}

	core := &engineCore{drv: drv, table: transfer.NewTable(Logger)}
	trackDriver(drv)
	h := newHandle("Engine", p, func(p driver.Engine) {
		drv.DestroyEngine(p)
		core.table.Abandon()
		untrackDriver(drv)
	}, nil)
	return &Engine{h: h, core: core}, nil
}

// Clone returns a new owner of the same engine.
func (e *Engine) Clone() *Engine {
	return &Engine{h: e.h.clone(), core: e.core}
}

// Release gives up this clone. The native engine is destroyed when the
// last clone, including those held by objects created from it, is
// released. Releasing the same clone twice is a no-op.
func (e *Engine) Release() { e.h.release() }

// Equal reports whether e and other refer to the same native engine.
func (e *Engine) Equal(other *Engine) bool { return other != nil && same(e.h, other.h) }

// ID returns the native engine address, usable as a map key.
func (e *Engine) ID() uintptr { return e.h.id() }

// Driver returns the driver the engine forwards calls to.
func (e *Engine) Driver() driver.Driver { return e.core.drv }

func (e *Engine) raw() driver.Engine { return e.h.raw() }

func (e *Engine) api() driver.Driver {
	e.h.check()
	return e.core.drv
}

// Backend returns the backend the engine actually runs on.
func (e *Engine) Backend() Backend {
	return Backend(e.api().EngineBackend(e.raw()))
}

// Execute kicks the engine's command queue without waiting. Buffer release
// callbacks may fire during or after the call.
func (e *Engine) Execute() {
	e.api().Execute(e.raw())
}

// FlushAndWait submits all pending commands and waits until the engine
// processed them.
func (e *Engine) FlushAndWait() {
	e.api().FlushAndWait(e.raw())
}

// DestroyEntity removes every component the engine attached to entity.
// The entity id itself stays alive; see EntityManager.Destroy.
func (e *Engine) DestroyEntity(entity Entity) {
	e.api().DestroyEntity(e.raw(), uint32(entity))
}

// IsTextureFormatSupported reports whether the backend can create textures
// of the given format.
func (e *Engine) IsTextureFormatSupported(format InternalFormat) bool {
	return e.api().TextureFormatSupported(e.raw(), uint16(format))
}

// InFlightBuffers returns the number of buffers handed to the engine whose
// release callback has not fired yet.
func (e *Engine) InFlightBuffers() int {
	return e.core.table.Len()
}

// dependent wraps p, an object owned by e. The handle keeps a clone of e
// until the object is destroyed; that clone is returned as well so the
// object can reach its engine.
func dependent[P native](e *Engine, kind string, p P, destroy func(driver.Engine, P)) (*handle[P], *Engine) {
	ec := e.Clone()
	h := newHandle(kind, p, func(p P) { destroy(ec.raw(), p) }, ec.Release)
	return h, ec
}

func creationFailed(kind string) error {
	return fmt.Errorf("%w: %s", ErrCreationFailed, kind)
}

// CreateRenderer creates a renderer.
func (e *Engine) CreateRenderer() (*Renderer, error) {
	d := e.api()
	p := d.CreateRenderer(e.raw())
	if p == 0 {
		return nil, creationFailed("renderer")
	}
	h, ec := dependent(e, "Renderer", p, d.DestroyRenderer)
	return &Renderer{h: h, engine: ec}, nil
}

// CreateScene creates an empty scene.
func (e *Engine) CreateScene() (*Scene, error) {
	d := e.api()
	p := d.CreateScene(e.raw())
	if p == 0 {
		return nil, creationFailed("scene")
	}
	h, ec := dependent(e, "Scene", p, d.DestroyScene)
	return &Scene{h: h, engine: ec}, nil
}

// CreateView creates a view.
func (e *Engine) CreateView() (*View, error) {
	d := e.api()
	p := d.CreateView(e.raw())
	if p == 0 {
		return nil, creationFailed("view")
	}
	h, ec := dependent(e, "View", p, d.DestroyView)
	return &View{h: h, engine: ec}, nil
}

// CreateCamera attaches a camera component to entity. The entity receives
// an identity transform if it has none.
func (e *Engine) CreateCamera(entity Entity) (*Camera, error) {
	d := e.api()
	p := d.CreateCamera(e.raw(), uint32(entity))
	if p == 0 {
		return nil, creationFailed("camera")
	}
	h, ec := dependent(e, "Camera", p, d.DestroyCamera)
	return &Camera{h: h, engine: ec}, nil
}

// CreateOrphanCamera creates a camera on a new entity of its own. The
// entity lives exactly as long as the camera.
func (e *Engine) CreateOrphanCamera() (*Camera, error) {
	d := e.api()
	p := d.CreateOrphanCamera(e.raw())
	if p == 0 {
		return nil, creationFailed("camera")
	}
	h, ec := dependent(e, "Camera", p, d.DestroyCamera)
	return &Camera{h: h, engine: ec}, nil
}

// CreateSwapChain creates a swapchain presenting to a native surface. The
// surface pointer is passed through unmodified and must outlive the
// swapchain.
func (e *Engine) CreateSwapChain(surface unsafe.Pointer, flags SwapChainFlags) (*SwapChain, error) {
	d := e.api()
	p := d.CreateSwapChain(e.raw(), surface, uint64(flags))
	if p == 0 {
		return nil, creationFailed("swapchain")
	}
	h, ec := dependent(e, "SwapChain", p, d.DestroySwapChain)
	return &SwapChain{h: h, engine: ec}, nil
}

// CreateHeadlessSwapChain creates an offscreen swapchain of the given size
// in pixels.
func (e *Engine) CreateHeadlessSwapChain(width, height uint32, flags SwapChainFlags) (*SwapChain, error) {
	d := e.api()
	p := d.CreateHeadlessSwapChain(e.raw(), width, height, uint64(flags))
	if p == 0 {
		return nil, creationFailed("headless swapchain")
	}
	h, ec := dependent(e, "SwapChain", p, d.DestroySwapChain)
	return &SwapChain{h: h, engine: ec, width: width, height: height}, nil
}

// CreateMaterial creates a material from a compiled material package. The
// bytes are passed to the engine verbatim.
func (e *Engine) CreateMaterial(pkg []byte) (*Material, error) {
	d := e.api()
	p := d.CreateMaterial(e.raw(), pkg)
	if p == 0 {
		return nil, creationFailed("material")
	}
	h, ec := dependent(e, "Material", p, d.DestroyMaterial)
	return &Material{h: h, engine: ec}, nil
}

// TransformManager returns the engine's transform manager. It is borrowed
// from the engine and valid while e is.
func (e *Engine) TransformManager() *TransformManager {
	return &TransformManager{engine: e, tm: e.api().TransformManager(e.raw())}
}

// RenderableManager returns the engine's renderable manager. It is
// borrowed from the engine and valid while e is.
func (e *Engine) RenderableManager() *RenderableManager {
	e.h.check()
	return &RenderableManager{engine: e}
}

// EntityManager returns the entity manager of the engine's driver.
func (e *Engine) EntityManager() *EntityManager {
	d := e.api()
	return &EntityManager{drv: d, em: d.EntityManager()}
}
