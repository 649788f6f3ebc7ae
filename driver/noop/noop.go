package noop

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/filament/driver"
)

var _ driver.Driver = (*Driver)(nil)

func init() {
	driver.Register(driver.DriverNoop, func() driver.Driver { return New() })
}

// Kind names a class of engine object for the instrumentation counters.
type Kind string

// Object kinds tracked by the driver.
const (
	KindEngine           Kind = "Engine"
	KindRenderer         Kind = "Renderer"
	KindScene            Kind = "Scene"
	KindView             Kind = "View"
	KindCamera           Kind = "Camera"
	KindSwapChain        Kind = "SwapChain"
	KindVertexBuffer     Kind = "VertexBuffer"
	KindIndexBuffer      Kind = "IndexBuffer"
	KindTexture          Kind = "Texture"
	KindMaterial         Kind = "Material"
	KindMaterialInstance Kind = "MaterialInstance"
	KindRenderable       Kind = "Renderable"
)

// Option configures a Driver.
type Option func(*config)

type config struct {
	asyncRelease bool
	failing      map[Kind]bool
}

// WithAsyncRelease delivers buffer release callbacks from a separate
// goroutine instead of the goroutine that flushes the engine.
func WithAsyncRelease() Option {
	return func(c *config) {
		c.asyncRelease = true
	}
}

// WithFailing makes creation of the given kinds return the null pointer.
// With no kinds, every creation fails.
func WithFailing(kinds ...Kind) Option {
	return func(c *config) {
		c.failing = failSet(kinds)
	}
}

// allKinds lists every kind that creation can fail for.
var allKinds = []Kind{
	KindEngine, KindRenderer, KindScene, KindView, KindCamera, KindSwapChain,
	KindVertexBuffer, KindIndexBuffer, KindTexture, KindMaterial,
	KindMaterialInstance, KindRenderable,
}

func failSet(kinds []Kind) map[Kind]bool {
	if len(kinds) == 0 {
		kinds = allKinds
	}
	m := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

// pendingRelease is an uploaded buffer waiting for the engine to consume it.
type pendingRelease struct {
	engine driver.Engine
	desc   driver.BufferDescriptor
	sink   func([]byte)
}

// Driver emulates the engine in process. Objects live in Go maps keyed by
// fake addresses; nothing is drawn. It is safe for concurrent use.
type Driver struct {
	mu  sync.Mutex
	cfg config

	next uintptr

	engines      map[driver.Engine]*engineState
	renderers    map[driver.Renderer]*rendererState
	scenes       map[driver.Scene]*sceneState
	views        map[driver.View]*viewState
	cameras      map[driver.Camera]*cameraState
	swapChains   map[driver.SwapChain]*swapChainState
	vertexBufs   map[driver.VertexBuffer]*vertexBufferState
	indexBufs    map[driver.IndexBuffer]*indexBufferState
	textures     map[driver.Texture]*textureState
	materials    map[driver.Material]*materialState
	instances    map[driver.MaterialInstance]*instanceState
	transformMgr map[driver.TransformManager]driver.Engine

	vbBuilders  map[driver.VertexBufferBuilder]*vertexBufferBuilder
	ibBuilders  map[driver.IndexBufferBuilder]*indexBufferBuilder
	texBuilders map[driver.TextureBuilder]*textureBuilder
	rbBuilders  map[driver.RenderableBuilder]*renderableBuilder

	entityMgr driver.EntityManager
	entities  entityRegistry

	pending  []pendingRelease
	inflight sync.WaitGroup
	released atomic.Int64

	created   map[Kind]int
	destroyed map[Kind]int

	logger atomic.Pointer[slog.Logger]
}

// New creates a driver with its own object tables and entity registry.
func New(opts ...Option) *Driver {
	d := &Driver{
		next:         0x1000,
		engines:      make(map[driver.Engine]*engineState),
		renderers:    make(map[driver.Renderer]*rendererState),
		scenes:       make(map[driver.Scene]*sceneState),
		views:        make(map[driver.View]*viewState),
		cameras:      make(map[driver.Camera]*cameraState),
		swapChains:   make(map[driver.SwapChain]*swapChainState),
		vertexBufs:   make(map[driver.VertexBuffer]*vertexBufferState),
		indexBufs:    make(map[driver.IndexBuffer]*indexBufferState),
		textures:     make(map[driver.Texture]*textureState),
		materials:    make(map[driver.Material]*materialState),
		instances:    make(map[driver.MaterialInstance]*instanceState),
		transformMgr: make(map[driver.TransformManager]driver.Engine),
		vbBuilders:   make(map[driver.VertexBufferBuilder]*vertexBufferBuilder),
		ibBuilders:   make(map[driver.IndexBufferBuilder]*indexBufferBuilder),
		texBuilders:  make(map[driver.TextureBuilder]*textureBuilder),
		rbBuilders:   make(map[driver.RenderableBuilder]*renderableBuilder),
		entities:     newEntityRegistry(),
		created:      make(map[Kind]int),
		destroyed:    make(map[Kind]int),
	}
	for _, opt := range opts {
		opt(&d.cfg)
	}
	d.entityMgr = driver.EntityManager(d.alloc())
	d.logger.Store(slog.New(slog.DiscardHandler))
	return d
}

// Name returns "noop".
func (d *Driver) Name() string { return driver.DriverNoop }

// SetLogger sets the logger used for engine diagnostics. Nil disables
// logging.
func (d *Driver) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	d.logger.Store(l)
}

func (d *Driver) log() *slog.Logger { return d.logger.Load() }

// SetFailing replaces the set of kinds whose creation returns null.
// Calling it with no kinds makes every creation fail; use ClearFailing to
// restore normal behavior.
func (d *Driver) SetFailing(kinds ...Kind) {
	d.mu.Lock()
	d.cfg.failing = failSet(kinds)
	d.mu.Unlock()
}

// ClearFailing makes every creation succeed again.
func (d *Driver) ClearFailing() {
	d.mu.Lock()
	d.cfg.failing = nil
	d.mu.Unlock()
}

// Created returns how many objects of kind k were created.
func (d *Driver) Created(k Kind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.created[k]
}

// Destroyed returns how many objects of kind k were destroyed.
func (d *Driver) Destroyed(k Kind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.destroyed[k]
}

// Live returns how many objects of kind k exist.
func (d *Driver) Live(k Kind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.created[k] - d.destroyed[k]
}

// LiveBuilders returns how many native builders of any kind have not been
// destroyed.
func (d *Driver) LiveBuilders() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.vbBuilders) + len(d.ibBuilders) + len(d.texBuilders) + len(d.rbBuilders)
}

// PendingReleases returns the number of uploaded buffers whose release
// callback has not been scheduled yet.
func (d *Driver) PendingReleases() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Released returns the number of release callbacks fired.
func (d *Driver) Released() int {
	return int(d.released.Load())
}

// alloc returns a fresh fake address. Caller holds mu or is New.
func (d *Driver) alloc() uintptr {
	d.next += 0x40
	return d.next
}

// fails reports whether creation of kind k must return null. Caller holds mu.
func (d *Driver) fails(k Kind) bool {
	return d.cfg.failing[k]
}

// track records a creation. Caller holds mu.
func (d *Driver) track(k Kind) {
	d.created[k]++
	d.log().Debug("noop: create", "kind", string(k))
}

// untrack records a destruction. Caller holds mu.
func (d *Driver) untrack(k Kind) {
	d.destroyed[k]++
	d.log().Debug("noop: destroy", "kind", string(k))
}

// lookup returns the state behind a native pointer and panics on an unknown
// pointer, the way the engine aborts on a precondition failure.
func lookup[K ~uintptr, V any](m map[K]*V, k K, kind Kind) *V {
	v, ok := m[k]
	if !ok {
		panic(fmt.Sprintf("noop: invalid %s %#x", kind, uintptr(k)))
	}
	return v
}

// enqueue schedules a release. Caller holds mu.
func (d *Driver) enqueue(e driver.Engine, desc *driver.BufferDescriptor, sink func([]byte)) {
	d.pending = append(d.pending, pendingRelease{engine: e, desc: *desc, sink: sink})
}

// flush consumes every pending upload of engine e: the bytes are copied
// into the destination object and the release callback fires, on this
// goroutine or on a worker when asynchronous release is enabled.
func (d *Driver) flush(e driver.Engine) {
	d.mu.Lock()
	var batch, keep []pendingRelease
	for _, p := range d.pending {
		if p.engine == e {
			batch = append(batch, p)
		} else {
			keep = append(keep, p)
		}
	}
	d.pending = keep
	async := d.cfg.asyncRelease
	d.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	if !async {
		d.consume(batch)
		return
	}
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		d.consume(batch)
	}()
}

func (d *Driver) consume(batch []pendingRelease) {
	for i := range batch {
		p := &batch[i]
		if p.sink != nil {
			var data []byte
			if p.desc.Size > 0 {
				data = append([]byte(nil), unsafe.Slice((*byte)(p.desc.Buffer), p.desc.Size)...)
			}
			d.mu.Lock()
			p.sink(data)
			d.mu.Unlock()
		}
		p.desc.Release()
		d.released.Add(1)
	}
}

// Wait blocks until every asynchronous release callback has returned.
func (d *Driver) Wait() {
	d.inflight.Wait()
}
