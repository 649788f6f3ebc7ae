package noop

import (
	"time"

	"github.com/gogpu/filament/driver"
)

type rendererState struct {
	owned
	clear     driver.ClearOptions
	display   driver.DisplayInfo
	frameRate driver.FrameRateOptions
	epoch     time.Time
	inFrame   bool
	frames    int
	rendered  int
	copies    int
}

// CreateRenderer creates a renderer with the engine's default options.
func (d *Driver) CreateRenderer(e driver.Engine) driver.Renderer {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	if d.fails(KindRenderer) {
		return 0
	}
	r := driver.Renderer(d.alloc())
	d.renderers[r] = &rendererState{
		owned:     owned{engine: e},
		clear:     driver.ClearOptions{Discard: true},
		display:   driver.DisplayInfo{RefreshRate: 60},
		frameRate: driver.FrameRateOptions{ScaleRate: 0.125, History: 15, Interval: 1},
		epoch:     time.Now(),
	}
	d.track(KindRenderer)
	return r
}

// DestroyRenderer destroys r.
func (d *Driver) DestroyRenderer(e driver.Engine, r driver.Renderer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	lookup(d.renderers, r, KindRenderer)
	delete(d.renderers, r)
	d.untrack(KindRenderer)
}

// RendererBeginFrame starts a frame on sc. It never skips frames.
func (d *Driver) RendererBeginFrame(r driver.Renderer, sc driver.SwapChain, _ uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	rs := lookup(d.renderers, r, KindRenderer)
	lookup(d.swapChains, sc, KindSwapChain)
	if rs.inFrame {
		panic("noop: beginFrame called inside a frame")
	}
	rs.inFrame = true
	return true
}

// RendererRender records a view render. It must be called inside a frame.
func (d *Driver) RendererRender(r driver.Renderer, v driver.View) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rs := lookup(d.renderers, r, KindRenderer)
	lookup(d.views, v, KindView)
	if !rs.inFrame {
		panic("noop: render called outside a frame")
	}
	rs.rendered++
}

// RendererEndFrame ends the current frame.
func (d *Driver) RendererEndFrame(r driver.Renderer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rs := lookup(d.renderers, r, KindRenderer)
	if !rs.inFrame {
		panic("noop: endFrame called outside a frame")
	}
	rs.inFrame = false
	rs.frames++
}

// RendererCopyFrame records a copy of the current frame into dst.
func (d *Driver) RendererCopyFrame(r driver.Renderer, dst driver.SwapChain, _, _ *driver.Viewport, _ uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rs := lookup(d.renderers, r, KindRenderer)
	lookup(d.swapChains, dst, KindSwapChain)
	if !rs.inFrame {
		panic("noop: copyFrame called outside a frame")
	}
	rs.copies++
}

func (d *Driver) RendererSetClearOptions(r driver.Renderer, opts *driver.ClearOptions) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.renderers, r, KindRenderer).clear = *opts
}

func (d *Driver) RendererSetDisplayInfo(r driver.Renderer, info *driver.DisplayInfo) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.renderers, r, KindRenderer).display = *info
}

func (d *Driver) RendererSetFrameRateOptions(r driver.Renderer, opts *driver.FrameRateOptions) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.renderers, r, KindRenderer).frameRate = *opts
}

// RendererUserTime returns the seconds elapsed since creation or the last
// reset.
func (d *Driver) RendererUserTime(r driver.Renderer) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return time.Since(lookup(d.renderers, r, KindRenderer).epoch).Seconds()
}

func (d *Driver) RendererResetUserTime(r driver.Renderer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.renderers, r, KindRenderer).epoch = time.Now()
}

// RendererStats is a snapshot of a renderer's state.
type RendererStats struct {
	Frames        int
	ViewsRendered int
	Copies        int
	Clear         driver.ClearOptions
	Display       driver.DisplayInfo
	FrameRate     driver.FrameRateOptions
}

// RendererStats returns the state of r.
func (d *Driver) RendererStats(r driver.Renderer) RendererStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	rs := lookup(d.renderers, r, KindRenderer)
	return RendererStats{
		Frames:        rs.frames,
		ViewsRendered: rs.rendered,
		Copies:        rs.copies,
		Clear:         rs.clear,
		Display:       rs.display,
		FrameRate:     rs.frameRate,
	}
}
