package filament

import (
	"time"

	"github.com/gogpu/filament/driver"
)

// ClearOptions controls how the renderer clears the swapchain at the
// start of a frame.
type ClearOptions struct {
	// ClearColor is the linear RGBA clear color.
	ClearColor [4]float32
	// Clear clears the target before rendering.
	Clear bool
	// Discard drops the previous content of the target.
	Discard bool
}

// DefaultClearOptions returns opaque blue with clearing and discarding
// enabled.
func DefaultClearOptions() ClearOptions {
	return ClearOptions{
		ClearColor: [4]float32{0, 0, 1, 1},
		Clear:      true,
		Discard:    true,
	}
}

// DisplayInfo describes the display the swapchain presents to.
type DisplayInfo struct {
	// RefreshRate in Hz.
	RefreshRate float32
	// PresentationDeadline is how long before vsync a frame must be
	// submitted.
	PresentationDeadline time.Duration
	// VsyncOffset is the offset of the application's vsync relative to
	// the display's.
	VsyncOffset time.Duration
}

// FrameRateOptions controls dynamic resolution scaling.
type FrameRateOptions struct {
	// HeadRoomRatio is the fraction of the frame time kept in reserve.
	HeadRoomRatio float32
	// ScaleRate is how fast the scale factor adapts.
	ScaleRate float32
	// History is the number of frames averaged.
	History uint8
	// Interval is the desired frame interval in vsync periods.
	Interval uint8
}

// CopyFrameFlags selects what CopyFrame does besides copying.
type CopyFrameFlags uint32

const (
	// CopyFrameCommit presents the destination swapchain after the copy.
	CopyFrameCommit CopyFrameFlags = 1 << iota
	// CopyFrameSetPresentationTime sets the presentation time of the
	// destination from the current frame.
	CopyFrameSetPresentationTime
	// CopyFrameClear clears the destination before the copy.
	CopyFrameClear
)

// Viewport is a rectangle in pixels, origin at the bottom left.
type Viewport struct {
	Left   int32
	Bottom int32
	Width  uint32
	Height uint32
}

// Renderer draws views into a swapchain, one frame at a time.
type Renderer struct {
	h      *handle[driver.Renderer]
	engine *Engine
}

// Clone returns a new owner of the same renderer.
func (r *Renderer) Clone() *Renderer { return &Renderer{h: r.h.clone(), engine: r.engine} }

// Release gives up this clone; the last release destroys the renderer.
func (r *Renderer) Release() { r.h.release() }

// Equal reports whether r and other refer to the same native renderer.
func (r *Renderer) Equal(other *Renderer) bool { return other != nil && same(r.h, other.h) }

// ID returns the native address, usable as a map key.
func (r *Renderer) ID() uintptr { return r.h.id() }

// Engine returns the engine that owns r. The returned Engine is borrowed
// and must not be released.
func (r *Renderer) Engine() *Engine { return r.engine }

// BeginFrame starts a frame on sc. It returns false when the frame should
// be skipped, in which case Render and EndFrame must not be called.
// vsyncSteadyClockTimeNano is the time of the vsync that triggered the
// frame, or zero.
func (r *Renderer) BeginFrame(sc *SwapChain, vsyncSteadyClockTimeNano uint64) bool {
	return r.engine.core.drv.RendererBeginFrame(r.h.raw(), sc.h.raw(), vsyncSteadyClockTimeNano)
}

// Render draws v into the current frame.
func (r *Renderer) Render(v *View) {
	r.engine.core.drv.RendererRender(r.h.raw(), v.h.raw())
}

// EndFrame finishes the current frame and schedules its presentation.
func (r *Renderer) EndFrame() {
	r.engine.core.drv.RendererEndFrame(r.h.raw())
}

// CopyFrame copies the current frame's srcViewport into dstViewport of dst.
// It must be called between BeginFrame and EndFrame.
func (r *Renderer) CopyFrame(dst *SwapChain, dstViewport, srcViewport Viewport, flags CopyFrameFlags) {
	dvp, svp := driver.Viewport(dstViewport), driver.Viewport(srcViewport)
	r.engine.core.drv.RendererCopyFrame(r.h.raw(), dst.h.raw(), &dvp, &svp, uint32(flags))
}

// SetClearOptions sets how the swapchain is cleared at the start of each
// frame.
func (r *Renderer) SetClearOptions(opts ClearOptions) {
	r.engine.core.drv.RendererSetClearOptions(r.h.raw(), &driver.ClearOptions{
		ClearColor: opts.ClearColor,
		Clear:      opts.Clear,
		Discard:    opts.Discard,
	})
}

// SetDisplayInfo describes the display the renderer targets.
func (r *Renderer) SetDisplayInfo(info DisplayInfo) {
	r.engine.core.drv.RendererSetDisplayInfo(r.h.raw(), &driver.DisplayInfo{
		RefreshRate:               info.RefreshRate,
		PresentationDeadlineNanos: uint64(info.PresentationDeadline.Nanoseconds()),
		VsyncOffsetNanos:          uint64(info.VsyncOffset.Nanoseconds()),
	})
}

// SetFrameRateOptions configures dynamic resolution scaling.
func (r *Renderer) SetFrameRateOptions(opts FrameRateOptions) {
	r.engine.core.drv.RendererSetFrameRateOptions(r.h.raw(), &driver.FrameRateOptions{
		HeadRoomRatio: opts.HeadRoomRatio,
		ScaleRate:     opts.ScaleRate,
		History:       opts.History,
		Interval:      opts.Interval,
	})
}

// UserTime returns the seconds elapsed since the renderer was created or
// ResetUserTime was called.
func (r *Renderer) UserTime() float64 {
	return r.engine.core.drv.RendererUserTime(r.h.raw())
}

// ResetUserTime restarts the UserTime clock.
func (r *Renderer) ResetUserTime() {
	r.engine.core.drv.RendererResetUserTime(r.h.raw())
}
