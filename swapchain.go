package filament

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/filament/driver"
)

// SwapChainFlags configures a swapchain.
type SwapChainFlags uint64

const (
	// SwapChainTransparent requests an alpha channel in the surface.
	SwapChainTransparent SwapChainFlags = 1 << iota
	// SwapChainReadable allows the swapchain to be read back.
	SwapChainReadable
)

// SwapChain is the render target of a renderer: a native window surface or
// an offscreen buffer.
type SwapChain struct {
	h      *handle[driver.SwapChain]
	engine *Engine

	width, height uint32
}

// Clone returns a new owner of the same swapchain.
func (sc *SwapChain) Clone() *SwapChain {
	return &SwapChain{h: sc.h.clone(), engine: sc.engine, width: sc.width, height: sc.height}
}

// Release gives up this clone; the last release destroys the swapchain.
func (sc *SwapChain) Release() { sc.h.release() }

// Equal reports whether sc and other refer to the same native swapchain.
func (sc *SwapChain) Equal(other *SwapChain) bool { return other != nil && same(sc.h, other.h) }

// ID returns the native address, usable as a map key.
func (sc *SwapChain) ID() uintptr { return sc.h.id() }

// Engine returns the engine that owns sc. The returned Engine is borrowed
// and must not be released.
func (sc *SwapChain) Engine() *Engine { return sc.engine }

// NativeWindow returns the surface the swapchain was created with, or nil
// for a headless swapchain.
func (sc *SwapChain) NativeWindow() unsafe.Pointer {
	return sc.engine.core.drv.SwapChainNativeWindow(sc.h.raw())
}

// Size returns the pixel size of a headless swapchain, or zero for a
// window swapchain.
func (sc *SwapChain) Size() (width, height uint32) {
	sc.h.check()
	return sc.width, sc.height
}

// Viewport returns a viewport covering the whole headless swapchain.
func (sc *SwapChain) Viewport() Viewport {
	w, h := sc.Size()
	return Viewport{Width: w, Height: h}
}

// CreateSwapChainForWindow creates a headless swapchain sized to the
// physical pixel size of a window: its logical size times its scale
// factor. Rendering into it and presenting the result is left to the
// window's host.
func (e *Engine) CreateSwapChainForWindow(w gpucontext.WindowProvider, flags SwapChainFlags) (*SwapChain, error) {
	width, height := PhysicalSize(w)
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: swapchain for empty window", ErrCreationFailed)
	}
	return e.CreateHeadlessSwapChain(width, height, flags)
}

// PhysicalSize returns the size of a window in physical pixels.
func PhysicalSize(w gpucontext.WindowProvider) (width, height uint32) {
	lw, lh := w.Size()
	scale := w.ScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	px := func(v int) uint32 {
		if v <= 0 {
			return 0
		}
		return uint32(math.Round(float64(v) * scale))
	}
	return px(lw), px(lh)
}
