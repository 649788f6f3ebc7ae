//go:build !cgo && (linux || darwin || freebsd) && (amd64 || arm64)

package native

import (
	"runtime"
	"unsafe"

	"github.com/gogpu/filament/driver"
)

func (d *Driver) CreateEngine(backend uint8) driver.Engine {
	var r driver.Engine
	d.call(symEngineCreate, unsafe.Pointer(&r), unsafe.Pointer(&backend))
	d.logger.Load().Debug("native: engine created", "backend", backend, "engine", uintptr(r))
	return r
}

func (d *Driver) DestroyEngine(e driver.Engine) {
	d.call(symEngineDestroy, nil, unsafe.Pointer(&e))
	d.logger.Load().Debug("native: engine destroyed", "engine", uintptr(e), "pending", pendingReleases())
}

func (d *Driver) EngineBackend(e driver.Engine) uint8 {
	var r uint8
	d.call(symEngineGetBackend, unsafe.Pointer(&r), unsafe.Pointer(&e))
	return r
}

func (d *Driver) Execute(e driver.Engine) {
	d.call(symEngineExecute, nil, unsafe.Pointer(&e))
}

func (d *Driver) FlushAndWait(e driver.Engine) {
	d.call(symEngineFlushAndWait, nil, unsafe.Pointer(&e))
}

func (d *Driver) DestroyEntity(e driver.Engine, entity uint32) {
	d.call(symEngineDestroyEntity, nil, unsafe.Pointer(&e), unsafe.Pointer(&entity))
}

// PendingReleases returns the number of buffer descriptors handed to the
// library whose release callback has not fired, across all engines.
func (d *Driver) PendingReleases() int { return pendingReleases() }

func (d *Driver) CreateRenderer(e driver.Engine) driver.Renderer {
	var r driver.Renderer
	d.call(symRendererCreate, unsafe.Pointer(&r), unsafe.Pointer(&e))
	return r
}

func (d *Driver) DestroyRenderer(e driver.Engine, r driver.Renderer) {
	d.call(symRendererDestroy, nil, unsafe.Pointer(&e), unsafe.Pointer(&r))
}

func (d *Driver) RendererBeginFrame(r driver.Renderer, sc driver.SwapChain, vsyncSteadyClockTimeNano uint64) bool {
	var ok uint8
	d.call(symRendererBeginFrame, unsafe.Pointer(&ok),
		unsafe.Pointer(&r), unsafe.Pointer(&sc), unsafe.Pointer(&vsyncSteadyClockTimeNano))
	return ok != 0
}

func (d *Driver) RendererRender(r driver.Renderer, v driver.View) {
	d.call(symRendererRender, nil, unsafe.Pointer(&r), unsafe.Pointer(&v))
}

func (d *Driver) RendererEndFrame(r driver.Renderer) {
	d.call(symRendererEndFrame, nil, unsafe.Pointer(&r))
}

func (d *Driver) RendererCopyFrame(r driver.Renderer, dst driver.SwapChain, dstViewport, srcViewport *driver.Viewport, flags uint32) {
	dv, sv := unsafe.Pointer(dstViewport), unsafe.Pointer(srcViewport)
	d.call(symRendererCopyFrame, nil, unsafe.Pointer(&r), unsafe.Pointer(&dst),
		unsafe.Pointer(&dv), unsafe.Pointer(&sv), unsafe.Pointer(&flags))
}

func (d *Driver) RendererSetClearOptions(r driver.Renderer, opts *driver.ClearOptions) {
	p := unsafe.Pointer(opts)
	d.call(symRendererSetClearOptions, nil, unsafe.Pointer(&r), unsafe.Pointer(&p))
}

func (d *Driver) RendererSetDisplayInfo(r driver.Renderer, info *driver.DisplayInfo) {
	p := unsafe.Pointer(info)
	d.call(symRendererSetDisplayInfo, nil, unsafe.Pointer(&r), unsafe.Pointer(&p))
}

func (d *Driver) RendererSetFrameRateOptions(r driver.Renderer, opts *driver.FrameRateOptions) {
	p := unsafe.Pointer(opts)
	d.call(symRendererSetFrameRateOptions, nil, unsafe.Pointer(&r), unsafe.Pointer(&p))
}

func (d *Driver) RendererUserTime(r driver.Renderer) float64 {
	var t float64
	d.call(symRendererGetUserTime, unsafe.Pointer(&t), unsafe.Pointer(&r))
	return t
}

func (d *Driver) RendererResetUserTime(r driver.Renderer) {
	d.call(symRendererResetUserTime, nil, unsafe.Pointer(&r))
}

func (d *Driver) CreateScene(e driver.Engine) driver.Scene {
	var s driver.Scene
	d.call(symSceneCreate, unsafe.Pointer(&s), unsafe.Pointer(&e))
	return s
}

func (d *Driver) DestroyScene(e driver.Engine, s driver.Scene) {
	d.call(symSceneDestroy, nil, unsafe.Pointer(&e), unsafe.Pointer(&s))
}

func (d *Driver) SceneAddEntity(s driver.Scene, entity uint32) {
	d.call(symSceneAddEntity, nil, unsafe.Pointer(&s), unsafe.Pointer(&entity))
}

func (d *Driver) SceneAddEntities(s driver.Scene, entities []uint32) {
	if len(entities) == 0 {
		return
	}
	p, n := unsafe.Pointer(&entities[0]), uint64(len(entities))
	d.call(symSceneAddEntities, nil, unsafe.Pointer(&s), unsafe.Pointer(&p), unsafe.Pointer(&n))
}

func (d *Driver) SceneRemove(s driver.Scene, entity uint32) {
	d.call(symSceneRemove, nil, unsafe.Pointer(&s), unsafe.Pointer(&entity))
}

func (d *Driver) SceneHasEntity(s driver.Scene, entity uint32) bool {
	var ok uint8
	d.call(symSceneHasEntity, unsafe.Pointer(&ok), unsafe.Pointer(&s), unsafe.Pointer(&entity))
	return ok != 0
}

func (d *Driver) SceneRenderableCount(s driver.Scene) uint64 {
	var n uint64
	d.call(symSceneGetRenderableCount, unsafe.Pointer(&n), unsafe.Pointer(&s))
	return n
}

func (d *Driver) SceneLightCount(s driver.Scene) uint64 {
	var n uint64
	d.call(symSceneGetLightCount, unsafe.Pointer(&n), unsafe.Pointer(&s))
	return n
}

func (d *Driver) CreateView(e driver.Engine) driver.View {
	var v driver.View
	d.call(symViewCreate, unsafe.Pointer(&v), unsafe.Pointer(&e))
	return v
}

func (d *Driver) DestroyView(e driver.Engine, v driver.View) {
	d.call(symViewDestroy, nil, unsafe.Pointer(&e), unsafe.Pointer(&v))
}

func (d *Driver) ViewSetScene(v driver.View, s driver.Scene) {
	d.call(symViewSetScene, nil, unsafe.Pointer(&v), unsafe.Pointer(&s))
}

func (d *Driver) ViewSetCamera(v driver.View, c driver.Camera) {
	d.call(symViewSetCamera, nil, unsafe.Pointer(&v), unsafe.Pointer(&c))
}

func (d *Driver) ViewSetViewport(v driver.View, vp *driver.Viewport) {
	p := unsafe.Pointer(vp)
	d.call(symViewSetViewport, nil, unsafe.Pointer(&v), unsafe.Pointer(&p))
}

func (d *Driver) ViewViewport(v driver.View) driver.Viewport {
	vp := new(driver.Viewport)
	p := unsafe.Pointer(vp)
	d.call(symViewGetViewport, nil, unsafe.Pointer(&v), unsafe.Pointer(&p))
	return *vp
}

func (d *Driver) ViewSetName(v driver.View, name string) {
	s := cstring(name)
	p := unsafe.Pointer(&s[0])
	d.call(symViewSetName, nil, unsafe.Pointer(&v), unsafe.Pointer(&p))
	runtime.KeepAlive(s)
}

func (d *Driver) ViewName(v driver.View) string {
	var p unsafe.Pointer
	d.call(symViewGetName, unsafe.Pointer(&p), unsafe.Pointer(&v))
	return gostring(p)
}

func (d *Driver) ViewSetAmbientOcclusion(v driver.View, mode uint8) {
	d.call(symViewSetAmbientOcclusion, nil, unsafe.Pointer(&v), unsafe.Pointer(&mode))
}

func (d *Driver) ViewAmbientOcclusion(v driver.View) uint8 {
	var m uint8
	d.call(symViewGetAmbientOcclusion, unsafe.Pointer(&m), unsafe.Pointer(&v))
	return m
}

func (d *Driver) ViewSetAmbientOcclusionOptions(v driver.View, opts *driver.AmbientOcclusionOptions) {
	p := unsafe.Pointer(opts)
	d.call(symViewSetAmbientOcclusionOptions, nil, unsafe.Pointer(&v), unsafe.Pointer(&p))
}

func (d *Driver) ViewAmbientOcclusionOptions(v driver.View) driver.AmbientOcclusionOptions {
	opts := new(driver.AmbientOcclusionOptions)
	p := unsafe.Pointer(opts)
	d.call(symViewGetAmbientOcclusionOptions, nil, unsafe.Pointer(&v), unsafe.Pointer(&p))
	return *opts
}

func (d *Driver) ViewSetAntiAliasing(v driver.View, mode uint8) {
	d.call(symViewSetAntiAliasing, nil, unsafe.Pointer(&v), unsafe.Pointer(&mode))
}

func (d *Driver) ViewAntiAliasing(v driver.View) uint8 {
	var m uint8
	d.call(symViewGetAntiAliasing, unsafe.Pointer(&m), unsafe.Pointer(&v))
	return m
}

func (d *Driver) ViewSetDithering(v driver.View, mode uint8) {
	d.call(symViewSetDithering, nil, unsafe.Pointer(&v), unsafe.Pointer(&mode))
}

func (d *Driver) ViewDithering(v driver.View) uint8 {
	var m uint8
	d.call(symViewGetDithering, unsafe.Pointer(&m), unsafe.Pointer(&v))
	return m
}

func (d *Driver) ViewSetToneMapping(v driver.View, mode uint8) {
	d.call(symViewSetToneMapping, nil, unsafe.Pointer(&v), unsafe.Pointer(&mode))
}

func (d *Driver) ViewToneMapping(v driver.View) uint8 {
	var m uint8
	d.call(symViewGetToneMapping, unsafe.Pointer(&m), unsafe.Pointer(&v))
	return m
}

func (d *Driver) CreateCamera(e driver.Engine, entity uint32) driver.Camera {
	var c driver.Camera
	d.call(symCameraCreate, unsafe.Pointer(&c), unsafe.Pointer(&e), unsafe.Pointer(&entity))
	return c
}

func (d *Driver) CreateOrphanCamera(e driver.Engine) driver.Camera {
	var c driver.Camera
	d.call(symCameraCreateOrphan, unsafe.Pointer(&c), unsafe.Pointer(&e))
	return c
}

func (d *Driver) DestroyCamera(e driver.Engine, c driver.Camera) {
	d.call(symCameraDestroy, nil, unsafe.Pointer(&e), unsafe.Pointer(&c))
}

func (d *Driver) CameraSetProjection(c driver.Camera, projection int32, left, right, bottom, top, near, far float64) {
	d.call(symCameraSetProjection, nil, unsafe.Pointer(&c), unsafe.Pointer(&projection),
		unsafe.Pointer(&left), unsafe.Pointer(&right), unsafe.Pointer(&bottom),
		unsafe.Pointer(&top), unsafe.Pointer(&near), unsafe.Pointer(&far))
}

func (d *Driver) CameraSetProjectionFov(c driver.Camera, fovDegrees, aspect, near, far float64, direction int32) {
	d.call(symCameraSetProjectionFov, nil, unsafe.Pointer(&c), unsafe.Pointer(&fovDegrees),
		unsafe.Pointer(&aspect), unsafe.Pointer(&near), unsafe.Pointer(&far), unsafe.Pointer(&direction))
}

func (d *Driver) CameraLookAt(c driver.Camera, eye, center, up [3]float64) {
	pe, pc, pu := unsafe.Pointer(&eye), unsafe.Pointer(&center), unsafe.Pointer(&up)
	d.call(symCameraLookAt, nil, unsafe.Pointer(&c), unsafe.Pointer(&pe), unsafe.Pointer(&pc), unsafe.Pointer(&pu))
}

func (d *Driver) CameraNear(c driver.Camera) float64 {
	var v float64
	d.call(symCameraGetNear, unsafe.Pointer(&v), unsafe.Pointer(&c))
	return v
}

func (d *Driver) CameraCullingFar(c driver.Camera) float64 {
	var v float64
	d.call(symCameraGetCullingFar, unsafe.Pointer(&v), unsafe.Pointer(&c))
	return v
}

func (d *Driver) CameraEntity(c driver.Camera) uint32 {
	var entity uint32
	d.call(symCameraGetEntity, unsafe.Pointer(&entity), unsafe.Pointer(&c))
	return entity
}

func (d *Driver) CreateSwapChain(e driver.Engine, nativeWindow unsafe.Pointer, flags uint64) driver.SwapChain {
	var sc driver.SwapChain
	d.call(symSwapChainCreate, unsafe.Pointer(&sc), unsafe.Pointer(&e), unsafe.Pointer(&nativeWindow), unsafe.Pointer(&flags))
	return sc
}

func (d *Driver) CreateHeadlessSwapChain(e driver.Engine, width, height uint32, flags uint64) driver.SwapChain {
	var sc driver.SwapChain
	d.call(symSwapChainCreateHeadless, unsafe.Pointer(&sc), unsafe.Pointer(&e),
		unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&flags))
	return sc
}

func (d *Driver) DestroySwapChain(e driver.Engine, sc driver.SwapChain) {
	d.call(symSwapChainDestroy, nil, unsafe.Pointer(&e), unsafe.Pointer(&sc))
}

func (d *Driver) SwapChainNativeWindow(sc driver.SwapChain) unsafe.Pointer {
	var p unsafe.Pointer
	d.call(symSwapChainGetNativeWindow, unsafe.Pointer(&p), unsafe.Pointer(&sc))
	return p
}
