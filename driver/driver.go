package driver

import "unsafe"

// Native object pointers. Each is an opaque address owned by the engine;
// the zero value is the null pointer and signals a failed creation.
type (
	Engine              uintptr
	Renderer            uintptr
	Scene               uintptr
	View                uintptr
	Camera              uintptr
	SwapChain           uintptr
	VertexBuffer        uintptr
	IndexBuffer         uintptr
	Texture             uintptr
	Material            uintptr
	MaterialInstance    uintptr
	TransformManager    uintptr
	EntityManager       uintptr
	VertexBufferBuilder uintptr
	IndexBufferBuilder  uintptr
	TextureBuilder      uintptr
	RenderableBuilder   uintptr
)

// Driver is the complete foreign call surface of the engine.
//
// Implementations forward every method to the native library without
// adding behavior. Methods that create objects return the zero pointer
// when the native side fails; destroy methods never fail.
type Driver interface {
	// Name returns the driver identifier used in the registry.
	Name() string

	EngineAPI
	RendererAPI
	SceneAPI
	ViewAPI
	CameraAPI
	SwapChainAPI
	VertexBufferAPI
	IndexBufferAPI
	TextureAPI
	MaterialAPI
	RenderableAPI
	TransformAPI
	EntityAPI
}

// EngineAPI covers filament::Engine.
type EngineAPI interface {
	CreateEngine(backend uint8) Engine
	DestroyEngine(e Engine)
	EngineBackend(e Engine) uint8
	Execute(e Engine)
	FlushAndWait(e Engine)
	// DestroyEntity removes every component attached to entity.
	DestroyEntity(e Engine, entity uint32)
}

// RendererAPI covers filament::Renderer.
type RendererAPI interface {
	CreateRenderer(e Engine) Renderer
	DestroyRenderer(e Engine, r Renderer)
	RendererBeginFrame(r Renderer, sc SwapChain, vsyncSteadyClockTimeNano uint64) bool
	RendererRender(r Renderer, v View)
	RendererEndFrame(r Renderer)
	RendererCopyFrame(r Renderer, dst SwapChain, dstViewport, srcViewport *Viewport, flags uint32)
	RendererSetClearOptions(r Renderer, opts *ClearOptions)
	RendererSetDisplayInfo(r Renderer, info *DisplayInfo)
	RendererSetFrameRateOptions(r Renderer, opts *FrameRateOptions)
	RendererUserTime(r Renderer) float64
	RendererResetUserTime(r Renderer)
}

// SceneAPI covers filament::Scene.
type SceneAPI interface {
	CreateScene(e Engine) Scene
	DestroyScene(e Engine, s Scene)
	SceneAddEntity(s Scene, entity uint32)
	SceneAddEntities(s Scene, entities []uint32)
	SceneRemove(s Scene, entity uint32)
	SceneHasEntity(s Scene, entity uint32) bool
	SceneRenderableCount(s Scene) uint64
	SceneLightCount(s Scene) uint64
}

// ViewAPI covers filament::View.
type ViewAPI interface {
	CreateView(e Engine) View
	DestroyView(e Engine, v View)
	ViewSetScene(v View, s Scene)
	ViewSetCamera(v View, c Camera)
	ViewSetViewport(v View, vp *Viewport)
	ViewViewport(v View) Viewport
	ViewSetName(v View, name string)
	ViewName(v View) string
	ViewSetAmbientOcclusion(v View, mode uint8)
	ViewAmbientOcclusion(v View) uint8
	ViewSetAmbientOcclusionOptions(v View, opts *AmbientOcclusionOptions)
	ViewAmbientOcclusionOptions(v View) AmbientOcclusionOptions
	ViewSetAntiAliasing(v View, mode uint8)
	ViewAntiAliasing(v View) uint8
	ViewSetDithering(v View, mode uint8)
	ViewDithering(v View) uint8
	ViewSetToneMapping(v View, mode uint8)
	ViewToneMapping(v View) uint8
}

// CameraAPI covers filament::Camera.
type CameraAPI interface {
	CreateCamera(e Engine, entity uint32) Camera
	// CreateOrphanCamera creates a camera on a new entity owned by the
	// camera; DestroyCamera destroys that entity too.
	CreateOrphanCamera(e Engine) Camera
	DestroyCamera(e Engine, c Camera)
	CameraSetProjection(c Camera, projection int32, left, right, bottom, top, near, far float64)
	CameraSetProjectionFov(c Camera, fovDegrees, aspect, near, far float64, direction int32)
	CameraLookAt(c Camera, eye, center, up [3]float64)
	CameraNear(c Camera) float64
	CameraCullingFar(c Camera) float64
	CameraEntity(c Camera) uint32
}

// SwapChainAPI covers filament::SwapChain.
type SwapChainAPI interface {
	CreateSwapChain(e Engine, nativeWindow unsafe.Pointer, flags uint64) SwapChain
	CreateHeadlessSwapChain(e Engine, width, height uint32, flags uint64) SwapChain
	DestroySwapChain(e Engine, sc SwapChain)
	SwapChainNativeWindow(sc SwapChain) unsafe.Pointer
}

// VertexBufferAPI covers filament::VertexBuffer and its builder.
type VertexBufferAPI interface {
	NewVertexBufferBuilder() VertexBufferBuilder
	DestroyVertexBufferBuilder(b VertexBufferBuilder)
	VertexBufferBuilderBufferCount(b VertexBufferBuilder, count uint8)
	VertexBufferBuilderVertexCount(b VertexBufferBuilder, count uint32)
	VertexBufferBuilderAttribute(b VertexBufferBuilder, attribute, bufferIndex, attributeType uint8, byteOffset uint32, byteStride uint8)
	VertexBufferBuilderNormalized(b VertexBufferBuilder, attribute uint8, normalized bool)
	VertexBufferBuilderBuild(b VertexBufferBuilder, e Engine) VertexBuffer
	DestroyVertexBuffer(e Engine, vb VertexBuffer)
	// VertexBufferSetBufferAt takes ownership of desc's memory until its
	// callback fires.
	VertexBufferSetBufferAt(e Engine, vb VertexBuffer, bufferIndex uint8, desc *BufferDescriptor, byteOffset uint32)
	VertexBufferVertexCount(vb VertexBuffer) uint64
}

// IndexBufferAPI covers filament::IndexBuffer and its builder.
type IndexBufferAPI interface {
	NewIndexBufferBuilder() IndexBufferBuilder
	DestroyIndexBufferBuilder(b IndexBufferBuilder)
	IndexBufferBuilderIndexCount(b IndexBufferBuilder, count uint32)
	IndexBufferBuilderBufferType(b IndexBufferBuilder, indexType uint8)
	IndexBufferBuilderBuild(b IndexBufferBuilder, e Engine) IndexBuffer
	DestroyIndexBuffer(e Engine, ib IndexBuffer)
	// IndexBufferSetBuffer takes ownership of desc's memory until its
	// callback fires.
	IndexBufferSetBuffer(e Engine, ib IndexBuffer, desc *BufferDescriptor, byteOffset uint32)
	IndexBufferIndexCount(ib IndexBuffer) uint64
}

// TextureAPI covers filament::Texture and its builder.
type TextureAPI interface {
	NewTextureBuilder() TextureBuilder
	DestroyTextureBuilder(b TextureBuilder)
	TextureBuilderWidth(b TextureBuilder, width uint32)
	TextureBuilderHeight(b TextureBuilder, height uint32)
	TextureBuilderDepth(b TextureBuilder, depth uint32)
	TextureBuilderLevels(b TextureBuilder, levels uint8)
	TextureBuilderSampler(b TextureBuilder, sampler uint8)
	TextureBuilderFormat(b TextureBuilder, format uint16)
	TextureBuilderUsage(b TextureBuilder, usage uint8)
	TextureBuilderSwizzle(b TextureBuilder, r, g, bl, a uint8)
	TextureBuilderImport(b TextureBuilder, id uintptr)
	TextureBuilderBuild(b TextureBuilder, e Engine) Texture
	DestroyTexture(e Engine, t Texture)
	TextureWidth(t Texture, level uint64) uint64
	TextureHeight(t Texture, level uint64) uint64
	TextureDepth(t Texture, level uint64) uint64
	TextureLevels(t Texture) uint64
	TextureTarget(t Texture) uint8
	TextureFormat(t Texture) uint16
	// TextureSetImage takes ownership of desc's memory until its callback
	// fires.
	TextureSetImage(e Engine, t Texture, level uint64, desc *PixelBufferDescriptor)
	TextureSetExternalImage(e Engine, t Texture, image unsafe.Pointer)
	TextureGenerateMipmaps(e Engine, t Texture)
	TextureFormatSupported(e Engine, format uint16) bool
}

// MaterialAPI covers filament::Material and filament::MaterialInstance.
type MaterialAPI interface {
	CreateMaterial(e Engine, pkg []byte) Material
	DestroyMaterial(e Engine, m Material)
	MaterialDefaultInstance(m Material) MaterialInstance
	MaterialCreateInstance(m Material) MaterialInstance
	DestroyMaterialInstance(e Engine, mi MaterialInstance)
	MaterialInstanceSetTexture(mi MaterialInstance, name string, t Texture, samplerParams uint32)
	MaterialInstanceSetFloat(mi MaterialInstance, name string, v float32)
	MaterialInstanceSetFloat4(mi MaterialInstance, name string, v [4]float32)
}

// RenderableAPI covers filament::RenderableManager.
type RenderableAPI interface {
	NewRenderableBuilder(count uint64) RenderableBuilder
	DestroyRenderableBuilder(b RenderableBuilder)
	RenderableBuilderMaterial(b RenderableBuilder, index uint64, mi MaterialInstance)
	RenderableBuilderGeometry(b RenderableBuilder, index uint64, primitive uint8, vb VertexBuffer, ib IndexBuffer)
	RenderableBuilderCulling(b RenderableBuilder, enable bool)
	RenderableBuilderCastShadows(b RenderableBuilder, enable bool)
	RenderableBuilderReceiveShadows(b RenderableBuilder, enable bool)
	RenderableBuilderScreenSpaceContactShadows(b RenderableBuilder, enable bool)
	RenderableBuilderMorphing(b RenderableBuilder, enable bool)
	RenderableBuilderBoundingBox(b RenderableBuilder, center, halfExtent [3]float32)
	RenderableBuilderBuild(b RenderableBuilder, e Engine, entity uint32) bool
	RenderableHasComponent(e Engine, entity uint32) bool
	RenderableDestroy(e Engine, entity uint32)
}

// TransformAPI covers filament::TransformManager. Instances are 1-based;
// zero means "no component".
type TransformAPI interface {
	TransformManager(e Engine) TransformManager
	TransformCreate(tm TransformManager, entity, parent uint32, local *[16]float32)
	TransformInstance(tm TransformManager, entity uint32) uint32
	TransformSetTransform(tm TransformManager, instance uint32, local *[16]float32)
	// TransformTransform reports false when the instance has no transform.
	TransformTransform(tm TransformManager, instance uint32) ([16]float32, bool)
	TransformWorldTransform(tm TransformManager, instance uint32) ([16]float32, bool)
	TransformSetParent(tm TransformManager, instance, parent uint32)
	TransformParent(tm TransformManager, instance uint32) uint32
	TransformDestroy(tm TransformManager, entity uint32)
}

// EntityAPI covers utils::EntityManager.
type EntityAPI interface {
	EntityManager() EntityManager
	EntityCreate(em EntityManager, out []uint32)
	EntityDestroy(em EntityManager, entities []uint32)
	EntityIsAlive(em EntityManager, entity uint32) bool
}
