//go:build !cgo && (linux || darwin || freebsd) && (amd64 || arm64)

package native

import "github.com/go-webgpu/goffi/types"

// sym indexes the filc_* functions the driver binds.
type sym int

const (
	symEngineCreate sym = iota
	symEngineDestroy
	symEngineGetBackend
	symEngineExecute
	symEngineFlushAndWait
	symEngineDestroyEntity
	symEngineIsTextureFormatSupported
	symEngineGetTransformManager

	symRendererCreate
	symRendererDestroy
	symRendererBeginFrame
	symRendererRender
	symRendererEndFrame
	symRendererCopyFrame
	symRendererSetClearOptions
	symRendererSetDisplayInfo
	symRendererSetFrameRateOptions
	symRendererGetUserTime
	symRendererResetUserTime

	symSceneCreate
	symSceneDestroy
	symSceneAddEntity
	symSceneAddEntities
	symSceneRemove
	symSceneHasEntity
	symSceneGetRenderableCount
	symSceneGetLightCount

	symViewCreate
	symViewDestroy
	symViewSetScene
	symViewSetCamera
	symViewSetViewport
	symViewGetViewport
	symViewSetName
	symViewGetName
	symViewSetAmbientOcclusion
	symViewGetAmbientOcclusion
	symViewSetAmbientOcclusionOptions
	symViewGetAmbientOcclusionOptions
	symViewSetAntiAliasing
	symViewGetAntiAliasing
	symViewSetDithering
	symViewGetDithering
	symViewSetToneMapping
	symViewGetToneMapping

	symCameraCreate
	symCameraCreateOrphan
	symCameraDestroy
	symCameraSetProjection
	symCameraSetProjectionFov
	symCameraLookAt
	symCameraGetNear
	symCameraGetCullingFar
	symCameraGetEntity

	symSwapChainCreate
	symSwapChainCreateHeadless
	symSwapChainDestroy
	symSwapChainGetNativeWindow

	symVertexBufferBuilderCreate
	symVertexBufferBuilderDestroy
	symVertexBufferBuilderBufferCount
	symVertexBufferBuilderVertexCount
	symVertexBufferBuilderAttribute
	symVertexBufferBuilderNormalized
	symVertexBufferBuilderBuild
	symVertexBufferDestroy
	symVertexBufferSetBufferAt
	symVertexBufferGetVertexCount

	symIndexBufferBuilderCreate
	symIndexBufferBuilderDestroy
	symIndexBufferBuilderIndexCount
	symIndexBufferBuilderBufferType
	symIndexBufferBuilderBuild
	symIndexBufferDestroy
	symIndexBufferSetBuffer
	symIndexBufferGetIndexCount

	symTextureBuilderCreate
	symTextureBuilderDestroy
	symTextureBuilderWidth
	symTextureBuilderHeight
	symTextureBuilderDepth
	symTextureBuilderLevels
	symTextureBuilderSampler
	symTextureBuilderFormat
	symTextureBuilderUsage
	symTextureBuilderSwizzle
	symTextureBuilderImport
	symTextureBuilderBuild
	symTextureDestroy
	symTextureGetWidth
	symTextureGetHeight
	symTextureGetDepth
	symTextureGetLevels
	symTextureGetTarget
	symTextureGetFormat
	symTextureSetImage
	symTextureSetExternalImage
	symTextureGenerateMipmaps

	symMaterialCreate
	symMaterialDestroy
	symMaterialGetDefaultInstance
	symMaterialCreateInstance
	symMaterialInstanceDestroy
	symMaterialInstanceSetTexture
	symMaterialInstanceSetFloat
	symMaterialInstanceSetFloat4

	symRenderableBuilderCreate
	symRenderableBuilderDestroy
	symRenderableBuilderMaterial
	symRenderableBuilderGeometry
	symRenderableBuilderCulling
	symRenderableBuilderCastShadows
	symRenderableBuilderReceiveShadows
	symRenderableBuilderScreenSpaceContactShadows
	symRenderableBuilderMorphing
	symRenderableBuilderBoundingBox
	symRenderableBuilderBuild
	symRenderableHasComponent
	symRenderableDestroy

	symTransformCreate
	symTransformGetInstance
	symTransformSetTransform
	symTransformGetTransform
	symTransformGetWorldTransform
	symTransformSetParent
	symTransformGetParent
	symTransformDestroy

	symEntityManagerGet
	symEntityCreate
	symEntityDestroy
	symEntityIsAlive

	symCount
)

// signature is the C prototype of one function.
type signature struct {
	name string
	ret  *types.TypeDescriptor
	args []*types.TypeDescriptor
}

var (
	tVoid = types.VoidTypeDescriptor
	tPtr  = types.PointerTypeDescriptor
	tU8   = types.UInt8TypeDescriptor
	tU16  = types.UInt16TypeDescriptor
	tU32  = types.UInt32TypeDescriptor
	tU64  = types.UInt64TypeDescriptor
	tS32  = types.SInt32TypeDescriptor
	tF32  = types.FloatTypeDescriptor
	tF64  = types.DoubleTypeDescriptor
)

func fn(name string, ret *types.TypeDescriptor, args ...*types.TypeDescriptor) signature {
	return signature{name: name, ret: ret, args: args}
}

var signatures = [symCount]signature{
	symEngineCreate:                   fn("filc_engine_create", tPtr, tU8),
	symEngineDestroy:                  fn("filc_engine_destroy", tVoid, tPtr),
	symEngineGetBackend:               fn("filc_engine_get_backend", tU8, tPtr),
	symEngineExecute:                  fn("filc_engine_execute", tVoid, tPtr),
	symEngineFlushAndWait:             fn("filc_engine_flush_and_wait", tVoid, tPtr),
	symEngineDestroyEntity:            fn("filc_engine_destroy_entity", tVoid, tPtr, tU32),
	symEngineIsTextureFormatSupported: fn("filc_engine_is_texture_format_supported", tU8, tPtr, tU16),
	symEngineGetTransformManager:      fn("filc_engine_get_transform_manager", tPtr, tPtr),

	symRendererCreate:              fn("filc_renderer_create", tPtr, tPtr),
	symRendererDestroy:             fn("filc_renderer_destroy", tVoid, tPtr, tPtr),
	symRendererBeginFrame:          fn("filc_renderer_begin_frame", tU8, tPtr, tPtr, tU64),
	symRendererRender:              fn("filc_renderer_render", tVoid, tPtr, tPtr),
	symRendererEndFrame:            fn("filc_renderer_end_frame", tVoid, tPtr),
	symRendererCopyFrame:           fn("filc_renderer_copy_frame", tVoid, tPtr, tPtr, tPtr, tPtr, tU32),
	symRendererSetClearOptions:     fn("filc_renderer_set_clear_options", tVoid, tPtr, tPtr),
	symRendererSetDisplayInfo:      fn("filc_renderer_set_display_info", tVoid, tPtr, tPtr),
	symRendererSetFrameRateOptions: fn("filc_renderer_set_frame_rate_options", tVoid, tPtr, tPtr),
	symRendererGetUserTime:         fn("filc_renderer_get_user_time", tF64, tPtr),
	symRendererResetUserTime:       fn("filc_renderer_reset_user_time", tVoid, tPtr),

	symSceneCreate:             fn("filc_scene_create", tPtr, tPtr),
	symSceneDestroy:            fn("filc_scene_destroy", tVoid, tPtr, tPtr),
	symSceneAddEntity:          fn("filc_scene_add_entity", tVoid, tPtr, tU32),
	symSceneAddEntities:        fn("filc_scene_add_entities", tVoid, tPtr, tPtr, tU64),
	symSceneRemove:             fn("filc_scene_remove", tVoid, tPtr, tU32),
	symSceneHasEntity:          fn("filc_scene_has_entity", tU8, tPtr, tU32),
	symSceneGetRenderableCount: fn("filc_scene_get_renderable_count", tU64, tPtr),
	symSceneGetLightCount:      fn("filc_scene_get_light_count", tU64, tPtr),

	symViewCreate:                     fn("filc_view_create", tPtr, tPtr),
	symViewDestroy:                    fn("filc_view_destroy", tVoid, tPtr, tPtr),
	symViewSetScene:                   fn("filc_view_set_scene", tVoid, tPtr, tPtr),
	symViewSetCamera:                  fn("filc_view_set_camera", tVoid, tPtr, tPtr),
	symViewSetViewport:                fn("filc_view_set_viewport", tVoid, tPtr, tPtr),
	symViewGetViewport:                fn("filc_view_get_viewport", tVoid, tPtr, tPtr),
	symViewSetName:                    fn("filc_view_set_name", tVoid, tPtr, tPtr),
	symViewGetName:                    fn("filc_view_get_name", tPtr, tPtr),
	symViewSetAmbientOcclusion:        fn("filc_view_set_ambient_occlusion", tVoid, tPtr, tU8),
	symViewGetAmbientOcclusion:        fn("filc_view_get_ambient_occlusion", tU8, tPtr),
	symViewSetAmbientOcclusionOptions: fn("filc_view_set_ambient_occlusion_options", tVoid, tPtr, tPtr),
	symViewGetAmbientOcclusionOptions: fn("filc_view_get_ambient_occlusion_options", tVoid, tPtr, tPtr),
	symViewSetAntiAliasing:            fn("filc_view_set_anti_aliasing", tVoid, tPtr, tU8),
	symViewGetAntiAliasing:            fn("filc_view_get_anti_aliasing", tU8, tPtr),
	symViewSetDithering:               fn("filc_view_set_dithering", tVoid, tPtr, tU8),
	symViewGetDithering:               fn("filc_view_get_dithering", tU8, tPtr),
	symViewSetToneMapping:             fn("filc_view_set_tone_mapping", tVoid, tPtr, tU8),
	symViewGetToneMapping:             fn("filc_view_get_tone_mapping", tU8, tPtr),

	symCameraCreate:           fn("filc_camera_create", tPtr, tPtr, tU32),
	symCameraCreateOrphan:     fn("filc_camera_create_orphan", tPtr, tPtr),
	symCameraDestroy:          fn("filc_camera_destroy", tVoid, tPtr, tPtr),
	symCameraSetProjection:    fn("filc_camera_set_projection", tVoid, tPtr, tS32, tF64, tF64, tF64, tF64, tF64, tF64),
	symCameraSetProjectionFov: fn("filc_camera_set_projection_fov", tVoid, tPtr, tF64, tF64, tF64, tF64, tS32),
	symCameraLookAt:           fn("filc_camera_look_at", tVoid, tPtr, tPtr, tPtr, tPtr),
	symCameraGetNear:          fn("filc_camera_get_near", tF64, tPtr),
	symCameraGetCullingFar:    fn("filc_camera_get_culling_far", tF64, tPtr),
	symCameraGetEntity:        fn("filc_camera_get_entity", tU32, tPtr),

	symSwapChainCreate:          fn("filc_swap_chain_create", tPtr, tPtr, tPtr, tU64),
	symSwapChainCreateHeadless:  fn("filc_swap_chain_create_headless", tPtr, tPtr, tU32, tU32, tU64),
	symSwapChainDestroy:         fn("filc_swap_chain_destroy", tVoid, tPtr, tPtr),
	symSwapChainGetNativeWindow: fn("filc_swap_chain_get_native_window", tPtr, tPtr),

	symVertexBufferBuilderCreate:      fn("filc_vertex_buffer_builder_create", tPtr),
	symVertexBufferBuilderDestroy:     fn("filc_vertex_buffer_builder_destroy", tVoid, tPtr),
	symVertexBufferBuilderBufferCount: fn("filc_vertex_buffer_builder_buffer_count", tVoid, tPtr, tU8),
	symVertexBufferBuilderVertexCount: fn("filc_vertex_buffer_builder_vertex_count", tVoid, tPtr, tU32),
	symVertexBufferBuilderAttribute:   fn("filc_vertex_buffer_builder_attribute", tVoid, tPtr, tU8, tU8, tU8, tU32, tU8),
	symVertexBufferBuilderNormalized:  fn("filc_vertex_buffer_builder_normalized", tVoid, tPtr, tU8, tU8),
	symVertexBufferBuilderBuild:       fn("filc_vertex_buffer_builder_build", tPtr, tPtr, tPtr),
	symVertexBufferDestroy:            fn("filc_vertex_buffer_destroy", tVoid, tPtr, tPtr),
	symVertexBufferSetBufferAt:        fn("filc_vertex_buffer_set_buffer_at", tVoid, tPtr, tPtr, tU8, tPtr, tU32),
	symVertexBufferGetVertexCount:     fn("filc_vertex_buffer_get_vertex_count", tU64, tPtr),

	symIndexBufferBuilderCreate:     fn("filc_index_buffer_builder_create", tPtr),
	symIndexBufferBuilderDestroy:    fn("filc_index_buffer_builder_destroy", tVoid, tPtr),
	symIndexBufferBuilderIndexCount: fn("filc_index_buffer_builder_index_count", tVoid, tPtr, tU32),
	symIndexBufferBuilderBufferType: fn("filc_index_buffer_builder_buffer_type", tVoid, tPtr, tU8),
	symIndexBufferBuilderBuild:      fn("filc_index_buffer_builder_build", tPtr, tPtr, tPtr),
	symIndexBufferDestroy:           fn("filc_index_buffer_destroy", tVoid, tPtr, tPtr),
	symIndexBufferSetBuffer:         fn("filc_index_buffer_set_buffer", tVoid, tPtr, tPtr, tPtr, tU32),
	symIndexBufferGetIndexCount:     fn("filc_index_buffer_get_index_count", tU64, tPtr),

	symTextureBuilderCreate:    fn("filc_texture_builder_create", tPtr),
	symTextureBuilderDestroy:   fn("filc_texture_builder_destroy", tVoid, tPtr),
	symTextureBuilderWidth:     fn("filc_texture_builder_width", tVoid, tPtr, tU32),
	symTextureBuilderHeight:    fn("filc_texture_builder_height", tVoid, tPtr, tU32),
	symTextureBuilderDepth:     fn("filc_texture_builder_depth", tVoid, tPtr, tU32),
	symTextureBuilderLevels:    fn("filc_texture_builder_levels", tVoid, tPtr, tU8),
	symTextureBuilderSampler:   fn("filc_texture_builder_sampler", tVoid, tPtr, tU8),
	symTextureBuilderFormat:    fn("filc_texture_builder_format", tVoid, tPtr, tU16),
	symTextureBuilderUsage:     fn("filc_texture_builder_usage", tVoid, tPtr, tU8),
	symTextureBuilderSwizzle:   fn("filc_texture_builder_swizzle", tVoid, tPtr, tU8, tU8, tU8, tU8),
	symTextureBuilderImport:    fn("filc_texture_builder_import", tVoid, tPtr, tPtr),
	symTextureBuilderBuild:     fn("filc_texture_builder_build", tPtr, tPtr, tPtr),
	symTextureDestroy:          fn("filc_texture_destroy", tVoid, tPtr, tPtr),
	symTextureGetWidth:         fn("filc_texture_get_width", tU64, tPtr, tU64),
	symTextureGetHeight:        fn("filc_texture_get_height", tU64, tPtr, tU64),
	symTextureGetDepth:         fn("filc_texture_get_depth", tU64, tPtr, tU64),
	symTextureGetLevels:        fn("filc_texture_get_levels", tU64, tPtr),
	symTextureGetTarget:        fn("filc_texture_get_target", tU8, tPtr),
	symTextureGetFormat:        fn("filc_texture_get_format", tU16, tPtr),
	symTextureSetImage:         fn("filc_texture_set_image", tVoid, tPtr, tPtr, tU64, tPtr),
	symTextureSetExternalImage: fn("filc_texture_set_external_image", tVoid, tPtr, tPtr, tPtr),
	symTextureGenerateMipmaps:  fn("filc_texture_generate_mipmaps", tVoid, tPtr, tPtr),

	symMaterialCreate:             fn("filc_material_create", tPtr, tPtr, tPtr, tU64),
	symMaterialDestroy:            fn("filc_material_destroy", tVoid, tPtr, tPtr),
	symMaterialGetDefaultInstance: fn("filc_material_get_default_instance", tPtr, tPtr),
	symMaterialCreateInstance:     fn("filc_material_create_instance", tPtr, tPtr),
	symMaterialInstanceDestroy:    fn("filc_material_instance_destroy", tVoid, tPtr, tPtr),
	symMaterialInstanceSetTexture: fn("filc_material_instance_set_texture", tVoid, tPtr, tPtr, tPtr, tU32),
	symMaterialInstanceSetFloat:   fn("filc_material_instance_set_float", tVoid, tPtr, tPtr, tF32),
	symMaterialInstanceSetFloat4:  fn("filc_material_instance_set_float4", tVoid, tPtr, tPtr, tPtr),

	symRenderableBuilderCreate:                    fn("filc_renderable_builder_create", tPtr, tU64),
	symRenderableBuilderDestroy:                   fn("filc_renderable_builder_destroy", tVoid, tPtr),
	symRenderableBuilderMaterial:                  fn("filc_renderable_builder_material", tVoid, tPtr, tU64, tPtr),
	symRenderableBuilderGeometry:                  fn("filc_renderable_builder_geometry", tVoid, tPtr, tU64, tU8, tPtr, tPtr),
	symRenderableBuilderCulling:                   fn("filc_renderable_builder_culling", tVoid, tPtr, tU8),
	symRenderableBuilderCastShadows:               fn("filc_renderable_builder_cast_shadows", tVoid, tPtr, tU8),
	symRenderableBuilderReceiveShadows:            fn("filc_renderable_builder_receive_shadows", tVoid, tPtr, tU8),
	symRenderableBuilderScreenSpaceContactShadows: fn("filc_renderable_builder_screen_space_contact_shadows", tVoid, tPtr, tU8),
	symRenderableBuilderMorphing:                  fn("filc_renderable_builder_morphing", tVoid, tPtr, tU8),
	symRenderableBuilderBoundingBox:               fn("filc_renderable_builder_bounding_box", tVoid, tPtr, tPtr, tPtr),
	symRenderableBuilderBuild:                     fn("filc_renderable_builder_build", tU8, tPtr, tPtr, tU32),
	symRenderableHasComponent:                     fn("filc_renderable_manager_has_component", tU8, tPtr, tU32),
	symRenderableDestroy:                          fn("filc_renderable_manager_destroy", tVoid, tPtr, tU32),

	symTransformCreate:            fn("filc_transform_manager_create", tVoid, tPtr, tU32, tU32, tPtr),
	symTransformGetInstance:       fn("filc_transform_manager_get_instance", tU32, tPtr, tU32),
	symTransformSetTransform:      fn("filc_transform_manager_set_transform", tVoid, tPtr, tU32, tPtr),
	symTransformGetTransform:      fn("filc_transform_manager_get_transform", tU8, tPtr, tU32, tPtr),
	symTransformGetWorldTransform: fn("filc_transform_manager_get_world_transform", tU8, tPtr, tU32, tPtr),
	symTransformSetParent:         fn("filc_transform_manager_set_parent", tVoid, tPtr, tU32, tU32),
	symTransformGetParent:         fn("filc_transform_manager_get_parent", tU32, tPtr, tU32),
	symTransformDestroy:           fn("filc_transform_manager_destroy", tVoid, tPtr, tU32),

	symEntityManagerGet: fn("filc_entity_manager_get", tPtr),
	symEntityCreate:     fn("filc_entity_manager_create", tVoid, tPtr, tPtr, tU64),
	symEntityDestroy:    fn("filc_entity_manager_destroy", tVoid, tPtr, tPtr, tU64),
	symEntityIsAlive:    fn("filc_entity_manager_is_alive", tU8, tPtr, tU32),
}
