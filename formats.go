package filament

import "github.com/gogpu/gputypes"

// BackendFromGPU maps a WebGPU backend to the engine backend that drives
// the same native API. Backends the engine cannot drive map to
// BackendDefault with ok false.
func BackendFromGPU(b gputypes.Backend) (backend Backend, ok bool) {
	switch b {
	case gputypes.BackendVulkan:
		return BackendVulkan, true
	case gputypes.BackendMetal:
		return BackendMetal, true
	case gputypes.BackendGL:
		return BackendOpenGL, true
	case gputypes.BackendEmpty:
		return BackendNoop, true
	default:
		return BackendDefault, false
	}
}

var gpuTextureFormats = map[gputypes.TextureFormat]InternalFormat{
	gputypes.TextureFormatR8Unorm:              FormatR8,
	gputypes.TextureFormatR8Snorm:              FormatR8Snorm,
	gputypes.TextureFormatR8Uint:               FormatR8UI,
	gputypes.TextureFormatR8Sint:               FormatR8I,
	gputypes.TextureFormatR16Float:             FormatR16F,
	gputypes.TextureFormatRG8Unorm:             FormatRG8,
	gputypes.TextureFormatRG8Snorm:             FormatRG8Snorm,
	gputypes.TextureFormatRG8Uint:              FormatRG8UI,
	gputypes.TextureFormatRG8Sint:              FormatRG8I,
	gputypes.TextureFormatR32Float:             FormatR32F,
	gputypes.TextureFormatR32Uint:              FormatR32UI,
	gputypes.TextureFormatR32Sint:              FormatR32I,
	gputypes.TextureFormatRG16Float:            FormatRG16F,
	gputypes.TextureFormatRGBA8Unorm:           FormatRGBA8,
	gputypes.TextureFormatRGBA8UnormSrgb:       FormatSRGB8A8,
	gputypes.TextureFormatRGBA8Snorm:           FormatRGBA8Snorm,
	gputypes.TextureFormatRGBA8Uint:            FormatRGBA8UI,
	gputypes.TextureFormatRGBA8Sint:            FormatRGBA8I,
	gputypes.TextureFormatRGB10A2Unorm:         FormatRGB10A2,
	gputypes.TextureFormatRG11B10Ufloat:        FormatR11FG11FB10F,
	gputypes.TextureFormatRGB9E5Ufloat:         FormatRGB9E5,
	gputypes.TextureFormatRG32Float:            FormatRG32F,
	gputypes.TextureFormatRG32Uint:             FormatRG32UI,
	gputypes.TextureFormatRG32Sint:             FormatRG32I,
	gputypes.TextureFormatRGBA16Uint:           FormatRGBA16UI,
	gputypes.TextureFormatRGBA16Sint:           FormatRGBA16I,
	gputypes.TextureFormatRGBA16Float:          FormatRGBA16F,
	gputypes.TextureFormatRGBA32Float:          FormatRGBA32F,
	gputypes.TextureFormatRGBA32Uint:           FormatRGBA32UI,
	gputypes.TextureFormatRGBA32Sint:           FormatRGBA32I,
	gputypes.TextureFormatStencil8:             FormatStencil8,
	gputypes.TextureFormatDepth16Unorm:         FormatDepth16,
	gputypes.TextureFormatDepth24Plus:          FormatDepth24,
	gputypes.TextureFormatDepth24PlusStencil8:  FormatDepth24Stencil8,
	gputypes.TextureFormatDepth32Float:         FormatDepth32F,
	gputypes.TextureFormatDepth32FloatStencil8: FormatDepth32FStencil8,
}

// InternalFormatFromGPU maps a WebGPU texture format to the engine format
// with the same layout. BGRA and block-compressed formats have no
// equivalent and report ok false.
func InternalFormatFromGPU(f gputypes.TextureFormat) (format InternalFormat, ok bool) {
	format, ok = gpuTextureFormats[f]
	return format, ok
}

var gpuVertexFormats = map[gputypes.VertexFormat]AttributeType{
	gputypes.VertexFormatUint8x2:   AttributeUByte2,
	gputypes.VertexFormatUint8x4:   AttributeUByte4,
	gputypes.VertexFormatSint8x2:   AttributeByte2,
	gputypes.VertexFormatSint8x4:   AttributeByte4,
	gputypes.VertexFormatUnorm8x2:  AttributeUByte2,
	gputypes.VertexFormatUnorm8x4:  AttributeUByte4,
	gputypes.VertexFormatSnorm8x2:  AttributeByte2,
	gputypes.VertexFormatSnorm8x4:  AttributeByte4,
	gputypes.VertexFormatUint16x2:  AttributeUShort2,
	gputypes.VertexFormatUint16x4:  AttributeUShort4,
	gputypes.VertexFormatSint16x2:  AttributeShort2,
	gputypes.VertexFormatSint16x4:  AttributeShort4,
	gputypes.VertexFormatUnorm16x2: AttributeUShort2,
	gputypes.VertexFormatUnorm16x4: AttributeUShort4,
	gputypes.VertexFormatSnorm16x2: AttributeShort2,
	gputypes.VertexFormatSnorm16x4: AttributeShort4,
	gputypes.VertexFormatFloat16x2: AttributeHalf2,
	gputypes.VertexFormatFloat16x4: AttributeHalf4,
	gputypes.VertexFormatFloat32:   AttributeFloat,
	gputypes.VertexFormatFloat32x2: AttributeFloat2,
	gputypes.VertexFormatFloat32x3: AttributeFloat3,
	gputypes.VertexFormatFloat32x4: AttributeFloat4,
	gputypes.VertexFormatUint32:    AttributeUInt,
	gputypes.VertexFormatSint32:    AttributeInt,
}

// AttributeTypeFromGPU maps a WebGPU vertex format to an attribute type.
// normalized reports whether the format is a normalized integer format,
// for VertexBufferBuilder.Normalized. Multi-component 32-bit integer
// formats have no equivalent and report ok false.
func AttributeTypeFromGPU(f gputypes.VertexFormat) (typ AttributeType, normalized, ok bool) {
	typ, ok = gpuVertexFormats[f]
	switch f {
	case gputypes.VertexFormatUnorm8x2, gputypes.VertexFormatUnorm8x4,
		gputypes.VertexFormatSnorm8x2, gputypes.VertexFormatSnorm8x4,
		gputypes.VertexFormatUnorm16x2, gputypes.VertexFormatUnorm16x4,
		gputypes.VertexFormatSnorm16x2, gputypes.VertexFormatSnorm16x4:
		normalized = true
	}
	return typ, normalized, ok
}

// IndexTypeFromGPU maps a WebGPU index format to an index type.
func IndexTypeFromGPU(f gputypes.IndexFormat) (typ IndexType, ok bool) {
	switch f {
	case gputypes.IndexFormatUint16:
		return IndexUShort, true
	case gputypes.IndexFormatUint32:
		return IndexUInt, true
	default:
		return 0, false
	}
}

// PrimitiveTypeFromGPU maps a WebGPU topology to a primitive type.
func PrimitiveTypeFromGPU(t gputypes.PrimitiveTopology) (typ PrimitiveType, ok bool) {
	switch t {
	case gputypes.PrimitiveTopologyPointList:
		return PrimitivePoints, true
	case gputypes.PrimitiveTopologyLineList:
		return PrimitiveLines, true
	case gputypes.PrimitiveTopologyLineStrip:
		return PrimitiveLineStrip, true
	case gputypes.PrimitiveTopologyTriangleList:
		return PrimitiveTriangles, true
	case gputypes.PrimitiveTopologyTriangleStrip:
		return PrimitiveTriangleStrip, true
	default:
		return 0, false
	}
}

// ClearColorFromGPU converts a color to the clear color of ClearOptions.
func ClearColorFromGPU(c gputypes.Color) [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}
