package filament

// InternalFormat is the storage format of a texture on the GPU.
type InternalFormat uint16

const (
	FormatR8 InternalFormat = iota
	FormatR8Snorm
	FormatR8UI
	FormatR8I
	FormatStencil8
	FormatR16F
	FormatR16UI
	FormatR16I
	FormatRG8
	FormatRG8Snorm
	FormatRG8UI
	FormatRG8I
	FormatRGB565
	FormatRGB9E5
	FormatRGB5A1
	FormatRGBA4
	FormatDepth16
	FormatRGB8
	FormatSRGB8
	FormatRGB8Snorm
	FormatRGB8UI
	FormatRGB8I
	FormatDepth24
	FormatR32F
	FormatR32UI
	FormatR32I
	FormatRG16F
	FormatRG16UI
	FormatRG16I
	FormatR11FG11FB10F
	FormatRGBA8
	FormatSRGB8A8
	FormatRGBA8Snorm
	formatUnused
	FormatRGB10A2
	FormatRGBA8UI
	FormatRGBA8I
	FormatDepth32F
	FormatDepth24Stencil8
	FormatDepth32FStencil8
	FormatRGB16F
	FormatRGB16UI
	FormatRGB16I
	FormatRG32F
	FormatRG32UI
	FormatRG32I
	FormatRGBA16F
	FormatRGBA16UI
	FormatRGBA16I
	FormatRGB32F
	FormatRGB32UI
	FormatRGB32I
	FormatRGBA32F
	FormatRGBA32UI
	FormatRGBA32I
)

// PixelDataFormat is the channel layout of pixel data uploaded from the CPU.
type PixelDataFormat uint8

const (
	PixelR PixelDataFormat = iota
	PixelRInteger
	PixelRG
	PixelRGInteger
	PixelRGB
	PixelRGBInteger
	PixelRGBA
	PixelRGBAInteger
	pixelUnused
	PixelDepthComponent
	PixelDepthStencil
	PixelAlpha
)

// components returns the number of channels per pixel.
func (f PixelDataFormat) components() int {
	switch f {
	case PixelR, PixelRInteger, PixelDepthComponent, PixelAlpha:
		return 1
	case PixelRG, PixelRGInteger, PixelDepthStencil:
		return 2
	case PixelRGB, PixelRGBInteger:
		return 3
	default:
		return 4
	}
}

// PixelDataType is the component type of pixel data uploaded from the CPU.
type PixelDataType uint8

const (
	PixelUByte PixelDataType = iota
	PixelByte
	PixelUShort
	PixelShort
	PixelUInt
	PixelInt
	PixelHalf
	PixelFloat
	PixelCompressed
	PixelUInt10F11F11FRev
	PixelUShort565
)

// SamplerType is the texture target.
type SamplerType uint8

const (
	Sampler2D SamplerType = iota
	Sampler2DArray
	SamplerCubemap
	SamplerExternal
	Sampler3D
)

// TextureUsage is a bitmask of the ways a texture can be used.
type TextureUsage uint8

const (
	UsageColorAttachment TextureUsage = 1 << iota
	UsageDepthAttachment
	UsageStencilAttachment
	UsageUploadable
	UsageSampleable
	UsageSubpassInput

	UsageDefault = UsageUploadable | UsageSampleable
)

// TextureSwizzle selects the source of one channel when sampling.
type TextureSwizzle uint8

const (
	SwizzleZero TextureSwizzle = iota
	SwizzleOne
	SwizzleChannel0
	SwizzleChannel1
	SwizzleChannel2
	SwizzleChannel3
)

// ComputeTextureDataSize returns the byte size of a pixel image with the
// given layout: stride pixels per row, height rows, each row padded to
// alignment bytes. An alignment below 1 means unpadded rows. Compressed
// data has no fixed size and yields zero.
func ComputeTextureDataSize(format PixelDataFormat, typ PixelDataType, stride, height, alignment int) int {
	n := format.components()
	var bpp int
	switch typ {
	case PixelUByte, PixelByte:
		bpp = n
	case PixelUShort, PixelShort, PixelHalf:
		bpp = n * 2
	case PixelUInt, PixelInt, PixelFloat:
		bpp = n * 4
	case PixelUInt10F11F11FRev:
		bpp = 4
	case PixelUShort565:
		bpp = 2
	case PixelCompressed:
		return 0
	}
	alignment = max(alignment, 1)
	bpr := bpp * stride
	aligned := (bpr + alignment - 1) / alignment * alignment
	return aligned * height
}
