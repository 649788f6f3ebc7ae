package filament

import "math"

// MagFilter is the magnification filter.
type MagFilter uint8

const (
	MagNearest MagFilter = iota
	MagLinear
)

// MinFilter is the minification filter.
type MinFilter uint8

const (
	MinNearest MinFilter = iota
	MinLinear
	MinNearestMipmapNearest
	MinLinearMipmapNearest
	MinNearestMipmapLinear
	MinLinearMipmapLinear
)

// WrapMode is the texture coordinate addressing mode.
type WrapMode uint8

const (
	WrapClampToEdge WrapMode = iota
	WrapRepeat
	WrapMirroredRepeat
)

// CompareMode enables depth comparison when sampling.
type CompareMode uint8

const (
	CompareNone CompareMode = iota
	CompareToTexture
)

// CompareFunc is the depth comparison function.
type CompareFunc uint8

const (
	CompareLessEqual CompareFunc = iota
	CompareGreaterEqual
	CompareLess
	CompareGreater
	CompareEqual
	CompareNotEqual
	CompareAlways
	CompareNever
)

// TextureSampler describes how a material samples a texture. The zero
// value samples with nearest filtering and clamps at the edges.
type TextureSampler struct {
	Mag         MagFilter
	Min         MinFilter
	WrapS       WrapMode
	WrapT       WrapMode
	WrapR       WrapMode
	Anisotropy  float32
	CompareMode CompareMode
	CompareFunc CompareFunc
}

// NewTextureSampler returns a sampler with the given filters and wrap
// mode on every axis.
func NewTextureSampler(minFilter MinFilter, magFilter MagFilter, wrap WrapMode) TextureSampler {
	return TextureSampler{Mag: magFilter, Min: minFilter, WrapS: wrap, WrapT: wrap, WrapR: wrap}
}

// Params packs the sampler into the engine's 32-bit sampler parameters:
//
//	bit 0      mag filter
//	bits 1-3   min filter
//	bits 4-9   wrap S, T, R (2 bits each)
//	bits 10-12 log2 of the anisotropy, at most 7
//	bit 13     compare mode
//	bits 16-18 compare function
func (s TextureSampler) Params() uint32 {
	p := uint32(s.Mag&1) |
		uint32(s.Min&7)<<1 |
		uint32(s.WrapS&3)<<4 |
		uint32(s.WrapT&3)<<6 |
		uint32(s.WrapR&3)<<8 |
		uint32(anisotropyLog2(s.Anisotropy))<<10 |
		uint32(s.CompareMode&1)<<13 |
		uint32(s.CompareFunc&7)<<16
	return p
}

func anisotropyLog2(a float32) uint8 {
	if !(a > 1) {
		return 0
	}
	return uint8(min(7, math.Ilogb(float64(a))))
}
