package filament

import (
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/filament/driver"
)

// TextureBuilder configures a Texture. Settings are recorded and applied by
// Build.
type TextureBuilder struct {
	rec recorder[driver.TextureBuilder]
}

// NewTextureBuilder returns a builder for a 1x1 RGBA8 texture with one
// level.
func NewTextureBuilder() *TextureBuilder {
	return &TextureBuilder{rec: recorder[driver.TextureBuilder]{kind: "Texture"}}
}

func (b *TextureBuilder) set(op func(driver.Driver, driver.TextureBuilder)) *TextureBuilder {
	b.rec.record(op)
	return b
}

// Width sets the width in pixels of level 0.
func (b *TextureBuilder) Width(w uint32) *TextureBuilder {
	return b.set(func(d driver.Driver, nb driver.TextureBuilder) { d.TextureBuilderWidth(nb, w) })
}

// Height sets the height in pixels of level 0.
func (b *TextureBuilder) Height(h uint32) *TextureBuilder {
	return b.set(func(d driver.Driver, nb driver.TextureBuilder) { d.TextureBuilderHeight(nb, h) })
}

// Depth sets the depth of a 3D texture or the layer count of an array.
func (b *TextureBuilder) Depth(depth uint32) *TextureBuilder {
	return b.set(func(d driver.Driver, nb driver.TextureBuilder) { d.TextureBuilderDepth(nb, depth) })
}

// Size sets width, height and depth at once.
func (b *TextureBuilder) Size(size gputypes.Extent3D) *TextureBuilder {
	b.Width(size.Width).Height(size.Height)
	if size.DepthOrArrayLayers > 0 {
		b.Depth(size.DepthOrArrayLayers)
	}
	return b
}

// Levels sets the number of mip levels. The engine clamps it to what the
// size allows.
func (b *TextureBuilder) Levels(n uint8) *TextureBuilder {
	return b.set(func(d driver.Driver, nb driver.TextureBuilder) { d.TextureBuilderLevels(nb, n) })
}

// Sampler sets the texture target.
func (b *TextureBuilder) Sampler(s SamplerType) *TextureBuilder {
	return b.set(func(d driver.Driver, nb driver.TextureBuilder) { d.TextureBuilderSampler(nb, uint8(s)) })
}

// Format sets the internal format.
func (b *TextureBuilder) Format(f InternalFormat) *TextureBuilder {
	return b.set(func(d driver.Driver, nb driver.TextureBuilder) { d.TextureBuilderFormat(nb, uint16(f)) })
}

// Usage sets the usage flags.
func (b *TextureBuilder) Usage(u TextureUsage) *TextureBuilder {
	return b.set(func(d driver.Driver, nb driver.TextureBuilder) { d.TextureBuilderUsage(nb, uint8(u)) })
}

// Swizzle remaps channels when the texture is sampled.
func (b *TextureBuilder) Swizzle(r, g, bl, a TextureSwizzle) *TextureBuilder {
	return b.set(func(d driver.Driver, nb driver.TextureBuilder) {
		d.TextureBuilderSwizzle(nb, uint8(r), uint8(g), uint8(bl), uint8(a))
	})
}

// Import wraps an existing backend texture object instead of allocating
// one. The id is passed through unmodified.
func (b *TextureBuilder) Import(id uintptr) *TextureBuilder {
	return b.set(func(d driver.Driver, nb driver.TextureBuilder) { d.TextureBuilderImport(nb, id) })
}

// Build creates the texture. It returns ErrCreationFailed when the engine
// rejects the configuration. A builder can be built only once.
func (b *TextureBuilder) Build(e *Engine) (*Texture, error) {
	d := e.api()
	var p driver.Texture
	b.rec.build(d, d.NewTextureBuilder, d.DestroyTextureBuilder, func(nb driver.TextureBuilder) {
		p = d.TextureBuilderBuild(nb, e.raw())
	})
	if p == 0 {
		return nil, creationFailed("texture")
	}
	h, ec := dependent(e, "Texture", p, d.DestroyTexture)
	return &Texture{h: h, engine: ec}, nil
}

// Texture is an image in engine memory.
type Texture struct {
	h      *handle[driver.Texture]
	engine *Engine
}

// Clone returns a new owner of the same texture.
func (t *Texture) Clone() *Texture { return &Texture{h: t.h.clone(), engine: t.engine} }

// Release gives up this clone; the last release destroys the texture.
func (t *Texture) Release() { t.h.release() }

// Equal reports whether t and other refer to the same native texture.
func (t *Texture) Equal(other *Texture) bool { return other != nil && same(t.h, other.h) }

// ID returns the native address, usable as a map key.
func (t *Texture) ID() uintptr { return t.h.id() }

// Engine returns the engine that owns t. The returned Engine is borrowed
// and must not be released.
func (t *Texture) Engine() *Engine { return t.engine }

func (t *Texture) drv() driver.Driver { return t.engine.core.drv }

// Width returns the width of the given level in pixels.
func (t *Texture) Width(level int) int { return int(t.drv().TextureWidth(t.h.raw(), uint64(level))) }

// Height returns the height of the given level in pixels.
func (t *Texture) Height(level int) int { return int(t.drv().TextureHeight(t.h.raw(), uint64(level))) }

// Depth returns the depth of the given level.
func (t *Texture) Depth(level int) int { return int(t.drv().TextureDepth(t.h.raw(), uint64(level))) }

// Levels returns the number of mip levels.
func (t *Texture) Levels() int { return int(t.drv().TextureLevels(t.h.raw())) }

// Target returns the sampler type.
func (t *Texture) Target() SamplerType { return SamplerType(t.drv().TextureTarget(t.h.raw())) }

// Format returns the internal format.
func (t *Texture) Format() InternalFormat { return InternalFormat(t.drv().TextureFormat(t.h.raw())) }

// SetImage uploads a whole mip level. The pixels in buf are tightly packed
// rows of the level's width in the given format and type. buf is
// transferred to the engine and released once the upload completed.
func (t *Texture) SetImage(level int, buf *Buffer, format PixelDataFormat, typ PixelDataType) {
	p := t.h.raw()
	e := t.engine
	desc := driver.PixelBufferDescriptor{
		BufferDescriptor: buf.transfer(e.core.table),
		Format:           uint8(format),
		Type:             uint8(typ),
		Alignment:        1,
	}
	e.core.drv.TextureSetImage(e.raw(), p, uint64(level), &desc)
}

// SetExternalImage binds a platform image to an external texture. The
// pointer is passed through unmodified.
func (t *Texture) SetExternalImage(image unsafe.Pointer) {
	p := t.h.raw()
	t.drv().TextureSetExternalImage(t.engine.raw(), p, image)
}

// GenerateMipmaps fills levels 1 and up from level 0.
func (t *Texture) GenerateMipmaps() {
	p := t.h.raw()
	t.drv().TextureGenerateMipmaps(t.engine.raw(), p)
}
