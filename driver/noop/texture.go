package noop

import (
	"math/bits"
	"unsafe"

	"github.com/gogpu/filament/driver"
)

// Texture enumerants the driver needs to know about.
const (
	formatRGBA8      = 30
	formatUnused     = 33
	formatLast       = 54
	sampler3D        = 4
	samplerLast      = 4
	usageDefault     = 0x18
	swizzleChannel0  = 2
	maxTextureLevels = 16
)

type textureBuilder struct {
	width, height, depth uint32
	levels               uint8
	sampler              uint8
	format               uint16
	usage                uint8
	swizzle              [4]uint8
	importID             uintptr
}

type textureState struct {
	owned
	width, height, depth uint32
	levels               uint8
	sampler              uint8
	format               uint16
	usage                uint8
	swizzle              [4]uint8
	importID             uintptr
	external             unsafe.Pointer
	images               [][]byte
	mipmapsGenerated     bool
}

func formatSupported(format uint16) bool {
	return format <= formatLast && format != formatUnused
}

func (d *Driver) NewTextureBuilder() driver.TextureBuilder {
	d.mu.Lock()
	defer d.mu.Unlock()
	b := driver.TextureBuilder(d.alloc())
	d.texBuilders[b] = &textureBuilder{
		width:   1,
		height:  1,
		depth:   1,
		levels:  1,
		format:  formatRGBA8,
		usage:   usageDefault,
		swizzle: [4]uint8{swizzleChannel0, swizzleChannel0 + 1, swizzleChannel0 + 2, swizzleChannel0 + 3},
	}
	return b
}

func (d *Driver) DestroyTextureBuilder(b driver.TextureBuilder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.texBuilders, b, "Texture::Builder")
	delete(d.texBuilders, b)
}

func (d *Driver) texBuilder(b driver.TextureBuilder) *textureBuilder {
	return lookup(d.texBuilders, b, "Texture::Builder")
}

func (d *Driver) TextureBuilderWidth(b driver.TextureBuilder, width uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texBuilder(b).width = width
}

func (d *Driver) TextureBuilderHeight(b driver.TextureBuilder, height uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texBuilder(b).height = height
}

func (d *Driver) TextureBuilderDepth(b driver.TextureBuilder, depth uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texBuilder(b).depth = depth
}

func (d *Driver) TextureBuilderLevels(b driver.TextureBuilder, levels uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texBuilder(b).levels = levels
}

func (d *Driver) TextureBuilderSampler(b driver.TextureBuilder, sampler uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texBuilder(b).sampler = sampler
}

func (d *Driver) TextureBuilderFormat(b driver.TextureBuilder, format uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texBuilder(b).format = format
}

func (d *Driver) TextureBuilderUsage(b driver.TextureBuilder, usage uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texBuilder(b).usage = usage
}

func (d *Driver) TextureBuilderSwizzle(b driver.TextureBuilder, r, g, bl, a uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texBuilder(b).swizzle = [4]uint8{r, g, bl, a}
}

func (d *Driver) TextureBuilderImport(b driver.TextureBuilder, id uintptr) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texBuilder(b).importID = id
}

// TextureBuilderBuild creates the texture. The level count is clamped to
// the full mip chain of the base level; unsupported formats, unknown
// samplers and empty sizes yield null.
func (d *Driver) TextureBuilderBuild(b driver.TextureBuilder, e driver.Engine) driver.Texture {
	d.mu.Lock()
	defer d.mu.Unlock()
	bs := d.texBuilder(b)
	lookup(d.engines, e, KindEngine)
	if d.fails(KindTexture) || !formatSupported(bs.format) || bs.sampler > samplerLast ||
		bs.width == 0 || bs.height == 0 || bs.depth == 0 {
		return 0
	}
	levels := bs.levels
	if levels == 0 {
		levels = 1
	}
	full := uint8(bits.Len32(max(bs.width, bs.height)))
	levels = min(levels, full, maxTextureLevels)

	t := driver.Texture(d.alloc())
	d.textures[t] = &textureState{
		owned:    owned{engine: e},
		width:    bs.width,
		height:   bs.height,
		depth:    bs.depth,
		levels:   levels,
		sampler:  bs.sampler,
		format:   bs.format,
		usage:    bs.usage,
		swizzle:  bs.swizzle,
		importID: bs.importID,
		images:   make([][]byte, levels),
	}
	d.track(KindTexture)
	return t
}

func (d *Driver) DestroyTexture(e driver.Engine, t driver.Texture) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	lookup(d.textures, t, KindTexture)
	delete(d.textures, t)
	d.untrack(KindTexture)
}

func levelSize(size uint32, level uint64) uint64 {
	if level >= 32 {
		return 1
	}
	return uint64(max(1, size>>level))
}

func (d *Driver) TextureWidth(t driver.Texture, level uint64) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return levelSize(lookup(d.textures, t, KindTexture).width, level)
}

func (d *Driver) TextureHeight(t driver.Texture, level uint64) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return levelSize(lookup(d.textures, t, KindTexture).height, level)
}

// TextureDepth shrinks with the level only for 3D textures; array layers
// and cubemap faces stay constant.
func (d *Driver) TextureDepth(t driver.Texture, level uint64) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	ts := lookup(d.textures, t, KindTexture)
	if ts.sampler == sampler3D {
		return levelSize(ts.depth, level)
	}
	return uint64(ts.depth)
}

func (d *Driver) TextureLevels(t driver.Texture) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return uint64(lookup(d.textures, t, KindTexture).levels)
}

func (d *Driver) TextureTarget(t driver.Texture) uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.textures, t, KindTexture).sampler
}

func (d *Driver) TextureFormat(t driver.Texture) uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.textures, t, KindTexture).format
}

// TextureSetImage queues an upload of one mip level, released at the next
// flush of e. An out of range level drops the data.
func (d *Driver) TextureSetImage(e driver.Engine, t driver.Texture, level uint64, desc *driver.PixelBufferDescriptor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	ts := lookup(d.textures, t, KindTexture)
	if level >= uint64(ts.levels) {
		d.log().Error("noop: texture level out of range", "level", level, "levels", ts.levels)
		d.enqueue(e, &desc.BufferDescriptor, nil)
		return
	}
	d.enqueue(e, &desc.BufferDescriptor, func(data []byte) {
		ts.images[level] = data
	})
}

func (d *Driver) TextureSetExternalImage(e driver.Engine, t driver.Texture, image unsafe.Pointer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	lookup(d.textures, t, KindTexture).external = image
}

func (d *Driver) TextureGenerateMipmaps(e driver.Engine, t driver.Texture) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	lookup(d.textures, t, KindTexture).mipmapsGenerated = true
}

// TextureFormatSupported reports every uncompressed format as supported.
func (d *Driver) TextureFormatSupported(e driver.Engine, format uint16) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	lookup(d.engines, e, KindEngine)
	return formatSupported(format)
}

// TextureImage returns the bytes uploaded to level of t, or nil.
func (d *Driver) TextureImage(t driver.Texture, level uint64) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	ts := lookup(d.textures, t, KindTexture)
	if level >= uint64(len(ts.images)) {
		return nil
	}
	return append([]byte(nil), ts.images[level]...)
}

// TextureMipmapsGenerated reports whether GenerateMipmaps was called on t.
func (d *Driver) TextureMipmapsGenerated(t driver.Texture) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lookup(d.textures, t, KindTexture).mipmapsGenerated
}
