package filament

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/filament/driver/noop"
)

func TestTextureRoundTrip(t *testing.T) {
	const width, height = 123, 456
	e, d := newTestEngine(t)

	tex, err := NewTextureBuilder().
		Width(width).
		Height(height).
		Levels(1).
		Sampler(Sampler2D).
		Format(FormatRGB8).
		Build(e)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	t.Cleanup(tex.Release)

	if got := tex.Width(0); got != width {
		t.Errorf("Width(0) = %d, want %d", got, width)
	}
	if got := tex.Height(0); got != height {
		t.Errorf("Height(0) = %d, want %d", got, height)
	}
	if got := tex.Depth(0); got != 1 {
		t.Errorf("Depth(0) = %d, want 1", got)
	}
	if got := tex.Levels(); got != 1 {
		t.Errorf("Levels() = %d, want 1", got)
	}
	if got := tex.Format(); got != FormatRGB8 {
		t.Errorf("Format() = %v, want %v", got, FormatRGB8)
	}
	if got := tex.Target(); got != Sampler2D {
		t.Errorf("Target() = %v, want %v", got, Sampler2D)
	}

	size := ComputeTextureDataSize(PixelRGB, PixelUByte, width, height, 1)
	pixels := make([]byte, size)
	for i := range pixels {
		pixels[i] = byte(i % 251)
	}
	tex.SetImage(0, NewBufferFromBytes(pixels), PixelRGB, PixelUByte)
	e.FlushAndWait()

	if got := d.TextureImage(tex.h.raw(), 0); !bytes.Equal(got, pixels) {
		t.Errorf("TextureImage() has %d bytes, want the %d uploaded", len(got), len(pixels))
	}
	if got := e.InFlightBuffers(); got != 0 {
		t.Errorf("InFlightBuffers() = %d, want 0", got)
	}
}

func TestTextureSize(t *testing.T) {
	e, _ := newTestEngine(t)
	tex := must(NewTextureBuilder().
		Size(gputypes.Extent3D{Width: 64, Height: 16}).
		Levels(0xff).
		Build(e))(t)
	t.Cleanup(tex.Release)

	tests := []struct {
		level         int
		width, height int
	}{
		{0, 64, 16},
		{1, 32, 8},
		{4, 4, 1},
		{6, 1, 1},
	}
	for _, tt := range tests {
		if got := tex.Width(tt.level); got != tt.width {
			t.Errorf("Width(%d) = %d, want %d", tt.level, got, tt.width)
		}
		if got := tex.Height(tt.level); got != tt.height {
			t.Errorf("Height(%d) = %d, want %d", tt.level, got, tt.height)
		}
	}
	if got := tex.Levels(); got != 7 {
		t.Errorf("Levels() = %d, want 7", got)
	}
}

func TestTextureGenerateMipmaps(t *testing.T) {
	e, d := newTestEngine(t)
	tex := must(NewTextureBuilder().Width(8).Height(8).Levels(4).Build(e))(t)
	t.Cleanup(tex.Release)

	tex.GenerateMipmaps()
	if !d.TextureMipmapsGenerated(tex.h.raw()) {
		t.Error("TextureMipmapsGenerated() = false, want true")
	}
}

func TestTextureBuilderReuse(t *testing.T) {
	e, _ := newTestEngine(t)
	b := NewTextureBuilder().Width(2).Height(2)
	tex := must(b.Build(e))(t)
	t.Cleanup(tex.Release)

	assertPanics(t, "filament: Texture builder already built", func() { _, _ = b.Build(e) })
	assertPanics(t, "filament: Texture builder used after Build", func() { b.Width(4) })
}

func TestTextureBuildRejected(t *testing.T) {
	e, d := newTestEngine(t)
	_, err := NewTextureBuilder().Width(0).Height(4).Build(e)
	if err == nil {
		t.Fatal("Build() with zero width succeeded, want ErrCreationFailed")
	}
	if got := d.Created(noop.KindTexture); got != 0 {
		t.Errorf("Created(Texture) = %d, want 0", got)
	}
}

func TestComputeTextureDataSize(t *testing.T) {
	tests := []struct {
		name         string
		format       PixelDataFormat
		typ          PixelDataType
		stride, rows int
		alignment    int
		want         int
	}{
		{"rgb ubyte packed", PixelRGB, PixelUByte, 123, 456, 1, 369 * 456},
		{"rgb ubyte aligned", PixelRGB, PixelUByte, 123, 456, 4, 372 * 456},
		{"rgba float", PixelRGBA, PixelFloat, 2, 2, 1, 64},
		{"rg half aligned 8", PixelRG, PixelHalf, 3, 2, 8, 32},
		{"rgb 565", PixelRGB, PixelUShort565, 10, 1, 4, 20},
		{"r11g11b10", PixelRGB, PixelUInt10F11F11FRev, 3, 3, 1, 36},
		{"alpha ubyte", PixelAlpha, PixelUByte, 5, 2, 1, 10},
		{"compressed", PixelRGBA, PixelCompressed, 16, 16, 1, 0},
		{"zero alignment", PixelRGB, PixelUByte, 123, 456, 0, 369 * 456},
		{"negative alignment", PixelRGB, PixelUByte, 123, 2, -4, 369 * 2},
		{"alignment 3", PixelRG, PixelUByte, 5, 2, 3, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTextureDataSize(tt.format, tt.typ, tt.stride, tt.rows, tt.alignment)
			if got != tt.want {
				t.Errorf("ComputeTextureDataSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSamplerParams(t *testing.T) {
	tests := []struct {
		name    string
		sampler TextureSampler
		want    uint32
	}{
		{"zero", TextureSampler{}, 0},
		{"linear repeat", NewTextureSampler(MinLinearMipmapLinear, MagLinear, WrapRepeat), 1 | 5<<1 | 1<<4 | 1<<6 | 1<<8},
		{"anisotropy 8", TextureSampler{Anisotropy: 8}, 3 << 10},
		{"anisotropy 6", TextureSampler{Anisotropy: 6}, 2 << 10},
		{"anisotropy clamped", TextureSampler{Anisotropy: 1000}, 7 << 10},
		{"anisotropy below one", TextureSampler{Anisotropy: 0.5}, 0},
		{"compare", TextureSampler{CompareMode: CompareToTexture, CompareFunc: CompareLess}, 1<<13 | 2<<16},
		{"mixed wrap", TextureSampler{WrapS: WrapMirroredRepeat, WrapT: WrapClampToEdge, WrapR: WrapRepeat}, 2<<4 | 1<<8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sampler.Params(); got != tt.want {
				t.Errorf("Params() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestNewImageBuffer(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := range 2 {
		for x := range 4 {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	tests := []struct {
		name  string
		size  image.Point
		want  int
		exact bool
	}{
		{"source size", image.Point{}, 4 * 2 * 4, true},
		{"same size", image.Pt(4, 2), 4 * 2 * 4, true},
		{"scaled", image.Pt(8, 8), 8 * 8 * 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewImageBuffer(src, tt.size)
			if got := buf.Len(); got != tt.want {
				t.Fatalf("Len() = %d, want %d", got, tt.want)
			}
			if !tt.exact {
				return
			}
			pix := buf.keep.([]byte)
			if pix[0] != 255 || pix[1] != 0 || pix[3] != 255 {
				t.Errorf("first pixel = %v, want opaque red", pix[:4])
			}
		})
	}
}

func TestSetImageFromPicture(t *testing.T) {
	e, d := newTestEngine(t)
	tex := must(NewTextureBuilder().Width(8).Height(8).Format(FormatRGBA8).Build(e))(t)
	t.Cleanup(tex.Release)

	src := image.NewGray(image.Rect(0, 0, 2, 2))
	buf := NewImageBuffer(src, image.Pt(tex.Width(0), tex.Height(0)))
	tex.SetImage(0, buf, PixelRGBA, PixelUByte)
	e.FlushAndWait()

	if got, want := len(d.TextureImage(tex.h.raw(), 0)), 8*8*4; got != want {
		t.Errorf("len(TextureImage()) = %d, want %d", got, want)
	}
}
