package filament

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/filament/driver/noop"
)

func TestDefaultInstanceNeverDestroyed(t *testing.T) {
	e, d := newTestEngine(t)
	m := must(e.CreateMaterial(testMaterial))(t)

	mi := must(m.DefaultInstance())(t)
	other := must(m.DefaultInstance())(t)
	if !mi.Equal(other) {
		t.Error("DefaultInstance() returned different instances")
	}
	mi.SetFloat("roughness", 0.25)

	mi.Release()
	other.Release()
	if got := d.Destroyed(noop.KindMaterialInstance); got != 0 {
		t.Errorf("Destroyed(MaterialInstance) = %d, want 0", got)
	}
	if got := d.Destroyed(noop.KindMaterial); got != 0 {
		t.Errorf("Destroyed(Material) before material release = %d, want 0", got)
	}

	m.Release()
	if got := d.Destroyed(noop.KindMaterial); got != 1 {
		t.Errorf("Destroyed(Material) = %d, want 1", got)
	}
}

// A material stays alive while one of its instances is.
func TestInstanceKeepsMaterial(t *testing.T) {
	e, d := newTestEngine(t)
	m := must(e.CreateMaterial(testMaterial))(t)
	def := must(m.DefaultInstance())(t)
	mi := must(m.CreateInstance())(t)

	m.Release()
	def.Release()
	if got := d.Live(noop.KindMaterial); got != 1 {
		t.Fatalf("Live(Material) with a live instance = %d, want 1", got)
	}
	if got := mi.Engine().Backend(); got != BackendNoop {
		t.Errorf("Engine().Backend() = %v, want %v", got, BackendNoop)
	}

	mi.Release()
	if got := d.Destroyed(noop.KindMaterialInstance); got != 1 {
		t.Errorf("Destroyed(MaterialInstance) = %d, want 1", got)
	}
	if got := d.Live(noop.KindMaterial); got != 0 {
		t.Errorf("Live(Material) = %d, want 0", got)
	}
}

func TestDefaultInstanceNull(t *testing.T) {
	e, d := newTestEngine(t)
	m := must(e.CreateMaterial(testMaterial))(t)

	d.SetFailing(noop.KindMaterialInstance)
	t.Cleanup(d.ClearFailing)
	if _, err := m.DefaultInstance(); !errors.Is(err, ErrCreationFailed) {
		t.Fatalf("DefaultInstance() error = %v, want ErrCreationFailed", err)
	}

	// The failed call must not keep the material alive.
	m.Release()
	if got := d.Live(noop.KindMaterial); got != 0 {
		t.Errorf("Live(Material) = %d, want 0", got)
	}
}

func TestCreateMaterialEmptyPackage(t *testing.T) {
	e, _ := newTestEngine(t)
	if _, err := e.CreateMaterial(nil); err == nil {
		t.Error("CreateMaterial(nil) error = nil, want ErrCreationFailed")
	}
}

func TestMaterialParameters(t *testing.T) {
	e, d := newTestEngine(t)
	m := must(e.CreateMaterial(testMaterial))(t)
	t.Cleanup(m.Release)
	mi := must(m.CreateInstance())(t)
	t.Cleanup(mi.Release)
	tex := must(NewTextureBuilder().Width(4).Height(4).Build(e))(t)
	t.Cleanup(tex.Release)

	sampler := NewTextureSampler(MinLinear, MagLinear, WrapRepeat)
	mi.SetTexture("albedo", tex, sampler)
	mi.SetFloat("metallic", 0.5)
	mi.SetFloat4("tint", [4]float32{1, 0.5, 0.25, 1})
	mi.SetColor("baseColor", gputypes.Color{R: 1, G: 0, B: 0.5, A: 1})

	tests := []struct {
		name string
		want any
	}{
		{"albedo", noop.TextureParameter{Texture: tex.h.raw(), SamplerParams: sampler.Params()}},
		{"metallic", float32(0.5)},
		{"tint", [4]float32{1, 0.5, 0.25, 1}},
		{"baseColor", [4]float32{1, 0, 0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.MaterialInstanceParameter(mi.h.raw(), tt.name)
			if !ok {
				t.Fatalf("MaterialInstanceParameter(%q) not set", tt.name)
			}
			if got != tt.want {
				t.Errorf("MaterialInstanceParameter(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
