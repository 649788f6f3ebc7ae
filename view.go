package filament

import "github.com/gogpu/filament/driver"

// AmbientOcclusion selects the view's ambient occlusion technique.
type AmbientOcclusion uint8

const (
	AmbientOcclusionNone AmbientOcclusion = iota
	AmbientOcclusionSSAO
)

// AntiAliasing selects the view's post-process anti-aliasing.
type AntiAliasing uint8

const (
	AntiAliasingNone AntiAliasing = iota
	AntiAliasingFXAA
)

// Dithering selects the view's dithering.
type Dithering uint8

const (
	DitheringNone Dithering = iota
	DitheringTemporal
)

// ToneMapping selects the view's tone mapping operator.
type ToneMapping uint8

const (
	ToneMappingLinear ToneMapping = iota
	ToneMappingACES
)

// QualityLevel is a coarse quality setting for post-processing effects.
type QualityLevel uint8

const (
	QualityLow QualityLevel = iota
	QualityMedium
	QualityHigh
	QualityUltra
)

// AmbientOcclusionOptions tunes screen-space ambient occlusion.
type AmbientOcclusionOptions struct {
	// Radius of the occlusion sampling sphere, in world units.
	Radius float32
	// Bias in world units, to avoid self-occlusion.
	Bias float32
	// Power controls the contrast of the occlusion.
	Power float32
	// Resolution of the occlusion buffer relative to the view, 0.5 or 1.
	Resolution float32
	// Intensity scales the occlusion.
	Intensity float32
	// Quality of the sampling.
	Quality QualityLevel
}

// View renders a scene through a camera into a viewport.
type View struct {
	h      *handle[driver.View]
	engine *Engine
}

// Clone returns a new owner of the same view.
func (v *View) Clone() *View { return &View{h: v.h.clone(), engine: v.engine} }

// Release gives up this clone; the last release destroys the view.
func (v *View) Release() { v.h.release() }

// Equal reports whether v and other refer to the same native view.
func (v *View) Equal(other *View) bool { return other != nil && same(v.h, other.h) }

// ID returns the native address, usable as a map key.
func (v *View) ID() uintptr { return v.h.id() }

// Engine returns the engine that owns v. The returned Engine is borrowed
// and must not be released.
func (v *View) Engine() *Engine { return v.engine }

func (v *View) api() (driver.Driver, driver.View) {
	return v.engine.core.drv, v.h.raw()
}

// SetScene sets the scene to render. The view does not keep the scene
// alive; nil detaches the current scene.
func (v *View) SetScene(s *Scene) {
	d, p := v.api()
	var sp driver.Scene
	if s != nil {
		sp = s.h.raw()
	}
	d.ViewSetScene(p, sp)
}

// SetCamera sets the camera to render from. The view does not keep the
// camera alive; nil detaches the current camera.
func (v *View) SetCamera(c *Camera) {
	d, p := v.api()
	var cp driver.Camera
	if c != nil {
		cp = c.h.raw()
	}
	d.ViewSetCamera(p, cp)
}

// SetViewport sets the rectangle of the render target the view draws into.
func (v *View) SetViewport(vp Viewport) {
	d, p := v.api()
	dvp := driver.Viewport(vp)
	d.ViewSetViewport(p, &dvp)
}

// Viewport returns the view's viewport.
func (v *View) Viewport() Viewport {
	d, p := v.api()
	return Viewport(d.ViewViewport(p))
}

// SetName sets a debugging name. The string is copied.
func (v *View) SetName(name string) {
	d, p := v.api()
	d.ViewSetName(p, name)
}

// Name returns the debugging name.
func (v *View) Name() string {
	d, p := v.api()
	return d.ViewName(p)
}

// SetAmbientOcclusion selects the ambient occlusion technique.
func (v *View) SetAmbientOcclusion(mode AmbientOcclusion) {
	d, p := v.api()
	d.ViewSetAmbientOcclusion(p, uint8(mode))
}

// AmbientOcclusion returns the ambient occlusion technique.
func (v *View) AmbientOcclusion() AmbientOcclusion {
	d, p := v.api()
	return AmbientOcclusion(d.ViewAmbientOcclusion(p))
}

// SetAmbientOcclusionOptions tunes SSAO. It has no effect while ambient
// occlusion is off.
func (v *View) SetAmbientOcclusionOptions(opts AmbientOcclusionOptions) {
	d, p := v.api()
	d.ViewSetAmbientOcclusionOptions(p, &driver.AmbientOcclusionOptions{
		Radius:     opts.Radius,
		Bias:       opts.Bias,
		Power:      opts.Power,
		Resolution: opts.Resolution,
		Intensity:  opts.Intensity,
		Quality:    uint8(opts.Quality),
	})
}

// AmbientOcclusionOptions returns the current SSAO settings.
func (v *View) AmbientOcclusionOptions() AmbientOcclusionOptions {
	d, p := v.api()
	o := d.ViewAmbientOcclusionOptions(p)
	return AmbientOcclusionOptions{
		Radius:     o.Radius,
		Bias:       o.Bias,
		Power:      o.Power,
		Resolution: o.Resolution,
		Intensity:  o.Intensity,
		Quality:    QualityLevel(o.Quality),
	}
}

// SetAntiAliasing selects the post-process anti-aliasing.
func (v *View) SetAntiAliasing(mode AntiAliasing) {
	d, p := v.api()
	d.ViewSetAntiAliasing(p, uint8(mode))
}

// AntiAliasing returns the post-process anti-aliasing mode.
func (v *View) AntiAliasing() AntiAliasing {
	d, p := v.api()
	return AntiAliasing(d.ViewAntiAliasing(p))
}

// SetDithering selects the dithering mode.
func (v *View) SetDithering(mode Dithering) {
	d, p := v.api()
	d.ViewSetDithering(p, uint8(mode))
}

// Dithering returns the dithering mode.
func (v *View) Dithering() Dithering {
	d, p := v.api()
	return Dithering(d.ViewDithering(p))
}

// SetToneMapping selects the tone mapping operator.
func (v *View) SetToneMapping(mode ToneMapping) {
	d, p := v.api()
	d.ViewSetToneMapping(p, uint8(mode))
}

// ToneMapping returns the tone mapping operator.
func (v *View) ToneMapping() ToneMapping {
	d, p := v.api()
	return ToneMapping(d.ViewToneMapping(p))
}
