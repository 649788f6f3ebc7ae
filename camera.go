package filament

import "github.com/gogpu/filament/driver"

// Projection is the camera projection type.
type Projection int32

const (
	ProjectionPerspective Projection = iota
	ProjectionOrtho
)

// Fov selects the axis a field of view is measured along.
type Fov int32

const (
	FovVertical Fov = iota
	FovHorizontal
)

// Camera is the camera component of an entity. Its position and
// orientation live in the entity's transform.
type Camera struct {
	h      *handle[driver.Camera]
	engine *Engine
}

// Clone returns a new owner of the same camera.
func (c *Camera) Clone() *Camera { return &Camera{h: c.h.clone(), engine: c.engine} }

// Release gives up this clone; the last release destroys the camera
// component. The entity itself is left alive.
func (c *Camera) Release() { c.h.release() }

// Equal reports whether c and other refer to the same native camera.
func (c *Camera) Equal(other *Camera) bool { return other != nil && same(c.h, other.h) }

// ID returns the native address, usable as a map key.
func (c *Camera) ID() uintptr { return c.h.id() }

// Engine returns the engine that owns c. The returned Engine is borrowed
// and must not be released.
func (c *Camera) Engine() *Engine { return c.engine }

// SetProjection sets a projection from the frustum planes at the near
// plane.
func (c *Camera) SetProjection(projection Projection, left, right, bottom, top, near, far float64) {
	c.engine.core.drv.CameraSetProjection(c.h.raw(), int32(projection), left, right, bottom, top, near, far)
}

// SetProjectionFov sets a perspective projection from a field of view in
// degrees along direction.
func (c *Camera) SetProjectionFov(fovDegrees, aspect, near, far float64, direction Fov) {
	c.engine.core.drv.CameraSetProjectionFov(c.h.raw(), fovDegrees, aspect, near, far, int32(direction))
}

// LookAt places the camera at eye, looking at center, with up as the
// up vector. It writes the entity's transform.
func (c *Camera) LookAt(eye, center, up [3]float64) {
	c.engine.core.drv.CameraLookAt(c.h.raw(), eye, center, up)
}

// Near returns the distance to the near plane.
func (c *Camera) Near() float64 {
	return c.engine.core.drv.CameraNear(c.h.raw())
}

// CullingFar returns the distance to the far plane used for culling.
func (c *Camera) CullingFar() float64 {
	return c.engine.core.drv.CameraCullingFar(c.h.raw())
}

// Entity returns the entity the camera is attached to.
func (c *Camera) Entity() Entity {
	return Entity(c.engine.core.drv.CameraEntity(c.h.raw()))
}
