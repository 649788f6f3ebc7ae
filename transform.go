package filament

import "github.com/gogpu/filament/driver"

// Mat4 is a 4x4 matrix in column-major order, the layout the engine uses.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix translating by (x, y, z).
func Translation(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// TransformInstance identifies the transform component of an entity. The
// zero value means no component.
type TransformInstance uint32

// IsValid reports whether i refers to a component.
func (i TransformInstance) IsValid() bool { return i != 0 }

// TransformManager gives access to the transform components of an engine.
// It is borrowed from the engine and has no lifetime of its own.
type TransformManager struct {
	engine *Engine
	tm     driver.TransformManager
}

func (m *TransformManager) api() driver.Driver { return m.engine.api() }

// Create attaches a transform component to entity with the given parent
// (zero for none) and local transform (nil for identity).
func (m *TransformManager) Create(entity Entity, parent TransformInstance, local *Mat4) {
	m.api().TransformCreate(m.tm, uint32(entity), uint32(parent), (*[16]float32)(local))
}

// Instance returns the component instance of entity, or zero.
func (m *TransformManager) Instance(entity Entity) TransformInstance {
	return TransformInstance(m.api().TransformInstance(m.tm, uint32(entity)))
}

// HasComponent reports whether entity has a transform component.
func (m *TransformManager) HasComponent(entity Entity) bool {
	return m.Instance(entity).IsValid()
}

// SetTransform replaces the local transform of i.
func (m *TransformManager) SetTransform(i TransformInstance, local Mat4) {
	l := [16]float32(local)
	m.api().TransformSetTransform(m.tm, uint32(i), &l)
}

// Transform returns the local transform of i. ok is false when i has no
// component.
func (m *TransformManager) Transform(i TransformInstance) (mat Mat4, ok bool) {
	t, ok := m.api().TransformTransform(m.tm, uint32(i))
	return Mat4(t), ok
}

// WorldTransform returns the transform of i composed with its ancestors.
func (m *TransformManager) WorldTransform(i TransformInstance) (mat Mat4, ok bool) {
	t, ok := m.api().TransformWorldTransform(m.tm, uint32(i))
	return Mat4(t), ok
}

// SetParent reparents i. A zero parent detaches it.
func (m *TransformManager) SetParent(i, parent TransformInstance) {
	m.api().TransformSetParent(m.tm, uint32(i), uint32(parent))
}

// Parent returns the entity of i's parent, or NullEntity.
func (m *TransformManager) Parent(i TransformInstance) Entity {
	return Entity(m.api().TransformParent(m.tm, uint32(i)))
}

// Destroy removes entity's transform component. Its children become
// roots.
func (m *TransformManager) Destroy(entity Entity) {
	m.api().TransformDestroy(m.tm, uint32(entity))
}
