package filament

import "github.com/gogpu/filament/driver"

// Scene is a flat container of entities: renderables and lights.
type Scene struct {
	h      *handle[driver.Scene]
	engine *Engine
}

// Clone returns a new owner of the same scene.
func (s *Scene) Clone() *Scene { return &Scene{h: s.h.clone(), engine: s.engine} }

// Release gives up this clone; the last release destroys the scene.
func (s *Scene) Release() { s.h.release() }

// Equal reports whether s and other refer to the same native scene.
func (s *Scene) Equal(other *Scene) bool { return other != nil && same(s.h, other.h) }

// ID returns the native address, usable as a map key.
func (s *Scene) ID() uintptr { return s.h.id() }

// Engine returns the engine that owns s. The returned Engine is borrowed
// and must not be released.
func (s *Scene) Engine() *Engine { return s.engine }

// Add adds entity to the scene. Adding an entity twice has no effect.
func (s *Scene) Add(entity Entity) {
	s.engine.core.drv.SceneAddEntity(s.h.raw(), uint32(entity))
}

// AddEntities adds every entity of the slice.
func (s *Scene) AddEntities(entities []Entity) {
	if len(entities) == 0 {
		return
	}
	s.engine.core.drv.SceneAddEntities(s.h.raw(), toRaw(entities))
}

// Remove removes entity from the scene. The entity and its components are
// not destroyed.
func (s *Scene) Remove(entity Entity) {
	s.engine.core.drv.SceneRemove(s.h.raw(), uint32(entity))
}

// Has reports whether entity was added to the scene.
func (s *Scene) Has(entity Entity) bool {
	return s.engine.core.drv.SceneHasEntity(s.h.raw(), uint32(entity))
}

// RenderableCount returns the number of entities in the scene that carry a
// renderable component.
func (s *Scene) RenderableCount() int {
	return int(s.engine.core.drv.SceneRenderableCount(s.h.raw()))
}

// LightCount returns the number of lights in the scene.
func (s *Scene) LightCount() int {
	return int(s.engine.core.drv.SceneLightCount(s.h.raw()))
}

// Len returns the number of renderables and lights in the scene.
func (s *Scene) Len() int {
	return s.RenderableCount() + s.LightCount()
}

// IsEmpty reports whether the scene holds no renderable and no light.
func (s *Scene) IsEmpty() bool { return s.Len() == 0 }
