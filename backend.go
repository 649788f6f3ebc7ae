package filament

import "fmt"

// Backend selects the GPU API the engine renders with.
type Backend uint8

const (
	// BackendDefault lets the engine pick the best API for the platform.
	BackendDefault Backend = iota
	// BackendOpenGL selects OpenGL or OpenGL ES.
	BackendOpenGL
	// BackendVulkan selects Vulkan.
	BackendVulkan
	// BackendMetal selects Metal.
	BackendMetal
	// BackendNoop renders nothing; every command is accepted and dropped.
	BackendNoop
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendDefault:
		return "Default"
	case BackendOpenGL:
		return "OpenGL"
	case BackendVulkan:
		return "Vulkan"
	case BackendMetal:
		return "Metal"
	case BackendNoop:
		return "Noop"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}
