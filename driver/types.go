package driver

// The structs below mirror the engine's C layout field for field; they are
// passed to the native library by pointer.

// Viewport is filament::backend::Viewport.
type Viewport struct {
	Left   int32
	Bottom int32
	Width  uint32
	Height uint32
}

// ClearOptions is filament::Renderer::ClearOptions.
type ClearOptions struct {
	ClearColor [4]float32
	Clear      bool
	Discard    bool
	_          [2]byte
}

// DisplayInfo is filament::Renderer::DisplayInfo.
type DisplayInfo struct {
	RefreshRate               float32
	_                         [4]byte
	PresentationDeadlineNanos uint64
	VsyncOffsetNanos          uint64
}

// FrameRateOptions is filament::Renderer::FrameRateOptions.
type FrameRateOptions struct {
	HeadRoomRatio float32
	ScaleRate     float32
	History       uint8
	Interval      uint8
	_             [2]byte
}

// AmbientOcclusionOptions is filament::View::AmbientOcclusionOptions.
type AmbientOcclusionOptions struct {
	Radius     float32
	Bias       float32
	Power      float32
	Resolution float32
	Intensity  float32
	Quality    uint8
	_          [3]byte
}
