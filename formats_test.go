package filament

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestBackendFromGPU(t *testing.T) {
	tests := []struct {
		in     gputypes.Backend
		want   Backend
		wantOK bool
	}{
		{gputypes.BackendVulkan, BackendVulkan, true},
		{gputypes.BackendMetal, BackendMetal, true},
		{gputypes.BackendGL, BackendOpenGL, true},
		{gputypes.BackendEmpty, BackendNoop, true},
		{gputypes.BackendDX12, BackendDefault, false},
	}
	for _, tt := range tests {
		got, ok := BackendFromGPU(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("BackendFromGPU(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestInternalFormatFromGPU(t *testing.T) {
	tests := []struct {
		in     gputypes.TextureFormat
		want   InternalFormat
		wantOK bool
	}{
		{gputypes.TextureFormatRGBA8Unorm, FormatRGBA8, true},
		{gputypes.TextureFormatRGBA8UnormSrgb, FormatSRGB8A8, true},
		{gputypes.TextureFormatDepth32Float, FormatDepth32F, true},
		{gputypes.TextureFormatRG11B10Ufloat, FormatR11FG11FB10F, true},
		{gputypes.TextureFormatBGRA8Unorm, 0, false},
	}
	for _, tt := range tests {
		got, ok := InternalFormatFromGPU(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("InternalFormatFromGPU(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAttributeTypeFromGPU(t *testing.T) {
	tests := []struct {
		in             gputypes.VertexFormat
		want           AttributeType
		wantNormalized bool
		wantOK         bool
	}{
		{gputypes.VertexFormatFloat32x3, AttributeFloat3, false, true},
		{gputypes.VertexFormatFloat16x2, AttributeHalf2, false, true},
		{gputypes.VertexFormatUnorm8x4, AttributeUByte4, true, true},
		{gputypes.VertexFormatUint8x4, AttributeUByte4, false, true},
		{gputypes.VertexFormatSnorm16x2, AttributeShort2, true, true},
		{gputypes.VertexFormatUint32x4, 0, false, false},
	}
	for _, tt := range tests {
		got, normalized, ok := AttributeTypeFromGPU(tt.in)
		if got != tt.want || normalized != tt.wantNormalized || ok != tt.wantOK {
			t.Errorf("AttributeTypeFromGPU(%v) = %v, %v, %v; want %v, %v, %v",
				tt.in, got, normalized, ok, tt.want, tt.wantNormalized, tt.wantOK)
		}
	}
}

func TestIndexTypeFromGPU(t *testing.T) {
	if got, ok := IndexTypeFromGPU(gputypes.IndexFormatUint16); got != IndexUShort || !ok {
		t.Errorf("IndexTypeFromGPU(Uint16) = %v, %v; want %v, true", got, ok, IndexUShort)
	}
	if got, ok := IndexTypeFromGPU(gputypes.IndexFormatUint32); got != IndexUInt || !ok {
		t.Errorf("IndexTypeFromGPU(Uint32) = %v, %v; want %v, true", got, ok, IndexUInt)
	}
	if got := IndexUShort.Size(); got != 2 {
		t.Errorf("IndexUShort.Size() = %d, want 2", got)
	}
	if got := IndexUInt.Size(); got != 4 {
		t.Errorf("IndexUInt.Size() = %d, want 4", got)
	}
}

func TestPrimitiveTypeFromGPU(t *testing.T) {
	tests := []struct {
		in   gputypes.PrimitiveTopology
		want PrimitiveType
	}{
		{gputypes.PrimitiveTopologyPointList, PrimitivePoints},
		{gputypes.PrimitiveTopologyLineList, PrimitiveLines},
		{gputypes.PrimitiveTopologyLineStrip, PrimitiveLineStrip},
		{gputypes.PrimitiveTopologyTriangleList, PrimitiveTriangles},
		{gputypes.PrimitiveTopologyTriangleStrip, PrimitiveTriangleStrip},
	}
	for _, tt := range tests {
		if got, ok := PrimitiveTypeFromGPU(tt.in); got != tt.want || !ok {
			t.Errorf("PrimitiveTypeFromGPU(%v) = %v, %v; want %v, true", tt.in, got, ok, tt.want)
		}
	}
}

func TestClearColorFromGPU(t *testing.T) {
	got := ClearColorFromGPU(gputypes.Color{R: 0.25, G: 0.5, B: 0.75, A: 1})
	if want := [4]float32{0.25, 0.5, 0.75, 1}; got != want {
		t.Errorf("ClearColorFromGPU() = %v, want %v", got, want)
	}
}
