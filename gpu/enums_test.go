package gpu

import "testing"

// Spot checks against the SDL_gpu.h enumerator values. These only move when
// SDL makes an ABI break, so a failure here means a constant was reordered.
func TestEnumValues(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"LoadOpLoad", uint32(LoadOpLoad), 0},
		{"LoadOpDontCare", uint32(LoadOpDontCare), 2},
		{"StoreOpResolveAndStore", uint32(StoreOpResolveAndStore), 3},
		{"TextureTypeCubeArray", uint32(TextureTypeCubeArray), 4},
		{"SampleCount8", uint32(SampleCount8), 3},
		{"TextureFormatR8G8B8A8Unorm", uint32(TextureFormatR8G8B8A8Unorm), 4},
		{"CompareOpAlways", uint32(CompareOpAlways), 8},
		{"StencilOpDecrementAndWrap", uint32(StencilOpDecrementAndWrap), 8},
		{"BlendOpMax", uint32(BlendOpMax), 5},
		{"BlendFactorSrcAlphaSaturate", uint32(BlendFactorSrcAlphaSaturate), 13},
		{"VertexElementFormatFloat4", uint32(VertexElementFormatFloat4), 12},
		{"PrimitiveTypePointList", uint32(PrimitiveTypePointList), 4},
		{"ShaderFormatMSL", uint32(ShaderFormatMSL), 0x10},
		{"TextureUsageComputeStorageSimultaneousReadWrite", uint32(TextureUsageComputeStorageSimultaneousReadWrite), 0x40},
		{"BufferUsageComputeStorageWrite", uint32(BufferUsageComputeStorageWrite), 0x20},
		{"ColorComponentA", uint32(ColorComponentA), 0x8},
		{"TransferBufferUsageDownload", uint32(TransferBufferUsageDownload), 1},
		{"IndexElementSize32Bit", uint32(IndexElementSize32Bit), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadOpString(t *testing.T) {
	tests := []struct {
		op   LoadOp
		want string
	}{
		{LoadOpLoad, "Load"},
		{LoadOpClear, "Clear"},
		{LoadOpDontCare, "DontCare"},
		{LoadOp(42), "LoadOp(42)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("LoadOp(%d).String() = %q, want %q", uint32(tt.op), got, tt.want)
		}
	}
}
