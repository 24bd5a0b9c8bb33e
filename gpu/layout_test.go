package gpu

import (
	"testing"
	"unsafe"
)

// The sizes and offsets below are those of the corresponding SDL_GPU*
// structures on 64-bit targets. A mismatch means a record no longer lines
// up with what the native library reads.

func TestRecordSizes(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"FColor", unsafe.Sizeof(FColor{}), 16},
		{"depthStencilTargetInfo", unsafe.Sizeof(depthStencilTargetInfo{}), 32},
		{"colorTargetInfo", unsafe.Sizeof(colorTargetInfo{}), 64},
		{"textureCreateInfo", unsafe.Sizeof(textureCreateInfo{}), 36},
		{"samplerCreateInfo", unsafe.Sizeof(samplerCreateInfo{}), 52},
		{"bufferCreateInfo", unsafe.Sizeof(bufferCreateInfo{}), 12},
		{"transferBufferCreateInfo", unsafe.Sizeof(transferBufferCreateInfo{}), 12},
		{"shaderCreateInfo", unsafe.Sizeof(shaderCreateInfo{}), 56},
		{"textureRegion", unsafe.Sizeof(textureRegion{}), 40},
		{"textureTransferInfo", unsafe.Sizeof(textureTransferInfo{}), 24},
		{"textureLocation", unsafe.Sizeof(textureLocation{}), 32},
		{"bufferBinding", unsafe.Sizeof(bufferBinding{}), 16},
		{"transferBufferLocation", unsafe.Sizeof(transferBufferLocation{}), 16},
		{"bufferLocation", unsafe.Sizeof(bufferLocation{}), 16},
		{"bufferRegion", unsafe.Sizeof(bufferRegion{}), 16},
		{"vertexBufferDescription", unsafe.Sizeof(vertexBufferDescription{}), 16},
		{"vertexAttribute", unsafe.Sizeof(vertexAttribute{}), 16},
		{"vertexInputState", unsafe.Sizeof(vertexInputState{}), 32},
		{"rasterizerState", unsafe.Sizeof(rasterizerState{}), 28},
		{"multisampleState", unsafe.Sizeof(multisampleState{}), 12},
		{"stencilOpState", unsafe.Sizeof(stencilOpState{}), 16},
		{"depthStencilState", unsafe.Sizeof(depthStencilState{}), 44},
		{"colorTargetBlendState", unsafe.Sizeof(colorTargetBlendState{}), 32},
		{"colorTargetDescription", unsafe.Sizeof(colorTargetDescription{}), 36},
		{"graphicsPipelineTargetInfo", unsafe.Sizeof(graphicsPipelineTargetInfo{}), 24},
		{"graphicsPipelineCreateInfo", unsafe.Sizeof(graphicsPipelineCreateInfo{}), 168},
		{"textureSamplerBinding", unsafe.Sizeof(textureSamplerBinding{}), 16},
		{"storageTextureReadWriteBinding", unsafe.Sizeof(storageTextureReadWriteBinding{}), 24},
		{"storageBufferReadWriteBinding", unsafe.Sizeof(storageBufferReadWriteBinding{}), 16},
		{"IndirectDispatchCommand", unsafe.Sizeof(IndirectDispatchCommand{}), 12},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("sizeof %s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestColorTargetInfoOffsets(t *testing.T) {
	var v colorTargetInfo
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"texture", unsafe.Offsetof(v.texture), 0},
		{"mipLevel", unsafe.Offsetof(v.mipLevel), 8},
		{"layerOrDepthPlane", unsafe.Offsetof(v.layerOrDepthPlane), 12},
		{"clearColor", unsafe.Offsetof(v.clearColor), 16},
		{"loadOp", unsafe.Offsetof(v.loadOp), 32},
		{"storeOp", unsafe.Offsetof(v.storeOp), 36},
		{"resolveTexture", unsafe.Offsetof(v.resolveTexture), 40},
		{"resolveMipLevel", unsafe.Offsetof(v.resolveMipLevel), 48},
		{"resolveLayer", unsafe.Offsetof(v.resolveLayer), 52},
		{"cycle", unsafe.Offsetof(v.cycle), 56},
		{"cycleResolveTexture", unsafe.Offsetof(v.cycleResolveTexture), 57},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("offsetof colorTargetInfo.%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestGraphicsPipelineCreateInfoOffsets(t *testing.T) {
	var v graphicsPipelineCreateInfo
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"vertexShader", unsafe.Offsetof(v.vertexShader), 0},
		{"fragmentShader", unsafe.Offsetof(v.fragmentShader), 8},
		{"vertexInputState", unsafe.Offsetof(v.vertexInputState), 16},
		{"primitiveType", unsafe.Offsetof(v.primitiveType), 48},
		{"rasterizerState", unsafe.Offsetof(v.rasterizerState), 52},
		{"multisampleState", unsafe.Offsetof(v.multisampleState), 80},
		{"depthStencilState", unsafe.Offsetof(v.depthStencilState), 92},
		{"targetInfo", unsafe.Offsetof(v.targetInfo), 136},
		{"props", unsafe.Offsetof(v.props), 160},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("offsetof graphicsPipelineCreateInfo.%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestDepthStencilStateOffsets(t *testing.T) {
	var v depthStencilState
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"compareOp", unsafe.Offsetof(v.compareOp), 0},
		{"backStencilState", unsafe.Offsetof(v.backStencilState), 4},
		{"frontStencilState", unsafe.Offsetof(v.frontStencilState), 20},
		{"compareMask", unsafe.Offsetof(v.compareMask), 36},
		{"writeMask", unsafe.Offsetof(v.writeMask), 37},
		{"enableDepthTest", unsafe.Offsetof(v.enableDepthTest), 38},
		{"enableDepthWrite", unsafe.Offsetof(v.enableDepthWrite), 39},
		{"enableStencilTest", unsafe.Offsetof(v.enableStencilTest), 40},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("offsetof depthStencilState.%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

// Wrapper slices whose backing arrays are passed to SDL directly must stay
// layout-identical to their records.
func TestWrapperLayoutMatchesRecord(t *testing.T) {
	if got, want := unsafe.Sizeof(VertexBufferDescription{}), unsafe.Sizeof(vertexBufferDescription{}); got != want {
		t.Errorf("sizeof VertexBufferDescription = %d, want %d", got, want)
	}
	if got, want := unsafe.Sizeof(VertexAttribute{}), unsafe.Sizeof(vertexAttribute{}); got != want {
		t.Errorf("sizeof VertexAttribute = %d, want %d", got, want)
	}
	if got, want := unsafe.Sizeof(ColorTargetDescription{}), unsafe.Sizeof(colorTargetDescription{}); got != want {
		t.Errorf("sizeof ColorTargetDescription = %d, want %d", got, want)
	}
}
