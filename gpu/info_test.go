package gpu

import (
	"errors"
	"testing"

	"github.com/gustafla/sdl3"
)

func TestTextureCreateInfoDefaultsToZero(t *testing.T) {
	info := NewTextureCreateInfo()
	if info.raw != (textureCreateInfo{}) {
		t.Errorf("NewTextureCreateInfo().raw = %+v, want zero value", info.raw)
	}
}

func TestTextureCreateInfoSettersTouchOneField(t *testing.T) {
	tests := []struct {
		name  string
		apply func(TextureCreateInfo) TextureCreateInfo
		want  textureCreateInfo
	}{
		{
			"WithType",
			func(i TextureCreateInfo) TextureCreateInfo { return i.WithType(TextureTypeCube) },
			textureCreateInfo{typ: TextureTypeCube},
		},
		{
			"WithFormat",
			func(i TextureCreateInfo) TextureCreateInfo { return i.WithFormat(TextureFormatR8G8B8A8Unorm) },
			textureCreateInfo{format: TextureFormatR8G8B8A8Unorm},
		},
		{
			"WithUsage",
			func(i TextureCreateInfo) TextureCreateInfo {
				return i.WithUsage(TextureUsageSampler | TextureUsageColorTarget)
			},
			textureCreateInfo{usage: TextureUsageSampler | TextureUsageColorTarget},
		},
		{
			"WithWidth",
			func(i TextureCreateInfo) TextureCreateInfo { return i.WithWidth(1920) },
			textureCreateInfo{width: 1920},
		},
		{
			"WithHeight",
			func(i TextureCreateInfo) TextureCreateInfo { return i.WithHeight(1080) },
			textureCreateInfo{height: 1080},
		},
		{
			"WithLayerCountOrDepth",
			func(i TextureCreateInfo) TextureCreateInfo { return i.WithLayerCountOrDepth(6) },
			textureCreateInfo{layerCountOrDepth: 6},
		},
		{
			"WithNumLevels",
			func(i TextureCreateInfo) TextureCreateInfo { return i.WithNumLevels(10) },
			textureCreateInfo{numLevels: 10},
		},
		{
			"WithSampleCount",
			func(i TextureCreateInfo) TextureCreateInfo { return i.WithSampleCount(SampleCount4) },
			textureCreateInfo{sampleCount: SampleCount4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.apply(NewTextureCreateInfo())
			if got.raw != tt.want {
				t.Errorf("raw = %+v, want %+v", got.raw, tt.want)
			}
		})
	}
}

func TestSettersReturnIndependentValues(t *testing.T) {
	base := NewSamplerCreateInfo().WithMinFilter(FilterLinear)
	derived := base.WithMagFilter(FilterLinear).WithMaxAnisotropy(16)
	if base.raw != (samplerCreateInfo{minFilter: FilterLinear}) {
		t.Errorf("deriving a descriptor modified its parent: %+v", base.raw)
	}
	want := samplerCreateInfo{minFilter: FilterLinear, magFilter: FilterLinear, maxAnisotropy: 16}
	if derived.raw != want {
		t.Errorf("derived.raw = %+v, want %+v", derived.raw, want)
	}
}

func TestWithClearColorConversion(t *testing.T) {
	tests := []struct {
		name  string
		color sdl3.Color
		want  FColor
	}{
		{"black", sdl3.RGBA(0, 0, 0, 0), FColor{0, 0, 0, 0}},
		{"white", sdl3.RGBA(255, 255, 255, 255), FColor{1, 1, 1, 1}},
		{"mixed", sdl3.RGBA(51, 102, 128, 255), FColor{51.0 / 255, 102.0 / 255, 128.0 / 255, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewColorTargetInfo().WithClearColor(tt.color)
			if info.raw.clearColor != tt.want {
				t.Errorf("clearColor = %+v, want %+v", info.raw.clearColor, tt.want)
			}
		})
	}
}

func TestValidateReportsReleasedResource(t *testing.T) {
	tex := &Texture{ptr: 0xdead}
	info := NewColorTargetInfo().WithTexture(tex)
	if err := info.validate(); err != nil {
		t.Fatalf("validate() with live texture = %v, want nil", err)
	}

	tex.ptr = 0 // released
	if err := info.validate(); !errors.Is(err, ErrResourceReleased) {
		t.Errorf("validate() after release = %v, want ErrResourceReleased", err)
	}
}

func TestValidateIgnoresUnsetResources(t *testing.T) {
	info := NewColorTargetInfo()
	if err := info.validate(); err != nil {
		t.Errorf("validate() with no textures set = %v, want nil", err)
	}

	dsi := NewDepthStencilTargetInfo().WithClearDepth(1)
	if err := dsi.validate(); err != nil {
		t.Errorf("depth-stencil validate() with no texture set = %v, want nil", err)
	}
}

func TestBufferBindingValidate(t *testing.T) {
	buf := &Buffer{ptr: 0xbeef}
	binding := NewBufferBinding().WithBuffer(buf).WithOffset(64)
	if binding.raw.buffer != 0xbeef || binding.raw.offset != 64 {
		t.Fatalf("raw = %+v, want buffer and offset set", binding.raw)
	}
	if err := binding.validate(); err != nil {
		t.Fatalf("validate() = %v, want nil", err)
	}

	buf.ptr = 0
	if err := binding.validate(); !errors.Is(err, ErrResourceReleased) {
		t.Errorf("validate() after release = %v, want ErrResourceReleased", err)
	}
}

func TestGraphicsPipelineCreateInfoValidate(t *testing.T) {
	vert := &Shader{ptr: 1}
	frag := &Shader{ptr: 2}
	info := NewGraphicsPipelineCreateInfo().
		WithVertexShader(vert).
		WithFragmentShader(frag)
	if err := info.validate(); err != nil {
		t.Fatalf("validate() with live shaders = %v, want nil", err)
	}

	frag.ptr = 0
	if err := info.validate(); !errors.Is(err, ErrResourceReleased) {
		t.Errorf("validate() after shader release = %v, want ErrResourceReleased", err)
	}
}

func TestShaderCreateInfoRetainsCodeAndEntrypoint(t *testing.T) {
	code := []byte{0x03, 0x02, 0x23, 0x07}
	info := NewShaderCreateInfo().
		WithCode(code).
		WithEntrypoint("main").
		WithFormat(ShaderFormatSPIRV).
		WithStage(ShaderStageFragment).
		WithNumSamplers(2).
		WithNumUniformBuffers(1)
	if &info.code[0] != &code[0] {
		t.Error("WithCode copied the slice instead of retaining it")
	}
	if info.entrypoint != "main" {
		t.Errorf("entrypoint = %q, want %q", info.entrypoint, "main")
	}
	want := shaderCreateInfo{
		format:            ShaderFormatSPIRV,
		stage:             ShaderStageFragment,
		numSamplers:       2,
		numUniformBuffers: 1,
	}
	if info.raw != want {
		t.Errorf("raw = %+v, want %+v", info.raw, want)
	}
}

func TestCheckLive(t *testing.T) {
	if err := checkLive((*Texture)(nil)); err != nil {
		t.Errorf("checkLive(nil texture) = %v, want nil", err)
	}
	if err := checkLive(&Texture{ptr: 1}); err != nil {
		t.Errorf("checkLive(live texture) = %v, want nil", err)
	}
	if err := checkLive(&Texture{}); !errors.Is(err, ErrResourceReleased) {
		t.Errorf("checkLive(released texture) = %v, want ErrResourceReleased", err)
	}
}
