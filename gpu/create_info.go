package gpu

// TextureCreateInfo specifies the parameters of a texture, consumed by
// [Device.CreateTexture].
//
// Usage flags can be OR'd together for combinations of usages. Certain
// combinations are invalid, for example [TextureUsageSampler] and
// [TextureUsageGraphicsStorageRead]; SDL reports those at creation time.
type TextureCreateInfo struct {
	raw textureCreateInfo
}

// NewTextureCreateInfo returns a zero-valued descriptor; every omitted
// setter leaves SDL's default in place.
func NewTextureCreateInfo() TextureCreateInfo {
	return TextureCreateInfo{}
}

// WithType sets the base dimensionality of the texture.
func (info TextureCreateInfo) WithType(typ TextureType) TextureCreateInfo {
	info.raw.typ = typ
	return info
}

// WithFormat sets the pixel format of the texture.
func (info TextureCreateInfo) WithFormat(format TextureFormat) TextureCreateInfo {
	info.raw.format = format
	return info
}

// WithUsage sets how the texture is intended to be used by the client.
func (info TextureCreateInfo) WithUsage(usage TextureUsageFlags) TextureCreateInfo {
	info.raw.usage = usage
	return info
}

// WithWidth sets the width of the texture.
func (info TextureCreateInfo) WithWidth(width uint32) TextureCreateInfo {
	info.raw.width = width
	return info
}

// WithHeight sets the height of the texture.
func (info TextureCreateInfo) WithHeight(height uint32) TextureCreateInfo {
	info.raw.height = height
	return info
}

// WithLayerCountOrDepth sets the layer count or depth of the texture.
// Treated as a layer count on 2D array textures, and as a depth value on
// 3D textures.
func (info TextureCreateInfo) WithLayerCountOrDepth(layerCountOrDepth uint32) TextureCreateInfo {
	info.raw.layerCountOrDepth = layerCountOrDepth
	return info
}

// WithNumLevels sets the number of mip levels in the texture.
func (info TextureCreateInfo) WithNumLevels(numLevels uint32) TextureCreateInfo {
	info.raw.numLevels = numLevels
	return info
}

// WithSampleCount sets the number of samples per texel. Only applies if
// the texture is used as a render target.
func (info TextureCreateInfo) WithSampleCount(sampleCount SampleCount) TextureCreateInfo {
	info.raw.sampleCount = sampleCount
	return info
}

// SamplerCreateInfo specifies the parameters of a sampler, consumed by
// [Device.CreateSampler].
//
// Note that the mip LOD bias is a no-op for the Metal driver; for Metal,
// LOD bias must be applied via shader instead.
type SamplerCreateInfo struct {
	raw samplerCreateInfo
}

// NewSamplerCreateInfo returns a zero-valued descriptor; every omitted
// setter leaves SDL's default in place.
func NewSamplerCreateInfo() SamplerCreateInfo {
	return SamplerCreateInfo{}
}

// WithMinFilter sets the minification filter applied to lookups.
func (info SamplerCreateInfo) WithMinFilter(filter Filter) SamplerCreateInfo {
	info.raw.minFilter = filter
	return info
}

// WithMagFilter sets the magnification filter applied to lookups.
func (info SamplerCreateInfo) WithMagFilter(filter Filter) SamplerCreateInfo {
	info.raw.magFilter = filter
	return info
}

// WithMipmapMode sets the mipmap filter applied to lookups.
func (info SamplerCreateInfo) WithMipmapMode(mode SamplerMipmapMode) SamplerCreateInfo {
	info.raw.mipmapMode = mode
	return info
}

// WithAddressModeU sets the addressing mode for U coordinates outside [0, 1).
func (info SamplerCreateInfo) WithAddressModeU(mode SamplerAddressMode) SamplerCreateInfo {
	info.raw.addressModeU = mode
	return info
}

// WithAddressModeV sets the addressing mode for V coordinates outside [0, 1).
func (info SamplerCreateInfo) WithAddressModeV(mode SamplerAddressMode) SamplerCreateInfo {
	info.raw.addressModeV = mode
	return info
}

// WithAddressModeW sets the addressing mode for W coordinates outside [0, 1).
func (info SamplerCreateInfo) WithAddressModeW(mode SamplerAddressMode) SamplerCreateInfo {
	info.raw.addressModeW = mode
	return info
}

// WithMipLodBias sets the bias added to mipmap LOD calculation.
func (info SamplerCreateInfo) WithMipLodBias(mipLodBias float32) SamplerCreateInfo {
	info.raw.mipLodBias = mipLodBias
	return info
}

// WithMaxAnisotropy sets the anisotropy value clamp used by the sampler.
// Ignored unless anisotropy is enabled.
func (info SamplerCreateInfo) WithMaxAnisotropy(maxAnisotropy float32) SamplerCreateInfo {
	info.raw.maxAnisotropy = maxAnisotropy
	return info
}

// WithCompareOp sets the comparison operator applied to fetched data
// before filtering.
func (info SamplerCreateInfo) WithCompareOp(compareOp CompareOp) SamplerCreateInfo {
	info.raw.compareOp = compareOp
	return info
}

// WithMinLod clamps the minimum of the computed LOD value.
func (info SamplerCreateInfo) WithMinLod(minLod float32) SamplerCreateInfo {
	info.raw.minLod = minLod
	return info
}

// WithMaxLod clamps the maximum of the computed LOD value.
func (info SamplerCreateInfo) WithMaxLod(maxLod float32) SamplerCreateInfo {
	info.raw.maxLod = maxLod
	return info
}

// WithEnableAnisotropy enables anisotropic filtering.
func (info SamplerCreateInfo) WithEnableAnisotropy(enableAnisotropy bool) SamplerCreateInfo {
	info.raw.enableAnisotropy = enableAnisotropy
	return info
}

// WithEnableCompare enables comparison against a reference value during
// lookups.
func (info SamplerCreateInfo) WithEnableCompare(enableCompare bool) SamplerCreateInfo {
	info.raw.enableCompare = enableCompare
	return info
}

// BufferCreateInfo specifies the parameters of a buffer, consumed by
// [Device.CreateBuffer].
//
// Usage flags can be OR'd together for combinations of usages.
type BufferCreateInfo struct {
	raw bufferCreateInfo
}

// NewBufferCreateInfo returns a zero-valued descriptor.
func NewBufferCreateInfo() BufferCreateInfo {
	return BufferCreateInfo{}
}

// WithUsage sets how the buffer is intended to be used by the client.
func (info BufferCreateInfo) WithUsage(usage BufferUsageFlags) BufferCreateInfo {
	info.raw.usage = usage
	return info
}

// WithSize sets the size in bytes of the buffer.
func (info BufferCreateInfo) WithSize(size uint32) BufferCreateInfo {
	info.raw.size = size
	return info
}

// TransferBufferCreateInfo specifies the parameters of a transfer buffer,
// consumed by [Device.CreateTransferBuffer].
type TransferBufferCreateInfo struct {
	raw transferBufferCreateInfo
}

// NewTransferBufferCreateInfo returns a zero-valued descriptor.
func NewTransferBufferCreateInfo() TransferBufferCreateInfo {
	return TransferBufferCreateInfo{}
}

// WithUsage sets the direction the transfer buffer moves data.
func (info TransferBufferCreateInfo) WithUsage(usage TransferBufferUsage) TransferBufferCreateInfo {
	info.raw.usage = usage
	return info
}

// WithSize sets the size in bytes of the transfer buffer.
func (info TransferBufferCreateInfo) WithSize(size uint32) TransferBufferCreateInfo {
	info.raw.size = size
	return info
}

// ShaderCreateInfo specifies the parameters of a shader, consumed by
// [Device.CreateShader].
//
// The resource counts must match the shader's actual bindings; SDL uses
// them to set up binding slots per backend.
type ShaderCreateInfo struct {
	raw        shaderCreateInfo
	code       []byte
	entrypoint string
}

// NewShaderCreateInfo returns a zero-valued descriptor.
func NewShaderCreateInfo() ShaderCreateInfo {
	return ShaderCreateInfo{}
}

// WithCode sets the shader code in the format declared with
// [ShaderCreateInfo.WithFormat]. The slice is retained until the
// descriptor is consumed.
func (info ShaderCreateInfo) WithCode(code []byte) ShaderCreateInfo {
	info.code = code
	return info
}

// WithEntrypoint sets the name of the shader's entry point function,
// typically "main".
func (info ShaderCreateInfo) WithEntrypoint(entrypoint string) ShaderCreateInfo {
	info.entrypoint = entrypoint
	return info
}

// WithFormat sets the format of the shader code.
func (info ShaderCreateInfo) WithFormat(format ShaderFormat) ShaderCreateInfo {
	info.raw.format = format
	return info
}

// WithStage sets the pipeline stage the shader corresponds to.
func (info ShaderCreateInfo) WithStage(stage ShaderStage) ShaderCreateInfo {
	info.raw.stage = stage
	return info
}

// WithNumSamplers sets the number of samplers the shader declares.
func (info ShaderCreateInfo) WithNumSamplers(n uint32) ShaderCreateInfo {
	info.raw.numSamplers = n
	return info
}

// WithNumStorageTextures sets the number of storage textures the shader
// declares.
func (info ShaderCreateInfo) WithNumStorageTextures(n uint32) ShaderCreateInfo {
	info.raw.numStorageTextures = n
	return info
}

// WithNumStorageBuffers sets the number of storage buffers the shader
// declares.
func (info ShaderCreateInfo) WithNumStorageBuffers(n uint32) ShaderCreateInfo {
	info.raw.numStorageBuffers = n
	return info
}

// WithNumUniformBuffers sets the number of uniform buffers the shader
// declares.
func (info ShaderCreateInfo) WithNumUniformBuffers(n uint32) ShaderCreateInfo {
	info.raw.numUniformBuffers = n
	return info
}
