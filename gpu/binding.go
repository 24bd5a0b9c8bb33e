package gpu

// BufferBinding specifies a buffer and offset pair bound by
// [RenderPass.BindVertexBuffers] or [RenderPass.BindIndexBuffer].
type BufferBinding struct {
	raw    bufferBinding
	buffer *Buffer
}

// NewBufferBinding returns a zero-valued descriptor.
func NewBufferBinding() BufferBinding {
	return BufferBinding{}
}

// WithBuffer sets the buffer to bind. Vertex buffers must have been created
// with [BufferUsageVertex], index buffers with [BufferUsageIndex].
func (b BufferBinding) WithBuffer(buffer *Buffer) BufferBinding {
	b.raw.buffer = buffer.ptr
	b.buffer = buffer
	return b
}

// WithOffset sets the starting byte of the data to bind.
func (b BufferBinding) WithOffset(offset uint32) BufferBinding {
	b.raw.offset = offset
	return b
}

func (b *BufferBinding) validate() error {
	return checkLive(b.buffer)
}

// TextureSamplerBinding specifies a texture-sampler pair bound by
// [RenderPass.BindVertexSamplers] or [RenderPass.BindFragmentSamplers].
type TextureSamplerBinding struct {
	raw     textureSamplerBinding
	texture *Texture
	sampler *Sampler
}

// NewTextureSamplerBinding returns a zero-valued descriptor.
func NewTextureSamplerBinding() TextureSamplerBinding {
	return TextureSamplerBinding{}
}

// WithTexture sets the texture to bind. Must have been created with
// [TextureUsageSampler].
func (b TextureSamplerBinding) WithTexture(texture *Texture) TextureSamplerBinding {
	b.raw.texture = texture.ptr
	b.texture = texture
	return b
}

// WithSampler sets the sampler to bind.
func (b TextureSamplerBinding) WithSampler(sampler *Sampler) TextureSamplerBinding {
	b.raw.sampler = sampler.ptr
	b.sampler = sampler
	return b
}

func (b *TextureSamplerBinding) validate() error {
	if err := checkLive(b.texture); err != nil {
		return err
	}
	return checkLive(b.sampler)
}

// StorageTextureReadWriteBinding specifies a storage texture bound by
// [CommandBuffer.BeginComputePass].
type StorageTextureReadWriteBinding struct {
	raw     storageTextureReadWriteBinding
	texture *Texture
}

// NewStorageTextureReadWriteBinding returns a zero-valued descriptor.
func NewStorageTextureReadWriteBinding() StorageTextureReadWriteBinding {
	return StorageTextureReadWriteBinding{}
}

// WithTexture sets the texture to bind. Must have been created with
// [TextureUsageComputeStorageWrite] or
// [TextureUsageComputeStorageSimultaneousReadWrite].
func (b StorageTextureReadWriteBinding) WithTexture(texture *Texture) StorageTextureReadWriteBinding {
	b.raw.texture = texture.ptr
	b.texture = texture
	return b
}

// WithMipLevel sets the mip level to bind.
func (b StorageTextureReadWriteBinding) WithMipLevel(mipLevel uint32) StorageTextureReadWriteBinding {
	b.raw.mipLevel = mipLevel
	return b
}

// WithLayer sets the layer index to bind.
func (b StorageTextureReadWriteBinding) WithLayer(layer uint32) StorageTextureReadWriteBinding {
	b.raw.layer = layer
	return b
}

// WithCycle, when true, cycles the texture if it is already bound.
func (b StorageTextureReadWriteBinding) WithCycle(cycle bool) StorageTextureReadWriteBinding {
	b.raw.cycle = cycle
	return b
}

func (b *StorageTextureReadWriteBinding) validate() error {
	return checkLive(b.texture)
}

// StorageBufferReadWriteBinding specifies a storage buffer bound by
// [CommandBuffer.BeginComputePass].
type StorageBufferReadWriteBinding struct {
	raw    storageBufferReadWriteBinding
	buffer *Buffer
}

// NewStorageBufferReadWriteBinding returns a zero-valued descriptor.
func NewStorageBufferReadWriteBinding() StorageBufferReadWriteBinding {
	return StorageBufferReadWriteBinding{}
}

// WithBuffer sets the buffer to bind. Must have been created with
// [BufferUsageComputeStorageWrite].
func (b StorageBufferReadWriteBinding) WithBuffer(buffer *Buffer) StorageBufferReadWriteBinding {
	b.raw.buffer = buffer.ptr
	b.buffer = buffer
	return b
}

// WithCycle, when true, cycles the buffer if it is already bound.
func (b StorageBufferReadWriteBinding) WithCycle(cycle bool) StorageBufferReadWriteBinding {
	b.raw.cycle = cycle
	return b
}

func (b *StorageBufferReadWriteBinding) validate() error {
	return checkLive(b.buffer)
}
