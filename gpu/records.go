package gpu

// Fixed-layout records.
//
// Each struct in this file mirrors one SDL_GPU* C structure: same field
// order, same widths, same explicit padding. Pointers to these records are
// handed to SDL verbatim, so the layout is an external contract: never
// reorder or retype a field. layout_test.go checks sizes and offsets
// against the SDL_gpu.h layout on 64-bit targets.
//
// Resource fields hold the opaque native handle; the exported descriptor
// wrapping the record also retains the Go-side resource so the consuming
// call can check liveness.

// propertiesID mirrors SDL_PropertiesID. Always zero: this binding does not
// expose the SDL properties system, and zero means "no properties" to SDL.
type propertiesID uint32

// FColor is a color with float channels in [0, 1], matching SDL_FColor.
// GPU clear colors are stored in this representation.
type FColor struct {
	R, G, B, A float32
}

// depthStencilTargetInfo mirrors SDL_GPUDepthStencilTargetInfo.
type depthStencilTargetInfo struct {
	texture        uintptr
	clearDepth     float32
	loadOp         LoadOp
	storeOp        StoreOp
	stencilLoadOp  LoadOp
	stencilStoreOp StoreOp
	cycle          bool
	clearStencil   uint8
	_              [2]byte
}

// colorTargetInfo mirrors SDL_GPUColorTargetInfo.
type colorTargetInfo struct {
	texture             uintptr
	mipLevel            uint32
	layerOrDepthPlane   uint32
	clearColor          FColor
	loadOp              LoadOp
	storeOp             StoreOp
	resolveTexture      uintptr
	resolveMipLevel     uint32
	resolveLayer        uint32
	cycle               bool
	cycleResolveTexture bool
	_                   [2]byte
}

// textureCreateInfo mirrors SDL_GPUTextureCreateInfo.
type textureCreateInfo struct {
	typ               TextureType
	format            TextureFormat
	usage             TextureUsageFlags
	width             uint32
	height            uint32
	layerCountOrDepth uint32
	numLevels         uint32
	sampleCount       SampleCount
	props             propertiesID
}

// samplerCreateInfo mirrors SDL_GPUSamplerCreateInfo.
type samplerCreateInfo struct {
	minFilter        Filter
	magFilter        Filter
	mipmapMode       SamplerMipmapMode
	addressModeU     SamplerAddressMode
	addressModeV     SamplerAddressMode
	addressModeW     SamplerAddressMode
	mipLodBias       float32
	maxAnisotropy    float32
	compareOp        CompareOp
	minLod           float32
	maxLod           float32
	enableAnisotropy bool
	enableCompare    bool
	_                [2]byte
	props            propertiesID
}

// bufferCreateInfo mirrors SDL_GPUBufferCreateInfo.
type bufferCreateInfo struct {
	usage BufferUsageFlags
	size  uint32
	props propertiesID
}

// transferBufferCreateInfo mirrors SDL_GPUTransferBufferCreateInfo.
type transferBufferCreateInfo struct {
	usage TransferBufferUsage
	size  uint32
	props propertiesID
}

// shaderCreateInfo mirrors SDL_GPUShaderCreateInfo.
type shaderCreateInfo struct {
	codeSize           uintptr // size_t
	code               uintptr
	entrypoint         uintptr
	format             ShaderFormat
	stage              ShaderStage
	numSamplers        uint32
	numStorageTextures uint32
	numStorageBuffers  uint32
	numUniformBuffers  uint32
	props              propertiesID
	_                  [4]byte
}

// textureRegion mirrors SDL_GPUTextureRegion.
type textureRegion struct {
	texture  uintptr
	mipLevel uint32
	layer    uint32
	x        uint32
	y        uint32
	z        uint32
	w        uint32
	h        uint32
	d        uint32
}

// textureTransferInfo mirrors SDL_GPUTextureTransferInfo.
type textureTransferInfo struct {
	transferBuffer uintptr
	offset         uint32
	pixelsPerRow   uint32
	rowsPerLayer   uint32
	_              [4]byte
}

// textureLocation mirrors SDL_GPUTextureLocation.
type textureLocation struct {
	texture  uintptr
	mipLevel uint32
	layer    uint32
	x        uint32
	y        uint32
	z        uint32
	_        [4]byte
}

// bufferBinding mirrors SDL_GPUBufferBinding.
type bufferBinding struct {
	buffer uintptr
	offset uint32
	_      [4]byte
}

// transferBufferLocation mirrors SDL_GPUTransferBufferLocation.
type transferBufferLocation struct {
	transferBuffer uintptr
	offset         uint32
	_              [4]byte
}

// bufferLocation mirrors SDL_GPUBufferLocation.
type bufferLocation struct {
	buffer uintptr
	offset uint32
	_      [4]byte
}

// bufferRegion mirrors SDL_GPUBufferRegion.
type bufferRegion struct {
	buffer uintptr
	offset uint32
	size   uint32
}

// vertexBufferDescription mirrors SDL_GPUVertexBufferDescription.
type vertexBufferDescription struct {
	slot      uint32
	pitch     uint32
	inputRate VertexInputRate
	// instanceStepRate is reserved by SDL and must be zero.
	instanceStepRate uint32
}

// vertexAttribute mirrors SDL_GPUVertexAttribute.
type vertexAttribute struct {
	location   uint32
	bufferSlot uint32
	format     VertexElementFormat
	offset     uint32
}

// vertexInputState mirrors SDL_GPUVertexInputState.
type vertexInputState struct {
	vertexBufferDescriptions uintptr
	numVertexBuffers         uint32
	_                        [4]byte
	vertexAttributes         uintptr
	numVertexAttributes      uint32
	_                        [4]byte
}

// rasterizerState mirrors SDL_GPURasterizerState.
type rasterizerState struct {
	fillMode                FillMode
	cullMode                CullMode
	frontFace               FrontFace
	depthBiasConstantFactor float32
	depthBiasClamp          float32
	depthBiasSlopeFactor    float32
	enableDepthBias         bool
	enableDepthClip         bool
	_                       [2]byte
}

// multisampleState mirrors SDL_GPUMultisampleState.
type multisampleState struct {
	sampleCount SampleCount
	sampleMask  uint32
	enableMask  bool
	_           [3]byte
}

// stencilOpState mirrors SDL_GPUStencilOpState.
type stencilOpState struct {
	failOp      StencilOp
	passOp      StencilOp
	depthFailOp StencilOp
	compareOp   CompareOp
}

// depthStencilState mirrors SDL_GPUDepthStencilState.
type depthStencilState struct {
	compareOp         CompareOp
	backStencilState  stencilOpState
	frontStencilState stencilOpState
	compareMask       uint8
	writeMask         uint8
	enableDepthTest   bool
	enableDepthWrite  bool
	enableStencilTest bool
	_                 [3]byte
}

// colorTargetBlendState mirrors SDL_GPUColorTargetBlendState.
type colorTargetBlendState struct {
	srcColorBlendFactor  BlendFactor
	dstColorBlendFactor  BlendFactor
	colorBlendOp         BlendOp
	srcAlphaBlendFactor  BlendFactor
	dstAlphaBlendFactor  BlendFactor
	alphaBlendOp         BlendOp
	colorWriteMask       ColorComponentFlags
	enableBlend          bool
	enableColorWriteMask bool
	_                    [5]byte
}

// colorTargetDescription mirrors SDL_GPUColorTargetDescription.
type colorTargetDescription struct {
	format     TextureFormat
	blendState colorTargetBlendState
}

// graphicsPipelineTargetInfo mirrors SDL_GPUGraphicsPipelineTargetInfo.
type graphicsPipelineTargetInfo struct {
	colorTargetDescriptions uintptr
	numColorTargets         uint32
	depthStencilFormat      TextureFormat
	hasDepthStencilTarget   bool
	_                       [3]byte
	_                       [4]byte
}

// graphicsPipelineCreateInfo mirrors SDL_GPUGraphicsPipelineCreateInfo.
type graphicsPipelineCreateInfo struct {
	vertexShader      uintptr
	fragmentShader    uintptr
	vertexInputState  vertexInputState
	primitiveType     PrimitiveType
	rasterizerState   rasterizerState
	multisampleState  multisampleState
	depthStencilState depthStencilState
	targetInfo        graphicsPipelineTargetInfo
	props             propertiesID
	_                 [4]byte
}

// textureSamplerBinding mirrors SDL_GPUTextureSamplerBinding.
type textureSamplerBinding struct {
	texture uintptr
	sampler uintptr
}

// storageTextureReadWriteBinding mirrors SDL_GPUStorageTextureReadWriteBinding.
type storageTextureReadWriteBinding struct {
	texture  uintptr
	mipLevel uint32
	layer    uint32
	cycle    bool
	_        [3]byte
	_        [4]byte
}

// storageBufferReadWriteBinding mirrors SDL_GPUStorageBufferReadWriteBinding.
type storageBufferReadWriteBinding struct {
	buffer uintptr
	cycle  bool
	_      [7]byte
}

// IndirectDispatchCommand specifies the parameters of an indirect dispatch
// command, matching SDL_GPUIndirectDispatchCommand. Values of this type are
// written into a buffer with [BufferUsageIndirect] usage and consumed by
// [ComputePass.DispatchIndirect].
type IndirectDispatchCommand struct {
	GroupCountX uint32
	GroupCountY uint32
	GroupCountZ uint32
}
