package gpu

// VertexBufferDescription specifies the parameters of vertex buffers used
// by a graphics pipeline.
//
// When you call [RenderPass.BindVertexBuffers], you specify the binding
// slots of the vertex buffers. For example if you called it with a first
// slot of 2 and two bindings, the bindings array would contain the bindings
// for slots 2 and 3.
type VertexBufferDescription struct {
	raw vertexBufferDescription
}

// NewVertexBufferDescription returns a zero-valued descriptor.
func NewVertexBufferDescription() VertexBufferDescription {
	return VertexBufferDescription{}
}

// WithSlot sets the binding slot of the vertex buffer.
func (d VertexBufferDescription) WithSlot(slot uint32) VertexBufferDescription {
	d.raw.slot = slot
	return d
}

// WithPitch sets the byte pitch between consecutive elements of the vertex
// buffer.
func (d VertexBufferDescription) WithPitch(pitch uint32) VertexBufferDescription {
	d.raw.pitch = pitch
	return d
}

// WithInputRate sets whether attribute addressing is a function of the
// vertex index or of the instance index.
func (d VertexBufferDescription) WithInputRate(inputRate VertexInputRate) VertexBufferDescription {
	d.raw.inputRate = inputRate
	return d
}

// VertexAttribute specifies a vertex attribute of a graphics pipeline.
//
// All vertex attribute locations provided to a vertex input state must be
// unique.
type VertexAttribute struct {
	raw vertexAttribute
}

// NewVertexAttribute returns a zero-valued descriptor.
func NewVertexAttribute() VertexAttribute {
	return VertexAttribute{}
}

// WithLocation sets the shader input location index.
func (a VertexAttribute) WithLocation(location uint32) VertexAttribute {
	a.raw.location = location
	return a
}

// WithBufferSlot sets the binding slot of the associated vertex buffer.
func (a VertexAttribute) WithBufferSlot(bufferSlot uint32) VertexAttribute {
	a.raw.bufferSlot = bufferSlot
	return a
}

// WithFormat sets the size and type of the attribute data.
func (a VertexAttribute) WithFormat(format VertexElementFormat) VertexAttribute {
	a.raw.format = format
	return a
}

// WithOffset sets the byte offset of this attribute relative to the start
// of the vertex element.
func (a VertexAttribute) WithOffset(offset uint32) VertexAttribute {
	a.raw.offset = offset
	return a
}

// VertexInputState specifies the vertex buffers and attributes used by a
// graphics pipeline.
//
// The slices are retained until the pipeline is created.
type VertexInputState struct {
	vertexBufferDescriptions []VertexBufferDescription
	vertexAttributes         []VertexAttribute
}

// NewVertexInputState returns a zero-valued descriptor.
func NewVertexInputState() VertexInputState {
	return VertexInputState{}
}

// WithVertexBufferDescriptions sets the vertex buffer descriptions.
func (s VertexInputState) WithVertexBufferDescriptions(descriptions []VertexBufferDescription) VertexInputState {
	s.vertexBufferDescriptions = descriptions
	return s
}

// WithVertexAttributes sets the vertex attribute descriptions.
func (s VertexInputState) WithVertexAttributes(attributes []VertexAttribute) VertexInputState {
	s.vertexAttributes = attributes
	return s
}

// RasterizerState specifies the parameters of the graphics pipeline
// rasterizer state.
//
// Note that [FillModeLine] is not supported on many Android devices and
// that the D3D12 driver disables depth clamping while depth clipping is
// enabled.
type RasterizerState struct {
	raw rasterizerState
}

// NewRasterizerState returns a zero-valued descriptor.
func NewRasterizerState() RasterizerState {
	return RasterizerState{}
}

// WithFillMode sets whether polygons are filled in or drawn as lines.
func (s RasterizerState) WithFillMode(fillMode FillMode) RasterizerState {
	s.raw.fillMode = fillMode
	return s
}

// WithCullMode sets the facing direction in which triangles are culled.
func (s RasterizerState) WithCullMode(cullMode CullMode) RasterizerState {
	s.raw.cullMode = cullMode
	return s
}

// WithFrontFace sets the vertex winding that determines a front-facing
// triangle.
func (s RasterizerState) WithFrontFace(frontFace FrontFace) RasterizerState {
	s.raw.frontFace = frontFace
	return s
}

// WithDepthBiasConstantFactor sets a scalar factor controlling the constant
// depth value added to each fragment.
func (s RasterizerState) WithDepthBiasConstantFactor(factor float32) RasterizerState {
	s.raw.depthBiasConstantFactor = factor
	return s
}

// WithDepthBiasClamp sets the maximum depth bias of a fragment.
func (s RasterizerState) WithDepthBiasClamp(clamp float32) RasterizerState {
	s.raw.depthBiasClamp = clamp
	return s
}

// WithDepthBiasSlopeFactor sets a scalar factor applied to a fragment's
// slope in depth calculations.
func (s RasterizerState) WithDepthBiasSlopeFactor(factor float32) RasterizerState {
	s.raw.depthBiasSlopeFactor = factor
	return s
}

// WithEnableDepthBias enables fragment depth biasing.
func (s RasterizerState) WithEnableDepthBias(enableDepthBias bool) RasterizerState {
	s.raw.enableDepthBias = enableDepthBias
	return s
}

// WithEnableDepthClip enables depth clipping. When disabled, depth values
// are clamped instead.
func (s RasterizerState) WithEnableDepthClip(enableDepthClip bool) RasterizerState {
	s.raw.enableDepthClip = enableDepthClip
	return s
}

// StencilOpState specifies the stencil operations for one triangle facing
// direction.
type StencilOpState struct {
	raw stencilOpState
}

// NewStencilOpState returns a zero-valued descriptor.
func NewStencilOpState() StencilOpState {
	return StencilOpState{}
}

// WithFailOp sets the action performed on samples that fail the stencil
// test.
func (s StencilOpState) WithFailOp(failOp StencilOp) StencilOpState {
	s.raw.failOp = failOp
	return s
}

// WithPassOp sets the action performed on samples that pass both the depth
// and stencil tests.
func (s StencilOpState) WithPassOp(passOp StencilOp) StencilOpState {
	s.raw.passOp = passOp
	return s
}

// WithDepthFailOp sets the action performed on samples that pass the
// stencil test and fail the depth test.
func (s StencilOpState) WithDepthFailOp(depthFailOp StencilOp) StencilOpState {
	s.raw.depthFailOp = depthFailOp
	return s
}

// WithCompareOp sets the comparison operator used in the stencil test.
func (s StencilOpState) WithCompareOp(compareOp CompareOp) StencilOpState {
	s.raw.compareOp = compareOp
	return s
}

// DepthStencilState specifies the parameters of the graphics pipeline
// depth-stencil state.
type DepthStencilState struct {
	raw depthStencilState
}

// NewDepthStencilState returns a zero-valued descriptor.
func NewDepthStencilState() DepthStencilState {
	return DepthStencilState{}
}

// WithCompareOp sets the comparison operator used for the depth test.
func (s DepthStencilState) WithCompareOp(compareOp CompareOp) DepthStencilState {
	s.raw.compareOp = compareOp
	return s
}

// WithBackStencilState sets the stencil op state for back-facing triangles.
func (s DepthStencilState) WithBackStencilState(state StencilOpState) DepthStencilState {
	s.raw.backStencilState = state.raw
	return s
}

// WithFrontStencilState sets the stencil op state for front-facing
// triangles.
func (s DepthStencilState) WithFrontStencilState(state StencilOpState) DepthStencilState {
	s.raw.frontStencilState = state.raw
	return s
}

// WithCompareMask selects the bits of the stencil values participating in
// the stencil test.
func (s DepthStencilState) WithCompareMask(compareMask uint8) DepthStencilState {
	s.raw.compareMask = compareMask
	return s
}

// WithWriteMask selects the bits of the stencil values updated by the
// stencil test.
func (s DepthStencilState) WithWriteMask(writeMask uint8) DepthStencilState {
	s.raw.writeMask = writeMask
	return s
}

// WithEnableDepthTest enables the depth test.
func (s DepthStencilState) WithEnableDepthTest(enableDepthTest bool) DepthStencilState {
	s.raw.enableDepthTest = enableDepthTest
	return s
}

// WithEnableDepthWrite enables depth writes. Depth writes are always
// disabled when the depth test is disabled.
func (s DepthStencilState) WithEnableDepthWrite(enableDepthWrite bool) DepthStencilState {
	s.raw.enableDepthWrite = enableDepthWrite
	return s
}

// WithEnableStencilTest enables the stencil test.
func (s DepthStencilState) WithEnableStencilTest(enableStencilTest bool) DepthStencilState {
	s.raw.enableStencilTest = enableStencilTest
	return s
}

// MultisampleState specifies the parameters of the graphics pipeline
// multisample state.
type MultisampleState struct {
	raw multisampleState
}

// NewMultisampleState returns a zero-valued descriptor.
func NewMultisampleState() MultisampleState {
	return MultisampleState{}
}

// WithSampleCount sets the number of samples used in rasterization.
func (s MultisampleState) WithSampleCount(sampleCount SampleCount) MultisampleState {
	s.raw.sampleCount = sampleCount
	return s
}

// WithSampleMask sets which samples are updated in the render targets.
// Ignored unless the mask is enabled; treated as 0xFFFFFFFF otherwise.
func (s MultisampleState) WithSampleMask(sampleMask uint32) MultisampleState {
	s.raw.sampleMask = sampleMask
	return s
}

// WithEnableMask enables the sample mask.
func (s MultisampleState) WithEnableMask(enableMask bool) MultisampleState {
	s.raw.enableMask = enableMask
	return s
}

// ColorTargetBlendState specifies the blend state of a color target.
type ColorTargetBlendState struct {
	raw colorTargetBlendState
}

// NewColorTargetBlendState returns a zero-valued descriptor.
func NewColorTargetBlendState() ColorTargetBlendState {
	return ColorTargetBlendState{}
}

// WithSrcColorBlendFactor sets the value to be multiplied by the source
// RGB value.
func (s ColorTargetBlendState) WithSrcColorBlendFactor(factor BlendFactor) ColorTargetBlendState {
	s.raw.srcColorBlendFactor = factor
	return s
}

// WithDstColorBlendFactor sets the value to be multiplied by the
// destination RGB value.
func (s ColorTargetBlendState) WithDstColorBlendFactor(factor BlendFactor) ColorTargetBlendState {
	s.raw.dstColorBlendFactor = factor
	return s
}

// WithColorBlendOp sets the blend operation for the RGB components.
func (s ColorTargetBlendState) WithColorBlendOp(blendOp BlendOp) ColorTargetBlendState {
	s.raw.colorBlendOp = blendOp
	return s
}

// WithSrcAlphaBlendFactor sets the value to be multiplied by the source
// alpha.
func (s ColorTargetBlendState) WithSrcAlphaBlendFactor(factor BlendFactor) ColorTargetBlendState {
	s.raw.srcAlphaBlendFactor = factor
	return s
}

// WithDstAlphaBlendFactor sets the value to be multiplied by the
// destination alpha.
func (s ColorTargetBlendState) WithDstAlphaBlendFactor(factor BlendFactor) ColorTargetBlendState {
	s.raw.dstAlphaBlendFactor = factor
	return s
}

// WithAlphaBlendOp sets the blend operation for the alpha component.
func (s ColorTargetBlendState) WithAlphaBlendOp(blendOp BlendOp) ColorTargetBlendState {
	s.raw.alphaBlendOp = blendOp
	return s
}

// WithColorWriteMask selects which of the RGBA components are enabled for
// writing. Ignored unless the mask is enabled.
func (s ColorTargetBlendState) WithColorWriteMask(mask ColorComponentFlags) ColorTargetBlendState {
	s.raw.colorWriteMask = mask
	return s
}

// WithEnableBlend enables blending for the color target.
func (s ColorTargetBlendState) WithEnableBlend(enableBlend bool) ColorTargetBlendState {
	s.raw.enableBlend = enableBlend
	return s
}

// WithEnableColorWriteMask enables the color write mask.
func (s ColorTargetBlendState) WithEnableColorWriteMask(enable bool) ColorTargetBlendState {
	s.raw.enableColorWriteMask = enable
	return s
}

// ColorTargetDescription specifies the format and blend state of a color
// target attached to a graphics pipeline.
type ColorTargetDescription struct {
	raw colorTargetDescription
}

// NewColorTargetDescription returns a zero-valued descriptor.
func NewColorTargetDescription() ColorTargetDescription {
	return ColorTargetDescription{}
}

// WithFormat sets the pixel format of the color target.
func (d ColorTargetDescription) WithFormat(format TextureFormat) ColorTargetDescription {
	d.raw.format = format
	return d
}

// WithBlendState sets the blend state of the color target.
func (d ColorTargetDescription) WithBlendState(blendState ColorTargetBlendState) ColorTargetDescription {
	d.raw.blendState = blendState.raw
	return d
}

// GraphicsPipelineTargetInfo specifies the render targets a graphics
// pipeline is compatible with.
//
// The color target descriptions slice is retained until the pipeline is
// created.
type GraphicsPipelineTargetInfo struct {
	raw                     graphicsPipelineTargetInfo
	colorTargetDescriptions []ColorTargetDescription
}

// NewGraphicsPipelineTargetInfo returns a zero-valued descriptor.
func NewGraphicsPipelineTargetInfo() GraphicsPipelineTargetInfo {
	return GraphicsPipelineTargetInfo{}
}

// WithColorTargetDescriptions sets the descriptions of the color targets
// used by the pipeline.
func (info GraphicsPipelineTargetInfo) WithColorTargetDescriptions(descriptions []ColorTargetDescription) GraphicsPipelineTargetInfo {
	info.colorTargetDescriptions = descriptions
	return info
}

// WithDepthStencilFormat sets the pixel format of the depth-stencil target.
// Ignored unless the pipeline has a depth-stencil target.
func (info GraphicsPipelineTargetInfo) WithDepthStencilFormat(format TextureFormat) GraphicsPipelineTargetInfo {
	info.raw.depthStencilFormat = format
	return info
}

// WithHasDepthStencilTarget declares that the pipeline uses a depth-stencil
// target.
func (info GraphicsPipelineTargetInfo) WithHasDepthStencilTarget(has bool) GraphicsPipelineTargetInfo {
	info.raw.hasDepthStencilTarget = has
	return info
}

// GraphicsPipelineCreateInfo specifies the parameters of a graphics
// pipeline, consumed by [Device.CreateGraphicsPipeline].
//
// The shaders and slices set on the descriptor are retained until the
// pipeline is created. Shaders may be released once the pipeline exists.
type GraphicsPipelineCreateInfo struct {
	raw            graphicsPipelineCreateInfo
	vertexShader   *Shader
	fragmentShader *Shader
	vertexInput    VertexInputState
	targetInfo     GraphicsPipelineTargetInfo
}

// NewGraphicsPipelineCreateInfo returns a zero-valued descriptor; every
// omitted setter leaves SDL's default in place.
func NewGraphicsPipelineCreateInfo() GraphicsPipelineCreateInfo {
	return GraphicsPipelineCreateInfo{}
}

// WithVertexShader sets the vertex shader used by the pipeline.
func (info GraphicsPipelineCreateInfo) WithVertexShader(shader *Shader) GraphicsPipelineCreateInfo {
	info.raw.vertexShader = shader.ptr
	info.vertexShader = shader
	return info
}

// WithFragmentShader sets the fragment shader used by the pipeline.
func (info GraphicsPipelineCreateInfo) WithFragmentShader(shader *Shader) GraphicsPipelineCreateInfo {
	info.raw.fragmentShader = shader.ptr
	info.fragmentShader = shader
	return info
}

// WithVertexInputState sets the vertex layout of the pipeline.
func (info GraphicsPipelineCreateInfo) WithVertexInputState(state VertexInputState) GraphicsPipelineCreateInfo {
	info.vertexInput = state
	return info
}

// WithPrimitiveType sets the primitive topology of the pipeline.
func (info GraphicsPipelineCreateInfo) WithPrimitiveType(primitiveType PrimitiveType) GraphicsPipelineCreateInfo {
	info.raw.primitiveType = primitiveType
	return info
}

// WithRasterizerState sets the rasterizer state of the pipeline.
func (info GraphicsPipelineCreateInfo) WithRasterizerState(state RasterizerState) GraphicsPipelineCreateInfo {
	info.raw.rasterizerState = state.raw
	return info
}

// WithMultisampleState sets the multisample state of the pipeline.
func (info GraphicsPipelineCreateInfo) WithMultisampleState(state MultisampleState) GraphicsPipelineCreateInfo {
	info.raw.multisampleState = state.raw
	return info
}

// WithDepthStencilState sets the depth-stencil state of the pipeline.
func (info GraphicsPipelineCreateInfo) WithDepthStencilState(state DepthStencilState) GraphicsPipelineCreateInfo {
	info.raw.depthStencilState = state.raw
	return info
}

// WithTargetInfo sets the formats and blend states of the render targets
// the pipeline is used with.
func (info GraphicsPipelineCreateInfo) WithTargetInfo(targetInfo GraphicsPipelineTargetInfo) GraphicsPipelineCreateInfo {
	info.targetInfo = targetInfo
	return info
}

func (info *GraphicsPipelineCreateInfo) validate() error {
	if err := checkLive(info.vertexShader); err != nil {
		return err
	}
	return checkLive(info.fragmentShader)
}
