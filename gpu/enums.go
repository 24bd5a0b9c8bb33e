package gpu

import "fmt"

// Enum and flag types in this file mirror the SDL_gpu.h enumerations.
// The integer values are part of the external contract and must not be
// reordered: records holding them are passed to SDL verbatim.

// LoadOp specifies how the contents of a texture attached to a render pass
// are treated at the beginning of the pass. Matches SDL_GPULoadOp.
type LoadOp uint32

const (
	// LoadOpLoad loads the data currently in the texture.
	LoadOpLoad LoadOp = iota
	// LoadOpClear clears the texture to a single value.
	LoadOpClear
	// LoadOpDontCare lets the driver do whatever it wants with the
	// texture memory. A good option when every pixel is touched in the
	// render pass.
	LoadOpDontCare
)

// String returns the string representation of the LoadOp.
func (op LoadOp) String() string {
	switch op {
	case LoadOpLoad:
		return "Load"
	case LoadOpClear:
		return "Clear"
	case LoadOpDontCare:
		return "DontCare"
	default:
		return fmt.Sprintf("LoadOp(%d)", uint32(op))
	}
}

// StoreOp specifies how the contents of a texture attached to a render pass
// are treated at the end of the pass. Matches SDL_GPUStoreOp.
type StoreOp uint32

const (
	// StoreOpStore stores the results of the render pass in the texture.
	StoreOpStore StoreOp = iota
	// StoreOpDontCare lets the driver discard the results.
	StoreOpDontCare
	// StoreOpResolve resolves a multisample texture into the resolve
	// texture (which must have a sample count of 1), then the driver may
	// discard the multisample texture memory.
	StoreOpResolve
	// StoreOpResolveAndStore resolves a multisample texture into the
	// resolve texture and also stores the multisample texture's contents.
	StoreOpResolveAndStore
)

// String returns the string representation of the StoreOp.
func (op StoreOp) String() string {
	switch op {
	case StoreOpStore:
		return "Store"
	case StoreOpDontCare:
		return "DontCare"
	case StoreOpResolve:
		return "Resolve"
	case StoreOpResolveAndStore:
		return "ResolveAndStore"
	default:
		return fmt.Sprintf("StoreOp(%d)", uint32(op))
	}
}

// TextureType specifies the base dimensionality of a texture.
// Matches SDL_GPUTextureType.
type TextureType uint32

const (
	TextureType2D TextureType = iota
	TextureType2DArray
	TextureType3D
	TextureTypeCube
	TextureTypeCubeArray
)

// SampleCount specifies the number of samples per texel of a render target.
// Matches SDL_GPUSampleCount (the values are log2 of the sample count).
type SampleCount uint32

const (
	SampleCount1 SampleCount = iota
	SampleCount2
	SampleCount4
	SampleCount8
)

// TextureFormat specifies the pixel format of a texture.
// Matches SDL_GPUTextureFormat.
type TextureFormat uint32

const (
	TextureFormatInvalid TextureFormat = iota

	// Unsigned normalized formats.
	TextureFormatA8Unorm
	TextureFormatR8Unorm
	TextureFormatR8G8Unorm
	TextureFormatR8G8B8A8Unorm
	TextureFormatR16Unorm
	TextureFormatR16G16Unorm
	TextureFormatR16G16B16A16Unorm
	TextureFormatR10G10B10A2Unorm
	TextureFormatB5G6R5Unorm
	TextureFormatB5G5R5A1Unorm
	TextureFormatB4G4R4A4Unorm
	TextureFormatB8G8R8A8Unorm

	// Compressed unsigned normalized formats.
	TextureFormatBC1RGBAUnorm
	TextureFormatBC2RGBAUnorm
	TextureFormatBC3RGBAUnorm
	TextureFormatBC4RUnorm
	TextureFormatBC5RGUnorm
	TextureFormatBC7RGBAUnorm

	// Compressed signed and unsigned float formats.
	TextureFormatBC6HRGBFloat
	TextureFormatBC6HRGBUfloat

	// Signed normalized formats.
	TextureFormatR8Snorm
	TextureFormatR8G8Snorm
	TextureFormatR8G8B8A8Snorm
	TextureFormatR16Snorm
	TextureFormatR16G16Snorm
	TextureFormatR16G16B16A16Snorm

	// Signed float formats.
	TextureFormatR16Float
	TextureFormatR16G16Float
	TextureFormatR16G16B16A16Float
	TextureFormatR32Float
	TextureFormatR32G32Float
	TextureFormatR32G32B32A32Float

	// Unsigned float formats.
	TextureFormatR11G11B10Ufloat

	// Unsigned integer formats.
	TextureFormatR8Uint
	TextureFormatR8G8Uint
	TextureFormatR8G8B8A8Uint
	TextureFormatR16Uint
	TextureFormatR16G16Uint
	TextureFormatR16G16B16A16Uint
	TextureFormatR32Uint
	TextureFormatR32G32Uint
	TextureFormatR32G32B32A32Uint

	// Signed integer formats.
	TextureFormatR8Int
	TextureFormatR8G8Int
	TextureFormatR8G8B8A8Int
	TextureFormatR16Int
	TextureFormatR16G16Int
	TextureFormatR16G16B16A16Int
	TextureFormatR32Int
	TextureFormatR32G32Int
	TextureFormatR32G32B32A32Int

	// sRGB unsigned normalized formats.
	TextureFormatR8G8B8A8UnormSRGB
	TextureFormatB8G8R8A8UnormSRGB

	// Compressed sRGB unsigned normalized formats.
	TextureFormatBC1RGBAUnormSRGB
	TextureFormatBC2RGBAUnormSRGB
	TextureFormatBC3RGBAUnormSRGB
	TextureFormatBC7RGBAUnormSRGB

	// Depth formats.
	TextureFormatD16Unorm
	TextureFormatD24Unorm
	TextureFormatD32Float
	TextureFormatD24UnormS8Uint
	TextureFormatD32FloatS8Uint

	// Compressed ASTC normalized formats.
	TextureFormatASTC4x4Unorm
	TextureFormatASTC5x4Unorm
	TextureFormatASTC5x5Unorm
	TextureFormatASTC6x5Unorm
	TextureFormatASTC6x6Unorm
	TextureFormatASTC8x5Unorm
	TextureFormatASTC8x6Unorm
	TextureFormatASTC8x8Unorm
	TextureFormatASTC10x5Unorm
	TextureFormatASTC10x6Unorm
	TextureFormatASTC10x8Unorm
	TextureFormatASTC10x10Unorm
	TextureFormatASTC12x10Unorm
	TextureFormatASTC12x12Unorm

	// Compressed sRGB ASTC normalized formats.
	TextureFormatASTC4x4UnormSRGB
	TextureFormatASTC5x4UnormSRGB
	TextureFormatASTC5x5UnormSRGB
	TextureFormatASTC6x5UnormSRGB
	TextureFormatASTC6x6UnormSRGB
	TextureFormatASTC8x5UnormSRGB
	TextureFormatASTC8x6UnormSRGB
	TextureFormatASTC8x8UnormSRGB
	TextureFormatASTC10x5UnormSRGB
	TextureFormatASTC10x6UnormSRGB
	TextureFormatASTC10x8UnormSRGB
	TextureFormatASTC10x10UnormSRGB
	TextureFormatASTC12x10UnormSRGB
	TextureFormatASTC12x12UnormSRGB

	// Compressed ASTC signed float formats.
	TextureFormatASTC4x4Float
	TextureFormatASTC5x4Float
	TextureFormatASTC5x5Float
	TextureFormatASTC6x5Float
	TextureFormatASTC6x6Float
	TextureFormatASTC8x5Float
	TextureFormatASTC8x6Float
	TextureFormatASTC8x8Float
	TextureFormatASTC10x5Float
	TextureFormatASTC10x6Float
	TextureFormatASTC10x8Float
	TextureFormatASTC10x10Float
	TextureFormatASTC12x10Float
	TextureFormatASTC12x12Float
)

// TextureUsageFlags is a bitmask specifying how a texture is intended to be
// used by the client. Matches SDL_GPUTextureUsageFlags. Note that certain
// combinations are invalid, for example Sampler and GraphicsStorageRead.
type TextureUsageFlags uint32

const (
	// TextureUsageSampler allows the texture to be sampled in shaders.
	TextureUsageSampler TextureUsageFlags = 1 << iota
	// TextureUsageColorTarget allows the texture to be a render-pass color target.
	TextureUsageColorTarget
	// TextureUsageDepthStencilTarget allows the texture to be a render-pass
	// depth-stencil target.
	TextureUsageDepthStencilTarget
	// TextureUsageGraphicsStorageRead allows storage reads in graphics stages.
	TextureUsageGraphicsStorageRead
	// TextureUsageComputeStorageRead allows storage reads in compute shaders.
	TextureUsageComputeStorageRead
	// TextureUsageComputeStorageWrite allows storage writes in compute shaders.
	TextureUsageComputeStorageWrite
	// TextureUsageComputeStorageSimultaneousReadWrite allows reads and writes
	// of the same compute storage texture within a dispatch.
	TextureUsageComputeStorageSimultaneousReadWrite
)

// Filter specifies a filter operation used by a sampler.
// Matches SDL_GPUFilter.
type Filter uint32

const (
	// FilterNearest uses point sampling.
	FilterNearest Filter = iota
	// FilterLinear uses linear filtering.
	FilterLinear
)

// SamplerMipmapMode specifies the mipmap mode used by a sampler.
// Matches SDL_GPUSamplerMipmapMode.
type SamplerMipmapMode uint32

const (
	SamplerMipmapModeNearest SamplerMipmapMode = iota
	SamplerMipmapModeLinear
)

// SamplerAddressMode specifies behavior of texture sampling for coordinates
// outside [0, 1). Matches SDL_GPUSamplerAddressMode.
type SamplerAddressMode uint32

const (
	// SamplerAddressModeRepeat wraps coordinates back into the texture.
	SamplerAddressModeRepeat SamplerAddressMode = iota
	// SamplerAddressModeMirroredRepeat wraps and mirrors alternately.
	SamplerAddressModeMirroredRepeat
	// SamplerAddressModeClampToEdge clamps to the edge texel.
	SamplerAddressModeClampToEdge
)

// CompareOp specifies a comparison operator for depth, stencil, and sampler
// operations. Matches SDL_GPUCompareOp; note that 0 is the invalid value,
// not a usable operator.
type CompareOp uint32

const (
	CompareOpInvalid CompareOp = iota
	CompareOpNever
	CompareOpLess
	CompareOpEqual
	CompareOpLessOrEqual
	CompareOpGreater
	CompareOpNotEqual
	CompareOpGreaterOrEqual
	CompareOpAlways
)

// StencilOp specifies what happens to a stored stencil value if this or
// certain other tests pass or fail. Matches SDL_GPUStencilOp.
type StencilOp uint32

const (
	StencilOpInvalid StencilOp = iota
	StencilOpKeep
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementAndClamp
	StencilOpDecrementAndClamp
	StencilOpInvert
	StencilOpIncrementAndWrap
	StencilOpDecrementAndWrap
)

// BlendOp specifies the operator combining source and destination blend
// factors. Matches SDL_GPUBlendOp.
type BlendOp uint32

const (
	BlendOpInvalid BlendOp = iota
	// BlendOpAdd computes (source * source_factor) + (destination * destination_factor).
	BlendOpAdd
	// BlendOpSubtract computes (source * source_factor) - (destination * destination_factor).
	BlendOpSubtract
	// BlendOpReverseSubtract computes (destination * destination_factor) - (source * source_factor).
	BlendOpReverseSubtract
	// BlendOpMin takes the component-wise minimum.
	BlendOpMin
	// BlendOpMax takes the component-wise maximum.
	BlendOpMax
)

// BlendFactor specifies a blending factor applied to a color or alpha
// component. Matches SDL_GPUBlendFactor.
type BlendFactor uint32

const (
	BlendFactorInvalid BlendFactor = iota
	BlendFactorZero
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
	BlendFactorConstantColor
	BlendFactorOneMinusConstantColor
	BlendFactorSrcAlphaSaturate
)

// ColorComponentFlags is a bitmask of RGBA components enabled for writing.
// Matches SDL_GPUColorComponentFlags (a Uint8 in the C layout).
type ColorComponentFlags uint8

const (
	ColorComponentR ColorComponentFlags = 1 << iota
	ColorComponentG
	ColorComponentB
	ColorComponentA
)

// FillMode specifies whether polygons are filled in or drawn as lines.
// Matches SDL_GPUFillMode.
type FillMode uint32

const (
	FillModeFill FillMode = iota
	FillModeLine
)

// CullMode specifies the facing direction in which triangles are culled.
// Matches SDL_GPUCullMode.
type CullMode uint32

const (
	CullModeNone CullMode = iota
	CullModeFront
	CullModeBack
)

// FrontFace specifies the vertex winding that determines a front-facing
// triangle. Matches SDL_GPUFrontFace.
type FrontFace uint32

const (
	FrontFaceCounterClockwise FrontFace = iota
	FrontFaceClockwise
)

// VertexInputRate specifies whether attribute addressing is a function of
// the vertex index or the instance index. Matches SDL_GPUVertexInputRate.
type VertexInputRate uint32

const (
	VertexInputRateVertex VertexInputRate = iota
	VertexInputRateInstance
)

// VertexElementFormat specifies the size and type of a vertex attribute.
// Matches SDL_GPUVertexElementFormat.
type VertexElementFormat uint32

const (
	VertexElementFormatInvalid VertexElementFormat = iota

	// 32-bit signed integers.
	VertexElementFormatInt
	VertexElementFormatInt2
	VertexElementFormatInt3
	VertexElementFormatInt4

	// 32-bit unsigned integers.
	VertexElementFormatUint
	VertexElementFormatUint2
	VertexElementFormatUint3
	VertexElementFormatUint4

	// 32-bit floats.
	VertexElementFormatFloat
	VertexElementFormatFloat2
	VertexElementFormatFloat3
	VertexElementFormatFloat4

	// 8-bit signed integers.
	VertexElementFormatByte2
	VertexElementFormatByte4

	// 8-bit unsigned integers.
	VertexElementFormatUbyte2
	VertexElementFormatUbyte4

	// 8-bit signed normalized.
	VertexElementFormatByte2Norm
	VertexElementFormatByte4Norm

	// 8-bit unsigned normalized.
	VertexElementFormatUbyte2Norm
	VertexElementFormatUbyte4Norm

	// 16-bit signed integers.
	VertexElementFormatShort2
	VertexElementFormatShort4

	// 16-bit unsigned integers.
	VertexElementFormatUshort2
	VertexElementFormatUshort4

	// 16-bit signed normalized.
	VertexElementFormatShort2Norm
	VertexElementFormatShort4Norm

	// 16-bit unsigned normalized.
	VertexElementFormatUshort2Norm
	VertexElementFormatUshort4Norm

	// 16-bit floats.
	VertexElementFormatHalf2
	VertexElementFormatHalf4
)

// PrimitiveType specifies the primitive topology of a graphics pipeline.
// Matches SDL_GPUPrimitiveType.
type PrimitiveType uint32

const (
	// PrimitiveTypeTriangleList draws a series of separate triangles.
	PrimitiveTypeTriangleList PrimitiveType = iota
	// PrimitiveTypeTriangleStrip draws a series of connected triangles.
	PrimitiveTypeTriangleStrip
	// PrimitiveTypeLineList draws a series of separate lines.
	PrimitiveTypeLineList
	// PrimitiveTypeLineStrip draws a series of connected lines.
	PrimitiveTypeLineStrip
	// PrimitiveTypePointList draws a series of separate points.
	PrimitiveTypePointList
)

// IndexElementSize specifies the size of elements in an index buffer.
// Matches SDL_GPUIndexElementSize.
type IndexElementSize uint32

const (
	// IndexElementSize16Bit indicates 16-bit index elements.
	IndexElementSize16Bit IndexElementSize = iota
	// IndexElementSize32Bit indicates 32-bit index elements.
	IndexElementSize32Bit
)

// ShaderStage specifies which pipeline stage a shader program corresponds
// to. Matches SDL_GPUShaderStage.
type ShaderStage uint32

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
)

// ShaderFormat is a bitmask specifying the format of shader code.
// Matches SDL_GPUShaderFormat. Each driver accepts a subset of formats;
// pass the union of the formats an application can provide when creating
// a device.
type ShaderFormat uint32

const (
	// ShaderFormatPrivate indicates shaders for NDA'd platforms.
	ShaderFormatPrivate ShaderFormat = 1 << iota
	// ShaderFormatSPIRV indicates SPIR-V shaders for Vulkan.
	ShaderFormatSPIRV
	// ShaderFormatDXBC indicates DXBC SM5_1 shaders for D3D12.
	ShaderFormatDXBC
	// ShaderFormatDXIL indicates DXIL SM6_0 shaders for D3D12.
	ShaderFormatDXIL
	// ShaderFormatMSL indicates MSL shaders for Metal.
	ShaderFormatMSL
	// ShaderFormatMetallib indicates precompiled metallib shaders for Metal.
	ShaderFormatMetallib
)

// BufferUsageFlags is a bitmask specifying how a buffer is intended to be
// used by the client. Matches SDL_GPUBufferUsageFlags.
type BufferUsageFlags uint32

const (
	// BufferUsageVertex allows binding as a vertex buffer.
	BufferUsageVertex BufferUsageFlags = 1 << iota
	// BufferUsageIndex allows binding as an index buffer.
	BufferUsageIndex
	// BufferUsageIndirect allows use as the source of indirect draw and
	// dispatch commands.
	BufferUsageIndirect
	// BufferUsageGraphicsStorageRead allows storage reads in graphics stages.
	BufferUsageGraphicsStorageRead
	// BufferUsageComputeStorageRead allows storage reads in compute shaders.
	BufferUsageComputeStorageRead
	// BufferUsageComputeStorageWrite allows storage writes in compute shaders.
	BufferUsageComputeStorageWrite
)

// TransferBufferUsage specifies the direction a transfer buffer moves data.
// Matches SDL_GPUTransferBufferUsage.
type TransferBufferUsage uint32

const (
	// TransferBufferUsageUpload moves data from the CPU to GPU resources.
	TransferBufferUsageUpload TransferBufferUsage = iota
	// TransferBufferUsageDownload moves data from GPU resources to the CPU.
	TransferBufferUsageDownload
)
