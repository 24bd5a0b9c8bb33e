package ffi

import "github.com/ebitengine/purego"

// GPU entry points (SDL_gpu.h).
//
// Descriptor arguments are passed as uintptr pointers to the fixed-layout
// records defined in the gpu package; resource arguments are the opaque
// handles SDL returned at creation time.
var (
	// Device.
	CreateGPUDevice    func(formatFlags uint32, debugMode bool, name *byte) uintptr
	DestroyGPUDevice   func(device uintptr)
	GetGPUDeviceDriver func(device uintptr) string
	GetNumGPUDrivers   func() int32
	GetGPUDriver       func(index int32) string

	// Resources.
	CreateGPUTexture          func(device, createInfo uintptr) uintptr
	ReleaseGPUTexture         func(device, texture uintptr)
	CreateGPUSampler          func(device, createInfo uintptr) uintptr
	ReleaseGPUSampler         func(device, sampler uintptr)
	CreateGPUBuffer           func(device, createInfo uintptr) uintptr
	ReleaseGPUBuffer          func(device, buffer uintptr)
	CreateGPUTransferBuffer   func(device, createInfo uintptr) uintptr
	ReleaseGPUTransferBuffer  func(device, transferBuffer uintptr)
	MapGPUTransferBuffer      func(device, transferBuffer uintptr, cycle bool) uintptr
	UnmapGPUTransferBuffer    func(device, transferBuffer uintptr)
	CreateGPUShader           func(device, createInfo uintptr) uintptr
	ReleaseGPUShader          func(device, shader uintptr)
	CreateGPUGraphicsPipeline func(device, createInfo uintptr) uintptr
	ReleaseGPUGraphicsPipeline func(device, pipeline uintptr)

	// Command buffers.
	AcquireGPUCommandBuffer func(device uintptr) uintptr
	SubmitGPUCommandBuffer  func(commandBuffer uintptr) bool
	CancelGPUCommandBuffer  func(commandBuffer uintptr) bool
	WaitForGPUIdle          func(device uintptr) bool

	// Render passes.
	BeginGPURenderPass       func(commandBuffer, colorTargets uintptr, numColorTargets uint32, depthStencilTarget uintptr) uintptr
	EndGPURenderPass         func(renderPass uintptr)
	BindGPUGraphicsPipeline  func(renderPass, pipeline uintptr)
	BindGPUVertexBuffers     func(renderPass uintptr, firstSlot uint32, bindings uintptr, numBindings uint32)
	BindGPUIndexBuffer       func(renderPass, binding uintptr, indexElementSize uint32)
	BindGPUVertexSamplers    func(renderPass uintptr, firstSlot uint32, bindings uintptr, numBindings uint32)
	BindGPUFragmentSamplers  func(renderPass uintptr, firstSlot uint32, bindings uintptr, numBindings uint32)
	DrawGPUPrimitives        func(renderPass uintptr, numVertices, numInstances, firstVertex, firstInstance uint32)
	DrawGPUIndexedPrimitives func(renderPass uintptr, numIndices, numInstances, firstIndex uint32, vertexOffset int32, firstInstance uint32)

	// Copy passes.
	BeginGPUCopyPass         func(commandBuffer uintptr) uintptr
	EndGPUCopyPass           func(copyPass uintptr)
	UploadToGPUTexture       func(copyPass, source, destination uintptr, cycle bool)
	UploadToGPUBuffer        func(copyPass, source, destination uintptr, cycle bool)
	DownloadFromGPUTexture   func(copyPass, source, destination uintptr)
	DownloadFromGPUBuffer    func(copyPass, source, destination uintptr)
	CopyGPUTextureToTexture  func(copyPass, source, destination uintptr, w, h, d uint32, cycle bool)
	CopyGPUBufferToBuffer    func(copyPass, source, destination uintptr, size uint32, cycle bool)

	// Compute passes.
	BeginGPUComputePass        func(commandBuffer, storageTextureBindings uintptr, numStorageTextureBindings uint32, storageBufferBindings uintptr, numStorageBufferBindings uint32) uintptr
	EndGPUComputePass          func(computePass uintptr)
	DispatchGPUCompute         func(computePass uintptr, groupCountX, groupCountY, groupCountZ uint32)
	DispatchGPUComputeIndirect func(computePass, buffer uintptr, offset uint32)
)

func registerGPU(lib uintptr) {
	purego.RegisterLibFunc(&CreateGPUDevice, lib, "SDL_CreateGPUDevice")
	purego.RegisterLibFunc(&DestroyGPUDevice, lib, "SDL_DestroyGPUDevice")
	purego.RegisterLibFunc(&GetGPUDeviceDriver, lib, "SDL_GetGPUDeviceDriver")
	purego.RegisterLibFunc(&GetNumGPUDrivers, lib, "SDL_GetNumGPUDrivers")
	purego.RegisterLibFunc(&GetGPUDriver, lib, "SDL_GetGPUDriver")

	purego.RegisterLibFunc(&CreateGPUTexture, lib, "SDL_CreateGPUTexture")
	purego.RegisterLibFunc(&ReleaseGPUTexture, lib, "SDL_ReleaseGPUTexture")
	purego.RegisterLibFunc(&CreateGPUSampler, lib, "SDL_CreateGPUSampler")
	purego.RegisterLibFunc(&ReleaseGPUSampler, lib, "SDL_ReleaseGPUSampler")
	purego.RegisterLibFunc(&CreateGPUBuffer, lib, "SDL_CreateGPUBuffer")
	purego.RegisterLibFunc(&ReleaseGPUBuffer, lib, "SDL_ReleaseGPUBuffer")
	purego.RegisterLibFunc(&CreateGPUTransferBuffer, lib, "SDL_CreateGPUTransferBuffer")
	purego.RegisterLibFunc(&ReleaseGPUTransferBuffer, lib, "SDL_ReleaseGPUTransferBuffer")
	purego.RegisterLibFunc(&MapGPUTransferBuffer, lib, "SDL_MapGPUTransferBuffer")
	purego.RegisterLibFunc(&UnmapGPUTransferBuffer, lib, "SDL_UnmapGPUTransferBuffer")
	purego.RegisterLibFunc(&CreateGPUShader, lib, "SDL_CreateGPUShader")
	purego.RegisterLibFunc(&ReleaseGPUShader, lib, "SDL_ReleaseGPUShader")
	purego.RegisterLibFunc(&CreateGPUGraphicsPipeline, lib, "SDL_CreateGPUGraphicsPipeline")
	purego.RegisterLibFunc(&ReleaseGPUGraphicsPipeline, lib, "SDL_ReleaseGPUGraphicsPipeline")

	purego.RegisterLibFunc(&AcquireGPUCommandBuffer, lib, "SDL_AcquireGPUCommandBuffer")
	purego.RegisterLibFunc(&SubmitGPUCommandBuffer, lib, "SDL_SubmitGPUCommandBuffer")
	purego.RegisterLibFunc(&CancelGPUCommandBuffer, lib, "SDL_CancelGPUCommandBuffer")
	purego.RegisterLibFunc(&WaitForGPUIdle, lib, "SDL_WaitForGPUIdle")

	purego.RegisterLibFunc(&BeginGPURenderPass, lib, "SDL_BeginGPURenderPass")
	purego.RegisterLibFunc(&EndGPURenderPass, lib, "SDL_EndGPURenderPass")
	purego.RegisterLibFunc(&BindGPUGraphicsPipeline, lib, "SDL_BindGPUGraphicsPipeline")
	purego.RegisterLibFunc(&BindGPUVertexBuffers, lib, "SDL_BindGPUVertexBuffers")
	purego.RegisterLibFunc(&BindGPUIndexBuffer, lib, "SDL_BindGPUIndexBuffer")
	purego.RegisterLibFunc(&BindGPUVertexSamplers, lib, "SDL_BindGPUVertexSamplers")
	purego.RegisterLibFunc(&BindGPUFragmentSamplers, lib, "SDL_BindGPUFragmentSamplers")
	purego.RegisterLibFunc(&DrawGPUPrimitives, lib, "SDL_DrawGPUPrimitives")
	purego.RegisterLibFunc(&DrawGPUIndexedPrimitives, lib, "SDL_DrawGPUIndexedPrimitives")

	purego.RegisterLibFunc(&BeginGPUCopyPass, lib, "SDL_BeginGPUCopyPass")
	purego.RegisterLibFunc(&EndGPUCopyPass, lib, "SDL_EndGPUCopyPass")
	purego.RegisterLibFunc(&UploadToGPUTexture, lib, "SDL_UploadToGPUTexture")
	purego.RegisterLibFunc(&UploadToGPUBuffer, lib, "SDL_UploadToGPUBuffer")
	purego.RegisterLibFunc(&DownloadFromGPUTexture, lib, "SDL_DownloadFromGPUTexture")
	purego.RegisterLibFunc(&DownloadFromGPUBuffer, lib, "SDL_DownloadFromGPUBuffer")
	purego.RegisterLibFunc(&CopyGPUTextureToTexture, lib, "SDL_CopyGPUTextureToTexture")
	purego.RegisterLibFunc(&CopyGPUBufferToBuffer, lib, "SDL_CopyGPUBufferToBuffer")

	purego.RegisterLibFunc(&BeginGPUComputePass, lib, "SDL_BeginGPUComputePass")
	purego.RegisterLibFunc(&EndGPUComputePass, lib, "SDL_EndGPUComputePass")
	purego.RegisterLibFunc(&DispatchGPUCompute, lib, "SDL_DispatchGPUCompute")
	purego.RegisterLibFunc(&DispatchGPUComputeIndirect, lib, "SDL_DispatchGPUComputeIndirect")
}
