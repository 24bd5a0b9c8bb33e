package gpu

import (
	"runtime"
	"unsafe"

	"github.com/gustafla/sdl3/internal/ffi"
)

// CommandBuffer records GPU work to be submitted to the device.
//
// A command buffer must be acquired, recorded, and submitted on the same
// goroutine. Commands only begin executing on the GPU once the command
// buffer is submitted.
type CommandBuffer struct {
	ptr uintptr
}

// AcquireCommandBuffer acquires a command buffer from the device.
func (d *Device) AcquireCommandBuffer() (*CommandBuffer, error) {
	if d.ptr == 0 {
		return nil, ErrDeviceDestroyed
	}
	ptr := ffi.AcquireGPUCommandBuffer(d.ptr)
	if ptr == 0 {
		return nil, lastError("gpu: acquire command buffer")
	}
	return &CommandBuffer{ptr: ptr}, nil
}

// Submit submits the command buffer for execution. The command buffer must
// not be used after this call.
func (cb *CommandBuffer) Submit() error {
	ptr := cb.ptr
	cb.ptr = 0
	if !ffi.SubmitGPUCommandBuffer(ptr) {
		return lastError("gpu: submit command buffer")
	}
	return nil
}

// Cancel discards the command buffer without executing it. No pass may be
// in progress and nothing acquired from the command buffer, such as a
// swapchain texture, may remain referenced.
func (cb *CommandBuffer) Cancel() error {
	ptr := cb.ptr
	cb.ptr = 0
	if !ffi.CancelGPUCommandBuffer(ptr) {
		return lastError("gpu: cancel command buffer")
	}
	return nil
}

// RenderPass records draw commands targeting a fixed set of color and
// depth-stencil targets. All bound state is scoped to the pass.
type RenderPass struct {
	ptr uintptr
}

// BeginRenderPass begins a render pass over the given targets. At least
// one color target or a depth-stencil target must be provided;
// depthStencilTarget may be nil. Returns [ErrResourceReleased] if any
// referenced texture was released.
func (cb *CommandBuffer) BeginRenderPass(colorTargets []ColorTargetInfo, depthStencilTarget *DepthStencilTargetInfo) (*RenderPass, error) {
	raws := make([]colorTargetInfo, len(colorTargets))
	for i := range colorTargets {
		if err := colorTargets[i].validate(); err != nil {
			return nil, err
		}
		raws[i] = colorTargets[i].raw
	}
	var depth uintptr
	if depthStencilTarget != nil {
		if err := depthStencilTarget.validate(); err != nil {
			return nil, err
		}
		depth = uintptr(unsafe.Pointer(&depthStencilTarget.raw))
	}
	ptr := ffi.BeginGPURenderPass(cb.ptr, uintptr(unsafe.Pointer(unsafe.SliceData(raws))), uint32(len(raws)), depth)
	runtime.KeepAlive(raws)
	runtime.KeepAlive(depthStencilTarget)
	if ptr == 0 {
		return nil, lastError("gpu: begin render pass")
	}
	return &RenderPass{ptr: ptr}, nil
}

// End ends the render pass. The pass must not be used after this call.
func (rp *RenderPass) End() {
	ffi.EndGPURenderPass(rp.ptr)
	rp.ptr = 0
}

// BindGraphicsPipeline binds a graphics pipeline for use in draw calls.
func (rp *RenderPass) BindGraphicsPipeline(pipeline *GraphicsPipeline) error {
	if pipeline == nil {
		return ErrNilResource
	}
	if err := checkLive(pipeline); err != nil {
		return err
	}
	ffi.BindGPUGraphicsPipeline(rp.ptr, pipeline.ptr)
	return nil
}

// BindVertexBuffers binds vertex buffers for use in draw calls, starting at
// the given binding slot.
func (rp *RenderPass) BindVertexBuffers(firstSlot uint32, bindings []BufferBinding) error {
	raws := make([]bufferBinding, len(bindings))
	for i := range bindings {
		if err := bindings[i].validate(); err != nil {
			return err
		}
		raws[i] = bindings[i].raw
	}
	ffi.BindGPUVertexBuffers(rp.ptr, firstSlot, uintptr(unsafe.Pointer(unsafe.SliceData(raws))), uint32(len(raws)))
	runtime.KeepAlive(raws)
	return nil
}

// BindIndexBuffer binds an index buffer for use in indexed draw calls.
func (rp *RenderPass) BindIndexBuffer(binding BufferBinding, indexElementSize IndexElementSize) error {
	if err := binding.validate(); err != nil {
		return err
	}
	ffi.BindGPUIndexBuffer(rp.ptr, uintptr(unsafe.Pointer(&binding.raw)), uint32(indexElementSize))
	runtime.KeepAlive(&binding)
	return nil
}

// BindVertexSamplers binds texture-sampler pairs for use in the vertex
// shader, starting at the given binding slot.
func (rp *RenderPass) BindVertexSamplers(firstSlot uint32, bindings []TextureSamplerBinding) error {
	raws, err := lowerSamplerBindings(bindings)
	if err != nil {
		return err
	}
	ffi.BindGPUVertexSamplers(rp.ptr, firstSlot, uintptr(unsafe.Pointer(unsafe.SliceData(raws))), uint32(len(raws)))
	runtime.KeepAlive(raws)
	return nil
}

// BindFragmentSamplers binds texture-sampler pairs for use in the fragment
// shader, starting at the given binding slot.
func (rp *RenderPass) BindFragmentSamplers(firstSlot uint32, bindings []TextureSamplerBinding) error {
	raws, err := lowerSamplerBindings(bindings)
	if err != nil {
		return err
	}
	ffi.BindGPUFragmentSamplers(rp.ptr, firstSlot, uintptr(unsafe.Pointer(unsafe.SliceData(raws))), uint32(len(raws)))
	runtime.KeepAlive(raws)
	return nil
}

func lowerSamplerBindings(bindings []TextureSamplerBinding) ([]textureSamplerBinding, error) {
	raws := make([]textureSamplerBinding, len(bindings))
	for i := range bindings {
		if err := bindings[i].validate(); err != nil {
			return nil, err
		}
		raws[i] = bindings[i].raw
	}
	return raws, nil
}

// DrawPrimitives draws using the bound graphics state.
func (rp *RenderPass) DrawPrimitives(numVertices, numInstances, firstVertex, firstInstance uint32) {
	ffi.DrawGPUPrimitives(rp.ptr, numVertices, numInstances, firstVertex, firstInstance)
}

// DrawIndexedPrimitives draws using the bound graphics state with an index
// buffer and instancing enabled. vertexOffset is added to each index value
// before indexing into the vertex buffers.
func (rp *RenderPass) DrawIndexedPrimitives(numIndices, numInstances, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	ffi.DrawGPUIndexedPrimitives(rp.ptr, numIndices, numInstances, firstIndex, vertexOffset, firstInstance)
}

// CopyPass records transfer commands moving data between transfer buffers
// and GPU resources, and between GPU resources.
type CopyPass struct {
	ptr uintptr
}

// BeginCopyPass begins a copy pass on the command buffer.
func (cb *CommandBuffer) BeginCopyPass() (*CopyPass, error) {
	ptr := ffi.BeginGPUCopyPass(cb.ptr)
	if ptr == 0 {
		return nil, lastError("gpu: begin copy pass")
	}
	return &CopyPass{ptr: ptr}, nil
}

// End ends the copy pass. The pass must not be used after this call.
func (cp *CopyPass) End() {
	ffi.EndGPUCopyPass(cp.ptr)
	cp.ptr = 0
}

// UploadToTexture uploads data from a transfer buffer to a texture region.
// The upload occurs on the GPU timeline. The data in the transfer buffer
// may be safely changed after this call returns.
func (cp *CopyPass) UploadToTexture(source TextureTransferInfo, destination TextureRegion, cycle bool) error {
	if err := source.validate(); err != nil {
		return err
	}
	if err := destination.validate(); err != nil {
		return err
	}
	ffi.UploadToGPUTexture(cp.ptr, uintptr(unsafe.Pointer(&source.raw)), uintptr(unsafe.Pointer(&destination.raw)), cycle)
	runtime.KeepAlive(&source)
	runtime.KeepAlive(&destination)
	return nil
}

// UploadToBuffer uploads data from a transfer buffer to a buffer region.
func (cp *CopyPass) UploadToBuffer(source TransferBufferLocation, destination BufferRegion, cycle bool) error {
	if err := source.validate(); err != nil {
		return err
	}
	if err := destination.validate(); err != nil {
		return err
	}
	ffi.UploadToGPUBuffer(cp.ptr, uintptr(unsafe.Pointer(&source.raw)), uintptr(unsafe.Pointer(&destination.raw)), cycle)
	runtime.KeepAlive(&source)
	runtime.KeepAlive(&destination)
	return nil
}

// DownloadFromTexture downloads data from a texture region into a transfer
// buffer. The data is not guaranteed to be copied until the command buffer
// fence is signaled.
func (cp *CopyPass) DownloadFromTexture(source TextureRegion, destination TextureTransferInfo) error {
	if err := source.validate(); err != nil {
		return err
	}
	if err := destination.validate(); err != nil {
		return err
	}
	ffi.DownloadFromGPUTexture(cp.ptr, uintptr(unsafe.Pointer(&source.raw)), uintptr(unsafe.Pointer(&destination.raw)))
	runtime.KeepAlive(&source)
	runtime.KeepAlive(&destination)
	return nil
}

// DownloadFromBuffer downloads data from a buffer region into a transfer
// buffer.
func (cp *CopyPass) DownloadFromBuffer(source BufferRegion, destination TransferBufferLocation) error {
	if err := source.validate(); err != nil {
		return err
	}
	if err := destination.validate(); err != nil {
		return err
	}
	ffi.DownloadFromGPUBuffer(cp.ptr, uintptr(unsafe.Pointer(&source.raw)), uintptr(unsafe.Pointer(&destination.raw)))
	runtime.KeepAlive(&source)
	runtime.KeepAlive(&destination)
	return nil
}

// CopyTextureToTexture copies w by h by d texels from one texture location
// to another. The textures must have the same format.
func (cp *CopyPass) CopyTextureToTexture(source, destination TextureLocation, w, h, d uint32, cycle bool) error {
	if err := source.validate(); err != nil {
		return err
	}
	if err := destination.validate(); err != nil {
		return err
	}
	ffi.CopyGPUTextureToTexture(cp.ptr, uintptr(unsafe.Pointer(&source.raw)), uintptr(unsafe.Pointer(&destination.raw)), w, h, d, cycle)
	runtime.KeepAlive(&source)
	runtime.KeepAlive(&destination)
	return nil
}

// CopyBufferToBuffer copies size bytes from one buffer location to another.
func (cp *CopyPass) CopyBufferToBuffer(source, destination BufferLocation, size uint32, cycle bool) error {
	if err := source.validate(); err != nil {
		return err
	}
	if err := destination.validate(); err != nil {
		return err
	}
	ffi.CopyGPUBufferToBuffer(cp.ptr, uintptr(unsafe.Pointer(&source.raw)), uintptr(unsafe.Pointer(&destination.raw)), size, cycle)
	runtime.KeepAlive(&source)
	runtime.KeepAlive(&destination)
	return nil
}

// ComputePass records compute dispatches. The storage textures and buffers
// bound at the start of the pass are the only read-write resources
// available to the dispatched shaders.
type ComputePass struct {
	ptr uintptr
}

// BeginComputePass begins a compute pass with the given read-write storage
// bindings. Resources bound here may not be accessed by other passes until
// this pass ends.
func (cb *CommandBuffer) BeginComputePass(storageTextureBindings []StorageTextureReadWriteBinding, storageBufferBindings []StorageBufferReadWriteBinding) (*ComputePass, error) {
	texRaws := make([]storageTextureReadWriteBinding, len(storageTextureBindings))
	for i := range storageTextureBindings {
		if err := storageTextureBindings[i].validate(); err != nil {
			return nil, err
		}
		texRaws[i] = storageTextureBindings[i].raw
	}
	bufRaws := make([]storageBufferReadWriteBinding, len(storageBufferBindings))
	for i := range storageBufferBindings {
		if err := storageBufferBindings[i].validate(); err != nil {
			return nil, err
		}
		bufRaws[i] = storageBufferBindings[i].raw
	}
	ptr := ffi.BeginGPUComputePass(cb.ptr,
		uintptr(unsafe.Pointer(unsafe.SliceData(texRaws))), uint32(len(texRaws)),
		uintptr(unsafe.Pointer(unsafe.SliceData(bufRaws))), uint32(len(bufRaws)))
	runtime.KeepAlive(texRaws)
	runtime.KeepAlive(bufRaws)
	if ptr == 0 {
		return nil, lastError("gpu: begin compute pass")
	}
	return &ComputePass{ptr: ptr}, nil
}

// End ends the compute pass. The pass must not be used after this call.
func (cp *ComputePass) End() {
	ffi.EndGPUComputePass(cp.ptr)
	cp.ptr = 0
}

// Dispatch dispatches compute work over the given number of thread groups.
func (cp *ComputePass) Dispatch(groupCountX, groupCountY, groupCountZ uint32) {
	ffi.DispatchGPUCompute(cp.ptr, groupCountX, groupCountY, groupCountZ)
}

// DispatchIndirect dispatches compute work with parameters read from an
// [IndirectDispatchCommand] at the given byte offset of the buffer. The
// buffer must have been created with [BufferUsageIndirect].
func (cp *ComputePass) DispatchIndirect(buffer *Buffer, offset uint32) error {
	if buffer == nil {
		return ErrNilResource
	}
	if err := checkLive(buffer); err != nil {
		return err
	}
	ffi.DispatchGPUComputeIndirect(cp.ptr, buffer.ptr, offset)
	return nil
}
