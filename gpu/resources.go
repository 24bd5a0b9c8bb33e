package gpu

import (
	"unsafe"

	"github.com/gustafla/sdl3/internal/ffi"
)

// A resource wraps an opaque handle owned by a device. Releasing a resource
// zeroes the handle; any descriptor still referencing it reports
// [ErrResourceReleased] when consumed.
//
// Releasing is not synchronized with command buffer execution. SDL defers
// the actual destruction until pending work referencing the resource has
// completed, so releasing after submit is safe.

type liveness interface {
	live() bool
}

// checkLive reports ErrResourceReleased when a referenced resource was
// released before the descriptor reached a native call. An unset reference
// is not an error here; SDL validates required fields itself.
func checkLive(r liveness) error {
	if !r.live() {
		return ErrResourceReleased
	}
	return nil
}

// Texture is a GPU texture.
type Texture struct {
	device *Device
	ptr    uintptr
}

func (t *Texture) live() bool { return t == nil || t.ptr != 0 }

// Release frees the texture. The texture must not be referenced by any
// command buffer acquired after this call.
func (t *Texture) Release() {
	if t.ptr != 0 {
		ffi.ReleaseGPUTexture(t.device.ptr, t.ptr)
		t.ptr = 0
	}
}

// Sampler is a GPU sampler.
type Sampler struct {
	device *Device
	ptr    uintptr
}

func (s *Sampler) live() bool { return s == nil || s.ptr != 0 }

// Release frees the sampler.
func (s *Sampler) Release() {
	if s.ptr != 0 {
		ffi.ReleaseGPUSampler(s.device.ptr, s.ptr)
		s.ptr = 0
	}
}

// Buffer is a GPU buffer.
type Buffer struct {
	device *Device
	ptr    uintptr
}

func (b *Buffer) live() bool { return b == nil || b.ptr != 0 }

// Release frees the buffer.
func (b *Buffer) Release() {
	if b.ptr != 0 {
		ffi.ReleaseGPUBuffer(b.device.ptr, b.ptr)
		b.ptr = 0
	}
}

// TransferBuffer is a CPU-visible staging buffer used to move data between
// the host and GPU resources.
type TransferBuffer struct {
	device *Device
	ptr    uintptr
	size   uint32
}

func (t *TransferBuffer) live() bool { return t == nil || t.ptr != 0 }

// Release frees the transfer buffer.
func (t *TransferBuffer) Release() {
	if t.ptr != 0 {
		ffi.ReleaseGPUTransferBuffer(t.device.ptr, t.ptr)
		t.ptr = 0
	}
}

// Map maps the transfer buffer into addressable memory and returns the
// mapped bytes. The slice stays valid until [TransferBuffer.Unmap]. When
// cycle is true the buffer is cycled if it is already bound.
func (t *TransferBuffer) Map(cycle bool) ([]byte, error) {
	if t.ptr == 0 {
		return nil, ErrResourceReleased
	}
	p := ffi.MapGPUTransferBuffer(t.device.ptr, t.ptr, cycle)
	if p == 0 {
		return nil, lastError("gpu: map transfer buffer")
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), t.size), nil
}

// Unmap unmaps a previously mapped transfer buffer.
func (t *TransferBuffer) Unmap() {
	if t.ptr != 0 {
		ffi.UnmapGPUTransferBuffer(t.device.ptr, t.ptr)
	}
}

// Shader is a compiled GPU shader. A shader may be released as soon as all
// pipelines using it have been created.
type Shader struct {
	device *Device
	ptr    uintptr
}

func (s *Shader) live() bool { return s == nil || s.ptr != 0 }

// Release frees the shader.
func (s *Shader) Release() {
	if s.ptr != 0 {
		ffi.ReleaseGPUShader(s.device.ptr, s.ptr)
		s.ptr = 0
	}
}

// GraphicsPipeline is a compiled GPU graphics pipeline.
type GraphicsPipeline struct {
	device *Device
	ptr    uintptr
}

func (p *GraphicsPipeline) live() bool { return p == nil || p.ptr != 0 }

// Release frees the graphics pipeline. The pipeline must not be referenced
// by any command buffer acquired after this call.
func (p *GraphicsPipeline) Release() {
	if p.ptr != 0 {
		ffi.ReleaseGPUGraphicsPipeline(p.device.ptr, p.ptr)
		p.ptr = 0
	}
}
