package gpu

import (
	"runtime"
	"unsafe"

	"github.com/gustafla/sdl3"
	"github.com/gustafla/sdl3/internal/ffi"
)

// Device is a GPU context. All resources and command buffers are created
// from a device and must not outlive it.
type Device struct {
	ptr uintptr
}

// CreateDevice creates a GPU device supporting the given shader formats.
// When debugMode is true the backend validates API usage and attaches debug
// names where supported. name optionally selects a specific backend driver,
// for example "vulkan" or "metal"; leave it empty to let SDL choose.
func CreateDevice(formatFlags ShaderFormat, debugMode bool, name string) (*Device, error) {
	if err := loaded(); err != nil {
		return nil, err
	}
	var cname *byte
	if name != "" {
		var err error
		cname, err = ffi.CString(name)
		if err != nil {
			return nil, err
		}
	}
	ptr := ffi.CreateGPUDevice(uint32(formatFlags), debugMode, cname)
	runtime.KeepAlive(cname)
	if ptr == 0 {
		return nil, lastError("gpu: create device")
	}
	dev := &Device{ptr: ptr}
	sdl3.Logger().Info("gpu device created", "driver", dev.Driver())
	return dev, nil
}

// Destroy destroys the device, waiting for any pending GPU work to finish.
// All resources created from the device must be released before this call.
func (d *Device) Destroy() {
	if d.ptr != 0 {
		sdl3.Logger().Info("gpu device destroyed", "driver", d.Driver())
		ffi.DestroyGPUDevice(d.ptr)
		d.ptr = 0
	}
}

// Driver returns the name of the backend driver the device runs on.
func (d *Device) Driver() string {
	if d.ptr == 0 {
		return ""
	}
	return ffi.GetGPUDeviceDriver(d.ptr)
}

// WaitForIdle blocks until all submitted GPU work has finished executing.
func (d *Device) WaitForIdle() error {
	if d.ptr == 0 {
		return ErrDeviceDestroyed
	}
	if !ffi.WaitForGPUIdle(d.ptr) {
		return lastError("gpu: wait for idle")
	}
	return nil
}

// NumDrivers returns the number of GPU drivers compiled into SDL.
func NumDrivers() (int, error) {
	if err := loaded(); err != nil {
		return 0, err
	}
	return int(ffi.GetNumGPUDrivers()), nil
}

// DriverName returns the name of the GPU driver at the given index.
func DriverName(index int) (string, error) {
	if err := loaded(); err != nil {
		return "", err
	}
	name := ffi.GetGPUDriver(int32(index))
	if name == "" {
		return "", lastError("gpu: get driver")
	}
	return name, nil
}

// CreateTexture creates a texture from the given descriptor.
func (d *Device) CreateTexture(info TextureCreateInfo) (*Texture, error) {
	if d.ptr == 0 {
		return nil, ErrDeviceDestroyed
	}
	ptr := ffi.CreateGPUTexture(d.ptr, uintptr(unsafe.Pointer(&info.raw)))
	if ptr == 0 {
		return nil, lastError("gpu: create texture")
	}
	return &Texture{device: d, ptr: ptr}, nil
}

// CreateSampler creates a sampler from the given descriptor.
func (d *Device) CreateSampler(info SamplerCreateInfo) (*Sampler, error) {
	if d.ptr == 0 {
		return nil, ErrDeviceDestroyed
	}
	ptr := ffi.CreateGPUSampler(d.ptr, uintptr(unsafe.Pointer(&info.raw)))
	if ptr == 0 {
		return nil, lastError("gpu: create sampler")
	}
	return &Sampler{device: d, ptr: ptr}, nil
}

// CreateBuffer creates a buffer from the given descriptor. The buffer
// contents are undefined until data is written to it.
func (d *Device) CreateBuffer(info BufferCreateInfo) (*Buffer, error) {
	if d.ptr == 0 {
		return nil, ErrDeviceDestroyed
	}
	ptr := ffi.CreateGPUBuffer(d.ptr, uintptr(unsafe.Pointer(&info.raw)))
	if ptr == 0 {
		return nil, lastError("gpu: create buffer")
	}
	return &Buffer{device: d, ptr: ptr}, nil
}

// CreateTransferBuffer creates a transfer buffer from the given descriptor.
func (d *Device) CreateTransferBuffer(info TransferBufferCreateInfo) (*TransferBuffer, error) {
	if d.ptr == 0 {
		return nil, ErrDeviceDestroyed
	}
	ptr := ffi.CreateGPUTransferBuffer(d.ptr, uintptr(unsafe.Pointer(&info.raw)))
	if ptr == 0 {
		return nil, lastError("gpu: create transfer buffer")
	}
	return &TransferBuffer{device: d, ptr: ptr, size: info.raw.size}, nil
}

// CreateShader creates a shader from the given descriptor.
func (d *Device) CreateShader(info ShaderCreateInfo) (*Shader, error) {
	if d.ptr == 0 {
		return nil, ErrDeviceDestroyed
	}
	entrypoint, err := ffi.CString(info.entrypoint)
	if err != nil {
		return nil, err
	}
	info.raw.codeSize = uintptr(len(info.code))
	info.raw.code = uintptr(unsafe.Pointer(unsafe.SliceData(info.code)))
	info.raw.entrypoint = uintptr(unsafe.Pointer(entrypoint))
	ptr := ffi.CreateGPUShader(d.ptr, uintptr(unsafe.Pointer(&info.raw)))
	runtime.KeepAlive(info.code)
	runtime.KeepAlive(entrypoint)
	if ptr == 0 {
		return nil, lastError("gpu: create shader")
	}
	return &Shader{device: d, ptr: ptr}, nil
}

// CreateGraphicsPipeline creates a graphics pipeline from the given
// descriptor. Returns [ErrResourceReleased] if a shader referenced by the
// descriptor was released before this call.
func (d *Device) CreateGraphicsPipeline(info GraphicsPipelineCreateInfo) (*GraphicsPipeline, error) {
	if d.ptr == 0 {
		return nil, ErrDeviceDestroyed
	}
	if err := info.validate(); err != nil {
		return nil, err
	}

	// The wrapper slices are layout-compatible with their records, so
	// their backing arrays are handed to SDL directly.
	descs := info.vertexInput.vertexBufferDescriptions
	attrs := info.vertexInput.vertexAttributes
	targets := info.targetInfo.colorTargetDescriptions
	info.raw.vertexInputState = vertexInputState{
		vertexBufferDescriptions: uintptr(unsafe.Pointer(unsafe.SliceData(descs))),
		numVertexBuffers:         uint32(len(descs)),
		vertexAttributes:         uintptr(unsafe.Pointer(unsafe.SliceData(attrs))),
		numVertexAttributes:      uint32(len(attrs)),
	}
	info.raw.targetInfo = info.targetInfo.raw
	info.raw.targetInfo.colorTargetDescriptions = uintptr(unsafe.Pointer(unsafe.SliceData(targets)))
	info.raw.targetInfo.numColorTargets = uint32(len(targets))

	ptr := ffi.CreateGPUGraphicsPipeline(d.ptr, uintptr(unsafe.Pointer(&info.raw)))
	runtime.KeepAlive(descs)
	runtime.KeepAlive(attrs)
	runtime.KeepAlive(targets)
	if ptr == 0 {
		return nil, lastError("gpu: create graphics pipeline")
	}
	return &GraphicsPipeline{device: d, ptr: ptr}, nil
}
