package gpu

import "github.com/gustafla/sdl3"

// DepthStencilTargetInfo specifies the parameters of a depth-stencil target
// used by a render pass.
//
// The load op determines what is done with the depth contents of the
// texture at the beginning of the render pass: [LoadOpLoad] keeps the
// values currently in the texture, [LoadOpClear] clears to the value set
// with [DepthStencilTargetInfo.WithClearDepth], and [LoadOpDontCare] lets
// the driver do whatever it wants with the memory. The store op determines
// what is done with the depth results: [StoreOpStore] keeps them,
// [StoreOpDontCare] may discard them, often the right choice for targets
// that are not reused. The stencil load/store ops work the same way for
// the stencil component.
//
// Note that depth-stencil targets do not support multisample resolves.
type DepthStencilTargetInfo struct {
	raw     depthStencilTargetInfo
	texture *Texture
}

// NewDepthStencilTargetInfo returns a zero-valued descriptor; every omitted
// setter leaves SDL's default in place.
func NewDepthStencilTargetInfo() DepthStencilTargetInfo {
	return DepthStencilTargetInfo{}
}

// WithTexture sets the texture used as the depth-stencil target by the
// render pass. The texture must stay alive until the pass begins.
func (info DepthStencilTargetInfo) WithTexture(texture *Texture) DepthStencilTargetInfo {
	info.raw.texture = texture.ptr
	info.texture = texture
	return info
}

// WithClearDepth sets the value the depth component is cleared to at the
// beginning of the render pass. Ignored unless the load op is [LoadOpClear].
func (info DepthStencilTargetInfo) WithClearDepth(clearDepth float32) DepthStencilTargetInfo {
	info.raw.clearDepth = clearDepth
	return info
}

// WithLoadOp sets what is done with the depth contents at the beginning of
// the render pass.
func (info DepthStencilTargetInfo) WithLoadOp(loadOp LoadOp) DepthStencilTargetInfo {
	info.raw.loadOp = loadOp
	return info
}

// WithStoreOp sets what is done with the depth results of the render pass.
func (info DepthStencilTargetInfo) WithStoreOp(storeOp StoreOp) DepthStencilTargetInfo {
	info.raw.storeOp = storeOp
	return info
}

// WithStencilLoadOp sets what is done with the stencil contents at the
// beginning of the render pass.
func (info DepthStencilTargetInfo) WithStencilLoadOp(stencilLoadOp LoadOp) DepthStencilTargetInfo {
	info.raw.stencilLoadOp = stencilLoadOp
	return info
}

// WithStencilStoreOp sets what is done with the stencil results of the
// render pass.
func (info DepthStencilTargetInfo) WithStencilStoreOp(stencilStoreOp StoreOp) DepthStencilTargetInfo {
	info.raw.stencilStoreOp = stencilStoreOp
	return info
}

// WithCycle, when true, cycles the texture if it is bound and any load op
// is not [LoadOpLoad].
func (info DepthStencilTargetInfo) WithCycle(cycle bool) DepthStencilTargetInfo {
	info.raw.cycle = cycle
	return info
}

// WithClearStencil sets the value the stencil component is cleared to at
// the beginning of the render pass. Ignored unless the stencil load op is
// [LoadOpClear].
func (info DepthStencilTargetInfo) WithClearStencil(clearStencil uint8) DepthStencilTargetInfo {
	info.raw.clearStencil = clearStencil
	return info
}

func (info *DepthStencilTargetInfo) validate() error {
	return checkLive(info.texture)
}

// ColorTargetInfo specifies the parameters of a color target used by a
// render pass.
//
// The load op determines what is done with the texture at the beginning of
// the render pass; [LoadOpLoad] is not recommended for multisample textures
// as it requires significant memory bandwidth. The store op determines what
// is done with the results: [StoreOpResolve] resolves a multisample texture
// into the resolve texture (which must have a sample count of 1) and lets
// the driver discard the multisample memory, which is the most performant
// way to resolve a multisample target. [StoreOpResolveAndStore] additionally
// keeps the multisample contents.
type ColorTargetInfo struct {
	raw            colorTargetInfo
	texture        *Texture
	resolveTexture *Texture
}

// NewColorTargetInfo returns a zero-valued descriptor; every omitted setter
// leaves SDL's default in place.
func NewColorTargetInfo() ColorTargetInfo {
	return ColorTargetInfo{}
}

// WithTexture sets the texture used as a color target by the render pass.
// The texture must stay alive until the pass begins.
func (info ColorTargetInfo) WithTexture(texture *Texture) ColorTargetInfo {
	info.raw.texture = texture.ptr
	info.texture = texture
	return info
}

// WithMipLevel sets the mip level to use as a color target.
func (info ColorTargetInfo) WithMipLevel(mipLevel uint32) ColorTargetInfo {
	info.raw.mipLevel = mipLevel
	return info
}

// WithLayerOrDepthPlane sets the layer index or depth plane to use as a
// color target. Treated as a layer index on 2D array and cube textures,
// and as a depth plane on 3D textures.
func (info ColorTargetInfo) WithLayerOrDepthPlane(layerOrDepthPlane uint32) ColorTargetInfo {
	info.raw.layerOrDepthPlane = layerOrDepthPlane
	return info
}

// WithClearColor sets the color the target is cleared to at the start of
// the render pass. Ignored unless the load op is [LoadOpClear].
//
// The 8-bit channels are converted here to the floating representation the
// native record stores: channel/255, exact for 0 and 255.
func (info ColorTargetInfo) WithClearColor(clearColor sdl3.Color) ColorTargetInfo {
	info.raw.clearColor = FColor{
		R: float32(clearColor.R) / 255,
		G: float32(clearColor.G) / 255,
		B: float32(clearColor.B) / 255,
		A: float32(clearColor.A) / 255,
	}
	return info
}

// WithLoadOp sets what is done with the contents of the color target at
// the beginning of the render pass.
func (info ColorTargetInfo) WithLoadOp(loadOp LoadOp) ColorTargetInfo {
	info.raw.loadOp = loadOp
	return info
}

// WithStoreOp sets what is done with the results of the render pass.
func (info ColorTargetInfo) WithStoreOp(storeOp StoreOp) ColorTargetInfo {
	info.raw.storeOp = storeOp
	return info
}

// WithResolveTexture sets the texture that receives the results of a
// multisample resolve. Ignored unless the store op is [StoreOpResolve] or
// [StoreOpResolveAndStore].
func (info ColorTargetInfo) WithResolveTexture(resolveTexture *Texture) ColorTargetInfo {
	info.raw.resolveTexture = resolveTexture.ptr
	info.resolveTexture = resolveTexture
	return info
}

// WithResolveMipLevel sets the mip level of the resolve texture used for
// the resolve operation.
func (info ColorTargetInfo) WithResolveMipLevel(resolveMipLevel uint32) ColorTargetInfo {
	info.raw.resolveMipLevel = resolveMipLevel
	return info
}

// WithResolveLayer sets the layer index of the resolve texture used for
// the resolve operation.
func (info ColorTargetInfo) WithResolveLayer(resolveLayer uint32) ColorTargetInfo {
	info.raw.resolveLayer = resolveLayer
	return info
}

// WithCycle, when true, cycles the texture if it is bound and the load op
// is not [LoadOpLoad].
func (info ColorTargetInfo) WithCycle(cycle bool) ColorTargetInfo {
	info.raw.cycle = cycle
	return info
}

// WithCycleResolveTexture, when true, cycles the resolve texture if it is
// bound. Ignored unless the store op is [StoreOpResolve] or
// [StoreOpResolveAndStore].
func (info ColorTargetInfo) WithCycleResolveTexture(cycleResolveTexture bool) ColorTargetInfo {
	info.raw.cycleResolveTexture = cycleResolveTexture
	return info
}

func (info *ColorTargetInfo) validate() error {
	if err := checkLive(info.texture); err != nil {
		return err
	}
	return checkLive(info.resolveTexture)
}
