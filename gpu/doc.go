// Package gpu binds the SDL3 GPU API: device and resource management plus
// the descriptor types handed to SDL when recording GPU work.
//
// # Descriptors
//
// Most types in this package are descriptors: pending configuration records
// for one native call ("create a texture", "describe a render-pass color
// target"). A descriptor is constructed empty, populated through chained
// With* setters, and consumed exactly once by the call it was built for:
//
//	info := gpu.NewTextureCreateInfo().
//	    WithType(gpu.TextureType2D).
//	    WithFormat(gpu.TextureFormatR8G8B8A8Unorm).
//	    WithUsage(gpu.TextureUsageColorTarget).
//	    WithWidth(256).
//	    WithHeight(256).
//	    WithLayerCountOrDepth(1).
//	    WithNumLevels(1)
//	tex, err := device.CreateTexture(info)
//
// Every descriptor wraps a record whose field order, widths, and enum
// values mirror the corresponding SDL_GPU* C structure exactly; the record
// is passed to SDL verbatim. A default-constructed descriptor is
// zero-equivalent, so omitted setters mean "use SDL's default".
//
// Setters perform no validation: invalid field combinations surface when
// SDL consumes the descriptor. The single exception required for memory
// safety is resource liveness: a descriptor referencing a released
// [Texture], [Buffer], or similar is rejected with [ErrResourceReleased]
// by the consuming call, before anything reaches the native library.
//
// # Resources
//
// [Texture], [Sampler], [Buffer], [TransferBuffer], [Shader], and
// [GraphicsPipeline] are opaque handles owned by the [Device] that created
// them. Descriptors referencing a resource do not extend its life; the
// resource must stay unreleased until the call consuming the descriptor
// returns.
package gpu
