package gpu

// TextureRegion specifies a region of a texture touched by a copy pass
// upload or download.
type TextureRegion struct {
	raw     textureRegion
	texture *Texture
}

// NewTextureRegion returns a zero-valued descriptor.
func NewTextureRegion() TextureRegion {
	return TextureRegion{}
}

// WithTexture sets the texture the region addresses.
func (r TextureRegion) WithTexture(texture *Texture) TextureRegion {
	r.raw.texture = texture.ptr
	r.texture = texture
	return r
}

// WithMipLevel sets the mip level index of the region.
func (r TextureRegion) WithMipLevel(mipLevel uint32) TextureRegion {
	r.raw.mipLevel = mipLevel
	return r
}

// WithLayer sets the layer index of the region.
func (r TextureRegion) WithLayer(layer uint32) TextureRegion {
	r.raw.layer = layer
	return r
}

// WithX sets the left offset of the region.
func (r TextureRegion) WithX(x uint32) TextureRegion {
	r.raw.x = x
	return r
}

// WithY sets the top offset of the region.
func (r TextureRegion) WithY(y uint32) TextureRegion {
	r.raw.y = y
	return r
}

// WithZ sets the front offset of the region.
func (r TextureRegion) WithZ(z uint32) TextureRegion {
	r.raw.z = z
	return r
}

// WithWidth sets the width of the region.
func (r TextureRegion) WithWidth(w uint32) TextureRegion {
	r.raw.w = w
	return r
}

// WithHeight sets the height of the region.
func (r TextureRegion) WithHeight(h uint32) TextureRegion {
	r.raw.h = h
	return r
}

// WithDepth sets the depth of the region.
func (r TextureRegion) WithDepth(d uint32) TextureRegion {
	r.raw.d = d
	return r
}

func (r *TextureRegion) validate() error {
	return checkLive(r.texture)
}

// TextureTransferInfo specifies the source of a texture upload or the
// destination of a texture download within a transfer buffer.
//
// PixelsPerRow and RowsPerLayer may be left zero, in which case the data
// is assumed to be tightly packed.
type TextureTransferInfo struct {
	raw            textureTransferInfo
	transferBuffer *TransferBuffer
}

// NewTextureTransferInfo returns a zero-valued descriptor.
func NewTextureTransferInfo() TextureTransferInfo {
	return TextureTransferInfo{}
}

// WithTransferBuffer sets the transfer buffer holding the pixel data.
func (t TextureTransferInfo) WithTransferBuffer(transferBuffer *TransferBuffer) TextureTransferInfo {
	t.raw.transferBuffer = transferBuffer.ptr
	t.transferBuffer = transferBuffer
	return t
}

// WithOffset sets the byte offset of the pixel data in the transfer buffer.
func (t TextureTransferInfo) WithOffset(offset uint32) TextureTransferInfo {
	t.raw.offset = offset
	return t
}

// WithPixelsPerRow sets the number of pixels in a row of the data.
func (t TextureTransferInfo) WithPixelsPerRow(pixelsPerRow uint32) TextureTransferInfo {
	t.raw.pixelsPerRow = pixelsPerRow
	return t
}

// WithRowsPerLayer sets the number of rows in a layer of the data.
func (t TextureTransferInfo) WithRowsPerLayer(rowsPerLayer uint32) TextureTransferInfo {
	t.raw.rowsPerLayer = rowsPerLayer
	return t
}

func (t *TextureTransferInfo) validate() error {
	return checkLive(t.transferBuffer)
}

// TextureLocation specifies a location in a texture used by
// [CopyPass.CopyTextureToTexture].
type TextureLocation struct {
	raw     textureLocation
	texture *Texture
}

// NewTextureLocation returns a zero-valued descriptor.
func NewTextureLocation() TextureLocation {
	return TextureLocation{}
}

// WithTexture sets the texture the location addresses.
func (l TextureLocation) WithTexture(texture *Texture) TextureLocation {
	l.raw.texture = texture.ptr
	l.texture = texture
	return l
}

// WithMipLevel sets the mip level index of the location.
func (l TextureLocation) WithMipLevel(mipLevel uint32) TextureLocation {
	l.raw.mipLevel = mipLevel
	return l
}

// WithLayer sets the layer index of the location.
func (l TextureLocation) WithLayer(layer uint32) TextureLocation {
	l.raw.layer = layer
	return l
}

// WithX sets the left offset of the location.
func (l TextureLocation) WithX(x uint32) TextureLocation {
	l.raw.x = x
	return l
}

// WithY sets the top offset of the location.
func (l TextureLocation) WithY(y uint32) TextureLocation {
	l.raw.y = y
	return l
}

// WithZ sets the front offset of the location.
func (l TextureLocation) WithZ(z uint32) TextureLocation {
	l.raw.z = z
	return l
}

func (l *TextureLocation) validate() error {
	return checkLive(l.texture)
}

// TransferBufferLocation specifies a location in a transfer buffer used by
// buffer uploads and downloads.
type TransferBufferLocation struct {
	raw            transferBufferLocation
	transferBuffer *TransferBuffer
}

// NewTransferBufferLocation returns a zero-valued descriptor.
func NewTransferBufferLocation() TransferBufferLocation {
	return TransferBufferLocation{}
}

// WithTransferBuffer sets the transfer buffer the location addresses.
func (l TransferBufferLocation) WithTransferBuffer(transferBuffer *TransferBuffer) TransferBufferLocation {
	l.raw.transferBuffer = transferBuffer.ptr
	l.transferBuffer = transferBuffer
	return l
}

// WithOffset sets the starting byte of the location.
func (l TransferBufferLocation) WithOffset(offset uint32) TransferBufferLocation {
	l.raw.offset = offset
	return l
}

func (l *TransferBufferLocation) validate() error {
	return checkLive(l.transferBuffer)
}

// BufferLocation specifies a location in a buffer used by
// [CopyPass.CopyBufferToBuffer].
type BufferLocation struct {
	raw    bufferLocation
	buffer *Buffer
}

// NewBufferLocation returns a zero-valued descriptor.
func NewBufferLocation() BufferLocation {
	return BufferLocation{}
}

// WithBuffer sets the buffer the location addresses.
func (l BufferLocation) WithBuffer(buffer *Buffer) BufferLocation {
	l.raw.buffer = buffer.ptr
	l.buffer = buffer
	return l
}

// WithOffset sets the starting byte of the location.
func (l BufferLocation) WithOffset(offset uint32) BufferLocation {
	l.raw.offset = offset
	return l
}

func (l *BufferLocation) validate() error {
	return checkLive(l.buffer)
}

// BufferRegion specifies a region of a buffer used by buffer uploads and
// downloads.
type BufferRegion struct {
	raw    bufferRegion
	buffer *Buffer
}

// NewBufferRegion returns a zero-valued descriptor.
func NewBufferRegion() BufferRegion {
	return BufferRegion{}
}

// WithBuffer sets the buffer the region addresses.
func (r BufferRegion) WithBuffer(buffer *Buffer) BufferRegion {
	r.raw.buffer = buffer.ptr
	r.buffer = buffer
	return r
}

// WithOffset sets the starting byte of the region.
func (r BufferRegion) WithOffset(offset uint32) BufferRegion {
	r.raw.offset = offset
	return r
}

// WithSize sets the size in bytes of the region.
func (r BufferRegion) WithSize(size uint32) BufferRegion {
	r.raw.size = size
	return r
}

func (r *BufferRegion) validate() error {
	return checkLive(r.buffer)
}
