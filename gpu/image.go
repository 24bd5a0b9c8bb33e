package gpu

import (
	"image"

	"golang.org/x/image/draw"
)

// PixelData converts img into tightly packed, non-premultiplied RGBA8 bytes
// suitable for uploading to a [TextureFormatR8G8B8A8Unorm] texture of the
// same dimensions. The returned slice has len 4*w*h.
func PixelData(img image.Image) []byte {
	b := img.Bounds()
	if dst, ok := img.(*image.NRGBA); ok && dst.Stride == 4*b.Dx() {
		return dst.Pix
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst.Pix
}

// ScaledPixelData converts img into tightly packed, non-premultiplied RGBA8
// bytes scaled to w by h pixels with bilinear filtering. Useful for
// uploading mip levels of an image.
func ScaledPixelData(img image.Image, w, h int) []byte {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst.Pix
}
