package gpu

import (
	"image"
	"image/color"
	"testing"
)

func TestPixelData(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{G: 128, A: 64})

	pix := PixelData(img)
	if len(pix) != 4*2*2 {
		t.Fatalf("len(pix) = %d, want %d", len(pix), 4*2*2)
	}
	if pix[0] != 255 || pix[3] != 255 {
		t.Errorf("pixel (0,0) = %v, want red", pix[0:4])
	}
	if pix[13] != 128 || pix[15] != 64 {
		t.Errorf("pixel (1,1) = %v, want half green at quarter alpha", pix[12:16])
	}
}

func TestPixelDataNonZeroOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	img.SetNRGBA(10, 10, color.NRGBA{B: 7, A: 255})

	pix := PixelData(img)
	if len(pix) != 4*3*2 {
		t.Fatalf("len(pix) = %d, want %d", len(pix), 4*3*2)
	}
	if pix[2] != 7 {
		t.Errorf("first pixel = %v, want blue 7", pix[0:4])
	}
}

func TestPixelDataReusesTightNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	pix := PixelData(img)
	if &pix[0] != &img.Pix[0] {
		t.Error("tightly packed NRGBA input should be returned without copying")
	}
}

func TestScaledPixelData(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	pix := ScaledPixelData(img, 4, 4)
	if len(pix) != 4*4*4 {
		t.Fatalf("len(pix) = %d, want %d", len(pix), 4*4*4)
	}
	// Scaling a constant image keeps the constant.
	if pix[0] != 200 || pix[1] != 100 || pix[2] != 50 || pix[3] != 255 {
		t.Errorf("scaled pixel = %v, want {200 100 50 255}", pix[0:4])
	}
}
