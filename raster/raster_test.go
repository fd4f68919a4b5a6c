package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestNewCropsAndPadsForegroundSquare(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	for y := 40; y < 60; y++ {
		for x := 40; x < 60; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}

	r := New(img, 254)
	if r.Width != r.Height {
		t.Fatalf("canvas should be square, got %dx%d", r.Width, r.Height)
	}
	// foreground is 20x20, padded by 10% each side -> canvas side should be
	// noticeably larger than the raw foreground but not match the original
	// 100x100 canvas (the background was cropped away).
	if r.Width <= 20 || r.Width >= 100 {
		t.Errorf("canvas side = %d, want something between the foreground size and the original image size", r.Width)
	}
}

func TestNewAllWhiteInputDegeneratesCleanly(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	r := New(img, 254)
	if r.Width < 1 || r.Height < 1 {
		t.Errorf("degenerate all-white input should still produce a >=1x1 canvas, got %dx%d", r.Width, r.Height)
	}
}

func TestGrayReflectsThreshold(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if x < 10 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	r := New(img, 254)
	foundBlack, foundWhite := false, false
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			switch r.Gray(x, y) {
			case 0:
				foundBlack = true
			case 255:
				foundWhite = true
			}
		}
	}
	if !foundBlack || !foundWhite {
		t.Error("expected both black and white pixels in the thresholded canvas")
	}
}
