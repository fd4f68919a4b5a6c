package poly

import (
	"image"
	"image/color"
	"testing"

	"github.com/Jose-Trivino/make-poly-from-image/config"
	"github.com/Jose-Trivino/make-poly-from-image/logctx"
)

func filledSquareImage(n, margin int) image.Image {
	img := image.NewGray(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	for y := margin; y < n-margin; y++ {
		for x := margin; x < n-margin; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}
	return img
}

func TestRunContourPipelineOnFilledSquare(t *testing.T) {
	cfg := config.Default().Contour
	rc := logctx.New(false)

	polys, r, err := RunContourPipeline(filledSquareImage(100, 20), &cfg, rc)
	if err != nil {
		t.Fatalf("RunContourPipeline failed: %v", err)
	}
	if r.Width == 0 || r.Height == 0 {
		t.Error("pipeline should return a non-empty raster")
	}
	if len(polys) == 0 {
		t.Error("a filled square should yield at least one classified polygon")
	}
}

func TestRunMeshPipelineOnFilledSquare(t *testing.T) {
	cfg := config.Default().Mesh
	cfg.GridH, cfg.GridV = 6, 6
	cfg.Iterations = 3
	rc := logctx.New(false)

	polys, r, err := RunMeshPipeline(filledSquareImage(100, 20), &cfg, rc, nil)
	if err != nil {
		t.Fatalf("RunMeshPipeline failed: %v", err)
	}
	if r.Width == 0 || r.Height == 0 {
		t.Error("pipeline should return a non-empty raster")
	}
	if len(polys) == 0 {
		t.Error("a filled square should yield at least one border loop")
	}
}
