package contour

import (
	"image"
	"image/color"
	"testing"

	"github.com/Jose-Trivino/make-poly-from-image/raster"
)

func squareEdgeRaster(n, margin int) *raster.EdgeRaster {
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
	r := raster.New(img, 254)
	return r.Canny(60, 150)
}

func TestBuildAdjacencyProducesEdgesForASquare(t *testing.T) {
	er := squareEdgeRaster(80, 15)
	edges, err := BuildAdjacency(er)
	if err != nil {
		t.Fatalf("BuildAdjacency failed: %v", err)
	}
	if len(edges) == 0 {
		t.Error("a square's Canny boundary should yield at least one adjacency edge")
	}
}

func TestBuildAdjacencyEveryEdgeConnectsLitPixels(t *testing.T) {
	er := squareEdgeRaster(80, 15)
	edges, err := BuildAdjacency(er)
	if err != nil {
		t.Fatalf("BuildAdjacency failed: %v", err)
	}
	for _, e := range edges {
		if !er.Lit(e.A.X, e.A.Y) || !er.Lit(e.B.X, e.B.Y) {
			t.Errorf("edge %v connects a pixel that is not lit", e)
		}
	}
}

func TestBuildAdjacencyEmptyRasterHasNoEdges(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	r := raster.New(img, 254)
	er := r.Canny(60, 150)

	edges, err := BuildAdjacency(er)
	if err != nil {
		t.Fatalf("BuildAdjacency failed: %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("a blank canvas should have no adjacency edges, got %d", len(edges))
	}
}
