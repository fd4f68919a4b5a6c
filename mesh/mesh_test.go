package mesh

import (
	"image"
	"image/color"
	"testing"

	"github.com/Jose-Trivino/make-poly-from-image/raster"
)

func checkerboard(n int) *raster.Raster {
	img := image.NewGray(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x/4+y/4)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return raster.New(img, 254)
}

func TestBuildProducesInvariantCleanMesh(t *testing.T) {
	r := checkerboard(40)
	m := Build(r, 5, 5, 1, nil)

	if m.LiveTriangleCount() != 2*5*5 {
		t.Errorf("got %d live triangles, want %d (2 per grid cell)", m.LiveTriangleCount(), 2*5*5)
	}
	if issues := m.CheckInvariants(); issues != 0 {
		t.Errorf("freshly built mesh has %d invariant violations, want 0", issues)
	}
}

func TestBuildCornerVerticesAreImmovable(t *testing.T) {
	r := checkerboard(40)
	m := Build(r, 4, 4, 1, nil)

	for i := range m.Vertices {
		v := VertexID(i)
		if !m.Vertices[v].live {
			continue
		}
		p := m.VertexPoint(v)
		isCorner := (p.X == 0 || p.X == r.Width) && (p.Y == 0 || p.Y == r.Height)
		if isCorner && len(m.Vertices[v].Movement) != 0 {
			t.Errorf("corner vertex at %v should have no allowed movement directions", p)
		}
	}
}

func TestCheckInvariantsSurvivesAFewRefinementPasses(t *testing.T) {
	r := checkerboard(40)
	m := Build(r, 6, 6, 1, nil)
	m.UpdateAll()

	m.RelocateAll(1)
	m.UpdateAll()
	m.FlipByError()
	m.FlipByAngle()
	m.Collapse()

	if issues := m.CheckInvariants(); issues != 0 {
		t.Errorf("mesh has %d invariant violations after a refinement pass, want 0", issues)
	}
}
