package contour

import (
	"testing"

	"github.com/Jose-Trivino/make-poly-from-image/geom"
)

func rectPath(x0, y0, x1, y1 int) geom.Polygon {
	return geom.Polygon{Edges: []geom.Edge{
		{A: geom.Point{X: x0, Y: y0}, B: geom.Point{X: x1, Y: y0}},
		{A: geom.Point{X: x1, Y: y0}, B: geom.Point{X: x1, Y: y1}},
		{A: geom.Point{X: x1, Y: y1}, B: geom.Point{X: x0, Y: y1}},
		{A: geom.Point{X: x0, Y: y1}, B: geom.Point{X: x0, Y: y0}},
	}}
}

func TestClassifyOuterHasNoContainersAndNoHolePoint(t *testing.T) {
	outer := rectPath(0, 0, 100, 100)
	paths := []geom.Polygon{outer}
	Classify(paths)

	if paths[0].Containers != 0 {
		t.Errorf("lone outer polygon Containers = %d, want 0", paths[0].Containers)
	}
	if paths[0].IsHole() {
		t.Error("lone outer polygon should not be classified as a hole")
	}
	if paths[0].HolePoint != nil {
		t.Error("outer polygon should have a nil HolePoint")
	}
}

func TestClassifyNestedRectangleIsHoleWithMarker(t *testing.T) {
	outer := rectPath(0, 0, 100, 100)
	inner := rectPath(20, 20, 80, 80)
	paths := []geom.Polygon{outer, inner}
	Classify(paths)

	if paths[0].IsHole() {
		t.Error("outer rectangle should not be a hole")
	}
	if !paths[1].IsHole() {
		t.Error("nested rectangle should be classified as a hole")
	}
	if paths[1].HolePoint == nil {
		t.Error("hole polygon should get a non-nil HolePoint")
	}
}

func TestClassifyDoublyNestedIsOuterAgain(t *testing.T) {
	outer := rectPath(0, 0, 100, 100)
	hole := rectPath(20, 20, 80, 80)
	island := rectPath(40, 40, 60, 60)
	paths := []geom.Polygon{outer, hole, island}
	Classify(paths)

	if paths[0].IsHole() {
		t.Error("outermost rectangle should not be a hole")
	}
	if !paths[1].IsHole() {
		t.Error("middle rectangle should be a hole")
	}
	if paths[2].IsHole() {
		t.Error("innermost (doubly-nested) rectangle should not be a hole")
	}
	if paths[2].HolePoint != nil {
		t.Error("doubly-nested outer polygon should have a nil HolePoint")
	}
}
