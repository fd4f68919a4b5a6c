package geom

import "testing"

func square() Polygon {
	return Polygon{Edges: []Edge{
		{Point{0, 0}, Point{10, 0}},
		{Point{10, 0}, Point{10, 10}},
		{Point{10, 10}, Point{0, 10}},
		{Point{0, 10}, Point{0, 0}},
	}}
}

func TestPolygonClosed(t *testing.T) {
	p := square()
	if !p.Closed() {
		t.Error("square should be closed")
	}
	p.Edges = p.Edges[:3]
	if p.Closed() {
		t.Error("truncated path should not be closed")
	}
}

func TestPolygonClosedEmpty(t *testing.T) {
	p := Polygon{}
	if p.Closed() {
		t.Error("empty polygon should not report closed")
	}
}

func TestPolygonIsHole(t *testing.T) {
	p := square()
	p.Containers = 0
	if p.IsHole() {
		t.Error("zero containers should not be a hole")
	}
	p.Containers = 1
	if !p.IsHole() {
		t.Error("odd containers should be a hole")
	}
	p.Containers = 2
	if p.IsHole() {
		t.Error("even containers should not be a hole")
	}
}

func TestPolygonReverse(t *testing.T) {
	p := square()
	orig := append([]Edge(nil), p.Edges...)
	p.Reverse()
	n := len(orig)
	for i, e := range p.Edges {
		want := orig[n-1-i].Reversed()
		if e != want {
			t.Errorf("Reverse()[%d] = %v, want %v", i, e, want)
		}
	}
	// reversing twice restores the original order
	p.Reverse()
	for i, e := range p.Edges {
		if e != orig[i] {
			t.Errorf("double Reverse()[%d] = %v, want %v", i, e, orig[i])
		}
	}
}

func TestPolygonOrientationReversesSign(t *testing.T) {
	p := square()
	want := p.Orientation()
	p.Reverse()
	if got := p.Orientation(); got != -want {
		t.Errorf("Orientation() after Reverse() = %v, want %v", got, -want)
	}
}

func TestPolygonFirstVertex(t *testing.T) {
	p := square()
	if got := p.FirstVertex(); got != (Point{0, 0}) {
		t.Errorf("FirstVertex() = %v, want {0 0}", got)
	}
}
