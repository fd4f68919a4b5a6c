package geom

import "testing"

func TestDist(t *testing.T) {
	tests := []struct {
		a, b Point
		want float64
	}{
		{Point{0, 0}, Point{3, 4}, 5},
		{Point{1, 1}, Point{1, 1}, 0},
	}
	for _, tt := range tests {
		if got := Dist(tt.a, tt.b); got != tt.want {
			t.Errorf("Dist(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		p1, p2, q1, q2 Point
		want           int
	}{
		{Point{0, 0}, Point{1, 0}, Point{0, 0}, Point{1, 0}, 0},
		{Point{0, 0}, Point{1, 0}, Point{0, 0}, Point{0, 1}, 90},
		{Point{0, 0}, Point{1, 0}, Point{0, 0}, Point{-1, 0}, 180},
	}
	for _, tt := range tests {
		if got := Angle(tt.p1, tt.p2, tt.q1, tt.q2); got != tt.want {
			t.Errorf("Angle(%v,%v,%v,%v) = %v, want %v", tt.p1, tt.p2, tt.q1, tt.q2, got, tt.want)
		}
	}
}

func TestAngleDegenerate(t *testing.T) {
	if got := Angle(Point{0, 0}, Point{0, 0}, Point{0, 0}, Point{1, 0}); got != 0 {
		t.Errorf("Angle with zero-length vector = %v, want 0", got)
	}
}

func TestLinePointDistance(t *testing.T) {
	d := LinePointDistance(Point{0, 0}, Point{10, 0}, Point{5, 5})
	if d != 5 {
		t.Errorf("LinePointDistance = %v, want 5", d)
	}
}

func TestLinePointDistanceDegenerateLine(t *testing.T) {
	d := LinePointDistance(Point{2, 2}, Point{2, 2}, Point{5, 6})
	if d != Dist(Point{2, 2}, Point{5, 6}) {
		t.Errorf("degenerate LinePointDistance should fall back to point distance, got %v", d)
	}
}

func TestPointInPolygonSquare(t *testing.T) {
	square := []Edge{
		{Point{0, 0}, Point{10, 0}},
		{Point{10, 0}, Point{10, 10}},
		{Point{10, 10}, Point{0, 10}},
		{Point{0, 10}, Point{0, 0}},
	}
	if !PointInPolygon(Point{5, 5}, square) {
		t.Error("center of square should be inside")
	}
	if PointInPolygon(Point{20, 20}, square) {
		t.Error("point far outside square should not be inside")
	}
}

func TestEdgeMidpointAndLength(t *testing.T) {
	e := Edge{Point{0, 0}, Point{4, 0}}
	if e.Length() != 4 {
		t.Errorf("Length = %v, want 4", e.Length())
	}
	if e.Midpoint() != (Point{2, 0}) {
		t.Errorf("Midpoint = %v, want {2 0}", e.Midpoint())
	}
}

func TestEdgeReversed(t *testing.T) {
	e := Edge{Point{1, 2}, Point{3, 4}}
	r := e.Reversed()
	if r.A != e.B || r.B != e.A {
		t.Errorf("Reversed() = %v, want swapped endpoints of %v", r, e)
	}
}
