// Package geom provides the 2D integer-pixel geometry primitives shared by
// the contour and mesh-refinement pipelines: points, edges, polygons, and
// the handful of predicates (cross product, point-in-polygon, line-point
// distance, vector angle) both pipelines build on.
package geom

import "math"

// Point is an integer pixel coordinate. Y grows downward, matching image
// row order.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Edge is an ordered pair of points; direction is meaningful.
type Edge struct {
	A, B Point
}

// Reversed returns the edge with endpoints swapped.
func (e Edge) Reversed() Edge {
	return Edge{e.B, e.A}
}

// Length returns the Euclidean length of e.
func (e Edge) Length() float64 {
	return Dist(e.A, e.B)
}

// Midpoint returns the integer midpoint of e, rounding toward zero the way
// the original implementation's floor-division midpoint did.
func (e Edge) Midpoint() Point {
	return Point{(e.A.X + e.B.X) / 2, (e.A.Y + e.B.Y) / 2}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Cross returns the 2D cross product (p2-p1) x (q2-q1).
func Cross(p1, p2, q1, q2 Point) int {
	ax, ay := p2.X-p1.X, p2.Y-p1.Y
	bx, by := q2.X-q1.X, q2.Y-q1.Y
	return ax*by - ay*bx
}

// Dot returns the dot product (p2-p1) . (q2-q1).
func Dot(p1, p2, q1, q2 Point) int {
	ax, ay := p2.X-p1.X, p2.Y-p1.Y
	bx, by := q2.X-q1.X, q2.Y-q1.Y
	return ax*bx + ay*by
}

// Angle returns the angle in whole degrees, in [0,180], between vector
// p1->p2 and vector q1->q2, matching the clamped-acos formula used
// throughout the reference implementation.
func Angle(p1, p2, q1, q2 Point) int {
	v1x, v1y := float64(p2.X-p1.X), float64(p2.Y-p1.Y)
	v2x, v2y := float64(q2.X-q1.X), float64(q2.Y-q1.Y)

	dot := v1x*v2x + v1y*v2y
	mv1 := math.Sqrt(v1x*v1x + v1y*v1y)
	mv2 := math.Sqrt(v2x*v2x + v2y*v2y)

	if mv1 == 0 || mv2 == 0 {
		return 0
	}

	a := dot / (mv1 * mv2)
	if a > 1 {
		a = 1
	}
	if a < -1 {
		a = -1
	}

	return int(math.Round(math.Acos(a) * 180 / math.Pi))
}

// LinePointDistance returns the perpendicular distance from p to the
// infinite line through p1 and p2. If p1 == p2 it falls back to the
// point-to-point distance, matching edge_reduce_variable's degenerate case.
func LinePointDistance(p1, p2, p Point) float64 {
	if p1 == p2 {
		return Dist(p1, p)
	}

	x1, y1 := float64(p1.X), float64(p1.Y)
	x2, y2 := float64(p2.X), float64(p2.Y)
	x0, y0 := float64(p.X), float64(p.Y)

	num := math.Abs((x2-x1)*(y1-y0) - (x1-x0)*(y2-y1))
	den := math.Sqrt((x2-x1)*(x2-x1) + (y2-y1)*(y2-y1))
	return num / den
}

// PointInPolygon reports whether point lies inside the closed polygon
// described by edges, using a ray-cast to +x with the "upper-y inclusive,
// lower-y exclusive" rule to resolve vertex grazes deterministically.
func PointInPolygon(point Point, edges []Edge) bool {
	count := 0
	y := point.Y

	for _, e := range edges {
		upper, lower := e.A, e.B
		if upper.Y > lower.Y {
			upper, lower = lower, upper
		}

		if upper.Y <= y && lower.Y > y {
			x := lineXAtY(e.A, e.B, y)
			if x > point.X {
				count++
			}
		}
	}

	return count%2 == 1
}

// lineXAtY returns the x coordinate at height y on the line through v1, v2,
// matching get_intersection/solve_equations (vertical-edge special case
// returns v1.X unchanged).
func lineXAtY(v1, v2 Point, y int) int {
	if v1.X == v2.X {
		return v1.X
	}
	m := float64(v1.Y-v2.Y) / float64(v1.X-v2.X)
	b := float64(v1.Y) - m*float64(v1.X)
	return int(math.Floor((float64(y) - b) / m))
}

// XAtY is the exported form of lineXAtY, used by the mesh package's
// scanline rasterizer.
func XAtY(v1, v2 Point, y int) int {
	return lineXAtY(v1, v2, y)
}

// LowestVertexOrientation returns +1 for clockwise, -1 for counterclockwise,
// computed from the cross product of the two edges meeting at the lowest
// (minimum-Y) vertex of a closed polygon, with the same zero-cross
// x-tiebreak used throughout the reference implementation: prevVertex is
// the vertex before the lowest vertex along the polygon, nextVertex the one
// after it.
func LowestVertexOrientation(prevVertex, lowVertex, nextVertex Point) int {
	cross := Cross(lowVertex, nextVertex, lowVertex, prevVertex)

	if cross == 0 {
		if nextVertex.X < prevVertex.X {
			return -1
		}
		return 1
	}
	if cross < 0 {
		return 1
	}
	return -1
}

// Centroid returns the integer centroid of three points.
func Centroid(a, b, c Point) Point {
	return Point{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3}
}

// Centroid2 returns the integer centroid of a point slice of arbitrary
// length (used for triangle and quad centroids alike).
func Centroid2(pts []Point) Point {
	var sx, sy int
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	return Point{sx / len(pts), sy / len(pts)}
}
