package geom

// Polygon is a closed path carrying a container count (the number of other
// polygons whose interior contains its first vertex) and an optional
// hole-marker point, non-nil iff the polygon is classified as a hole (odd
// container count).
type Polygon struct {
	Edges      []Edge
	Containers int
	HolePoint  *Point
}

// IsHole reports whether p is classified as a hole.
func (p *Polygon) IsHole() bool {
	return p.Containers%2 == 1
}

// FirstVertex returns the polygon's first vertex.
func (p *Polygon) FirstVertex() Point {
	return p.Edges[0].A
}

// Closed reports whether the path closes on itself (last edge's end equals
// first edge's start).
func (p *Polygon) Closed() bool {
	if len(p.Edges) == 0 {
		return false
	}
	return p.Edges[len(p.Edges)-1].B == p.Edges[0].A
}

// Reverse flips the orientation of the polygon in place.
func (p *Polygon) Reverse() {
	n := len(p.Edges)
	reversed := make([]Edge, n)
	for i, e := range p.Edges {
		reversed[n-1-i] = e.Reversed()
	}
	p.Edges = reversed
}

// LowestVertexIndex returns the index of the edge whose start vertex (A) has
// the minimum Y coordinate.
func (p *Polygon) LowestVertexIndex() int {
	lowest := 0
	for i, e := range p.Edges {
		if e.A.Y < p.Edges[lowest].A.Y {
			lowest = i
		}
	}
	return lowest
}

// Orientation returns +1 (clockwise) or -1 (counterclockwise) for a closed
// polygon, evaluated at its lowest vertex.
func (p *Polygon) Orientation() int {
	i := p.LowestVertexIndex()
	n := len(p.Edges)
	prevEdge := p.Edges[(i-1+n)%n]
	lowVertex := p.Edges[i].A
	nextVertex := p.Edges[i].B
	return LowestVertexOrientation(prevEdge.A, lowVertex, nextVertex)
}
