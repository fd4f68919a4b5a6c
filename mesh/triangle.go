package mesh

import "github.com/Jose-Trivino/make-poly-from-image/geom"

// VertexIDs returns the three vertex indices of triangle t, in winding
// order, read off the start vertices of its three half-edges.
func (m *Mesh) VertexIDs(t TriID) [3]VertexID {
	tri := &m.Triangles[t]
	return [3]VertexID{
		m.HalfEdges[tri.Edges[0]].Start,
		m.HalfEdges[tri.Edges[1]].Start,
		m.HalfEdges[tri.Edges[2]].Start,
	}
}

// Points returns the three vertex positions of triangle t.
func (m *Mesh) Points(t TriID) [3]geom.Point {
	ids := m.VertexIDs(t)
	return [3]geom.Point{
		m.Vertices[ids[0]].Point(),
		m.Vertices[ids[1]].Point(),
		m.Vertices[ids[2]].Point(),
	}
}

// ShortestEdge returns the half-edge of t with the smallest length.
func (m *Mesh) ShortestEdge(t TriID) HalfEdgeID {
	tri := &m.Triangles[t]
	shortest := tri.Edges[0]
	for _, e := range tri.Edges[1:] {
		if m.Length(e) < m.Length(shortest) {
			shortest = e
		}
	}
	return shortest
}

// LongestEdge returns the half-edge of t with the largest length.
func (m *Mesh) LongestEdge(t TriID) HalfEdgeID {
	tri := &m.Triangles[t]
	longest := tri.Edges[0]
	for _, e := range tri.Edges[1:] {
		if m.Length(e) > m.Length(longest) {
			longest = e
		}
	}
	return longest
}

// LargestAngle returns t's largest interior angle, in degrees.
func (m *Mesh) LargestAngle(t TriID) int {
	tri := &m.Triangles[t]
	best := m.OppAngle(tri.Edges[0])
	for _, e := range tri.Edges[1:] {
		if a := m.OppAngle(e); a > best {
			best = a
		}
	}
	return best
}

// SmallestAngle returns t's smallest interior angle, in degrees.
func (m *Mesh) SmallestAngle(t TriID) int {
	tri := &m.Triangles[t]
	best := m.OppAngle(tri.Edges[0])
	for _, e := range tri.Edges[1:] {
		if a := m.OppAngle(e); a < best {
			best = a
		}
	}
	return best
}

// BoundingBoxArea returns the area of t's axis-aligned bounding box (not
// its own area), matching the reference implementation's proxy for
// "how big is this triangle's footprint".
func (m *Mesh) BoundingBoxArea(t TriID) int {
	pts := m.Points(t)
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return (maxX - minX) * (maxY - minY)
}

// Centroid returns the integer centroid of t's three vertices.
func (m *Mesh) Centroid(t TriID) geom.Point {
	pts := m.Points(t)
	return geom.Centroid(pts[0], pts[1], pts[2])
}
