package mesh

import "github.com/Jose-Trivino/make-poly-from-image/geom"

// The navigation helpers below replace the chained-accessor string DSL
// ("get_s") of the reference implementation with explicit, typed steps:
// every call site composes these directly (m.Next(m.Twin(e)) and so on)
// instead of walking a string of direction codes.

func (m *Mesh) Next(e HalfEdgeID) HalfEdgeID { return m.HalfEdges[e].Next }
func (m *Mesh) Prev(e HalfEdgeID) HalfEdgeID { return m.HalfEdges[e].Prev }
func (m *Mesh) Twin(e HalfEdgeID) HalfEdgeID { return m.HalfEdges[e].Twin }
func (m *Mesh) Tri(e HalfEdgeID) TriID       { return m.HalfEdges[e].Triangle }
func (m *Mesh) Start(e HalfEdgeID) VertexID  { return m.HalfEdges[e].Start }
func (m *Mesh) End(e HalfEdgeID) VertexID    { return m.HalfEdges[e].End }

func (m *Mesh) StartPoint(e HalfEdgeID) geom.Point { return m.Vertices[m.HalfEdges[e].Start].Point() }
func (m *Mesh) EndPoint(e HalfEdgeID) geom.Point   { return m.Vertices[m.HalfEdges[e].End].Point() }

func (m *Mesh) HasTwin(e HalfEdgeID) bool { return m.HalfEdges[e].Twin != NoID }

// Length returns the Euclidean length of half-edge e.
func (m *Mesh) Length(e HalfEdgeID) float64 {
	return geom.Dist(m.StartPoint(e), m.EndPoint(e))
}

// OppAngle returns the angle, at the vertex opposite e in e's own triangle,
// between the rays to e's two endpoints — i.e. the triangle's interior
// angle across from edge e.
func (m *Mesh) OppAngle(e HalfEdgeID) int {
	apex := m.EndPoint(m.Next(e))
	return geom.Angle(apex, m.StartPoint(e), apex, m.EndPoint(e))
}

// OppAngleSum returns the sum of the two triangles' angles opposite a
// shared edge — the two corners of the quad formed by e and its twin that
// are not on the shared diagonal. Used by the angle-triggered edge flip to
// detect near-degenerate quads worth re-triangulating.
func (m *Mesh) OppAngleSum(e HalfEdgeID) int {
	return m.OppAngle(e) + m.OppAngle(m.Twin(e))
}

// AdjAngle returns the interior angle, at e's start vertex, of the
// quadrilateral formed by e's triangle and its twin's triangle — the angle
// between the ray to the twin's far vertex and the ray to e's own
// triangle's far vertex on the other side.
func (m *Mesh) AdjAngle(e HalfEdgeID) int {
	start := m.StartPoint(e)
	twin := m.Twin(e)
	far1 := m.EndPoint(m.Next(twin))
	far2 := m.StartPoint(m.Prev(e))

	angle := geom.Angle(start, far1, start, far2)
	if geom.Cross(start, far1, start, far2) < 0 {
		return 360 - angle
	}
	return angle
}
