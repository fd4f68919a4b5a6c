package mesh

import "github.com/Jose-Trivino/make-poly-from-image/geom"

// scanTriangle returns the horizontal pixel spans covered by the triangle
// (p0,p1,p2), handling the flat-top, flat-bottom and general (split at the
// middle vertex's row) cases.
func scanTriangle(p0, p1, p2 geom.Point) []Span {
	pts := [3]geom.Point{p0, p1, p2}
	// sort by Y ascending (3 elements: a fixed sorting network is plenty)
	if pts[0].Y > pts[1].Y {
		pts[0], pts[1] = pts[1], pts[0]
	}
	if pts[1].Y > pts[2].Y {
		pts[1], pts[2] = pts[2], pts[1]
	}
	if pts[0].Y > pts[1].Y {
		pts[0], pts[1] = pts[1], pts[0]
	}

	top, mid, bot := pts[0], pts[1], pts[2]

	switch {
	case top.Y == mid.Y:
		return scanRows(top.Y, bot.Y, top, bot, mid, bot)
	case mid.Y == bot.Y:
		return scanRows(top.Y, bot.Y, top, mid, top, bot)
	default:
		spans := scanRows(top.Y, mid.Y, top, mid, top, bot)
		spans = append(spans, scanRows(mid.Y+1, bot.Y, mid, bot, top, bot)...)
		return spans
	}
}

// scanRows emits one span per row in [y0,y1] (inclusive), with row y's
// endpoints taken from the two given edges' x-at-y.
func scanRows(y0, y1 int, e1a, e1b, e2a, e2b geom.Point) []Span {
	if y1 < y0 {
		return nil
	}
	spans := make([]Span, 0, y1-y0+1)
	for y := y0; y <= y1; y++ {
		x1 := geom.XAtY(e1a, e1b, y)
		x2 := geom.XAtY(e2a, e2b, y)
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		spans = append(spans, Span{Y: y, X0: x1, X1: x2})
	}
	return spans
}

// triangleMeanErr samples r's two-tone reference over the spans covering
// (p0,p1,p2) and returns the mean pixel intensity and the approximation
// error min(mean, 255-mean). ok is false for a degenerate triangle whose
// spans cover no pixels.
func triangleMeanErr(r rasterReader, p0, p1, p2 geom.Point) (avg, errVal float64, ok bool) {
	spans := scanTriangle(p0, p1, p2)
	var sum float64
	var count int
	for _, s := range spans {
		for x := s.X0; x <= s.X1; x++ {
			sum += float64(r.Gray(x, s.Y))
			count++
		}
	}
	if count == 0 {
		return 0, 0, false
	}
	avg = sum / float64(count)
	if avg > 127 {
		errVal = 255 - avg
	} else {
		errVal = avg
	}
	return avg, errVal, true
}

// rasterReader is the minimal surface rasterize.go needs from raster.Raster,
// kept narrow so trial-position evaluation never depends on mesh state.
type rasterReader interface {
	Gray(x, y int) uint8
}

// updateTriangle recomputes t's spans, mean and error against the live
// mesh, mutating the triangle in place and clearing its New flag. A
// degenerate triangle (no covered pixels) is repaired by collapsing its
// shortest edge, matching the reference implementation's fallback.
func (m *Mesh) updateTriangle(t TriID) {
	pts := m.Points(t)
	spans := scanTriangle(pts[0], pts[1], pts[2])
	avg, errVal, ok := triangleMeanErr(m.Raster, pts[0], pts[1], pts[2])

	tri := &m.Triangles[t]
	tri.Spans = spans
	tri.New = false

	if !ok {
		m.logger().Warning("degenerate triangle %d: repairing by collapsing shortest edge", t)
		m.collapseEdge(m.ShortestEdge(t), false)
		return
	}

	tri.Avg = avg
	tri.Err = errVal
}

// UpdateAll recomputes every live triangle's error and every vertex's
// cached error sum, the Go equivalent of a full rescoring pass.
func (m *Mesh) UpdateAll() {
	for i := range m.Triangles {
		if m.Triangles[i].live {
			m.updateTriangle(TriID(i))
		}
	}
	for i := range m.Vertices {
		if m.Vertices[i].live {
			m.updateVertexErr(VertexID(i))
		}
	}
}

// updateVertexErr recomputes v's cached error as the sum, over its incident
// triangles, of each triangle's error divided by 3 (floor division, as in
// the reference implementation — each triangle's error is split three ways
// across its corners).
func (m *Mesh) updateVertexErr(v VertexID) {
	var sum float64
	for _, e := range m.Vertices[v].Outgoing {
		if !m.HalfEdges[e].live {
			continue
		}
		t := m.HalfEdges[e].Triangle
		sum += float64(int(m.Triangles[t].Err) / 3)
	}
	m.Vertices[v].Err = sum
}

// incidentTriangles returns the distinct live triangles touching v.
func (m *Mesh) incidentTriangles(v VertexID) []TriID {
	seen := map[TriID]bool{}
	var out []TriID
	for _, e := range m.Vertices[v].Outgoing {
		if !m.HalfEdges[e].live {
			continue
		}
		t := m.HalfEdges[e].Triangle
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// trialVertexErr computes the error sum over v's incident triangles if v
// were moved by (dx,dy), without mutating any arena state — the pure
// predicate mandated in place of the reference implementation's
// move/recompute/undo dance.
func (m *Mesh) trialVertexErr(v VertexID, dx, dy int) float64 {
	moved := geom.Point{X: m.Vertices[v].X + dx, Y: m.Vertices[v].Y + dy}

	var sum float64
	for _, t := range m.incidentTriangles(v) {
		ids := m.VertexIDs(t)
		pts := m.Points(t)
		for i, id := range ids {
			if id == v {
				pts[i] = moved
			}
		}
		_, errVal, ok := triangleMeanErr(m.Raster, pts[0], pts[1], pts[2])
		if !ok {
			errVal = 0
		}
		sum += float64(int(errVal) / 3)
	}
	return sum
}
