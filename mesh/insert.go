package mesh

import "github.com/Jose-Trivino/make-poly-from-image/geom"

var fullMovement = []geom.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// testInsertCentroid checks, without allocating any vertex or half-edge in
// the live arena, that splitting t at its centroid wouldn't create an edge
// shorter than MinELen, then performs the split if it passes.
func (m *Mesh) testInsertCentroid(t TriID) bool {
	pts := m.Points(t)
	centroid := geom.Centroid(pts[0], pts[1], pts[2])

	minLen := geom.Dist(centroid, pts[0])
	for _, p := range pts[1:] {
		if d := geom.Dist(centroid, p); d < minLen {
			minLen = d
		}
	}
	if minLen < m.MinELen {
		return false
	}
	m.insertCentroid(t)
	return true
}

// insertCentroid replaces t with three triangles fanning out from a new
// vertex at its centroid.
func (m *Mesh) insertCentroid(t TriID) {
	ids := m.VertexIDs(t)
	pts := m.Points(t)
	centroid := geom.Centroid(pts[0], pts[1], pts[2])

	m.detachTriangle(t)
	m.removeTriangle(t)

	nv := m.addVertex(centroid.X, centroid.Y, fullMovement)

	nt0 := m.connectTriangle(ids[0], ids[1], nv)
	nt1 := m.connectTriangle(ids[1], ids[2], nv)
	nt2 := m.connectTriangle(ids[2], ids[0], nv)

	m.updateTriangle(nt0)
	m.updateTriangle(nt1)
	m.updateTriangle(nt2)

	for _, v := range ids {
		m.updateVertexErr(v)
	}
	m.updateVertexErr(nv)
}

// testInsertEdgeMidpoint is the edge-midpoint analogue of
// testInsertCentroid, splitting an interior edge's two flanking triangles
// into four around a new vertex at the edge's midpoint.
func (m *Mesh) testInsertEdgeMidpoint(e HalfEdgeID) bool {
	if !m.HasTwin(e) || m.Triangles[m.Tri(m.Twin(e))].New {
		return false
	}

	twin := m.Twin(e)
	va := m.End(e)
	vd := m.Start(e)
	vb := m.End(m.Next(twin))
	vc := m.End(m.Next(e))

	mid := geom.Edge{A: m.Vertices[vd].Point(), B: m.Vertices[va].Point()}.Midpoint()

	minLen := geom.Dist(mid, m.Vertices[va].Point())
	for _, v := range [3]VertexID{vb, vc, vd} {
		if d := geom.Dist(mid, m.Vertices[v].Point()); d < minLen {
			minLen = d
		}
	}
	if minLen < m.MinELen {
		return false
	}

	m.insertEdgeMidpoint(e)
	return true
}

// insertEdgeMidpoint performs the actual split described by
// testInsertEdgeMidpoint: both triangles flanking e are removed and four
// new ones are created fanning from a new vertex at e's midpoint.
func (m *Mesh) insertEdgeMidpoint(e HalfEdgeID) {
	twin := m.Twin(e)
	va := m.End(e)
	vd := m.Start(e)
	vb := m.End(m.Next(twin))
	vc := m.End(m.Next(e))

	mid := geom.Edge{A: m.Vertices[vd].Point(), B: m.Vertices[va].Point()}.Midpoint()

	t1, t2 := m.Tri(e), m.Tri(twin)
	m.detachTriangle(t1)
	m.detachTriangle(t2)
	m.removeTriangle(t1)
	m.removeTriangle(t2)

	nv := m.addVertex(mid.X, mid.Y, fullMovement)

	nt0 := m.connectTriangle(va, vc, nv)
	nt1 := m.connectTriangle(vc, vd, nv)
	nt2 := m.connectTriangle(vd, vb, nv)
	nt3 := m.connectTriangle(vb, va, nv)

	for _, nt := range [4]TriID{nt0, nt1, nt2, nt3} {
		m.updateTriangle(nt)
	}
	for _, v := range [4]VertexID{va, vb, vc, vd} {
		m.updateVertexErr(v)
	}
	m.updateVertexErr(nv)
}

// InsertPoints scans every already-scored triangle and splits the ones
// whose footprint has grown too large for the current error (or whose
// footprint is large and whose error is still high), choosing an edge
// midpoint split for a sliver-shaped triangle and a centroid split
// otherwise.
func (m *Mesh) InsertPoints() int {
	count := 0
	for i := range m.Triangles {
		t := TriID(i)
		if !m.Triangles[t].live || m.Triangles[t].New {
			continue
		}

		bbox := float64(m.BoundingBoxArea(t))
		cond1 := bbox > m.TArea*3
		cond2 := bbox >= m.TArea*0.9 && m.Triangles[t].Err > 100
		if !cond1 && !cond2 {
			continue
		}

		var ok bool
		if m.LargestAngle(t) > 90 || m.SmallestAngle(t) < 45 {
			ok = m.testInsertEdgeMidpoint(m.LongestEdge(t))
		} else {
			ok = m.testInsertCentroid(t)
		}
		if ok {
			count++
		}
	}
	return count
}

// highestErrTriangle returns the live incident triangle of v with the
// largest cached error.
func (m *Mesh) highestErrTriangle(v VertexID) (TriID, bool) {
	incident := m.incidentTriangles(v)
	if len(incident) == 0 {
		return 0, false
	}
	best := incident[0]
	for _, t := range incident[1:] {
		if m.Triangles[t].Err > m.Triangles[best].Err {
			best = t
		}
	}
	return best, true
}

// InsertPointsAtStuckVertex targets vertices that relocation left with no
// move direction (they're pinned between competing pulls) but whose error
// is still above minErr: it splits the most erroring triangle touching
// such a vertex, provided that triangle still has a substantial footprint.
func (m *Mesh) InsertPointsAtStuckVertex(minErr float64) int {
	count := 0
	for i := range m.Vertices {
		v := VertexID(i)
		if !m.Vertices[v].live {
			continue
		}
		if m.vertexMovDir(v) != (geom.Point{}) {
			continue
		}
		if m.Vertices[v].Err <= minErr {
			continue
		}
		t, ok := m.highestErrTriangle(v)
		if !ok {
			continue
		}
		if float64(m.BoundingBoxArea(t)) >= m.TArea*0.7 {
			if m.testInsertCentroid(t) {
				count++
			}
		}
	}
	return count
}
