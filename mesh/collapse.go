package mesh

import "github.com/aurelien-rainone/assertgo"

// canCollapse reports whether e's two endpoints are both free to disappear:
// e must have a twin (an interior edge), and neither endpoint may lie on
// the canvas border, since collapsing there would delete a boundary vertex.
func (m *Mesh) canCollapse(e HalfEdgeID) bool {
	if !m.HasTwin(e) {
		return false
	}
	w, h := m.Raster.Bounds()
	for _, v := range [2]VertexID{m.Start(e), m.End(e)} {
		p := m.Vertices[v].Point()
		if p.X == 0 || p.Y == 0 || p.X >= w-1 || p.Y >= h-1 {
			return false
		}
	}
	return true
}

// collapseEdge removes e's start vertex, deleting every triangle incident
// to it and re-triangulating the resulting hole as a fan from e's end
// vertex. It refuses when either of the two corners flanking e is already
// too close to flat (would produce a sliver) — retrying on the twin once,
// since the twin's flanking corners may be more forgiving — or when any
// triangle it would have to remove has never yet been scored. Returns the
// number of replacement triangles created, 0 if it declined to collapse.
func (m *Mesh) collapseEdge(e HalfEdgeID, retry bool) int {
	assert.True(m.HalfEdges[e].live, "collapseEdge: half-edge %d not live", e)

	if !m.canCollapse(e) {
		return 0
	}

	twin := m.Twin(e)
	prevE := m.Twin(m.Next(twin))
	nextE := m.Prev(e)

	if m.AdjAngle(prevE) > 175 || m.AdjAngle(nextE) > 175 {
		if !retry {
			return m.collapseEdge(twin, true)
		}
		return 0
	}

	delV := m.Start(e)
	endV := m.End(e)

	var ring []VertexID
	curr := e
	aborted := false
	guard := len(m.Vertices[delV].Outgoing) + 2

	for {
		if m.Triangles[m.Tri(curr)].New {
			aborted = true
			break
		}
		next := m.Twin(m.Prev(curr))
		if next == NoID || !m.HalfEdges[next].live {
			aborted = true
			break
		}
		end := m.End(next)
		if end == endV {
			if m.Triangles[m.Tri(next)].New {
				aborted = true
			}
			break
		}
		ring = append(ring, end)
		curr = next
		if len(ring) > guard {
			aborted = true
			break
		}
	}

	if aborted || len(ring) < 2 {
		return 0
	}

	for _, t := range m.incidentTriangles(delV) {
		m.detachTriangle(t)
		m.removeTriangle(t)
	}
	m.removeVertex(delV)

	created := 0
	for i := 0; i < len(ring)-1; i++ {
		nt := m.connectTriangle(endV, ring[i], ring[i+1])
		m.updateTriangle(nt)
		created++
	}

	m.updateVertexErr(endV)
	for _, v := range ring {
		m.updateVertexErr(v)
	}
	return created
}

// Collapse runs the two edge-collapse passes: first every interior edge
// shorter than MinELen, then every remaining triangle whose bounding-box
// footprint has shrunk below a fifth of the grid's original cell area
// (collapsed along its own shortest edge). Returns the number of
// collapses actually performed.
func (m *Mesh) Collapse() int {
	count := 0

	for _, e := range m.liveHalfEdgeSnapshot() {
		if !m.HalfEdges[e].live || !m.HasTwin(e) {
			continue
		}
		if m.Length(e) < m.MinELen {
			if m.collapseEdge(e, false) > 0 {
				count++
			}
		}
	}

	for i := range m.Triangles {
		t := TriID(i)
		if !m.Triangles[t].live {
			continue
		}
		if float64(m.BoundingBoxArea(t)) < m.TArea*0.2 {
			if m.collapseEdge(m.ShortestEdge(t), false) > 0 {
				count++
			}
		}
	}

	return count
}
