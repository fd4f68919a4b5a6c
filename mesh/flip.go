package mesh

import "github.com/aurelien-rainone/assertgo"

// liveHalfEdgeSnapshot returns the ids of every currently-live half-edge,
// frozen before a mutating pass starts so the pass can safely skip ids that
// get retired mid-pass without re-scanning a moving slice.
func (m *Mesh) liveHalfEdgeSnapshot() []HalfEdgeID {
	ids := make([]HalfEdgeID, 0, len(m.HalfEdges))
	for i := range m.HalfEdges {
		if m.HalfEdges[i].live {
			ids = append(ids, HalfEdgeID(i))
		}
	}
	return ids
}

// doFlip replaces the two triangles sharing half-edge e with the two
// triangles formed by flipping its diagonal, recomputing error for the
// replacement triangles and the four corner vertices.
func (m *Mesh) doFlip(e HalfEdgeID) {
	assert.True(m.HalfEdges[e].live, "doFlip: half-edge %d not live", e)
	assert.True(m.HasTwin(e), "doFlip: half-edge %d has no twin", e)

	twin := m.Twin(e)
	va := m.End(e)
	vd := m.Start(e)
	vb := m.End(m.Next(twin))
	vc := m.End(m.Next(e))

	t1, t2 := m.Tri(e), m.Tri(twin)
	m.detachTriangle(t1)
	m.detachTriangle(t2)
	m.removeTriangle(t1)
	m.removeTriangle(t2)

	nt1 := m.connectTriangle(va, vc, vb)
	nt2 := m.connectTriangle(vb, vc, vd)

	m.updateTriangle(nt1)
	m.updateTriangle(nt2)
	for _, v := range [4]VertexID{va, vb, vc, vd} {
		m.updateVertexErr(v)
	}
}

// detachTriangle removes its three half-edges from their start vertices'
// outgoing lists and unlinks any twins, without touching the triangle slot
// itself (the caller reclaims that separately).
func (m *Mesh) detachTriangle(t TriID) {
	for _, e := range m.Triangles[t].Edges {
		start := m.HalfEdges[e].Start
		out := m.Vertices[start].Outgoing
		for i, cand := range out {
			if cand == e {
				m.Vertices[start].Outgoing = append(out[:i], out[i+1:]...)
				break
			}
		}
		if twin := m.HalfEdges[e].Twin; twin != NoID && m.HalfEdges[twin].live {
			m.HalfEdges[twin].Twin = NoID
		}
		m.removeHalfEdge(e)
	}
}

// testFlip compares the current two-triangle error against the error the
// flipped configuration would score, purely from vertex positions, and
// performs the flip only if it strictly improves. Returns whether it flipped.
func (m *Mesh) testFlip(e HalfEdgeID) bool {
	twin := m.Twin(e)
	currErr := m.Triangles[m.Tri(e)].Err + m.Triangles[m.Tri(twin)].Err

	va := m.End(e)
	vd := m.Start(e)
	vb := m.End(m.Next(twin))
	vc := m.End(m.Next(e))

	pa, pb, pc, pd := m.Vertices[va].Point(), m.Vertices[vb].Point(), m.Vertices[vc].Point(), m.Vertices[vd].Point()
	newErr := probeErr(m.Raster, pa, pc, pb) + probeErr(m.Raster, pb, pc, pd)

	if newErr < currErr {
		m.doFlip(e)
		return true
	}
	return false
}

// FlipByError re-triangulates edges whose adjacent quad corners are both
// still reasonably convex (below 135 degrees) whenever the flipped
// configuration would score a strictly lower combined error.
func (m *Mesh) FlipByError() int {
	count := 0
	for _, e := range m.liveHalfEdgeSnapshot() {
		if !m.HalfEdges[e].live || !m.HasTwin(e) {
			continue
		}
		twin := m.Twin(e)
		if m.AdjAngle(e) < 135 && m.AdjAngle(twin) < 135 {
			if m.testFlip(e) {
				count++
			}
		}
	}
	return count
}

// FlipByAngle unconditionally flips edges whose two opposite angles sum
// past 240 degrees, restoring triangulation quality after relocation has
// dragged vertices into near-degenerate configurations.
func (m *Mesh) FlipByAngle() int {
	count := 0
	for _, e := range m.liveHalfEdgeSnapshot() {
		if !m.HalfEdges[e].live || !m.HasTwin(e) {
			continue
		}
		if m.OppAngleSum(e) > 240 {
			m.doFlip(e)
			count++
		}
	}
	return count
}
