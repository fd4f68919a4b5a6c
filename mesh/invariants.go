package mesh

// CheckInvariants walks every live arena element and reports, through the
// mesh's Logger, any violation of the structural invariants the refinement
// operators depend on: each triangle's three half-edges form a closed
// Next/Prev cycle and agree on their owning triangle; every twin pairing is
// mutual and endpoint-consistent; every vertex's outgoing half-edges
// actually start at that vertex. It never aborts a run — callers use it as
// a debug-time health check — and returns the number of violations found.
func (m *Mesh) CheckInvariants() int {
	issues := 0

	for i := range m.HalfEdges {
		e := HalfEdgeID(i)
		if !m.HalfEdges[e].live {
			continue
		}

		if m.Next(m.Next(m.Next(e))) != e {
			m.logger().Warning("half-edge %d: 3-cycle does not close", e)
			issues++
		}
		if m.Prev(m.Next(e)) != e {
			m.logger().Warning("half-edge %d: next/prev mismatch", e)
			issues++
		}

		t := m.Tri(e)
		found := false
		for _, ce := range m.Triangles[t].Edges {
			if ce == e {
				found = true
				break
			}
		}
		if !found {
			m.logger().Warning("half-edge %d: triangle %d does not list it", e, t)
			issues++
		}

		if tw := m.Twin(e); tw != NoID {
			if m.HalfEdges[tw].live && m.Twin(tw) != e {
				m.logger().Warning("half-edge %d: twin pairing not mutual", e)
				issues++
			}
			if m.Start(tw) != m.End(e) || m.End(tw) != m.Start(e) {
				m.logger().Warning("half-edge %d: twin endpoints inconsistent", e)
				issues++
			}
		}
	}

	for i := range m.Vertices {
		v := VertexID(i)
		if !m.Vertices[v].live {
			continue
		}
		for _, e := range m.Vertices[v].Outgoing {
			if m.HalfEdges[e].live && m.Start(e) != v {
				m.logger().Warning("vertex %d: outgoing half-edge %d does not start here", v, e)
				issues++
			}
		}
	}

	for i := range m.Triangles {
		t := TriID(i)
		if !m.Triangles[t].live {
			continue
		}
		for _, e := range m.Triangles[t].Edges {
			if !m.HalfEdges[e].live || m.Tri(e) != t {
				m.logger().Warning("triangle %d: edge %d does not reference it back", t, e)
				issues++
			}
		}
	}

	return issues
}
