package mesh

import "github.com/Jose-Trivino/make-poly-from-image/geom"

// MeanErrors returns the mean vertex error and mean triangle error across
// every live element, the per-iteration series a --verbose run reports.
func (m *Mesh) MeanErrors() (vErr, tErr float64) {
	var vSum float64
	var vCount int
	for i := range m.Vertices {
		if m.Vertices[i].live {
			vSum += m.Vertices[i].Err
			vCount++
		}
	}
	var tSum float64
	var tCount int
	for i := range m.Triangles {
		if m.Triangles[i].live {
			tSum += m.Triangles[i].Err
			tCount++
		}
	}
	if vCount > 0 {
		vErr = vSum / float64(vCount)
	}
	if tCount > 0 {
		tErr = tSum / float64(tCount)
	}
	return vErr, tErr
}

// LiveTriangleCount returns the number of live triangles, used by the
// refinement driver's per-iteration progress log.
func (m *Mesh) LiveTriangleCount() int {
	count := 0
	for i := range m.Triangles {
		if m.Triangles[i].live {
			count++
		}
	}
	return count
}

// LiveVertexCount returns the number of live vertices.
func (m *Mesh) LiveVertexCount() int {
	count := 0
	for i := range m.Vertices {
		if m.Vertices[i].live {
			count++
		}
	}
	return count
}

// TriangleLive reports whether t is a live (non-recycled) triangle slot,
// used by external consumers (e.g. the timelapse recorder) that can't see
// the arena's unexported liveness bit directly.
func (m *Mesh) TriangleLive(t TriID) bool { return m.Triangles[t].live }

// VertexLive reports whether v is a live vertex slot.
func (m *Mesh) VertexLive(v VertexID) bool { return m.Vertices[v].live }

// VertexPoint returns v's current position.
func (m *Mesh) VertexPoint(v VertexID) geom.Point { return m.Vertices[v].Point() }
