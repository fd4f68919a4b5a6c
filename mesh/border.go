package mesh

import "github.com/Jose-Trivino/make-poly-from-image/geom"

// BorderUpdate recomputes every live half-edge's border flag: a half-edge
// is a border half-edge iff it has a twin, its own triangle's mean
// intensity is at or below the mid-grey split (dark side) and its twin's
// triangle is above it (light side) — the refined mesh's edges that follow
// the image's black/white transition.
func (m *Mesh) BorderUpdate() {
	for i := range m.HalfEdges {
		e := HalfEdgeID(i)
		he := &m.HalfEdges[e]
		if !he.live {
			continue
		}
		if he.Twin == NoID {
			he.IsBorder = false
			continue
		}
		ownAvg := m.Triangles[m.Tri(e)].Avg
		twinAvg := m.Triangles[m.Tri(he.Twin)].Avg
		he.IsBorder = ownAvg <= 127 && twinAvg > 127
	}
}

// BorderGet walks every border loop in the mesh into a closed polygon,
// classifying each as a hole or an outer boundary from the sign of the
// cross product at its lowest (minimum-Y) vertex.
func (m *Mesh) BorderGet() []geom.Polygon {
	visited := make(map[HalfEdgeID]bool)
	var polys []geom.Polygon

	for i := range m.HalfEdges {
		e0 := HalfEdgeID(i)
		if !m.HalfEdges[e0].live || !m.HalfEdges[e0].IsBorder || visited[e0] {
			continue
		}

		startV := m.Start(e0)
		var loopEdges []HalfEdgeID
		var path []geom.Point

		curr := e0
		for {
			visited[curr] = true
			loopEdges = append(loopEdges, curr)
			path = append(path, m.Vertices[m.End(curr)].Point())

			end := m.End(curr)
			if end == startV {
				break
			}
			next, ok := m.nextBorderEdge(end, visited)
			if !ok {
				break
			}
			curr = next
		}

		if len(path) < 3 {
			continue
		}
		polys = append(polys, m.classifyBorderLoop(loopEdges, path))
	}

	return polys
}

func (m *Mesh) nextBorderEdge(v VertexID, visited map[HalfEdgeID]bool) (HalfEdgeID, bool) {
	for _, cand := range m.Vertices[v].Outgoing {
		if m.HalfEdges[cand].live && m.HalfEdges[cand].IsBorder && !visited[cand] {
			return cand, true
		}
	}
	return 0, false
}

// classifyBorderLoop builds the closed polygon for one border loop and
// decides whether it bounds a hole: at the loop's lowest vertex, a
// positive (or zero-with-x-tiebreak) cross between the incoming and
// outgoing edges means the loop's "inside" lies on the dark side, i.e. it
// is a hole, and its marker point is the centroid of the inside triangle
// sitting just across the loop's first half-edge.
func (m *Mesh) classifyBorderLoop(loopEdges []HalfEdgeID, path []geom.Point) geom.Polygon {
	n := len(path)
	edges := make([]geom.Edge, n)
	for i := range path {
		edges[i] = geom.Edge{A: path[i], B: path[(i+1)%n]}
	}

	lowest := 0
	for i, p := range path {
		if p.Y < path[lowest].Y {
			lowest = i
		}
	}
	prev := path[(lowest-1+n)%n]
	low := path[lowest]
	next := path[(lowest+1)%n]

	cross := geom.Cross(low, next, low, prev)
	isHole := cross > 0 || (cross == 0 && prev.X < low.X)

	poly := geom.Polygon{Edges: edges}
	if isHole {
		poly.Containers = 1
		p := m.Centroid(m.Tri(m.Twin(loopEdges[0])))
		poly.HolePoint = &p
	}
	return poly
}
