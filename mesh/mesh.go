package mesh

import (
	"github.com/Jose-Trivino/make-poly-from-image/geom"
	"github.com/Jose-Trivino/make-poly-from-image/raster"
)

// Build lays a regular (hn+1)x(vn+1) vertex grid over r's canvas and splits
// each cell into two triangles, choosing whichever of the two diagonal
// splits scores the lower summed approximation error. Corner vertices are
// immovable, edge vertices may slide only along their border, interior
// vertices may move on both axes.
func Build(r *raster.Raster, hn, vn int, minELen float64, log Logger) *Mesh {
	w, h := r.Bounds()
	m := &Mesh{Raster: r, MinELen: minELen}
	m.SetLogger(log)

	stepH := float64(w) / float64(hn)
	stepV := float64(h) / float64(vn)
	m.TArea = stepH * stepV

	vidx := make([][]VertexID, vn+1)
	for j := 0; j <= vn; j++ {
		vidx[j] = make([]VertexID, hn+1)
		for i := 0; i <= hn; i++ {
			x := round(float64(i) * stepH)
			y := round(float64(j) * stepV)
			vidx[j][i] = m.addVertex(x, y, movementFor(i, j, hn, vn))
		}
	}

	for j := 0; j < vn; j++ {
		for i := 0; i < hn; i++ {
			a := vidx[j][i]
			b := vidx[j][i+1]
			c := vidx[j+1][i]
			d := vidx[j+1][i+1]

			pa, pb := m.Vertices[a].Point(), m.Vertices[b].Point()
			pc, pd := m.Vertices[c].Point(), m.Vertices[d].Point()

			splitNW := probeErr(m.Raster, pa, pc, pd) + probeErr(m.Raster, pa, pd, pb)
			splitNE := probeErr(m.Raster, pa, pc, pb) + probeErr(m.Raster, pb, pc, pd)

			if splitNW <= splitNE {
				m.connectTriangle(a, c, d)
				m.connectTriangle(a, d, b)
			} else {
				m.connectTriangle(a, c, b)
				m.connectTriangle(b, c, d)
			}
		}
	}

	m.UpdateAll()
	return m
}

func probeErr(r rasterReader, p0, p1, p2 geom.Point) float64 {
	_, errVal, ok := triangleMeanErr(r, p0, p1, p2)
	if !ok {
		return 0
	}
	return errVal
}

// movementFor returns the axis-aligned directions vertex (i,j) of an
// (hn+1)x(vn+1) grid is allowed to move along: none on a corner, one axis
// along a border, both axes in the interior.
func movementFor(i, j, hn, vn int) []geom.Point {
	hMov := i != 0 && i != hn
	vMov := j != 0 && j != vn
	switch {
	case hMov && vMov:
		return []geom.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	case hMov:
		return []geom.Point{{X: 1, Y: 0}, {X: -1, Y: 0}}
	case vMov:
		return []geom.Point{{X: 0, Y: 1}, {X: 0, Y: -1}}
	default:
		return nil
	}
}

// connectTriangle creates a new triangle over the three vertices in winding
// order v0->v1->v2->v0, wiring its half-edges' 3-cycle and pairing twins
// against any existing adjacent triangle.
func (m *Mesh) connectTriangle(v0, v1, v2 VertexID) TriID {
	e0 := m.addHalfEdge(HalfEdge{Start: v0, End: v1, Twin: NoID})
	e1 := m.addHalfEdge(HalfEdge{Start: v1, End: v2, Twin: NoID})
	e2 := m.addHalfEdge(HalfEdge{Start: v2, End: v0, Twin: NoID})

	m.HalfEdges[e0].Next, m.HalfEdges[e0].Prev = e1, e2
	m.HalfEdges[e1].Next, m.HalfEdges[e1].Prev = e2, e0
	m.HalfEdges[e2].Next, m.HalfEdges[e2].Prev = e0, e1

	tri := m.addTriangle(Triangle{Edges: [3]HalfEdgeID{e0, e1, e2}})
	m.HalfEdges[e0].Triangle = tri
	m.HalfEdges[e1].Triangle = tri
	m.HalfEdges[e2].Triangle = tri

	for _, e := range [3]HalfEdgeID{e0, e1, e2} {
		start := m.HalfEdges[e].Start
		m.Vertices[start].Outgoing = append(m.Vertices[start].Outgoing, e)
		m.linkTwin(e)
	}
	return tri
}

// linkTwin searches e's end vertex's outgoing half-edges for the reverse
// edge back to e's start and, if found, pairs the two as twins.
func (m *Mesh) linkTwin(e HalfEdgeID) {
	he := &m.HalfEdges[e]
	if he.Twin != NoID {
		return
	}
	for _, cand := range m.Vertices[he.End].Outgoing {
		if cand == e || !m.HalfEdges[cand].live {
			continue
		}
		if m.HalfEdges[cand].End == he.Start && m.HalfEdges[cand].Twin == NoID {
			m.HalfEdges[cand].Twin = e
			he.Twin = cand
			return
		}
	}
}

// findHalfEdge returns the live half-edge running from -> to, if any.
func (m *Mesh) findHalfEdge(from, to VertexID) (HalfEdgeID, bool) {
	for _, e := range m.Vertices[from].Outgoing {
		if m.HalfEdges[e].live && m.HalfEdges[e].End == to {
			return e, true
		}
	}
	return 0, false
}
