package mesh

import "github.com/Jose-Trivino/make-poly-from-image/geom"

var diagonals = []geom.Point{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}

// vertexMovDir chooses the single-pixel direction v should move along this
// pass, evaluated with the pure trial predicate (no mutation). Vertices
// with no allowed movement, or with zero error, never move. A vertex whose
// own error is still high but for which no candidate direction reduces it
// is nonetheless forced to move along whichever direction scored worst —
// the reference implementation's "stuck but still erroring" escape, which
// keeps such vertices from permanently wedging the mesh.
func (m *Mesh) vertexMovDir(v VertexID) geom.Point {
	vert := &m.Vertices[v]
	if len(vert.Movement) == 0 || vert.Err == 0 {
		return geom.Point{}
	}

	candidates := vert.Movement
	if vert.Err > 50 && len(vert.Movement) >= 4 {
		candidates = append(append([]geom.Point{}, vert.Movement...), diagonals...)
	}

	bestDir := geom.Point{}
	bestErr := vert.Err
	worstDir := candidates[0]
	worstErr := -1.0
	found := false

	for _, d := range candidates {
		e := m.trialVertexErr(v, d.X, d.Y)
		if e < bestErr {
			bestErr = e
			bestDir = d
			found = true
		}
		if e > worstErr {
			worstErr = e
			worstDir = d
		}
	}

	if found {
		return bestDir
	}
	if vert.Err > 25 {
		return worstDir
	}
	return geom.Point{}
}

// RelocateAll computes every live vertex's move direction against the
// pre-move mesh state and then applies all moves together (the "all at
// once" variant used for the first several refinement iterations).
func (m *Mesh) RelocateAll(step int) {
	dirs := make([]geom.Point, len(m.Vertices))
	for i := range m.Vertices {
		if m.Vertices[i].live {
			dirs[i] = m.vertexMovDir(VertexID(i))
		}
	}
	for i := range m.Vertices {
		if !m.Vertices[i].live {
			continue
		}
		m.Vertices[i].X += dirs[i].X * step
		m.Vertices[i].Y += dirs[i].Y * step
	}
}

// RelocateSeq computes and applies each live vertex's move one at a time,
// so later vertices in the same pass see earlier vertices' new positions
// (the variant used once the mesh has mostly converged).
func (m *Mesh) RelocateSeq(step int) {
	for i := range m.Vertices {
		if !m.Vertices[i].live {
			continue
		}
		dir := m.vertexMovDir(VertexID(i))
		m.Vertices[i].X += dir.X * step
		m.Vertices[i].Y += dir.Y * step
	}
}
