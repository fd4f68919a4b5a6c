package mesh

import "github.com/Jose-Trivino/make-poly-from-image/geom"

func (m *Mesh) addVertex(x, y int, movement []geom.Point) VertexID {
	v := Vertex{X: x, Y: y, Movement: movement, live: true}
	if n := len(m.freeV); n > 0 {
		id := m.freeV[n-1]
		m.freeV = m.freeV[:n-1]
		m.Vertices[id] = v
		return id
	}
	m.Vertices = append(m.Vertices, v)
	return VertexID(len(m.Vertices) - 1)
}

func (m *Mesh) removeVertex(id VertexID) {
	m.Vertices[id] = Vertex{}
	m.freeV = append(m.freeV, id)
}

func (m *Mesh) addHalfEdge(he HalfEdge) HalfEdgeID {
	he.live = true
	if n := len(m.freeE); n > 0 {
		id := m.freeE[n-1]
		m.freeE = m.freeE[:n-1]
		m.HalfEdges[id] = he
		return id
	}
	m.HalfEdges = append(m.HalfEdges, he)
	return HalfEdgeID(len(m.HalfEdges) - 1)
}

func (m *Mesh) removeHalfEdge(id HalfEdgeID) {
	m.HalfEdges[id] = HalfEdge{}
	m.freeE = append(m.freeE, id)
}

func (m *Mesh) addTriangle(t Triangle) TriID {
	t.live = true
	t.New = true
	if n := len(m.freeT); n > 0 {
		id := m.freeT[n-1]
		m.freeT = m.freeT[:n-1]
		m.Triangles[id] = t
		return id
	}
	m.Triangles = append(m.Triangles, t)
	return TriID(len(m.Triangles) - 1)
}

func (m *Mesh) removeTriangle(id TriID) {
	m.Triangles[id] = Triangle{}
	m.freeT = append(m.freeT, id)
}
