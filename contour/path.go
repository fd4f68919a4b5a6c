package contour

import "github.com/Jose-Trivino/make-poly-from-image/geom"

// pathGraph holds the unconsumed pixel-adjacency edges driving path
// assembly. Edges are consumed in place as they're folded into a path, so
// no edge is ever reused by two paths.
type pathGraph struct {
	edges []geom.Edge
	used  []bool
}

func newPathGraph(edges []geom.Edge) *pathGraph {
	return &pathGraph{edges: edges, used: make([]bool, len(edges))}
}

// AssemblePaths walks every unconsumed edge into a path by greedy angular
// continuation: starting from an arbitrary seed edge, both ends extend
// toward whichever unused edge touching that endpoint bends least from the
// path's recent direction, until neither end has a candidate left.
func AssemblePaths(edges []geom.Edge) []geom.Polygon {
	g := newPathGraph(edges)
	var paths []geom.Polygon

	for i := range g.edges {
		if g.used[i] {
			continue
		}
		path := []geom.Edge{g.edges[i]}
		g.used[i] = true

		searchStart, searchEnd := true, true
		for searchStart || searchEnd {
			progressed := false
			if searchEnd {
				if g.extendEnd(&path) {
					progressed = true
				} else {
					searchEnd = false
				}
			}
			if searchStart {
				if g.extendStart(&path) {
					progressed = true
				} else {
					searchStart = false
				}
			}
			if !progressed {
				break
			}
		}

		if len(path) > 1 {
			paths = append(paths, geom.Polygon{Edges: path})
		}
	}

	return paths
}

// tangentEnd returns the two points defining the path's current direction
// at its end: the start of the fifth-from-last edge (or the path's very
// first point, if shorter) to the last edge's end point.
func tangentEnd(path []geom.Edge) (a, b geom.Point) {
	n := len(path)
	if n >= 5 {
		a = path[n-5].A
	} else {
		a = path[0].A
	}
	b = path[n-1].B
	return
}

// tangentStart mirrors tangentEnd for the path's start.
func tangentStart(path []geom.Edge) (a, b geom.Point) {
	n := len(path)
	a = path[0].A
	if n >= 5 {
		b = path[4].B
	} else {
		b = path[n-1].B
	}
	return
}

func (g *pathGraph) extendEnd(path *[]geom.Edge) bool {
	last := (*path)[len(*path)-1].B
	ta, tb := tangentEnd(*path)

	bestIdx := -1
	bestAngle := 181
	var bestEdge geom.Edge
	for i, e := range g.edges {
		if g.used[i] {
			continue
		}
		var cand geom.Edge
		switch last {
		case e.A:
			cand = e
		case e.B:
			cand = e.Reversed()
		default:
			continue
		}
		if angle := geom.Angle(ta, tb, cand.A, cand.B); angle < bestAngle {
			bestAngle, bestIdx, bestEdge = angle, i, cand
		}
	}
	if bestIdx == -1 {
		return false
	}
	g.used[bestIdx] = true
	*path = append(*path, bestEdge)
	return true
}

func (g *pathGraph) extendStart(path *[]geom.Edge) bool {
	first := (*path)[0].A
	ta, tb := tangentStart(*path)

	bestIdx := -1
	bestAngle := 181
	var bestEdge geom.Edge
	for i, e := range g.edges {
		if g.used[i] {
			continue
		}
		var cand geom.Edge
		switch first {
		case e.B:
			cand = e
		case e.A:
			cand = e.Reversed()
		default:
			continue
		}
		if angle := geom.Angle(ta, tb, cand.A, cand.B); angle < bestAngle {
			bestAngle, bestIdx, bestEdge = angle, i, cand
		}
	}
	if bestIdx == -1 {
		return false
	}
	g.used[bestIdx] = true
	newPath := make([]geom.Edge, 0, len(*path)+1)
	newPath = append(newPath, bestEdge)
	newPath = append(newPath, (*path)...)
	*path = newPath
	return true
}
