package contour

import "github.com/Jose-Trivino/make-poly-from-image/geom"

func reverseEdges(edges []geom.Edge) []geom.Edge {
	n := len(edges)
	out := make([]geom.Edge, n)
	for i, e := range edges {
		out[n-1-i] = e.Reversed()
	}
	return out
}

func replacePoint(edges []geom.Edge, old, replacement geom.Point) []geom.Edge {
	out := make([]geom.Edge, len(edges))
	copy(out, edges)
	for i := range out {
		if out[i].A == old {
			out[i].A = replacement
		}
		if out[i].B == old {
			out[i].B = replacement
		}
	}
	return out
}

// FuseEnds merges any two distinct paths that have a pair of endpoints
// within maxDist, snapping the fused join to that pair's midpoint. The pairs
// are tried in a fixed order (first-first, first-last, last-last,
// last-first) and the first one within maxDist is used, which is not
// necessarily the nearest. Every
// pair of paths is tried in order; a fused pair restarts the inner scan
// against the (now shorter) remaining list so chains of three or more
// paths can be stitched end to end in one call.
func FuseEnds(paths []geom.Polygon, maxDist float64) []geom.Polygon {
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			a, b := paths[i].Edges, paths[j].Edges
			if len(a) == 0 || len(b) == 0 {
				continue
			}
			aFirst, aLast := a[0].A, a[len(a)-1].B
			bFirst, bLast := b[0].A, b[len(b)-1].B

			d1 := geom.Dist(aFirst, bLast)
			d2 := geom.Dist(aFirst, bFirst)
			d3 := geom.Dist(bFirst, aLast)
			d4 := geom.Dist(bLast, aLast)

			var merged []geom.Edge
			switch {
			case d2 <= maxDist:
				rb := reverseEdges(b)
				join := geom.Edge{A: bFirst, B: aFirst}.Midpoint()
				merged = append(replacePoint(rb, bFirst, join), replacePoint(a, aFirst, join)...)
			case d1 <= maxDist:
				join := geom.Edge{A: bLast, B: aFirst}.Midpoint()
				merged = append(replacePoint(b, bLast, join), replacePoint(a, aFirst, join)...)
			case d4 <= maxDist:
				rb := reverseEdges(b)
				join := geom.Edge{A: aLast, B: bLast}.Midpoint()
				merged = append(replacePoint(a, aLast, join), replacePoint(rb, bLast, join)...)
			case d3 <= maxDist:
				join := geom.Edge{A: aLast, B: bFirst}.Midpoint()
				merged = append(replacePoint(a, aLast, join), replacePoint(b, bFirst, join)...)
			default:
				continue
			}

			paths[i] = geom.Polygon{Edges: merged}
			paths = append(paths[:j], paths[j+1:]...)
			j = i
		}
	}
	return paths
}

// CloseLoops appends a closing edge to any still-open path whose free
// endpoints lie within maxDist of each other.
func CloseLoops(paths []geom.Polygon, maxDist float64) []geom.Polygon {
	for i := range paths {
		p := &paths[i]
		if p.Closed() || len(p.Edges) == 0 {
			continue
		}
		first := p.Edges[0].A
		last := p.Edges[len(p.Edges)-1].B
		if geom.Dist(first, last) <= maxDist {
			p.Edges = append(p.Edges, geom.Edge{A: last, B: first})
		}
	}
	return paths
}

// KeepLoops discards every path that FuseEnds/CloseLoops failed to close,
// along with any closed loop too short to be a real polygon.
func KeepLoops(paths []geom.Polygon) []geom.Polygon {
	out := make([]geom.Polygon, 0, len(paths))
	for _, p := range paths {
		if p.Closed() && len(p.Edges) > 2 {
			out = append(out, p)
		}
	}
	return out
}

// FusePoints walks each sufficiently long closed path and contracts any
// edge no longer than dist, merging its two endpoints into their midpoint
// and rewriting the neighboring edges to meet there.
func FusePoints(paths []geom.Polygon, dist float64) []geom.Polygon {
	for i := range paths {
		edges := paths[i].Edges
		if len(edges) < 10 {
			continue
		}
		verts := make([]geom.Point, len(edges))
		for k, e := range edges {
			verts[k] = e.A
		}
		n := len(verts)

		var fused []geom.Point
		for k := 0; k < n; {
			cur := verts[k]
			next := verts[(k+1)%n]
			if geom.Dist(cur, next) <= dist {
				fused = append(fused, geom.Edge{A: cur, B: next}.Midpoint())
				k += 2
				continue
			}
			fused = append(fused, cur)
			k++
		}
		if len(fused) < 3 {
			continue
		}

		newEdges := make([]geom.Edge, len(fused))
		for k := range fused {
			newEdges[k] = geom.Edge{A: fused[k], B: fused[(k+1)%len(fused)]}
		}
		paths[i].Edges = newEdges
	}
	return paths
}

// RemoveSmallPolygons drops any polygon with four or fewer edges all no
// longer than 2*maxDist, treating it as fuse/close noise rather than a
// real contour.
func RemoveSmallPolygons(paths []geom.Polygon, maxDist float64) []geom.Polygon {
	out := make([]geom.Polygon, 0, len(paths))
	for _, p := range paths {
		if len(p.Edges) <= 4 {
			allShort := true
			for _, e := range p.Edges {
				if e.Length() > maxDist*2 {
					allShort = false
					break
				}
			}
			if allShort {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
