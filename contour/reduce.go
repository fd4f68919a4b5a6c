package contour

import (
	"github.com/Jose-Trivino/make-poly-from-image/config"
	"github.com/Jose-Trivino/make-poly-from-image/geom"
)

// ReduceConstant performs limit merges per output edge, so each output edge
// covers up to limit+1 consecutive input edges, regardless of the resulting
// deviation. limit == 0 is a no-op.
func ReduceConstant(edges []geom.Edge, limit int) []geom.Edge {
	if limit == 0 || len(edges) == 0 {
		return edges
	}
	out := append([]geom.Edge(nil), edges...)

	remaining := limit
	startE := 0
	for {
		if startE+1 >= len(out) {
			break
		}
		removed := out[startE+1]
		out[startE].B = removed.B
		out = append(out[:startE+1], out[startE+2:]...)

		remaining--
		if remaining <= 0 {
			startE++
			remaining = limit
		}
		if startE >= len(out)-1 {
			break
		}
	}
	return out
}

// ReduceVariable grows each merged edge only as long as every absorbed
// point stays within maxDist of the merged edge's line.
func ReduceVariable(edges []geom.Edge, maxDist float64) []geom.Edge {
	if len(edges) == 0 {
		return edges
	}
	out := append([]geom.Edge(nil), edges...)

	startE := 0
	nearPoints := []geom.Point{out[startE].B}
	for {
		if startE+1 >= len(out) {
			break
		}
		a, b := out[startE].A, out[startE+1].B
		valid := true
		for _, p := range nearPoints {
			if geom.LinePointDistance(a, b, p) > maxDist {
				valid = false
			}
		}

		if valid {
			removed := out[startE+1]
			out = append(out[:startE+1], out[startE+2:]...)
			nearPoints = append(nearPoints, removed.B)
			out[startE].B = removed.B
		}
		if startE >= len(out)-1 {
			break
		}
		if !valid {
			startE++
			nearPoints = []geom.Point{out[startE].B}
		}
	}
	return out
}

// ReduceHybrid combines the two: a merge is only taken while it stays
// within maxDist of every absorbed point, and never more than limit merges
// deep before forcing an advance. limit == 0 is a no-op.
func ReduceHybrid(edges []geom.Edge, limit int, maxDist float64) []geom.Edge {
	if limit == 0 || len(edges) == 0 {
		return edges
	}
	out := append([]geom.Edge(nil), edges...)

	remaining := limit
	startE := 0
	nearPoints := []geom.Point{out[startE].B}
	for {
		if startE+1 >= len(out) {
			break
		}
		a, b := out[startE].A, out[startE+1].B
		valid := true
		for _, p := range nearPoints {
			if geom.LinePointDistance(a, b, p) > maxDist {
				valid = false
			}
		}

		if valid {
			removed := out[startE+1]
			out = append(out[:startE+1], out[startE+2:]...)
			nearPoints = append(nearPoints, removed.B)
			out[startE].B = removed.B
			remaining--
		}
		if startE >= len(out)-1 {
			break
		}
		if !valid || remaining <= 0 {
			startE++
			remaining = limit
			nearPoints = []geom.Point{out[startE].B}
		}
	}
	return out
}

// Reduce applies the configured reduction mode to every path's edge list.
func Reduce(paths []geom.Polygon, mode config.Reduction, params [2]float64) []geom.Polygon {
	for i := range paths {
		switch mode {
		case config.ReductionFixed:
			paths[i].Edges = ReduceConstant(paths[i].Edges, int(params[0]))
		case config.ReductionVariable:
			paths[i].Edges = ReduceVariable(paths[i].Edges, params[0])
		case config.ReductionHybrid:
			paths[i].Edges = ReduceHybrid(paths[i].Edges, int(params[0]), params[1])
		}
	}
	return paths
}
