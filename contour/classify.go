package contour

import (
	"math"

	"github.com/Jose-Trivino/make-poly-from-image/geom"
)

// Classify counts, for every polygon, how many other polygons contain its
// first vertex (odd count marks a hole), then normalizes each polygon's
// winding to the convention expected downstream (outer boundaries
// counter-clockwise, holes clockwise) and, for holes, picks an interior
// marker point.
func Classify(paths []geom.Polygon) {
	for i := range paths {
		if len(paths[i].Edges) == 0 {
			continue
		}
		first := paths[i].FirstVertex()
		count := 0
		for j := range paths {
			if i == j || len(paths[j].Edges) == 0 {
				continue
			}
			if geom.PointInPolygon(first, paths[j].Edges) {
				count++
			}
		}
		paths[i].Containers = count
	}

	for i := range paths {
		normalize(&paths[i])
	}
}

func normalize(p *geom.Polygon) {
	if len(p.Edges) == 0 {
		return
	}
	clockwise := p.Orientation() > 0
	isHole := p.IsHole()

	if isHole != clockwise {
		p.Reverse()
	}

	if !isHole {
		p.HolePoint = nil
		return
	}
	if !p.Closed() {
		return
	}

	n := len(p.Edges)
	bestWeight := math.MaxFloat64
	bestIdx := 0
	for i := 0; i < n; i++ {
		in := p.Edges[i]
		out := p.Edges[(i+1)%n]

		directional := geom.Angle(in.B, in.A, out.A, out.B)
		if geom.Cross(in.B, in.A, out.A, out.B) < 0 {
			directional = 360 - directional
		}
		if directional > 180 {
			continue
		}
		angle := float64(directional)

		len1, len2 := in.Length(), out.Length()
		var ratio float64
		if len1 < len2 {
			ratio = len1 / len2
		} else {
			ratio = len2 / len1
		}

		angleWeight := math.Min(math.Abs(angle-60), 120) / 6
		lenWeight := math.Max(0, 0.5-ratio) * 20
		weight := angleWeight + lenWeight
		if weight < bestWeight {
			bestWeight, bestIdx = weight, i
		}
		if angle <= 90 && ratio > 0.5 {
			break
		}
	}

	a := p.Edges[bestIdx].A
	v := p.Edges[bestIdx].B
	next := p.Edges[(bestIdx+1)%n].B
	hp := geom.Centroid(a, v, next)
	p.HolePoint = &hp
}
