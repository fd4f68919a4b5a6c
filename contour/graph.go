// Package contour assembles a Canny edge raster into closed, classified
// polygons: pixel-adjacency edges are walked into oriented paths by greedy
// angular continuation, stitched and cleaned by a fixed sequence of
// post-processing passes, then classified as outer boundaries or holes.
package contour

import (
	"github.com/Jose-Trivino/make-poly-from-image/geom"
	"github.com/Jose-Trivino/make-poly-from-image/raster"
	"github.com/katalvlaran/lvlath/gridgraph"
)

// BuildAdjacency scans every lit pixel of er and emits the directed
// cardinal (right, down) and suppressed-diagonal (down-right, down-left)
// edges to its lit neighbors. A diagonal is only emitted when the two
// cardinal neighbors that would otherwise connect the same two pixels are
// not both lit, so a corner never gets both its square's cardinal pair and
// its redundant crossing diagonal.
func BuildAdjacency(er *raster.EdgeRaster) ([]geom.Edge, error) {
	values := make([][]int, er.H)
	for y := 0; y < er.H; y++ {
		values[y] = make([]int, er.W)
		for x := 0; x < er.W; x++ {
			if er.Lit(x, y) {
				values[y][x] = 1
			}
		}
	}

	gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{
		LandThreshold: 1,
		Conn:          gridgraph.Conn8,
	})
	if err != nil {
		return nil, err
	}

	lit := func(x, y int) bool {
		return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
	}

	var edges []geom.Edge
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !lit(x, y) {
				continue
			}
			p := geom.Point{X: x, Y: y}

			neighbor := map[[2]int]bool{}
			for _, d := range gg.NeighborOffsets() {
				neighbor[d] = lit(x+d[0], y+d[1])
			}
			right, down := neighbor[[2]int{1, 0}], neighbor[[2]int{0, 1}]
			left, br, bl := neighbor[[2]int{-1, 0}], neighbor[[2]int{1, 1}], neighbor[[2]int{-1, 1}]

			if right {
				edges = append(edges, geom.Edge{A: p, B: geom.Point{X: x + 1, Y: y}})
			}
			if down {
				edges = append(edges, geom.Edge{A: p, B: geom.Point{X: x, Y: y + 1}})
			}
			if br && !(down && right) {
				edges = append(edges, geom.Edge{A: p, B: geom.Point{X: x + 1, Y: y + 1}})
			}
			if bl && !(down && left) {
				edges = append(edges, geom.Edge{A: p, B: geom.Point{X: x - 1, Y: y + 1}})
			}
		}
	}
	return edges, nil
}
