package contour

import (
	"testing"

	"github.com/Jose-Trivino/make-poly-from-image/geom"
)

func openPath(pts ...geom.Point) geom.Polygon {
	edges := make([]geom.Edge, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		edges[i] = geom.Edge{A: pts[i], B: pts[i+1]}
	}
	return geom.Polygon{Edges: edges}
}

func TestFuseEndsJoinsNearbyOpenPaths(t *testing.T) {
	a := openPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	b := openPath(geom.Point{X: 11, Y: 0}, geom.Point{X: 20, Y: 0})

	merged := FuseEnds([]geom.Polygon{a, b}, 2)
	if len(merged) != 1 {
		t.Fatalf("got %d paths after FuseEnds, want 1 merged path", len(merged))
	}
	if len(merged[0].Edges) != 2 {
		t.Fatalf("merged path has %d edges, want 2", len(merged[0].Edges))
	}
}

func TestFuseEndsLeavesFarPathsAlone(t *testing.T) {
	a := openPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	b := openPath(geom.Point{X: 1000, Y: 1000}, geom.Point{X: 1010, Y: 1000})

	merged := FuseEnds([]geom.Polygon{a, b}, 2)
	if len(merged) != 2 {
		t.Fatalf("got %d paths after FuseEnds, want 2 (too far to merge)", len(merged))
	}
}

func TestCloseLoopsClosesNearbyEndpoints(t *testing.T) {
	p := openPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, geom.Point{X: 10, Y: 10}, geom.Point{X: 1, Y: 0})
	out := CloseLoops([]geom.Polygon{p}, 2)
	if !out[0].Closed() {
		t.Error("path with endpoints within maxDist should be closed")
	}
}

func TestCloseLoopsLeavesFarEndpointsOpen(t *testing.T) {
	p := openPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, geom.Point{X: 10, Y: 10})
	out := CloseLoops([]geom.Polygon{p}, 2)
	if out[0].Closed() {
		t.Error("path with distant endpoints should remain open")
	}
}

func TestKeepLoopsFiltersOpenAndTinyPaths(t *testing.T) {
	closedTriangle := geom.Polygon{Edges: []geom.Edge{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 10, Y: 0}},
		{A: geom.Point{X: 10, Y: 0}, B: geom.Point{X: 5, Y: 10}},
		{A: geom.Point{X: 5, Y: 10}, B: geom.Point{X: 0, Y: 0}},
	}}
	unclosed := openPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	closedDigon := geom.Polygon{Edges: []geom.Edge{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 10, Y: 0}},
		{A: geom.Point{X: 10, Y: 0}, B: geom.Point{X: 0, Y: 0}},
	}}

	out := KeepLoops([]geom.Polygon{closedTriangle, unclosed, closedDigon})
	if len(out) != 1 {
		t.Fatalf("got %d surviving paths, want 1 (only the closed triangle)", len(out))
	}
}

func TestRemoveSmallPolygonsDropsNoiseLoops(t *testing.T) {
	tiny := geom.Polygon{Edges: []geom.Edge{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}},
		{A: geom.Point{X: 1, Y: 0}, B: geom.Point{X: 1, Y: 1}},
		{A: geom.Point{X: 1, Y: 1}, B: geom.Point{X: 0, Y: 0}},
	}}
	big := geom.Polygon{Edges: []geom.Edge{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 100, Y: 0}},
		{A: geom.Point{X: 100, Y: 0}, B: geom.Point{X: 50, Y: 100}},
		{A: geom.Point{X: 50, Y: 100}, B: geom.Point{X: 0, Y: 0}},
	}}

	out := RemoveSmallPolygons([]geom.Polygon{tiny, big}, 5)
	if len(out) != 1 {
		t.Fatalf("got %d polygons, want 1 (tiny noise loop dropped)", len(out))
	}
	if out[0].Edges[0].A != big.Edges[0].A {
		t.Error("the surviving polygon should be the big one")
	}
}
