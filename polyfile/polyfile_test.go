package polyfile

import (
	"bytes"
	"testing"

	"github.com/Jose-Trivino/make-poly-from-image/geom"
)

func triangle(withHole bool) geom.Polygon {
	p := geom.Polygon{Edges: []geom.Edge{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 10, Y: 0}},
		{A: geom.Point{X: 10, Y: 0}, B: geom.Point{X: 5, Y: 10}},
		{A: geom.Point{X: 5, Y: 10}, B: geom.Point{X: 0, Y: 0}},
	}}
	if withHole {
		hp := geom.Point{X: 5, Y: 3}
		p.HolePoint = &hp
	}
	return p
}

func TestWriteReadRoundTripNoHoles(t *testing.T) {
	var buf bytes.Buffer
	polys := []geom.Polygon{triangle(false)}
	if err := Write(&buf, polys); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(data.Vertices) != 3 {
		t.Errorf("got %d vertices, want 3", len(data.Vertices))
	}
	if len(data.Edges) != 3 {
		t.Errorf("got %d edges, want 3", len(data.Edges))
	}
	if len(data.Holes) != 0 {
		t.Errorf("got %d holes, want 0", len(data.Holes))
	}
	if data.Vertices[0] != (Point{X: 0, Y: 0}) {
		t.Errorf("first vertex = %v, want {0 0}", data.Vertices[0])
	}
}

func TestWriteReadRoundTripWithHole(t *testing.T) {
	var buf bytes.Buffer
	polys := []geom.Polygon{triangle(true)}
	if err := Write(&buf, polys); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(data.Holes) != 1 {
		t.Fatalf("got %d holes, want 1", len(data.Holes))
	}
	if data.Holes[0] != (Point{X: 5, Y: 3}) {
		t.Errorf("hole point = %v, want {5 3}", data.Holes[0])
	}
}

func TestWriteNegatesYCoordinate(t *testing.T) {
	var buf bytes.Buffer
	polys := []geom.Polygon{triangle(false)}
	if err := Write(&buf, polys); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	// Read un-negates Y back to the original image coordinate, so a
	// round trip through Write+Read must reproduce the original points.
	for i, want := range []Point{{0, 0}, {10, 0}, {5, 10}} {
		if data.Vertices[i] != want {
			t.Errorf("vertex %d = %v, want %v", i, data.Vertices[i], want)
		}
	}
}

func TestWriteEdgeWrapsLastToFirstPerPath(t *testing.T) {
	var buf bytes.Buffer
	polys := []geom.Polygon{triangle(false)}
	Write(&buf, polys)

	data, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	last := data.Edges[len(data.Edges)-1]
	if last[1] != 0 {
		t.Errorf("last edge should wrap back to vertex 0, got edge %v", last)
	}
}

func TestWriteMultiplePathsConcatenatesVertexIndices(t *testing.T) {
	var buf bytes.Buffer
	polys := []geom.Polygon{triangle(false), triangle(true)}
	if err := Write(&buf, polys); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(data.Vertices) != 6 {
		t.Fatalf("got %d vertices across two triangles, want 6", len(data.Vertices))
	}
	if len(data.Edges) != 6 {
		t.Fatalf("got %d edges across two triangles, want 6", len(data.Edges))
	}
	// the second path's edges must reference the second path's own base
	// index (3), not wrap into the first path's vertices.
	secondPathFirstEdge := data.Edges[3]
	if secondPathFirstEdge[0] != 3 {
		t.Errorf("second path's first edge starts at vertex %d, want 3", secondPathFirstEdge[0])
	}
}
