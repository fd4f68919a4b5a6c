// Package polyfile writes the planar straight-line graph (.poly) format
// consumed by the downstream mesher: vertices, then edges wrapping each
// path back to its own first vertex, then hole-marker points.
package polyfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Jose-Trivino/make-poly-from-image/geom"
)

// Write serializes polygons as a single .poly document. Vertex and hole
// coordinates are written with Y negated, the mesher's convention.
func Write(w io.Writer, polygons []geom.Polygon) error {
	bw := bufio.NewWriter(w)

	var vertices []geom.Point
	var edgeLines []string
	var holeLines []string

	for _, p := range polygons {
		n := len(p.Edges)
		if n == 0 {
			continue
		}
		base := len(vertices)
		for i, e := range p.Edges {
			vertices = append(vertices, e.A)
			to := base + i + 1
			if i == n-1 {
				to = base
			}
			edgeLines = append(edgeLines, fmt.Sprintf("%d %d %d", len(edgeLines), base+i, to))
		}
		if p.HolePoint != nil {
			holeLines = append(holeLines, fmt.Sprintf("%d %d %d", len(holeLines), p.HolePoint.X, -p.HolePoint.Y))
		}
	}

	if _, err := fmt.Fprintf(bw, "%d 2 0 0\n", len(vertices)); err != nil {
		return err
	}
	for i, v := range vertices {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", i, v.X, -v.Y); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(bw, "%d 0\n", len(edgeLines)); err != nil {
		return err
	}
	for _, line := range edgeLines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	if len(holeLines) == 0 {
		// with no holes the whole hole section is a single "0" line.
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(bw, "%d 0\n", len(holeLines)); err != nil {
			return err
		}
		for _, line := range holeLines {
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	return bw.Flush()
}
