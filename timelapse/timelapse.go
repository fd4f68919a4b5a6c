// Package timelapse accumulates one frame per refinement iteration onto a
// copy of the reference canvas and encodes the sequence as an animated
// GIF, the Go equivalent of the reference implementation's per-iteration
// draw_edges/draw_vertices calls feeding an accumulated GIF writer.
package timelapse

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/Jose-Trivino/make-poly-from-image/geom"
	"github.com/Jose-Trivino/make-poly-from-image/mesh"
	"github.com/Jose-Trivino/make-poly-from-image/raster"
)

// Recorder collects frames against a fixed background canvas.
type Recorder struct {
	base    draw.Image
	frames  []*image.Paletted
	delays  []int
	palette color.Palette
}

// vertexColor and edgeColor mark mesh elements over the background canvas.
var (
	vertexColor = color.RGBA{255, 0, 0, 255}
	edgeColor   = color.RGBA{0, 0, 255, 255}
)

// NewRecorder returns a Recorder drawing over a copy of r's selected canvas.
func NewRecorder(r *raster.Raster, source raster.Source) *Recorder {
	palette := color.Palette{
		color.White, color.Black, vertexColor, edgeColor,
	}
	return &Recorder{base: r.ToImage(source), palette: palette}
}

// CaptureMesh draws every live half-edge and vertex of m as one frame.
func (rec *Recorder) CaptureMesh(m *mesh.Mesh) {
	frame := rec.snapshotBase()
	drawMeshEdges(frame, m)
	drawMeshVertices(frame, m)
	rec.appendFrame(frame)
}

// CaptureBorder draws a set of extracted border polygons as one frame.
func (rec *Recorder) CaptureBorder(polys []geom.Polygon) {
	frame := rec.snapshotBase()
	for _, p := range polys {
		for _, e := range p.Edges {
			drawLine(frame, e.A, e.B, edgeColor)
		}
	}
	rec.appendFrame(frame)
}

func (rec *Recorder) snapshotBase() draw.Image {
	b := rec.base.Bounds()
	frame := image.NewRGBA(b)
	draw.Draw(frame, b, rec.base, b.Min, draw.Src)
	return frame
}

func (rec *Recorder) appendFrame(frame draw.Image) {
	b := frame.Bounds()
	paletted := image.NewPaletted(b, rec.palette)
	draw.Draw(paletted, b, frame, b.Min, draw.Src)
	rec.frames = append(rec.frames, paletted)
	rec.delays = append(rec.delays, 10)
}

func drawMeshEdges(frame draw.Image, m *mesh.Mesh) {
	for i := range m.Triangles {
		t := mesh.TriID(i)
		if !m.TriangleLive(t) {
			continue
		}
		pts := m.Points(t)
		drawLine(frame, pts[0], pts[1], edgeColor)
		drawLine(frame, pts[1], pts[2], edgeColor)
		drawLine(frame, pts[2], pts[0], edgeColor)
	}
}

func drawMeshVertices(frame draw.Image, m *mesh.Mesh) {
	for i := range m.Vertices {
		v := mesh.VertexID(i)
		if !m.VertexLive(v) {
			continue
		}
		p := m.VertexPoint(v)
		frame.Set(p.X, p.Y, vertexColor)
	}
}

// drawLine draws a pixel-stepped line from a to b using integer Bresenham,
// matching the corpus's from-scratch line drawing rather than reaching for
// a vector rasterizer for a one-pixel-wide debug overlay.
func drawLine(frame draw.Image, a, b geom.Point, c color.Color) {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		frame.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Encode writes the accumulated frames as an animated GIF.
func (rec *Recorder) Encode(w io.Writer) error {
	return gif.EncodeAll(w, &gif.GIF{
		Image: rec.frames,
		Delay: rec.delays,
	})
}
