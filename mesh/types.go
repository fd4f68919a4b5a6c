package mesh

import (
	"github.com/Jose-Trivino/make-poly-from-image/geom"
	"github.com/Jose-Trivino/make-poly-from-image/raster"
)

// Vertex is an arena element holding a pixel position, the outgoing
// half-edges incident to it, the directions it is allowed to move along,
// and a cached approximation error summed from its incident triangles.
type Vertex struct {
	X, Y     int
	Outgoing []HalfEdgeID
	Movement []geom.Point
	Err      float64
	Broken   bool
	live     bool
}

// Point returns v's position as a geom.Point.
func (v *Vertex) Point() geom.Point {
	return geom.Point{X: v.X, Y: v.Y}
}

// HalfEdge is a directed arena element: it runs from Start to End, belongs
// to Triangle, and if it borders another triangle its Twin runs the
// opposite direction over the same two vertices. Prev/Next link it into its
// triangle's 3-cycle.
type HalfEdge struct {
	Start, End VertexID
	Triangle   TriID
	Twin       HalfEdgeID
	Prev, Next HalfEdgeID
	IsBorder   bool
	live       bool
}

// Span is one scanline row of a rasterized triangle: all pixels with
// X0 <= x <= X1 on row Y lie inside the triangle.
type Span struct {
	Y, X0, X1 int
}

// Triangle is an arena element: the ordered 3-cycle of half-edges bounding
// it, plus the cached scanline coverage and approximation error computed
// from the reference raster.
type Triangle struct {
	Edges [3]HalfEdgeID
	Spans []Span
	Avg   float64
	Err   float64
	New   bool
	live  bool
}

// Logger receives progress and warning messages from refinement operators.
// A threaded collaborator rather than a package-level default, matching the
// "no module globals" discipline the rest of this module follows.
type Logger interface {
	Progress(format string, args ...interface{})
	Warning(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Progress(string, ...interface{}) {}
func (nopLogger) Warning(string, ...interface{})  {}

// Mesh is the half-edge mesh: three parallel arenas plus the reference
// raster its triangles score error against.
type Mesh struct {
	Raster   *raster.Raster
	MinELen  float64
	TArea    float64
	Vertices []Vertex
	HalfEdges []HalfEdge
	Triangles []Triangle

	freeV []VertexID
	freeE []HalfEdgeID
	freeT []TriID

	log Logger
}

// SetLogger installs the collaborator used for progress/warning messages.
// A nil logger restores the no-op default.
func (m *Mesh) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	m.log = l
}

// logger returns the installed Logger, falling back to a no-op so a Mesh
// built without SetLogger is still safe to use.
func (m *Mesh) logger() Logger {
	if m.log == nil {
		return nopLogger{}
	}
	return m.log
}
