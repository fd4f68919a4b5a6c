package poly

import (
	"image"

	"github.com/Jose-Trivino/make-poly-from-image/config"
	"github.com/Jose-Trivino/make-poly-from-image/contour"
	"github.com/Jose-Trivino/make-poly-from-image/geom"
	"github.com/Jose-Trivino/make-poly-from-image/logctx"
	"github.com/Jose-Trivino/make-poly-from-image/raster"
)

// RunContourPipeline walks src's Canny edge raster into closed, classified
// polygons: assemble, reduce, fuse ends, close loops, keep only loops, fuse
// near-duplicate points, drop leftover noise, then classify containment.
func RunContourPipeline(src image.Image, cfg *config.Contour, rc *logctx.RunContext) ([]geom.Polygon, *raster.Raster, error) {
	r := raster.New(src, cfg.BWThreshold)
	rc.Progress("contour: canvas %dx%d", r.Width, r.Height)

	edgeRaster := r.Canny(cfg.CannyTLower, cfg.CannyTUpper)

	edges, err := contour.BuildAdjacency(edgeRaster)
	if err != nil {
		return nil, r, err
	}
	rc.Progress("contour: %d pixel-adjacency edges", len(edges))

	paths := contour.AssemblePaths(edges)
	rc.Progress("contour: %d raw paths", len(paths))

	paths = contour.Reduce(paths, cfg.Reduction, cfg.ReductionParams)

	paths = contour.FuseEnds(paths, cfg.PathFuseDist)
	paths = contour.CloseLoops(paths, cfg.PathFuseDist)
	paths = contour.KeepLoops(paths)
	rc.Progress("contour: %d closed loops", len(paths))

	paths = contour.FusePoints(paths, cfg.PointFuseDist)
	paths = contour.RemoveSmallPolygons(paths, cfg.PointFuseDist)

	contour.Classify(paths)
	rc.Progress("contour: %d polygons after classification", len(paths))

	return paths, r, nil
}
