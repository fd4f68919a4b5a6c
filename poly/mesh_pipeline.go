package poly

import (
	"image"

	"github.com/Jose-Trivino/make-poly-from-image/config"
	"github.com/Jose-Trivino/make-poly-from-image/geom"
	"github.com/Jose-Trivino/make-poly-from-image/logctx"
	"github.com/Jose-Trivino/make-poly-from-image/mesh"
	"github.com/Jose-Trivino/make-poly-from-image/raster"
	"github.com/Jose-Trivino/make-poly-from-image/refine"
)

// RunMeshPipeline builds a regular triangle mesh over src and refines it
// for cfg.Iterations passes, returning the border loops extracted from the
// final mesh.
func RunMeshPipeline(src image.Image, cfg *config.MeshParams, rc *logctx.RunContext, onFrame refine.FrameFunc) ([]geom.Polygon, *raster.Raster, error) {
	r := raster.New(src, cfg.BWThreshold)
	rc.Progress("mesh: canvas %dx%d, grid %dx%d", r.Width, r.Height, cfg.GridH, cfg.GridV)

	m := mesh.Build(r, cfg.GridH, cfg.GridV, cfg.MinEdgeLen, rc)
	polys, err := refine.Run(m, cfg.Iterations, rc, onFrame)
	if err != nil {
		return nil, r, err
	}

	rc.Progress("mesh: %d border loops", len(polys))
	return polys, r, nil
}
