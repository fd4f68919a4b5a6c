// Package refine drives the half-edge mesh through its refinement passes:
// relocate, rescore, error-directed flip, point insertion, angle-directed
// flip, edge collapse — repeated for a fixed number of iterations and
// followed by border extraction.
package refine

import (
	"fmt"

	"github.com/Jose-Trivino/make-poly-from-image/geom"
	"github.com/Jose-Trivino/make-poly-from-image/logctx"
	"github.com/Jose-Trivino/make-poly-from-image/mesh"
)

// FrameFunc is called once per iteration (including the final,
// body-skipping bookkeeping iteration) so a caller can capture a timelapse
// frame against the mesh's current state. iter is the 0-based iteration
// index; final reports whether this is the last call.
type FrameFunc func(m *mesh.Mesh, iter int, final bool)

// Run performs Iterations refinement passes over m and returns the
// polygons extracted from the final border walk. A panic escaping any pass
// is recovered, logged through rc, and reported as an error — refinement's
// only tolerated failure boundary; every operator-level refusal inside a
// pass remains an ordinary boolean return, never a panic.
func Run(m *mesh.Mesh, iterations int, rc *logctx.RunContext, onFrame FrameFunc) (polys []geom.Polygon, err error) {
	defer func() {
		if r := recover(); r != nil {
			rc.Error("refinement aborted: %v", r)
			polys = nil
			err = fmt.Errorf("refinement aborted: %v", r)
		}
	}()

	m.UpdateAll()

	for counter := 0; counter <= iterations; counter++ {
		final := counter == iterations
		if final {
			m.BorderUpdate()
		}

		vErr, tErr := m.MeanErrors()
		rc.RecordIterationErrors(vErr, tErr)
		if onFrame != nil {
			onFrame(m, counter, final)
		}
		if final {
			break
		}

		const step = 1
		if counter < 15 {
			m.RelocateAll(step)
		} else {
			m.RelocateSeq(step)
		}
		m.UpdateAll()

		rc.FlipsByError += m.FlipByError()

		if counter > 5 && counter < iterations-5 {
			if counter%2 == 0 {
				rc.TriInserts += m.InsertPoints()
			} else {
				rc.VertexInserts += m.InsertPointsAtStuckVertex(10)
			}
		}

		rc.FlipsByAngle += m.FlipByAngle()
		rc.Collapses += m.Collapse()

		rc.Progress("iteration %d/%d: vertices=%d triangles=%d vErr=%.2f tErr=%.2f",
			counter, iterations, m.LiveVertexCount(), m.LiveTriangleCount(), vErr, tErr)
	}

	return m.BorderGet(), nil
}
