package engine

import (
	"fmt"
	"math"

	"github.com/renewvia/gridplan/internal/model"
	"github.com/renewvia/gridplan/pkg/geo"
)

// spanTolerance absorbs floating-point noise when deciding whether an
// edge already fits the span limit: an edge measuring within a relative
// 1e-9 of the limit must not trigger a pointless subdivision.
const spanTolerance = 1e-9

// subdivide walks each MST edge and, where its length exceeds the
// configured maximum span, replaces it with a chain of shorter edges by
// inserting k = ceil(length/maxSpan) - 1 pole nodes evenly spaced along
// the edge (linear lat/lng interpolation — see geo.Lerp).
//
// Poles are appended after the original nodes and numbered sequentially
// in the order their parent edge is processed, walking from the edge's
// lower-index endpoint toward the higher-index one. An edge exactly at
// the span limit is left untouched.
func (e *Engine) subdivide(nodes []model.Point, tree []candidateEdge) ([]model.Point, []model.Edge) {
	maxSpan := e.cfg.MaxSpanMeters

	out := make([]model.Point, len(nodes))
	copy(out, nodes)

	edges := make([]model.Edge, 0, len(tree))
	poleSeq := 0

	for _, te := range tree {
		segments := int(math.Ceil(te.lengthM/maxSpan - spanTolerance))
		if segments <= 1 {
			edges = append(edges, model.Edge{
				A:            te.a,
				B:            te.b,
				LengthMeters: te.lengthM,
				Voltage:      model.VoltageLow,
			})
			continue
		}

		start := out[te.a].Loc()
		end := out[te.b].Loc()

		prev := te.a
		for s := 1; s < segments; s++ {
			poleSeq++
			loc := geo.Lerp(start, end, float64(s)/float64(segments))
			out = append(out, model.Point{
				Lat:  loc.Lat,
				Lng:  loc.Lng,
				Name: fmt.Sprintf("Pole %d", poleSeq),
				Kind: model.KindPole,
			})
			poleIdx := len(out) - 1
			edges = append(edges, model.Edge{
				A:            prev,
				B:            poleIdx,
				LengthMeters: geo.DistanceOnSphereM(out[prev].Loc(), loc, e.cfg.EarthRadiusM),
				Voltage:      model.VoltageLow,
			})
			prev = poleIdx
		}
		edges = append(edges, model.Edge{
			A:            prev,
			B:            te.b,
			LengthMeters: geo.DistanceOnSphereM(out[prev].Loc(), end, e.cfg.EarthRadiusM),
			Voltage:      model.VoltageLow,
		})
	}

	return out, edges
}
