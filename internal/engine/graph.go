package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/renewvia/gridplan/internal/model"
	"github.com/renewvia/gridplan/pkg/geo"
)

// ─── Errors ─────────────────────────────────────────────────

var (
	// ErrInsufficientPoints is returned when fewer than 2 points are
	// supplied. A network needs at least a source and one terminal.
	ErrInsufficientPoints = errors.New("need at least 2 points with valid lat/lng")

	// ErrInvalidSourceCount is returned when zero or more than one point
	// is tagged as the source.
	ErrInvalidSourceCount = errors.New("exactly one point must be marked as source")

	// ErrInvalidCoordinate is returned for NaN or out-of-range lat/lng.
	// The engine rejects these rather than producing garbage geometry.
	ErrInvalidCoordinate = errors.New("latitude must be in [-90,90] and longitude in [-180,180]")
)

// MinNetworkPoints is the smallest meaningful input size: a source and
// one terminal.
const MinNetworkPoints = 2

// candidateEdge is a weighted edge of the complete candidate graph.
// Endpoints are node indices with a < b.
type candidateEdge struct {
	a, b    int
	lengthM float64
}

// validatePoints checks the engine preconditions on the input point set.
func validatePoints(points []model.Point) error {
	if len(points) < MinNetworkPoints {
		return fmt.Errorf("%w (got %d)", ErrInsufficientPoints, len(points))
	}

	sources := 0
	for i, p := range points {
		if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) ||
			p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
			return fmt.Errorf("point %d (%.6f, %.6f): %w", i, p.Lat, p.Lng, ErrInvalidCoordinate)
		}
		if p.Kind == model.KindSource {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidSourceCount, sources)
	}
	return nil
}

// buildCandidateGraph produces the complete undirected weighted graph
// over the given points: every unordered pair is an edge candidate,
// weighted by geodesic distance.
//
// Edges are emitted in ascending (a, b) index order; the MST stage
// relies on this for its deterministic tie-break.
//
// Complexity: O(n²) edges — acceptable at mini-grid scale (tens to low
// hundreds of customers), so no spatial indexing is used.
func (e *Engine) buildCandidateGraph(points []model.Point) []candidateEdge {
	n := len(points)
	edges := make([]candidateEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, candidateEdge{
				a:       i,
				b:       j,
				lengthM: geo.DistanceOnSphereM(points[i].Loc(), points[j].Loc(), e.cfg.EarthRadiusM),
			})
		}
	}
	return edges
}
