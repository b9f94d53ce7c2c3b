// Package service contains the request-scoped orchestration between the
// HTTP layer and the synthesis engine: DTO validation, kind defaulting,
// engine invocation, and response mapping.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/renewvia/gridplan/internal/engine"
	"github.com/renewvia/gridplan/internal/model"
)

// ─── Errors ─────────────────────────────────────────────────

var (
	// ErrNoPoints is returned when the request carries no points at all
	// (distinct from too few: usually a malformed body).
	ErrNoPoints = errors.New("request contains no points")

	// ErrInvalidPointKind is returned for a kind other than "source" or
	// "terminal". "pole" is reserved for synthesized points.
	ErrInvalidPointKind = errors.New(`point kind must be "source" or "terminal"`)
)

// ─── PlanService ────────────────────────────────────────────

// PlanService turns plan requests into plan responses. It owns no state
// beyond the engine reference; every call is independent, so concurrent
// requests need no coordination.
type PlanService struct {
	engine *engine.Engine
}

// NewPlanService creates a plan service backed by the given engine.
func NewPlanService(e *engine.Engine) *PlanService {
	return &PlanService{engine: e}
}

// Engine exposes the underlying engine (used by the CLI path).
func (s *PlanService) Engine() *engine.Engine {
	return s.engine
}

// Plan validates the request, runs the synthesis pipeline, and maps the
// topology and cost breakdown to the wire format. On failure no partial
// result is returned.
func (s *PlanService) Plan(ctx context.Context, req model.PlanRequest) (*model.PlanResponse, error) {
	points, err := mapPoints(req.Points)
	if err != nil {
		return nil, err
	}

	topo, breakdown, err := s.engine.Plan(points, req.Costs)
	if err != nil {
		return nil, err
	}

	resp := buildResponse(topo, breakdown, req.Costs.Sanitized(), len(points))

	log.Printf("[plan] %d input points → %d nodes (%d poles), %d edges, total cost %.2f",
		len(points), len(resp.Nodes), resp.NumPolesEstimate, len(resp.Edges), resp.TotalCostEstimate)

	return resp, nil
}

// mapPoints converts caller DTOs to domain points. Empty kinds default
// to terminal; "pole" and anything unknown are rejected.
func mapPoints(inputs []model.PointInput) ([]model.Point, error) {
	if len(inputs) == 0 {
		return nil, ErrNoPoints
	}
	points := make([]model.Point, 0, len(inputs))
	for i, in := range inputs {
		var kind model.PointKind
		switch in.Kind {
		case string(model.KindSource):
			kind = model.KindSource
		case string(model.KindTerminal), "":
			kind = model.KindTerminal
		default:
			return nil, fmt.Errorf("point %d: kind %q: %w", i, in.Kind, ErrInvalidPointKind)
		}
		points = append(points, model.Point{
			Lat:  in.Lat,
			Lng:  in.Lng,
			Name: in.Name,
			Kind: kind,
		})
	}
	return points, nil
}

// buildResponse flattens a topology and breakdown into the response DTO,
// rounding lengths and money to 2 decimals for presentation.
func buildResponse(topo *model.Topology, b *model.CostBreakdown, used model.CostParameters, pointCount int) *model.PlanResponse {
	nodes := make([]model.PlanNode, len(topo.Nodes))
	for i, n := range topo.Nodes {
		nodes[i] = model.PlanNode{
			Index: i,
			Name:  n.Name,
			Lat:   n.Lat,
			Lng:   n.Lng,
			Kind:  n.Kind,
		}
	}

	edges := make([]model.PlanEdge, len(topo.Edges))
	for i, e := range topo.Edges {
		edges[i] = model.PlanEdge{
			Start:        topo.Nodes[e.A].Loc(),
			End:          topo.Nodes[e.B].Loc(),
			LengthMeters: round2(e.LengthMeters),
			Voltage:      e.Voltage,
		}
	}

	return &model.PlanResponse{
		Nodes:                  nodes,
		Edges:                  edges,
		TotalLowVoltageMeters:  round2(b.LowVoltageMeters),
		TotalHighVoltageMeters: round2(b.HighVoltageMeters),
		NumPolesEstimate:       b.PoleCount,
		PoleCostEstimate:       round2(b.PoleCost),
		LowWireCostEstimate:    round2(b.LowWireCost),
		HighWireCostEstimate:   round2(b.HighWireCost),
		TotalWireCostEstimate:  round2(b.TotalWireCost),
		TotalCostEstimate:      round2(b.GrandTotal),
		PointCount:             pointCount,
		UsedCosts:              used,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
