package service

import (
	"context"
	"errors"
	"testing"

	"github.com/renewvia/gridplan/internal/engine"
	"github.com/renewvia/gridplan/internal/model"
)

func newTestService(maxSpan float64) *PlanService {
	return NewPlanService(engine.New(engine.Config{MaxSpanMeters: maxSpan}))
}

func TestPlan_FullResponse(t *testing.T) {
	svc := newTestService(500)
	req := model.PlanRequest{
		Points: []model.PointInput{
			{Lat: 0, Lng: 0, Name: "Plant", Kind: "source"},
			{Lat: 0, Lng: 0.01, Name: "Village A"}, // untagged → terminal
		},
		Costs: model.CostParameters{
			PoleCost:               200,
			LowVoltageCostPerMeter: 3,
		},
	}

	resp, err := svc.Plan(context.Background(), req)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if resp.PointCount != 2 {
		t.Errorf("pointCount = %d, want 2", resp.PointCount)
	}
	// ~1112 m at a 500 m span → 2 poles, 3 edges, 4 nodes.
	if resp.NumPolesEstimate != 2 {
		t.Errorf("numPolesEstimate = %d, want 2", resp.NumPolesEstimate)
	}
	if len(resp.Nodes) != 4 || len(resp.Edges) != 3 {
		t.Errorf("nodes=%d edges=%d, want 4 and 3", len(resp.Nodes), len(resp.Edges))
	}
	if resp.Nodes[0].Kind != model.KindSource || resp.Nodes[0].Index != 0 {
		t.Errorf("node 0 = %+v, want the source at index 0", resp.Nodes[0])
	}
	if resp.PoleCostEstimate != 400 {
		t.Errorf("poleCostEstimate = %v, want 400", resp.PoleCostEstimate)
	}
	wantWire := resp.TotalLowVoltageMeters * 3
	if diff := resp.LowWireCostEstimate - wantWire; diff > 0.05 || diff < -0.05 {
		t.Errorf("lowWireCostEstimate = %v, want ≈%v", resp.LowWireCostEstimate, wantWire)
	}
	if resp.TotalCostEstimate != resp.PoleCostEstimate+resp.TotalWireCostEstimate {
		t.Errorf("totalCostEstimate = %v, want pole + wire = %v",
			resp.TotalCostEstimate, resp.PoleCostEstimate+resp.TotalWireCostEstimate)
	}
	if resp.UsedCosts.PoleCost != 200 {
		t.Errorf("usedCosts.poleCost = %v, want 200 echoed back", resp.UsedCosts.PoleCost)
	}
	for i, e := range resp.Edges {
		if e.Voltage != model.VoltageLow {
			t.Errorf("edge %d voltage = %q, want low", i, e.Voltage)
		}
	}
	if resp.TotalHighVoltageMeters != 0 || resp.HighWireCostEstimate != 0 {
		t.Errorf("high-voltage totals should be zero: %v m, cost %v",
			resp.TotalHighVoltageMeters, resp.HighWireCostEstimate)
	}
}

func TestPlan_EmptyRequest(t *testing.T) {
	svc := newTestService(500)
	_, err := svc.Plan(context.Background(), model.PlanRequest{})
	if !errors.Is(err, ErrNoPoints) {
		t.Errorf("err = %v, want ErrNoPoints", err)
	}
}

func TestPlan_EngineErrorsPassThrough(t *testing.T) {
	svc := newTestService(500)

	_, err := svc.Plan(context.Background(), model.PlanRequest{
		Points: []model.PointInput{{Lat: 0, Lng: 0, Kind: "source"}},
	})
	if !errors.Is(err, engine.ErrInsufficientPoints) {
		t.Errorf("single point: err = %v, want ErrInsufficientPoints", err)
	}

	_, err = svc.Plan(context.Background(), model.PlanRequest{
		Points: []model.PointInput{
			{Lat: 0, Lng: 0, Kind: "source"},
			{Lat: 0, Lng: 0.01, Kind: "source"},
		},
	})
	if !errors.Is(err, engine.ErrInvalidSourceCount) {
		t.Errorf("two sources: err = %v, want ErrInvalidSourceCount", err)
	}

	_, err = svc.Plan(context.Background(), model.PlanRequest{
		Points: []model.PointInput{
			{Lat: 0, Lng: 0, Kind: "source"},
			{Lat: 91, Lng: 0},
		},
	})
	if !errors.Is(err, engine.ErrInvalidCoordinate) {
		t.Errorf("bad latitude: err = %v, want ErrInvalidCoordinate", err)
	}
}

func TestPlan_RejectsPoleKind(t *testing.T) {
	svc := newTestService(500)
	_, err := svc.Plan(context.Background(), model.PlanRequest{
		Points: []model.PointInput{
			{Lat: 0, Lng: 0, Kind: "source"},
			{Lat: 0, Lng: 0.01, Kind: "pole"},
		},
	})
	if !errors.Is(err, ErrInvalidPointKind) {
		t.Errorf("err = %v, want ErrInvalidPointKind (pole is reserved)", err)
	}
}

func TestPlan_EdgeEndpointsMatchNodeCoordinates(t *testing.T) {
	svc := newTestService(1000)
	resp, err := svc.Plan(context.Background(), model.PlanRequest{
		Points: []model.PointInput{
			{Lat: 0, Lng: 0, Kind: "source"},
			{Lat: 0.0009, Lng: 0},
			{Lat: 0, Lng: 0.0009},
		},
	})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	coords := map[model.LatLng]bool{}
	for _, n := range resp.Nodes {
		coords[model.LatLng{Lat: n.Lat, Lng: n.Lng}] = true
	}
	for i, e := range resp.Edges {
		if !coords[e.Start] || !coords[e.End] {
			t.Errorf("edge %d endpoints %v→%v not found among node coordinates", i, e.Start, e.End)
		}
	}
}
