package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/renewvia/gridplan/internal/engine"
	"github.com/renewvia/gridplan/internal/model"
	"github.com/renewvia/gridplan/internal/service"
	"github.com/renewvia/gridplan/internal/site"
)

// loadAndPlan runs the full pipeline for a site file. A positive
// spanOverride wins over the site file's maxSpanMeters, which in turn
// wins over the engine default.
func loadAndPlan(sitePath string, spanOverride float64) (*model.PlanResponse, *site.Site, error) {
	st, err := site.Load(sitePath)
	if err != nil {
		return nil, nil, err
	}

	maxSpan := st.MaxSpanMeters
	if spanOverride > 0 {
		maxSpan = spanOverride
	}

	eng := engine.New(engine.Config{MaxSpanMeters: maxSpan})
	svc := service.NewPlanService(eng)

	req := model.PlanRequest{Costs: st.CostParameters()}
	for _, p := range st.Points() {
		req.Points = append(req.Points, model.PointInput{
			Lat:  p.Lat,
			Lng:  p.Lng,
			Name: p.Name,
			Kind: string(p.Kind),
		})
	}

	resp, err := svc.Plan(context.Background(), req)
	if err != nil {
		return nil, nil, fmt.Errorf("planning %s: %w", sitePath, err)
	}
	return resp, st, nil
}

func runPlan(sitePath string, spanOverride float64) error {
	resp, _, err := loadAndPlan(sitePath, spanOverride)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func runCost(sitePath string) error {
	resp, st, err := loadAndPlan(sitePath, 0)
	if err != nil {
		return err
	}

	name := st.Name
	if name == "" {
		name = sitePath
	}

	fmt.Printf("Site: %s\n", name)
	fmt.Printf("  Points:            %d input, %d poles added\n", resp.PointCount, resp.NumPolesEstimate)
	fmt.Printf("  Low-voltage wire:  %.2f m → %.2f\n", resp.TotalLowVoltageMeters, resp.LowWireCostEstimate)
	if resp.TotalHighVoltageMeters > 0 {
		fmt.Printf("  High-voltage wire: %.2f m → %.2f\n", resp.TotalHighVoltageMeters, resp.HighWireCostEstimate)
	}
	fmt.Printf("  Poles:             %d → %.2f\n", resp.NumPolesEstimate, resp.PoleCostEstimate)
	fmt.Printf("  Total estimate:    %.2f\n", resp.TotalCostEstimate)
	return nil
}
