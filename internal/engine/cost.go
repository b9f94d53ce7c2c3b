package engine

import "github.com/renewvia/gridplan/internal/model"

// EstimateCost computes the cost breakdown for a final topology.
//
// Wire length is accumulated per voltage class and priced with the
// matching per-meter rate. Pole count bills only synthesized pole
// nodes: source and terminal sites are assumed to carry their own
// support structure, so they are excluded — a scope simplification
// inherited from the upstream costing model, possibly an oversight
// there, but preserved as-is.
//
// Never fails: with all-zero CostParameters the breakdown is zero and
// the geometry still stands on its own.
func EstimateCost(t *model.Topology, params model.CostParameters) *model.CostBreakdown {
	costs := params.Sanitized()

	var lowM, highM float64
	for _, e := range t.Edges {
		switch e.Voltage {
		case model.VoltageHigh:
			highM += e.LengthMeters
		default:
			lowM += e.LengthMeters
		}
	}

	poleCount := t.PoleCount()

	b := &model.CostBreakdown{
		LowVoltageMeters:  lowM,
		HighVoltageMeters: highM,
		PoleCount:         poleCount,
		PoleCost:          float64(poleCount) * costs.PoleCost,
		LowWireCost:       lowM * costs.LowVoltageCostPerMeter,
		HighWireCost:      highM * costs.HighVoltageCostPerMeter,
	}
	b.TotalWireCost = b.LowWireCost + b.HighWireCost
	b.GrandTotal = b.PoleCost + b.TotalWireCost
	return b
}
