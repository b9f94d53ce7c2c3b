// Package model contains domain models for the mini-grid network planner.
// All entities are request-scoped: a plan request creates Points, the engine
// derives the Topology and CostBreakdown, the response serializes them, and
// nothing survives past the response.
package model

// ─── Enums ──────────────────────────────────────────────────

// PointKind discriminates the role of a point in the network.
type PointKind string

const (
	// KindSource is the power source (solar generation site).
	// Exactly one source exists per plan request.
	KindSource PointKind = "source"

	// KindTerminal is a customer (load) location supplied by the caller.
	KindTerminal PointKind = "terminal"

	// KindPole is an intermediate utility pole synthesized by the span
	// subdivision pass. Callers never supply pole points.
	KindPole PointKind = "pole"
)

// VoltageClass distinguishes wire cost/capacity tiers. Current networks
// are single-tier: every synthesized edge is low voltage. The high tier
// is modeled for forward compatibility but never assigned.
type VoltageClass string

const (
	VoltageLow  VoltageClass = "low"
	VoltageHigh VoltageClass = "high"
)

// ─── Geometry ───────────────────────────────────────────────

// LatLng represents a WGS-84 geographic coordinate (EPSG:4326).
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point is a located node in the distribution network.
type Point struct {
	Lat  float64   `json:"lat"`
	Lng  float64   `json:"lng"`
	Name string    `json:"name,omitempty"`
	Kind PointKind `json:"kind"`
}

// Loc returns the point's coordinate pair.
func (p Point) Loc() LatLng {
	return LatLng{Lat: p.Lat, Lng: p.Lng}
}

// Edge is an undirected wire segment between two nodes of a Topology,
// referenced by their node indices.
type Edge struct {
	A            int          `json:"a"`
	B            int          `json:"b"`
	LengthMeters float64      `json:"lengthMeters"`
	Voltage      VoltageClass `json:"voltage"`
}

// Topology is the synthesized pole-and-wire network. Invariants:
//   - Nodes[0] is the source; original terminals follow in input order;
//     synthesized poles come last.
//   - Edges form a tree: exactly len(Nodes)-1 edges, connected, acyclic.
//   - Every edge length is within the configured maximum span.
type Topology struct {
	Nodes []Point `json:"nodes"`
	Edges []Edge  `json:"edges"`
}

// TotalWireMeters sums the length of every edge.
func (t *Topology) TotalWireMeters() float64 {
	total := 0.0
	for _, e := range t.Edges {
		total += e.LengthMeters
	}
	return total
}

// PoleCount returns the number of synthesized pole nodes.
// Source and terminal support structures are not counted.
func (t *Topology) PoleCount() int {
	n := 0
	for _, p := range t.Nodes {
		if p.Kind == KindPole {
			n++
		}
	}
	return n
}

// ─── Cost Model ─────────────────────────────────────────────

// CostParameters are the caller-supplied unit costs. All values must be
// ≥ 0 and default to 0 when unspecified; the engine still returns
// geometry when every cost is zero.
type CostParameters struct {
	PoleCost                float64 `json:"poleCost"`
	LowVoltageCostPerMeter  float64 `json:"lowVoltageCostPerMeter"`
	HighVoltageCostPerMeter float64 `json:"highVoltageCostPerMeter"`
}

// Sanitized returns a copy with negative unit costs clamped to zero.
func (c CostParameters) Sanitized() CostParameters {
	out := c
	if out.PoleCost < 0 {
		out.PoleCost = 0
	}
	if out.LowVoltageCostPerMeter < 0 {
		out.LowVoltageCostPerMeter = 0
	}
	if out.HighVoltageCostPerMeter < 0 {
		out.HighVoltageCostPerMeter = 0
	}
	return out
}

// CostBreakdown is the derived, read-only costing of a Topology.
// It is recomputed fresh on every request and never persisted.
type CostBreakdown struct {
	LowVoltageMeters  float64
	HighVoltageMeters float64
	PoleCount         int
	PoleCost          float64
	LowWireCost       float64
	HighWireCost      float64
	TotalWireCost     float64
	GrandTotal        float64
}

// ─── Plan API DTOs ──────────────────────────────────────────

// PointInput is a caller-supplied point in a plan request. Kind may be
// "source" or "terminal"; an empty kind defaults to terminal. Exactly
// one point must be marked source.
type PointInput struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name,omitempty"`
	Kind string  `json:"kind,omitempty"`
}

// PlanRequest is the JSON body for POST /api/v1/plan. The shape mirrors
// the payload the dashboard frontend sends.
type PlanRequest struct {
	Points []PointInput   `json:"points"`
	Costs  CostParameters `json:"costs"`
}

// PlanNode is one node of the response topology, tagged with its stable
// index in the node list.
type PlanNode struct {
	Index int       `json:"index"`
	Name  string    `json:"name,omitempty"`
	Lat   float64   `json:"lat"`
	Lng   float64   `json:"lng"`
	Kind  PointKind `json:"kind"`
}

// PlanEdge is one wire segment of the response topology.
type PlanEdge struct {
	Start        LatLng       `json:"start"`
	End          LatLng       `json:"end"`
	LengthMeters float64      `json:"lengthMeters"`
	Voltage      VoltageClass `json:"voltage"`
}

// PlanResponse is the full plan result: node list, edge list, and the
// cost breakdown. Monetary and length fields are rounded to 2 decimals.
type PlanResponse struct {
	Nodes []PlanNode `json:"nodes"`
	Edges []PlanEdge `json:"edges"`

	TotalLowVoltageMeters  float64 `json:"totalLowVoltageMeters"`
	TotalHighVoltageMeters float64 `json:"totalHighVoltageMeters"`
	NumPolesEstimate       int     `json:"numPolesEstimate"`
	PoleCostEstimate       float64 `json:"poleCostEstimate"`
	LowWireCostEstimate    float64 `json:"lowWireCostEstimate"`
	HighWireCostEstimate   float64 `json:"highWireCostEstimate"`
	TotalWireCostEstimate  float64 `json:"totalWireCostEstimate"`
	TotalCostEstimate      float64 `json:"totalCostEstimate"`

	PointCount int            `json:"pointCount"`
	UsedCosts  CostParameters `json:"usedCosts"`
}
