// Package engine implements the network synthesis engine for low-voltage
// mini-grid distribution: candidate graph construction over geographic
// points, minimum-spanning-tree synthesis, span-feasibility subdivision,
// and cost estimation.
//
// The engine is pure and request-scoped: it performs no I/O, holds no
// mutable state across calls, and the same input always yields the same
// topology, so concurrent invocations need no coordination.
package engine

import "github.com/renewvia/gridplan/internal/model"

// ─── Configuration ──────────────────────────────────────────

const (
	// DefaultMaxSpanMeters is the engineering limit on the wire span
	// between consecutive supports. 50 m is a conservative value for
	// low-voltage overhead lines on wooden poles.
	DefaultMaxSpanMeters = 50.0

	// DefaultEarthRadiusM is the mean Earth radius used for geodesic
	// distances.
	DefaultEarthRadiusM = 6_371_000.0
)

// Config holds the engine's tunables. Both values are explicit
// configuration (not hidden constants) so tests can exercise boundary
// behavior, e.g. a tiny max span forcing many subdivisions.
type Config struct {
	MaxSpanMeters float64
	EarthRadiusM  float64
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		MaxSpanMeters: DefaultMaxSpanMeters,
		EarthRadiusM:  DefaultEarthRadiusM,
	}
}

// ─── Engine ─────────────────────────────────────────────────

// Engine synthesizes pole-and-wire topologies. Safe for concurrent use.
type Engine struct {
	cfg Config
}

// New creates an engine, substituting defaults for non-positive config
// values.
func New(cfg Config) *Engine {
	if cfg.MaxSpanMeters <= 0 {
		cfg.MaxSpanMeters = DefaultMaxSpanMeters
	}
	if cfg.EarthRadiusM <= 0 {
		cfg.EarthRadiusM = DefaultEarthRadiusM
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Plan runs the full synthesis pipeline over the caller's points:
//
//  1. validate the point set (count, single source, coordinate ranges)
//  2. build the complete candidate graph weighted by geodesic distance
//  3. synthesize the minimum spanning tree
//  4. subdivide edges that exceed the maximum span, inserting poles
//  5. estimate cost from the final topology and the unit costs
//
// The returned topology orders nodes source-first, then the original
// terminals in input order, then synthesized poles. On error no partial
// result is returned.
func (e *Engine) Plan(points []model.Point, costs model.CostParameters) (*model.Topology, *model.CostBreakdown, error) {
	if err := validatePoints(points); err != nil {
		return nil, nil, err
	}

	ordered := orderSourceFirst(points)
	candidates := e.buildCandidateGraph(ordered)
	tree := minimumSpanningTree(len(ordered), candidates)
	nodes, edges := e.subdivide(ordered, tree)

	topo := &model.Topology{Nodes: nodes, Edges: edges}
	breakdown := EstimateCost(topo, costs)
	return topo, breakdown, nil
}

// orderSourceFirst returns a copy of points with the source moved to
// index 0 and terminals keeping their relative input order. Terminal
// kinds are normalized so untagged points read back as terminals.
func orderSourceFirst(points []model.Point) []model.Point {
	out := make([]model.Point, 0, len(points))
	for _, p := range points {
		if p.Kind == model.KindSource {
			out = append(out, p)
			break
		}
	}
	for _, p := range points {
		if p.Kind == model.KindSource {
			continue
		}
		p.Kind = model.KindTerminal
		out = append(out, p)
	}
	return out
}
