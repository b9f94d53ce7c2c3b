package engine

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/renewvia/gridplan/internal/model"
)

func source(lat, lng float64) model.Point {
	return model.Point{Lat: lat, Lng: lng, Name: "Source", Kind: model.KindSource}
}

func terminal(lat, lng float64) model.Point {
	return model.Point{Lat: lat, Lng: lng, Kind: model.KindTerminal}
}

// isTree verifies the tree invariant: exactly n-1 edges, connected, acyclic.
func isTree(t *model.Topology) bool {
	n := len(t.Nodes)
	if len(t.Edges) != n-1 {
		return false
	}
	uf := newUnionFind(n)
	for _, e := range t.Edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return false
		}
		if !uf.union(e.A, e.B) {
			return false // cycle
		}
	}
	return true // n-1 cycle-free edges over n nodes ⇒ connected
}

func TestPlan_TwoPointsWithSubdivision(t *testing.T) {
	// Source at (0,0), terminal 0.01° east ≈ 1112 m. With a 500 m max
	// span: ceil(1112/500) = 3 segments, so 2 poles and 3 edges.
	e := New(Config{MaxSpanMeters: 500})
	topo, _, err := e.Plan([]model.Point{
		source(0, 0),
		terminal(0, 0.01),
	}, model.CostParameters{})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if got := topo.PoleCount(); got != 2 {
		t.Errorf("pole count = %d, want 2", got)
	}
	if len(topo.Nodes) != 4 {
		t.Errorf("node count = %d, want 4", len(topo.Nodes))
	}
	if len(topo.Edges) != 3 {
		t.Errorf("edge count = %d, want 3", len(topo.Edges))
	}
	for i, edge := range topo.Edges {
		if math.Abs(edge.LengthMeters-370.65) > 1.0 {
			t.Errorf("edge %d length = %.2f m, want ≈370.65 m", i, edge.LengthMeters)
		}
	}
	if !isTree(topo) {
		t.Errorf("topology is not a tree")
	}
}

func TestPlan_RightTrianglePicksShortSides(t *testing.T) {
	// Source at origin, terminals ~100 m north and ~100 m east. The MST
	// must take the two ~100 m legs, never the ~141 m hypotenuse.
	e := New(Config{MaxSpanMeters: 1000})
	topo, _, err := e.Plan([]model.Point{
		source(0, 0),
		terminal(0.0009, 0), // ~100 m north
		terminal(0, 0.0009), // ~100 m east
	}, model.CostParameters{})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if got := topo.PoleCount(); got != 0 {
		t.Errorf("pole count = %d, want 0", got)
	}
	total := topo.TotalWireMeters()
	if math.Abs(total-200.2) > 1.0 {
		t.Errorf("total wire = %.2f m, want ≈200 m (two legs)", total)
	}
	for _, edge := range topo.Edges {
		if edge.A != 0 && edge.B != 0 {
			t.Errorf("edge %d-%d does not touch the source; hypotenuse was chosen", edge.A, edge.B)
		}
	}
}

func TestPlan_SourceFirstThenTerminalsThenPoles(t *testing.T) {
	e := New(Config{MaxSpanMeters: 500})
	pts := []model.Point{
		{Lat: 0, Lng: 0.01, Name: "Amina", Kind: model.KindTerminal},
		{Lat: 0, Lng: 0, Name: "Plant", Kind: model.KindSource},
		{Lat: 0.001, Lng: 0.01, Name: "Joseph"}, // untagged → terminal
	}
	topo, _, err := e.Plan(pts, model.CostParameters{})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if topo.Nodes[0].Kind != model.KindSource || topo.Nodes[0].Name != "Plant" {
		t.Errorf("node 0 = %+v, want the source", topo.Nodes[0])
	}
	if topo.Nodes[1].Name != "Amina" || topo.Nodes[2].Name != "Joseph" {
		t.Errorf("terminals out of input order: %q, %q", topo.Nodes[1].Name, topo.Nodes[2].Name)
	}
	if topo.Nodes[2].Kind != model.KindTerminal {
		t.Errorf("untagged point kind = %q, want terminal", topo.Nodes[2].Kind)
	}
	for _, n := range topo.Nodes[3:] {
		if n.Kind != model.KindPole {
			t.Errorf("trailing node %q kind = %q, want pole", n.Name, n.Kind)
		}
	}
}

func TestPlan_SpanBoundHolds(t *testing.T) {
	// Random clusters at village scale; every final edge must be within
	// the span limit and the result must stay a tree.
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(30)
		pts := []model.Point{source(-1.28, 36.82)}
		for i := 1; i < n; i++ {
			pts = append(pts, terminal(
				-1.28+rng.Float64()*0.02,
				36.82+rng.Float64()*0.02,
			))
		}

		maxSpan := 30 + rng.Float64()*200
		e := New(Config{MaxSpanMeters: maxSpan})
		topo, _, err := e.Plan(pts, model.CostParameters{})
		if err != nil {
			t.Fatalf("trial %d: Plan returned error: %v", trial, err)
		}

		for _, edge := range topo.Edges {
			if edge.LengthMeters > maxSpan+1e-6 {
				t.Errorf("trial %d: edge length %.4f m exceeds max span %.4f m",
					trial, edge.LengthMeters, maxSpan)
			}
		}
		if !isTree(topo) {
			t.Errorf("trial %d: topology is not a tree", trial)
		}
	}
}

func TestPlan_Deterministic(t *testing.T) {
	pts := []model.Point{
		source(0.5, 32.5),
		terminal(0.501, 32.501),
		terminal(0.502, 32.499),
		terminal(0.4995, 32.5025),
	}
	e := New(Config{MaxSpanMeters: 60})

	first, _, err := e.Plan(pts, model.CostParameters{PoleCost: 100})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, _, err := e.Plan(pts, model.CostParameters{PoleCost: 100})
		if err != nil {
			t.Fatalf("Plan returned error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced a different topology", i)
		}
	}
}

func TestPlan_EquidistantTieBreakIsStable(t *testing.T) {
	// Two terminals exactly symmetric about the source: both candidate
	// edges from the source have equal length. Output must still be
	// reproducible run over run.
	pts := []model.Point{
		source(0, 0),
		terminal(0, 0.001),
		terminal(0, -0.001),
	}
	e := New(Config{MaxSpanMeters: 1000})
	first, _, err := e.Plan(pts, model.CostParameters{})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _, _ := e.Plan(pts, model.CostParameters{})
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("tie-break not deterministic on run %d", i)
		}
	}
}

func TestNew_DefaultsOnNonPositiveConfig(t *testing.T) {
	e := New(Config{})
	if e.Config().MaxSpanMeters != DefaultMaxSpanMeters {
		t.Errorf("MaxSpanMeters = %v, want default %v", e.Config().MaxSpanMeters, DefaultMaxSpanMeters)
	}
	if e.Config().EarthRadiusM != DefaultEarthRadiusM {
		t.Errorf("EarthRadiusM = %v, want default %v", e.Config().EarthRadiusM, DefaultEarthRadiusM)
	}
}
