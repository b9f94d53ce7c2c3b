// Package site loads mini-grid site definition files (YAML) for the
// offline CLI: one source, the customer terminals, and the unit costs.
package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/renewvia/gridplan/internal/model"
)

// Point is a named location in a site file.
type Point struct {
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
	Name string  `yaml:"name,omitempty"`
}

// Costs mirrors the API cost parameters in YAML form.
type Costs struct {
	PoleCost                float64 `yaml:"poleCost"`
	LowVoltageCostPerMeter  float64 `yaml:"lowVoltageCostPerMeter"`
	HighVoltageCostPerMeter float64 `yaml:"highVoltageCostPerMeter"`
}

// Site is a full site definition.
//
// Example:
//
//	name: Lodwar North
//	maxSpanMeters: 45
//	source: {lat: 3.1191, lng: 35.5973, name: Solar Plant}
//	terminals:
//	  - {lat: 3.1202, lng: 35.5981, name: Clinic}
//	  - {lat: 3.1188, lng: 35.5994}
//	costs:
//	  poleCost: 180
//	  lowVoltageCostPerMeter: 2.4
type Site struct {
	Name          string  `yaml:"name,omitempty"`
	MaxSpanMeters float64 `yaml:"maxSpanMeters,omitempty"` // 0 = use engine default
	Source        *Point  `yaml:"source"`
	Terminals     []Point `yaml:"terminals"`
	Costs         Costs   `yaml:"costs"`
}

// Load reads and validates a site file.
func Load(path string) (*Site, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("site: reading %s: %w", path, err)
	}

	var s Site
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("site: parsing %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("site: %s: %w", path, err)
	}
	return &s, nil
}

func (s *Site) validate() error {
	if s.Source == nil {
		return fmt.Errorf("source is required")
	}
	if len(s.Terminals) == 0 {
		return fmt.Errorf("at least one terminal is required")
	}
	if s.MaxSpanMeters < 0 {
		return fmt.Errorf("maxSpanMeters must be >= 0, got %v", s.MaxSpanMeters)
	}
	return nil
}

// Points returns the site's locations as engine input, source first.
func (s *Site) Points() []model.Point {
	points := make([]model.Point, 0, len(s.Terminals)+1)
	points = append(points, model.Point{
		Lat:  s.Source.Lat,
		Lng:  s.Source.Lng,
		Name: s.Source.Name,
		Kind: model.KindSource,
	})
	for _, t := range s.Terminals {
		points = append(points, model.Point{
			Lat:  t.Lat,
			Lng:  t.Lng,
			Name: t.Name,
			Kind: model.KindTerminal,
		})
	}
	return points
}

// CostParameters converts the YAML costs to the engine cost model.
func (s *Site) CostParameters() model.CostParameters {
	return model.CostParameters{
		PoleCost:                s.Costs.PoleCost,
		LowVoltageCostPerMeter:  s.Costs.LowVoltageCostPerMeter,
		HighVoltageCostPerMeter: s.Costs.HighVoltageCostPerMeter,
	}
}
