// Package geo provides geographic utility functions for mini-grid planning.
//
// All distance calculations use the Haversine formula on WGS-84 coordinates
// against a spherical-Earth approximation. At mini-grid scale (sub-10 km
// networks) the ellipsoidal correction is negligible versus pole placement
// uncertainty, so no geodesic library is needed.
package geo

import (
	"math"

	"github.com/renewvia/gridplan/internal/model"
)

// ─── Constants ──────────────────────────────────────────────

const (
	// EarthRadiusM is the mean radius of Earth in meters.
	EarthRadiusM = 6_371_000.0
)

// ─── Distance ───────────────────────────────────────────────

// DistanceM returns the great-circle distance between two points in
// meters, using the mean Earth radius.
//
// Properties: symmetric, zero iff the points coincide, and satisfies the
// triangle inequality within floating-point tolerance.
//
// Complexity: O(1)
func DistanceM(a, b model.LatLng) float64 {
	return DistanceOnSphereM(a, b, EarthRadiusM)
}

// DistanceOnSphereM returns the great-circle distance in meters on a
// sphere of the given radius. Exposing the radius keeps it a testable
// configuration value rather than a hidden constant.
func DistanceOnSphereM(a, b model.LatLng, radiusM float64) float64 {
	phi1 := degToRad(a.Lat)
	phi2 := degToRad(b.Lat)
	dPhi := degToRad(b.Lat - a.Lat)
	dLam := degToRad(b.Lng - a.Lng)

	sinPhi := math.Sin(dPhi / 2)
	sinLam := math.Sin(dLam / 2)

	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLam*sinLam

	return 2 * radiusM * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ─── Interpolation ──────────────────────────────────────────

// Lerp returns the linear interpolation between a and b at t in [0,1],
// component-wise in lat/lng. For span lengths in the tens-to-hundreds of
// meters this is indistinguishable from true great-circle interpolation.
func Lerp(a, b model.LatLng, t float64) model.LatLng {
	return model.LatLng{
		Lat: a.Lat + (b.Lat-a.Lat)*t,
		Lng: a.Lng + (b.Lng-a.Lng)*t,
	}
}

// PathDistanceM returns the total length of an ordered path in meters.
//
// Complexity: O(S) where S = number of stops.
func PathDistanceM(path []model.LatLng) float64 {
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		total += DistanceM(path[i], path[i+1])
	}
	return total
}

// ─── Helpers ────────────────────────────────────────────────

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
