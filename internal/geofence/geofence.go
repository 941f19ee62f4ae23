// Package geofence evaluates reported locations against prohibited circles.
//
// Like the scope package, this is a pure predicate layer: no store access and
// no side effects. Radius validity (radius > 0) is an area-creation concern;
// the evaluator assumes it never receives a degenerate circle.
package geofence

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// Point is a WGS84 coordinate in floating-point degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Circle is a prohibited zone: a subject in violation is INSIDE it. The
// externment order banishes the subject from the area, not into it.
type Circle struct {
	Center       Point
	RadiusMeters float64
}

// Distance returns the great-circle distance between two points in meters,
// using the haversine formula. Identical points yield exactly 0; atan2
// handles the degenerate case without division by zero.
func Distance(a, b Point) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := radians(b.Lat - a.Lat)
	dLambda := radians(b.Lon - a.Lon)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Violates reports whether a reported location breaches the prohibited
// circle. The boundary is inclusive: standing exactly on the perimeter is a
// violation.
func (c Circle) Violates(p Point) bool {
	return Distance(p, c.Center) <= c.RadiusMeters
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
