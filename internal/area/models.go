// Package area manages restricted areas: the circular geofences externed
// persons are prohibited from entering.
package area

import (
	"strings"
	"time"

	dErrors "tadipaar/pkg/domain-errors"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/geofence"
)

// RestrictedArea is one prohibited circle, owned by the station whose
// jurisdiction it falls in.
type RestrictedArea struct {
	ID            id.AreaID      `json:"id"`
	Name          string         `json:"name"`
	PoliceStation string         `json:"police_station"`
	Center        geofence.Point `json:"center"`
	RadiusMeters  float64        `json:"radius_meters"`
	CreatedAt     time.Time      `json:"created_at"`
}

// New validates a restricted area. The radius must be strictly positive; a
// zero-radius circle would still trap its exact center, which is never an
// intended order.
func New(name, station string, center geofence.Point, radiusMeters float64) (*RestrictedArea, error) {
	name = strings.TrimSpace(name)
	station = strings.TrimSpace(station)

	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	if station == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "police station is required")
	}
	if radiusMeters <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "radius must be greater than zero")
	}
	if center.Lat < -90 || center.Lat > 90 || center.Lon < -180 || center.Lon > 180 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "center coordinates out of range")
	}

	return &RestrictedArea{
		ID:            id.NewAreaID(),
		Name:          name,
		PoliceStation: station,
		Center:        center,
		RadiusMeters:  radiusMeters,
	}, nil
}

// OwningStation reports the station whose jurisdiction the area falls in.
func (a *RestrictedArea) OwningStation() string { return a.PoliceStation }

// Circle returns the geofence to evaluate a position against.
func (a *RestrictedArea) Circle() geofence.Circle {
	return geofence.Circle{Center: a.Center, RadiusMeters: a.RadiusMeters}
}
