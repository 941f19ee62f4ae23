package geofence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	puneCenter = Point{Lat: 18.5204, Lon: 73.8567}
	shivajiNgr = Point{Lat: 18.5308, Lon: 73.8475}
)

func TestDistance(t *testing.T) {
	t.Run("identical points are zero apart", func(t *testing.T) {
		assert.Zero(t, Distance(puneCenter, puneCenter))
	})

	t.Run("is symmetric", func(t *testing.T) {
		assert.InDelta(t, Distance(puneCenter, shivajiNgr), Distance(shivajiNgr, puneCenter), 1e-9)
	})

	t.Run("known city-scale distance", func(t *testing.T) {
		// Pune center to Shivaji Nagar is roughly a kilometer and a half.
		d := Distance(puneCenter, shivajiNgr)
		assert.Greater(t, d, 1300.0)
		assert.Less(t, d, 1800.0)
	})

	t.Run("antipodal-ish sanity", func(t *testing.T) {
		// A degree of latitude is ~111 km.
		d := Distance(Point{Lat: 0, Lon: 0}, Point{Lat: 1, Lon: 0})
		assert.InDelta(t, 111195, d, 200)
	})
}

func TestViolates(t *testing.T) {
	t.Run("center of the circle violates for any positive radius", func(t *testing.T) {
		for _, radius := range []float64{0.001, 1, 500, 100000} {
			c := Circle{Center: puneCenter, RadiusMeters: radius}
			assert.True(t, c.Violates(puneCenter), "radius=%v", radius)
		}
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		// Set the radius to the exact computed distance: standing on the
		// perimeter of the prohibited zone still counts as a breach.
		d := Distance(puneCenter, shivajiNgr)
		c := Circle{Center: puneCenter, RadiusMeters: d}
		assert.True(t, c.Violates(shivajiNgr))
	})

	t.Run("inside a 500m prohibited zone", func(t *testing.T) {
		c := Circle{Center: puneCenter, RadiusMeters: 500}
		assert.True(t, c.Violates(puneCenter))
	})

	t.Run("well outside a 500m prohibited zone", func(t *testing.T) {
		c := Circle{Center: puneCenter, RadiusMeters: 500}
		assert.False(t, c.Violates(shivajiNgr))
	})
}
