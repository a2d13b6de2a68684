package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	nairobiCBD     = GeoPoint{Latitude: -1.286389, Longitude: 36.817223}
	nairobiWestl   = GeoPoint{Latitude: -1.267650, Longitude: 36.811026}
	mombasaHarbour = GeoPoint{Latitude: -4.043477, Longitude: 39.668206}
)

func TestCalculateDistance(t *testing.T) {
	// Nairobi CBD to Westlands is roughly 2.2km
	d := CalculateDistance(nairobiCBD, nairobiWestl)
	assert.InDelta(t, 2.2, d, 0.3)

	// Nairobi to Mombasa is roughly 440km
	d = CalculateDistance(nairobiCBD, mombasaHarbour)
	assert.InDelta(t, 440, d, 10)

	// Zero distance for identical points
	assert.Equal(t, 0.0, CalculateDistance(nairobiCBD, nairobiCBD))
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius(nairobiWestl, nairobiCBD, 5))
	assert.False(t, WithinRadius(mombasaHarbour, nairobiCBD, 5))
	assert.False(t, WithinRadius(nairobiWestl, nairobiCBD, 0))
}

func TestEncodeLocation(t *testing.T) {
	hash := EncodeLocation(nairobiCBD.Latitude, nairobiCBD.Longitude)
	assert.Len(t, hash, GeohashPrecision)

	lat, lon := DecodeGeohash(hash)
	assert.InDelta(t, nairobiCBD.Latitude, lat, 0.01)
	assert.InDelta(t, nairobiCBD.Longitude, lon, 0.01)
}

func TestValidCoordinates(t *testing.T) {
	testCases := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"valid equator", 0, 0, true},
		{"valid extremes", 90, 180, true},
		{"valid negative extremes", -90, -180, true},
		{"latitude too high", 90.1, 0, false},
		{"latitude too low", -91, 0, false},
		{"longitude too high", 0, 180.5, false},
		{"longitude too low", 0, -181, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidCoordinates(tc.lat, tc.lon))
		})
	}
}
