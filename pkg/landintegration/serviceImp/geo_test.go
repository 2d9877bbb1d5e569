package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineZeroDistance(t *testing.T) {
	assert.Zero(t, Haversine(12.97, 77.59, 12.97, 77.59))
}

func TestHaversineSymmetric(t *testing.T) {
	d1 := Haversine(12.97, 77.59, 12.98, 77.60)
	d2 := Haversine(12.98, 77.60, 12.97, 77.59)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversineKnownDistance(t *testing.T) {
	// 0.001 degrees of latitude is about 111 meters
	d := Haversine(12.970000, 77.590000, 12.971000, 77.590000)
	assert.InDelta(t, 111.2, d, 0.5)
}

func TestHaversineFarApart(t *testing.T) {
	// Bengaluru to Mysuru is roughly 130 km
	d := Haversine(12.9716, 77.5946, 12.2958, 76.6394)
	assert.Greater(t, d, 100_000.0)
	assert.Less(t, d, 160_000.0)
}
