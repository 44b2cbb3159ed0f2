package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tasukeru/tasukeru-api/schema"
)

var (
	tokyoStation = schema.Location{Latitude: 35.6812, Longitude: 139.7671}
	shinjuku     = schema.Location{Latitude: 35.6896, Longitude: 139.7006}
	osakaStation = schema.Location{Latitude: 34.7025, Longitude: 135.4959}
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(tokyoStation, tokyoStation))
}

func TestDistanceSymmetric(t *testing.T) {
	assert.InDelta(t, Distance(tokyoStation, osakaStation), Distance(osakaStation, tokyoStation), 1e-9)
	assert.InDelta(t, Distance(tokyoStation, shinjuku), Distance(shinjuku, tokyoStation), 1e-9)
}

func TestDistanceTokyoToOsaka(t *testing.T) {
	// roughly 400km by great circle
	d := Distance(tokyoStation, osakaStation)
	assert.InDelta(t, 403, d, 5)
}

func TestDistanceTokyoToShinjuku(t *testing.T) {
	d := Distance(tokyoStation, shinjuku)
	assert.InDelta(t, 6.1, d, 0.5)
}

func TestDistanceAcrossAntimeridian(t *testing.T) {
	a := schema.Location{Latitude: 0, Longitude: 179.9}
	b := schema.Location{Latitude: 0, Longitude: -179.9}
	assert.InDelta(t, 22.24, Distance(a, b), 0.5)
}
