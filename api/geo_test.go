package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGeoPosition(t *testing.T) {
	lat, lng, err := parseGeoPosition("35.6812;139.7671")
	assert.NoError(t, err)
	assert.Equal(t, 35.6812, lat)
	assert.Equal(t, 139.7671, lng)
}

func TestParseGeoPositionNegative(t *testing.T) {
	lat, lng, err := parseGeoPosition("-33.8688;151.2093")
	assert.NoError(t, err)
	assert.Equal(t, -33.8688, lat)
	assert.Equal(t, 151.2093, lng)
}

func TestParseGeoPositionInvalid(t *testing.T) {
	cases := []string{
		"",
		"35.6812",
		"35.6812;139.7671;0",
		"north;east",
	}

	for _, c := range cases {
		_, _, err := parseGeoPosition(c)
		assert.Error(t, err, c)
	}
}

func TestParseGeoPositionOutOfRange(t *testing.T) {
	cases := []string{
		"91;139.7671",
		"-91;139.7671",
		"35.6812;181",
		"35.6812;-181",
		"NaN;139.7671",
		"35.6812;NaN",
	}

	for _, c := range cases {
		_, _, err := parseGeoPosition(c)
		assert.Error(t, err, c)
	}
}
