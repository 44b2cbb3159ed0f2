package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tasukeru/tasukeru-api/schema"
)

func activeRequestAt(title string, lat, lng float64) schema.Request {
	return schema.Request{
		Title: title,
		Location: &schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{lng, lat},
		},
		Status: schema.RequestStatusActive,
	}
}

func TestFindNearbyEmptyPool(t *testing.T) {
	finder := NewLinearFinder()
	result := finder.FindNearby(tokyoStation, 10, nil)
	assert.Len(t, result, 0)
}

func TestFindNearbyExactCenter(t *testing.T) {
	finder := NewLinearFinder()
	r := activeRequestAt("here", tokyoStation.Latitude, tokyoStation.Longitude)

	result := finder.FindNearby(tokyoStation, 1, []schema.Request{r})

	assert.Len(t, result, 1)
	assert.Equal(t, "here", result[0].Request.Title)
	assert.InDelta(t, 0, result[0].DistanceKm, 1e-9)
}

func TestFindNearbyFiltersByRadius(t *testing.T) {
	finder := NewLinearFinder()
	pool := []schema.Request{
		activeRequestAt("shinjuku", shinjuku.Latitude, shinjuku.Longitude),
		activeRequestAt("osaka", osakaStation.Latitude, osakaStation.Longitude),
	}

	result := finder.FindNearby(tokyoStation, 10, pool)

	assert.Len(t, result, 1)
	assert.Equal(t, "shinjuku", result[0].Request.Title)
}

func TestFindNearbySortedAscending(t *testing.T) {
	finder := NewLinearFinder()
	pool := []schema.Request{
		activeRequestAt("osaka", osakaStation.Latitude, osakaStation.Longitude),
		activeRequestAt("shinjuku", shinjuku.Latitude, shinjuku.Longitude),
		activeRequestAt("center", tokyoStation.Latitude, tokyoStation.Longitude),
	}

	result := finder.FindNearby(tokyoStation, 1000, pool)

	assert.Len(t, result, 3)
	assert.Equal(t, "center", result[0].Request.Title)
	assert.Equal(t, "shinjuku", result[1].Request.Title)
	assert.Equal(t, "osaka", result[2].Request.Title)
	for i := 1; i < len(result); i++ {
		assert.True(t, result[i-1].DistanceKm <= result[i].DistanceKm)
	}
}

func TestFindNearbyTiesKeepPoolOrder(t *testing.T) {
	finder := NewLinearFinder()
	pool := []schema.Request{
		activeRequestAt("first", shinjuku.Latitude, shinjuku.Longitude),
		activeRequestAt("second", shinjuku.Latitude, shinjuku.Longitude),
	}

	result := finder.FindNearby(tokyoStation, 10, pool)

	assert.Len(t, result, 2)
	assert.Equal(t, "first", result[0].Request.Title)
	assert.Equal(t, "second", result[1].Request.Title)
}

func TestFindNearbySkipsNonActiveRequests(t *testing.T) {
	finder := NewLinearFinder()

	answered := activeRequestAt("answered", shinjuku.Latitude, shinjuku.Longitude)
	answered.Status = schema.RequestStatusAnswered
	completed := activeRequestAt("completed", shinjuku.Latitude, shinjuku.Longitude)
	completed.Status = schema.RequestStatusCompleted

	result := finder.FindNearby(tokyoStation, 10, []schema.Request{answered, completed})

	assert.Len(t, result, 0)
}

func TestFindNearbySkipsMalformedCoordinates(t *testing.T) {
	finder := NewLinearFinder()

	missing := schema.Request{Title: "missing", Status: schema.RequestStatusActive}
	outOfRange := activeRequestAt("out-of-range", 91, 200)
	good := activeRequestAt("good", shinjuku.Latitude, shinjuku.Longitude)

	result := finder.FindNearby(tokyoStation, 10, []schema.Request{missing, outOfRange, good})

	assert.Len(t, result, 1)
	assert.Equal(t, "good", result[0].Request.Title)
}

func TestFindNearbyNaNRadius(t *testing.T) {
	finder := NewLinearFinder()
	pool := []schema.Request{
		activeRequestAt("center", tokyoStation.Latitude, tokyoStation.Longitude),
		activeRequestAt("osaka", osakaStation.Latitude, osakaStation.Longitude),
	}

	result := finder.FindNearby(tokyoStation, math.NaN(), pool)

	assert.Len(t, result, 0)
}

func TestFindNearbyZeroRadius(t *testing.T) {
	finder := NewLinearFinder()
	pool := []schema.Request{
		activeRequestAt("center", tokyoStation.Latitude, tokyoStation.Longitude),
		activeRequestAt("shinjuku", shinjuku.Latitude, shinjuku.Longitude),
	}

	result := finder.FindNearby(tokyoStation, 0, pool)

	assert.Len(t, result, 1)
	assert.Equal(t, "center", result[0].Request.Title)
}
