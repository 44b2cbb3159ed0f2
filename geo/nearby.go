package geo

import (
	"math"
	"sort"

	"github.com/tasukeru/tasukeru-api/schema"
)

// Nearby pairs a request with its distance from the query center.
type Nearby struct {
	Request    schema.Request `json:"request"`
	DistanceKm float64        `json:"distance_km"`
}

// NearbyFinder filters a pool of requests down to the open ones within range
// of a center point, ordered nearest first. Implementations are pure: the
// pool is supplied by the caller and no I/O happens here, so a spatially
// indexed backend can replace the linear one without touching callers.
type NearbyFinder interface {
	FindNearby(center schema.Location, radiusKm float64, pool []schema.Request) []Nearby
}

type linearFinder struct{}

// NewLinearFinder returns a NearbyFinder that scans the whole pool on every
// query. O(n) in the pool size, which is fine at the scale we run at.
func NewLinearFinder() NearbyFinder {
	return linearFinder{}
}

func validCoordinate(loc schema.Location) bool {
	return loc.Latitude >= -90 && loc.Latitude <= 90 &&
		loc.Longitude >= -180 && loc.Longitude <= 180
}

func (linearFinder) FindNearby(center schema.Location, radiusKm float64, pool []schema.Request) []Nearby {
	result := make([]Nearby, 0)

	// a NaN radius compares false against every distance and would admit
	// the whole pool
	if math.IsNaN(radiusKm) {
		return result
	}

	for _, r := range pool {
		// answered and completed requests are reachable only through the
		// owner's private list, never through the map
		if r.Status != schema.RequestStatusActive {
			continue
		}

		loc, ok := r.Coordinate()
		if !ok || !validCoordinate(loc) {
			// one bad record should not take the whole map down
			continue
		}

		d := Distance(center, loc)
		if d > radiusKm && d != 0 {
			continue
		}

		result = append(result, Nearby{Request: r, DistanceKm: d})
	}

	// stable sort keeps pool order for equal distances
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	return result
}
