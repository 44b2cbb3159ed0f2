package geo

import (
	"math"

	"github.com/tasukeru/tasukeru-api/schema"
)

// EarthRadiusKm is the radius of the spherical earth approximation.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between two coordinates in
// kilometers using the haversine formula. It is symmetric and zero only for
// identical coordinates. Both inputs are assumed to be valid lat/lng pairs.
func Distance(a, b schema.Location) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*math.Pi/180)*math.Cos(b.Latitude*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
