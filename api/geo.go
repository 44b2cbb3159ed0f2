package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseGeoPosition parses the "lat;lng" pair of a Geo-Position header.
// Out-of-range values are rejected here so that a bogus header can never
// become the stored fallback center of a nearby query. The negated range
// checks also catch NaN.
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	parts := strings.Split(geoPosition, ";")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value: %q", geoPosition)
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, err
	}

	lng, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, err
	}

	if !(lat >= -90 && lat <= 90) || !(lng >= -180 && lng <= 180) {
		return 0, 0, fmt.Errorf("geo-position out of range: %q", geoPosition)
	}

	return lat, lng, nil
}

// updateGeoPositionMiddleware records the position a client reports through
// the Geo-Position header as the account's last known location. A malformed
// header is logged and ignored; it never fails the request it rode in on.
func (s *Server) updateGeoPositionMiddleware(c *gin.Context) {
	accountNumber := c.GetString("requester")

	if header := c.GetHeader("Geo-Position"); header != "" && accountNumber != "" {
		lat, lng, err := parseGeoPosition(header)
		if err != nil {
			c.Error(err)
		} else if err := s.store.UpdateAccountGeoPosition(accountNumber, lat, lng); err != nil {
			c.Error(err)
		}
	}

	c.Next()
}
