package utils

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"

	"github.com/tasukeru/tasukeru-api/external/mocks"
	"github.com/tasukeru/tasukeru-api/schema"
)

func TestPoliticalGeoInfoJapan(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	geoMock := mocks.NewMockGeoInfo(ctl)
	SetGeoClient(geoMock)
	defer SetGeoClient(nil)

	geoMock.EXPECT().Get(gomock.Any()).Return([]maps.GeocodingResult{
		{
			AddressComponents: []maps.AddressComponent{
				{LongName: "Japan", ShortName: "JP", Types: []string{"country"}},
				{LongName: "Tokyo", ShortName: "Tokyo", Types: []string{"administrative_area_level_1"}},
			},
		},
	}, nil).Times(1)

	loc, err := PoliticalGeoInfo(schema.Location{Latitude: 35.6812, Longitude: 139.7671})
	assert.NoError(t, err)
	assert.Equal(t, "Japan", loc.Country)
	assert.Equal(t, "Tokyo", loc.County)
}

func TestPoliticalGeoInfoUS(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	geoMock := mocks.NewMockGeoInfo(ctl)
	SetGeoClient(geoMock)
	defer SetGeoClient(nil)

	geoMock.EXPECT().Get(gomock.Any()).Return([]maps.GeocodingResult{
		{
			AddressComponents: []maps.AddressComponent{
				{LongName: "United States", ShortName: "US", Types: []string{"country"}},
				{LongName: "California", ShortName: "CA", Types: []string{"administrative_area_level_1"}},
				{LongName: "Santa Clara County", ShortName: "Santa Clara", Types: []string{"administrative_area_level_2"}},
			},
		},
	}, nil).Times(1)

	loc, err := PoliticalGeoInfo(schema.Location{Latitude: 37.3541, Longitude: -121.9552})
	assert.NoError(t, err)
	assert.Equal(t, "United States", loc.Country)
	assert.Equal(t, "California", loc.State)
	assert.Equal(t, "Santa Clara County", loc.County)
}

func TestPoliticalGeoInfoAlreadyResolved(t *testing.T) {
	resolved := schema.Location{Latitude: 1, Longitude: 2, Country: "Japan"}

	loc, err := PoliticalGeoInfo(resolved)
	assert.NoError(t, err)
	assert.Equal(t, resolved, loc)
}

func TestPoliticalGeoInfoWithoutClient(t *testing.T) {
	SetGeoClient(nil)

	_, err := PoliticalGeoInfo(schema.Location{Latitude: 1, Longitude: 2})
	assert.Equal(t, ErrGeoClientNotInit, err)
}
