package utils

import (
	"fmt"

	"github.com/tasukeru/tasukeru-api/external/geoinfo"
	"github.com/tasukeru/tasukeru-api/schema"
)

var ErrGeoClientNotInit = fmt.Errorf("geo location client is not initialized")
var ErrEmptyGeo = fmt.Errorf("empty geo info")

var (
	Japan = "Japan"
	US    = "United States"
)

var geoClient geoinfo.GeoInfo

type PoliticalGeo struct {
	Country      string
	CountryShort string
	Level1       string
	Level1Short  string
	Level2       string
	Level2Short  string
	Level3       string
	Level3Short  string
}

func InitGeoInfo(apiKey string) error {
	c, err := geoinfo.New(apiKey)
	if err != nil {
		return err
	}

	geoClient = c
	return nil
}

func SetGeoClient(c geoinfo.GeoInfo) {
	geoClient = c
}

// PoliticalGeoInfo reverse-geocodes a coordinate into its political address.
// Callers treat a failure as non-fatal: a request anchor works fine without
// the country and county labels.
func PoliticalGeoInfo(loc schema.Location) (schema.Location, error) {
	if loc.Country != "" {
		return loc, nil
	}

	if geoClient == nil {
		return loc, ErrGeoClientNotInit
	}

	ret := PoliticalGeo{}
	geos, err := geoClient.Get(loc)
	if err != nil {
		return loc, err
	}
	if len(geos) == 0 {
		return loc, ErrEmptyGeo
	}
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) > 0 && a.Types[0] == "administrative_area_level_1" {
			ret.Level1 = a.LongName
			ret.Level1Short = a.ShortName
		} else if len(a.Types) > 0 && a.Types[0] == "administrative_area_level_2" {
			ret.Level2 = a.LongName
			ret.Level2Short = a.ShortName
		} else if len(a.Types) > 0 && a.Types[0] == "administrative_area_level_3" {
			ret.Level3 = a.LongName
			ret.Level3Short = a.ShortName
		} else if len(a.Types) > 0 && a.Types[0] == "country" {
			ret.Country = a.LongName
			ret.CountryShort = a.ShortName
		}
	}

	loc.Country = ret.Country
	loc.County = ret.Level2

	switch ret.Country {
	case Japan:
		// prefectures come back as level 1
		if loc.County == "" {
			loc.County = ret.Level1
		}
	case US:
		loc.State = ret.Level1
	}

	return loc, nil
}
