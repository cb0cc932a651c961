package weather

import (
	"fmt"

	"city-weather/internal/providers/openmeteo"
	"city-weather/internal/types"
)

// mapGeocodingResult takes the first result as authoritative
func mapGeocodingResult(resp *openmeteo.GeocodingAPIResponse) (types.Location, error) {
	if resp == nil || len(resp.Results) == 0 {
		return types.Location{}, ErrCityNotFound
	}

	first := resp.Results[0]
	if first.Latitude == nil || first.Longitude == nil {
		return types.Location{}, fmt.Errorf("geocoding result %q has no coordinates", first.Name)
	}

	return types.Location{
		Name:        first.Name,
		Country:     first.Country,
		Coordinates: types.NewCoords(*first.Latitude, *first.Longitude),
		Timezone:    first.Timezone,
	}, nil
}

// mapCurrent keeps each field independent; a missing one stays nil
func mapCurrent(resp *openmeteo.CurrentAPIResponse) types.CurrentConditions {
	if resp == nil || resp.Current == nil {
		return types.CurrentConditions{}
	}
	c := resp.Current
	return types.CurrentConditions{
		Temperature: c.Temperature2M.Ptr(),
		FeelsLike:   c.ApparentTemperature.Ptr(),
		WindSpeed:   c.WindSpeed10M.Ptr(),
		Humidity:    c.RelativeHumidity2M.Ptr(),
	}
}
