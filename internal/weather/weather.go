package weather

import (
	"errors"

	"city-weather/internal/types"
)

// Stage names used in wrapped errors and spans
const (
	StageGeocode = "geocode"
	StageCurrent = "current-weather"
)

var (
	// ErrCityNotFound means the geocoder answered but had no match.
	ErrCityNotFound = errors.New("city not found")

	// ErrNetworkFailure wraps every transport or decoding failure of either stage.
	ErrNetworkFailure = errors.New("network failure")
)

// Report is the outcome of a successful lookup
type Report struct {
	Location   types.Location          `json:"location"`
	Conditions types.CurrentConditions `json:"conditions"`
}
