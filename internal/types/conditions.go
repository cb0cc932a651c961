package types

// CurrentConditions holds point-in-time measurements in metric units.
// A nil field means the upstream did not report it.
type CurrentConditions struct {
	Temperature *float64 `json:"temperature"` // °C
	FeelsLike   *float64 `json:"feels_like"`  // °C
	WindSpeed   *float64 `json:"wind_speed"`  // km/h
	Humidity    *float64 `json:"humidity"`    // %
}
