package openmeteo

import (
	"bytes"
	"encoding/json"
)

// Number is a JSON value that is only kept when it is a number.
// null, strings and any other JSON type decode to an invalid Number
// rather than failing the whole response.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	n.Value = f
	n.Valid = true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns nil for an invalid Number
func (n Number) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

type GeocodingAPIResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationtimeMs float64           `json:"generationtime_ms"`
}

type GeocodingResult struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Elevation   float64  `json:"elevation"`
	FeatureCode string   `json:"feature_code"`
	CountryCode string   `json:"country_code"`
	Country     string   `json:"country"`
	Admin1      string   `json:"admin1"`
	Timezone    string   `json:"timezone"`
	Population  int      `json:"population"`
}

type CurrentAPIResponse struct {
	Latitude             float64       `json:"latitude"`
	Longitude            float64       `json:"longitude"`
	GenerationtimeMs     float64       `json:"generationtime_ms"`
	UtcOffsetSeconds     int           `json:"utc_offset_seconds"`
	Timezone             string        `json:"timezone"`
	TimezoneAbbreviation string        `json:"timezone_abbreviation"`
	Elevation            float64       `json:"elevation"`
	CurrentUnits         *CurrentUnits `json:"current_units"`
	Current              *Current      `json:"current"`
}

type CurrentUnits struct {
	Time                string `json:"time"`
	Interval            string `json:"interval"`
	Temperature2M       string `json:"temperature_2m"`
	RelativeHumidity2M  string `json:"relative_humidity_2m"`
	ApparentTemperature string `json:"apparent_temperature"`
	WindSpeed10M        string `json:"wind_speed_10m"`
}

type Current struct {
	Time                string `json:"time"`
	Interval            int    `json:"interval"`
	Temperature2M       Number `json:"temperature_2m"`
	RelativeHumidity2M  Number `json:"relative_humidity_2m"`
	ApparentTemperature Number `json:"apparent_temperature"`
	WindSpeed10M        Number `json:"wind_speed_10m"`
}
