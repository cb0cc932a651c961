package display

import (
	"math"
	"strconv"
)

const (
	// Placeholder is shown for a field the upstream did not report
	Placeholder = "-"

	// Description is the subtitle of the result card
	Description = "Live weather data from Open-Meteo API."
)

// View is the rendered form of a State: which panels are visible and
// the text of every field.
type View struct {
	State        string `json:"state" example:"result"`
	LoadingShown bool   `json:"loading_shown"`
	ErrorShown   bool   `json:"error_shown"`
	ResultShown  bool   `json:"result_shown"`
	ErrorMessage string `json:"error_message,omitempty"`
	CityName     string `json:"city_name,omitempty" example:"Paris, France"`
	Temperature  string `json:"temperature,omitempty" example:"21"`
	Description  string `json:"description,omitempty"`
	WindSpeed    string `json:"wind_speed,omitempty" example:"12.5 km/h"`
	Humidity     string `json:"humidity,omitempty" example:"56 %"`
	FeelsLike    string `json:"feels_like,omitempty" example:"20 °C"`
}

// View renders the state
func (s State) View() View {
	v := View{State: s.Phase.String()}

	switch s.Phase {
	case PhaseLoading:
		v.LoadingShown = true
	case PhaseError:
		v.ErrorShown = true
		v.ErrorMessage = s.Message
	case PhaseResult:
		c := s.Conditions
		v.ResultShown = true
		v.CityName = s.Location.DisplayName()
		v.Temperature = formatRounded(c.Temperature, "")
		v.Description = Description
		v.WindSpeed = formatValue(c.WindSpeed, " km/h")
		v.Humidity = formatValue(c.Humidity, " %")
		v.FeelsLike = formatRounded(c.FeelsLike, " °C")
	}

	return v
}

// roundHalfUp rounds to the nearest integer with halves going towards +Inf,
// so -2.5 becomes -2 and 2.5 becomes 3.
func roundHalfUp(v float64) float64 {
	r := math.Floor(v + 0.5)
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

func formatRounded(v *float64, suffix string) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatFloat(roundHalfUp(*v), 'f', 0, 64) + suffix
}

func formatValue(v *float64, suffix string) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + suffix
}
