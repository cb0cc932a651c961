package types

// Location is the geocoder's best match for a query
type Location struct {
	Name        string `json:"name"`
	Country     string `json:"country,omitempty"`
	Coordinates Coords `json:"coordinates"`
	Timezone    string `json:"timezone,omitempty"`
}

// DisplayName returns "Name, Country", or just the name when the country is unknown.
func (l Location) DisplayName() string {
	if l.Country == "" {
		return l.Name
	}
	return l.Name + ", " + l.Country
}
