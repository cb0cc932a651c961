package openmeteo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGeocodingClient_Search(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"results":[{"id":2988507,"name":"Paris","latitude":48.85341,"longitude":2.3488,"country":"France","country_code":"FR","timezone":"Europe/Paris"}],"generationtime_ms":0.7}`)
	}))
	defer server.Close()

	client := NewGeocodingClient(discardLogger(), WithGeocodingURL(server.URL+"/v1/search"))

	resp, err := client.Search(context.Background(), "São Paulo")
	if err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}

	wantQuery := map[string]string{
		"name":     "São Paulo",
		"count":    "1",
		"language": "en",
		"format":   "json",
	}
	for k, want := range wantQuery {
		if gotQuery[k] != want {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], want)
		}
	}

	if len(resp.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(resp.Results))
	}
	r := resp.Results[0]
	if r.Name != "Paris" || r.Country != "France" {
		t.Errorf("result = %q/%q, want Paris/France", r.Name, r.Country)
	}
	if r.Latitude == nil || *r.Latitude != 48.85341 {
		t.Errorf("Latitude = %v, want 48.85341", r.Latitude)
	}
	if r.Longitude == nil || *r.Longitude != 2.3488 {
		t.Errorf("Longitude = %v, want 2.3488", r.Longitude)
	}
}

func TestGeocodingClient_Search_NoResults(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "results key absent", body: `{"generationtime_ms":0.3}`},
		{name: "results null", body: `{"results":null}`},
		{name: "results empty", body: `{"results":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := NewGeocodingClient(discardLogger(), WithGeocodingURL(server.URL))
			resp, err := client.Search(context.Background(), "Atlantis")
			if err != nil {
				t.Fatalf("Search() unexpected error = %v", err)
			}
			if len(resp.Results) != 0 {
				t.Errorf("len(Results) = %d, want 0", len(resp.Results))
			}
		})
	}
}

func TestGeocodingClient_Search_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":true,"reason":"boom"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewGeocodingClient(discardLogger(), WithGeocodingURL(server.URL))
	_, err := client.Search(context.Background(), "Paris")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Search() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestGeocodingClient_Search_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewGeocodingClient(discardLogger(), WithGeocodingURL(server.URL))
	_, err := client.Search(context.Background(), "Paris")
	if err == nil {
		t.Fatal("Search() expected error against closed server")
	}
	if !strings.Contains(err.Error(), "failed to fetch") {
		t.Errorf("Search() error = %v, want failed to fetch", err)
	}
}

func TestForecastClient_GetCurrent(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		_, _ = io.WriteString(w, `{
			"latitude": 48.86,
			"longitude": 2.34,
			"timezone": "Europe/Paris",
			"current_units": {"temperature_2m": "°C", "wind_speed_10m": "km/h"},
			"current": {
				"time": "2025-06-01T12:00",
				"interval": 900,
				"temperature_2m": 21.4,
				"relative_humidity_2m": 56,
				"apparent_temperature": 19.6,
				"wind_speed_10m": 12.5
			}
		}`)
	}))
	defer server.Close()

	client := NewForecastClient(discardLogger(), WithForecastURL(server.URL))

	resp, err := client.GetCurrent(context.Background(), 48.85341, 2.3488, "")
	if err != nil {
		t.Fatalf("GetCurrent() unexpected error = %v", err)
	}

	wantQuery := map[string]string{
		"latitude":         "48.85341",
		"longitude":        "2.3488",
		"current":          "temperature_2m,relative_humidity_2m,apparent_temperature,wind_speed_10m",
		"temperature_unit": "celsius",
		"windspeed_unit":   "kmh",
		"timezone":         "auto",
	}
	for k, want := range wantQuery {
		if gotQuery[k] != want {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], want)
		}
	}

	if resp.Timezone != "Europe/Paris" {
		t.Errorf("Timezone = %q, want Europe/Paris", resp.Timezone)
	}
	checks := []struct {
		field string
		got   Number
		want  float64
	}{
		{"temperature_2m", resp.Current.Temperature2M, 21.4},
		{"relative_humidity_2m", resp.Current.RelativeHumidity2M, 56},
		{"apparent_temperature", resp.Current.ApparentTemperature, 19.6},
		{"wind_speed_10m", resp.Current.WindSpeed10M, 12.5},
	}
	for _, c := range checks {
		if !c.got.Valid || c.got.Value != c.want {
			t.Errorf("%s = %+v, want %v", c.field, c.got, c.want)
		}
	}
}

func TestForecastClient_GetCurrent_ExplicitTimezone(t *testing.T) {
	var gotTimezone string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTimezone = r.URL.Query().Get("timezone")
		_, _ = io.WriteString(w, `{"current":{}}`)
	}))
	defer server.Close()

	client := NewForecastClient(discardLogger(), WithForecastURL(server.URL))
	if _, err := client.GetCurrent(context.Background(), 35.6762, 139.6503, "Asia/Tokyo"); err != nil {
		t.Fatalf("GetCurrent() unexpected error = %v", err)
	}
	if gotTimezone != "Asia/Tokyo" {
		t.Errorf("timezone = %q, want Asia/Tokyo", gotTimezone)
	}
}

func TestForecastClient_GetCurrent_MissingAndMalformedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"current":{"temperature_2m":null,"apparent_temperature":"n/a","wind_speed_10m":7}}`)
	}))
	defer server.Close()

	client := NewForecastClient(discardLogger(), WithForecastURL(server.URL))
	resp, err := client.GetCurrent(context.Background(), 1, 2, "")
	if err != nil {
		t.Fatalf("GetCurrent() unexpected error = %v", err)
	}

	if resp.Current.Temperature2M.Valid {
		t.Error("temperature_2m null should be invalid")
	}
	if resp.Current.ApparentTemperature.Valid {
		t.Error("apparent_temperature string should be invalid")
	}
	if resp.Current.RelativeHumidity2M.Valid {
		t.Error("relative_humidity_2m absent should be invalid")
	}
	if !resp.Current.WindSpeed10M.Valid || resp.Current.WindSpeed10M.Value != 7 {
		t.Errorf("wind_speed_10m = %+v, want 7", resp.Current.WindSpeed10M)
	}
}

func TestForecastClient_GetCurrent_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		errContains string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops", errContains: "status 500"},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":true}`, errContains: "status 400"},
		{name: "no current block", status: http.StatusOK, body: `{"latitude":1}`, errContains: "no current block"},
		{name: "invalid json", status: http.StatusOK, body: `{"current":`, errContains: "failed to decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := NewForecastClient(discardLogger(), WithForecastURL(server.URL))
			_, err := client.GetCurrent(context.Background(), 1, 2, "")
			if err == nil {
				t.Fatal("GetCurrent() expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("GetCurrent() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestNumber_Ptr(t *testing.T) {
	if (Number{}).Ptr() != nil {
		t.Error("invalid Number should give nil pointer")
	}
	p := Number{Value: 3.5, Valid: true}.Ptr()
	if p == nil || *p != 3.5 {
		t.Errorf("Ptr() = %v, want 3.5", p)
	}
}
