package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metarResponse = `{
  "KAVL": {
    "station_id": "KAVL",
    "raw": "KAVL 121954Z 20008KT 10SM FEW025 BKN040 21/M03 A3015 RMK AO2 ",
    "temp": "21.0",
    "dewpoint": "-3.0",
    "wind": "200",
    "wind_vel": "8",
    "visibility": "10",
    "alt_hg": "30.15",
    "alt_mb": null,
    "wx": null,
    "sky_conditions": [
      {"coverage": "FEW", "base_agl": "2500"},
      {"coverage": "BKN", "base_agl": 4000}
    ],
    "flight_category": "VFR",
    "report_type": "METAR",
    "time_of_obs": "2024-01-12T19:54:00Z"
  }
}`

const airportResponse = `{
  "KAVL": [
    {"facility_name": "ASHEVILLE RGNL", "city": "ASHEVILLE", "state_full": "NORTH CAROLINA"}
  ]
}`

func newProviderServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path+"?"+r.URL.RawQuery]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchObservation(t *testing.T) {
	t.Parallel()

	srv := newProviderServer(t, map[string]string{
		"/weather/metar?apt=KAVL": metarResponse,
	})

	obs, err := FetchObservation(context.Background(), srv.Client(), srv.URL, "KAVL")
	require.NoError(t, err)

	assert.Equal(t, Observation{
		StationID:  "KAVL",
		TimeOfObs:  "2024-01-12T19:54:00Z",
		Wind:       "200",
		WindVel:    "8",
		Raw:        "KAVL 121954Z 20008KT 10SM FEW025 BKN040 21/M03 A3015 RMK AO2",
		Visibility: "10",
		SkyConditions: []SkyCondition{
			{Coverage: "FEW", BaseAGL: "2500"},
			{Coverage: "BKN", BaseAGL: "4000"},
		},
		Temp:     "21.0",
		Dewpoint: "-3.0",
		AltHg:    "30.15",
		AltMb:    "",
	}, obs)
}

func TestFetchObservation_unknownStation(t *testing.T) {
	t.Parallel()

	srv := newProviderServer(t, map[string]string{
		"/weather/metar?apt=KZZZ": `{"KZZZ": null}`,
	})

	_, err := FetchObservation(context.Background(), srv.Client(), srv.URL, "KZZZ")
	assert.True(t, errors.Is(err, ErrNoMETAR))
}

func TestFetchObservation_badStatus(t *testing.T) {
	t.Parallel()

	srv := newProviderServer(t, nil)

	_, err := FetchObservation(context.Background(), srv.Client(), srv.URL, "KAVL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 404")
}

func TestFetchObservation_missingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"no raw", `{"KAVL": {"station_id": "KAVL", "time_of_obs": "2024-01-12T19:54:00Z", "sky_conditions": [{"coverage": "CLR"}]}}`, "raw"},
		{"null station", `{"KAVL": {"station_id": null, "raw": "KAVL", "time_of_obs": "T", "sky_conditions": [{"coverage": "CLR"}]}}`, "station_id"},
		{"no time", `{"KAVL": {"station_id": "KAVL", "raw": "KAVL", "sky_conditions": [{"coverage": "CLR"}]}}`, "time_of_obs"},
		{"empty sky", `{"KAVL": {"station_id": "KAVL", "raw": "KAVL", "time_of_obs": "T", "sky_conditions": []}}`, "sky_conditions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newProviderServer(t, map[string]string{"/weather/metar?apt=KAVL": tt.body})

			_, err := FetchObservation(context.Background(), srv.Client(), srv.URL, "KAVL")
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestFetchObservation_nullBase(t *testing.T) {
	t.Parallel()

	srv := newProviderServer(t, map[string]string{
		"/weather/metar?apt=KAVL": `{"KAVL": {"station_id": "KAVL", "raw": "KAVL 121954Z 20008KT 10SM CLR", "time_of_obs": "2024-01-12T19:54:00Z", "sky_conditions": [{"coverage": "CLR", "base_agl": null}]}}`,
	})

	obs, err := FetchObservation(context.Background(), srv.Client(), srv.URL, "KAVL")
	require.NoError(t, err)
	assert.Equal(t, []SkyCondition{{Coverage: "CLR", BaseAGL: ""}}, obs.SkyConditions)
}

func TestFetchSiteInfo(t *testing.T) {
	t.Parallel()

	srv := newProviderServer(t, map[string]string{
		"/airports?apt=KAVL": airportResponse,
		"/airports?apt=KZZZ": `{"KZZZ": []}`,
	})

	site, err := FetchSiteInfo(context.Background(), srv.Client(), srv.URL+"/", "KAVL")
	require.NoError(t, err)
	assert.Equal(t, SiteInfo{Name: "ASHEVILLE RGNL", City: "ASHEVILLE", State: "NORTH CAROLINA"}, site)

	site, err = FetchSiteInfo(context.Background(), srv.Client(), srv.URL, "KZZZ")
	require.Error(t, err)
	assert.Equal(t, SiteInfo{Name: "KZZZ"}, site)
}

func TestFetchObservation_canceled(t *testing.T) {
	t.Parallel()

	srv := newProviderServer(t, map[string]string{"/weather/metar?apt=KAVL": metarResponse})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FetchObservation(ctx, srv.Client(), srv.URL, "KAVL")
	assert.ErrorIs(t, err, context.Canceled)
}
