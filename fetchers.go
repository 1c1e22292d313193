package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"k8s.io/utils/ptr"
)

// ErrNoMETAR is returned when the provider has no report for a station
var ErrNoMETAR = errors.New("no METAR data found")

// observationRecord is the METAR record as returned by the data provider.
// Any field may be null.
type observationRecord struct {
	StationID     *string     `json:"station_id"`
	TimeOfObs     *string     `json:"time_of_obs"`
	Wind          *string     `json:"wind"`
	WindVel       *string     `json:"wind_vel"`
	Raw           *string     `json:"raw"`
	Visibility    *string     `json:"visibility"`
	SkyConditions []skyRecord `json:"sky_conditions"`
	Temp          *string     `json:"temp"`
	Dewpoint      *string     `json:"dewpoint"`
	AltHg         *string     `json:"alt_hg"`
	AltMb         *string     `json:"alt_mb"`
}

type skyRecord struct {
	Coverage *string      `json:"coverage"`
	BaseAGL  *json.Number `json:"base_agl"`
}

// airportRecord is one entry of the provider's airport lookup
type airportRecord struct {
	FacilityName string `json:"facility_name"`
	City         string `json:"city"`
	State        string `json:"state_full"`
}

// fetchData fetches a JSON document for a given station code and decodes it into v
func fetchData(ctx context.Context, client *http.Client, baseURL, path, stationCode, dataType string, v any) error {
	u := fmt.Sprintf("%s/%s?apt=%s", strings.TrimRight(baseURL, "/"), path, url.QueryEscape(stationCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("error building %s request: %w", dataType, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error fetching %s: %w", dataType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("error parsing %s response: %w", dataType, err)
	}

	return nil
}

// FetchObservation fetches the latest METAR observation for a station code
func FetchObservation(ctx context.Context, client *http.Client, baseURL, stationCode string) (Observation, error) {
	var records map[string]*observationRecord
	if err := fetchData(ctx, client, baseURL, "weather/metar", stationCode, "METAR", &records); err != nil {
		return Observation{}, err
	}

	record, ok := records[stationCode]
	if !ok || record == nil {
		return Observation{}, fmt.Errorf("%w for station %s", ErrNoMETAR, stationCode)
	}

	return record.toObservation()
}

// FetchSiteInfo fetches the facility name and city for a station code
func FetchSiteInfo(ctx context.Context, client *http.Client, baseURL, stationCode string) (SiteInfo, error) {
	// Default site info in case of error
	defaultSiteInfo := SiteInfo{Name: stationCode}

	var records map[string][]airportRecord
	if err := fetchData(ctx, client, baseURL, "airports", stationCode, "airport", &records); err != nil {
		return defaultSiteInfo, err
	}

	airports := records[stationCode]
	if len(airports) == 0 || airports[0].FacilityName == "" {
		return defaultSiteInfo, fmt.Errorf("%s does not match any US ICAO airport code", stationCode)
	}

	return SiteInfo{
		Name:  airports[0].FacilityName,
		City:  airports[0].City,
		State: airports[0].State,
	}, nil
}

// toObservation converts a provider record, reporting the first required
// field that is absent
func (r *observationRecord) toObservation() (Observation, error) {
	required := []struct {
		name  string
		value *string
	}{
		{"station_id", r.StationID},
		{"raw", r.Raw},
		{"time_of_obs", r.TimeOfObs},
	}
	for _, f := range required {
		if ptr.Deref(f.value, "") == "" {
			return Observation{}, &MissingFieldError{Field: f.name}
		}
	}

	if len(r.SkyConditions) == 0 {
		return Observation{}, &MissingFieldError{Field: "sky_conditions"}
	}

	layers := make([]SkyCondition, 0, len(r.SkyConditions))
	for _, sky := range r.SkyConditions {
		layers = append(layers, SkyCondition{
			Coverage: ptr.Deref(sky.Coverage, ""),
			BaseAGL:  ptr.Deref(sky.BaseAGL, "").String(),
		})
	}

	return Observation{
		StationID:     *r.StationID,
		TimeOfObs:     *r.TimeOfObs,
		Wind:          ptr.Deref(r.Wind, ""),
		WindVel:       ptr.Deref(r.WindVel, ""),
		Raw:           strings.TrimSpace(*r.Raw),
		Visibility:    ptr.Deref(r.Visibility, ""),
		SkyConditions: layers,
		Temp:          ptr.Deref(r.Temp, ""),
		Dewpoint:      ptr.Deref(r.Dewpoint, ""),
		AltHg:         ptr.Deref(r.AltHg, ""),
		AltMb:         ptr.Deref(r.AltMb, ""),
	}, nil
}
