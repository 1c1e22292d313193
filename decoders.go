package main

import (
	"fmt"
	"strings"
)

// DecodeFields derives the human-readable wind, gust, sky condition and time
// text for an observation. Only an empty sky-condition list is an error.
func DecodeFields(raw string, obs Observation) (DecodedFields, error) {
	sky, err := decodeSkyCondition(obs.SkyConditions)
	if err != nil {
		return DecodedFields{}, err
	}

	return DecodedFields{
		WindDirection: decodeWindDirection(raw, obs.Wind),
		Gust:          decodeGust(raw),
		SkyCondition:  sky,
		Time:          formatObservationTime(obs.TimeOfObs),
	}, nil
}

// decodeWindDirection describes the wind direction. Calm is checked before
// variable, which is checked before a variability range.
func decodeWindDirection(raw, direction string) string {
	if strings.Contains(raw, calmWind) {
		return "Not Applicable (Calm)"
	}

	if strings.Contains(raw, variableWindDir) {
		return "Variable"
	}

	if matches := windVarRegex.FindStringSubmatch(raw); matches != nil {
		return fmt.Sprintf("%s Degrees, variable from %s to %s Degrees", direction, matches[1], matches[2])
	}

	return fmt.Sprintf("%s Degrees", direction)
}

// decodeGust describes the gust group, or returns "" when there is none.
// A leading zero on the gust speed is dropped, so G05KT reads "Gusting to 5".
func decodeGust(raw string) string {
	matches := gustRegex.FindStringSubmatch(raw)
	if matches == nil {
		return ""
	}

	speed := matches[1]
	if len(speed) > 1 && speed[0] == '0' {
		speed = speed[1:]
	}

	return "Gusting to " + speed
}

// decodeSkyCondition describes the cloud layers. A leading CLR layer means
// clear sky and the remaining layers are ignored.
func decodeSkyCondition(layers []SkyCondition) (string, error) {
	if len(layers) == 0 {
		return "", &MissingFieldError{Field: "sky_conditions"}
	}

	if layers[0].Coverage == clearCoverage {
		return "Clear", nil
	}

	parts := make([]string, 0, len(layers))
	for _, layer := range layers {
		parts = append(parts, fmt.Sprintf("%s AGL%s", layer.BaseAGL, layer.Coverage))
	}

	// Expansion runs over the joined text, not per layer
	text := strings.Join(parts, " - ")
	for _, cw := range coverageWords {
		text = strings.ReplaceAll(text, cw.Code, cw.Word)
	}

	return text, nil
}

// formatObservationTime rewrites an ISO-like timestamp for display without
// any timezone conversion, e.g. "2024-01-01T18:00Z" -> "2024-01-01 at 18:00 Zulu (UTC)"
func formatObservationTime(timestamp string) string {
	formatted := strings.Replace(timestamp, "T", " at ", 1)
	return strings.Replace(formatted, "Z", " Zulu (UTC)", 1)
}
