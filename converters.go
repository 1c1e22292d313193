package main

import (
	"math"
	"strconv"
	"strings"
)

// CelsiusToFahrenheit converts temperature from Celsius to Fahrenheit
func CelsiusToFahrenheit(celsius float64) float64 {
	return (celsius * 9 / 5) + 32
}

// InHgToMillibars converts pressure from inches of mercury to millibars (hPa)
func InHgToMillibars(inHg float64) float64 {
	return inHg * 33.8639
}

// fahrenheitText converts a provider temperature string such as "-3.3" to a
// rounded Fahrenheit string. ok is false when the value is not numeric.
func fahrenheitText(celsius string) (string, bool) {
	c, err := strconv.ParseFloat(strings.TrimSpace(celsius), 64)
	if err != nil {
		return "", false
	}
	return strconv.Itoa(int(math.Round(CelsiusToFahrenheit(c)))), true
}

// millibarsText returns the altimeter setting in millibars, computing it from
// inches of mercury when the provider left alt_mb empty
func millibarsText(obs Observation) string {
	if obs.AltMb != "" {
		return obs.AltMb
	}

	hg, err := strconv.ParseFloat(strings.TrimSpace(obs.AltHg), 64)
	if err != nil {
		return ""
	}
	return strconv.Itoa(int(math.Round(InHgToMillibars(hg))))
}
