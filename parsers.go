package main

import (
	"fmt"
	"strconv"
	"strings"
)

// observationFromRaw builds an Observation from the report text alone, for
// reports that did not come from the provider. Fields after RMK are ignored.
func observationFromRaw(stationCode, raw string) Observation {
	obs := Observation{
		StationID: stationCode,
		Raw:       strings.Join(strings.Fields(raw), " "),
	}

	parts := strings.Fields(raw)
	for i, part := range parts {
		if part == "RMK" {
			break
		}

		switch {
		case timeGroupRegex.MatchString(part):
			obs.TimeOfObs = parseTime(part)
		case windGroupRegex.MatchString(part):
			obs.Wind, obs.WindVel = parseWind(part)
		case visGroupRegex.MatchString(part):
			obs.Visibility = parseVisibility(part)
			// Whole miles are a separate field in "1 1/2SM"
			if i > 0 && wholeMilesRegex.MatchString(parts[i-1]) && strings.Contains(obs.Visibility, "/") {
				obs.Visibility = parts[i-1] + " " + obs.Visibility
			}
		case cloudRegex.MatchString(part):
			obs.SkyConditions = append(obs.SkyConditions, parseCloud(part))
		case tempGroupRegex.MatchString(part):
			obs.Temp, obs.Dewpoint = parseTempDewpoint(part)
		case altimeterRegex.MatchString(part):
			obs.AltHg = parseAltimeter(part)
		}
	}

	return obs
}

// parseTime turns a DDHHMMZ group into "Day DDTHH:MMZ". The report carries no
// month or year.
func parseTime(timeStr string) string {
	matches := timeGroupRegex.FindStringSubmatch(timeStr)
	if matches == nil {
		return ""
	}
	return fmt.Sprintf("Day %sT%s:%sZ", matches[1], matches[2], matches[3])
}

// parseWind returns the direction and speed of a wind group such as "24015G25KT"
func parseWind(windStr string) (string, string) {
	matches := windGroupRegex.FindStringSubmatch(windStr)
	if matches == nil {
		return "", ""
	}

	speed, _ := strconv.Atoi(matches[2])
	return matches[1], strconv.Itoa(speed)
}

func parseVisibility(visStr string) string {
	matches := visGroupRegex.FindStringSubmatch(visStr)
	if matches == nil {
		return ""
	}
	return matches[1]
}

// parseCloud parses a cloud string in the format "CCCHHH" or "CCCHHHTTT"
func parseCloud(cloudStr string) SkyCondition {
	matches := cloudRegex.FindStringSubmatch(cloudStr)
	if matches == nil {
		return SkyCondition{}
	}

	cloud := SkyCondition{Coverage: matches[1]}
	if matches[2] != "" {
		height, _ := strconv.Atoi(matches[2])
		cloud.BaseAGL = strconv.Itoa(height * 100)
	}

	return cloud
}

// parseTempDewpoint parses "TT/DD" where an M prefix marks a negative value
func parseTempDewpoint(tempStr string) (string, string) {
	matches := tempGroupRegex.FindStringSubmatch(tempStr)
	if matches == nil {
		return "", ""
	}

	signed := func(minus, digits string) string {
		v, _ := strconv.Atoi(digits)
		if minus == "M" && v != 0 {
			v = -v
		}
		return strconv.Itoa(v)
	}

	return signed(matches[1], matches[2]), signed(matches[3], matches[4])
}

// parseAltimeter turns "A3015" into "30.15"
func parseAltimeter(altStr string) string {
	matches := altimeterRegex.FindStringSubmatch(altStr)
	if matches == nil {
		return ""
	}
	return matches[1][:2] + "." + matches[1][2:]
}
