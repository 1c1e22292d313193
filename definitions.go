package main

import (
	"fmt"
	"regexp"
)

// TokenClass identifies which part of a METAR a token belongs to
type TokenClass string

const (
	ClassStationID    TokenClass = "station-id"
	ClassTime         TokenClass = "time"
	ClassWind         TokenClass = "wind"
	ClassVisibility   TokenClass = "visibility"
	ClassSkyCondition TokenClass = "sky-condition"
	ClassTempDewpoint TokenClass = "temp-dewpoint"
	ClassAltimeter    TokenClass = "altimeter"
	ClassPlain        TokenClass = "plain"
)

// TokenClasses lists every class in classification precedence order
var TokenClasses = []TokenClass{
	ClassStationID,
	ClassTime,
	ClassWind,
	ClassVisibility,
	ClassSkyCondition,
	ClassTempDewpoint,
	ClassAltimeter,
	ClassPlain,
}

// Token is one display field of a raw METAR
type Token struct {
	Text  string
	Class TokenClass
}

// SkyCondition is a single cloud layer as reported by the data provider
type SkyCondition struct {
	Coverage string `json:"coverage"`
	BaseAGL  string `json:"base_agl"`
}

// Observation is the structured record supplied alongside a raw METAR
type Observation struct {
	StationID     string         `json:"station_id"`
	TimeOfObs     string         `json:"time_of_obs"`
	Wind          string         `json:"wind"`     // direction in degrees, or VRB
	WindVel       string         `json:"wind_vel"` // knots
	Raw           string         `json:"raw"`
	Visibility    string         `json:"visibility"` // statute miles
	SkyConditions []SkyCondition `json:"sky_conditions"`
	Temp          string         `json:"temp"`
	Dewpoint      string         `json:"dewpoint"`
	AltHg         string         `json:"alt_hg"`
	AltMb         string         `json:"alt_mb"`
}

// DecodedFields holds the human-readable text derived from an observation
type DecodedFields struct {
	WindDirection string
	Gust          string
	SkyCondition  string
	Time          string
}

// SiteInfo represents the location information for a station
type SiteInfo struct {
	Name  string
	City  string
	State string
}

// MissingFieldError reports a required observation field that was absent
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("observation is missing %s", e.Field)
}

// Sky coverage codes and the words they expand to, in replacement order
var coverageWords = []struct {
	Code string
	Word string
}{
	{"FEW", "Few"},
	{"SCT", "Scattered"},
	{"BKN", "Broken"},
	{"OVC", "Overcast"},
}

// Codes a sky-condition field may start with
var skyCoverageCodes = []string{"CLR", "FEW", "SCT", "BKN", "OVC"}

// joinMarker stands in for whitespace inside a wind or sky-condition group
// while the report is split into fields
const joinMarker = "-"

const (
	calmWind        = "00000KT"
	variableWindDir = "VRB"
	clearCoverage   = "CLR"
)

// Commonly used regular expressions
var (
	windRegex        = regexp.MustCompile(`(\d{5}|VRB\d{2})G?\d?\d?KT(.?\d{3}V\d{3})?`)
	windVarRegex     = regexp.MustCompile(`(\d{3})V(\d{3})`)
	gustRegex        = regexp.MustCompile(`G(\d+)KT`)
	skyRunRegex      = regexp.MustCompile(`(?:^|\s)((?:CLR|FEW|SCT|BKN|OVC)\d{0,3}(?:\s+(?:CLR|FEW|SCT|BKN|OVC)\d{0,3})*)`)
	timeRegex        = regexp.MustCompile(`\d{6}Z`)
	visRegex         = regexp.MustCompile(`\d+SM`)
	tempRegex        = regexp.MustCompile(`^M?\d{2}/M?\d{2}$`)
	pressureRegex    = regexp.MustCompile(`A\d{4}`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
	stationCodeRegex = regexp.MustCompile(`^[A-Z]+$`)
)

// Anchored single-field patterns used when a report is parsed without a
// provider record
var (
	timeGroupRegex  = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z$`)
	windGroupRegex  = regexp.MustCompile(`^(\d{3}|VRB)(\d{2,3})(G(\d{2,3}))?KT`)
	visGroupRegex   = regexp.MustCompile(`^([MP]?\d+(?:/\d+)?)SM$`)
	cloudRegex      = regexp.MustCompile(`^(CLR|FEW|SCT|BKN|OVC)(\d{3})?(CB|TCU)?$`)
	tempGroupRegex  = regexp.MustCompile(`^(M?)(\d{2})/(M?)(\d{2})$`)
	altimeterRegex  = regexp.MustCompile(`^A(\d{4})$`)
	wholeMilesRegex = regexp.MustCompile(`^\d$`)
)
