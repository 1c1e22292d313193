package main

import (
	"regexp"
	"strings"
)

// Tokenize splits a raw METAR into classified display tokens, preserving field
// order. Wind groups with a detached variability suffix and runs of adjacent
// sky-condition codes are kept together as single tokens.
func Tokenize(raw, stationID string) []Token {
	fields := strings.Fields(encodeGroups(raw))
	tokens := make([]Token, 0, len(fields))

	for _, field := range fields {
		class := classifyField(field, stationID)
		text := field
		if class == ClassWind || class == ClassSkyCondition {
			text = decodeGroup(field)
		}
		tokens = append(tokens, Token{Text: text, Class: class})
	}

	return tokens
}

// encodeGroups replaces the whitespace inside every wind group and every run
// of sky-condition codes with joinMarker so each survives a whitespace split
func encodeGroups(raw string) string {
	encoded := joinWithin(raw, windRegex, 0)
	return joinWithin(encoded, skyRunRegex, 1)
}

// joinWithin rewrites the spans matched by re (or by its capture group when
// group > 0), collapsing each whitespace run inside a span to joinMarker
func joinWithin(s string, re *regexp.Regexp, group int) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		start, end := m[2*group], m[2*group+1]
		if start < 0 {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString(whitespaceRegex.ReplaceAllString(s[start:end], joinMarker))
		last = end
	}
	b.WriteString(s[last:])

	return b.String()
}

// decodeGroup restores the whitespace removed by encodeGroups for display.
// A hyphen that was already in the report, as in "24015KT-RA", becomes a space too.
func decodeGroup(field string) string {
	return strings.ReplaceAll(field, joinMarker, " ")
}

// classifyField returns the class of a single field; the first matching rule wins
func classifyField(field, stationID string) TokenClass {
	switch {
	case stationID != "" && field == stationID:
		return ClassStationID
	case timeRegex.MatchString(field):
		return ClassTime
	case windRegex.MatchString(field):
		return ClassWind
	case visRegex.MatchString(field):
		return ClassVisibility
	case hasSkyCoveragePrefix(field):
		return ClassSkyCondition
	case tempRegex.MatchString(field):
		return ClassTempDewpoint
	case pressureRegex.MatchString(field):
		return ClassAltimeter
	default:
		return ClassPlain
	}
}

func hasSkyCoveragePrefix(field string) bool {
	for _, code := range skyCoverageCodes {
		if strings.HasPrefix(field, code) {
			return true
		}
	}
	return false
}
