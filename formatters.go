package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color names accepted in the config file
var colorAttributes = map[string]color.Attribute{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
}

// Palette maps each token class to the color it is highlighted with
type Palette map[TokenClass]color.Attribute

var defaultPalette = Palette{
	ClassStationID:    color.FgCyan,
	ClassTime:         color.FgGreen,
	ClassWind:         color.FgYellow,
	ClassVisibility:   color.FgMagenta,
	ClassSkyCondition: color.FgBlue,
	ClassTempDewpoint: color.FgRed,
	ClassAltimeter:    color.FgHiGreen,
	ClassPlain:        color.FgWhite,
}

var (
	valueColor   = color.New(color.FgWhite)
	sectionColor = color.New(color.FgBlue)
	errorColor   = color.New(color.FgRed)
)

// NewPalette returns the default palette with the named overrides applied.
// Unknown color names are ignored; Config.Validate reports them.
func NewPalette(overrides map[TokenClass]string) Palette {
	p := make(Palette, len(defaultPalette))
	for class, attr := range defaultPalette {
		p[class] = attr
	}
	for class, name := range overrides {
		if attr, ok := colorAttributes[name]; ok {
			p[class] = attr
		}
	}
	return p
}

// paint renders text in the color of class, emphasized when class is the focus
func (p Palette) paint(class TokenClass, focus TokenClass, text string) string {
	attrs := []color.Attribute{p[class]}
	if focus != "" && class == focus {
		attrs = append(attrs, color.Bold, color.Underline)
	}
	return color.New(attrs...).Sprint(text)
}

// FormatTokens renders the tokens of a report on one line, each colored by class
func FormatTokens(tokens []Token, palette Palette, focus TokenClass) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, palette.paint(tok.Class, focus, tok.Text))
	}
	return strings.Join(parts, " ")
}

// FormatDecoded renders the decoded fields of an observation, one labeled line
// per field. Each label uses the color of the matching token class.
func FormatDecoded(obs Observation, fields DecodedFields, site SiteInfo, palette Palette, focus TokenClass, fahrenheit bool) string {
	var sb strings.Builder

	line := func(class TokenClass, label, value string) {
		sb.WriteString(palette.paint(class, focus, label+":"))
		sb.WriteString(" ")
		sb.WriteString(valueColor.Sprint(value))
		sb.WriteString("\n")
	}

	station := obs.StationID
	if site.Name != "" && site.Name != obs.StationID {
		station = fmt.Sprintf("%s (%s)", obs.StationID, formatSiteInfo(site))
	}
	line(ClassStationID, "Airport ID", station)
	line(ClassTime, "Time of Observation", fields.Time)
	line(ClassWind, "Wind Direction / Speed", formatWindSpeed(obs, fields))
	line(ClassVisibility, "Visibility", obs.Visibility+" Statute Miles")
	line(ClassSkyCondition, "Sky Condition", fields.SkyCondition)
	line(ClassTempDewpoint, "Temperature / Dewpoint", formatTempDewpoint(obs, fahrenheit))
	line(ClassAltimeter, "Altimeter Setting", formatAltimeter(obs))

	return sb.String()
}

// formatSiteInfo renders a site as "Name, City, State", skipping empty parts
func formatSiteInfo(site SiteInfo) string {
	parts := []string{site.Name}
	for _, part := range []string{site.City, site.State} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func formatWindSpeed(obs Observation, fields DecodedFields) string {
	speed := obs.WindVel
	if fields.Gust != "" {
		speed += " " + fields.Gust
	}
	return fmt.Sprintf("%s / %s Knots", fields.WindDirection, speed)
}

func formatTempDewpoint(obs Observation, fahrenheit bool) string {
	text := fmt.Sprintf("%s°C / %s°C", obs.Temp, obs.Dewpoint)
	if !fahrenheit {
		return text
	}

	tempF, okT := fahrenheitText(obs.Temp)
	dewF, okD := fahrenheitText(obs.Dewpoint)
	if okT && okD {
		text += fmt.Sprintf(" (%s°F / %s°F)", tempF, dewF)
	}
	return text
}

func formatAltimeter(obs Observation) string {
	mb := millibarsText(obs)
	if mb == "" {
		return obs.AltHg + " inHg"
	}
	return fmt.Sprintf("%s inHg (%s mb)", obs.AltHg, mb)
}
