package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// displayOptions controls what processMETAR prints
type displayOptions struct {
	NoRaw      bool
	NoDecode   bool
	Focus      TokenClass
	Fahrenheit bool
	Palette    Palette
}

// processRawMETAR highlights and decodes a METAR supplied directly by the user.
// The observation is parsed from the report itself. A report with no sky
// groups is shown without the decoded block.
func processRawMETAR(w io.Writer, stationCode, raw string, opts displayOptions, log *zap.Logger) {
	tokens := Tokenize(raw, stationCode)
	log.Debug("Tokenized raw METAR", zap.String("station", stationCode), zap.Int("tokens", len(tokens)))

	if !opts.NoRaw {
		sectionColor.Fprintln(w, "Raw METAR:")
		fmt.Fprintln(w, FormatTokens(tokens, opts.Palette, opts.Focus))
	}

	if opts.NoDecode {
		return
	}

	obs := observationFromRaw(stationCode, raw)
	fields, err := DecodeFields(obs.Raw, obs)
	if err != nil {
		log.Warn("Could not decode raw METAR", zap.String("station", stationCode), zap.Error(err))
		return
	}

	if !opts.NoRaw {
		fmt.Fprintln(w)
	}
	sectionColor.Fprintln(w, "Decoded METAR:")
	fmt.Fprint(w, FormatDecoded(obs, fields, SiteInfo{Name: stationCode}, opts.Palette, opts.Focus, opts.Fahrenheit))
}

// processMETAR fetches, decodes and displays the METAR for a station
func processMETAR(ctx context.Context, w io.Writer, client *http.Client, cfg *Config, stationCode string, opts displayOptions, log *zap.Logger) error {
	site := SiteInfo{Name: stationCode}
	if !opts.NoDecode {
		fetched, err := FetchSiteInfo(ctx, client, cfg.APIBaseURL, stationCode)
		if err != nil {
			log.Warn("Could not fetch site info", zap.String("station", stationCode), zap.Error(err))
		} else {
			site = fetched
			fmt.Fprintln(w, formatSiteInfo(site))
		}
	}

	fmt.Fprintf(w, "Fetching METAR for %s...\n", stationCode)
	obs, err := FetchObservation(ctx, client, cfg.APIBaseURL, stationCode)
	if err != nil {
		return err
	}
	log.Debug("Fetched observation", zap.String("station", obs.StationID), zap.String("raw", obs.Raw))

	// Show raw METAR by default, unless --no-raw flag is used
	if !opts.NoRaw {
		fmt.Fprintln(w)
		sectionColor.Fprintln(w, "Raw METAR:")
		fmt.Fprintln(w, FormatTokens(Tokenize(obs.Raw, obs.StationID), opts.Palette, opts.Focus))
	}

	if opts.NoDecode {
		return nil
	}

	fields, err := DecodeFields(obs.Raw, obs)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	sectionColor.Fprintln(w, "Decoded METAR:")
	fmt.Fprint(w, FormatDecoded(obs, fields, site, opts.Palette, opts.Focus, opts.Fahrenheit))

	return nil
}

// reportError prints an error the way the user should see it
func reportError(w io.Writer, stationCode string, err error) {
	var missing *MissingFieldError
	var badCode *StationCodeError

	switch {
	case errors.As(err, &badCode):
		errorColor.Fprintf(w, "Error: %v\n", err)
	case errors.As(err, &missing), errors.Is(err, ErrNoMETAR):
		errorColor.Fprintf(w, "No METAR found for %s.\n", stationCode)
	default:
		errorColor.Fprintf(w, "Error: %v\n", err)
	}
}
