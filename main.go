package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

func main() {
	// Define command-line flags
	noRawFlag := flag.Bool("no-raw", false, "Hide raw data")
	noDecodeFlag := flag.Bool("no-decode", false, "Show only raw data without decoding")
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	focusFlag := flag.String("focus", "", "Emphasize one part of the report: station-id, time, wind, visibility, sky-condition, temp-dewpoint or altimeter")
	fahrenheitFlag := flag.Bool("fahrenheit", false, "Also show temperatures in Fahrenheit")
	configFlag := flag.String("config", "", "Path to a TOML config file")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *flagNoColor {
		color.NoColor = true // disables colorized output globally
	}

	cfg, err := LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if *debugFlag {
		level = "debug"
	}
	log, err := newLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	focus := TokenClass(strings.ToLower(*focusFlag))
	if focus != "" && !slices.Contains(TokenClasses, focus) {
		fmt.Fprintf(os.Stderr, "Error: unknown -focus value %q\n", *focusFlag)
		os.Exit(1)
	}

	opts := displayOptions{
		NoRaw:      *noRawFlag,
		NoDecode:   *noDecodeFlag,
		Focus:      focus,
		Fahrenheit: *fahrenheitFlag || cfg.Fahrenheit,
		Palette:    NewPalette(cfg.Colors),
	}

	// First check stdin for piped data
	stationCode, rawInput, stdinHasData := readFromStdin()
	if stdinHasData {
		processRawMETAR(os.Stdout, stationCode, rawInput, opts, log)
		return
	}

	// Try command line args first, then prompt the user
	if remainingArgs := flag.Args(); len(remainingArgs) > 0 {
		stationCode, err = getStationCodeFromArgs(remainingArgs)
	} else {
		stationCode, err = promptForStationCode(os.Stdin, os.Stdout)
	}
	if err != nil {
		reportError(os.Stdout, stationCode, err)
		log.Sync()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := &http.Client{Timeout: cfg.RequestTimeout()}
	log.Debug("Using data provider", zap.String("base_url", cfg.APIBaseURL), zap.Duration("timeout", client.Timeout))

	if err := processMETAR(ctx, os.Stdout, client, cfg, stationCode, opts, log); err != nil {
		log.Debug("METAR processing failed", zap.String("station", stationCode), zap.Error(err))
		reportError(os.Stdout, stationCode, err)
		stop()
		log.Sync()
		os.Exit(1)
	}
}
