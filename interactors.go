package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StationCodeError explains why a station code was rejected
type StationCodeError struct {
	Code   string
	Reason string
}

func (e *StationCodeError) Error() string {
	if e.Code == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// readFromStdin reads a raw METAR line from stdin if data is piped in
func readFromStdin() (string, string, bool) {
	// Check if input is being piped in (stdin)
	info, err := os.Stdin.Stat()
	stdinHasData := (err == nil && info.Mode()&os.ModeCharDevice == 0)

	if !stdinHasData {
		return "", "", false
	}

	return readRawReport(os.Stdin)
}

// readRawReport reads the first line from r and takes its first field as the
// station code, skipping a leading METAR or SPECI report type
func readRawReport(r io.Reader) (string, string, bool) {
	scanner := bufio.NewScanner(r)
	if scanner.Scan() {
		rawInput := strings.TrimSpace(scanner.Text())

		parts := strings.Fields(rawInput)
		if len(parts) > 0 && (parts[0] == "METAR" || parts[0] == "SPECI") {
			parts = parts[1:]
		}
		if len(parts) > 0 {
			return parts[0], rawInput, true
		}
	}

	return "", "", false
}

// validateStationCode normalizes a US ICAO airport code and checks it
func validateStationCode(input string) (string, error) {
	stationCode := strings.ToUpper(strings.TrimSpace(input))

	switch {
	case stationCode == "":
		return "", &StationCodeError{Reason: "please enter an airport"}
	case !stationCodeRegex.MatchString(stationCode):
		return "", &StationCodeError{Code: stationCode, Reason: "please enter alphabet characters only"}
	case !strings.ContainsAny(stationCode[:1], "KNPT"):
		return "", &StationCodeError{Code: stationCode, Reason: "US ICAO airport codes begin with K, N, P, or T"}
	case len(stationCode) != 4:
		return "", &StationCodeError{Code: stationCode, Reason: "must be 4 characters"}
	}

	return stationCode, nil
}

// getStationCodeFromArgs gets station code from command-line args
func getStationCodeFromArgs(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("no station code provided")
	}
	return validateStationCode(args[0])
}

// promptForStationCode prompts the user for a station code
func promptForStationCode(r io.Reader, w io.Writer) (string, error) {
	reader := bufio.NewReader(r)
	fmt.Fprint(w, "Enter US ICAO airport code (e.g., KAVL, PHNL): ")
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return "", fmt.Errorf("error reading input: %w", err)
	}

	return validateStationCode(input)
}
