// Package timespec converts the time literals and speed factors used across
// the timeline model into exact, comparable values.
//
// Accepted time-literal shapes:
//
//   - numeric seconds (float64, float32, int, int64)
//   - time.Duration
//   - clock strings: "SS[.fff]", "MM:SS[.fff]", "HH:MM:SS[.fff]"
package timespec

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Literal is any accepted time-literal shape.
type Literal = any

// ConversionError reports a literal that cannot be converted.
type ConversionError struct {
	Literal any
	Reason  string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %v: %s", e.Literal, e.Reason)
}

// Seconds converts a time literal to seconds.
func Seconds(literal Literal) (float64, error) {
	var seconds float64

	switch value := literal.(type) {
	case float64:
		seconds = value
	case float32:
		seconds = float64(value)
	case int:
		seconds = float64(value)
	case int64:
		seconds = float64(value)
	case time.Duration:
		seconds = value.Seconds()
	case string:
		parsed, err := parseClock(value)
		if err != nil {
			return 0, err
		}
		seconds = parsed
	default:
		return 0, &ConversionError{Literal: literal, Reason: "unsupported time literal"}
	}

	if seconds < 0 {
		return 0, &ConversionError{Literal: literal, Reason: "time is negative"}
	}

	return seconds, nil
}

// parseClock parses "SS", "MM:SS" and "HH:MM:SS" strings, with an optional
// fractional part on the seconds field.
func parseClock(value string) (float64, error) {
	fields := strings.Split(strings.TrimSpace(value), ":")
	if len(fields) > 3 {
		return 0, &ConversionError{Literal: value, Reason: "too many clock fields"}
	}

	var seconds float64
	for _, field := range fields {
		part, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return 0, &ConversionError{Literal: value, Reason: "clock field is not a number"}
		}
		if part < 0 {
			return 0, &ConversionError{Literal: value, Reason: "clock field is negative"}
		}
		seconds = seconds*60 + part
	}

	return seconds, nil
}

// Intervals returns the consecutive differences of a location sequence.
// Fewer than two locations yield no intervals.
func Intervals(locations []float64) []float64 {
	if len(locations) < 2 {
		return nil
	}

	intervals := make([]float64, 0, len(locations)-1)
	for i := 1; i < len(locations); i++ {
		intervals = append(intervals, locations[i]-locations[i-1])
	}

	return intervals
}
