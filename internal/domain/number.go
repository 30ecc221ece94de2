package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseNumber coerces free text to a float64 the way a browser number field
// does. Empty and non-numeric text reads as 0. "Infinity" and values beyond
// the float64 range read as ±Inf, and 0x/0o/0b integer literals are accepted.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if v, ok := parseRadixInteger(s); ok {
		return v
	}
	if strings.TrimLeft(s, "0123456789+-.eE") != "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// parseRadixInteger reads unsigned 0x, 0o and 0b literals. Digits are
// accumulated as float64 so oversized literals round instead of failing.
func parseRadixInteger(s string) (float64, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, false
	}

	var base float64
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}

	var v float64
	for _, r := range s[2:] {
		var d float64
		switch {
		case r >= '0' && r <= '9':
			d = float64(r - '0')
		case r >= 'a' && r <= 'f':
			d = float64(r-'a') + 10
		case r >= 'A' && r <= 'F':
			d = float64(r-'A') + 10
		default:
			return 0, false
		}
		if d >= base {
			return 0, false
		}
		v = v*base + d
	}
	return v, true
}

// ParseNonNegative is ParseNumber with negative values floored to 0.
func ParseNonNegative(s string) float64 {
	return NonNegative(ParseNumber(s))
}

// NonNegative floors v at 0 and maps NaN to 0.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// TimestampLayout is the datetime-local layout used for form values.
const TimestampLayout = "2006-01-02T15:04"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	TimestampLayout,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a calendar date-time. Values without a zone are read
// in loc (UTC when loc is nil).
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
