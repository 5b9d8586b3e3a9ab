package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// timestampFactors scale the running total before each HH:MM:SS:mmm field is added.
var timestampFactors = [4]int64{1, 60, 60, 1000}

// ToMillis converts v to integer milliseconds.
// Integer values pass through unchanged; strings are parsed as HH:MM:SS:mmm.
func ToMillis(v interface{}) (int64, error) {
	var ms int64
	switch t := v.(type) {
	case string:
		return ParseTimestamp(t)
	case int:
		ms = int64(t)
	case int32:
		ms = int64(t)
	case int64:
		ms = t
	case uint:
		if uint64(t) > math.MaxInt64 {
			return 0, &FormatError{Input: fmt.Sprint(v), Reason: "out of range"}
		}
		ms = int64(t)
	case uint32:
		ms = int64(t)
	case uint64:
		if t > math.MaxInt64 {
			return 0, &FormatError{Input: fmt.Sprint(v), Reason: "out of range"}
		}
		ms = int64(t)
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) || math.IsNaN(t) {
			return 0, &FormatError{Input: fmt.Sprint(v), Reason: "not a whole number of milliseconds"}
		}
		ms = int64(t)
	default:
		return 0, &FormatError{Input: fmt.Sprint(v), Reason: fmt.Sprintf("unsupported type %T", v)}
	}
	if ms < 0 {
		return 0, &FormatError{Input: fmt.Sprint(v), Reason: "negative time"}
	}
	return ms, nil
}

// ParseTimestamp parses an HH:MM:SS:mmm string into milliseconds.
// The string must have exactly four colon-separated unsigned decimal parts.
func ParseTimestamp(s string) (int64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != len(timestampFactors) {
		return 0, &FormatError{Input: s, Reason: "expected 4 colon-separated fields"}
	}

	var ms int64
	for i, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return 0, &FormatError{Input: s, Reason: fmt.Sprintf("field %d is not numeric", i+1)}
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, &FormatError{Input: s, Reason: err.Error()}
		}
		if ms > (math.MaxInt64-n)/timestampFactors[i] {
			return 0, &FormatError{Input: s, Reason: "timestamp out of range"}
		}
		ms = ms*timestampFactors[i] + n
	}
	return ms, nil
}

// FormatTimestamp renders milliseconds as HH:MM:SS:mmm.
// Hours are not wrapped at 24; values of 100 hours or more widen the hour field.
func FormatTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	millis := ms % 1000
	secs := ms / 1000
	s := secs % 60
	mins := secs / 60
	m := mins % 60
	h := mins / 60
	return fmt.Sprintf("%02d:%02d:%02d:%03d", h, m, s, millis)
}
