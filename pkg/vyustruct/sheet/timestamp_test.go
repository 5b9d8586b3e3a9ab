package sheet

import (
	"errors"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"00:00:00:000", 0},
		{"00:01:01:123", 61123},
		{"23:59:59:999", 86399999},
		{"01:00:00:000", 3600000},
		{"100:00:00:000", 360000000},
	}

	for _, tt := range tests {
		result, err := ParseTimestamp(tt.input)
		if err != nil {
			t.Errorf("ParseTimestamp(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseTimestamp(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	inputs := []string{"", "00:00:00", "00:00:00:000:000", "aa:00:00:000", "00:-1:00:000", "00::00:000", "00:00:00:+12", "99999999999999999:00:00:000"}

	for _, input := range inputs {
		_, err := ParseTimestamp(input)
		if !errors.Is(err, ErrFormat) {
			t.Errorf("ParseTimestamp(%q) error = %v, expected ErrFormat", input, err)
		}
		var fe *FormatError
		if !errors.As(err, &fe) || fe.Input != input {
			t.Errorf("ParseTimestamp(%q) did not return a FormatError for the input", input)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "00:00:00:000"},
		{61123, "00:01:01:123"},
		{86399999, "23:59:59:999"},
		{86400000, "24:00:00:000"},
		{360000000, "100:00:00:000"},
	}

	for _, tt := range tests {
		result := FormatTimestamp(tt.input)
		if result != tt.expected {
			t.Errorf("FormatTimestamp(%d) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	for _, ms := range []int64{0, 1, 999, 1000, 59999, 61123, 3599999, 86399999, 86400001, 359999999, 987654321} {
		back, err := ParseTimestamp(FormatTimestamp(ms))
		if err != nil {
			t.Fatalf("ParseTimestamp(FormatTimestamp(%d)) returned error: %v", ms, err)
		}
		if back != ms {
			t.Errorf("round trip of %d gave %d", ms, back)
		}
	}

	for _, ts := range []string{"00:00:00:000", "12:34:56:789", "99:59:59:999"} {
		ms, err := ParseTimestamp(ts)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q) returned error: %v", ts, err)
		}
		if got := FormatTimestamp(ms); got != ts {
			t.Errorf("round trip of %q gave %q", ts, got)
		}
	}
}

func TestToMillis(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected int64
	}{
		{0, 0},
		{61123, 61123},
		{int64(86399999), 86399999},
		{uint32(42), 42},
		{float64(1500), 1500},
		{"00:01:01:123", 61123},
	}

	for _, tt := range tests {
		result, err := ToMillis(tt.input)
		if err != nil {
			t.Errorf("ToMillis(%v) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ToMillis(%v) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestToMillisRejects(t *testing.T) {
	for _, input := range []interface{}{-1, int64(-5), 1.5, "bad", []byte("00:00:00:000"), nil} {
		if _, err := ToMillis(input); !errors.Is(err, ErrFormat) {
			t.Errorf("ToMillis(%v) error = %v, expected ErrFormat", input, err)
		}
	}
}
