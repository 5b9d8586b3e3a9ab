// Package vyustruct loads, saves, merges and exports Datavyu annotation spreadsheets.
package vyustruct

import (
	"log/slog"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/output"
)

// Options configures loading, merging and export behavior.
type Options struct {
	// Prune drops merged intervals to which no column contributed a value.
	// If nil, defaults to true.
	Prune *bool
	// TimeFormat controls how onsets and offsets appear in tabular exports.
	TimeFormat output.TimeFormat
	// Pretty indents JSON output.
	Pretty bool
	// Logger receives parse warnings. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		TimeFormat: output.TimeTimestamp,
	}
}

// ShouldPrune returns whether empty merged intervals are dropped.
func (o Options) ShouldPrune() bool {
	if o.Prune != nil {
		return *o.Prune
	}
	return true
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) timeFormat() output.TimeFormat {
	if o.TimeFormat.Valid() {
		return o.TimeFormat
	}
	return output.TimeTimestamp
}
