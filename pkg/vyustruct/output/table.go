package output

import (
	"strconv"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/models"
	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/sheet"
)

// TimeFormat selects how onsets and offsets are rendered in tabular exports.
type TimeFormat string

const (
	// TimeTimestamp renders HH:MM:SS:mmm strings.
	TimeTimestamp TimeFormat = "timestamp"
	// TimeMillis renders integer milliseconds.
	TimeMillis TimeFormat = "millis"
)

// Valid reports whether f is a known format.
func (f TimeFormat) Valid() bool {
	return f == TimeTimestamp || f == TimeMillis
}

// Formatter returns the time rendering function for f.
func (f TimeFormat) Formatter() func(int64) string {
	if f == TimeMillis {
		return func(ms int64) string { return strconv.FormatInt(ms, 10) }
	}
	return sheet.FormatTimestamp
}

// ToTableData converts a merged table to its JSON model.
func ToTableData(t *sheet.Table, format TimeFormat) *models.TableData {
	data := &models.TableData{
		Fields: t.Fields,
		Rows:   make([]models.TableRow, len(t.Rows)),
	}
	for i, r := range t.Rows {
		row := models.TableRow{Ordinal: r.Ordinal, Values: r.Values}
		if format == TimeMillis {
			row.Onset, row.Offset = r.Onset, r.Offset
		} else {
			row.Onset, row.Offset = sheet.FormatTimestamp(r.Onset), sheet.FormatTimestamp(r.Offset)
		}
		data.Rows[i] = row
	}
	return data
}

// TableToJSON serializes a merged table.
func TableToJSON(t *sheet.Table, format TimeFormat, pretty bool) ([]byte, error) {
	return marshal(ToTableData(t, format), pretty)
}
