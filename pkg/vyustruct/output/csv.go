package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/sheet"
)

// WriteCSV writes a merged table as CSV with a header row.
func WriteCSV(w io.Writer, t *sheet.Table, format TimeFormat) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Records(format.Formatter())); err != nil {
		return err
	}
	return cw.Error()
}
