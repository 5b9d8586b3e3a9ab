package output

import (
	"fmt"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/sheet"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the worksheet used for table exports.
const DefaultSheetName = "Sheet1"

// WriteXLSX saves a merged table as a workbook with one header row and one row per interval.
// Ordinals are written as numbers; times follow format.
func WriteXLSX(path string, t *sheet.Table, format TimeFormat) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(DefaultSheetName)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	header := t.Header()
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := sw.SetRow("A1", row); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range t.Rows {
		row := make([]interface{}, 0, 3+len(r.Values))
		row = append(row, r.Ordinal)
		if format == TimeMillis {
			row = append(row, r.Onset, r.Offset)
		} else {
			row = append(row, sheet.FormatTimestamp(r.Onset), sheet.FormatTimestamp(r.Offset))
		}
		for _, v := range r.Values {
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", r.Ordinal, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush rows: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}
