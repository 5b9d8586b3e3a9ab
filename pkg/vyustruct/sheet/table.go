package sheet

import "strconv"

// Row is one merged interval projected into tabular form.
type Row struct {
	Ordinal int
	Onset   int64
	Offset  int64
	Values  []string
}

// Table is the row-oriented projection of a merged column.
type Table struct {
	// Fields are the namespaced value columns, in merge order.
	Fields []string
	// Rows are ordered by ascending ordinal.
	Rows []Row
}

// Header returns the column headings: ordinal, onset, offset, then Fields.
func (t *Table) Header() []string {
	return append([]string{OrdinalField, OnsetField, OffsetField}, t.Fields...)
}

// Records renders every row as strings, formatting times with formatTime.
// A nil formatTime renders raw milliseconds.
func (t *Table) Records(formatTime func(int64) string) [][]string {
	if formatTime == nil {
		formatTime = func(ms int64) string { return strconv.FormatInt(ms, 10) }
	}
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rec := make([]string, 0, 3+len(r.Values))
		rec = append(rec, strconv.Itoa(r.Ordinal), formatTime(r.Onset), formatTime(r.Offset))
		out[i] = append(rec, r.Values...)
	}
	return out
}

// NewTable projects a column's cells in ordinal order.
func NewTable(col *Column) *Table {
	t := &Table{Fields: col.Fields()}
	for _, c := range col.SortedCells() {
		t.Rows = append(t.Rows, Row{
			Ordinal: c.ordinal,
			Onset:   c.onset,
			Offset:  c.offset,
			Values:  c.FieldValues(),
		})
	}
	return t
}
