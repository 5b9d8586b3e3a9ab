// Package sheet models an annotation spreadsheet: named columns of
// time-bounded cells, with cross-column alignment.
package sheet

// mergeScratchName names the intermediate column built by ToTable.
const mergeScratchName = "temp"

// Spreadsheet is a named collection of columns, kept in insertion order.
type Spreadsheet struct {
	Name    string
	columns map[string]*Column
	order   []string
}

// New returns an empty spreadsheet.
func New(name string) *Spreadsheet {
	return &Spreadsheet{
		Name:    name,
		columns: make(map[string]*Column),
	}
}

// NewColumn creates a column and adds it, replacing any column of the same name.
func (s *Spreadsheet) NewColumn(name string, fields ...string) (*Column, error) {
	col, err := NewColumn(name, fields...)
	if err != nil {
		return nil, err
	}
	s.AddColumn(col)
	return col, nil
}

// AddColumn adds col, replacing any column of the same name in place.
func (s *Spreadsheet) AddColumn(col *Column) {
	if _, ok := s.columns[col.name]; !ok {
		s.order = append(s.order, col.name)
	}
	s.columns[col.name] = col
}

// ColumnList returns the column names in insertion order.
func (s *Spreadsheet) ColumnList() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Column returns the named column.
func (s *Spreadsheet) Column(name string) (*Column, error) {
	col, ok := s.columns[name]
	if !ok {
		return nil, &MissingResourceError{Kind: "column", Name: name}
	}
	return col, nil
}

// Columns returns all columns in insertion order.
func (s *Spreadsheet) Columns() []*Column {
	out := make([]*Column, len(s.order))
	for i, name := range s.order {
		out[i] = s.columns[name]
	}
	return out
}

// MapColumns resolves names to columns, in argument order. No names means all columns.
func (s *Spreadsheet) MapColumns(names ...string) ([]*Column, error) {
	if len(names) == 0 {
		return s.Columns(), nil
	}
	out := make([]*Column, 0, len(names))
	for _, name := range names {
		col, err := s.Column(name)
		if err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	return out, nil
}

// FilterColumns keeps only the named columns, preserving their existing order.
func (s *Spreadsheet) FilterColumns(names ...string) (*Spreadsheet, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	keep := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := s.columns[name]; !ok {
			return nil, &MissingResourceError{Kind: "column", Name: name}
		}
		keep[name] = true
	}
	s.retain(func(col *Column) bool { return keep[col.name] })
	return s, nil
}

// RemoveEmptyColumns drops columns that have no cells.
func (s *Spreadsheet) RemoveEmptyColumns() *Spreadsheet {
	s.retain(func(col *Column) bool { return col.Len() > 0 })
	return s
}

func (s *Spreadsheet) retain(keep func(*Column) bool) {
	order := s.order[:0]
	for _, name := range s.order {
		if keep(s.columns[name]) {
			order = append(order, name)
		} else {
			delete(s.columns, name)
		}
	}
	s.order = order
}

// Trim clips every column to [onset, offset]; see Column.Trim.
func (s *Spreadsheet) Trim(onset, offset int64, shift bool) error {
	if onset > offset {
		return &RangeError{Onset: onset, Offset: offset}
	}
	for _, col := range s.columns {
		col.Trim(onset, offset, shift)
	}
	return nil
}

// MergeColumns merges the named columns (all if none) into a new column.
// The result is not added to the spreadsheet.
func (s *Spreadsheet) MergeColumns(outputName string, prune bool, names ...string) (*Column, error) {
	cols, err := s.MapColumns(names...)
	if err != nil {
		return nil, err
	}
	return Merge(outputName, cols, prune)
}

// ToTable merges the named columns (all if none) with pruning and projects the result.
func (s *Spreadsheet) ToTable(names ...string) (*Table, error) {
	merged, err := s.MergeColumns(mergeScratchName, true, names...)
	if err != nil {
		return nil, err
	}
	return NewTable(merged), nil
}

// CellsAt returns, per column, the cell spanning t. Entries are nil where no cell spans t.
func (s *Spreadsheet) CellsAt(t int64, names ...string) ([]*Cell, error) {
	cols, err := s.MapColumns(names...)
	if err != nil {
		return nil, err
	}
	out := make([]*Cell, len(cols))
	for i, col := range cols {
		out[i] = col.CellAt(t)
	}
	return out, nil
}

// ValuesAt concatenates the schema values of the cells spanning t, in column order.
func (s *Spreadsheet) ValuesAt(t int64, names ...string) ([]string, error) {
	cells, err := s.CellsAt(t, names...)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, c := range cells {
		if c != nil {
			out = append(out, c.values...)
		}
	}
	return out, nil
}

// Equal reports whether both spreadsheets hold equal columns under the same names.
func (s *Spreadsheet) Equal(other *Spreadsheet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.columns) != len(other.columns) {
		return false
	}
	for name, col := range s.columns {
		if !col.Equal(other.columns[name]) {
			return false
		}
	}
	return true
}
