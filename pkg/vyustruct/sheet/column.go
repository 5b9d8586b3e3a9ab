package sheet

import (
	"sort"
	"strings"
)

// Column is a named coding pass: a field schema and an unordered set of cells.
// Cell order is insertion order; use SortedCells for ordinal order.
type Column struct {
	name   string
	schema *Schema
	cells  []*Cell
}

// NewColumn creates an empty column with the given field names.
func NewColumn(name string, fields ...string) (*Column, error) {
	schema, err := NewSchema(fields...)
	if err != nil {
		return nil, err
	}
	return &Column{name: name, schema: schema}, nil
}

// Name returns the column name.
func (col *Column) Name() string { return col.name }

// Schema returns the column schema.
func (col *Column) Schema() *Schema { return col.schema }

// Fields returns the schema field names in order.
func (col *Column) Fields() []string { return col.schema.Names() }

// Len returns the number of cells.
func (col *Column) Len() int { return len(col.cells) }

// Cells returns the cells in insertion order.
func (col *Column) Cells() []*Cell {
	out := make([]*Cell, len(col.cells))
	copy(out, col.cells)
	return out
}

// Field resolves a field code against the column schema.
func (col *Column) Field(code string) (FieldRef, error) {
	ref, ok := col.schema.Resolve(code)
	if !ok {
		return FieldRef{}, &UnknownFieldError{Column: col.name, Field: code}
	}
	return ref, nil
}

// NewCell appends a cell whose schema fields are set positionally.
func (col *Column) NewCell(values ...string) *Cell {
	c := newCell(col.name, col.schema)
	c.SetValuesInOrder(values...)
	col.cells = append(col.cells, c)
	return c
}

// NewCellWith appends a cell with positional values followed by named overrides.
// Overrides may address intrinsic fields. The cell is only appended when every
// override applies.
func (col *Column) NewCellWith(values []string, overrides map[string]interface{}) (*Cell, error) {
	c := newCell(col.name, col.schema)
	c.SetValuesInOrder(values...)
	for code, value := range overrides {
		if err := c.ChangeField(code, value); err != nil {
			return nil, err
		}
	}
	col.cells = append(col.cells, c)
	return c, nil
}

// RemoveCell removes c from the column and reports whether it was present.
func (col *Column) RemoveCell(c *Cell) bool {
	for i, existing := range col.cells {
		if existing == c {
			col.cells = append(col.cells[:i], col.cells[i+1:]...)
			return true
		}
	}
	return false
}

// SortedCells returns the cells ordered by ordinal; ties keep insertion order.
func (col *Column) SortedCells() []*Cell {
	out := col.Cells()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ordinal < out[j].ordinal
	})
	return out
}

// CellAt returns the first cell in insertion order spanning t, or nil.
func (col *Column) CellAt(t int64) *Cell {
	for _, c := range col.cells {
		if c.SpansTime(t) {
			return c
		}
	}
	return nil
}

// CellInRange returns the first cell in insertion order overlapping [onset, offset], or nil.
func (col *Column) CellInRange(onset, offset int64) *Cell {
	for _, c := range col.cells {
		if c.InRange(onset, offset) {
			return c
		}
	}
	return nil
}

// ValuesAt returns the values of the cell spanning t, or nil if there is none.
func (col *Column) ValuesAt(t int64, includeIntrinsics bool) ([]interface{}, error) {
	c := col.CellAt(t)
	if c == nil {
		return nil, nil
	}
	return c.Values(includeIntrinsics)
}

// Trim keeps only cells overlapping [onset, offset], clipped to that window.
// With shift, bounds are moved so the window starts at zero.
func (col *Column) Trim(onset, offset int64, shift bool) *Column {
	kept := col.cells[:0]
	for _, c := range col.cells {
		if !c.InRange(onset, offset) {
			continue
		}
		c.clip(onset, offset)
		if shift {
			c.shift(onset)
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(col.cells); i++ {
		col.cells[i] = nil
	}
	col.cells = kept
	return col
}

// Equal compares schemas and cells pairwise in insertion order.
func (col *Column) Equal(other *Column) bool {
	if col == nil || other == nil {
		return col == other
	}
	if !col.schema.equal(other.schema) || len(col.cells) != len(other.cells) {
		return false
	}
	for i, c := range col.cells {
		if !c.Equal(other.cells[i]) {
			return false
		}
	}
	return true
}

func (col *Column) String() string {
	var b strings.Builder
	b.WriteString(col.name)
	b.WriteString("(")
	b.WriteString(strings.Join(col.schema.names, ","))
	b.WriteString("):\n[")
	for i, c := range col.SortedCells() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(c.String())
	}
	b.WriteString("]")
	return b.String()
}
