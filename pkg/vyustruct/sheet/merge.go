package sheet

import (
	"slices"
	"strconv"
)

// Merge aligns the cells of cols into a single column.
//
// Cell offsets are inclusive, so a cell [on, off] occupies the half-open
// span [on, off+1). The timeline is cut at every onset and at one
// millisecond past every offset, which also carves a one-millisecond
// interval [p, p+1) out of each point cell at p. Each interval [b_i, b_i+1)
// becomes one merged cell carrying the contemporaneous values of every
// source column under "<column>_<field>" names; a source cell contributes
// only to the intervals it covers entirely.
//
// With prune, intervals to which no column contributed are dropped without
// consuming an ordinal. The unpruned output therefore numbers the same
// non-empty rows differently: bounds and values match, ordinals do not.
func Merge(name string, cols []*Column, prune bool) (*Column, error) {
	var fields []string
	for _, col := range cols {
		fields = append(fields, col.name+"_"+OrdinalField)
		for _, f := range col.schema.names {
			fields = append(fields, col.name+"_"+f)
		}
	}
	merged, err := NewColumn(name, fields...)
	if err != nil {
		return nil, err
	}

	bounds := boundaries(cols)
	ordinal := 1
	for i := 0; i+1 < len(bounds); i++ {
		onset, offset := bounds[i], bounds[i+1]

		c := newCell(merged.name, merged.schema)
		c.ordinal = ordinal
		c.onset = onset
		c.offset = offset

		pos := 0
		for _, col := range cols {
			width := 1 + col.schema.Len()
			if src := col.CellAt(onset); covers(src, onset, offset) {
				c.values[pos] = strconv.Itoa(src.ordinal)
				copy(c.values[pos+1:pos+width], src.values)
			}
			pos += width
		}

		if prune && c.IsEmpty() {
			continue
		}
		merged.cells = append(merged.cells, c)
		ordinal++
	}
	return merged, nil
}

// covers reports whether c occupies the whole half-open interval [onset, offset).
func covers(c *Cell, onset, offset int64) bool {
	return c != nil && c.onset <= onset && c.offset+1 >= offset
}

// boundaries returns the sorted distinct partition points of all cells in cols.
func boundaries(cols []*Column) []int64 {
	var times []int64
	for _, col := range cols {
		for _, c := range col.cells {
			times = append(times, c.onset, c.offset+1)
		}
	}
	slices.Sort(times)
	return slices.Compact(times)
}
