package sheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is one annotated interval (or instant) in a column.
type Cell struct {
	column  string
	schema  *Schema
	ordinal int
	onset   int64
	offset  int64
	values  []string
}

func newCell(column string, schema *Schema) *Cell {
	return &Cell{
		column: column,
		schema: schema,
		values: make([]string, schema.Len()),
	}
}

// Column returns the name of the owning column.
func (c *Cell) Column() string { return c.column }

// Ordinal returns the cell ordinal.
func (c *Cell) Ordinal() int { return c.ordinal }

// Onset returns the onset in milliseconds.
func (c *Cell) Onset() int64 { return c.onset }

// Offset returns the offset in milliseconds.
func (c *Cell) Offset() int64 { return c.offset }

// SetOrdinal sets the ordinal.
func (c *Cell) SetOrdinal(ordinal int) { c.ordinal = ordinal }

// SetOnset sets the onset in milliseconds.
func (c *Cell) SetOnset(ms int64) { c.onset = ms }

// SetOffset sets the offset in milliseconds.
func (c *Cell) SetOffset(ms int64) { c.offset = ms }

// IsPoint reports whether the cell has zero duration.
func (c *Cell) IsPoint() bool { return c.onset == c.offset }

// FieldValues returns a copy of the schema values in schema order.
func (c *Cell) FieldValues() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

func (c *Cell) resolve(code string) (FieldRef, error) {
	ref, ok := c.schema.Resolve(code)
	if !ok {
		return FieldRef{}, &UnknownFieldError{Column: c.column, Field: code}
	}
	return ref, nil
}

// ChangeField sets an intrinsic or schema field by code.
// Onset and offset accept integer milliseconds or HH:MM:SS:mmm strings.
func (c *Cell) ChangeField(code string, value interface{}) error {
	ref, err := c.resolve(code)
	if err != nil {
		return err
	}
	return c.Set(ref, value)
}

// Set assigns a value to a resolved field.
func (c *Cell) Set(ref FieldRef, value interface{}) error {
	switch ref.Kind {
	case FieldOrdinal:
		n, err := toOrdinal(value)
		if err != nil {
			return err
		}
		c.ordinal = n
	case FieldOnset:
		ms, err := ToMillis(value)
		if err != nil {
			return err
		}
		c.onset = ms
	case FieldOffset:
		ms, err := ToMillis(value)
		if err != nil {
			return err
		}
		c.offset = ms
	default:
		c.values[ref.Index] = toValue(value)
	}
	return nil
}

// Field returns the value of an intrinsic or schema field by code.
// Ordinal is returned as int, onset and offset as int64 milliseconds, schema fields as string.
func (c *Cell) Field(code string) (interface{}, error) {
	ref, err := c.resolve(code)
	if err != nil {
		return nil, err
	}
	return c.Get(ref), nil
}

// Get returns the value of a resolved field.
func (c *Cell) Get(ref FieldRef) interface{} {
	switch ref.Kind {
	case FieldOrdinal:
		return c.ordinal
	case FieldOnset:
		return c.onset
	case FieldOffset:
		return c.offset
	default:
		return c.values[ref.Index]
	}
}

// SetValuesInOrder assigns values by schema position.
// Extra values are ignored and missing ones keep their current value.
func (c *Cell) SetValuesInOrder(values ...string) {
	for i := 0; i < len(values) && i < len(c.values); i++ {
		c.values[i] = values[i]
	}
}

// Values returns the requested field values, defaulting to the full schema.
// With includeIntrinsics the ordinal, onset and offset are prepended.
func (c *Cell) Values(includeIntrinsics bool, fields ...string) ([]interface{}, error) {
	if len(fields) == 0 {
		fields = c.schema.names
	}
	out := make([]interface{}, 0, len(fields)+3)
	if includeIntrinsics {
		out = append(out, c.ordinal, c.onset, c.offset)
	}
	for _, code := range fields {
		v, err := c.Field(code)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SpansTime reports whether t lies within [onset, offset], inclusive at both ends.
func (c *Cell) SpansTime(t int64) bool {
	return c.onset <= t && t <= c.offset
}

// InRange reports whether the cell overlaps [onset, offset]; touching boundaries count.
func (c *Cell) InRange(onset, offset int64) bool {
	return !(onset > c.offset || offset < c.onset)
}

// IsEmpty reports whether every schema value is blank.
func (c *Cell) IsEmpty() bool {
	for _, v := range c.values {
		if v != "" {
			return false
		}
	}
	return true
}

// Equal compares bounds and values; ordinal and owning column are ignored.
func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.onset != other.onset || c.offset != other.offset {
		return false
	}
	if !c.schema.equal(other.schema) {
		return false
	}
	for i := range c.values {
		if c.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

func (c *Cell) String() string {
	return fmt.Sprintf("%s(%d,%s-%s,%s)", c.column, c.ordinal,
		FormatTimestamp(c.onset), FormatTimestamp(c.offset), strings.Join(c.values, ","))
}

func (c *Cell) clip(onset, offset int64) {
	c.onset = max(onset, c.onset)
	c.offset = min(offset, c.offset)
}

func (c *Cell) shift(by int64) {
	c.onset = max(c.onset-by, 0)
	c.offset = max(c.offset-by, 0)
}

func toOrdinal(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, &FormatError{Input: v, Reason: "ordinal is not an integer"}
		}
		return n, nil
	default:
		return 0, &FormatError{Input: fmt.Sprint(value), Reason: fmt.Sprintf("unsupported ordinal type %T", value)}
	}
}

func toValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
