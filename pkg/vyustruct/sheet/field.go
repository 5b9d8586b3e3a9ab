package sheet

import "fmt"

// Intrinsic field codes present on every cell regardless of schema.
const (
	OrdinalField = "ordinal"
	OnsetField   = "onset"
	OffsetField  = "offset"
)

// FieldKind distinguishes intrinsic cell attributes from schema fields.
type FieldKind uint8

const (
	// FieldSchema refers to a user-defined code in the column schema.
	FieldSchema FieldKind = iota
	// FieldOrdinal refers to the cell ordinal.
	FieldOrdinal
	// FieldOnset refers to the cell onset in milliseconds.
	FieldOnset
	// FieldOffset refers to the cell offset in milliseconds.
	FieldOffset
)

// FieldRef is a field code resolved against a schema.
type FieldRef struct {
	Kind FieldKind
	// Index is the schema position; only meaningful for FieldSchema.
	Index int
}

// Schema is the ordered, immutable list of code names shared by a column and its cells.
type Schema struct {
	names []string
	index map[string]int
}

// NewSchema builds a schema from field names.
// Names must be unique and must not shadow an intrinsic field.
func NewSchema(names ...string) (*Schema, error) {
	s := &Schema{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		switch name {
		case OrdinalField, OnsetField, OffsetField:
			return nil, fmt.Errorf("%w: field %q is reserved", ErrInvalidSchema, name)
		}
		if _, dup := s.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, name)
		}
		s.names[i] = name
		s.index[name] = i
	}
	return s, nil
}

// Names returns a copy of the field names in schema order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of schema fields.
func (s *Schema) Len() int {
	return len(s.names)
}

// Resolve maps a field code to a FieldRef.
func (s *Schema) Resolve(code string) (FieldRef, bool) {
	switch code {
	case OrdinalField:
		return FieldRef{Kind: FieldOrdinal}, true
	case OnsetField:
		return FieldRef{Kind: FieldOnset}, true
	case OffsetField:
		return FieldRef{Kind: FieldOffset}, true
	}
	i, ok := s.index[code]
	if !ok {
		return FieldRef{}, false
	}
	return FieldRef{Kind: FieldSchema, Index: i}, true
}

func (s *Schema) equal(other *Schema) bool {
	if s == other {
		return true
	}
	if len(s.names) != len(other.names) {
		return false
	}
	for i := range s.names {
		if s.names[i] != other.names[i] {
			return false
		}
	}
	return true
}
