package sheet

import (
	"errors"
	"fmt"
)

// ErrUnknownField indicates a field code that is neither intrinsic nor in the column schema.
var ErrUnknownField = errors.New("unknown field")

// ErrFormat indicates an unparseable timestamp or archive line.
var ErrFormat = errors.New("invalid format")

// ErrRange indicates an onset greater than its offset.
var ErrRange = errors.New("invalid range")

// ErrMissingResource indicates a named column or archive member that does not exist.
var ErrMissingResource = errors.New("missing resource")

// ErrInvalidSchema indicates a duplicate or reserved field name in a column schema.
var ErrInvalidSchema = errors.New("invalid schema")

// ErrNoColumns indicates an operation that requires at least one column name.
var ErrNoColumns = errors.New("column list cannot be empty")

// UnknownFieldError reports a field code unknown to a column.
type UnknownFieldError struct {
	Column string
	Field  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("column %q has no field %q", e.Column, e.Field)
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}

// FormatError reports input that could not be parsed.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// RangeError reports a window whose onset is after its offset.
type RangeError struct {
	Onset  int64
	Offset int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("onset %s is greater than offset %s",
		FormatTimestamp(e.Onset), FormatTimestamp(e.Offset))
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

// MissingResourceError reports a lookup of something that is not there.
type MissingResourceError struct {
	Kind string // "column", "archive member"
	Name string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *MissingResourceError) Unwrap() error {
	return ErrMissingResource
}
