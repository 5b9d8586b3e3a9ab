package vyustruct

import (
	"errors"
	"fmt"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/sheet"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates a file extension with no reader or writer.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Errors raised by the spreadsheet model, re-exported for errors.Is checks.
var (
	ErrUnknownField    = sheet.ErrUnknownField
	ErrFormat          = sheet.ErrFormat
	ErrRange           = sheet.ErrRange
	ErrMissingResource = sheet.ErrMissingResource
)

// OperationError represents a failed load, save or export.
type OperationError struct {
	Path string
	Op   string // "open", "save", "export"
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, path string, err error) *OperationError {
	return &OperationError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
