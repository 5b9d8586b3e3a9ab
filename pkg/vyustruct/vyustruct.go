package vyustruct

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/opf"
	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/output"
	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/sheet"
)

// Format identifies a spreadsheet or table file format.
type Format string

const (
	// FormatOPF is the zipped Datavyu archive.
	FormatOPF Format = "opf"
	// FormatJSON is the passes document for spreadsheets, or row JSON for tables.
	FormatJSON Format = "json"
	// FormatCSV is comma-separated table output.
	FormatCSV Format = "csv"
	// FormatXLSX is an Excel workbook table export.
	FormatXLSX Format = "xlsx"
	// FormatSQLite is a SQLite database table export.
	FormatSQLite Format = "sqlite"
)

// DetectFormat infers a format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".opf":
		return FormatOPF, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	}
	return "", ErrUnsupportedFormat
}

// Open loads a spreadsheet from an .opf archive or a .json passes document.
func Open(path string, opts Options) (*sheet.Spreadsheet, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, NewOperationError("open", path, ErrFileNotFound)
	}

	var s *sheet.Spreadsheet
	switch format {
	case FormatOPF:
		s, err = opf.Read(path, opts.logger())
	case FormatJSON:
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			s, err = output.FromJSON(data, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		}
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	opts.logger().Debug("spreadsheet loaded", "path", path, "name", s.Name, "columns", len(s.ColumnList()))
	return s, nil
}

// Save writes a spreadsheet as an .opf archive or a .json passes document.
// Saving over an existing archive preserves its other members.
func Save(s *sheet.Spreadsheet, path string, opts Options) error {
	format, err := DetectFormat(path)
	if err != nil {
		return NewOperationError("save", path, err)
	}

	switch format {
	case FormatOPF:
		err = opf.Write(s, path)
	case FormatJSON:
		var data []byte
		data, err = output.ToJSON(s, opts.Pretty)
		if err == nil {
			err = os.WriteFile(path, data, 0644)
		}
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return NewOperationError("save", path, err)
	}
	return nil
}

// Table merges the named columns (all if none) and projects the result,
// pruning according to opts.
func Table(s *sheet.Spreadsheet, opts Options, columns ...string) (*sheet.Table, error) {
	if opts.ShouldPrune() {
		return s.ToTable(columns...)
	}
	merged, err := s.MergeColumns("temp", false, columns...)
	if err != nil {
		return nil, err
	}
	return sheet.NewTable(merged), nil
}

// Export writes a merged table to path in the format implied by its extension.
func Export(ctx context.Context, t *sheet.Table, path string, opts Options) error {
	format, err := DetectFormat(path)
	if err != nil {
		return NewOperationError("export", path, err)
	}

	switch format {
	case FormatCSV:
		err = writeFile(path, func(f *os.File) error {
			return output.WriteCSV(f, t, opts.timeFormat())
		})
	case FormatXLSX:
		err = output.WriteXLSX(path, t, opts.timeFormat())
	case FormatSQLite:
		err = output.WriteSQLite(ctx, path, output.DefaultTableName, t)
	case FormatJSON:
		var data []byte
		data, err = output.TableToJSON(t, opts.timeFormat(), opts.Pretty)
		if err == nil {
			err = os.WriteFile(path, data, 0644)
		}
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return NewOperationError("export", path, err)
	}

	opts.logger().Debug("table exported", "path", path, "format", format, "rows", len(t.Rows))
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
