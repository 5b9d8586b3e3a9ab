package opf

import (
	"archive/zip"
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/sheet"
)

var columnName = regexp.MustCompile(`^\w+$`)

// Write saves s to an .opf archive at path.
// An existing archive keeps every member except "db" byte for byte; a new
// archive gets "db" and a minimal "project" descriptor.
func Write(s *sheet.Spreadsheet, path string) error {
	if err := validate(s); err != nil {
		return err
	}

	existing, err := zip.OpenReader(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		existing = nil
	default:
		return fmt.Errorf("open archive %s: %w", path, err)
	}
	closeExisting := func() {
		if existing != nil {
			existing.Close()
			existing = nil
		}
	}
	defer closeExisting()

	tmp, err := os.CreateTemp(filepath.Dir(path), ".vyustruct-*.opf")
	if err != nil {
		return fmt.Errorf("create temp archive: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	zw := zip.NewWriter(tmp)
	if existing != nil {
		err = rewriteMembers(zw, &existing.Reader, s)
		closeExisting()
	} else {
		err = writeNewMembers(zw, s, path)
	}
	if err != nil {
		zw.Close()
		tmp.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("finish archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp archive: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace archive %s: %w", path, err)
	}
	return nil
}

func rewriteMembers(zw *zip.Writer, r *zip.Reader, s *sheet.Spreadsheet) error {
	for _, f := range r.File {
		if f.Name == DBMember {
			continue
		}
		if err := zw.Copy(f); err != nil {
			return fmt.Errorf("copy member %s: %w", f.Name, err)
		}
	}
	return writeDB(zw, s)
}

func writeNewMembers(zw *zip.Writer, s *sheet.Spreadsheet, path string) error {
	if err := writeDB(zw, s); err != nil {
		return err
	}
	data, err := MarshalProject(NewProject(s.Name, path))
	if err != nil {
		return err
	}
	w, err := zw.Create(ProjectMember)
	if err != nil {
		return fmt.Errorf("create %s member: %w", ProjectMember, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s member: %w", ProjectMember, err)
	}
	return nil
}

func writeDB(zw *zip.Writer, s *sheet.Spreadsheet) error {
	w, err := zw.Create(DBMember)
	if err != nil {
		return fmt.Errorf("create %s member: %w", DBMember, err)
	}
	if err := Encode(w, s); err != nil {
		return fmt.Errorf("write %s member: %w", DBMember, err)
	}
	return nil
}

// Encode writes the db member text for s.
func Encode(w io.Writer, s *sheet.Spreadsheet) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(dbVersion)
	bw.WriteByte('\n')
	for _, col := range s.Columns() {
		bw.WriteString(columnHeader(col))
		bw.WriteByte('\n')
		for _, c := range col.Cells() {
			bw.WriteString(cellLineText(c))
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func columnHeader(col *sheet.Column) string {
	fields := col.Fields()
	codes := make([]string, len(fields))
	for i, f := range fields {
		codes[i] = f + "|NOMINAL"
	}
	return fmt.Sprintf("%s (MATRIX,true,)-%s", col.Name(), strings.Join(codes, ","))
}

func cellLineText(c *sheet.Cell) string {
	values := c.FieldValues()
	for i, v := range values {
		values[i] = escapeValue(v)
	}
	return fmt.Sprintf("%s,%s,(%s)",
		sheet.FormatTimestamp(c.Onset()), sheet.FormatTimestamp(c.Offset()), strings.Join(values, ","))
}

// validate rejects names the db format cannot represent.
func validate(s *sheet.Spreadsheet) error {
	for _, col := range s.Columns() {
		if !columnName.MatchString(col.Name()) {
			return &sheet.FormatError{Input: col.Name(), Reason: "column names must be letters, digits or underscores"}
		}
		for _, f := range col.Fields() {
			if f == "" || strings.ContainsAny(f, ",|\n") {
				return &sheet.FormatError{Input: f, Reason: fmt.Sprintf("invalid code name in column %s", col.Name())}
			}
		}
	}
	return nil
}
