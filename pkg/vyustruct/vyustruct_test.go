package vyustruct

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/sheet"
)

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return opts
}

func buildSheet(t *testing.T) *sheet.Spreadsheet {
	t.Helper()
	s := sheet.New("study")
	a, err := s.NewColumn("Gaze", "target")
	if err != nil {
		t.Fatalf("NewColumn failed: %v", err)
	}
	c := a.NewCell("face")
	c.SetOrdinal(1)
	c.SetOnset(200)
	c.SetOffset(300)

	b, err := s.NewColumn("Blink", "eye")
	if err != nil {
		t.Fatalf("NewColumn failed: %v", err)
	}
	c = b.NewCell("both")
	c.SetOrdinal(1)
	c.SetOnset(50)
	c.SetOffset(50)
	return s
}

func TestSaveOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"study.opf", "study.json"} {
		t.Run(name, func(t *testing.T) {
			s := buildSheet(t)
			path := filepath.Join(dir, name)
			if err := Save(s, path, quietOptions()); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			loaded, err := Open(path, quietOptions())
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if !loaded.Equal(s) {
				t.Error("reloaded spreadsheet differs from the saved one")
			}
			if loaded.Name != "study" {
				t.Errorf("loaded name = %q", loaded.Name)
			}
		})
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.opf"), quietOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Open(missing) error = %v, expected ErrFileNotFound", err)
	}
	var oe *OperationError
	if !errors.As(err, &oe) || oe.Op != "open" {
		t.Errorf("Open(missing) error = %v, expected OperationError", err)
	}

	if _, err := Open(filepath.Join(dir, "notes.txt"), quietOptions()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Open(txt) error = %v, expected ErrUnsupportedFormat", err)
	}
}

func TestTablePruneOption(t *testing.T) {
	s := buildSheet(t)

	pruned, err := Table(s, quietOptions())
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	no := false
	opts := quietOptions()
	opts.Prune = &no
	full, err := Table(s, opts)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	// bounds 50, 51, 200, 301; [51, 200) is empty
	if len(pruned.Rows) != 2 {
		t.Errorf("pruned table has %d rows, expected 2", len(pruned.Rows))
	}
	if len(full.Rows) != 3 {
		t.Errorf("unpruned table has %d rows, expected 3", len(full.Rows))
	}
}

func TestExport(t *testing.T) {
	s := buildSheet(t)
	table, err := Table(s, quietOptions())
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	dir := t.TempDir()
	for _, name := range []string{"out.csv", "out.xlsx", "out.db", "out.json"} {
		path := filepath.Join(dir, name)
		if err := Export(context.Background(), table, path, quietOptions()); err != nil {
			t.Errorf("Export(%s) failed: %v", name, err)
			continue
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("Export(%s) produced no output", name)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	if err != nil {
		t.Fatalf("reading CSV failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "ordinal,onset,offset,Gaze_ordinal,Gaze_target,Blink_ordinal,Blink_eye\n") {
		t.Errorf("unexpected CSV header:\n%s", data)
	}

	if err := Export(context.Background(), table, filepath.Join(dir, "out.opf"), quietOptions()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Export(opf) error = %v, expected ErrUnsupportedFormat", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"a.opf", FormatOPF},
		{"A.OPF", FormatOPF},
		{"a.json", FormatJSON},
		{"a.csv", FormatCSV},
		{"a.xlsx", FormatXLSX},
		{"a.sqlite", FormatSQLite},
		{"a.db", FormatSQLite},
	}
	for _, tt := range tests {
		result, err := DetectFormat(tt.path)
		if err != nil || result != tt.expected {
			t.Errorf("DetectFormat(%q) = %q, %v, expected %q", tt.path, result, err, tt.expected)
		}
	}
}
