package opf

import (
	"archive/zip"
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/sheet"
)

var (
	columnLine = regexp.MustCompile(`^(\w+)\s\(.*\)-(.*)$`)
	cellLine   = regexp.MustCompile(`^(\d{2,}:\d{2}:\d{2}:\d{3}),(\d{2,}:\d{2}:\d{2}:\d{3}),\((.*)\)$`)
)

// maxLineSize bounds a single db line; long free-text codes can exceed bufio's default.
const maxLineSize = 4 << 20

// Read loads a spreadsheet from an .opf archive.
// Lines of the db member that cannot be parsed are logged and skipped.
func Read(path string, logger *slog.Logger) (*sheet.Spreadsheet, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer r.Close()

	db, ok, err := readZipFile(&r.Reader, DBMember)
	if err != nil {
		return nil, fmt.Errorf("read %s member: %w", DBMember, err)
	}
	if !ok {
		return nil, &sheet.MissingResourceError{Kind: "archive member", Name: DBMember}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if data, ok, err := readZipFile(&r.Reader, ProjectMember); err == nil && ok {
		if p, err := UnmarshalProject(data); err != nil {
			logger.Warn("ignoring unreadable project descriptor", "path", path, "error", err)
		} else if p.Name != "" {
			name = p.Name
		}
	}

	return Decode(bytes.NewReader(db), name, logger)
}

// Decode parses db member text into a spreadsheet.
// Cells receive ordinals 1..n per column in file order.
func Decode(r io.Reader, name string, logger *slog.Logger) (*sheet.Spreadsheet, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := sheet.New(name)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		col     *sheet.Column
		ordinal int
		lineNum int
	)
	skip := func(text string, err error) {
		logger.Warn("skipping unparseable line", "line", lineNum, "text", text, "error", err)
	}

	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			logger.Debug("db version", "version", strings.TrimPrefix(text, "#"))
			continue
		}

		if m := cellLine.FindStringSubmatch(text); m != nil {
			if col == nil {
				skip(text, &sheet.FormatError{Input: text, Reason: "cell before any column header"})
				continue
			}
			onset, err := sheet.ParseTimestamp(m[1])
			if err != nil {
				skip(text, err)
				continue
			}
			offset, err := sheet.ParseTimestamp(m[2])
			if err != nil {
				skip(text, err)
				continue
			}
			ordinal++
			c := col.NewCell(splitValues(m[3])...)
			c.SetOrdinal(ordinal)
			c.SetOnset(onset)
			c.SetOffset(offset)
			continue
		}

		if m := columnLine.FindStringSubmatch(text); m != nil {
			c, err := s.NewColumn(m[1], parseCodes(m[2])...)
			if err != nil {
				col = nil
				skip(text, err)
				continue
			}
			col = c
			ordinal = 0
			logger.Debug("column", "name", c.Name(), "codes", c.Fields())
			continue
		}

		skip(text, &sheet.FormatError{Input: text, Reason: "not a column header or cell"})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan db: %w", err)
	}

	return s, nil
}

// parseCodes extracts code names from "code1|NOMINAL,code2|NOMINAL".
func parseCodes(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	parts := strings.Split(header, ",")
	codes := make([]string, len(parts))
	for i, part := range parts {
		code, _, _ := strings.Cut(part, "|")
		codes[i] = strings.TrimSpace(code)
	}
	return codes
}

// readZipFile returns the contents of the named member and whether it exists.
func readZipFile(r *zip.Reader, name string) ([]byte, bool, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, true, err
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			return data, true, err
		}
	}
	return nil, false, nil
}
