// Package output serializes spreadsheets and merged tables.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/models"
	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/sheet"
)

// ToDocument converts the named columns (all if none) to the JSON document model.
func ToDocument(s *sheet.Spreadsheet, columns ...string) (*models.Document, error) {
	cols, err := s.MapColumns(columns...)
	if err != nil {
		return nil, err
	}
	doc := &models.Document{Passes: make([]models.Pass, 0, len(cols))}
	for _, col := range cols {
		pass := models.Pass{
			Name:  col.Name(),
			Type:  models.PassTypeMatrix,
			Cells: make([]models.Cell, 0, col.Len()),
		}
		for _, f := range col.Fields() {
			pass.Arguments = append(pass.Arguments, models.Argument{Name: f, Type: models.ArgumentTypeNominal})
		}
		for _, c := range col.Cells() {
			pass.Cells = append(pass.Cells, models.Cell{
				ID:     c.Ordinal(),
				Onset:  sheet.FormatTimestamp(c.Onset()),
				Offset: sheet.FormatTimestamp(c.Offset()),
				Values: c.FieldValues(),
			})
		}
		doc.Passes = append(doc.Passes, pass)
	}
	return doc, nil
}

// FromDocument builds a spreadsheet from the JSON document model.
func FromDocument(doc *models.Document, name string) (*sheet.Spreadsheet, error) {
	s := sheet.New(name)
	for _, pass := range doc.Passes {
		col, err := s.NewColumn(pass.Name, pass.Arguments.Names()...)
		if err != nil {
			return nil, fmt.Errorf("pass %q: %w", pass.Name, err)
		}
		for i, c := range pass.Cells {
			_, err := col.NewCellWith(c.Values, map[string]interface{}{
				sheet.OrdinalField: c.ID,
				sheet.OnsetField:   c.Onset,
				sheet.OffsetField:  c.Offset,
			})
			if err != nil {
				return nil, fmt.Errorf("pass %q cell %d: %w", pass.Name, i, err)
			}
		}
	}
	return s, nil
}

// ToJSON serializes the named columns (all if none) as a passes document.
func ToJSON(s *sheet.Spreadsheet, pretty bool, columns ...string) ([]byte, error) {
	doc, err := ToDocument(s, columns...)
	if err != nil {
		return nil, err
	}
	return marshal(doc, pretty)
}

// FromJSON parses a passes document.
func FromJSON(data []byte, name string) (*sheet.Spreadsheet, error) {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return FromDocument(&doc, name)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
