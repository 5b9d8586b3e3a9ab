package sheet

import (
	"errors"
	"reflect"
	"testing"
)

type mergedRow struct {
	ordinal int
	onset   int64
	offset  int64
	values  []string
}

func collectRows(col *Column) []mergedRow {
	var rows []mergedRow
	for _, c := range col.SortedCells() {
		rows = append(rows, mergedRow{c.Ordinal(), c.Onset(), c.Offset(), c.FieldValues()})
	}
	return rows
}

func TestMergeOverlapping(t *testing.T) {
	a := newTestColumn(t, "a", "x")
	addCell(t, a, 1, 0, 10, "p")
	addCell(t, a, 2, 20, 30, "q")
	b := newTestColumn(t, "b", "y")
	addCell(t, b, 1, 5, 25, "r")

	merged, err := Merge("m", []*Column{a, b}, true)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if got := merged.Fields(); !reflect.DeepEqual(got, []string{"a_ordinal", "a_x", "b_ordinal", "b_y"}) {
		t.Errorf("merged fields = %q", got)
	}

	expected := []mergedRow{
		{1, 0, 5, []string{"1", "p", "", ""}},
		{2, 5, 11, []string{"1", "p", "1", "r"}},
		{3, 11, 20, []string{"", "", "1", "r"}},
		{4, 20, 26, []string{"2", "q", "1", "r"}},
		{5, 26, 31, []string{"2", "q", "", ""}},
	}
	if got := collectRows(merged); !reflect.DeepEqual(got, expected) {
		t.Errorf("merged rows =\n%v\nexpected\n%v", got, expected)
	}
}

func TestMergePointCell(t *testing.T) {
	a := newTestColumn(t, "a", "x")
	addCell(t, a, 1, 0, 10, "p")
	b := newTestColumn(t, "b", "y")
	addCell(t, b, 1, 4, 4, "event")

	merged, err := Merge("m", []*Column{a, b}, true)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	expected := []mergedRow{
		{1, 0, 4, []string{"1", "p", "", ""}},
		{2, 4, 5, []string{"1", "p", "1", "event"}},
		{3, 5, 11, []string{"1", "p", "", ""}},
	}
	if got := collectRows(merged); !reflect.DeepEqual(got, expected) {
		t.Errorf("merged rows =\n%v\nexpected\n%v", got, expected)
	}
}

func TestMergePruning(t *testing.T) {
	a := newTestColumn(t, "a", "x")
	addCell(t, a, 1, 5, 5, "blink")
	addCell(t, a, 2, 10, 20, "look")

	pruned, err := Merge("m", []*Column{a}, true)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	full, err := Merge("m", []*Column{a}, false)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	expectedPruned := []mergedRow{
		{1, 5, 6, []string{"1", "blink"}},
		{2, 10, 21, []string{"2", "look"}},
	}
	if got := collectRows(pruned); !reflect.DeepEqual(got, expectedPruned) {
		t.Errorf("pruned rows =\n%v\nexpected\n%v", got, expectedPruned)
	}
	for _, c := range pruned.Cells() {
		if c.IsEmpty() {
			t.Errorf("pruned merge contains empty cell %v", c)
		}
	}

	expectedFull := []mergedRow{
		{1, 5, 6, []string{"1", "blink"}},
		{2, 6, 10, []string{"", ""}},
		{3, 10, 21, []string{"2", "look"}},
	}
	if got := collectRows(full); !reflect.DeepEqual(got, expectedFull) {
		t.Errorf("unpruned rows =\n%v\nexpected\n%v", got, expectedFull)
	}

	var nonEmpty []*Cell
	for _, c := range full.SortedCells() {
		if !c.IsEmpty() {
			nonEmpty = append(nonEmpty, c)
		}
	}
	for i, c := range pruned.SortedCells() {
		if !c.Equal(nonEmpty[i]) {
			t.Errorf("pruned cell %v differs from unpruned %v", c, nonEmpty[i])
		}
	}
}

func TestMergeGapAfterCell(t *testing.T) {
	a := newTestColumn(t, "a", "x")
	addCell(t, a, 1, 0, 10, "first")
	addCell(t, a, 2, 20, 30, "second")

	pruned, err := Merge("m", []*Column{a}, true)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	expected := []mergedRow{
		{1, 0, 11, []string{"1", "first"}},
		{2, 20, 31, []string{"2", "second"}},
	}
	if got := collectRows(pruned); !reflect.DeepEqual(got, expected) {
		t.Errorf("pruned rows =\n%v\nexpected\n%v", got, expected)
	}

	full, err := Merge("m", []*Column{a}, false)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	rows := collectRows(full)
	if len(rows) != 3 {
		t.Fatalf("unpruned merge has %d rows, expected 3", len(rows))
	}
	gap := mergedRow{2, 11, 20, []string{"", ""}}
	if !reflect.DeepEqual(rows[1], gap) {
		t.Errorf("gap row = %v, expected %v", rows[1], gap)
	}
}

func TestMergePointOnBoundary(t *testing.T) {
	tests := []struct {
		name     string
		onset    int64
		offset   int64
		point    int64
		expected []mergedRow
	}{
		{
			name: "at onset", onset: 10, offset: 20, point: 10,
			expected: []mergedRow{
				{1, 10, 11, []string{"1", "span", "1", "pt"}},
				{2, 11, 21, []string{"1", "span", "", ""}},
			},
		},
		{
			name: "at offset", onset: 0, offset: 10, point: 10,
			expected: []mergedRow{
				{1, 0, 10, []string{"1", "span", "", ""}},
				{2, 10, 11, []string{"1", "span", "1", "pt"}},
			},
		},
		{
			name: "just past offset", onset: 0, offset: 10, point: 11,
			expected: []mergedRow{
				{1, 0, 11, []string{"1", "span", "", ""}},
				{2, 11, 12, []string{"", "", "1", "pt"}},
			},
		},
		{
			name: "first boundary", onset: 5, offset: 15, point: 0,
			expected: []mergedRow{
				{1, 0, 1, []string{"", "", "1", "pt"}},
				{2, 5, 16, []string{"1", "span", "", ""}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestColumn(t, "a", "x")
			addCell(t, a, 1, tt.onset, tt.offset, "span")
			b := newTestColumn(t, "b", "y")
			addCell(t, b, 1, tt.point, tt.point, "pt")

			merged, err := Merge("m", []*Column{a, b}, true)
			if err != nil {
				t.Fatalf("Merge failed: %v", err)
			}
			if got := collectRows(merged); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("merged rows =\n%v\nexpected\n%v", got, tt.expected)
			}
		})
	}
}

func TestMergeDeterministic(t *testing.T) {
	a := newTestColumn(t, "a", "x", "z")
	addCell(t, a, 2, 30, 40, "2", "b")
	addCell(t, a, 1, 0, 15, "1", "a")
	b := newTestColumn(t, "b", "y")
	addCell(t, b, 1, 12, 12, "pt")
	addCell(t, b, 2, 14, 35, "span")

	first, err := Merge("m", []*Column{a, b}, true)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	second, err := Merge("m", []*Column{a, b}, true)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if !reflect.DeepEqual(collectRows(first), collectRows(second)) {
		t.Error("merging the same columns twice should give identical output")
	}
}

func TestMergeEmpty(t *testing.T) {
	a := newTestColumn(t, "a", "x")
	merged, err := Merge("m", []*Column{a}, true)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if merged.Len() != 0 {
		t.Errorf("merge of empty column produced %d cells", merged.Len())
	}

	merged, err = Merge("m", nil, true)
	if err != nil || merged.Len() != 0 {
		t.Errorf("merge of no columns = %v, %v", merged, err)
	}
}

func TestMergeDuplicateColumn(t *testing.T) {
	a := newTestColumn(t, "a", "x")
	if _, err := Merge("m", []*Column{a, a}, true); !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Merge(a, a) error = %v, expected ErrInvalidSchema", err)
	}
}
