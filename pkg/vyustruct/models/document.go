// Package models defines the JSON document structures for spreadsheet exchange.
package models

// PassTypeMatrix is the only column type written.
const PassTypeMatrix = "MATRIX"

// ArgumentTypeNominal is the only code type written.
const ArgumentTypeNominal = "NOMINAL"

// Document is the top-level JSON representation of a spreadsheet.
type Document struct {
	// Passes holds one entry per column, in spreadsheet order.
	Passes []Pass `json:"passes"`
}

// Pass represents a single column (coding pass).
type Pass struct {
	// Name is the column name.
	Name string `json:"name"`
	// Type is the column type, always MATRIX.
	Type string `json:"type"`
	// Arguments maps each code name to its type, in schema order.
	Arguments Arguments `json:"arguments"`
	// Cells are the column's cells in insertion order.
	Cells []Cell `json:"cells"`
}

// Cell represents one annotation.
type Cell struct {
	// ID is the cell ordinal.
	ID int `json:"id"`
	// Onset is the start time as HH:MM:SS:mmm.
	Onset string `json:"onset"`
	// Offset is the end time as HH:MM:SS:mmm.
	Offset string `json:"offset"`
	// Values holds one value per argument, in argument order.
	Values []string `json:"values"`
}
