// Package opf reads and writes Datavyu .opf archives.
//
// An archive is a zip file whose "db" member holds the spreadsheet as text:
// a "#4" version line, then for each column a header line
//
//	Name (MATRIX,true,)-code1|NOMINAL,code2|NOMINAL
//
// followed by one line per cell
//
//	HH:MM:SS:mmm,HH:MM:SS:mmm,(value1,value2)
//
// The optional "project" member is a YAML descriptor carrying the spreadsheet name.
package opf

// Archive member names.
const (
	DBMember      = "db"
	ProjectMember = "project"
)

// dbVersion is the first line of every db member written.
const dbVersion = "#4"
