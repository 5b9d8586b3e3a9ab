package models

// TableData is the JSON form of a merged table.
type TableData struct {
	// Fields are the namespaced value column names.
	Fields []string `json:"fields"`
	// Rows holds one entry per merged interval, by ascending ordinal.
	Rows []TableRow `json:"rows"`
}

// TableRow is one merged interval.
type TableRow struct {
	// Ordinal is the 1-based position of the interval in the merged column.
	Ordinal int `json:"ordinal"`
	// Onset and Offset are HH:MM:SS:mmm strings or millisecond counts depending on the export's time format.
	Onset  interface{} `json:"onset"`
	Offset interface{} `json:"offset"`
	// Values line up with Fields.
	Values []string `json:"values"`
}
