package internal

import "time"

type Mode string

const (
	ModeACP Mode = "ACP"
	ModePCP Mode = "PCP"
)

// ShiftRecord is one extracted placement shift. Student and Date are always
// set; Start/End may both be empty when the shift text carried a code but no
// readable time range.
type ShiftRecord struct {
	Student      string
	Date         time.Time
	Start        string
	End          string
	Location     string
	Station      string
	Ambulance    string
	Preceptor    string
	RawShiftText string
	ShiftCode    string
	SourceSheet  string
}

// Table is a flat column-ordered result set, primary or debug.
type Table struct {
	Columns []string
	Rows    [][]string
}

type ConversionRun struct {
	ID            int
	TraceID       string
	SourceFile    string
	Mode          string
	Year          int
	RowsExtracted int
	RowsExported  int
	OutputPath    string
	CreatedAt     string
}
