package schedule

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"schedconv/internal"
)

// LoadError wraps a workbook that could not be opened at all. Everything
// softer than that (odd cells, missing markers) degrades extraction
// coverage instead of failing.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load workbook: %v", e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }

// ParseMode resolves a mode selector case-insensitively. An empty selector
// means PCP; anything else unrecognized is rejected rather than silently
// walked with the wrong layout.
func ParseMode(s string) (internal.Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "PCP":
		return internal.ModePCP, nil
	case "ACP":
		return internal.ModeACP, nil
	default:
		return "", fmt.Errorf("unsupported mode: %q", s)
	}
}

// Extract loads a workbook from raw bytes and walks every sheet that has
// dated header columns, dispatching on the layout mode. One call processes
// one workbook synchronously; all walker state is local to the call.
func Extract(blob []byte, year int, mode internal.Mode, rules Rules) ([]internal.ShiftRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	defer f.Close()

	var out []internal.ShiftRecord
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}
		switch mode {
		case internal.ModeACP:
			out = append(out, walkACP(sheet, rows, year, rules)...)
		default:
			out = append(out, walkPCP(sheet, rows, year, rules)...)
		}
	}
	return out, nil
}
