package schedule

import (
	"sort"
	"time"

	"schedconv/internal"
)

func cell(rows [][]string, r, c int) string {
	if r < 0 || r >= len(rows) {
		return ""
	}
	if c < 0 || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}

func sortedCols(dates map[int]time.Time) []int {
	cols := make([]int, 0, len(dates))
	for c := range dates {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return cols
}

// locationFor resolves the Location field: the active group label when one
// is set, else the layout fallback, composed as "sheet - group" when the
// group differs from the sheet identity.
func locationFor(sheet, group, fallback string) string {
	if group == "" {
		return fallback
	}
	if group != sheet {
		return sheet + " - " + group
	}
	return group
}

func makeRecord(sheet, location, preceptor, student string, date time.Time, sh *Shift) internal.ShiftRecord {
	return internal.ShiftRecord{
		Student:      student,
		Date:         date,
		Start:        sh.Start,
		End:          sh.End,
		Location:     location,
		Station:      sh.Station,
		Ambulance:    sh.Ambulance,
		Preceptor:    preceptor,
		RawShiftText: sh.Raw,
		ShiftCode:    sh.Code,
		SourceSheet:  sheet,
	}
}
