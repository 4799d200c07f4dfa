package schedule

import (
	"strings"

	"schedconv/internal"
	"schedconv/internal/util"
)

// PCP layout: one page per region, dates start in column B. Each preceptor
// row has a single "STUDENT" marker row directly above or below it whose
// cells hold the student name for the same date column.
const pcpDateStartCol = 1

func walkPCP(sheet string, rows [][]string, year int, rules Rules) []internal.ShiftRecord {
	if len(rows) == 0 {
		return nil
	}
	dates := HeaderDates(rows[0], year, pcpDateStartCol)
	if len(dates) == 0 {
		return nil
	}
	cols := sortedCols(dates)

	var out []internal.ShiftRecord
	group := ""

	for r := 1; r < len(rows); r++ {
		a := util.CollapseSpaces(cell(rows, r, 0))
		if a == "" {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(a), "STUDENT") || a == "Preceptor" {
			continue
		}
		if IsSectionHeader(a) {
			group = a
			continue
		}

		preceptor := FormatPreceptor(a)

		studentRow := -1
		if isStudentMarker(cell(rows, r-1, 0)) {
			studentRow = r - 1
		} else if isStudentMarker(cell(rows, r+1, 0)) {
			studentRow = r + 1
		}

		for _, c := range cols {
			sh := ParseShift(cell(rows, r, c))
			if sh == nil {
				continue
			}
			if studentRow < 0 {
				continue
			}
			student := rules.NormalizeStudent(cell(rows, studentRow, c))
			if student == "" {
				continue
			}
			loc := locationFor(sheet, group, sheet)
			out = append(out, makeRecord(sheet, loc, preceptor, student, dates[c], sh))
		}
	}
	return out
}

func isStudentMarker(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "STUDENT")
}
