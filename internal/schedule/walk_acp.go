package schedule

import (
	"strings"

	"schedconv/internal"
	"schedconv/internal/util"
)

// ACP layout: dates start in column C, columns A/B hold preceptor name and
// email. Student marker rows ("STUDENT 1", "STUDENT 2", ...) precede their
// preceptor row and accumulate: all buffered marker rows apply to the next
// genuine preceptor row, allowing shared two-student shifts. A section
// header flushes the buffer unconditionally.
const acpDateStartCol = 2

const acpDefaultLocation = "ACP"

func walkACP(sheet string, rows [][]string, year int, rules Rules) []internal.ShiftRecord {
	if len(rows) == 0 {
		return nil
	}
	dates := HeaderDates(rows[0], year, acpDateStartCol)
	if len(dates) == 0 {
		return nil
	}
	cols := sortedCols(dates)

	var out []internal.ShiftRecord
	group := ""
	var pending []int

	for r := 1; r < len(rows); r++ {
		a := util.CollapseSpaces(cell(rows, r, 0))
		if a == "" {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(a), "STUDENT") {
			pending = append(pending, r)
			continue
		}
		if a == "Preceptor" {
			continue
		}
		if IsSectionHeader(a) {
			group = a
			pending = nil
			continue
		}

		preceptor := FormatPreceptors(a)

		for _, c := range cols {
			sh := ParseShift(cell(rows, r, c))
			if sh == nil {
				continue
			}
			seen := map[string]struct{}{}
			for _, sr := range pending {
				student := rules.NormalizeStudent(cell(rows, sr, c))
				if student == "" {
					continue
				}
				key := strings.ToLower(student)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				loc := locationFor(sheet, group, acpDefaultLocation)
				out = append(out, makeRecord(sheet, loc, preceptor, student, dates[c], sh))
			}
		}
		pending = nil
	}
	return out
}
