package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"schedconv/internal/util"
)

var (
	codeTokenPat = regexp.MustCompile(`^\d{3}[A-Za-z0-9]+$`)
	timeRangePat = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})|(\d{3,4})\s*[-–]\s*(\d{3,4})`)
	ambulancePat = regexp.MustCompile(`^(\d{3}[A-Za-z]\d)`)
)

// Shift is the parsed content of one schedule cell.
type Shift struct {
	Raw       string
	Code      string
	Start     string
	End       string
	Station   string
	Ambulance string
}

// ParseShift reads a raw schedule cell. It returns nil when the cell holds
// neither a shift code token nor a time range; such cells are skipped by the
// walkers, never reported as errors.
func ParseShift(text string) *Shift {
	t := util.CollapseSpaces(strings.ReplaceAll(text, "\n", " "))
	if t == "" {
		return nil
	}

	code := ""
	for _, tok := range strings.Fields(t) {
		if codeTokenPat.MatchString(tok) {
			code = tok
			break
		}
	}

	start, end := "", ""
	if m := timeRangePat.FindStringSubmatch(t); m != nil {
		if m[1] != "" {
			start, end = m[1], m[2]
		} else {
			start, end = normHHMM(m[3]), normHHMM(m[4])
		}
	}

	if code == "" && start == "" && end == "" {
		return nil
	}

	sh := &Shift{Raw: t, Code: code, Start: start, End: end}
	if code != "" {
		sh.Station = code[:3]
		if m := ambulancePat.FindStringSubmatch(code); m != nil {
			sh.Ambulance = m[1]
		}
	}
	return sh
}

// normHHMM zero-pads a 3-or-4 digit military time: "700" -> "07:00",
// "1530" -> "15:30".
func normHHMM(digits string) string {
	split := len(digits) - 2
	h, _ := strconv.Atoi(digits[:split])
	m, _ := strconv.Atoi(digits[split:])
	return fmt.Sprintf("%02d:%02d", h, m)
}
