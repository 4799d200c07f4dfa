package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var headerDatePat = regexp.MustCompile(`\b([A-Za-z]{3})/(\d{1,2})\b`)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var sectionKeywords = []string{
	"Metro", "Vancouver", "Fraser", "Interior", "Island", "&", "SEA TO SKY", "COASTAL",
}

// HeaderDates maps 0-based column index to calendar date for every header
// cell from startCol on that carries a "Mon/DD" fragment. Columns without a
// match stay absent and are never scanned for shifts.
func HeaderDates(header []string, year int, startCol int) map[int]time.Time {
	out := map[int]time.Time{}
	for c := startCol; c < len(header); c++ {
		m := headerDatePat.FindStringSubmatch(header[c])
		if m == nil {
			continue
		}
		month, ok := months[strings.ToLower(m[1])]
		if !ok {
			continue
		}
		day, _ := strconv.Atoi(m[2])
		out[c] = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
	return out
}

// IsSectionHeader reports whether a first-column cell is a region grouping
// label rather than a preceptor name. Preceptor cells carry a comma; student
// marker rows start with STUDENT; region labels are either fully uppercase
// or multi-word with a known regional keyword.
func IsSectionHeader(text string) bool {
	s := strings.TrimSpace(text)
	if s == "" {
		return false
	}
	if strings.HasPrefix(strings.ToUpper(s), "STUDENT") {
		return false
	}
	if strings.Contains(s, ",") {
		return false
	}
	if s == strings.ToUpper(s) && len(s) >= 3 {
		return true
	}
	for _, kw := range sectionKeywords {
		if strings.Contains(s, kw) {
			return len(strings.Fields(s)) >= 2
		}
	}
	return false
}
