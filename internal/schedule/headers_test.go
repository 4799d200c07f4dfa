package schedule

import (
	"testing"
	"time"
)

func TestHeaderDates(t *testing.T) {
	header := []string{"Preceptor", "Mon Jan/5", "Tue Jan/6", "Notes", "Wed FEB/10"}
	dates := HeaderDates(header, 2026, 1)

	if len(dates) != 3 {
		t.Fatalf("len=%d", len(dates))
	}
	if got := dates[1]; !got.Equal(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("col 1 date=%v", got)
	}
	if got := dates[4]; !got.Equal(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("month lookup not case-insensitive: %v", got)
	}
	if _, ok := dates[3]; ok {
		t.Fatal("non-date header mapped")
	}
}

func TestHeaderDatesStartColumn(t *testing.T) {
	header := []string{"Jan/1", "Jan/2", "Jan/3"}
	dates := HeaderDates(header, 2026, 2)
	if len(dates) != 1 {
		t.Fatalf("columns before startCol scanned: %v", dates)
	}
	if _, ok := dates[2]; !ok {
		t.Fatal("startCol column missing")
	}
}

func TestHeaderDatesBadMonth(t *testing.T) {
	dates := HeaderDates([]string{"", "Xyz/5"}, 2026, 1)
	if len(dates) != 0 {
		t.Fatalf("unknown month accepted: %v", dates)
	}
}

func TestIsSectionHeader(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{input: "VANCOUVER ISLAND", want: true},
		{input: "SEA TO SKY", want: true},
		{input: "Metro Vancouver", want: true},
		{input: "Fraser Valley", want: true},
		{input: "Interior & North", want: true},
		{input: "STUDENT", want: false},
		{input: "STUDENT 2", want: false},
		{input: "Doe, Jane", want: false},
		{input: "Vancouver", want: false}, // keyword but single word, not uppercase-only
		{input: "ab", want: false},
		{input: "", want: false},
	}
	for _, tc := range cases {
		if got := IsSectionHeader(tc.input); got != tc.want {
			t.Fatalf("IsSectionHeader(%q)=%v want %v", tc.input, got, tc.want)
		}
	}
}
