package schedule

import "testing"

func TestParseShiftTimes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		start string
		end   string
	}{
		{name: "colon form unchanged", input: "8:00-16:00", start: "8:00", end: "16:00"},
		{name: "colon form padded input", input: "08:30 - 17:15", start: "08:30", end: "17:15"},
		{name: "military 3 digit", input: "700-1530", start: "07:00", end: "15:30"},
		{name: "military 4 digit", input: "0700-1900", start: "07:00", end: "19:00"},
		{name: "en dash", input: "700–1530", start: "07:00", end: "15:30"},
		{name: "code and time", input: "240B1DA070 700-1900", start: "07:00", end: "19:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sh := ParseShift(tc.input)
			if sh == nil {
				t.Fatal("no shift parsed")
			}
			if sh.Start != tc.start || sh.End != tc.end {
				t.Fatalf("got %s-%s want %s-%s", sh.Start, sh.End, tc.start, tc.end)
			}
		})
	}
}

func TestParseShiftCode(t *testing.T) {
	sh := ParseShift("240B1DA070 0700-1900")
	if sh == nil {
		t.Fatal("no shift parsed")
	}
	if sh.Code != "240B1DA070" {
		t.Fatalf("code=%q", sh.Code)
	}
	if sh.Station != "240" {
		t.Fatalf("station=%q", sh.Station)
	}
	if sh.Ambulance != "240B1" {
		t.Fatalf("ambulance=%q", sh.Ambulance)
	}
}

func TestParseShiftCodeWithoutAmbulance(t *testing.T) {
	sh := ParseShift("380XRAY 700-1530")
	if sh == nil {
		t.Fatal("no shift parsed")
	}
	if sh.Code != "380XRAY" || sh.Station != "380" {
		t.Fatalf("code=%q station=%q", sh.Code, sh.Station)
	}
	if sh.Ambulance != "" {
		t.Fatalf("ambulance=%q, want empty", sh.Ambulance)
	}
}

func TestParseShiftCodeOnly(t *testing.T) {
	sh := ParseShift("240B1DA070")
	if sh == nil {
		t.Fatal("no shift parsed")
	}
	if sh.Start != "" || sh.End != "" {
		t.Fatalf("times=%q-%q, want empty", sh.Start, sh.End)
	}
}

func TestParseShiftRejects(t *testing.T) {
	for _, input := range []string{"", "   ", "\\", "off", "vacation day"} {
		if sh := ParseShift(input); sh != nil {
			t.Fatalf("input %q parsed to %+v, want nil", input, sh)
		}
	}
}

func TestParseShiftCollapsesNewlines(t *testing.T) {
	sh := ParseShift("240B1DA070\n700-1530")
	if sh == nil {
		t.Fatal("no shift parsed")
	}
	if sh.Raw != "240B1DA070 700-1530" {
		t.Fatalf("raw=%q", sh.Raw)
	}
}
