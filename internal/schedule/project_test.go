package schedule

import (
	"errors"
	"testing"
	"time"

	"schedconv/internal"
)

func sampleRecords() []internal.ShiftRecord {
	return []internal.ShiftRecord{
		{
			Student:      "Jane Doe",
			Date:         time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
			Start:        "07:00",
			End:          "15:30",
			Location:     "Metro",
			Station:      "240",
			Ambulance:    "240B1",
			Preceptor:    "John Doe",
			RawShiftText: "240B1DA070 700-1530",
			ShiftCode:    "240B1DA070",
			SourceSheet:  "Metro",
		},
	}
}

func TestProject(t *testing.T) {
	cols := []string{internal.ColStudent, internal.ColDate, internal.ColStart}
	table, err := Project(sampleRecords(), cols)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows=%d", len(table.Rows))
	}
	want := []string{"Jane Doe", "2026-01-05", "07:00"}
	for i, v := range want {
		if table.Rows[0][i] != v {
			t.Fatalf("col %d: got %q want %q", i, table.Rows[0][i], v)
		}
	}
}

func TestProjectEmptyRecords(t *testing.T) {
	cols := []string{internal.ColStudent, internal.ColDate, internal.ColPreceptor}
	table, err := Project(nil, cols)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Columns) != 3 || len(table.Rows) != 0 {
		t.Fatalf("shape=%dx%d", len(table.Columns), len(table.Rows))
	}
}

func TestProjectUnknownColumn(t *testing.T) {
	_, err := Project(sampleRecords(), []string{internal.ColStudent, "Shoe Size"})
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("err=%v", err)
	}
	if schemaErr.Column != "Shoe Size" {
		t.Fatalf("column=%q", schemaErr.Column)
	}
}

func TestDebugTableHasAllColumns(t *testing.T) {
	table := DebugTable(sampleRecords())
	if len(table.Columns) != len(internal.RecordColumns) {
		t.Fatalf("columns=%d", len(table.Columns))
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows=%d", len(table.Rows))
	}
}

func TestReadTemplateColumns(t *testing.T) {
	cols, err := ReadTemplateColumns([]byte("Student Name,Date (YYYY-MM-DD),Preceptor\nignored,row,here\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 3 || cols[0] != "Student Name" || cols[2] != "Preceptor" {
		t.Fatalf("cols=%v", cols)
	}
}

func TestReadTemplateColumnsBOM(t *testing.T) {
	cols, err := ReadTemplateColumns([]byte("\xef\xbb\xbfStudent Name,Location\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cols[0] != "Student Name" {
		t.Fatalf("BOM not stripped: %q", cols[0])
	}
}

func TestReadTemplateColumnsEmpty(t *testing.T) {
	if _, err := ReadTemplateColumns([]byte("")); err == nil {
		t.Fatal("empty template accepted")
	}
}
