package schedule

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"schedconv/internal"
)

// SchemaError marks a template column with no matching record field. It is
// fatal for the primary projection only; the debug table stays producible.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("template column has no matching record field: %q", e.Column)
}

// ReadTemplateColumns reads the ordered output columns from the header row
// of a template CSV. Only the header is consumed.
func ReadTemplateColumns(blob []byte) ([]string, error) {
	blob = bytes.TrimPrefix(blob, []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(blob))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read template header: %w", err)
	}
	cols := make([]string, 0, len(header))
	for _, h := range header {
		h = strings.TrimSpace(h)
		if h != "" {
			cols = append(cols, h)
		}
	}
	if len(cols) == 0 {
		return nil, errors.New("template has no columns")
	}
	return cols, nil
}

// Project shapes the records onto exactly the requested columns, in order.
// An empty record set still yields a zero-row table with those columns.
func Project(records []internal.ShiftRecord, columns []string) (internal.Table, error) {
	for _, col := range columns {
		if !internal.KnownColumn(col) {
			return internal.Table{}, &SchemaError{Column: col}
		}
	}

	table := internal.Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0, len(records)),
	}
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i], _ = internal.FieldByColumn(rec, col)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// DebugTable projects onto the full record column set, unconditionally.
func DebugTable(records []internal.ShiftRecord) internal.Table {
	table, _ := Project(records, internal.RecordColumns)
	return table
}
