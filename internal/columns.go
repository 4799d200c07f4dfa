package internal

// Export column names. The template CSV addresses record fields by these
// names; underscore-prefixed columns are diagnostic and only appear in the
// primary output when the template asks for them.
const (
	ColStudent   = "Student Name"
	ColDate      = "Date (YYYY-MM-DD)"
	ColStart     = "Start Time (HH:MM)"
	ColEnd       = "End Time (HH:MM)"
	ColLocation  = "Location"
	ColStation   = "Station"
	ColAmbulance = "Ambulance Number"
	ColPreceptor = "Preceptor"
	ColRawShift  = "_Raw Shift Text"
	ColCode      = "_Code"
	ColSheet     = "_Sheet"
)

// RecordColumns is the full column set in debug-export order.
var RecordColumns = []string{
	ColStudent, ColDate, ColStart, ColEnd, ColLocation,
	ColStation, ColAmbulance, ColPreceptor,
	ColRawShift, ColCode, ColSheet,
}

func FieldByColumn(r ShiftRecord, column string) (string, bool) {
	switch column {
	case ColStudent:
		return r.Student, true
	case ColDate:
		return r.Date.Format("2006-01-02"), true
	case ColStart:
		return r.Start, true
	case ColEnd:
		return r.End, true
	case ColLocation:
		return r.Location, true
	case ColStation:
		return r.Station, true
	case ColAmbulance:
		return r.Ambulance, true
	case ColPreceptor:
		return r.Preceptor, true
	case ColRawShift:
		return r.RawShiftText, true
	case ColCode:
		return r.ShiftCode, true
	case ColSheet:
		return r.SourceSheet, true
	}
	return "", false
}

func KnownColumn(column string) bool {
	_, ok := FieldByColumn(ShiftRecord{}, column)
	return ok
}
