package models

// Row is one station record, one Value per header column.
type Row []Value

// Table is a header plus rows loaded from the station CSV.
type Table struct {
	// Headers holds column names in input order.
	Headers []string
	// Rows holds the records. Every row has len(Headers) values.
	Rows []Row
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.Headers {
		if h == name {
			return i, true
		}
	}
	return -1, false
}

// Rename renames columns in place. Names absent from the table are ignored.
func (t *Table) Rename(names map[string]string) {
	for i, h := range t.Headers {
		if to, ok := names[h]; ok {
			t.Headers[i] = to
		}
	}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return t.WithRows(t.Rows)
}

// WithRows returns a table sharing t's headers with copies of the given rows.
func (t *Table) WithRows(rows []Row) *Table {
	out := &Table{
		Headers: append([]string(nil), t.Headers...),
		Rows:    make([]Row, len(rows)),
	}
	for i, r := range rows {
		out.Rows[i] = append(Row(nil), r...)
	}
	return out
}
