// Package table provides loading, manipulation and writing of tab-separated
// tables, optionally gzip-compressed.
package table

// Row holds one table record as a column-name to raw-value mapping.
type Row map[string]string

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an in-memory tab-separated table with ordered columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// RenameColumn renames a column in place, preserving its position and moving
// the values of every row to the new name. It is a no-op when the old name is
// not declared.
func (t *Table) RenameColumn(old, new string) {
	for i, c := range t.Columns {
		if c != old {
			continue
		}
		t.Columns[i] = new
		for _, row := range t.Rows {
			if v, ok := row[old]; ok {
				row[new] = v
				delete(row, old)
			}
		}
		return
	}
}

// DropColumn removes a column and its values from every row. It is a no-op
// when the column is not declared.
func (t *Table) DropColumn(name string) {
	for i, c := range t.Columns {
		if c != name {
			continue
		}
		t.Columns = append(t.Columns[:i], t.Columns[i+1:]...)
		for _, row := range t.Rows {
			delete(row, name)
		}
		return
	}
}

// ColumnsWithout returns a copy of the column order with one column removed.
func (t *Table) ColumnsWithout(name string) []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c != name {
			out = append(out, c)
		}
	}
	return out
}
