package table

import (
	"bufio"
	"io"
	"strings"
)

// Writer writes rows in tab-delimited format.
type Writer struct {
	w       *bufio.Writer
	columns []string
}

// NewWriter creates a new tab-delimited writer emitting the given columns in
// order.
func NewWriter(w io.Writer, columns []string) *Writer {
	return &Writer{
		w:       bufio.NewWriter(w),
		columns: columns,
	}
}

// WriteHeader writes the header line.
func (w *Writer) WriteHeader() error {
	_, err := w.w.WriteString(strings.Join(w.columns, "\t") + "\n")
	return err
}

// WriteRow writes a single row. Columns missing from the row are written as
// empty fields.
func (w *Writer) WriteRow(row Row) error {
	values := make([]string, len(w.columns))
	for i, col := range w.columns {
		values[i] = row[col]
	}
	_, err := w.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Write writes a whole table, header included, to w.
func Write(w io.Writer, t *Table) error {
	tw := NewWriter(w, t.Columns)
	if err := tw.WriteHeader(); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := tw.WriteRow(row); err != nil {
			return err
		}
	}
	return tw.Flush()
}
