package table

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadAll(t *testing.T) {
	input := "a\tb\tc\n1\t2\t3\n4\t5\t6\n"
	r := NewReaderFromReader(strings.NewReader(input))

	tbl, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	wantCols := []string{"a", "b", "c"}
	if !reflect.DeepEqual(tbl.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", tbl.Columns, wantCols)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tbl.Len())
	}
	if tbl.Rows[0]["a"] != "1" {
		t.Errorf("Rows[0][a] = %q, want 1", tbl.Rows[0]["a"])
	}
	if tbl.Rows[1]["c"] != "6" {
		t.Errorf("Rows[1][c] = %q, want 6", tbl.Rows[1]["c"])
	}
}

func TestReadAllSkipRows(t *testing.T) {
	input := "skip me\nand me\na\tb\n1\t2\n"
	r := NewReaderFromReader(strings.NewReader(input))
	r.SetSkipRows(2)

	tbl, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	if !reflect.DeepEqual(tbl.Columns, []string{"a", "b"}) {
		t.Errorf("Columns = %v, want [a b]", tbl.Columns)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len = %d, want 1", tbl.Len())
	}
}

func TestReadAllComment(t *testing.T) {
	input := "#version 1\na\tb\n#a mid-table comment\n1\t2\n"
	r := NewReaderFromReader(strings.NewReader(input))
	r.SetComment("#")

	tbl, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	if !reflect.DeepEqual(tbl.Columns, []string{"a", "b"}) {
		t.Errorf("Columns = %v, want [a b]", tbl.Columns)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len = %d, want 1", tbl.Len())
	}
}

func TestReadAllPadsShortRows(t *testing.T) {
	input := "a\tb\tc\n1\t2\n"
	r := NewReaderFromReader(strings.NewReader(input))

	tbl, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	row := tbl.Rows[0]
	if row["b"] != "2" {
		t.Errorf("row[b] = %q, want 2", row["b"])
	}
	if row["c"] != "" {
		t.Errorf("row[c] = %q, want empty", row["c"])
	}
}

func TestReadAllRejectsExtraFields(t *testing.T) {
	input := "a\tb\n1\t2\t3\n"
	r := NewReaderFromReader(strings.NewReader(input))

	_, err := r.ReadAll()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
}

func TestReadAllNoHeader(t *testing.T) {
	r := NewReaderFromReader(strings.NewReader(""))

	_, err := r.ReadAll()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestReadAllNoTrailingNewline(t *testing.T) {
	input := "a\tb\n1\t2"
	r := NewReaderFromReader(strings.NewReader(input))

	tbl, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tbl.Len())
	}
	if tbl.Rows[0]["b"] != "2" {
		t.Errorf("row[b] = %q, want 2", tbl.Rows[0]["b"])
	}
}

func TestReadAllSkipsBlankLines(t *testing.T) {
	input := "a\tb\n\n1\t2\n\n"
	r := NewReaderFromReader(strings.NewReader(input))

	tbl, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len = %d, want 1", tbl.Len())
	}
}

func TestNewReaderGzip(t *testing.T) {
	content := "a\tb\n1\t2\n"
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.tsv")
	if err := os.WriteFile(plain, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	zipped := filepath.Join(dir, "zipped.tsv.gz")
	writeGzipFile(t, zipped, content)

	for _, path := range []string{plain, zipped} {
		r, err := NewReader(path)
		if err != nil {
			t.Fatalf("NewReader(%s) failed: %v", path, err)
		}

		tbl, err := r.ReadAll()
		r.Close()
		if err != nil {
			t.Fatalf("ReadAll(%s) failed: %v", path, err)
		}
		if tbl.Len() != 1 || tbl.Rows[0]["a"] != "1" {
			t.Errorf("unexpected table for %s: %v", path, tbl.Rows)
		}
	}
}

func TestOpenFileGzip(t *testing.T) {
	content := "hello\nworld\n"
	dir := t.TempDir()
	zipped := filepath.Join(dir, "content.gz")
	writeGzipFile(t, zipped, content)

	f, err := OpenFile(zipped)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer f.Close()

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("Failed to read decompressed content: %v", err)
	}
	if string(got) != content {
		t.Errorf("read %q, want %q", got, content)
	}
}

func TestParseError(t *testing.T) {
	err := &ParseError{
		Line:    42,
		Message: "expected at most 8 columns, found 9",
	}

	expected := "table parse error at line 42: expected at most 8 columns, found 9"
	if err.Error() != expected {
		t.Errorf("Error message mismatch: got %q, want %q", err.Error(), expected)
	}
}

// writeGzipFile writes gzip-compressed content to path.
func writeGzipFile(t *testing.T, path, content string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}
