package table

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reader parses tab-separated records into rows keyed by header column.
type Reader struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
	skipRows   int
	comment    string
}

// NewReader creates a new table reader for the given file.
// Supports both plain and gzipped files, detected by magic bytes.
func NewReader(path string) (*Reader, error) {
	if path == "-" {
		return NewReaderFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}

	r := &Reader{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("read table header: %w", err)
	}

	// Seek back to beginning
	_, err = file.Seek(0, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("seek table file: %w", err)
	}

	// Check for gzip magic number (0x1f, 0x8b)
	if buf[0] == 0x1f && buf[1] == 0x8b {
		r.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		r.reader = bufio.NewReader(r.gzipReader)
	} else {
		r.reader = bufio.NewReader(file)
	}

	return r, nil
}

// NewReaderFromReader creates a table reader from an io.Reader (e.g., stdin).
func NewReaderFromReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r)}
}

// OpenFile opens a file for raw line access, transparently decompressing
// gzipped content. Compression is detected from magic bytes, not the file
// name.
func OpenFile(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("read file header: %w", err)
	}

	// Seek back to beginning
	_, err = file.Seek(0, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("seek file: %w", err)
	}

	// Check for gzip magic number (0x1f, 0x8b)
	if buf[0] == 0x1f && buf[1] == 0x8b {
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		return &gzipFile{file: file, gz: gz}, nil
	}

	return file, nil
}

// gzipFile pairs a gzip reader with the file backing it so both close
// together.
type gzipFile struct {
	file *os.File
	gz   *gzip.Reader
}

func (g *gzipFile) Read(p []byte) (int, error) {
	return g.gz.Read(p)
}

func (g *gzipFile) Close() error {
	g.gz.Close()
	return g.file.Close()
}

// SetSkipRows sets the number of leading lines to discard before the header
// line. Skipped lines still advance the line counter.
func (r *Reader) SetSkipRows(n int) {
	r.skipRows = n
}

// SetComment sets a prefix marking lines to discard anywhere in the file.
// An empty prefix disables comment skipping.
func (r *Reader) SetComment(prefix string) {
	r.comment = prefix
}

// ReadAll consumes the remaining input and returns it as a table. The first
// non-skipped line is the header. Records shorter than the header are padded
// with empty strings; records longer than the header are a parse error.
func (r *Reader) ReadAll() (*Table, error) {
	for i := 0; i < r.skipRows; i++ {
		if _, err := r.readLine(); err != nil {
			if err == io.EOF {
				return nil, &ParseError{
					Line:    r.lineNumber,
					Message: "no header line found",
				}
			}
			return nil, err
		}
	}

	var t *Table
	for {
		line, err := r.readLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if line == "" {
			continue
		}
		if r.comment != "" && strings.HasPrefix(line, r.comment) {
			continue
		}

		if t == nil {
			t = New(strings.Split(line, "\t"))
			continue
		}

		row, err := r.parseLine(t.Columns, line)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, row)
	}

	if t == nil {
		return nil, &ParseError{
			Line:    r.lineNumber,
			Message: "no header line found",
		}
	}
	return t, nil
}

// readLine reads one line, stripping the trailing newline.
func (r *Reader) readLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			r.lineNumber++
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	r.lineNumber++
	return strings.TrimRight(line, "\r\n"), nil
}

// parseLine splits a data line against the header columns.
func (r *Reader) parseLine(columns []string, line string) (Row, error) {
	fields := strings.Split(line, "\t")
	if len(fields) > len(columns) {
		return nil, &ParseError{
			Line:    r.lineNumber,
			Message: fmt.Sprintf("expected at most %d columns, found %d", len(columns), len(fields)),
		}
	}

	row := make(Row, len(columns))
	for i, col := range columns {
		if i < len(fields) {
			row[col] = fields[i]
		} else {
			row[col] = ""
		}
	}
	return row, nil
}

// LineNumber returns the current line number being processed.
func (r *Reader) LineNumber() int {
	return r.lineNumber
}

// Close closes the reader and underlying file.
func (r *Reader) Close() error {
	if r.gzipReader != nil {
		r.gzipReader.Close()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ParseError represents an error during table parsing with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("table parse error at line %d: %s", e.Line, e.Message)
}
