// Package vcf processes VEP-annotated VCF files: it scans header metadata,
// decodes the INFO/CSQ field against the declared schema, filters consequence
// entries and joins the entry matching a transcript of interest back onto the
// row.
package vcf

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jorgeholguin/VCF-functions/internal/table"
)

// Metadata line markers.
const (
	metaPrefix        = "##"
	csqInfoPrefix     = "##INFO=<ID=CSQ"
	individualPrefix  = "##INDIVIDUAL=<NAME="
	tumorSamplePrefix = "##SAMPLE=<ID=TUMOR"
	formatMarker      = "Format: "
	nameMarker        = "NAME="
)

// Header holds metadata scanned from the ## lines preceding the table body.
type Header struct {
	SkipRows  int      // number of leading ## lines
	CaseID    string   // from ##INDIVIDUAL, empty when absent
	SampleID  string   // tumor sample name from ##SAMPLE, empty when absent
	CSQFormat []string // ordered CSQ field names, nil when undeclared
}

// ScanHeader reads the metadata block of a VCF file without loading the
// table body. Supports both plain and gzipped files.
func ScanHeader(path string) (*Header, error) {
	f, err := table.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("scan header: %w", err)
	}
	defer f.Close()

	return ScanHeaderFrom(f)
}

// ScanHeaderFrom reads metadata lines from r until the first non-metadata
// line. Values never found are left empty; a missing CSQ declaration leaves
// CSQFormat nil.
func ScanHeaderFrom(r io.Reader) (*Header, error) {
	h := &Header{}
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read header line: %w", err)
		}

		line = strings.TrimRight(line, "\r\n")
		if !strings.HasPrefix(line, metaPrefix) {
			break
		}

		h.SkipRows++
		h.scanLine(line)

		if err == io.EOF {
			break
		}
	}

	return h, nil
}

// scanLine picks identifiers and the CSQ schema out of one metadata line.
// First occurrence wins for every value.
func (h *Header) scanLine(line string) {
	switch {
	case h.CSQFormat == nil && strings.HasPrefix(line, csqInfoPrefix):
		h.CSQFormat = parseCSQFormat(line)
	case h.CaseID == "" && strings.HasPrefix(line, individualPrefix):
		h.CaseID = parseBracketValue(line, individualPrefix)
	case h.SampleID == "" && strings.HasPrefix(line, tumorSamplePrefix):
		h.SampleID = parseSampleName(line)
	}
}

// parseCSQFormat extracts the ordered field names declared after the
// "Format: " marker of a ##INFO=<ID=CSQ...> line.
func parseCSQFormat(line string) []string {
	parts := strings.SplitN(line, formatMarker, 2)
	if len(parts) < 2 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(parts[1], `">`), "|")
}

// parseBracketValue extracts the value between a line prefix and the first
// comma (or the closing bracket when no attribute follows).
func parseBracketValue(line, prefix string) string {
	value := strings.TrimPrefix(line, prefix)
	if i := strings.Index(value, ","); i >= 0 {
		value = value[:i]
	}
	return strings.TrimSuffix(value, ">")
}

// parseSampleName extracts the NAME attribute of a ##SAMPLE line.
func parseSampleName(line string) string {
	for _, attr := range strings.Split(line, ",") {
		if strings.HasPrefix(attr, nameMarker) {
			return strings.TrimSuffix(strings.TrimPrefix(attr, nameMarker), ">")
		}
	}
	return ""
}
