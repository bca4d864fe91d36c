package vcf

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jorgeholguin/VCF-functions/internal/idlist"
	"github.com/jorgeholguin/VCF-functions/internal/table"
)

// ErrMissingSchema indicates the metadata block declares no CSQ format line,
// so the INFO field cannot be decoded.
var ErrMissingSchema = errors.New("no CSQ format declaration in header")

// Options configures VCF processing.
type Options struct {
	Consequence  string          // substring the Consequence field must contain
	VariantClass string          // substring the VARIANT_CLASS field must contain
	Transcripts  idlist.Set      // transcripts to resolve; empty selects passthrough
	OnCollision  CollisionPolicy // column collision handling during expansion
}

// Record pairs one retained table row with its decoded CSQ state.
type Record struct {
	Row      table.Row // original columns, INFO excluded
	Info     Info      // decoded outer INFO, CSQ key removed
	Entries  []Entry   // consequence-filtered CSQ entries in file order
	Selected Entry     // resolved entry, nil outside extension mode
}

// Result holds the outcome of processing one VCF file. Records backs Table
// row for row.
type Result struct {
	Header  *Header
	Table   *table.Table
	Records []Record
}

// Processor runs the VCF pipeline: header scan, table load, per-row decode,
// consequence filtering and transcript resolution.
type Processor struct {
	opts   Options
	logger *zap.Logger
}

// NewProcessor creates a processor with the given options.
func NewProcessor(opts Options) *Processor {
	return &Processor{
		opts:   opts,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for progress and drop reporting.
func (p *Processor) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Process runs the VCF pipeline over one file with the given options.
func Process(path string, opts Options) (*Result, error) {
	return NewProcessor(opts).ProcessFile(path)
}

// ProcessFile scans the metadata block, loads the table body and runs the
// decode, filter and resolve stages over every row.
func (p *Processor) ProcessFile(path string) (*Result, error) {
	header, err := ScanHeader(path)
	if err != nil {
		return nil, err
	}
	if len(header.CSQFormat) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingSchema)
	}

	r, err := table.NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	r.SetSkipRows(header.SkipRows)
	t, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read vcf table: %w", err)
	}
	t.RenameColumn("#CHROM", ColChrom)

	result, err := p.process(header, t)
	if err != nil {
		return nil, err
	}

	p.logger.Info("processed vcf",
		zap.String("path", path),
		zap.Int("rows", t.Len()),
		zap.Int("kept", result.Table.Len()))

	return result, nil
}

// process runs the per-row stages over a loaded table.
func (p *Processor) process(header *Header, t *table.Table) (*Result, error) {
	consequence := strings.ToLower(p.opts.Consequence)

	var records []Record
	for _, row := range t.Rows {
		// Call-level filter: passing calls mentioning the consequence at all.
		if row[ColFilter] != FilterPass {
			continue
		}
		if !strings.Contains(strings.ToLower(row[ColInfo]), consequence) {
			continue
		}

		info := ParseInfo(row[ColInfo])
		rawCSQ := info[KeyCSQ]
		delete(info, KeyCSQ)

		entries := FilterEntries(DecodeCSQ(rawCSQ, header.CSQFormat),
			p.opts.Consequence, p.opts.VariantClass)

		slim := row.Clone()
		delete(slim, ColInfo)

		records = append(records, Record{Row: slim, Info: info, Entries: entries})
	}

	if p.opts.Transcripts.Len() == 0 {
		return p.passthrough(header, t.Columns, records), nil
	}
	return p.extend(header, t.ColumnsWithout(ColInfo), records)
}

// passthrough keeps every filtered row, re-encoding the INFO column from its
// decoded form with the surviving CSQ entries.
func (p *Processor) passthrough(header *Header, columns []string, records []Record) *Result {
	out := table.New(append([]string(nil), columns...))
	for _, rec := range records {
		row := rec.Row.Clone()
		row[ColInfo] = EncodeInfo(rec.Info, rec.Entries, header.CSQFormat)
		out.Rows = append(out.Rows, row)
	}
	return &Result{Header: header, Table: out, Records: records}
}

// extend resolves one transcript entry per row and flattens it onto the row.
// Rows without a matching transcript are dropped.
func (p *Processor) extend(header *Header, columns []string, records []Record) (*Result, error) {
	names, collisions, err := ExtensionColumns(header.CSQFormat, columns, p.opts.OnCollision)
	if err != nil {
		return nil, err
	}
	if len(collisions) > 0 && p.opts.OnCollision == CollideOverwrite {
		p.logger.Warn("csq fields overwrite table columns",
			zap.Strings("columns", collisions))
	}

	outColumns := append([]string(nil), columns...)
	seen := make(map[string]bool, len(outColumns))
	for _, c := range outColumns {
		seen[c] = true
	}
	for _, field := range header.CSQFormat {
		if name := names[field]; !seen[name] {
			outColumns = append(outColumns, name)
			seen[name] = true
		}
	}

	out := table.New(outColumns)
	var kept []Record
	dropped := 0
	for _, rec := range records {
		selected, ok := Resolve(rec.Entries, p.opts.Transcripts)
		if !ok {
			dropped++
			continue
		}
		rec.Selected = selected
		kept = append(kept, rec)
		out.Rows = append(out.Rows, ExpandRow(rec.Row, selected, names))
	}
	if dropped > 0 {
		p.logger.Debug("rows without transcript match dropped",
			zap.Int("rows", dropped))
	}

	return &Result{Header: header, Table: out, Records: kept}, nil
}
