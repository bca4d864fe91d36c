package maf

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jorgeholguin/VCF-functions/internal/idlist"
	"github.com/jorgeholguin/VCF-functions/internal/table"
)

// ErrMissingEffects indicates the table declares no all_effects column.
var ErrMissingEffects = errors.New("no all_effects column in table")

// MutationSomatic is the Mutation_Status value kept by the row filter.
const MutationSomatic = "Somatic"

// Options configures MAF processing.
type Options struct {
	Classification string     // Variant_Classification value the row filter keeps
	Consequence    string     // substring the effect consequence must contain
	VariantClass   string     // Variant_Type value the row filter keeps
	Transcripts    idlist.Set // transcripts to resolve; empty selects passthrough
	RowFilter      bool       // enable the somatic row filter
}

// DefaultOptions returns the conventional missense SNP selection.
func DefaultOptions() Options {
	return Options{
		Classification: "Missense_Mutation",
		Consequence:    "missense_variant",
		VariantClass:   "SNP",
	}
}

// Record pairs one retained table row with its decoded effects state.
type Record struct {
	Row      table.Row // original columns, all_effects excluded
	Entries  []Entry   // consequence-filtered effects in file order
	Selected Entry     // resolved effect, nil outside extension mode
}

// Result holds the outcome of processing one MAF file. Records backs Table
// row for row.
type Result struct {
	Table   *table.Table
	Records []Record
}

// Processor runs the MAF pipeline: table load, per-row effects decode,
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

// Process runs the MAF pipeline over one file with the given options.
func Process(path string, opts Options) (*Result, error) {
	return NewProcessor(opts).ProcessFile(path)
}

// ProcessFile loads the table body and runs the decode, filter and resolve
// stages over every row. Rows whose effects all fail the consequence filter
// are dropped in every mode.
func (p *Processor) ProcessFile(path string) (*Result, error) {
	r, err := table.NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	r.SetComment("#")
	t, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read maf table: %w", err)
	}

	result, err := p.process(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	p.logger.Info("processed maf",
		zap.String("path", path),
		zap.Int("rows", t.Len()),
		zap.Int("kept", result.Table.Len()))

	return result, nil
}

// process runs the per-row stages over a loaded table.
func (p *Processor) process(t *table.Table) (*Result, error) {
	if !t.HasColumn(ColAllEffects) {
		return nil, ErrMissingEffects
	}

	var records []Record
	dropped := 0
	for _, row := range t.Rows {
		if p.opts.RowFilter && !p.keepRow(row) {
			continue
		}

		entries := FilterEffects(DecodeEffects(row[ColAllEffects]), p.opts.Consequence)
		if len(entries) == 0 {
			dropped++
			continue
		}

		slim := row.Clone()
		delete(slim, ColAllEffects)
		records = append(records, Record{Row: slim, Entries: entries})
	}
	if dropped > 0 {
		p.logger.Debug("rows without qualifying effects dropped",
			zap.Int("rows", dropped))
	}

	if p.opts.Transcripts.Len() == 0 {
		return p.passthrough(t.Columns, records), nil
	}
	return p.extend(t.ColumnsWithout(ColAllEffects), records), nil
}

// keepRow applies the somatic row filter.
func (p *Processor) keepRow(row table.Row) bool {
	return row[ColVariantClassification] == p.opts.Classification &&
		row[ColOneConsequence] == p.opts.Consequence &&
		row[ColMutationStatus] == MutationSomatic &&
		row[ColVariantType] == p.opts.VariantClass
}

// passthrough keeps every surviving row, re-encoding the all_effects column
// from its filtered form.
func (p *Processor) passthrough(columns []string, records []Record) *Result {
	out := table.New(append([]string(nil), columns...))
	for _, rec := range records {
		row := rec.Row.Clone()
		row[ColAllEffects] = EncodeEffects(rec.Entries)
		out.Rows = append(out.Rows, row)
	}
	return &Result{Table: out, Records: records}
}

// extend resolves one effect per row and flattens it onto the row. Rows
// without a matching transcript are dropped. The suffixed field names cannot
// collide with MAF columns.
func (p *Processor) extend(columns []string, records []Record) *Result {
	outColumns := append(append([]string(nil), columns...), effectFields...)
	out := table.New(outColumns)

	var kept []Record
	dropped := 0
	for _, rec := range records {
		selected, ok := ResolveEffect(rec.Entries, p.opts.Transcripts)
		if !ok {
			dropped++
			continue
		}
		rec.Selected = selected
		kept = append(kept, rec)

		row := rec.Row.Clone()
		for field, value := range selected {
			row[field] = value
		}
		out.Rows = append(out.Rows, row)
	}
	if dropped > 0 {
		p.logger.Debug("rows without transcript match dropped",
			zap.Int("rows", dropped))
	}

	return &Result{Table: out, Records: kept}
}
