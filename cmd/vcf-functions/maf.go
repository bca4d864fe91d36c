package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jorgeholguin/VCF-functions/internal/maf"
)

func newMAFCmd() *cobra.Command {
	opts := maf.DefaultOptions()
	var (
		transcripts     []string
		transcriptsFile string
		outputFile      string
		storePath       string
		storeTable      string
	)

	cmd := &cobra.Command{
		Use:   "maf <input-file>",
		Short: "Filter a MAF by effect consequence and join effects by transcript",
		Long: `Load a MAF (plain or gzipped), decode each row's all_effects column, keep
rows with at least one effect matching the consequence, and either re-encode
the surviving effects or, when transcripts are given, flatten the matching
effect's fields onto each row.`,
		Example: `  vcf-functions maf data_mutations.maf
  vcf-functions maf --transcripts-file ids.txt data_mutations.maf.gz
  vcf-functions maf --row-filter --class SNP data_mutations.maf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigString(cmd, "consequence", "maf.consequence", &opts.Consequence)
			applyConfigString(cmd, "classification", "maf.classification", &opts.Classification)
			applyConfigString(cmd, "class", "maf.class", &opts.VariantClass)
			applyConfigString(cmd, "transcripts-file", "transcripts.file", &transcriptsFile)

			ids, err := gatherTranscripts(transcripts, transcriptsFile)
			if err != nil {
				return err
			}
			opts.Transcripts = ids

			logger, err := newLogger()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer logger.Sync()

			proc := maf.NewProcessor(opts)
			proc.SetLogger(logger)

			result, err := proc.ProcessFile(args[0])
			if err != nil {
				return err
			}

			if storePath != "" {
				if err := saveTable(storePath, storeTable, result.Table); err != nil {
					return err
				}
			}

			return writeTable(outputFile, result.Table)
		},
	}

	cmd.Flags().StringVar(&opts.Consequence, "consequence", opts.Consequence, "Consequence substring effects must contain")
	cmd.Flags().StringVar(&opts.Classification, "classification", opts.Classification, "Variant_Classification kept by --row-filter")
	cmd.Flags().StringVar(&opts.VariantClass, "class", opts.VariantClass, "Variant_Type kept by --row-filter")
	cmd.Flags().BoolVar(&opts.RowFilter, "row-filter", false, "Keep only somatic rows matching classification, consequence and class")
	cmd.Flags().StringSliceVar(&transcripts, "transcripts", nil, "Transcript IDs to join by (comma separated)")
	cmd.Flags().StringVar(&transcriptsFile, "transcripts-file", "", "File of transcript IDs, one per line")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&storePath, "store", "", "DuckDB database file to save the result table into")
	cmd.Flags().StringVar(&storeTable, "store-table", "maf_results", "Name of the saved DuckDB table")

	return cmd
}
