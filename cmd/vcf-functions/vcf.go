package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jorgeholguin/VCF-functions/internal/vcf"
)

func newVCFCmd() *cobra.Command {
	var (
		consequence     string
		variantClass    string
		transcripts     []string
		transcriptsFile string
		collision       string
		outputFile      string
		storePath       string
		storeTable      string
		showCaseID      bool
	)

	cmd := &cobra.Command{
		Use:   "vcf <input-file>",
		Short: "Filter a VEP-annotated VCF and join CSQ entries by transcript",
		Long: `Load a VEP-annotated VCF (plain or gzipped), keep PASS calls whose CSQ
entries match the consequence and variant class, and either re-encode the
surviving entries into INFO or, when transcripts are given, flatten the
matching entry's fields onto each row.`,
		Example: `  vcf-functions vcf input.vcf.gz
  vcf-functions vcf --consequence stop_gained --class SNV input.vcf
  vcf-functions vcf --transcripts ENST00000311936 -o out.tsv input.vcf
  vcf-functions vcf --store results.duckdb input.vcf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigString(cmd, "consequence", "vcf.consequence", &consequence)
			applyConfigString(cmd, "class", "vcf.class", &variantClass)
			applyConfigString(cmd, "transcripts-file", "transcripts.file", &transcriptsFile)

			ids, err := gatherTranscripts(transcripts, transcriptsFile)
			if err != nil {
				return err
			}

			policy, err := vcf.ParseCollisionPolicy(collision)
			if err != nil {
				return err
			}

			logger, err := newLogger()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer logger.Sync()

			proc := vcf.NewProcessor(vcf.Options{
				Consequence:  consequence,
				VariantClass: variantClass,
				Transcripts:  ids,
				OnCollision:  policy,
			})
			proc.SetLogger(logger)

			result, err := proc.ProcessFile(args[0])
			if err != nil {
				return err
			}

			if showCaseID {
				fmt.Fprintf(os.Stderr, "case_id=%s\tsample_id=%s\n",
					result.Header.CaseID, result.Header.SampleID)
			}

			if storePath != "" {
				if err := saveTable(storePath, storeTable, result.Table); err != nil {
					return err
				}
			}

			return writeTable(outputFile, result.Table)
		},
	}

	cmd.Flags().StringVar(&consequence, "consequence", "missense_variant", "Consequence substring CSQ entries must contain")
	cmd.Flags().StringVar(&variantClass, "class", "SNV", "VARIANT_CLASS substring CSQ entries must contain")
	cmd.Flags().StringSliceVar(&transcripts, "transcripts", nil, "Transcript IDs to join by (comma separated)")
	cmd.Flags().StringVar(&transcriptsFile, "transcripts-file", "", "File of transcript IDs, one per line")
	cmd.Flags().StringVar(&collision, "collision", "error", "CSQ column collision handling: error, prefix or overwrite")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&storePath, "store", "", "DuckDB database file to save the result table into")
	cmd.Flags().StringVar(&storeTable, "store-table", "vcf_results", "Name of the saved DuckDB table")
	cmd.Flags().BoolVar(&showCaseID, "case-id", false, "Print the case and sample identifiers to stderr")

	return cmd
}
