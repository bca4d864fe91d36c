package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jorgeholguin/VCF-functions/internal/idlist"
	"github.com/jorgeholguin/VCF-functions/internal/store"
	"github.com/jorgeholguin/VCF-functions/internal/table"
)

var verbose bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vcf-functions",
		Short: "Filter VEP-annotated VCF and MAF tables by variant consequence",
		Long: `vcf-functions loads VEP-annotated VCF or MAF files, keeps rows matching a
variant consequence, and can join the annotation entry of a chosen transcript
onto each row.`,
		Version:      fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newVCFCmd())
	cmd.AddCommand(newMAFCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.vcf-functions.yaml when present.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".vcf-functions")
	viper.SetConfigType("yaml")
	// A missing config file is fine.
	_ = viper.ReadInConfig()
}

// newLogger builds the CLI logger writing to stderr.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// applyConfigString fills an unset flag from the config file.
func applyConfigString(cmd *cobra.Command, flag, key string, dst *string) {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		*dst = viper.GetString(key)
	}
}

// gatherTranscripts merges the flag-supplied identifiers with the optional
// one-per-line file.
func gatherTranscripts(ids []string, path string) (idlist.Set, error) {
	set := idlist.New(ids...)
	if path == "" {
		return set, nil
	}
	fromFile, err := idlist.Load(path)
	if err != nil {
		return nil, err
	}
	for id := range fromFile {
		set[id] = struct{}{}
	}
	return set, nil
}

// writeTable writes t to path, or stdout when path is empty.
func writeTable(path string, t *table.Table) error {
	if path == "" {
		return table.Write(os.Stdout, t)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	return table.Write(f, t)
}

// saveTable persists t into a DuckDB database.
func saveTable(path, name string, t *table.Table) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	return st.SaveTable(name, t)
}
