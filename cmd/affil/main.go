// Package main provides the affil CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/matsen/affil/internal/config"
	"github.com/matsen/affil/internal/export"
	"github.com/matsen/affil/internal/importer"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	verbose     bool

	inputPath    string
	outputName   string
	outputFormat string

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) && exitErr.silent {
			os.Exit(exitErr.code)
		}
		exitWithError(exitCodeFor(err), "%s", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "affil --input <roster.csv>",
	Short: "Format author and affiliation blocks for many-author papers",
	Long: `affil turns a roster of authors into a numbered affiliation list and an
author line annotated with superscript affiliation numbers.

The roster is ';'-separated text with a header row containing:
  First Name, Middle Name, Last Name,
  Institute/Department/University, City/State, Post/Zip code, Country

Additional affiliations repeat the last four columns with a suffix
(Country2, City/State2, ...). Header names are case-insensitive.

Usage:
  affil --input authors.csv
  affil --input authors.csv --output block --format text
  affil check --input authors.csv`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runFormat,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Roster file in ';'-separated .csv format (required)")
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.MarkPersistentFlagRequired("input")

	rootCmd.Flags().StringVarP(&outputName, "output", "o", "", "Output file name (default: input name with the format's extension)")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: html or text (default from config, html)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render without writing the output file")
	rootCmd.Flags().BoolVar(&copyOutput, "copy", false, "Also copy the rendered document to the clipboard")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Version = Version
}

// setup loads .env and the global config, merges them with flags, and
// builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		return withExit(ExitConfigError, err)
	}

	loaded, err := config.Load()
	if err != nil {
		return withExit(ExitConfigError, fmt.Errorf("loading config: %w", err))
	}
	cfg = loaded

	if !cmd.Flags().Changed("human") {
		humanOutput = cfg.Human
	}
	if outputFormat == "" {
		outputFormat = cfg.Format
	}

	logger, err = newLogger(verbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	return nil
}

// newLogger builds a production logger writing to stderr.
func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// exitError attaches a process exit code to an error.
// Silent errors have already been reported.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExit(code int, err error) error {
	return &exitError{code: code, err: err}
}

// exitCodeFor maps an error returned by a command to its exit code.
func exitCodeFor(err error) int {
	var exitErr *exitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.code
	case importer.IsInputNotFound(err):
		return ExitInputNotFound
	case importer.IsUnsupportedFormat(err), importer.IsSchemaError(err):
		return ExitDataError
	default:
		return ExitError
	}
}

// validFormat reports whether format names a supported renderer.
func validFormat(format string) bool {
	for _, f := range export.ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
