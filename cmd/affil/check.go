package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsen/affil/internal/importer"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check --input <roster.csv>",
	Short: "Verify roster columns without formatting",
	Long: `Verify that a roster has every required column and report the
affiliation groups found in its header.

Exits with status 3 when required columns are missing.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status   string   `json:"status"` // ok, missing_columns
	Columns  []string `json:"columns"`
	Missing  []string `json:"missing,omitempty"`
	Suffixes []string `json:"suffixes"`
	Rows     int      `json:"rows"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	table, err := importer.LoadRoster(inputPath, cfg.DelimiterRune())
	if err != nil {
		return err
	}

	result := CheckResult{
		Status:   "ok",
		Columns:  table.Header,
		Suffixes: importer.DiscoverSuffixes(table.Header),
		Rows:     len(table.Rows),
	}

	schemaErr := importer.ValidateColumns(table)
	var se *importer.SchemaError
	if errors.As(schemaErr, &se) {
		result.Status = "missing_columns"
		result.Missing = se.Missing
	}

	out := cmd.OutOrStdout()
	if humanOutput {
		outputHuman(out, "Columns: %s\n", strings.Join(result.Columns, ", "))
		outputHuman(out, "Affiliation groups: %d\n", len(result.Suffixes))
		outputHuman(out, "Rows: %d\n", result.Rows)
		if len(result.Missing) > 0 {
			outputHuman(out, "Missing columns: %s\n", strings.Join(result.Missing, ", "))
		} else {
			outputHuman(out, "OK\n")
		}
	} else if err := outputJSON(out, result); err != nil {
		return err
	}

	if schemaErr != nil {
		return &exitError{code: ExitDataError, err: schemaErr, silent: true}
	}
	return nil
}
