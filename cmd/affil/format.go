package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matsen/affil/internal/affiliation"
	"github.com/matsen/affil/internal/clipboard"
	"github.com/matsen/affil/internal/export"
	"github.com/matsen/affil/internal/importer"
)

var (
	dryRun     bool
	copyOutput bool
)

// FormatResult is the report for a formatting run.
type FormatResult struct {
	Input        string `json:"input"`
	Output       string `json:"output"`
	Format       string `json:"format"`
	Authors      int    `json:"authors"`
	Affiliations int    `json:"affiliations"`
	SkippedRows  int    `json:"skipped_rows"`
	Groups       int    `json:"groups"`
	DryRun       bool   `json:"dry_run,omitempty"`
	Copied       bool   `json:"copied,omitempty"`
}

func runFormat(cmd *cobra.Command, args []string) error {
	if !validFormat(outputFormat) {
		return withExit(ExitError, fmt.Errorf("unknown format: %s (valid: %v)", outputFormat, export.ValidFormats))
	}

	outPath := OutputPath(inputPath, outputName, outputFormat)
	logger.Info("formatting roster",
		zap.String("input", inputPath),
		zap.String("output", outPath),
		zap.String("format", outputFormat))

	table, err := importer.LoadRoster(inputPath, cfg.DelimiterRune())
	if err != nil {
		return err
	}

	ex, err := importer.Extract(table, logger)
	if err != nil {
		return err
	}
	logger.Info("roster loaded",
		zap.Int("affiliation_groups", len(ex.Groups)),
		zap.Int("authors", len(ex.Records)),
		zap.Int("skipped_rows", ex.Skipped))

	reg, bindings := affiliation.Process(ex.Records)
	logger.Debug("affiliations numbered", zap.Int("distinct", reg.Len()))

	doc, err := export.Render(outputFormat, bindings, reg.Affiliations())
	if err != nil {
		return withExit(ExitError, err)
	}

	if !dryRun {
		if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
			return withExit(ExitError, fmt.Errorf("writing output: %w", err))
		}
		logger.Info("output written", zap.String("path", outPath), zap.Int("bytes", len(doc)))
	}

	copied := false
	if copyOutput {
		if err := clipboard.Copy(doc); err != nil {
			logger.Warn("copying to clipboard failed", zap.Error(err))
		} else {
			copied = true
		}
	}

	result := FormatResult{
		Input:        inputPath,
		Output:       outPath,
		Format:       outputFormat,
		Authors:      len(bindings),
		Affiliations: reg.Len(),
		SkippedRows:  ex.Skipped,
		Groups:       len(ex.Groups),
		DryRun:       dryRun,
		Copied:       copied,
	}

	out := cmd.OutOrStdout()
	if humanOutput {
		verb := "Wrote"
		if dryRun {
			verb = "Would write"
		}
		outputHuman(out, "%s %s: %d authors, %d affiliations", verb, outPath, result.Authors, result.Affiliations)
		if result.SkippedRows > 0 {
			outputHuman(out, " (%d rows without names skipped)", result.SkippedRows)
		}
		outputHuman(out, "\n")
		return nil
	}
	return outputJSON(out, result)
}

// OutputPath decides where the rendered document goes.
//
// An explicit name gets the format's extension unless it already has it.
// Otherwise the input path is reused with its .csv extension replaced.
func OutputPath(input, output, format string) string {
	ext := export.Extension(format)
	if output != "" {
		if strings.EqualFold(filepath.Ext(output), ext) {
			return output
		}
		return output + ext
	}

	base := input
	if strings.EqualFold(filepath.Ext(input), importer.RosterExt) {
		base = input[:len(input)-len(importer.RosterExt)]
	}
	return base + ext
}
