package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/ingestion"
	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/parsing"
	"github.com/jonathan/job-tracker/internal/pipeline"
	"github.com/jonathan/job-tracker/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a daily sheet into the job store",
	Long:  "Parse a tab-separated job sheet and append its records to the store. Without an argument, imports today's sheet from the sheets directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runImport,
}

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Parse the sheet and report counts without writing the store")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(os.Stdout)

	sheetPath := ingestion.DefaultSheetPath(cfg.SheetsDir, time.Now().Format("2006-01-02"))
	if len(args) > 0 {
		sheetPath = args[0]
	}

	if importDryRun {
		content, _, err := ingestion.ReadSheet(sheetPath)
		if err != nil {
			return err
		}
		parsed, err := parsing.ParseSheet(content)
		if err != nil {
			return err
		}
		printer.Printf("Dry run: %s\n", parsed.Summary())
		for _, reason := range parsed.SkipReasons {
			printer.Printf("  • %s\n", reason)
		}
		return nil
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	summary, imported, err := pipeline.ImportSheet(st, sheetPath)
	if err != nil {
		return err
	}
	printer.PrintImportSummary(summary)

	pipeline.ArchiveRun(ctx, cfg.DatabaseURL, summary, imported, printer)

	return nil
}
