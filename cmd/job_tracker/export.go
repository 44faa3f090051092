package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/report"
	"github.com/jonathan/job-tracker/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the job collection to CSV",
	RunE:  runExport,
}

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "job_listings.csv", "Output CSV path")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(os.Stdout)

	jobs, err := store.Load(cfg.Store)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		printer.Printf("No jobs to export\n")
		return nil
	}

	if err := report.ExportListingsCSV(exportOut, jobs); err != nil {
		return err
	}
	printer.Printf("Exported %d jobs to %s\n", len(jobs), exportOut)

	return nil
}
