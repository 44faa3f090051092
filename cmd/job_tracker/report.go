package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/pipeline"
	"github.com/jonathan/job-tracker/internal/report"
	"github.com/jonathan/job-tracker/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the resume skills report",
	Long:  "Group stored jobs by sheet date, extract the skills their qualifications mention, and render the resume skills table. Flags write the report files to the outcome directory.",
	RunE:  runReport,
}

var (
	reportJSON   bool
	reportCSV    bool
	reportCounts bool
	reportQuiet  bool
)

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Write resume_skills.json to the outcome directory")
	reportCmd.Flags().BoolVar(&reportCSV, "csv", false, "Write the per-date resume CSVs to the outcome directory")
	reportCmd.Flags().BoolVar(&reportCounts, "counts", false, "Write the per-date and master skill count CSVs")
	reportCmd.Flags().BoolVar(&reportQuiet, "quiet", false, "Skip console rendering")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(os.Stdout)

	jobs, err := store.Load(cfg.Store)
	if err != nil {
		return err
	}

	extractor, err := pipeline.LoadExtractor(cfg.Keywords)
	if err != nil {
		return err
	}
	builder := report.NewBuilder(extractor)

	table, err := builder.BuildResumeTable(jobs)
	if err != nil {
		return err
	}

	if !reportQuiet {
		printer.PrintResumeTable(table)
	}

	if reportJSON {
		path := filepath.Join(cfg.OutcomeDir, report.ResumeJSONName)
		if err := report.WriteResumeJSON(path, table); err != nil {
			return err
		}
		printer.Printf("Wrote %s\n", path)
	}
	if reportCSV {
		paths, err := report.ExportResumeCSVs(cfg.OutcomeDir, table)
		if err != nil {
			return err
		}
		for _, path := range paths {
			printer.Printf("Wrote %s\n", path)
		}
	}
	if reportCounts {
		paths, err := builder.ExportSkillCountCSVs(filepath.Join(cfg.OutcomeDir, "count"), jobs)
		if err != nil {
			return err
		}
		for _, path := range paths {
			printer.Printf("Wrote %s\n", path)
		}
	}

	return nil
}
