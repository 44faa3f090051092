package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/db"
	"github.com/jonathan/job-tracker/internal/observability"
)

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "List import runs recorded in the archive database",
	Long: `Shows the import runs archived in PostgreSQL, newest first, or the full
detail of one run when its id is given. Requires a configured database; imports
record runs there only when DATABASE_URL (or database_url in the config file)
is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

var (
	runsDate   string
	runsStatus string
	runsLimit  int
)

func init() {
	runsCmd.Flags().StringVar(&runsDate, "date", "", "Only runs for this sheet date (YYYY-MM-DD)")
	runsCmd.Flags().StringVar(&runsStatus, "status", "", "Only runs with this status (running, completed, failed)")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to list")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("no database configured; set DATABASE_URL or database_url in the config file")
	}

	var runID uuid.UUID
	if len(args) == 1 {
		runID, err = uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid run id %q: %w", args[0], err)
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if len(args) == 1 {
		run, err := database.GetImportRun(ctx, runID)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("run %s not found", runID)
		}
		archived, err := database.CountArchivedJobs(ctx, runID)
		if err != nil {
			return err
		}
		printer.PrintImportRunDetail(run, archived)
		return nil
	}

	runs, err := database.ListImportRuns(ctx, db.RunFilters{
		SheetDate: runsDate,
		Status:    runsStatus,
		Limit:     runsLimit,
	})
	if err != nil {
		return err
	}
	printer.PrintImportRuns(runs)
	return nil
}
