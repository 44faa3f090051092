package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked jobs",
	Long:  "Print the job collection as a compact table, or the full record for every job with --detailed.",
	RunE:  runList,
}

var listDetailed bool

func init() {
	listCmd.Flags().BoolVar(&listDetailed, "detailed", false, "Show the full record for every job")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	jobs, err := store.Load(cfg.Store)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if listDetailed {
		printer.PrintJobsDetailed(jobs)
	} else {
		printer.PrintJobsTable(jobs)
	}

	return nil
}
