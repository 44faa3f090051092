package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/pipeline"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline <input> [date]",
	Short: "Run the full import and reporting pipeline on a new sheet",
	Long: `Copies the input file into the sheets directory as <date>.tsv (date defaults
to today), imports it into the store, then regenerates the resume skills
tables and the skill count CSVs.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(pipelineCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	date := ""
	if len(args) > 1 {
		date = args[1]
	}

	opts := pipeline.RunOptions{
		InputPath:    args[0],
		SheetDate:    date,
		StorePath:    cfg.Store,
		SheetsDir:    cfg.SheetsDir,
		OutcomeDir:   cfg.OutcomeDir,
		KeywordsPath: cfg.Keywords,
		DatabaseURL:  cfg.DatabaseURL,
		Verbose:      cfg.Verbose,
	}

	_, err = pipeline.Run(context.Background(), opts)
	return err
}
