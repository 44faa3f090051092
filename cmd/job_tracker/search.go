package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/store"
	"github.com/jonathan/job-tracker/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search tracked jobs by field filters",
	Long:  "Filter the job collection by company, location, work model, H1B sponsorship, industry, or new-grad status. Filters combine with AND.",
	RunE:  runSearch,
}

var (
	searchCompany   string
	searchLocation  string
	searchWorkModel string
	searchH1B       string
	searchIndustry  string
	searchNewGrad   bool
)

func init() {
	searchCmd.Flags().StringVar(&searchCompany, "company", "", "Company name substring")
	searchCmd.Flags().StringVar(&searchLocation, "location", "", "Location substring")
	searchCmd.Flags().StringVar(&searchWorkModel, "work-model", "", "Exact work model, e.g. Remote")
	searchCmd.Flags().StringVar(&searchH1B, "h1b", "", "Exact H1B value: yes, no, or not sure")
	searchCmd.Flags().StringVar(&searchIndustry, "industry", "", "Industry substring")
	searchCmd.Flags().BoolVar(&searchNewGrad, "new-grad", false, "Filter by new-grad status")

	rootCmd.AddCommand(searchCmd)
}

// searchFilter builds the filter from the search flags. The new-grad
// criterion only applies when the flag was given, so --new-grad=false still
// filters.
func searchFilter(cmd *cobra.Command) types.SearchFilter {
	filter := types.SearchFilter{
		Company:   searchCompany,
		Location:  searchLocation,
		WorkModel: searchWorkModel,
		H1B:       searchH1B,
		Industry:  searchIndustry,
	}
	if cmd.Flags().Changed("new-grad") {
		newGrad := searchNewGrad
		filter.NewGrad = &newGrad
	}
	return filter
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	jobs, err := store.Load(cfg.Store)
	if err != nil {
		return err
	}

	filter := searchFilter(cmd)
	var matched []types.JobRecord
	for i := range jobs {
		if filter.Matches(&jobs[i]) {
			matched = append(matched, jobs[i])
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobsTable(matched)

	return nil
}
