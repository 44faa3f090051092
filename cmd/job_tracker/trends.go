package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/store"
	"github.com/jonathan/job-tracker/internal/trends"
	"github.com/jonathan/job-tracker/internal/types"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Analyze trending keywords across job descriptions",
	Long: `Ranks the most frequent technology keywords across job descriptions. By
default the descriptions come from the stored qualifications; --scrape fetches
live job-board search results instead. Built-in sample descriptions fill in
when neither source yields enough text.`,
	RunE: runTrends,
}

var (
	trendsQueries []string
	trendsMax     int
	trendsScrape  bool
	trendsOut     string
)

func init() {
	trendsCmd.Flags().StringArrayVar(&trendsQueries, "query", nil, "Search query (repeatable; defaults to the built-in query set)")
	trendsCmd.Flags().IntVar(&trendsMax, "max", 15, "How many trending keywords to rank")
	trendsCmd.Flags().BoolVar(&trendsScrape, "scrape", false, "Scrape job boards live instead of using stored qualifications")
	trendsCmd.Flags().StringVarP(&trendsOut, "out", "o", "", "Write the trend report JSON to this path")

	rootCmd.AddCommand(trendsCmd)
}

// storedDescriptions pulls the non-empty qualification texts out of the
// collection.
func storedDescriptions(jobs []types.JobRecord) []string {
	var descriptions []string
	for i := range jobs {
		if text := strings.TrimSpace(jobs[i].Qualifications); text != "" {
			descriptions = append(descriptions, text)
		}
	}
	return descriptions
}

func runTrends(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(os.Stdout)

	queries := trendsQueries
	if len(queries) == 0 {
		queries = trends.DefaultQueries()
	}

	var descriptions []string
	if trendsScrape {
		scraperCfg := trends.DefaultScraperConfig()
		scraperCfg.Location = cfg.Location
		scraperCfg.UseBrowser = cfg.UseBrowser
		scraperCfg.Verbose = cfg.Verbose
		if cfg.ScrapeRate > 0 {
			scraperCfg.RatePerHost = cfg.ScrapeRate
		}
		if cfg.ScrapeTimeout > 0 {
			scraperCfg.Options.Timeout = time.Duration(cfg.ScrapeTimeout) * time.Second
		}

		scraper := trends.NewScraper(scraperCfg)
		descriptions = scraper.Descriptions(context.Background(), queries)
	} else {
		jobs, err := store.Load(cfg.Store)
		if err != nil {
			return err
		}
		descriptions = storedDescriptions(jobs)
		if len(descriptions) == 0 {
			for _, query := range queries {
				descriptions = append(descriptions, trends.SampleDescriptions(query)...)
			}
		}
	}

	trendReport := trends.NewTrendReport(descriptions, trendsMax)
	printer.PrintTrendChart(trendReport.Analysis, trendReport.Trending)

	if trendsOut != "" {
		if err := trends.WriteTrendReport(trendsOut, trendReport); err != nil {
			return err
		}
		printer.Printf("\nWrote %s\n", trendsOut)
	}

	return nil
}
