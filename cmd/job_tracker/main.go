// Package main provides the job_tracker command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_tracker",
	Short: "Track job listings from daily TSV sheets",
	Long:  "job_tracker imports daily tab-separated job sheets into a JSON store and generates resume skills tables, skill count CSVs, and keyword trend reports.",
}

var (
	rootStorePath  string
	rootConfigPath string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootStorePath, "store", "", "Path to the job store JSON file (default job_listings.json)")
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to a config JSON file (default job_tracker.config.json if present)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed progress information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
