// Package pipeline runs a daily sheet through the full flow: stage the input
// into the dated sheets directory, import its records into the JSON store,
// then regenerate the resume and skill count reports. Each stage after the
// import is best effort so one bad report never loses an imported sheet.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-tracker/internal/db"
	"github.com/jonathan/job-tracker/internal/ingestion"
	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/parsing"
	"github.com/jonathan/job-tracker/internal/report"
	"github.com/jonathan/job-tracker/internal/skills"
	"github.com/jonathan/job-tracker/internal/store"
	"github.com/jonathan/job-tracker/internal/types"
)

// RunOptions configures a pipeline run.
type RunOptions struct {
	InputPath    string    // sheet file to process
	SheetDate    string    // YYYY-MM-DD; today when empty
	StorePath    string    // job collection file
	SheetsDir    string    // where staged sheets live
	OutcomeDir   string    // where reports are written
	KeywordsPath string    // optional keyword dictionary override
	DatabaseURL  string    // optional import archive; empty disables it
	Verbose      bool      // print the boxed import summary
	Out          io.Writer // defaults to os.Stdout
}

// RunResult describes what a completed run produced.
type RunResult struct {
	Summary     *types.ImportSummary
	StagedPath  string
	OutputFiles []string
}

var sheetDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// sheetDateOf extracts the date from a staged sheet name, or returns "" when
// the name is not dated.
func sheetDateOf(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if sheetDatePattern.MatchString(name) {
		return name
	}
	return ""
}

// ImportSheet parses the sheet at sheetPath and appends every assembled
// record to the store. The store is saved only when at least one record was
// imported, so a bad sheet never rewrites the collection on disk.
func ImportSheet(s *store.Store, sheetPath string) (*types.ImportSummary, []types.JobRecord, error) {
	content, metadata, err := ingestion.ReadSheet(sheetPath)
	if err != nil {
		return nil, nil, err
	}

	parsed, err := parsing.ParseSheet(content)
	if err != nil {
		return nil, nil, err
	}

	if len(parsed.Records) > 0 {
		s.Append(parsed.Records...)
		if err := s.Save(); err != nil {
			return nil, nil, err
		}
	}

	summary := &types.ImportSummary{
		RunID:       uuid.NewString(),
		Source:      metadata.Source,
		SheetDate:   sheetDateOf(sheetPath),
		Found:       parsed.Found,
		Imported:    len(parsed.Records),
		Skipped:     parsed.Skipped,
		Truncated:   parsed.Truncated,
		SkipReasons: parsed.SkipReasons,
		TotalStored: s.Len(),
	}
	return summary, parsed.Records, nil
}

// LoadExtractor builds the skills extractor for a run, honoring an optional
// keyword dictionary file.
func LoadExtractor(keywordsPath string) (*skills.Extractor, error) {
	if keywordsPath == "" {
		return skills.NewExtractor(), nil
	}
	cfg, err := skills.LoadConfig(keywordsPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return skills.NewExtractorFromConfig(cfg), nil
}

// ArchiveRun records a completed import in the PostgreSQL archive. The
// archive is best effort: connection and write failures are reported as
// warnings and never fail the run.
func ArchiveRun(ctx context.Context, databaseURL string, summary *types.ImportSummary, jobs []types.JobRecord, printer *observability.Printer) {
	if databaseURL == "" {
		return
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		printer.Warningf("Failed to connect to database: %v", err)
		printer.Warningf("Continuing without database persistence...")
		return
	}
	defer database.Close()

	runID, err := database.CreateImportRun(ctx, summary.Source, summary.SheetDate)
	if err != nil {
		printer.Warningf("Failed to record import run: %v", err)
		return
	}
	summary.RunID = runID.String()

	status := db.StatusCompleted
	if err := database.ArchiveJobs(ctx, runID, jobs); err != nil {
		printer.Warningf("Failed to archive jobs: %v", err)
		status = db.StatusFailed
	}
	if err := database.CompleteImportRun(ctx, runID, status, summary.Found, summary.Imported, summary.Skipped, summary.Truncated); err != nil {
		printer.Warningf("Failed to finalize import run: %v", err)
	}
}

// exportResumeReports writes the resume JSON and the per-date resume CSVs,
// returning the paths written so far even when a later write fails.
func exportResumeReports(builder *report.Builder, jobs []types.JobRecord, outcomeDir string) ([]string, error) {
	table, err := builder.BuildResumeTable(jobs)
	if err != nil {
		return nil, err
	}

	jsonPath := filepath.Join(outcomeDir, report.ResumeJSONName)
	if err := report.WriteResumeJSON(jsonPath, table); err != nil {
		return nil, err
	}

	paths := []string{jsonPath}
	csvPaths, err := report.ExportResumeCSVs(outcomeDir, table)
	if err != nil {
		return paths, err
	}
	return append(paths, csvPaths...), nil
}

// Run executes the full pipeline for one input sheet.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	date := opts.SheetDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	printer.PrintBanner("JOB LISTINGS PIPELINE")

	// Step 1: stage the input sheet under its dated name.
	printer.PrintStage(1, "Processing input file")
	printer.PrintDetail("Input: %s", opts.InputPath)
	printer.PrintDetail("Target: %s", ingestion.DefaultSheetPath(opts.SheetsDir, date))

	staged, err := ingestion.StageSheet(opts.InputPath, opts.SheetsDir, date)
	if err != nil {
		return nil, fmt.Errorf("staging input file failed: %w", err)
	}
	printer.PrintDetail("File copied to %s", staged)

	if info, err := os.Stat(staged); err == nil && info.Size() == 0 {
		return nil, fmt.Errorf("staged sheet %s is empty", staged)
	}

	// Step 2: import the staged sheet into the store.
	printer.PrintStage(2, "Importing jobs into the store")
	st, err := store.Open(opts.StorePath)
	if err != nil {
		return nil, fmt.Errorf("opening store failed: %w", err)
	}
	defer st.Close() //nolint:errcheck

	summary, imported, err := ImportSheet(st, staged)
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}
	if summary.Imported == 0 {
		return nil, fmt.Errorf("no jobs imported from %s; check the sheet format", staged)
	}
	printer.PrintDetail("Imported %d jobs", summary.Imported)
	printer.PrintDetail("Total jobs in store: %d (added %d new)", summary.TotalStored, summary.Imported)
	if opts.Verbose {
		printer.PrintImportSummary(summary)
	}

	ArchiveRun(ctx, opts.DatabaseURL, summary, imported, printer)

	extractor, err := LoadExtractor(opts.KeywordsPath)
	if err != nil {
		return nil, fmt.Errorf("loading keyword dictionary failed: %w", err)
	}
	builder := report.NewBuilder(extractor)
	jobs := st.Jobs()

	var outputs []string

	// Step 3: resume skills tables.
	printer.PrintStage(3, "Generating resume skills tables")
	resumePaths, err := exportResumeReports(builder, jobs, opts.OutcomeDir)
	outputs = append(outputs, resumePaths...)
	if err != nil {
		printer.Warningf("Error generating resume tables: %v", err)
	} else {
		printer.PrintDetail("Resume skills tables generated")
	}

	// Step 4: per-date and master skill counts.
	printer.PrintStage(4, "Generating skill count CSVs")
	countPaths, err := builder.ExportSkillCountCSVs(filepath.Join(opts.OutcomeDir, "count"), jobs)
	outputs = append(outputs, countPaths...)
	if err != nil {
		printer.Warningf("Error generating skill counts: %v", err)
	} else {
		printer.PrintDetail("Skill count CSVs generated")
	}

	printer.Printf("\n")
	printer.PrintBanner("PIPELINE COMPLETE")
	printer.Printf("\nOutput files:\n")
	printer.PrintDetail("Store: %s (%d jobs)", st.Path(), st.Len())
	for _, path := range outputs {
		printer.PrintDetail("- %s", path)
	}

	return &RunResult{Summary: summary, StagedPath: staged, OutputFiles: outputs}, nil
}
