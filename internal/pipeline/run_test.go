package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/parsing"
	"github.com/jonathan/job-tracker/internal/store"
)

const testSheet = "ML Engineer\t2026-02-03\thttps://example.com/a\tRemote\tNew York, NY\tAcme Corp\t$150k-$180k\t1000\tTechnology\tPython and Go experience\tyes\tno\n" +
	"Data Scientist\t2026-02-03\thttps://example.com/b\tHybrid\tAustin, TX\tBeta Inc\t$140k\t500\tFinance\tSQL and statistics\tnot sure\tyes\n"

func writeSheet(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportSheet_AppendsAndSaves(t *testing.T) {
	dir := t.TempDir()
	sheetPath := writeSheet(t, dir, "2026-02-03.tsv", testSheet)
	storePath := filepath.Join(dir, "job_listings.json")

	st, err := store.Open(storePath)
	require.NoError(t, err)
	defer st.Close() //nolint:errcheck

	summary, imported, err := ImportSheet(st, sheetPath)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Found)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 2, summary.TotalStored)
	assert.Equal(t, "2026-02-03", summary.SheetDate)
	assert.Equal(t, sheetPath, summary.Source)
	assert.NotEmpty(t, summary.RunID)
	require.Len(t, imported, 2)
	assert.Equal(t, "ML Engineer", imported[0].PositionTitle)

	jobs, err := store.Load(storePath)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Data Scientist", jobs[1].PositionTitle)
}

func TestImportSheet_SkipsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	sheet := testSheet + "Broken Job\t2026-02-03\tonly-three-fields\n"
	sheetPath := writeSheet(t, dir, "2026-02-03.tsv", sheet)

	st, err := store.Open(filepath.Join(dir, "job_listings.json"))
	require.NoError(t, err)
	defer st.Close() //nolint:errcheck

	summary, imported, err := ImportSheet(st, sheetPath)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Found)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
	require.Len(t, summary.SkipReasons, 1)
	assert.Contains(t, summary.SkipReasons[0], "fields")
	assert.Len(t, imported, 2)
}

func TestImportSheet_NoRecordsDoesNotSave(t *testing.T) {
	dir := t.TempDir()
	sheetPath := writeSheet(t, dir, "notes.tsv", "prose without any record boundaries\nmore prose\n")
	storePath := filepath.Join(dir, "job_listings.json")

	st, err := store.Open(storePath)
	require.NoError(t, err)
	defer st.Close() //nolint:errcheck

	summary, imported, err := ImportSheet(st, sheetPath)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Imported)
	assert.Empty(t, imported)
	assert.Equal(t, "", summary.SheetDate)

	_, statErr := os.Stat(storePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImportSheet_EmptySheet(t *testing.T) {
	dir := t.TempDir()
	sheetPath := writeSheet(t, dir, "2026-02-03.tsv", "   \n\n")

	st, err := store.Open(filepath.Join(dir, "job_listings.json"))
	require.NoError(t, err)
	defer st.Close() //nolint:errcheck

	_, _, err = ImportSheet(st, sheetPath)
	require.Error(t, err)

	var emptyErr *parsing.EmptyInputError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestSheetDateOf(t *testing.T) {
	assert.Equal(t, "2026-02-03", sheetDateOf(filepath.Join("documents", "sheets", "2026-02-03.tsv")))
	assert.Equal(t, "2026-02-03", sheetDateOf("2026-02-03.txt"))
	assert.Equal(t, "", sheetDateOf("notes.tsv"))
	assert.Equal(t, "", sheetDateOf("20260203.tsv"))
}

func TestLoadExtractor_Default(t *testing.T) {
	extractor, err := LoadExtractor("")
	require.NoError(t, err)
	assert.NotNil(t, extractor)
}

func TestLoadExtractor_FromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.yaml")
	content := "categories:\n  languages:\n    - python\n    - go\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	extractor, err := LoadExtractor(path)
	require.NoError(t, err)
	assert.NotNil(t, extractor)
}

func TestLoadExtractor_MissingFile(t *testing.T) {
	_, err := LoadExtractor(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read keyword config")
}

func TestRun_FullPipeline(t *testing.T) {
	dir := t.TempDir()
	inputPath := writeSheet(t, dir, "new_jobs.txt", testSheet)

	opts := RunOptions{
		InputPath:  inputPath,
		SheetDate:  "2026-02-03",
		StorePath:  filepath.Join(dir, "job_listings.json"),
		SheetsDir:  filepath.Join(dir, "documents", "sheets"),
		OutcomeDir: filepath.Join(dir, "outcome"),
		Out:        &bytes.Buffer{},
	}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, filepath.Join(opts.SheetsDir, "2026-02-03.tsv"), result.StagedPath)
	assert.FileExists(t, result.StagedPath)
	assert.FileExists(t, opts.StorePath)

	assert.Equal(t, 2, result.Summary.Imported)
	assert.Equal(t, 2, result.Summary.TotalStored)

	assert.FileExists(t, filepath.Join(opts.OutcomeDir, "resume_skills.json"))
	assert.FileExists(t, filepath.Join(opts.OutcomeDir, "resume_skills_2026-02-03.csv"))
	assert.FileExists(t, filepath.Join(opts.OutcomeDir, "count", "skill_counts_2026-02-03.csv"))
	assert.FileExists(t, filepath.Join(opts.OutcomeDir, "count", "skill_counts_master.csv"))

	assert.Contains(t, result.OutputFiles, filepath.Join(opts.OutcomeDir, "resume_skills.json"))
	assert.Contains(t, result.OutputFiles, filepath.Join(opts.OutcomeDir, "count", "skill_counts_master.csv"))
}

func TestRun_PrintsStages(t *testing.T) {
	dir := t.TempDir()
	inputPath := writeSheet(t, dir, "new_jobs.txt", testSheet)

	var out bytes.Buffer
	opts := RunOptions{
		InputPath:  inputPath,
		SheetDate:  "2026-02-03",
		StorePath:  filepath.Join(dir, "job_listings.json"),
		SheetsDir:  filepath.Join(dir, "sheets"),
		OutcomeDir: filepath.Join(dir, "outcome"),
		Out:        &out,
	}

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "JOB LISTINGS PIPELINE")
	assert.Contains(t, output, "Step 1: Processing input file")
	assert.Contains(t, output, "Step 2: Importing jobs into the store")
	assert.Contains(t, output, "Step 3: Generating resume skills tables")
	assert.Contains(t, output, "Step 4: Generating skill count CSVs")
	assert.Contains(t, output, "PIPELINE COMPLETE")
	assert.Contains(t, output, "Imported 2 jobs")
	assert.Contains(t, output, "Total jobs in store: 2 (added 2 new)")
}

func TestRun_DefaultsDateToToday(t *testing.T) {
	dir := t.TempDir()
	inputPath := writeSheet(t, dir, "new_jobs.txt", testSheet)

	opts := RunOptions{
		InputPath:  inputPath,
		StorePath:  filepath.Join(dir, "job_listings.json"),
		SheetsDir:  filepath.Join(dir, "sheets"),
		OutcomeDir: filepath.Join(dir, "outcome"),
		Out:        &bytes.Buffer{},
	}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, filepath.Join(opts.SheetsDir, today+".tsv"), result.StagedPath)
}

func TestRun_InputMissing(t *testing.T) {
	dir := t.TempDir()

	opts := RunOptions{
		InputPath:  filepath.Join(dir, "absent.txt"),
		SheetDate:  "2026-02-03",
		StorePath:  filepath.Join(dir, "job_listings.json"),
		SheetsDir:  filepath.Join(dir, "sheets"),
		OutcomeDir: filepath.Join(dir, "outcome"),
		Out:        &bytes.Buffer{},
	}

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging input file failed")
}

func TestRun_EmptyInputFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := writeSheet(t, dir, "empty.txt", "")

	opts := RunOptions{
		InputPath:  inputPath,
		SheetDate:  "2026-02-03",
		StorePath:  filepath.Join(dir, "job_listings.json"),
		SheetsDir:  filepath.Join(dir, "sheets"),
		OutcomeDir: filepath.Join(dir, "outcome"),
		Out:        &bytes.Buffer{},
	}

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}

func TestRun_NoJobsImported(t *testing.T) {
	dir := t.TempDir()
	inputPath := writeSheet(t, dir, "prose.txt", "no record boundaries here\njust text\n")

	opts := RunOptions{
		InputPath:  inputPath,
		SheetDate:  "2026-02-03",
		StorePath:  filepath.Join(dir, "job_listings.json"),
		SheetsDir:  filepath.Join(dir, "sheets"),
		OutcomeDir: filepath.Join(dir, "outcome"),
		Out:        &bytes.Buffer{},
	}

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no jobs imported")
}

func TestRun_AppendsToExistingStore(t *testing.T) {
	dir := t.TempDir()
	inputPath := writeSheet(t, dir, "new_jobs.txt", testSheet)
	storePath := filepath.Join(dir, "job_listings.json")

	opts := RunOptions{
		InputPath:  inputPath,
		SheetDate:  "2026-02-03",
		StorePath:  storePath,
		SheetsDir:  filepath.Join(dir, "sheets"),
		OutcomeDir: filepath.Join(dir, "outcome"),
		Out:        &bytes.Buffer{},
	}

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)

	second := writeSheet(t, dir, "more_jobs.txt",
		"Platform Engineer\t2026-02-04\t\tOnsite\tSeattle, WA\tGamma LLC\t$160k\t2000\tTechnology\tKubernetes and Terraform\t\t\n")
	opts.InputPath = second
	opts.SheetDate = "2026-02-04"

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.Imported)
	assert.Equal(t, 3, result.Summary.TotalStored)

	jobs, err := store.Load(storePath)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

func TestArchiveRun_DisabledWithoutURL(t *testing.T) {
	var out bytes.Buffer
	printer := observability.NewPrinter(&out)

	ArchiveRun(context.Background(), "", nil, nil, printer)
	assert.Empty(t, out.String())
}

func TestArchiveRun_BadURLWarnsAndContinues(t *testing.T) {
	dir := t.TempDir()
	sheetPath := writeSheet(t, dir, "2026-02-03.tsv", testSheet)

	st, err := store.Open(filepath.Join(dir, "job_listings.json"))
	require.NoError(t, err)
	defer st.Close() //nolint:errcheck

	summary, imported, err := ImportSheet(st, sheetPath)
	require.NoError(t, err)

	var out bytes.Buffer
	printer := observability.NewPrinter(&out)

	ArchiveRun(context.Background(), "://not-a-url", summary, imported, printer)
	assert.Contains(t, out.String(), "Failed to connect to database")
	assert.Contains(t, out.String(), "Continuing without database persistence...")
}
