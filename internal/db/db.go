// Package db provides optional PostgreSQL archival of import runs. The JSON
// store stays the source of truth; the archive exists for history queries.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/job-tracker/internal/types"
)

// Import run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ImportRun represents one recorded import of a daily sheet.
type ImportRun struct {
	ID          uuid.UUID  `json:"id"`
	Source      string     `json:"source"`
	SheetDate   string     `json:"sheet_date"`
	Status      string     `json:"status"`
	Found       int        `json:"found"`
	Imported    int        `json:"imported"`
	Skipped     int        `json:"skipped"`
	Truncated   int        `json:"truncated"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateImportRun records the start of an import and returns its ID.
func (db *DB) CreateImportRun(ctx context.Context, source, sheetDate string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO import_runs (source, sheet_date, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		source, sheetDate,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create import run: %w", err)
	}
	return id, nil
}

// CompleteImportRun finalizes an import run with its counters.
func (db *DB) CompleteImportRun(ctx context.Context, runID uuid.UUID, status string, found, imported, skipped, truncated int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE import_runs
		 SET status = $1, found = $2, imported = $3, skipped = $4, truncated = $5, completed_at = NOW()
		 WHERE id = $6`,
		status, found, imported, skipped, truncated, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete import run: %w", err)
	}
	return nil
}

// ArchiveJobs stores the records imported by a run.
func (db *DB) ArchiveJobs(ctx context.Context, runID uuid.UUID, jobs []types.JobRecord) error {
	for i := range jobs {
		job := &jobs[i]
		_, err := db.pool.Exec(ctx,
			`INSERT INTO archived_jobs
			 (run_id, position_title, sheet_date, work_model, location, company, salary,
			  company_size, company_industry, qualifications, h1b_sponsored, is_new_grad, apply_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			runID, job.PositionTitle, job.Date, job.WorkModel, job.Location, job.Company,
			job.Salary, job.CompanySize, job.CompanyIndustry, job.Qualifications,
			job.H1BSponsored, job.IsNewGrad, job.ApplyURL,
		)
		if err != nil {
			return fmt.Errorf("failed to archive job %q: %w", job.PositionTitle, err)
		}
	}
	return nil
}

// GetImportRun retrieves an import run by ID, or nil when it does not exist.
func (db *DB) GetImportRun(ctx context.Context, runID uuid.UUID) (*ImportRun, error) {
	var run ImportRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, source, sheet_date, status, found, imported, skipped, truncated, created_at, completed_at
		 FROM import_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Source, &run.SheetDate, &run.Status, &run.Found,
		&run.Imported, &run.Skipped, &run.Truncated, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get import run: %w", err)
	}
	return &run, nil
}

// RunFilters holds optional filters for listing import runs
type RunFilters struct {
	SheetDate string
	Status    string
	Limit     int
}

// ListImportRuns retrieves recent import runs, newest first.
func (db *DB) ListImportRuns(ctx context.Context, filters RunFilters) ([]ImportRun, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, source, sheet_date, status, found, imported, skipped, truncated, created_at, completed_at
		FROM import_runs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.SheetDate != "" {
		query += fmt.Sprintf(" AND sheet_date = $%d", argNum)
		args = append(args, filters.SheetDate)
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list import runs: %w", err)
	}
	defer rows.Close()

	var runs []ImportRun
	for rows.Next() {
		var run ImportRun
		if err := rows.Scan(&run.ID, &run.Source, &run.SheetDate, &run.Status, &run.Found,
			&run.Imported, &run.Skipped, &run.Truncated, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// CountArchivedJobs returns how many records a run archived.
func (db *DB) CountArchivedJobs(ctx context.Context, runID uuid.UUID) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM archived_jobs WHERE run_id = $1`,
		runID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count archived jobs: %w", err)
	}
	return count, nil
}
