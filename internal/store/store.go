// Package store persists the job collection as a single JSON file with
// whole-collection overwrite semantics.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/jonathan/job-tracker/internal/schemas"
	"github.com/jonathan/job-tracker/internal/types"
)

// DefaultPath is the store file used when no --store flag is given.
const DefaultPath = "job_listings.json"

// storeSchema is the schema file the saved collection is validated against,
// resolved relative to the working directory. Validation is skipped when the
// schema cannot be found.
const storeSchema = "schemas/job_listings.schema.json"

// PersistenceError represents a failure to read, lock, validate, or write
// the store file.
type PersistenceError struct {
	Path    string
	Message string
	Cause   error
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("persistence failure for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("persistence failure for %s: %s", e.Path, e.Message)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// Store is a loaded job collection bound to its backing file. A Store holds
// an exclusive file lock from Open until Close; one mutating process at a
// time is the documented model.
type Store struct {
	path string
	lock *flock.Flock
	jobs []types.JobRecord
}

// Open acquires the store lock and loads the collection for a mutating run.
// A missing file is an empty collection. Callers must Close the store to
// release the lock.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &PersistenceError{Path: path, Message: "failed to create store directory", Cause: err}
		}
	}

	s := &Store{path: path, lock: flock.New(path + ".lock")}
	locked, err := s.lock.TryLock()
	if err != nil {
		return nil, &PersistenceError{Path: path, Message: "failed to acquire store lock", Cause: err}
	}
	if !locked {
		return nil, &PersistenceError{Path: path, Message: "store is locked by another process"}
	}

	jobs, err := readCollection(path)
	if err != nil {
		_ = s.lock.Unlock()
		return nil, err
	}
	s.jobs = jobs
	return s, nil
}

// Load reads the collection without taking the lock, for read-only runs.
func Load(path string) ([]types.JobRecord, error) {
	return readCollection(path)
}

func readCollection(path string) ([]types.JobRecord, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Path: path, Message: "failed to read store", Cause: err}
	}

	var jobs []types.JobRecord
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, &PersistenceError{Path: path, Message: "store is not valid JSON", Cause: err}
	}
	return jobs, nil
}

// Close releases the store lock.
func (s *Store) Close() error {
	return s.lock.Unlock()
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Jobs returns the collection in insertion order.
func (s *Store) Jobs() []types.JobRecord {
	return s.jobs
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.jobs)
}

// Append adds records to the in-memory collection. Duplicates are kept; the
// store has no idempotency key. Call Save to persist.
func (s *Store) Append(jobs ...types.JobRecord) {
	s.jobs = append(s.jobs, jobs...)
}

// Search returns the records matching the filter, in store order.
func (s *Store) Search(filter types.SearchFilter) []types.JobRecord {
	var out []types.JobRecord
	for i := range s.jobs {
		if filter.Matches(&s.jobs[i]) {
			out = append(out, s.jobs[i])
		}
	}
	return out
}

// Save marshals the whole collection with two-space indentation, validates
// it against the store schema when one is present on disk, and overwrites
// the backing file. Last write wins.
func (s *Store) Save() error {
	jobs := s.jobs
	if jobs == nil {
		jobs = []types.JobRecord{}
	}
	payload, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return &PersistenceError{Path: s.path, Message: "failed to marshal collection", Cause: err}
	}

	if err := validatePayload(s.path, payload); err != nil {
		return err
	}

	if err := os.WriteFile(s.path, payload, 0644); err != nil {
		return &PersistenceError{Path: s.path, Message: "failed to write store", Cause: err}
	}
	return nil
}

func validatePayload(path string, payload []byte) error {
	schemaPath := schemas.ResolveSchemaPath(storeSchema)
	if schemaPath == "" {
		return nil
	}
	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil
	}

	err = schemas.ValidateJSONString(string(schemaContent), string(payload))
	if err == nil {
		return nil
	}
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return &PersistenceError{Path: path, Message: "collection failed schema validation", Cause: validationErr}
	}
	// A broken schema file never blocks a save.
	return nil
}
