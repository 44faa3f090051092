package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jonathan/job-tracker/internal/types"
)

// ResumeJSONName is the default resume table output file.
const ResumeJSONName = "resume_skills.json"

// WriteResumeJSON saves the resume table with two-space indentation,
// creating parent directories as needed.
func WriteResumeJSON(path string, table *ResumeTable) error {
	jsonBytes, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume table: %w", err)
	}
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write resume table: %w", err)
	}
	return nil
}

// ExportResumeCSVs writes one resume CSV per analyzed date into dir
// (resume_skills_<date>.csv) and returns the written paths in date order.
func ExportResumeCSVs(dir string, table *ResumeTable) ([]string, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(table.DatesAnalyzed))
	for _, date := range table.DatesAnalyzed {
		var buf bytes.Buffer
		if err := WriteResumeCSVForDate(&buf, table, date); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, fmt.Sprintf("resume_skills_%s.csv", date))
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ExportSkillCountCSVs writes a skill-count CSV per sheet date plus a master
// file across all jobs into countDir, returning the written paths with the
// master file last.
func (b *Builder) ExportSkillCountCSVs(countDir string, jobs []types.JobRecord) ([]string, error) {
	if err := ensureDir(countDir); err != nil {
		return nil, err
	}

	byDate := groupByDate(jobs)
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var paths []string
	for _, date := range dates {
		path := filepath.Join(countDir, fmt.Sprintf("skill_counts_%s.csv", date))
		if err := writeCountsFile(path, b.CountSkills(byDate[date])); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	master := filepath.Join(countDir, "skill_counts_master.csv")
	if err := writeCountsFile(master, b.CountSkills(jobs)); err != nil {
		return paths, err
	}
	return append(paths, master), nil
}

// ExportListingsCSV writes the raw listings export to path.
func ExportListingsCSV(path string, jobs []types.JobRecord) error {
	var buf bytes.Buffer
	if err := WriteListingsCSV(&buf, jobs); err != nil {
		return err
	}
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeCountsFile(path string, counts []SkillCount) error {
	var buf bytes.Buffer
	if err := WriteSkillCountsCSV(&buf, counts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
