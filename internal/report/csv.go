package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/job-tracker/internal/skills"
	"github.com/jonathan/job-tracker/internal/types"
)

var resumeCSVHeader = []string{"Date", "Category", "Skills", "Job Titles", "Companies"}

var listingsCSVHeader = []string{
	"position_title", "date", "work_model", "location", "company",
	"salary", "company_size", "company_industry", "qualifications",
	"h1b_sponsored", "is_new_grad", "apply_url", "notes",
}

var countsCSVHeader = []string{"Category", "Skill", "Count"}

// WriteResumeCSV writes the whole resume table as CSV: one row per date and
// category, skills joined with ", " and the date's job titles and companies
// joined with "; ".
func WriteResumeCSV(w io.Writer, table *ResumeTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resumeCSVHeader); err != nil {
		return fmt.Errorf("failed to write resume CSV header: %w", err)
	}
	for _, date := range table.DatesAnalyzed {
		if err := writeResumeRows(cw, table, date); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteResumeCSVForDate writes one date's section of the resume table.
func WriteResumeCSVForDate(w io.Writer, table *ResumeTable, date string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resumeCSVHeader); err != nil {
		return fmt.Errorf("failed to write resume CSV header: %w", err)
	}
	if err := writeResumeRows(cw, table, date); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func writeResumeRows(cw *csv.Writer, table *ResumeTable, date string) error {
	section, ok := table.ResumeData[date]
	if !ok {
		return fmt.Errorf("no resume data for date %s", date)
	}

	titles := make([]string, 0, len(section.Jobs))
	companies := make([]string, 0, len(section.Jobs))
	for _, job := range section.Jobs {
		titles = append(titles, job.PositionTitle)
		companies = append(companies, job.Company)
	}

	for _, category := range table.CategoryOrder {
		skillList := section.Categories[category]
		if len(skillList) == 0 {
			continue
		}
		row := []string{
			date,
			skills.TitleCase(category),
			strings.Join(skillList, ", "),
			strings.Join(titles, "; "),
			strings.Join(companies, "; "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write resume CSV row: %w", err)
		}
	}
	return nil
}

// WriteListingsCSV exports raw job listings with the storage column order.
// The industry list joins with ", " and the new-grad flag renders Yes/No.
func WriteListingsCSV(w io.Writer, jobs []types.JobRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(listingsCSVHeader); err != nil {
		return fmt.Errorf("failed to write listings CSV header: %w", err)
	}
	for _, job := range jobs {
		row := []string{
			job.PositionTitle,
			job.Date,
			job.WorkModel,
			job.Location,
			job.Company,
			job.Salary,
			job.CompanySize,
			job.IndustryLine(),
			job.Qualifications,
			job.H1BSponsored,
			job.NewGradLabel(),
			job.ApplyURL,
			job.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write listings CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSkillCountsCSV exports skill-frequency rows with Title Cased
// category names.
func WriteSkillCountsCSV(w io.Writer, counts []SkillCount) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(countsCSVHeader); err != nil {
		return fmt.Errorf("failed to write counts CSV header: %w", err)
	}
	for _, row := range counts {
		record := []string{skills.TitleCase(row.Category), row.Skill, strconv.Itoa(row.Count)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write counts CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
