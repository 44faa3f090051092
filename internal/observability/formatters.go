// Package observability provides formatted CLI output for import runs, job
// tables, resume reports, and trend charts.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/job-tracker/internal/db"
	"github.com/jonathan/job-tracker/internal/report"
	"github.com/jonathan/job-tracker/internal/skills"
	"github.com/jonathan/job-tracker/internal/trends"
	"github.com/jonathan/job-tracker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// bannerWidth matches the pipeline banner rules
	bannerWidth = 80
	// tableWidth matches the compact jobs table rules
	tableWidth = 150
	// summaryTopSkills caps how many skills a summary category line shows
	summaryTopSkills = 15
	// trendBarMax caps the bar length in the trend chart
	trendBarMax = 20
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Printf writes a plain formatted line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Warningf writes a prefixed warning line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Warningf(format string, args ...any) {
	fmt.Fprintf(p.out, "⚠ "+format+"\n", args...)
}

// PrintBanner writes a full-width banner with a title.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBanner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(p.out, "%s\n%s\n%s\n", rule, title, rule)
}

// PrintStage writes a numbered pipeline stage header.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStage(number int, name string) {
	fmt.Fprintf(p.out, "\nStep %d: %s\n", number, name)
}

// PrintDetail writes an indented detail line under a stage header.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDetail(format string, args ...any) {
	fmt.Fprintf(p.out, "   "+format+"\n", args...)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintImportSummary outputs a boxed summary of one sheet import.
func (p *Printer) PrintImportSummary(summary *types.ImportSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Source:    %s\n", summary.Source))
	if summary.SheetDate != "" {
		sb.WriteString(fmt.Sprintf("Sheet:     %s\n", summary.SheetDate))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Found:     %d\n", summary.Found))
	sb.WriteString(fmt.Sprintf("Imported:  %d\n", summary.Imported))
	sb.WriteString(fmt.Sprintf("Skipped:   %d\n", summary.Skipped))
	sb.WriteString(fmt.Sprintf("Truncated: %d\n", summary.Truncated))
	sb.WriteString(fmt.Sprintf("In store:  %d\n", summary.TotalStored))

	if len(summary.SkipReasons) > 0 {
		sb.WriteString("\nSkip reasons:\n")
		count := min(len(summary.SkipReasons), maxItemsToShow)
		for i := 0; i < count; i++ {
			reason := summary.SkipReasons[i]
			if len(reason) > 50 {
				reason = reason[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
		if len(summary.SkipReasons) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.SkipReasons)-maxItemsToShow))
		}
	}

	p.printBox("IMPORT SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobsTable outputs the compact jobs table with a total line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintJobsTable(jobs []types.JobRecord) {
	if len(jobs) == 0 {
		fmt.Fprintln(p.out, "No jobs found")
		return
	}

	rule := strings.Repeat("=", tableWidth)
	fmt.Fprintf(p.out, "\n%s\n", rule)
	fmt.Fprintf(p.out, "%-4s %-30s %-12s %-20s %-25s %-12s %-20s\n",
		"#", "Position Title", "Date", "Company", "Location", "Work Model", "Salary")
	fmt.Fprintln(p.out, rule)

	for i, job := range jobs {
		fmt.Fprintf(p.out, "%-4d %-30s %-12s %-20s %-25s %-12s %-20s\n",
			i+1,
			clip(job.PositionTitle, 30),
			job.Date,
			clip(job.Company, 20),
			clip(job.Location, 25),
			job.WorkModel,
			job.Salary)
	}

	fmt.Fprintln(p.out, rule)
	fmt.Fprintf(p.out, "\nTotal: %d jobs\n", len(jobs))
}

// PrintJobsDetailed outputs every field of every job, one block per record.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintJobsDetailed(jobs []types.JobRecord) {
	if len(jobs) == 0 {
		fmt.Fprintln(p.out, "No jobs found")
		return
	}

	rule := strings.Repeat("=", 100)
	for i := range jobs {
		job := &jobs[i]
		fmt.Fprintf(p.out, "\n%s\n", rule)
		fmt.Fprintf(p.out, "Job #%d\n", i+1)
		fmt.Fprintln(p.out, rule)
		fmt.Fprintf(p.out, "Position Title: %s\n", job.PositionTitle)
		fmt.Fprintf(p.out, "Date: %s\n", job.Date)
		fmt.Fprintf(p.out, "Company: %s\n", job.Company)
		fmt.Fprintf(p.out, "Location: %s\n", job.Location)
		fmt.Fprintf(p.out, "Work Model: %s\n", job.WorkModel)
		fmt.Fprintf(p.out, "Salary: %s\n", job.Salary)
		fmt.Fprintf(p.out, "Company Size: %s\n", job.CompanySize)
		fmt.Fprintf(p.out, "Company Industry: %s\n", job.IndustryLine())
		fmt.Fprintf(p.out, "H1B Sponsored: %s\n", job.H1BSponsored)
		fmt.Fprintf(p.out, "Is New Grad: %s\n", job.NewGradLabel())
		fmt.Fprintf(p.out, "\nQualifications:\n%s\n", job.Qualifications)
		if job.ApplyURL != "" {
			fmt.Fprintf(p.out, "\nApply URL: %s\n", job.ApplyURL)
		}
		if job.Notes != "" {
			fmt.Fprintf(p.out, "\nNotes: %s\n", job.Notes)
		}
	}
}

// PrintResumeTable outputs the per-date skill breakdown and the cross-date
// summary, with display names for each category.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResumeTable(table *report.ResumeTable) {
	if table == nil {
		return
	}

	rule := strings.Repeat("=", 100)
	fmt.Fprintf(p.out, "\n%s\n", rule)
	fmt.Fprintln(p.out, "RESUME SKILLS TABLE (Organized by Date)")
	fmt.Fprintln(p.out, rule)

	for _, date := range table.DatesAnalyzed {
		day := table.ResumeData[date]
		if day == nil {
			continue
		}

		fmt.Fprintf(p.out, "\nDate: %s\n", date)
		fmt.Fprintln(p.out, strings.Repeat("-", 100))

		if len(day.Jobs) > 0 {
			fmt.Fprintf(p.out, "Jobs found: %d\n", len(day.Jobs))
			for _, job := range day.Jobs {
				fmt.Fprintf(p.out, "  • %s at %s\n", job.PositionTitle, job.Company)
			}
		}

		fmt.Fprintln(p.out, "\nSkills extracted:")
		for _, category := range table.CategoryOrder {
			skillList := day.Categories[category]
			if len(skillList) == 0 {
				continue
			}
			fmt.Fprintf(p.out, "\n  %s:\n", skills.DisplayName(category))
			fmt.Fprintf(p.out, "    %s\n", strings.Join(skillList, ", "))
		}
	}

	fmt.Fprintf(p.out, "\n%s\n", rule)
	fmt.Fprintln(p.out, "SUMMARY - Most Common Skills Across All Dates")
	fmt.Fprintln(p.out, rule)

	for _, category := range table.CategoryOrder {
		skillList := table.Summary[category]
		if len(skillList) == 0 {
			continue
		}
		if len(skillList) > summaryTopSkills {
			skillList = skillList[:summaryTopSkills]
		}
		fmt.Fprintf(p.out, "\n%s:\n", skills.DisplayName(category))
		fmt.Fprintf(p.out, "  %s\n", strings.Join(skillList, ", "))
	}
}

// PrintImportRuns outputs the archive's import runs as a compact table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintImportRuns(runs []db.ImportRun) {
	if len(runs) == 0 {
		fmt.Fprintln(p.out, "No import runs found")
		return
	}

	rule := strings.Repeat("=", 120)
	fmt.Fprintf(p.out, "\n%s\n", rule)
	fmt.Fprintf(p.out, "%-36s %-12s %-10s %6s %9s %8s %10s  %s\n",
		"Run ID", "Sheet", "Status", "Found", "Imported", "Skipped", "Truncated", "Created")
	fmt.Fprintln(p.out, rule)

	for i := range runs {
		run := &runs[i]
		fmt.Fprintf(p.out, "%-36s %-12s %-10s %6d %9d %8d %10d  %s\n",
			run.ID, run.SheetDate, run.Status, run.Found, run.Imported,
			run.Skipped, run.Truncated, run.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(p.out, rule)
	fmt.Fprintf(p.out, "\nTotal: %d runs\n", len(runs))
}

// PrintImportRunDetail outputs one archived run with its stored job count.
func (p *Printer) PrintImportRunDetail(run *db.ImportRun, archivedJobs int) {
	if run == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Run:       %s\n", run.ID))
	sb.WriteString(fmt.Sprintf("Source:    %s\n", run.Source))
	sb.WriteString(fmt.Sprintf("Sheet:     %s\n", run.SheetDate))
	sb.WriteString(fmt.Sprintf("Status:    %s\n", run.Status))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Found:     %d\n", run.Found))
	sb.WriteString(fmt.Sprintf("Imported:  %d\n", run.Imported))
	sb.WriteString(fmt.Sprintf("Skipped:   %d\n", run.Skipped))
	sb.WriteString(fmt.Sprintf("Truncated: %d\n", run.Truncated))
	sb.WriteString(fmt.Sprintf("Archived:  %d\n", archivedJobs))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Started:   %s\n", run.CreatedAt.Format(time.RFC3339)))
	if run.CompletedAt != nil {
		sb.WriteString(fmt.Sprintf("Completed: %s\n", run.CompletedAt.Format(time.RFC3339)))
	}

	p.printBox("IMPORT RUN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrendChart outputs the trending keywords as a numbered bar chart.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTrendChart(analysis *trends.Analysis, trending []trends.KeywordCount) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(p.out, "\n%s\n", rule)
	fmt.Fprintln(p.out, "TOP TRENDING KEYWORDS")
	fmt.Fprintln(p.out, rule)
	if analysis != nil {
		fmt.Fprintf(p.out, "\nBased on %d job descriptions analyzed\n\n", analysis.TotalJobs)
	}

	for i, kc := range trending {
		bar := strings.Repeat("█", min(kc.Count, trendBarMax))
		fmt.Fprintf(p.out, "%2d. %-30s [%3d] %s\n", i+1, kc.Keyword, kc.Count, bar)
	}
}

// clip shortens s to width with a ".." marker, matching the table column caps.
func clip(s string, width int) string {
	if len(s) > width {
		return s[:width-2] + ".."
	}
	return s
}
