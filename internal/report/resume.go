// Package report builds the resume-skills table and the CSV/JSON exports
// derived from stored job listings.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/job-tracker/internal/skills"
	"github.com/jonathan/job-tracker/internal/types"
)

// JobSummary identifies one job inside a date section of the resume table.
type JobSummary struct {
	PositionTitle string   `json:"position_title"`
	Company       string   `json:"company"`
	Industry      []string `json:"industry"`
}

// DateSkills holds one date's merged extraction results and the jobs that
// produced them. It serializes as a flat object: category keys alongside a
// "_jobs" entry, the shape downstream resume tooling reads.
type DateSkills struct {
	Categories map[string][]string
	Jobs       []JobSummary
}

// MarshalJSON flattens categories and the _jobs list into one object.
func (d *DateSkills) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(d.Categories)+1)
	for category, skillList := range d.Categories {
		obj[category] = skillList
	}
	obj["_jobs"] = d.Jobs
	return json.Marshal(obj)
}

// ResumeTable is the full analysis result: per-date skill sections plus a
// cross-date frequency summary.
type ResumeTable struct {
	ResumeData    map[string]*DateSkills `json:"resume_data"`
	Summary       map[string][]string    `json:"summary"`
	TotalJobs     int                    `json:"total_jobs"`
	DatesAnalyzed []string               `json:"dates_analyzed"`
	GeneratedAt   string                 `json:"generated_at"`

	// CategoryOrder is the presentation order of every category that
	// appears anywhere in the table. Not serialized.
	CategoryOrder []string `json:"-"`
}

// summaryLimit caps how many skills the cross-date summary keeps per category.
const summaryLimit = 20

// Builder runs skill extraction over job listings and assembles reports.
type Builder struct {
	extractor *skills.Extractor
}

// NewBuilder returns a Builder using the given extractor.
func NewBuilder(e *skills.Extractor) *Builder {
	return &Builder{extractor: e}
}

// BuildResumeTable groups jobs by sheet date, merges each date's extracted
// skills per category, and computes the cross-date summary. Dates sort
// ascending. Returns an error when there are no jobs to analyze.
func (b *Builder) BuildResumeTable(jobs []types.JobRecord) (*ResumeTable, error) {
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no jobs to analyze; import or add listings first")
	}

	byDate := groupByDate(jobs)
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	resumeData := make(map[string]*DateSkills, len(byDate))
	counts := make(map[string]map[string]int)

	for _, date := range dates {
		merged := make(map[string]map[string]struct{})
		summaries := make([]JobSummary, 0, len(byDate[date]))

		for _, job := range byDate[date] {
			for category, skillList := range b.extractor.Extract(job.Qualifications) {
				if merged[category] == nil {
					merged[category] = make(map[string]struct{})
				}
				if counts[category] == nil {
					counts[category] = make(map[string]int)
				}
				for _, skill := range skillList {
					merged[category][skill] = struct{}{}
					counts[category][skill]++
				}
			}
			summaries = append(summaries, JobSummary{
				PositionTitle: job.PositionTitle,
				Company:       job.Company,
				Industry:      job.CompanyIndustry,
			})
		}

		categories := make(map[string][]string, len(merged))
		for category, set := range merged {
			categories[category] = sortedSet(set)
		}
		resumeData[date] = &DateSkills{Categories: categories, Jobs: summaries}
	}

	summary := make(map[string][]string, len(counts))
	seen := make(map[string][]string, len(counts))
	for category, skillCounts := range counts {
		summary[category] = topSkills(skillCounts, summaryLimit)
		seen[category] = nil
	}

	return &ResumeTable{
		ResumeData:    resumeData,
		Summary:       summary,
		TotalJobs:     len(jobs),
		DatesAnalyzed: dates,
		GeneratedAt:   time.Now().Format(time.RFC3339),
		CategoryOrder: b.extractor.OrderedCategories(seen),
	}, nil
}

// groupByDate buckets jobs by their sheet date column.
func groupByDate(jobs []types.JobRecord) map[string][]types.JobRecord {
	byDate := make(map[string][]types.JobRecord)
	for _, job := range jobs {
		byDate[job.Date] = append(byDate[job.Date], job)
	}
	return byDate
}

// topSkills returns up to limit skill names ordered by how many jobs matched
// them, most frequent first. Ties break alphabetically so output is stable.
func topSkills(skillCounts map[string]int, limit int) []string {
	names := make([]string, 0, len(skillCounts))
	for skill := range skillCounts {
		names = append(names, skill)
	}
	sort.Slice(names, func(i, j int) bool {
		if skillCounts[names[i]] != skillCounts[names[j]] {
			return skillCounts[names[i]] > skillCounts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
