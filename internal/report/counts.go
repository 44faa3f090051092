package report

import (
	"sort"

	"github.com/jonathan/job-tracker/internal/types"
)

// SkillCount is one row of a skill-frequency export.
type SkillCount struct {
	Category string
	Skill    string
	Count    int
}

// CountSkills tallies how many of the given jobs matched each skill. Rows
// sort by count descending, then skill, then category.
func (b *Builder) CountSkills(jobs []types.JobRecord) []SkillCount {
	counts := make(map[string]map[string]int)
	for _, job := range jobs {
		for category, skillList := range b.extractor.Extract(job.Qualifications) {
			if counts[category] == nil {
				counts[category] = make(map[string]int)
			}
			for _, skill := range skillList {
				counts[category][skill]++
			}
		}
	}

	var rows []SkillCount
	for category, skillCounts := range counts {
		for skill, n := range skillCounts {
			rows = append(rows, SkillCount{Category: category, Skill: skill, Count: n})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		if rows[i].Skill != rows[j].Skill {
			return rows[i].Skill < rows[j].Skill
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}
