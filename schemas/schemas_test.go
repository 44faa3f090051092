package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/job-tracker/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"job_listings.schema.json",
	"resume_skills.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareDraft07(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			_, hasType := schemaObj["type"]
			assert.True(t, hasType, "schema should declare a root type")
		})
	}
}

func TestJobListingsSchema_AcceptsStoredShape(t *testing.T) {
	schemaData, err := os.ReadFile("job_listings.schema.json")
	require.NoError(t, err)

	stored := `[
		{
			"position_title": "Quantitative Researcher",
			"date": "2026-02-03",
			"work_model": "Hybrid",
			"location": "New York, NY",
			"company": "Two Sigma",
			"salary": "$180,000 - $250,000",
			"company_size": "1,001-5,000",
			"company_industry": ["Financial Services", "Technology"],
			"qualifications": "1. PhD in CS\n2. Python",
			"h1b_sponsored": "yes",
			"is_new_grad": false,
			"apply_url": "https://careers.twosigma.com/1"
		}
	]`

	assert.NoError(t, schemas.ValidateJSONString(string(schemaData), stored))
}

func TestJobListingsSchema_RejectsUnknownColumns(t *testing.T) {
	schemaData, err := os.ReadFile("job_listings.schema.json")
	require.NoError(t, err)

	stored := `[
		{
			"position_title": "ML Engineer",
			"date": "2026-02-03",
			"work_model": "Remote",
			"location": "NYC",
			"company": "Acme",
			"salary": "",
			"company_size": "",
			"company_industry": ["Unknown"],
			"qualifications": "",
			"h1b_sponsored": "not sure",
			"is_new_grad": false,
			"recruiter_phone": "555-0100"
		}
	]`

	err = schemas.ValidateJSONString(string(schemaData), stored)
	require.Error(t, err)
}

func TestResumeSkillsSchema_AcceptsBuilderOutput(t *testing.T) {
	schemaData, err := os.ReadFile("resume_skills.schema.json")
	require.NoError(t, err)

	table := `{
		"resume_data": {
			"2026-02-03": {
				"programming_languages": ["python"],
				"_jobs": [
					{"position_title": "ML Engineer", "company": "Acme", "industry": ["Technology"]}
				]
			}
		},
		"summary": {"programming_languages": ["python"]},
		"total_jobs": 1,
		"dates_analyzed": ["2026-02-03"],
		"generated_at": "2026-02-03T18:04:05Z"
	}`

	assert.NoError(t, schemas.ValidateJSONString(string(schemaData), table))
}
