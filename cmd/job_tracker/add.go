package main

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tracker/internal/observability"
	"github.com/jonathan/job-tracker/internal/store"
	"github.com/jonathan/job-tracker/internal/types"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single job record from flags",
	Long:  "Add one job record to the store without going through a sheet. The record is validated before it is saved.",
	RunE:  runAdd,
}

var (
	addTitle     string
	addDate      string
	addWorkModel string
	addLocation  string
	addCompany   string
	addSalary    string
	addSize      string
	addIndustry  string
	addQuals     string
	addH1B       string
	addNewGrad   bool
	addApplyURL  string
	addNotes     string
)

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Position title (required)")
	addCmd.Flags().StringVar(&addDate, "date", "", "Sheet date in YYYY-MM-DD form (default today)")
	addCmd.Flags().StringVar(&addWorkModel, "work-model", "", "Work model, e.g. Remote, Hybrid, Onsite")
	addCmd.Flags().StringVar(&addLocation, "location", "", "Job location")
	addCmd.Flags().StringVar(&addCompany, "company", "", "Company name")
	addCmd.Flags().StringVar(&addSalary, "salary", "", "Salary range")
	addCmd.Flags().StringVar(&addSize, "company-size", "", "Company size")
	addCmd.Flags().StringVar(&addIndustry, "industry", "", "Comma-separated industry list")
	addCmd.Flags().StringVar(&addQuals, "qualifications", "", "Qualifications text")
	addCmd.Flags().StringVar(&addH1B, "h1b", "", "H1B sponsorship: yes, no, or not sure")
	addCmd.Flags().BoolVar(&addNewGrad, "new-grad", false, "Mark the posting as new-grad friendly")
	addCmd.Flags().StringVar(&addApplyURL, "apply-url", "", "Application URL")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Free-form notes")

	addCmd.MarkFlagRequired("title") //nolint:errcheck

	rootCmd.AddCommand(addCmd)
}

// newRecord builds a JobRecord from the add flags, applying the same
// defaults the sheet assembler applies.
func newRecord() *types.JobRecord {
	date := addDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	h1b := strings.ToLower(strings.TrimSpace(addH1B))
	if h1b == "" {
		h1b = "not sure"
	}

	return &types.JobRecord{
		PositionTitle:   addTitle,
		Date:            date,
		WorkModel:       addWorkModel,
		Location:        addLocation,
		Company:         addCompany,
		Salary:          addSalary,
		CompanySize:     addSize,
		CompanyIndustry: splitIndustryFlag(addIndustry),
		Qualifications:  addQuals,
		H1BSponsored:    h1b,
		IsNewGrad:       addNewGrad,
		ApplyURL:        addApplyURL,
		Notes:           addNotes,
	}
}

// splitIndustryFlag mirrors the sheet parser's comma-split rule for the
// --industry flag: trimmed, non-empty entries, with ["Unknown"] for an
// empty value.
func splitIndustryFlag(raw string) []string {
	var industries []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			industries = append(industries, trimmed)
		}
	}
	if len(industries) == 0 {
		return []string{"Unknown"}
	}
	return industries
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(os.Stdout)

	record := newRecord()
	if err := record.Validate(); err != nil {
		return err
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	st.Append(*record)
	if err := st.Save(); err != nil {
		return err
	}

	printer.Printf("Added: %s at %s\n", record.PositionTitle, record.Company)
	printer.Printf("Total jobs in store: %d\n", st.Len())

	return nil
}
