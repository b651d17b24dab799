package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the pipeline without writing output",
	Long: `Run the full pipeline but write nothing: report date parse failures,
unmatched recordings, repaired identifiers, and collections that resolved
to zero shows. Exits non-zero when any issue is found, so it can gate a
real run in automation.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().AddFlagSet(runCmd.Flags())
}

func runValidate(cmd *cobra.Command, _ []string) error {
	result, err := executeRun(cmd)
	if err != nil {
		return err
	}

	report := result.Report
	if result.IsSuccess() {
		cmd.Println("No issues found:", result.Summary())
		return nil
	}

	if len(report.DateParseFailures) > 0 {
		rows := make([][]string, 0, len(report.DateParseFailures))
		for _, f := range report.DateParseFailures {
			rows = append(rows, []string{f.RecordKind, f.RecordID, f.Input, f.Reason})
		}
		cmd.Println(renderTable(
			[]string{"Kind", "Record", "Input", "Reason"},
			rows, nil,
		))
	}

	if len(report.IDRepairs) > 0 {
		rows := make([][]string, 0, len(report.IDRepairs))
		for _, r := range report.IDRepairs {
			rows = append(rows, []string{r.OldID, r.NewID, r.Date.String()})
		}
		cmd.Println(renderTable(
			[]string{"Old ID", "New ID", "Date"},
			rows, nil,
		))
	}

	if len(report.CollectionFailures) > 0 {
		rows := make([][]string, 0, len(report.CollectionFailures))
		for _, f := range report.CollectionFailures {
			suggestion := ""
			if len(f.Suggestions) > 0 {
				suggestion = f.Suggestions[0]
			}
			rows = append(rows, []string{
				f.CollectionID,
				strconv.Itoa(len(f.MissingDates)),
				suggestion,
			})
		}
		cmd.Println(renderTable(
			[]string{"Collection", "Missing dates", "Suggestion"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft},
		))
	}

	if n := len(report.UnmatchedRecordings); n > 0 {
		cmd.Println("Unmatched recordings:", n)
	}

	return errValidationIssues(report.TotalIssues())
}

// errValidationIssues maps the issue count onto a non-zero exit status
// via RunE.
func errValidationIssues(count int) error {
	return fmt.Errorf("validation found %d issues", count)
}
