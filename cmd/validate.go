// =============================================================================
// Dealership Inventory - Validate Command
// =============================================================================
//
// Decodes the given files and reports, per record, what an import would
// reject: missing required attributes and factory-level failures. Nothing is
// written and no state survives the run.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/masonday1/dealership-inventory/internal/inventory"
	"github.com/masonday1/dealership-inventory/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check vehicle record files without merging them",
	Long: `The validate command decodes each file and checks every record the way the
merge would: required attributes must be present with the correct types, the
vehicle type must be one of the known variants, and the price must be a
positive integer. Problems are listed per record; the files are not modified
and no inventory is produced.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(inputs []string) error {
	reg := newRegistry()

	totalRecords, totalBad := 0, 0
	for _, path := range inputs {
		records, err := reg.ReadRecords(path)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d record(s)\n", filepath.Base(path), len(records))
		for i, rec := range records {
			if reason := recordProblem(rec); reason != "" {
				totalBad++
				fmt.Printf("  record %d: %s\n", i+1, reason)
			}
		}
		totalRecords += len(records)
	}

	fmt.Printf("\n%d record(s) checked, %d with problems\n", totalRecords, totalBad)
	return nil
}

// recordProblem mirrors the import-side checks without mutating anything:
// missing required attributes first, then the vehicle factory's failure set.
func recordProblem(rec schema.Record) string {
	if missing := rec.MissingRequired(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, attr := range missing {
			names[i] = attr.Name
		}
		return "missing required attributes: " + strings.Join(names, ", ")
	}

	if _, err := inventory.FromRecord(rec); err != nil {
		return err.Error()
	}
	return ""
}
