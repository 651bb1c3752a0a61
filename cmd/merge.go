// =============================================================================
// Dealership Inventory - Merge Command
// =============================================================================
//
// Reads every input file through the codec registry, merges the records into
// one in-memory company, and exports the result:
//
//   1. Decode each input (structural problems abort the whole run)
//   2. Company.ImportRecords merges the batch; per-record failures come back
//      annotated instead of raised
//   3. The merged inventory is written to --out, whose extension selects the
//      write codec
//   4. Rejected records, if any, are written to the --failed file with their
//      error_reason attribute populated
//   5. With --archive, successfully merged inputs move to the archive dir
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/masonday1/dealership-inventory/internal/inventory"
	"github.com/masonday1/dealership-inventory/internal/logging"
	"github.com/masonday1/dealership-inventory/internal/schema"
	"github.com/masonday1/dealership-inventory/pkg/utils"
)

var (
	// outFile is the merged-inventory destination. Empty means a generated
	// JSON name in the configured output directory.
	outFile string

	// failedFile receives the annotated bad records. Empty means a generated
	// name, written only when there are failures.
	failedFile string

	// dryRun skips every filesystem write.
	dryRun bool

	// archiveInputs moves merged input files to the archive directory.
	archiveInputs bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge [files...]",
	Short: "Merge vehicle record files into one exported inventory",
	Long: `The merge command reads vehicle records from the given files (JSON, XML,
CSV, or XLSX), merges them into a single company-wide inventory, and writes
the merged inventory to the output file.

Records that violate a business rule (unknown vehicle type, non-positive
price, duplicate vehicle id, dealership not accepting vehicles, ...) do not
abort the run. They are collected, annotated with the rejection reason, and
written to the failed-records file, so a batch always yields both the merged
result and an exact account of what was left out and why.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge(args)
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&outFile, "out", "", "Merged inventory output file (extension selects the format)")
	mergeCmd.Flags().StringVar(&failedFile, "failed", "", "File receiving rejected records with their reasons")
	mergeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Merge and report without writing any files")
	mergeCmd.Flags().BoolVar(&archiveInputs, "archive", false, "Move merged input files to the archive directory")
}

func runMerge(inputs []string) error {
	start := time.Now()
	batchID := uuid.NewString()
	log := logging.WithFields("batch_id", batchID)

	fm := utils.NewFileManager(cfg.OutputDir, cfg.ArchiveDir)
	if !dryRun {
		if err := fm.EnsureDirectories(); err != nil {
			return err
		}
	}

	reg := newRegistry()

	// Decode every input before touching the company, so a structural error
	// in any file aborts with nothing merged.
	var records []schema.Record
	for _, path := range inputs {
		fileRecords, err := reg.ReadRecords(path)
		if err != nil {
			return err
		}
		log.Debug("decoded input", "file", path, "records", len(fileRecords))
		records = append(records, fileRecords...)
	}

	company := inventory.NewCompany()
	bad := company.ImportRecords(records)
	merged := len(records) - len(bad)

	log.Info("batch merged",
		"inputs", len(inputs),
		"records", len(records),
		"merged", merged,
		"rejected", len(bad),
		"dealerships", len(company.DealershipIDs()),
	)

	outPath := fm.OutputPath(outputName(outFile, ".json"))
	if !dryRun {
		if exported := company.Records(); exported != nil {
			if err := reg.WriteRecords(outPath, exported); err != nil {
				return err
			}
		} else {
			log.Warn("company owns no vehicles, skipping export")
			outPath = ""
		}
	}

	failedPath := ""
	if len(bad) > 0 {
		failedPath = fm.OutputPath(outputName(failedFile, "_failed.json"))
		if !dryRun {
			if err := reg.WriteRecords(failedPath, bad); err != nil {
				return err
			}
		}
	}

	if !dryRun && archiveInputs {
		for _, path := range inputs {
			if err := fm.Archive(path); err != nil {
				return err
			}
		}
	}

	printMergeSummary(inputs, records, bad, company, outPath, failedPath, time.Since(start))
	return nil
}

// outputName resolves a user-supplied name, or generates one from the
// configured format plus the given suffix.
func outputName(name, suffix string) string {
	if name != "" {
		return name
	}
	generated := cfg.OutputNameFormat
	generated = strings.ReplaceAll(generated, "{uuid}", uuid.NewString())
	generated = strings.ReplaceAll(generated, "{timestamp}", time.Now().Format("20060102_150405"))
	return generated + suffix
}

func printMergeSummary(inputs []string, records, bad []schema.Record, company *inventory.Company, outPath, failedPath string, elapsed time.Duration) {
	fmt.Println("=== Merge Complete ===")
	fmt.Printf("Input files:     %d\n", len(inputs))
	fmt.Printf("Records read:    %d\n", len(records))
	fmt.Printf("Merged:          %d\n", len(records)-len(bad))
	fmt.Printf("Rejected:        %d\n", len(bad))
	fmt.Printf("Dealerships:     %d\n", len(company.DealershipIDs()))
	fmt.Printf("Vehicles:        %d\n", company.VehicleCount())
	fmt.Printf("Time elapsed:    %s\n", elapsed)
	if outPath != "" {
		fmt.Printf("Output:          %s\n", outPath)
	}
	if failedPath != "" {
		fmt.Printf("Failed records:  %s\n", failedPath)
	}

	for _, rec := range bad {
		id, _ := rec.GetString(schema.VehicleID)
		fmt.Printf("  ✗ vehicle %q: %s\n", id, rec.ErrorReason())
	}
}
