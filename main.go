// =============================================================================
// Dealership Inventory - Main Entry Point
// =============================================================================
//
// CLI for managing a dealership network's vehicle inventory: merging vehicle
// records from heterogeneous file formats into one company-wide view,
// validating record files, and exporting the merged inventory back out.
//
// USAGE:
//   inventory merge       - Merge record files into one exported inventory
//   inventory validate    - Check record files without producing output
//   inventory version     - Display the application version
//
// =============================================================================

package main

import (
	"github.com/masonday1/dealership-inventory/cmd"
)

func main() {
	cmd.Execute()
}
