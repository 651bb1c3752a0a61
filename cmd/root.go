// =============================================================================
// Dealership Inventory - Root Command
// =============================================================================
//
// The root command wires the shared pieces every subcommand needs: the
// application config, the structured logger, and the codec registry. Codec
// registration happens once here; subcommands only dispatch through it.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/masonday1/dealership-inventory/internal/codec"
	"github.com/masonday1/dealership-inventory/internal/config"
	"github.com/masonday1/dealership-inventory/internal/jsoncodec"
	"github.com/masonday1/dealership-inventory/internal/logging"
	"github.com/masonday1/dealership-inventory/internal/sheetcodec"
	"github.com/masonday1/dealership-inventory/internal/xmlcodec"
)

// cfgFile is the path to the configuration file, settable via --config.
var cfgFile string

// verbose forces debug-level logging regardless of the configured level.
var verbose bool

// cfg is the loaded application configuration, available to all subcommands.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Dealership inventory - merge and validate vehicle record files",
	Long: `inventory manages a dealership network's vehicle records.

It reads vehicle/dealership records from JSON, XML, CSV, or XLSX files,
merges them into a company-wide inventory under the network's business rules
(acquisition eligibility, rental eligibility, uniqueness, price validity),
and exports the merged inventory back to a writable format. Records that
fail a rule never abort the batch: they come back annotated with the reason
they were rejected.

Example Usage:
  inventory merge --out merged.json north.json south.xml
  inventory merge --out fleet.csv --failed rejects.json *.json
  inventory validate east.xlsx`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logging.Setup(level, cfg.LogFormat)
		return nil
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug output",
	)
}

// newRegistry builds the codec registry with every supported format. The
// XML and XLSX codecs claim no write extensions, so the registry only ever
// dispatches them for reads.
func newRegistry() *codec.Registry {
	reg := codec.NewRegistry()
	reg.Register(jsoncodec.New())
	reg.Register(xmlcodec.New())
	reg.Register(sheetcodec.NewCSV())
	reg.Register(sheetcodec.NewXLSX())
	return reg
}
