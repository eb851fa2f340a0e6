package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wh3lua/pkg/rpfm"
)

var extractTables []string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract db tables from the game pack as tsv",
	Long: `Extract database tables from the game pack file using the RPFM CLI.

Each requested table is exported as <table>.tsv into the destination
directory, which is created when missing. Table names are accepted in any
spelling RPFM understands:

  agent_actions
  agent_actions_tables
  db/agent_actions_tables/data__

Examples:
  # Extract two tables into ./exports
  wh3lua extract -t agent_actions -t main_units -r /opt/rpfm -d exports

  # Rely on rpfm_cli being on PATH and the pack in a Steam library
  wh3lua extract -t agent_actions`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringArrayVarP(&extractTables, "table", "t", nil,
		"table to extract (can be repeated)")
	extractCmd.Flags().StringP("rpfm", "r", "",
		"RPFM installation directory (default: rpfm_cli on PATH)")
	extractCmd.Flags().StringP("dest", "d", "",
		"destination directory for tsv exports (default: current directory)")
	extractCmd.Flags().String("pack", "",
		"pack file to extract from (default: probe Steam libraries)")
	extractCmd.Flags().String("schema", "",
		"RPFM schema file (default: the game schema in the RPFM config directory)")
	extractCmd.Flags().String("game", "",
		"RPFM game key (default: "+rpfm.DefaultGame+")")
	extractCmd.MarkFlagRequired("table")
}

// newExtractor builds the extractor from the resolved configuration and
// reports what it found.
func newExtractor() (*rpfm.Extractor, error) {
	ex, err := rpfm.NewExtractor(rpfm.Options{
		InstallDir: cfg.RPFMDir,
		Game:       cfg.Game,
		SchemaPath: cfg.SchemaPath,
		PackPath:   cfg.PackPath,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	deps := ex.Dependencies()
	logger.Debug("resolved rpfm dependencies",
		"cli", deps.CLI, "schema", deps.Schema, "pack", deps.Pack)
	return ex, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	ex, err := newExtractor()
	if err != nil {
		return err
	}

	fmt.Printf("Extracting %d tables...\n", len(extractTables))
	files, err := ex.Extract(cmd.Context(), extractTables, cfg.destDir())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("RPFM produced no tsv exports")
		return nil
	}

	fmt.Printf("Extracted %d files:\n", len(files))
	for _, f := range files {
		fmt.Printf("  %s\n", f)
	}
	return nil
}
