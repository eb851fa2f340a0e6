package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wh3lua/pkg/lua"
	"github.com/wh3lua/pkg/rpfm"
)

var (
	exportTables     []string
	exportMapColumns bool
	exportAddReturn  bool
	exportMD5        bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Extract db tables and convert them to Lua in one run",
	Long: `Run the full pipeline: export the requested tables from the game pack
with the RPFM CLI, then convert each tsv export into a <table>.lua file in
the destination directory.

The intermediate tsv files live in a temporary directory and are removed
when the run finishes.

Examples:
  # Two tables, keyed by column position
  wh3lua export -t agent_actions -t main_units -r /opt/rpfm -d lua_db

  # Requirable files keyed by column name
  wh3lua export -t agent_actions -r /opt/rpfm -d lua_db --map-columns --add-return`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringArrayVarP(&exportTables, "table", "t", nil,
		"table to export (can be repeated)")
	exportCmd.Flags().StringP("rpfm", "r", "",
		"RPFM installation directory (default: rpfm_cli on PATH)")
	exportCmd.Flags().StringP("dest", "d", "",
		"destination directory for .lua files (default: current directory)")
	exportCmd.Flags().String("pack", "",
		"pack file to extract from (default: probe Steam libraries)")
	exportCmd.Flags().String("schema", "",
		"RPFM schema file (default: the game schema in the RPFM config directory)")
	exportCmd.Flags().String("game", "",
		"RPFM game key (default: "+rpfm.DefaultGame+")")
	exportCmd.Flags().BoolVar(&exportMapColumns, "map-columns", false,
		"key record fields by column name instead of position")
	exportCmd.Flags().BoolVar(&exportAddReturn, "add-return", false,
		"prefix each file with a return statement so it can be required")
	exportCmd.Flags().BoolVar(&exportMD5, "md5", false,
		"wrap records in a checksum envelope (changes the output structure)")
	exportCmd.MarkFlagRequired("table")
}

func runExport(cmd *cobra.Command, args []string) error {
	ex, err := newExtractor()
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "wh3lua-export-")
	if err != nil {
		return fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	fmt.Printf("Extracting %d tables...\n", len(exportTables))
	files, err := ex.Extract(cmd.Context(), exportTables, tmpDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("RPFM produced no tsv exports")
		return nil
	}

	opts := lua.Options{
		MapColumns: exportMapColumns,
		AddReturn:  exportAddReturn,
		Checksum:   exportMD5,
	}
	return convertBatch(files, cfg.destDir(), false, opts)
}
