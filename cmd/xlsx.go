package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wh3lua/pkg/tsv"
	"github.com/wh3lua/pkg/xlsx"
)

var (
	xlsxFiles  []string
	xlsxDir    string
	xlsxOutput string
)

var xlsxCmd = &cobra.Command{
	Use:   "xlsx",
	Short: "Bundle tsv exports into an Excel workbook",
	Long: `Collect tsv exports into a single workbook with one sheet per table,
for reviewing and filtering db data in a spreadsheet.

Examples:
  wh3lua xlsx --dir exports -o wh3_db.xlsx
  wh3lua xlsx -f agent_actions.tsv -f main_units.tsv`,
	RunE: runXLSX,
}

func init() {
	rootCmd.AddCommand(xlsxCmd)

	xlsxCmd.Flags().StringArrayVarP(&xlsxFiles, "file", "f", nil,
		"tsv file to include (can be repeated)")
	xlsxCmd.Flags().StringVar(&xlsxDir, "dir", "",
		"include every .tsv under this directory")
	xlsxCmd.Flags().StringVarP(&xlsxOutput, "output", "o", "tables.xlsx",
		"workbook path to write")
	xlsxCmd.MarkFlagsOneRequired("file", "dir")
	xlsxCmd.MarkFlagsMutuallyExclusive("file", "dir")
}

func runXLSX(cmd *cobra.Command, args []string) error {
	files := xlsxFiles
	if xlsxDir != "" {
		var err error
		files, err = tsv.Find(xlsxDir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Printf("No tsv files found under %s\n", xlsxDir)
			return nil
		}
	} else {
		for _, f := range files {
			if !strings.EqualFold(filepath.Ext(f), ".tsv") {
				return fmt.Errorf("not a tsv file: %s", f)
			}
		}
	}

	var tables []*tsv.Table
	var failed int
	for _, f := range files {
		t, err := tsv.ParseFile(f)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", f, err)
			continue
		}
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		return fmt.Errorf("no tables could be parsed")
	}

	if err := xlsx.Write(xlsxOutput, tables); err != nil {
		return err
	}

	fmt.Printf("Wrote %d sheets to %s\n", len(tables), xlsxOutput)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}
