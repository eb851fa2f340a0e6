package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wh3lua/pkg/tsv"
)

var previewRows int

var previewCmd = &cobra.Command{
	Use:   "preview <file.tsv>",
	Short: "Print the first rows of a tsv export as a table",
	Long: `Render a tsv export on the terminal for a quick look at what RPFM
produced, without converting anything.

Examples:
  wh3lua preview exports/agent_actions.tsv
  wh3lua preview exports/main_units.tsv -n 5`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVarP(&previewRows, "rows", "n", 20,
		"number of rows to show")
}

func runPreview(cmd *cobra.Command, args []string) error {
	tbl, err := tsv.ParseFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Table:   %s\n", tbl.Name)
	fmt.Printf("Version: %d\n", tbl.Version)
	fmt.Printf("Columns: %d\n", len(tbl.Columns))
	fmt.Printf("Rows:    %d\n\n", len(tbl.Rows))

	renderPreview(os.Stdout, tbl, previewRows)
	return nil
}

// renderPreview prints up to limit rows of tbl as a bordered table.
func renderPreview(w io.Writer, tbl *tsv.Table, limit int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(tbl.Columns))
	for i, col := range tbl.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	if limit < 0 {
		limit = 0
	}
	if limit > len(tbl.Rows) {
		limit = len(tbl.Rows)
	}
	for _, rec := range tbl.Rows[:limit] {
		row := make(table.Row, len(rec))
		for i, cell := range rec {
			row[i] = cell
		}
		t.AppendRow(row)
	}
	t.Render()

	if rest := len(tbl.Rows) - limit; rest > 0 {
		fmt.Fprintf(w, "... %d more rows\n", rest)
	}
}
