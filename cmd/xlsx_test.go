package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRunXLSX(t *testing.T) {
	dir := t.TempDir()
	src := writeTSV(t, dir, "agent_actions.tsv", sampleTSV)
	out := filepath.Join(dir, "db.xlsx")

	xlsxFiles = []string{src}
	xlsxDir = ""
	xlsxOutput = out
	t.Cleanup(func() {
		xlsxFiles = nil
		xlsxOutput = "tables.xlsx"
	})

	require.NoError(t, runXLSX(xlsxCmd, nil))
	require.FileExists(t, out)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"agent_actions_tables"}, f.GetSheetList())
}

func TestRunXLSXRejectsNonTSV(t *testing.T) {
	xlsxFiles = []string{"notes.txt"}
	xlsxDir = ""
	t.Cleanup(func() { xlsxFiles = nil })

	err := runXLSX(xlsxCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a tsv file")
}
