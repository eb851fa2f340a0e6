package tsv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "key\tvalue\tenabled\n" +
	"#agent_actions_tables;4;\n" +
	"alpha\t1\ttrue\n" +
	"beta\t2.50\tfalse\n"

func TestParse(t *testing.T) {
	table, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "agent_actions_tables", table.Name)
	assert.Equal(t, 4, table.Version)
	assert.Equal(t, []string{"key", "value", "enabled"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"alpha", "1", "true"}, table.Rows[0])
	assert.Equal(t, []string{"beta", "2.50", "false"}, table.Rows[1])
}

func TestParseCRLF(t *testing.T) {
	input := strings.ReplaceAll(sample, "\n", "\r\n")

	table, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"key", "value", "enabled"}, table.Columns)
	assert.Equal(t, []string{"beta", "2.50", "false"}, table.Rows[1])
}

func TestParseEmptyCells(t *testing.T) {
	input := "a\tb\tc\n#empty_cells_tables;1;\n\t\t\n"

	table, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"", "", ""}, table.Rows[0])
}

func TestParseStopsAtBlankLine(t *testing.T) {
	input := "a\tb\n#trailing_tables;2;\n1\t2\n\n3\t4\n"

	table, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"1", "2"}, table.Rows[0])
}

func TestParseNoRows(t *testing.T) {
	table, err := Parse(strings.NewReader("a\tb\n#no_rows_tables;7;\n"))
	require.NoError(t, err)

	assert.Equal(t, "no_rows_tables", table.Name)
	assert.Equal(t, 7, table.Version)
	assert.Empty(t, table.Rows)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", ErrMissingHeader},
		{"blank header", "\na\tb\n", ErrMissingHeader},
		{"missing marker", "a\tb\n1\t2\n", ErrMissingMarker},
		{"header only", "a\tb\n", ErrMissingMarker},
		{"malformed marker", "a\tb\n#broken;x;\n", ErrMissingMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRowError(t *testing.T) {
	input := "a\tb\tc\n#ragged_tables;3;\n1\t2\t3\n4\t5\n"

	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 4, rowErr.Line)
	assert.Equal(t, 2, rowErr.Fields)
	assert.Equal(t, 3, rowErr.Columns)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agent_actions.tsv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	table, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "agent_actions_tables", table.Name)
	assert.Len(t, table.Rows, 2)

	_, err = ParseFile(filepath.Join(dir, "missing.tsv"))
	assert.Error(t, err)
}

func TestParseFileNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.tsv")
	require.NoError(t, os.WriteFile(path, []byte("a\tb\n1\t2\n"), 0644))

	_, err := ParseFile(path)
	require.ErrorIs(t, err, ErrMissingMarker)
	assert.Contains(t, err.Error(), "broken.tsv")
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))

	for _, name := range []string{"b.tsv", "a.tsv", "notes.txt", filepath.Join("nested", "c.TSV")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	files, err := Find(dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.tsv"),
		filepath.Join(dir, "b.tsv"),
		filepath.Join(sub, "c.TSV"),
	}
	assert.Equal(t, want, files)
}

func TestFindMissingDir(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
