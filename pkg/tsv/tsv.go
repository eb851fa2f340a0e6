// Package tsv parses the tab-separated database-table exports produced by
// the RPFM command-line tool.
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// RPFM writes a marker as the second line of every export, carrying the db
// table name and the table definition version: "#agent_actions_tables;4;".
var markerPattern = regexp.MustCompile(`^#(\w+);(\d+);`)

// maxLineSize bounds a single export line. Localised text columns can get
// long, but a multi-megabyte line means the file is not an RPFM export.
const maxLineSize = 4 * 1024 * 1024

// Table is a single database-table export: the RPFM marker metadata, the
// header row, and the data rows in file order. A Table is never mutated
// after parsing.
type Table struct {
	Name    string     // db table name from the marker line
	Version int        // table definition version from the marker line
	Columns []string   // column names, in header order
	Rows    [][]string // records; each row has exactly len(Columns) cells
}

// Parse reads an RPFM TSV export from r.
//
// The expected layout is a tab-separated header line, the RPFM marker line,
// and one tab-separated record per line after that. Reading stops at the
// first blank line; RPFM never writes blank lines inside the data section.
// A record whose field count differs from the header produces a *RowError.
func Parse(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	header, ok := nextLine(sc)
	if !ok || header == "" {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, ErrMissingHeader
	}
	columns := strings.Split(header, "\t")

	marker, ok := nextLine(sc)
	if !ok || !markerPattern.MatchString(marker) {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read marker: %w", err)
		}
		return nil, ErrMissingMarker
	}
	m := markerPattern.FindStringSubmatch(marker)
	version, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("invalid table version %q: %w", m[2], err)
	}

	t := &Table{Name: m[1], Version: version, Columns: columns}
	for lineNo := 3; ; lineNo++ {
		line, ok := nextLine(sc)
		if !ok || line == "" {
			break
		}
		fields := strings.Split(line, "\t")
		if len(fields) != len(columns) {
			return nil, &RowError{Line: lineNo, Fields: len(fields), Columns: len(columns)}
		}
		t.Rows = append(t.Rows, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	return t, nil
}

// ParseFile reads the RPFM TSV export at path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// Find returns every .tsv file under dir, including subdirectories, in
// lexical order.
func Find(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".tsv") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	return files, nil
}

// nextLine returns the next line with the terminator trimmed, or false once
// the input is exhausted. RPFM exports written on Windows end lines with
// CRLF.
func nextLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSuffix(sc.Text(), "\r"), true
}
