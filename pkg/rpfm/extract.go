package rpfm

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Extract exports the named tables from the pack into dest as TSV files,
// creating dest if it does not exist. Table names may be given in any
// accepted spelling. The returned paths are sorted.
//
// The RPFM CLI inherits stdout and stderr, so its own progress output stays
// visible. Cancelling ctx kills the CLI.
func (e *Extractor) Extract(ctx context.Context, tables []string, dest string) ([]string, error) {
	if len(tables) == 0 {
		return nil, ErrNoTables
	}

	normalized := make([]string, len(tables))
	for i, t := range tables {
		n, err := NormalizeTableName(t)
		if err != nil {
			return nil, err
		}
		normalized[i] = n
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "wh3lua-extract-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	args := e.commandArgs(normalized, tmpDir)
	e.logger.Debug("running rpfm_cli", "path", e.deps.CLI, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, e.deps.CLI, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rpfm_cli failed: %w", err)
	}

	return collectExports(tmpDir, dest)
}

// commandArgs builds the CLI invocation. Each table becomes one --file-path
// argument of the form db/<name>_tables/data__;<outDir>, the syntax RPFM
// uses to pair a pack-internal path with an extraction directory.
func (e *Extractor) commandArgs(tables []string, outDir string) []string {
	args := []string{
		"--game", e.game,
		"pack", "extract",
		"--pack-path", e.deps.Pack,
		"--tables-as-tsv", e.deps.Schema,
	}
	for _, t := range tables {
		args = append(args, "--file-path", fmt.Sprintf("db/%s_tables/data__;%s", t, outDir))
	}
	return args
}

// collectExports moves every tsv under srcDir into dest. RPFM mirrors the
// pack layout when extracting, so each export lands in a db/<name>_tables/
// directory; the moved file is renamed after that directory minus the
// _tables suffix.
func collectExports(srcDir, dest string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".tsv") {
			return nil
		}

		name := strings.TrimSuffix(filepath.Base(filepath.Dir(path)), "_tables") + ".tsv"
		target := filepath.Join(dest, name)
		if err := moveFile(path, target); err != nil {
			return err
		}
		files = append(files, target)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect exports: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// moveFile renames src to dst, copying when the rename fails. The temporary
// extraction directory may sit on a different filesystem than dst.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to move %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to move %s: %w", src, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to move %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to move %s: %w", src, err)
	}
	return os.Remove(src)
}
