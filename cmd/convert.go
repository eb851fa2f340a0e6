package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wh3lua/pkg/lua"
	"github.com/wh3lua/pkg/tsv"
)

var (
	convertFiles      []string
	convertDir        string
	convertReplace    bool
	convertMapColumns bool
	convertAddReturn  bool
	convertMD5        bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert RPFM tsv exports to Lua table files",
	Long: `Convert tsv exports produced by RPFM into Lua table files.

Sources are given either as individual files (-f, repeatable) or as a
directory (--dir, every .tsv beneath it). Each source becomes
<name>.lua next to it, or in --dest when set. A malformed file is
reported and skipped; the rest of the batch still converts.

Examples:
  # Convert two files in place
  wh3lua convert -f agent_actions.tsv -f main_units.tsv

  # Convert a whole directory into lua_db/, deleting the tsv sources
  wh3lua convert --dir exports --replace

  # Requirable files keyed by column name
  wh3lua convert --dir exports --dest lua_db --map-columns --add-return`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringArrayVarP(&convertFiles, "file", "f", nil,
		"tsv file to convert (can be repeated)")
	convertCmd.Flags().StringVar(&convertDir, "dir", "",
		"convert every .tsv under this directory")
	convertCmd.Flags().String("dest", "",
		"output directory (default: next to each source)")
	convertCmd.Flags().BoolVar(&convertReplace, "replace", false,
		"delete each source file after it converts successfully")
	convertCmd.Flags().BoolVar(&convertMapColumns, "map-columns", false,
		"key record fields by column name instead of position")
	convertCmd.Flags().BoolVar(&convertAddReturn, "add-return", false,
		"prefix each file with a return statement so it can be required")
	convertCmd.Flags().BoolVar(&convertMD5, "md5", false,
		"wrap records in a checksum envelope (changes the output structure)")
	convertCmd.MarkFlagsOneRequired("file", "dir")
	convertCmd.MarkFlagsMutuallyExclusive("file", "dir")
	convertCmd.MarkFlagsMutuallyExclusive("dest", "replace")
}

func runConvert(cmd *cobra.Command, args []string) error {
	files := convertFiles
	if convertDir != "" {
		var err error
		files, err = tsv.Find(convertDir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Printf("No tsv files found under %s\n", convertDir)
			return nil
		}
	} else {
		for _, f := range files {
			if !strings.EqualFold(filepath.Ext(f), ".tsv") {
				return fmt.Errorf("not a tsv file: %s", f)
			}
			if _, err := os.Stat(f); err != nil {
				return fmt.Errorf("file not found: %s", f)
			}
		}
	}

	dest := cfg.Dest
	if convertReplace {
		dest = ""
	}

	opts := lua.Options{
		MapColumns: convertMapColumns,
		AddReturn:  convertAddReturn,
		Checksum:   convertMD5,
	}
	return convertBatch(files, dest, convertReplace, opts)
}

// convertFile converts one tsv export and returns the path it wrote. The
// Lua file lands next to the source, or in destDir when set.
func convertFile(path, destDir string, opts lua.Options) (string, error) {
	table, err := tsv.ParseFile(path)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	if destDir != "" {
		dir = destDir
	}
	base := filepath.Base(path)
	target := filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".lua")

	if err := os.WriteFile(target, []byte(lua.Encode(table, opts)), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	return target, nil
}

// convertBatch converts files one by one. A failing file is reported on
// stderr and skipped. With replace set, each source is deleted once its
// conversion succeeds, so a malformed file is never lost.
func convertBatch(files []string, destDir string, replace bool, opts lua.Options) error {
	if destDir != "" {
		if err := os.MkdirAll(destDir, 0755); err != nil {
			return fmt.Errorf("failed to create destination directory: %w", err)
		}
	}

	var failed int
	for _, file := range files {
		target, err := convertFile(file, destDir, opts)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", file, err)
			continue
		}
		logger.Debug("converted", "source", file, "target", target)
		fmt.Printf("  %s -> %s\n", file, target)

		if replace {
			if err := os.Remove(file); err != nil {
				return fmt.Errorf("failed to remove %s: %w", file, err)
			}
		}
	}

	fmt.Printf("\nConverted %d files, %d errors\n", len(files)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}
