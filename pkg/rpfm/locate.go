package rpfm

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// steamDataDirNames maps game keys to their Steam install directory names.
// Only games with a known directory can have their pack probed; the rest
// need an explicit pack path.
var steamDataDirNames = map[string]string{
	"warhammer_3": "Total War WARHAMMER III",
}

func cliName() string {
	if runtime.GOOS == "windows" {
		return "rpfm_cli.exe"
	}
	return "rpfm_cli"
}

// locateCLI finds the rpfm_cli executable in installDir, or on PATH when no
// directory is configured.
func locateCLI(installDir string) (string, error) {
	if installDir == "" {
		path, err := exec.LookPath(cliName())
		if err != nil {
			return "", fmt.Errorf("%w: not on PATH and no installation directory configured", ErrCLINotFound)
		}
		return path, nil
	}

	path := filepath.Join(installDir, cliName())
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrCLINotFound, path)
	}
	return path, nil
}

// locateSchema verifies the configured schema file, or falls back to the
// game's schema under the RPFM config directory. On Windows that is
// %AppData%\rpfm\config\schemas, elsewhere ~/.config/rpfm/config/schemas.
func locateSchema(override, game string) (string, error) {
	path := override
	if path == "" {
		cfg, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve user config directory: %w", err)
		}
		path = filepath.Join(cfg, "rpfm", "config", "schemas", schemaNames[game])
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
	}
	return path, nil
}

// locatePack verifies the configured pack file, or probes the known Steam
// library roots for the game's data.pack.
func locatePack(override, game string) (string, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", fmt.Errorf("%w: %s", ErrPackNotFound, override)
		}
		return override, nil
	}

	dirName, ok := steamDataDirNames[game]
	if !ok {
		return "", fmt.Errorf("%w: no default location known for %s, configure the pack path", ErrPackNotFound, game)
	}
	for _, root := range steamLibraryRoots() {
		path := filepath.Join(root, "steamapps", "common", dirName, "data", "data.pack")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: data.pack not found in any Steam library", ErrPackNotFound)
}

func steamLibraryRoots() []string {
	if runtime.GOOS == "windows" {
		return []string{
			`C:\Program Files (x86)\Steam`,
			`C:\Program Files\Steam`,
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
	}
}
