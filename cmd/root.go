package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgFile string

	cfg    *Config
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "wh3lua",
	Short: "Export Total War WARHAMMER III db tables and convert them to Lua",
	Long: `wh3lua drives the RPFM CLI to export database tables from Total War:
WARHAMMER III pack files and converts the tsv exports into Lua table
constructors usable from the game's scripting environment.

Typical flow:
  # Extract two tables and convert them in one go
  wh3lua export -t agent_actions -t main_units -r /opt/rpfm -d lua_db

  # Or stage by stage
  wh3lua extract -t agent_actions -r /opt/rpfm -d exports
  wh3lua convert --dir exports --dest lua_db`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// setup runs before every subcommand: it pulls in a .env file when one is
// present, resolves the layered configuration, and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
		return nil
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}

	var err error
	cfg, err = loadConfig(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: wh3lua.yaml in the current directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"enable debug logging")
}
