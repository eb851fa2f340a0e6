// Package rpfm locates an RPFM command-line installation and drives it to
// export database tables from Total War pack files as TSV.
package rpfm

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// DefaultGame is the game targeted when no game key is configured.
const DefaultGame = "warhammer_3"

// schemaNames maps RPFM game keys to the schema file each game uses.
var schemaNames = map[string]string{
	"warhammer_3":    "schema_wh3.ron",
	"warhammer_2":    "schema_wh2.ron",
	"warhammer":      "schema_wh.ron",
	"three_kingdoms": "schema_3k.ron",
	"troy":           "schema_troy.ron",
	"pharaoh":        "schema_ph.ron",
	"rome_2":         "schema_rom2.ron",
	"attila":         "schema_att.ron",
}

// Dependencies are the resolved paths an extraction needs.
type Dependencies struct {
	CLI    string // rpfm_cli executable
	Schema string // RPFM .ron schema for the selected game
	Pack   string // pack file holding the db tables
}

// Options configure an Extractor. Empty fields fall back to the standard
// RPFM and Steam locations for the selected game: the CLI is searched on
// PATH when InstallDir is empty, the schema under the user config dir, and
// the pack in the known Steam library roots.
type Options struct {
	InstallDir string // RPFM installation directory
	Game       string // RPFM game key, e.g. "warhammer_3"
	SchemaPath string // schema file override
	PackPath   string // pack file override
	Logger     *slog.Logger
}

// Extractor runs the RPFM CLI against one game and one pack file.
type Extractor struct {
	deps   Dependencies
	game   string
	logger *slog.Logger
}

// NewExtractor resolves every dependency up front so a misconfigured setup
// fails before anything is extracted.
func NewExtractor(opts Options) (*Extractor, error) {
	game := opts.Game
	if game == "" {
		game = DefaultGame
	}
	if _, ok := schemaNames[game]; !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownGame, game, strings.Join(Games(), ", "))
	}

	cli, err := locateCLI(opts.InstallDir)
	if err != nil {
		return nil, err
	}
	schema, err := locateSchema(opts.SchemaPath, game)
	if err != nil {
		return nil, err
	}
	pack, err := locatePack(opts.PackPath, game)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Extractor{
		deps:   Dependencies{CLI: cli, Schema: schema, Pack: pack},
		game:   game,
		logger: logger,
	}, nil
}

// Dependencies returns the paths the extractor resolved.
func (e *Extractor) Dependencies() Dependencies {
	return e.deps
}

// Games returns the supported game keys in sorted order.
func Games() []string {
	keys := make([]string, 0, len(schemaNames))
	for k := range schemaNames {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeTableName reduces any accepted spelling of a db table name to
// its bare form: "db/agent_actions_tables/data__", "agent_actions_tables"
// and "agent_actions" all normalize to "agent_actions".
func NormalizeTableName(name string) (string, error) {
	n := strings.TrimPrefix(name, "db")
	n = strings.TrimPrefix(n, "/")
	n = strings.TrimSuffix(n, "data__")
	n = strings.TrimSuffix(n, "/")
	n = strings.TrimSuffix(n, "_tables")
	if n == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidTableName, name)
	}
	return n, nil
}
