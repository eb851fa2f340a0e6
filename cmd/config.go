package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/wh3lua/pkg/rpfm"
)

// Config is the resolved tool configuration.
type Config struct {
	RPFMDir    string `koanf:"rpfm_dir"`    // RPFM installation directory
	PackPath   string `koanf:"pack_path"`   // pack file to extract from
	SchemaPath string `koanf:"schema_path"` // RPFM schema file
	Dest       string `koanf:"dest"`        // output directory
	Game       string `koanf:"game"`        // RPFM game key
	Verbose    bool   `koanf:"verbose"`
}

// destDir is the destination for extraction and export output, defaulting
// to the working directory.
func (c *Config) destDir() string {
	if c.Dest == "" {
		return "."
	}
	return c.Dest
}

// findConfigFile picks the config file to use.
// Priority: explicit path > wh3lua.yaml > wh3lua.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"wh3lua.yaml", "wh3lua.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func loadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"game":    rpfm.DefaultGame,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// WH3LUA_RPFM_DIR -> rpfm_dir
	if err := k.Load(env.Provider("WH3LUA_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "WH3LUA_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set.
			if !f.Changed {
				return "", nil
			}
			// The CLI keeps flag names short; bridge them to their config keys.
			key := strings.ReplaceAll(f.Name, "-", "_")
			switch key {
			case "rpfm":
				key = "rpfm_dir"
			case "pack":
				key = "pack_path"
			case "schema":
				key = "schema_path"
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &c, nil
}
