// Package config loads tool configuration. Layers, each overriding the one
// before: built-in defaults, a syntree.yaml file, SYNTREE_ environment
// variables, explicit command-line flags.
package config

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
)

const (
	DefaultFormat    = "table"
	DefaultColor     = "auto"
	DefaultIndexPath = "syntree.db"
)

// Config is the loaded tool configuration.
type Config struct {
	Format    string          `koanf:"format"`     // table, tree or yaml
	Color     string          `koanf:"color"`      // auto, always or never
	IndexPath string          `koanf:"index_path"` // xref store location
	Verbose   bool            `koanf:"verbose"`
	Dialect   map[string]bool `koanf:"dialect"` // producer feature toggles

	// FileUsed is the config file the load actually read, empty when none
	// was found.
	FileUsed string `koanf:"-"`
}

// resolveConfigFile picks the config file: an explicit path wins, otherwise
// the first of syntree.yaml, syntree.yml in the working directory.
func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("syntree.yaml"); err == nil {
		return "syntree.yaml"
	}
	if _, err := os.Stat("syntree.yml"); err == nil {
		return "syntree.yml"
	}
	return ""
}

// Load builds the configuration. cfgFile forces a specific file; flags may
// be nil. Precedence (highest to lowest): flags > env vars > config file >
// defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format":     DefaultFormat,
		"color":      DefaultColor,
		"index_path": DefaultIndexPath,
		"verbose":    false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	fileUsed := resolveConfigFile(cfgFile)
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}
	}

	// SYNTREE_INDEX_PATH -> index_path
	if err := k.Load(env.Provider("SYNTREE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SYNTREE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			// The CLI spells the store flag --index; the config key says
			// what the path is for.
			if key == "index" {
				return "index_path", posflag.FlagVal(flags, f)
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("apply flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.FileUsed = fileUsed

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case "table", "tree", "yaml":
	default:
		return fmt.Errorf("unknown format %q (want table, tree or yaml)", c.Format)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}

// ColorOverride maps the color mode to a printer override: forced on,
// forced off, or nil for terminal detection.
func (c *Config) ColorOverride() *bool {
	switch c.Color {
	case "always":
		on := true
		return &on
	case "never":
		off := false
		return &off
	}
	return nil
}
