// Package config loads the application configuration from TOML files.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Zaphoood/rewind/src/history"
	"github.com/Zaphoood/rewind/src/keybind"
)

type Config struct {
	// Maximum number of values kept on the past stack
	MaxStackSize int        `koanf:"max_stack_size"`
	Keys         KeysConfig `koanf:"keys"`
}

// KeysConfig overrides the default undo/redo chords. An empty list keeps the
// default for that action.
type KeysConfig struct {
	Undo []string `koanf:"undo"`
	Redo []string `koanf:"redo"`
}

func Default() *Config {
	return &Config{
		MaxStackSize: history.DEFAULT_MAX_STACK_SIZE,
	}
}

// Load reads configuration files in order of priority (last wins). Missing
// files are skipped; a file that exists but does not parse is an error.
func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "rewind", "config.toml"),
		// ./rewind.toml (pwd, highest priority)
		"rewind.toml",
	}
}

// Bindings returns the default key bindings with the configured chord
// overrides applied.
func (c *Config) Bindings() []keybind.Binding {
	bindings := keybind.DefaultBindings()
	for i, b := range bindings {
		switch b.Action {
		case keybind.ActionUndo:
			if len(c.Keys.Undo) > 0 {
				bindings[i].Keys = c.Keys.Undo
			}
		case keybind.ActionRedo:
			if len(c.Keys.Redo) > 0 {
				bindings[i].Keys = c.Keys.Redo
			}
		}
	}
	return bindings
}
