// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultCombo = "ctrl+alt+p"
	DefaultSort  = "title"
)

// Config represents the pinwin configuration.
type Config struct {
	Hotkey HotkeyConfig `toml:"hotkey"`
	List   ListConfig   `toml:"list"`
	Notify NotifyConfig `toml:"notify"`
}

// HotkeyConfig holds the global shortcut settings.
type HotkeyConfig struct {
	Combo string `toml:"combo"` // e.g. "ctrl+alt+p"
}

// ListConfig holds window list display settings.
type ListConfig struct {
	Sort string `toml:"sort"` // "title" or "os"
}

// NotifyConfig holds notification settings.
type NotifyConfig struct {
	Balloon bool `toml:"balloon"` // show a balloon after each toggle
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Hotkey: HotkeyConfig{Combo: DefaultCombo},
		List:   ListConfig{Sort: DefaultSort},
		Notify: NotifyConfig{Balloon: true},
	}
}

// DefaultPath returns the default config file location
// (%APPDATA%\pinwin\config.toml on Windows).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pinwin", "config.toml")
}

// Load reads the config file at path. A missing file yields defaults;
// a malformed one is an error. The hotkey combo is validated so a bad
// config surfaces at load time rather than at registration.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if _, err := ParseCombo(cfg.Hotkey.Combo); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
