// Package config loads the application configuration from the user config
// directory, creating a commented default file on first run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds user settings from config.toml
type Config struct {
	AurHelper string `toml:"aur_helper"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{AurHelper: "yay"}
}

// Dir returns the application config directory
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "upkeep")
}

// Path returns the config file location
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads config.toml, writing a default file if none exists yet.
// Missing keys fall back to defaults.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if errors.Is(err, os.ErrNotExist) {
		return cfg, cfg.Save()
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", Path(), err)
	}
	if cfg.AurHelper == "" {
		cfg.AurHelper = Default().AurHelper
	}
	return cfg, nil
}

// Save writes the config file with explanatory comments
func (c Config) Save() error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	content := fmt.Sprintf(`# Upkeep configuration

# AUR helper to use for updates (default: yay)
# Alternatives: paru, pikaur, etc.
aur_helper = %q
`, c.AurHelper)

	if err := os.WriteFile(Path(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
