// Package config loads the bracketforge configuration file and its
// environment overrides.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds bracketforge configuration.
type Config struct {
	DataDir  string `toml:"data_dir"` // where the bracket database lives
	Autosave bool   `toml:"autosave"` // persist after every mutation
	Theme    Theme  `toml:"theme"`
}

// Theme controls the editor's accent colors.
type Theme struct {
	Accent string `toml:"accent"`
}

// Default returns the default configuration. The data dir follows XDG
// conventions.
func Default() *Config {
	return &Config{
		DataDir:  filepath.Join(configDir(), "data"),
		Autosave: true,
		Theme:    Theme{Accent: "#00d4a0"},
	}
}

func configDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "bracketforge")
}

// ConfigPath returns the location of the config file.
func ConfigPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// Load reads the config file, falling back to defaults when it is
// missing or unreadable. The BRACKETFORGE_DATA_DIR environment variable
// overrides the configured data dir.
func Load() *Config {
	cfg := Default()
	if data, err := os.ReadFile(ConfigPath()); err == nil {
		_ = toml.Unmarshal(data, cfg)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = Default().DataDir
	}
	if dir := os.Getenv("BRACKETFORGE_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	return cfg
}

// Save writes the config file, creating its directory first.
func Save(cfg *Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
