// Package config loads the crossweave configuration file.
//
// Configuration lives at ~/.config/crossweave/config.toml and covers the
// settings that are awkward as flags: backend addresses, the generation
// model, and default grid preferences. Flags still win over file values;
// commands apply the file first and let explicit flags override.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/pipeline"
)

const appName = "crossweave"

// Config is the on-disk configuration.
type Config struct {
	// Grid holds default puzzle dimensions.
	Grid GridConfig `toml:"grid"`

	// Render holds default render settings.
	Render RenderConfig `toml:"render"`

	// Generate holds word generation settings.
	Generate GenerateConfig `toml:"generate"`

	// Server holds HTTP server settings.
	Server ServerConfig `toml:"server"`
}

type GridConfig struct {
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`
}

type RenderConfig struct {
	Style string `toml:"style"`
}

type GenerateConfig struct {
	// Model is the Gemini model name used for word lists.
	Model string `toml:"model"`
}

type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// RedisAddr enables the shared Redis cache when set.
	RedisAddr string `toml:"redis_addr"`

	// MongoURI enables MongoDB puzzle storage when set. Without it the
	// server keeps puzzles in memory.
	MongoURI string `toml:"mongo_uri"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Grid:   GridConfig{Rows: pipeline.DefaultRows, Cols: pipeline.DefaultCols},
		Render: RenderConfig{Style: pipeline.DefaultStyle},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path. An empty path resolves via [Path].
// A missing file returns the defaults without error; a malformed file is
// an error, not a silent fallback.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := errors.ValidateGridSize(c.Grid.Rows, c.Grid.Cols); err != nil {
		return err
	}
	return pipeline.ValidateStyle(c.Render.Style)
}
