// Package config handles TOML-based configuration loading. The config file
// is parsed as data only; every field has a working default so the server
// runs with no file present.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// Config holds all application configuration.
type Config struct {
	// CatalogBaseURL is the base URL of the remote catalog API. The
	// catalog is the only remote collaborator; everything else is local.
	CatalogBaseURL string `toml:"catalog_base_url"`
	ListenAddr     string `toml:"listen_addr"`
	// GenresFile optionally overrides the built-in genre reference list.
	GenresFile string    `toml:"genres_file"`
	Log        LogConfig `toml:"log"`
}

// LogConfig controls the rotating log file. An empty File logs to stdout
// only.
type LogConfig struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		CatalogBaseURL: "https://podcast-api.netlify.app",
		ListenAddr:     ":8080",
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the config file at path and merges it over the defaults. A
// missing file is not an error; defaults are returned.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks config values are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CatalogBaseURL) == "" {
		return fmt.Errorf("catalog_base_url must not be empty")
	}
	if !strings.HasPrefix(c.CatalogBaseURL, "http://") && !strings.HasPrefix(c.CatalogBaseURL, "https://") {
		return fmt.Errorf("catalog_base_url %q must be an http(s) URL", c.CatalogBaseURL)
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	return nil
}
