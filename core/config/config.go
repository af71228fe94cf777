// Package config loads the optional wp2zola.toml run configuration.
// Everything here can also be set by flag; flags win.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = "wp2zola.toml"

// Config holds run configuration.
type Config struct {
	OutputDir  string `toml:"output_dir"`  // content tree root
	PaginateBy int    `toml:"paginate_by"` // section page size
	BaseURL    string `toml:"base_url"`    // overrides wp:base_site_url
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{PaginateBy: 5}
}

// Load reads the config file at path. A missing file at the default path is
// not an error (the file is optional); a missing file named explicitly is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.PaginateBy <= 0 {
		return cfg, fmt.Errorf("parsing %s: paginate_by must be positive", path)
	}
	return cfg, nil
}
