// Package config holds the settings of the solve service.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config is the service configuration. Values are taken from Default, then
// from an optional TOML file, then from the environment.
type Config struct {
	Addr         string `toml:"addr"`
	DBPath       string `toml:"db_path"`
	APIKey       string `toml:"api_key"`
	Workers      int    `toml:"workers"`
	MaxGridCells int    `toml:"max_grid_cells"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:         ":8080",
		DBPath:       "./puzzles.db",
		APIKey:       "secret-api-key",
		Workers:      0,
		MaxGridCells: 250000,
	}
}

// Load builds the configuration. A path of "" or a file that does not exist
// leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		c.DBPath = dbPath
	}
	if key := os.Getenv("API_KEY"); key != "" {
		c.APIKey = key
	}
	if workers := os.Getenv("SOLVER_WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("invalid SOLVER_WORKERS %q: %w", workers, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.MaxGridCells <= 0 {
		return fmt.Errorf("max_grid_cells must be positive, got %d", c.MaxGridCells)
	}
	return nil
}
