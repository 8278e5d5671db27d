// internal/config/config.go
//
// Service configuration.
// Responsibilities:
//   - Parse environment variables (after godotenv has loaded .env) into Config.
//   - Apply defaults for every setting.
//   - Validate settings the server cannot run with.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the server.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DictName is the name the configured dictionary is registered under.
	DictName string `env:"DICT_NAME" envDefault:"default"`
	// DictFile is a plain or gzip word list; empty means the embedded list.
	DictFile string `env:"DICT_FILE"`
	// ExtraDicts registers more dictionaries as name:path pairs.
	ExtraDicts map[string]string `env:"DICT_EXTRA" envSeparator:"," envKeyValSeparator:":"`

	MaxWordLength int `env:"MAX_WORD_LENGTH" envDefault:"8"`
	BoardSize     int `env:"BOARD_SIZE" envDefault:"4"`
	MaxBoardSize  int `env:"MAX_BOARD_SIZE" envDefault:"8"`
	// SearchWorkers > 0 solves boards with that many parallel start cells.
	SearchWorkers int `env:"SEARCH_WORKERS" envDefault:"0"`

	// MaxGames bounds the live game sessions kept in memory.
	MaxGames int `env:"MAX_GAMES" envDefault:"10000"`

	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	// CacheDSN is a SQLite path for the solution cache; empty keeps it in memory.
	CacheDSN     string `env:"CACHE_DSN"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.MaxWordLength < 1 {
		return fmt.Errorf("config: MAX_WORD_LENGTH must be positive, got %d", c.MaxWordLength)
	}
	if c.BoardSize < 1 || c.BoardSize > c.MaxBoardSize {
		return fmt.Errorf("config: BOARD_SIZE must be within 1..%d, got %d", c.MaxBoardSize, c.BoardSize)
	}
	if c.SearchWorkers < 0 {
		return fmt.Errorf("config: SEARCH_WORKERS must not be negative, got %d", c.SearchWorkers)
	}
	if c.MaxGames < 0 {
		return fmt.Errorf("config: MAX_GAMES must not be negative, got %d", c.MaxGames)
	}
	if c.DictName == "" {
		return fmt.Errorf("config: DICT_NAME must not be empty")
	}
	return nil
}
