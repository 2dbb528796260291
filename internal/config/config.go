package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for settings when --config is not given.
const DefaultPath = "stockroom.yaml"

// Config holds the runtime settings. Precedence: built-in defaults, then the
// YAML file, then environment variables.
type Config struct {
	SnapshotPath      string `yaml:"snapshot_path" env:"STOCKROOM_SNAPSHOT"`
	JournalPath       string `yaml:"journal_path" env:"STOCKROOM_JOURNAL"`
	LowStockThreshold int    `yaml:"low_stock_threshold" env:"STOCKROOM_LOW_THRESHOLD"`
	Log               Log    `yaml:"log"`
}

// Log holds the logger settings; the closed value sets are enforced by the
// logging package when the logger is built.
type Log struct {
	Level  string `yaml:"level" env:"STOCKROOM_LOG_LEVEL"`
	Format string `yaml:"format" env:"STOCKROOM_LOG_FORMAT"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SnapshotPath:      "inventory.txt",
		JournalPath:       "operations.log",
		LowStockThreshold: 5,
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path if it exists, then applies environment overrides. A
// missing file is not an error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the store cannot run with.
func (c Config) Validate() error {
	if c.SnapshotPath == "" {
		return errors.New("snapshot_path must not be empty")
	}
	if c.JournalPath == "" {
		return errors.New("journal_path must not be empty")
	}
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("low_stock_threshold must not be negative, got %d", c.LowStockThreshold)
	}
	return nil
}
