// Package config loads sentencer settings from sentencer.yaml.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = "sentencer.yaml"

// Config holds the settings a run needs. Command-line flags override them.
type Config struct {
	// Bank is the word bank: a JSON document, or a SQLite database by extension.
	Bank string `yaml:"bank"`
	// DB is where import writes the SQLite word bank.
	DB      string `yaml:"db"`
	Workers int    `yaml:"workers"`
	// Seed fixes the random source when set.
	Seed    *uint64 `yaml:"seed,omitempty"`
	Verbose bool    `yaml:"verbose"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Bank:    "words.json",
		DB:      "sentencer.db",
		Workers: runtime.NumCPU(),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Bank == "" {
		cfg.Bank = Default().Bank
	}
	if cfg.DB == "" {
		cfg.DB = Default().DB
	}
	return cfg, nil
}
