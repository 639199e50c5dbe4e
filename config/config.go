package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration: display settings plus where the
// ledger is persisted.
type Config struct {
	Settings Settings    `json:"settings" yaml:"settings"`
	Store    StoreConfig `json:"store" yaml:"store"`
}

// Settings are the trader-facing preferences.
type Settings struct {
	PlatformName string `json:"platform_name" yaml:"platform_name"`
	Currency     string `json:"currency" yaml:"currency"`
	SampleData   bool   `json:"sample_data" yaml:"sample_data"`
}

// Symbol returns the currency prefix used in formatted amounts. USD gets
// "$"; anything else is printed as its code.
func (s Settings) Symbol() string {
	if s.Currency == "USD" {
		return "$"
	}
	return s.Currency
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Type       string `json:"type" yaml:"type"` // "sqlite" or "csv"
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
}

// LoadFromFile loads configuration from a YAML or JSON file, applies any
// environment overrides and validates the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration as YAML (.yaml/.yml extension) or JSON.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// ApplyEnv overlays GLTRADES_* environment variables, loading a .env file
// first if one is present in the working directory.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("GLTRADES_DB"); v != "" {
		c.Store.Type = "sqlite"
		c.Store.DBPath = v
	}
	if v := os.Getenv("GLTRADES_CURRENCY"); v != "" {
		c.Settings.Currency = v
	}
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Settings.Currency == "" {
		return fmt.Errorf("settings.currency is required")
	}
	if c.Store.Type != "sqlite" && c.Store.Type != "csv" {
		return fmt.Errorf("store.type must be 'sqlite' or 'csv'")
	}
	if c.Store.Type == "sqlite" && c.Store.DBPath == "" {
		return fmt.Errorf("store.db_path required for sqlite store")
	}
	if c.Store.Type == "csv" && c.Store.TradesFile == "" {
		return fmt.Errorf("store.trades_file required for csv store")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Settings: Settings{
			PlatformName: "GLTRADES",
			Currency:     "USD",
			SampleData:   true,
		},
		Store: StoreConfig{
			Type:   "sqlite",
			DBPath: "./gltrades.sqlite",
		},
	}
}
