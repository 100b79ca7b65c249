// Package config loads the optional ~/.workwise.yaml file: a currency
// override and rate-table adjustments. Everything has a working default,
// so a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"workwise/internal/currency"
)

type Config struct {
	// Currency forces the display currency ("AUTO" or empty detects from
	// the locale). The persisted override, when set, takes precedence.
	Currency string `yaml:"currency"`
	// Rates overrides entries of the canonical rate table.
	Rates map[string]float64 `yaml:"rates"`
	// PayerName/PayerEmail seed the simulated payment approval.
	PayerName  string `yaml:"payer_name"`
	PayerEmail string `yaml:"payer_email"`
}

// DefaultPath returns ~/.workwise.yaml, honoring WORKWISE_CONFIG.
func DefaultPath() (string, error) {
	if p := os.Getenv("WORKWISE_CONFIG"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".workwise.yaml"), nil
}

// Load reads the file at path. A missing file yields the zero config.
func Load(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// RateTable merges the config's overrides over the canonical table.
func (c *Config) RateTable() map[currency.Code]float64 {
	table := make(map[currency.Code]float64, len(currency.DefaultRates))
	for code, rate := range currency.DefaultRates {
		table[code] = rate
	}
	for code, rate := range c.Rates {
		if rate > 0 {
			table[currency.Code(code)] = rate
		}
	}
	return table
}
