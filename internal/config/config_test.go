package config

import (
	"os"
	"path/filepath"
	"testing"

	"workwise/internal/currency"
)

func TestLoadMissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg.Currency != "" || len(cfg.Rates) != 0 {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestRateTableMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workwise.yaml")
	body := "currency: INR\nrates:\n  INR: 82.5\n  XYZ: 2\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Currency != "INR" {
		t.Fatalf("currency=%q, want INR", cfg.Currency)
	}

	table := cfg.RateTable()
	if table[currency.INR] != 82.5 {
		t.Fatalf("INR rate=%v, want 82.5", table[currency.INR])
	}
	if table[currency.Code("XYZ")] != 2 {
		t.Fatalf("XYZ rate=%v, want 2", table[currency.Code("XYZ")])
	}
	if table[currency.JPY] != currency.DefaultRates[currency.JPY] {
		t.Fatalf("JPY rate=%v, want canonical %v", table[currency.JPY], currency.DefaultRates[currency.JPY])
	}

	if _, err := Load(writeBad(t)); err == nil {
		t.Fatalf("expected error on malformed yaml")
	}
}

func writeBad(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatalf("write bad config: %v", err)
	}
	return path
}
