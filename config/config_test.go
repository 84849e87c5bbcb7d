package config

import (
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TAX_RATE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("LANG_DEFAULT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Order.TaxRate.String() != "0.08" {
		t.Errorf("TaxRate = %s, want 0.08", cfg.Order.TaxRate)
	}
	if cfg.App.LogLevel != zapcore.InfoLevel {
		t.Errorf("LogLevel = %v, want info", cfg.App.LogLevel)
	}
	if cfg.App.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.App.SessionTTL)
	}
	if cfg.App.Lang != "en" {
		t.Errorf("Lang = %q, want en", cfg.App.Lang)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"TAX_RATE", "eight"},
		{"TAX_RATE", "-0.1"},
		{"LOG_LEVEL", "loud"},
		{"SESSION_TTL", "soon"},
		{"SESSION_TTL", "-5m"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load with %s=%q: expected error", tt.key, tt.value)
			}
		})
	}
}
