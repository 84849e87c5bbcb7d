package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Telegram TelegramConfig
	Order    OrderConfig
	App      AppConfig
}

type TelegramConfig struct {
	Token string
}

type OrderConfig struct {
	TaxRate decimal.Decimal
}

type AppConfig struct {
	Lang       string
	LogLevel   zapcore.Level
	SessionTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	rate, err := decimal.NewFromString(getEnv("TAX_RATE", "0.08"))
	if err != nil {
		return nil, fmt.Errorf("TAX_RATE: %w", err)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("TAX_RATE must be >= 0, got %s", rate)
	}

	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be > 0, got %s", ttl)
	}

	return &Config{
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		Order: OrderConfig{
			TaxRate: rate,
		},
		App: AppConfig{
			Lang:       getEnv("LANG_DEFAULT", "en"),
			LogLevel:   level,
			SessionTTL: ttl,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
