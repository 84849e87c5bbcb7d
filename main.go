package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lunch-tray/bot"
	"lunch-tray/config"
	"lunch-tray/services"
	"lunch-tray/tui"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// `lunch-tray tui` runs the wizard in the terminal instead of Telegram.
	if len(os.Args) > 1 && os.Args[1] == "tui" {
		runTUI(cfg)
		return
	}

	if cfg.Telegram.Token == "" {
		fmt.Fprintln(os.Stderr, "TOKEN not set")
		os.Exit(1)
	}

	logger, err := newLogger(zap.NewProductionConfig(), cfg.App.LogLevel, "stderr")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	b, err := bot.New(cfg, logger)
	if err != nil {
		logger.Fatal("bot", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("bot started",
		zap.String("tax_rate", cfg.Order.TaxRate.String()),
		zap.String("lang", cfg.App.Lang),
		zap.Duration("session_ttl", cfg.App.SessionTTL))
	b.Start(ctx)
	logger.Info("bot stopped")
}

func runTUI(cfg *config.Config) {
	// The terminal belongs to the UI, so logs go to a file.
	logger, err := newLogger(zap.NewDevelopmentConfig(), cfg.App.LogLevel, "lunch-tray.log")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := tui.Run(services.NewFlow(cfg.Order.TaxRate), cfg.App.Lang, logger); err != nil {
		fmt.Fprintln(os.Stderr, "tui:", err)
		os.Exit(1)
	}
}

func newLogger(zc zap.Config, level zapcore.Level, output string) (*zap.Logger, error) {
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{output}
	return zc.Build()
}
