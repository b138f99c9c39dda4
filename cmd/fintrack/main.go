package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"fintrack/internal/backend"
	"fintrack/internal/cli"
	"fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)
	if level, err := cfg.SlogLevel(); err == nil && level != slog.LevelInfo {
		logger = cli.SetupLogger(level)
	}
	ctx := context.Background()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err.Error())
		os.Exit(1)
	}

	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateStore(ctx, backendCfg)
	if err != nil {
		if errors.Is(err, storage.ErrCorruptData) {
			fmt.Fprintln(os.Stderr, "The data file is corrupt. Move it aside or delete it to start fresh.")
		}
		logger.Error("Failed to initialize record store",
			log.FieldError, err.Error(),
			log.FieldBackend, backendCfg.Type.String())
		os.Exit(1)
	}

	ledger := services.NewLedgerService(result.Store, logger)
	defer func() {
		if err := ledger.Close(); err != nil {
			logger.Error("Failed to close ledger", log.FieldError, err.Error())
		}
	}()

	logger.Info("Ledger ready",
		log.FieldOperation, log.OpStartup,
		log.FieldBackend, backendCfg.Type.String())

	menu := cli.NewMenu(ledger, cfg, os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil {
		// Exit through the defers so the store still closes cleanly.
		logger.Error("Menu loop failed", log.FieldError, err.Error())
	}
}
