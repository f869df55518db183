// Command generate_fees materializes the PENDING fee records implied by the
// registered yearly amounts. Intended to run from cron at month start; reruns
// are harmless since existing records are never touched.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/contafacil/honorarios_app/internal/core/services"
	"github.com/contafacil/honorarios_app/internal/platform/config"
	"github.com/contafacil/honorarios_app/internal/repositories/database/pgsql"
	"github.com/contafacil/honorarios_app/pkg/database"
)

func main() {
	currentOnly := flag.Bool("current-month", false, "only create the current month's records for active clients")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	audit := services.NewAuditService(repos.AuditRepo, logger)
	generation := services.NewGenerationService(repos.ClientRepo, repos.FeeRepo, repos.FeeAmountRepo, audit, logger)

	var run func() error
	if *currentOnly {
		run = func() error {
			result, err := generation.GenerateCurrentMonth(ctx, time.Now())
			if err != nil {
				return err
			}
			logger.Info("Current month generation finished", slog.Int("created", result.Created), slog.Int("skipped", result.Skipped))
			return nil
		}
	} else {
		run = func() error {
			result, err := generation.GenerateAll(ctx, time.Now())
			if err != nil {
				return err
			}
			logger.Info("Generation finished", slog.Int("created", result.Created), slog.Int("skipped", result.Skipped))
			return nil
		}
	}

	if err := run(); err != nil {
		logger.Error("Generation run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
