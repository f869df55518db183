// Command import_history reconciles one yearly fee spreadsheet against the
// ledger from the command line. A missing file or sheet is reported as an
// empty run, not a failure, so batch scripts can sweep a directory of
// historical workbooks without guarding each year.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/contafacil/honorarios_app/internal/core/services"
	"github.com/contafacil/honorarios_app/internal/ingestion"
	"github.com/contafacil/honorarios_app/internal/platform/config"
	"github.com/contafacil/honorarios_app/internal/repositories/database/pgsql"
	"github.com/contafacil/honorarios_app/pkg/database"
)

func main() {
	var (
		file  = flag.String("file", "", "path to the .xlsx workbook")
		sheet = flag.String("sheet", "", "sheet name (defaults to the first sheet)")
		year  = flag.Int("year", 0, "ledger year the sheet covers")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if *file == "" || *year < 2000 || *year > 2100 {
		fmt.Fprintln(os.Stderr, "usage: import_history -file planilha.xlsx -year 2024 [-sheet HONORARIOS]")
		os.Exit(2)
	}

	rows, sheetName, err := ingestion.LoadWorkbookSheet(*file, *sheet)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, ingestion.ErrSheetNotFound) {
			logger.Info("Nothing to import", slog.String("file", *file), slog.String("reason", err.Error()))
			return
		}
		logger.Error("Failed to read workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}

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
	importService := services.NewImportService(repos.ClientRepo, repos.FeeRepo, audit, logger)

	result, err := importService.ImportSheet(ctx, rows, sheetName, *year)
	if err != nil {
		logger.Error("Import run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Import run finished",
		slog.String("sheet", result.Sheet),
		slog.Int("year", result.Year),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("skipped_rows", result.SkippedRows),
		slog.Int("clients_created", result.ClientsCreated),
		slog.Int("errors", len(result.Errors)))
	for _, rowErr := range result.Errors {
		logger.Warn("Row failed", slog.Int("row", rowErr.Row), slog.String("reason", rowErr.Reason))
	}
}
