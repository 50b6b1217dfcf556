package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	batchStore "github.com/tmcampos/spendlane/internal/batch/store"
	"github.com/tmcampos/spendlane/internal/config"
	"github.com/tmcampos/spendlane/internal/database"
	"github.com/tmcampos/spendlane/internal/export"
	spendHttp "github.com/tmcampos/spendlane/internal/http"
	exportHandler "github.com/tmcampos/spendlane/internal/http/exportcsv"
	uploadHandler "github.com/tmcampos/spendlane/internal/http/upload"
	"github.com/tmcampos/spendlane/internal/ingest"
	ingestStore "github.com/tmcampos/spendlane/internal/ingest/store"
	orgStore "github.com/tmcampos/spendlane/internal/organization/store"
	txStore "github.com/tmcampos/spendlane/internal/transaction/store"
)

func main() {
	// Missing .env is fine outside development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log.Level, cfg.Log.Format)

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		organizations = orgStore.New(db)
		batches       = batchStore.New(db)
		transactions  = txStore.New(db)

		ingestService = ingest.NewService(ingestStore.New(db), batches, organizations)
		exportService = export.NewService(transactions)
	)

	var (
		uploadH = uploadHandler.NewHandler(ingestService, organizations, batches)
		exportH = exportHandler.NewHandler(exportService, organizations)
	)

	router := spendHttp.New(uploadH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level, format string) {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
