package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bursarhq/bursar/internal/academics"
	academicsStore "github.com/bursarhq/bursar/internal/academics/store"
	"github.com/bursarhq/bursar/internal/auth"
	"github.com/bursarhq/bursar/internal/config"
	"github.com/bursarhq/bursar/internal/database"
	"github.com/bursarhq/bursar/internal/export"
	"github.com/bursarhq/bursar/internal/feestructure"
	feestructureStore "github.com/bursarhq/bursar/internal/feestructure/store"
	bursarHttp "github.com/bursarhq/bursar/internal/http"
	academicsHandler "github.com/bursarhq/bursar/internal/http/academics"
	exportHandler "github.com/bursarhq/bursar/internal/http/export"
	feesHandler "github.com/bursarhq/bursar/internal/http/fees"
	structureHandler "github.com/bursarhq/bursar/internal/http/feestructure"
	importHandler "github.com/bursarhq/bursar/internal/http/importcsv"
	matchingHandler "github.com/bursarhq/bursar/internal/http/matching"
	"github.com/bursarhq/bursar/internal/importer"
	"github.com/bursarhq/bursar/internal/ledger"
	ledgerStore "github.com/bursarhq/bursar/internal/ledger/store"
	"github.com/bursarhq/bursar/internal/matching"
	matchingStore "github.com/bursarhq/bursar/internal/matching/store"
	studentStore "github.com/bursarhq/bursar/internal/student/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	students := studentStore.New(db)

	var (
		academicsService = academics.NewService(academicsStore.New(db),
			academics.WithCacheTTL(cfg.Terms.CacheTTL))
		structureService = feestructure.NewService(feestructureStore.New(db))
		ledgerService    = ledger.NewService(ledgerStore.New(db),
			academicsService, structureService, students,
			ledger.WithActorResolver(auth.ActorFromContext))
		matchingService = matching.NewService(matchingStore.New(db), students)
		importService   = importer.NewService(matchingService)
		exportService   = export.NewService(ledgerService, students,
			cfg.Renderer.URL, cfg.Renderer.Token)
	)

	var (
		feesH      = feesHandler.NewHandler(ledgerService)
		academicsH = academicsHandler.NewHandler(academicsService)
		structureH = structureHandler.NewHandler(structureService)
		importH    = importHandler.NewHandler(importService, ledgerService)
		matchingH  = matchingHandler.NewHandler(matchingService)
		exportH    = exportHandler.NewHandler(exportService, ledgerService)
	)

	router := bursarHttp.New(cfg.Auth.Secret,
		feesH, academicsH, structureH, importH, matchingH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
