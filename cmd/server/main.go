package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/config"
	"github.com/agriverse/warehouse/internal/repository/mongodb"
	"github.com/agriverse/warehouse/internal/repository/records"
	"github.com/agriverse/warehouse/internal/repository/sheets"
	"github.com/agriverse/warehouse/internal/scheduler"
	"github.com/agriverse/warehouse/internal/server/handlers"
	"github.com/agriverse/warehouse/internal/server/router"
	dashboardsvc "github.com/agriverse/warehouse/internal/service/dashboard"
	inventorysvc "github.com/agriverse/warehouse/internal/service/inventory"
	ledgersvc "github.com/agriverse/warehouse/internal/service/ledger"
	sessionsvc "github.com/agriverse/warehouse/internal/service/session"
	"github.com/agriverse/warehouse/pkg/clients/notify"
	"github.com/agriverse/warehouse/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var store records.Store
	switch cfg.Storage.Backend {
	case config.BackendMongo:
		mongoStore, err := mongodb.NewRecordStore(context.Background(), cfg.Storage.MongoURI, cfg.Storage.MongoDBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb record store", zap.Error(err))
		}
		defer func() {
			if err := mongoStore.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		store = mongoStore
		baseLogger.Info("using mongodb record store", zap.String("db", cfg.Storage.MongoDBName))
	default:
		store = records.NewMemoryStore()
		baseLogger.Info("using in-memory record store")
	}

	var exporter ledgersvc.Exporter
	if cfg.Sheets.Enabled() {
		sheetsExporter, err := sheets.NewLedgerExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets ledger exporter", zap.Error(err))
		}
		exporter = sheetsExporter
		baseLogger.Info("ledger export to sheets enabled")
	}

	var notifier ledgersvc.Notifier
	if cfg.Notify.Enabled() {
		notifier = notify.NewWebhookClient(cfg.Notify)
		baseLogger.Info("transaction webhook notifier enabled", zap.String("url", cfg.Notify.WebhookURL))
	}

	ledgerSvc := ledgersvc.NewService(store, exporter, notifier, baseLogger.Named("svc.ledger"))
	inventorySvc := inventorysvc.NewService(cfg.Demo, store, ledgerSvc, baseLogger.Named("svc.inventory"))
	dashboardSvc := dashboardsvc.NewService(store, baseLogger.Named("svc.dashboard"))
	sessionSvc := sessionsvc.NewService(cfg.Session, cfg.Demo, store, baseLogger.Named("svc.session"))

	engine := router.New(router.Handlers{
		Session:   handlers.NewSessionHandler(sessionSvc, baseLogger.Named("handlers.session")),
		Inventory: handlers.NewInventoryHandler(inventorySvc, baseLogger.Named("handlers.inventory")),
		Ledger:    handlers.NewLedgerHandler(ledgerSvc, baseLogger.Named("handlers.ledger")),
		Dashboard: handlers.NewDashboardHandler(dashboardSvc, baseLogger.Named("handlers.dashboard")),
	}, cfg.Session.Secret, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Demo, dashboardSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
