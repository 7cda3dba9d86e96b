package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontdesk/internal/audit"
	"github.com/BruksfildServices01/barber-frontdesk/internal/cache"
	"github.com/BruksfildServices01/barber-frontdesk/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-frontdesk/internal/db"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
	"github.com/BruksfildServices01/barber-frontdesk/internal/export"
	"github.com/BruksfildServices01/barber-frontdesk/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-frontdesk/internal/infra/repository"
	"github.com/BruksfildServices01/barber-frontdesk/internal/infra/memstore"
	"github.com/BruksfildServices01/barber-frontdesk/internal/logger"
	"github.com/BruksfildServices01/barber-frontdesk/internal/routes"
	"github.com/BruksfildServices01/barber-frontdesk/internal/seed"
	"github.com/BruksfildServices01/barber-frontdesk/internal/session"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
	ucReport "github.com/BruksfildServices01/barber-frontdesk/internal/usecase/report"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	if !timezone.IsValid(cfg.Timezone) {
		log.Fatal("invalid timezone", zap.String("timezone", cfg.Timezone))
	}
	clock := timezone.ClockIn(cfg.Timezone)

	db := dbpkg.NewDB(cfg, log)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 10*time.Second)
	if err := handlers.EnsureBootstrapAccount(
		bootCtx,
		infraRepo.NewAccountGormRepository(db),
		cfg.BootstrapEmail,
		cfg.BootstrapPassword,
		log,
	); err != nil {
		log.Fatal("bootstrap account", zap.Error(err))
	}
	cancelBoot()

	// ======================================================
	// FRONT DESK STATE
	// ======================================================
	initial := frontdesk.Snapshot{}
	if cfg.SeedMockData {
		initial = seed.Mock(clock(), gofakeit.New(0))
		log.Info("mock data loaded",
			zap.Int("appointments", len(initial.Appointments)),
			zap.Int("clients", len(initial.Clients)),
			zap.Int("employees", len(initial.Employees)),
		)
	}
	store := memstore.New(initial)

	// ======================================================
	// SESSIONS + CACHE
	// ======================================================
	var sessions session.Store = session.NewMemoryStore(clock)
	var reportCache cache.ReportCache = cache.NopReportCache{}

	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatal("redis unavailable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer rdb.Close()

		sessions = session.NewRedisStore(rdb)
		reportCache = cache.NewRedisReportCache(rdb, cfg.ReportCacheTTL, log)
		log.Info("redis connected", zap.String("addr", cfg.RedisAddr))
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)
	defer dispatcher.Close()

	// ======================================================
	// MONTHLY EXPORT
	// ======================================================
	if cfg.ExportEnabled() {
		exporter := export.NewClosureExporter(
			ucReport.NewGetFinancialClosure(store, reportCache, clock, log),
			export.NewS3Client(cfg),
			cfg.ExportBucket,
			log,
		)

		scheduler, err := export.NewScheduler(
			cfg.ExportCron,
			timezone.Location(cfg.Timezone),
			exporter,
			clock,
			log,
		)
		if err != nil {
			log.Fatal("export scheduler", zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()

		log.Info("closure export scheduled",
			zap.String("bucket", cfg.ExportBucket),
			zap.String("cron", cfg.ExportCron),
		)
	}

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	routes.RegisterRoutes(r, routes.Deps{
		Config:      cfg,
		DB:          db,
		Store:       store,
		Audit:       dispatcher,
		Sessions:    sessions,
		ReportCache: reportCache,
		Resolver:    net.DefaultResolver,
		Clock:       clock,
		Log:         log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
