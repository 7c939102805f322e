package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-manager/internal/audit"
	"github.com/BruksfildServices01/appointment-manager/internal/cache"
	"github.com/BruksfildServices01/appointment-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/appointment-manager/internal/db"
	"github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/appointment-manager/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-manager/internal/jobs"
	"github.com/BruksfildServices01/appointment-manager/internal/logger"
	"github.com/BruksfildServices01/appointment-manager/internal/loginlog"
	"github.com/BruksfildServices01/appointment-manager/internal/objectstore"
	"github.com/BruksfildServices01/appointment-manager/internal/routes"
	"github.com/BruksfildServices01/appointment-manager/internal/timezone"
	ucAuth "github.com/BruksfildServices01/appointment-manager/internal/usecase/auth"
	ucReport "github.com/BruksfildServices01/appointment-manager/internal/usecase/report"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg := config.Load()

	if err := logger.Init(cfg.IsProduction()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ======================================================
	// BUSINESS HOURS
	// ======================================================
	hours, err := appointment.NewBusinessHours(
		cfg.BusinessHoursStart,
		cfg.BusinessHoursEnd,
		timezone.Location(cfg.BusinessTimezone),
	)
	if err != nil {
		logger.Log.Fatal("invalid business hours", zap.Error(err))
	}

	// ======================================================
	// DATABASE
	// ======================================================
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Log.Fatal("database setup failed", zap.Error(err))
	}

	ctx := context.Background()

	created, err := ucAuth.EnsureUser(
		ctx,
		infraRepo.NewUserGormRepository(db),
		cfg.SeedUsername,
		cfg.SeedPassword,
	)
	if err != nil {
		logger.Log.Fatal("seed user failed", zap.Error(err))
	}
	if created {
		logger.Log.Info("seed user created", zap.String("username", cfg.SeedUsername))
	}

	// ======================================================
	// OPTIONAL INFRA
	// ======================================================
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Log.Warn("redis unavailable, report cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
		}
	}
	reportCache := cache.NewReportCache(redisClient, cfg.ReportCacheTTL)

	var uploader objectstore.Uploader
	if cfg.S3Enabled() {
		uploader = objectstore.NewS3Uploader(cfg)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	defer auditDispatcher.Close()

	reports := ucReport.NewSuite(
		infraRepo.NewReportGormRepository(db),
		reportCache,
		uploader,
	)

	// ======================================================
	// JOBS
	// ======================================================
	var scheduler *jobs.Scheduler
	if uploader != nil {
		scheduler = jobs.NewScheduler(reports.Export, hours.Location)
		if err := scheduler.RegisterMonthlyExport(cfg.ReportExportCron); err != nil {
			logger.Log.Fatal("invalid report export schedule", zap.Error(err))
		}
		scheduler.Start()
	}

	// ======================================================
	// HTTP
	// ======================================================
	r, err := routes.NewEngine(cfg)
	if err != nil {
		logger.Log.Fatal("http engine setup failed", zap.Error(err))
	}

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Hours:    hours,
		Audit:    auditDispatcher,
		Cache:    reportCache,
		LoginLog: loginlog.New(cfg.LoginLogPath),
		Reports:  reports,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown", zap.Error(err))
	}
	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}
}
