package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/infra/cache"
	"github.com/BruksfildServices01/barber-booking/internal/infra/mail"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(logger.Options{
		Level: cfg.LogLevel,
		Path:  cfg.LogPath,
		Debug: cfg.LogDebug,
	})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()

	deps := routes.Deps{
		Config:  cfg,
		Log:     zlog,
		Metrics: metrics.New(),
	}

	// ======================================================
	// STORAGE
	// ======================================================
	var auditStore audit.Store
	switch cfg.StorageDriver {
	case config.StorageMemory:
		store := memory.New()
		deps.Users = store.Users()
		deps.Shops = store.Barbershops()
		deps.Appointments = store.Appointments()
		auditStore = store.Audit()
		zlog.Warn("using in-memory storage, data is lost on restart")
	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			zlog.Fatal("failed to connect database", zap.Error(err))
		}
		deps.Users = infraRepo.NewUserGormRepository(db)
		deps.Shops = infraRepo.NewBarbershopGormRepository(db)
		deps.Appointments = infraRepo.NewAppointmentGormRepository(db)
		auditStore = infraRepo.NewAuditGormStore(db)
	}

	deps.Audit = audit.New(auditStore)
	deps.Dispatcher = audit.NewDispatcher(deps.Audit, zlog)

	// ======================================================
	// ONE-TIME TOKENS
	// ======================================================
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			zlog.Fatal("failed to connect redis", zap.Error(err))
		}
		defer client.Close()
		deps.Tokens = cache.NewRedisTokenStore(client)
	} else {
		deps.Tokens = cache.NewMemoryTokenStore()
	}

	// ======================================================
	// MAIL, UPLOADS, EMAIL DOMAINS
	// ======================================================
	if cfg.SMTP.Enabled() {
		deps.Mailer = mail.NewSMTPMailer(cfg.SMTP)
	} else {
		deps.Mailer = mail.NewLogMailer(zlog)
	}

	if cfg.S3.Enabled() {
		deps.Objects = storage.NewS3Store(cfg.S3)
	}

	deps.CheckDomain = validators.AnyDomain
	if cfg.CheckEmailDomain {
		deps.CheckDomain = validators.IsEmailDomainValid
	}

	// ======================================================
	// HTTP
	// ======================================================
	if !cfg.LogDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server running", zap.String("addr", cfg.Addr()), zap.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}

	deps.Dispatcher.Close()
}
