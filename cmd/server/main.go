package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	httpapi "alumni-jobboard-backend/internal/api/http"
	"alumni-jobboard-backend/internal/config"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/metrics"
	"alumni-jobboard-backend/internal/security"
	"alumni-jobboard-backend/internal/service"
	"alumni-jobboard-backend/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Alumni Job Board Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "storage", cfg.Storage.Type)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped. Goodbye!")
}

func run(ctx context.Context, cfg *config.Config) error {
	// Initialize storage
	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	locker, closeLocker, err := storage.OpenLocker(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLocker()

	// Initialize metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize services
	gate := service.NewGate(backend.Roles, backend.Verifications, m)
	noteSvc := service.NewNotificationService(backend.Notifications)
	svc := httpapi.Services{
		Auth:          service.NewAuthService(backend.Accounts, backend.Roles, backend.Verifications, tokenManager),
		Roles:         service.NewRoleService(backend.Roles, backend.Accounts, gate, noteSvc),
		Verification:  service.NewVerificationService(backend.Verifications, gate, m),
		Admin:         service.NewAdminService(backend.Verifications, backend.Roles, gate, noteSvc, m),
		Jobs:          service.NewJobService(backend.Jobs, gate),
		Applications:  service.NewApplicationService(backend.Applications, backend.Jobs, backend.Verifications, locker, gate, noteSvc, m),
		Community:     service.NewCommunityService(backend.Verifications, backend.Roles, backend.Jobs),
		Notifications: noteSvc,
	}

	handler := httpapi.NewHandler(svc, backend, m)
	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      handler.Router(reg),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
