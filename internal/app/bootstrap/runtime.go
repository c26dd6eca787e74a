package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/horu2day/saleslicense/internal/adapters/gateway"
	httpadapter "github.com/horu2day/saleslicense/internal/adapters/http"
	"github.com/horu2day/saleslicense/internal/adapters/memory"
	"github.com/horu2day/saleslicense/internal/adapters/postgres"
	"github.com/horu2day/saleslicense/internal/application"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping license marketplace", "http_port", cfg.HTTPPort)

	deps := application.Dependencies{
		Config: application.Config{
			ServiceName:     cfg.ServiceName,
			LicenseValidity: time.Duration(cfg.LicenseValidityDays) * 24 * time.Hour,
			DefaultCurrency: cfg.DefaultCurrency,
		},
		Gateway: gateway.NewClient(cfg.TossAPIBaseURL, cfg.TossSecretKey, cfg.GatewayTimeout),
		Logger:  logger,
	}

	cleanup := func(context.Context) {}
	ready := func(ctx context.Context) error { return nil }

	if cfg.DatabaseURL != "" {
		db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("gorm sql db: %w", err)
		}
		if err := postgres.RunMigrations(ctx, db); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		repos := postgres.NewRepositories(db)
		deps.Products = repos.Products
		deps.Orders = repos.Orders
		deps.Licenses = repos.Licenses
		deps.Reviews = repos.Reviews
		deps.Downloads = repos.Downloads
		deps.Sellers = repos.Sellers
		cleanup = func(context.Context) { _ = sqlDB.Close() }
		ready = func(ctx context.Context) error { return sqlDB.PingContext(ctx) }
	} else {
		logger.Warn("no database configured, using in-memory store")
		repos := memory.NewRepositories()
		deps.Products = repos.Products
		deps.Orders = repos.Orders
		deps.Licenses = repos.Licenses
		deps.Reviews = repos.Reviews
		deps.Downloads = repos.Downloads
		deps.Sellers = repos.Sellers
	}

	svc := application.NewService(deps)
	handler := httpadapter.NewHandler(svc, ready)
	router := httpadapter.NewRouter(handler)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		cleanupFn:  cleanup,
	}, nil
}

func (r *Runtime) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return runErr
}
