// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angelamos/parceld/internal/admin"
	"github.com/angelamos/parceld/internal/config"
	"github.com/angelamos/parceld/internal/core"
	"github.com/angelamos/parceld/internal/health"
	"github.com/angelamos/parceld/internal/identity"
	"github.com/angelamos/parceld/internal/middleware"
	"github.com/angelamos/parceld/internal/parcel"
	"github.com/angelamos/parceld/internal/payment"
	"github.com/angelamos/parceld/internal/rider"
	"github.com/angelamos/parceld/internal/server"
	"github.com/angelamos/parceld/internal/tracking"
	"github.com/angelamos/parceld/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if err := db.Migrate(ctx); err != nil {
		return err
	}
	logger.Info("database migrations applied")

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	verifier, err := identity.NewVerifier(ctx, cfg.Identity)
	if err != nil {
		return err
	}
	logger.Info("identity verifier initialized",
		"issuer", cfg.Identity.Issuer,
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	parcelRepo := parcel.NewRepository(db.DB)
	parcelSvc := parcel.NewService(parcelRepo)
	parcelHandler := parcel.NewHandler(parcelSvc)

	riderRepo := rider.NewRepository(db.DB)
	riderSvc := rider.NewService(riderRepo)
	riderHandler := rider.NewHandler(riderSvc)

	gateway := payment.NewStripeGateway(cfg.Stripe)
	paymentRepo := payment.NewRepository(db.DB)
	paymentSvc := payment.NewService(paymentRepo, gateway, userSvc)
	paymentHandler := payment.NewHandler(paymentSvc)

	trackingRepo := tracking.NewRepository(db.DB)
	trackingSvc := tracking.NewService(trackingRepo)
	trackingHandler := tracking.NewHandler(trackingSvc)

	healthHandler := health.NewHandler(db, redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(verifier)
	adminOnly := middleware.RequireAdmin(userSvc)

	paymentLimiter := middleware.NewRateLimiter(
		redis.Client,
		middleware.RateLimitConfig{
			Limit:    middleware.PerSecond(2, 5),
			KeyFunc:  middleware.KeyByEmailAndEndpoint,
			FailOpen: true,
		},
	)

	userHandler.RegisterRoutes(router, authenticator, adminOnly)
	parcelHandler.RegisterRoutes(router, authenticator)
	riderHandler.RegisterRoutes(router, authenticator, adminOnly)
	paymentHandler.RegisterRoutes(router, authenticator, paymentLimiter.Handler)
	trackingHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router, authenticator, adminOnly)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
