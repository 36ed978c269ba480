// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/litoralverde/training-api/internal/admin"
	"github.com/litoralverde/training-api/internal/auth"
	"github.com/litoralverde/training-api/internal/config"
	"github.com/litoralverde/training-api/internal/core"
	"github.com/litoralverde/training-api/internal/favorites"
	"github.com/litoralverde/training-api/internal/health"
	"github.com/litoralverde/training-api/internal/middleware"
	"github.com/litoralverde/training-api/internal/notes"
	"github.com/litoralverde/training-api/internal/progress"
	"github.com/litoralverde/training-api/internal/sections"
	"github.com/litoralverde/training-api/internal/server"
	"github.com/litoralverde/training-api/internal/user"
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

	db, err := core.NewDatabase(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	logger.Info("mongodb connected",
		"database", cfg.Mongo.Database,
		"max_pool_size", cfg.Mongo.MaxPoolSize,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	tokenManager, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"token_expire", cfg.JWT.TokenExpire,
	)

	userRepo := user.NewRepository(db.DB)
	progressRepo := progress.NewRepository(db.DB)
	notesRepo := notes.NewRepository(db.DB)
	favoritesRepo := favorites.NewRepository(db.DB)

	if err := ensureIndexes(
		ctx,
		userRepo.EnsureIndexes,
		progressRepo.EnsureIndexes,
		notesRepo.EnsureIndexes,
		favoritesRepo.EnsureIndexes,
	); err != nil {
		return err
	}

	rosterCache := admin.NewRosterCache(redis.Client, cfg.Redis.RosterTTL)

	userSvc := user.NewService(userRepo)
	authSvc := auth.NewService(userSvc, tokenManager, cfg.Auth.EmailDomain)
	progressSvc := progress.NewService(progressRepo, rosterCache)
	notesSvc := notes.NewService(notesRepo)
	favoritesSvc := favorites.NewService(favoritesRepo)
	adminSvc := admin.NewService(
		userSvc,
		progressSvc,
		notesSvc,
		favoritesSvc,
		rosterCache,
	)

	authHandler := auth.NewHandler(authSvc)
	sectionsHandler := sections.NewHandler()
	progressHandler := progress.NewHandler(progressSvc)
	notesHandler := notes.NewHandler(notesSvc)
	favoritesHandler := favorites.NewHandler(favoritesSvc)
	healthHandler := health.NewHandler(db, redis, cfg.Mongo.Database)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Service:    adminSvc,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		RedisStats: redis.PoolStats,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(tokenManager)
	adminOnly := middleware.RequireAdmin

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)
		sectionsHandler.RegisterRoutes(r)
		progressHandler.RegisterRoutes(r, authenticator)
		notesHandler.RegisterRoutes(r, authenticator)
		favoritesHandler.RegisterRoutes(r, authenticator)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

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

	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("mongodb close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func ensureIndexes(
	ctx context.Context,
	fns ...func(context.Context) error,
) error {
	for _, fn := range fns {
		if err := fn(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
	}
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
