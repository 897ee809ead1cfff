package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/husen-2346/vehical-insurance-backend/internal/app"
	"github.com/husen-2346/vehical-insurance-backend/internal/config"
	"github.com/husen-2346/vehical-insurance-backend/internal/database"
	"github.com/husen-2346/vehical-insurance-backend/internal/logging"
	"github.com/husen-2346/vehical-insurance-backend/internal/redis"
	"github.com/husen-2346/vehical-insurance-backend/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrationsWithLock(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func setupRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	client, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to create Redis client", "error", err)
		os.Exit(1)
	}
	if err := client.Ping(ctx); err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	pool := setupDB(cfg)
	defer pool.Close()

	redisClient := setupRedis(context.Background(), cfg)
	defer func() { _ = redisClient.Close() }()

	applicationRepo := database.NewApplicationRepo(pool)
	adminRepo := database.NewAdminRepo(pool)
	sessionRepo := redis.NewSessionRepo(redisClient.Underlying(), cfg.SessionMaxAge)

	svc := app.NewService(applicationRepo, adminRepo, sessionRepo, clock,
		cfg.AdminToken, cfg.DefaultAdminUsername, cfg.DefaultAdminPassword)

	// Seed the single default admin if the collection is empty. Runs once,
	// after the store is known reachable.
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := svc.EnsureDefaultAdmin(seedCtx); err != nil {
		cancel()
		slog.Error("Failed to seed default admin", "error", err)
		os.Exit(1)
	}
	cancel()

	srv := server.NewServer(cfg, svc, pool, redisClient)

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
