// Command server runs the event hub HTTP API.
//
// Usage:
//
//	go run ./cmd/server            # serve
//	go run ./cmd/server -migrate   # apply db/migrations (and seeds when SEED_DATABASE=true), then exit
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"eventhub/internal/config"
	"eventhub/internal/database"
	"eventhub/internal/server"
)

var (
	envFile     = flag.String("env", ".env", "KEY=value file loaded before reading the environment")
	migrateOnly = flag.Bool("migrate", false, "apply migrations and exit")
)

func main() {
	flag.Parse()

	if err := config.LoadEnvFiles(*envFile); err != nil {
		log.Fatalf("load env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if cfg.JWT.Ephemeral {
		logger.Warn("session keys generated at start-up, sessions end when the process stops", "env", cfg.Server.Environment)
	}
	if cfg.IsProduction() && slices.Contains(cfg.Server.CORSAllowOrigins, "*") {
		logger.Warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *migrateOnly {
		sqlDB, err := database.OpenSQL(&cfg.Database)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer sqlDB.Close()

		if err := database.Migrate(ctx, sqlDB, cfg.Database.Seed, logger); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		return
	}

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	defer db.Close()

	srv := server.New(server.Dependencies{
		Config: cfg,
		DB:     db,
		Logger: logger,
	})

	if err := srv.BootstrapAdmin(db); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
