package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"urlify/internal/bot"
	"urlify/internal/cache"
	"urlify/internal/config"
	"urlify/internal/database"
	"urlify/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	slog.Info("Starting urlify service...")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectPostgres(ctx, cfg.PostgresURL)
	if err != nil {
		slog.Error("Could not connect to Postgres", "error", err)
		return
	}
	defer db.Close()

	cacheDB, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		slog.Error("Could not connect to Redis", "error", err)
		return
	}
	defer cacheDB.Close()

	analytics, err := database.ConnectClickHouse(ctx, cfg.ClickHouseAddr, cfg.ClickHouseUser, cfg.ClickHousePassword, cfg.ClickHouseDB, cfg.GeoIPPath)
	if err != nil {
		slog.Error("Could not connect to ClickHouse", "error", err)
		return
	}
	defer analytics.Close()
	analytics.Start(ctx)

	shortener := service.NewShortener(db, cacheDB, analytics)

	publicLimiter := service.NewLimiter(cfg.PublicLimit.Capacity, cfg.PublicLimit.RefillTokens, cfg.PublicLimit.RefillInterval)
	authLimiter := service.NewLimiter(cfg.AuthenticatedLimit.Capacity, cfg.AuthenticatedLimit.RefillTokens, cfg.AuthenticatedLimit.RefillInterval)

	botErr := make(chan error, 1)
	if cfg.TelegramToken != "" {
		tgBot, err := bot.NewTelegramBot(cfg.TelegramToken, shortener, db, authLimiter, cfg.BaseURL)
		if err != nil {
			slog.Error("Could not initialize bot", "error", err)
			return
		}
		go func() { botErr <- tgBot.Start(ctx) }()
	}

	server := service.NewServer(cfg.Port, cfg.BaseURL, shortener, db, publicLimiter, authLimiter)
	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start(ctx) }()

	slog.Info("Service is up and running!", "port", cfg.Port)

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server stopped with error", "error", err)
			stop()
		}
	case err := <-botErr:
		if err != nil {
			slog.Error("Bot stopped with error", "error", err)
			stop()
		}
	}

	slog.Info("Shutting down gracefully...")
}
