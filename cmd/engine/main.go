package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"news_engine/internal/api"
	"news_engine/internal/config"
	"news_engine/internal/geocode"
	"news_engine/internal/publisher"
	"news_engine/internal/scheduler"
	"news_engine/internal/service"
	"news_engine/internal/source/gnews"
	"news_engine/internal/storage/postgres"
	"news_engine/internal/storage/sqlite"
	"news_engine/internal/summarizer"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	localStore, err := sqlite.Open(cfg.LocalStore.Path)
	if err != nil {
		logger.Error("failed to open local store", "error", err)
		os.Exit(1)
	}
	defer localStore.Close()
	logger.Info("opened local store", "path", localStore.Path())

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	contentStore := postgres.NewContentStore(db)
	interactionStore := postgres.NewInteractionStore(db)
	txManager := postgres.NewTransactionManager(db)

	source := gnews.New(gnews.Config{
		BaseURL:  cfg.ContentAPI.BaseURL,
		APIKey:   cfg.ContentAPI.APIKey,
		PageSize: cfg.ContentAPI.PageSize,
		Timeout:  cfg.ContentAPI.Timeout,
	}, logger)

	sum := summarizer.New(summarizer.Config{
		BaseURL:  cfg.Summarizer.BaseURL,
		APIKey:   cfg.Summarizer.APIKey,
		MaxChars: cfg.Summarizer.MaxChars,
		Timeout:  cfg.Summarizer.Timeout,
	}, logger)

	geocoder := geocode.NewCache(
		geocode.NewClient(geocode.ClientConfig{
			BaseURL: cfg.Geocode.BaseURL,
			Timeout: cfg.Geocode.Timeout,
		}, logger),
		geocode.CacheConfig{
			TTL:             cfg.Geocode.TTL,
			DefaultLocation: cfg.Geocode.DefaultLocation,
		},
		logger,
	)

	orchestrator := service.NewOrchestrator(
		source,
		sum,
		contentStore,
		localStore,
		interactionStore,
		txManager,
		rabbitMQ,
		logger,
		cfg.Cache,
	)

	interactions := service.NewInteractions(localStore, logger)

	syncEngine := service.NewSyncEngine(localStore, interactionStore, logger, cfg.Sync)

	sched := scheduler.NewScheduler(syncEngine, cfg.Sync.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	apiServer := api.New(orchestrator, interactions, geocoder, logger)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: apiServer.Handler(),
	}

	go func() {
		logger.Info("api listening", "port", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("starting news engine",
		"sync_interval", cfg.Sync.Interval,
		"content_ttl", cfg.Cache.ContentTTL,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
