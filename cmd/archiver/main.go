package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"media_archive/internal/config"
	"media_archive/internal/publisher"
	"media_archive/internal/scheduler"
	"media_archive/internal/service"
	"media_archive/internal/source/jsonapi"
	"media_archive/internal/storage/postgres"
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

	// Stores
	sourceStore := postgres.NewSourceStore(db)
	remoteTagStore := postgres.NewRemoteTagStore(db)
	remotePostStore := postgres.NewRemotePostStore(db)
	fileStore := postgres.NewFileStore(db)
	subscriptionStore := postgres.NewSubscriptionStore(db)
	relatedStore := postgres.NewRelatedStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Fetch collaborator
	fetcher := jsonapi.New(jsonapi.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	// Services
	ingestService := service.NewIngestService(
		sourceStore,
		remotePostStore,
		remoteTagStore,
		fileStore,
		relatedStore,
		txManager,
		rabbitMQ,
		logger,
	)

	pollService := service.NewPollService(
		sourceStore,
		subscriptionStore,
		ingestService,
		fetcher,
		logger,
		cfg.Poll,
	)

	sched := scheduler.NewScheduler(pollService, cfg.Poll.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting media archiver",
		"interval", cfg.Poll.Interval,
		"max_items", cfg.Poll.MaxItemsPerPoll,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
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
