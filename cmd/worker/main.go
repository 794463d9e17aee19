package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/agendadoc/clinic-api/internal/config"
	"github.com/agendadoc/clinic-api/internal/repository/postgres"
	"github.com/agendadoc/clinic-api/pkg/logger"
	"github.com/agendadoc/clinic-api/pkg/messaging/redis"
	"github.com/agendadoc/clinic-api/pkg/metrics"
	"github.com/agendadoc/clinic-api/pkg/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	lg := logger.New()

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		lg.ZL.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	broker, err := redis.NewBroker(cfg.Redis.URL)
	if err != nil {
		lg.ZL.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer broker.Close()

	base := postgres.NewBaseRepository(db)
	outboxRepo := postgres.NewOutboxRepository(base)

	processor := worker.NewOutboxProcessor(
		outboxRepo,
		broker,
		worker.OutboxProcessorConfig{
			BatchSize:     cfg.Outbox.BatchSize,
			PollInterval:  cfg.Outbox.PollInterval,
			RetryAttempts: cfg.Outbox.RetryAttempts,
			RetryDelay:    cfg.Outbox.RetryDelay,
		},
		lg,
		metrics.New("outbox_processor"),
	)

	setupHealthCheck(lg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		lg.Info("shutting down...")
		cancel()
	}()

	processor.Start(ctx)
}

func setupHealthCheck(lg *logger.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		if err := http.ListenAndServe(":8081", mux); err != nil {
			lg.ZL.Error().Err(err).Msg("health check server failed")
			os.Exit(1)
		}
	}()
}
