package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/baustelle-app/lager/pkg/app"
	"github.com/baustelle-app/lager/pkg/config"
	"github.com/baustelle-app/lager/pkg/database"
	"github.com/baustelle-app/lager/pkg/events"
	"github.com/baustelle-app/lager/pkg/kvstore"
	"github.com/baustelle-app/lager/pkg/logger"
	"github.com/baustelle-app/lager/pkg/telemetry"
	pkgworkflows "github.com/baustelle-app/lager/pkg/workflows"
	"github.com/baustelle-app/lager/services/inventory/application/consumers"
	appsvcs "github.com/baustelle-app/lager/services/inventory/application/services"
	"github.com/baustelle-app/lager/services/inventory/application/workflows"
)

const consumerGroup = "lager-worker"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck

	// Workflow activities commit ledger entries too, so the worker publishes
	// through the same outbox the API forwarder drains.
	eventBus, err := events.NewEventBus(events.Options{
		DatabaseURL:   cfg.DatabaseURL,
		ConsumerGroup: consumerGroup,
		UseForwarder:  true,
	}, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := kvstore.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck

	var temporalClient *pkgworkflows.TemporalClient
	if cfg.TemporalEnabled {
		temporalClient, err = pkgworkflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, cfg.TemporalTaskQueue, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
	}

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}
	svcs := appsvcs.New(appConfig)

	if err := consumers.Register(ctx, eventBus, svcs, log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if temporalClient != nil {
		w := temporalClient.NewWorker()
		workflows.Register(w, svcs.Ledger)
		if err := w.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer w.Stop()
		log.Info("temporal worker started", "task_queue", temporalClient.TaskQueue)
	}

	<-ctx.Done()
	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}
