package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"assure/internal/application"
	appmetrics "assure/internal/application/metrics"
	"assure/internal/application/service"
	"assure/internal/application/store"
	httpapi "assure/internal/http"
	"assure/internal/platform/config"
	"assure/internal/platform/httpserver"
	"assure/internal/platform/logger"
	"assure/internal/platform/metrics"
	"assure/internal/platform/postgres"
	"assure/internal/platform/redis"
	"assure/pkg/audit"
)

// main wires high-level dependencies and keeps the server lifecycle
// small. Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recordStore, cleanup, err := buildStore(ctx, cfg, log)
	if err != nil {
		log.Error("store initialization failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	publisher, closePublisher, err := buildPublisher(ctx, cfg, log)
	if err != nil {
		log.Error("audit publisher initialization failed", "error", err)
		os.Exit(1)
	}
	defer closePublisher()

	svc := application.NewService(recordStore,
		service.WithLogger(log),
		service.WithMetrics(appmetrics.New()),
		service.WithAuditPublisher(publisher),
	)
	router := httpapi.NewRouter(application.NewHandler(svc, log), log)

	apiServer := httpserver.New(cfg.Addr, router)
	metricsServer := httpserver.New(cfg.MetricsAddr, metrics.Handler())

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("starting api server", "addr", cfg.Addr)
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		log.Info("starting metrics server", "addr", cfg.MetricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return metricsServer.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

// buildStore picks the record store from configuration: Postgres when a
// database is configured, Redis next, in-memory as the development
// fallback.
func buildStore(ctx context.Context, cfg config.Server, log *slog.Logger) (store.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		pg := store.NewPostgres(db)
		if err := pg.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("using postgres store")
		return pg, func() { db.Close() }, nil
	}

	if cfg.Redis.URL != "" {
		client, err := redis.New(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using redis store")
		return store.NewRedis(client.Client), func() { client.Close() }, nil
	}

	log.Info("using in-memory store")
	return store.NewInMemoryStore(), func() {}, nil
}

// buildPublisher returns the Kafka audit publisher when brokers are
// configured, a no-op otherwise.
func buildPublisher(ctx context.Context, cfg config.Server, log *slog.Logger) (service.AuditPublisher, func(), error) {
	if len(cfg.KafkaBrokers) == 0 {
		return audit.NoopPublisher{}, func() {}, nil
	}
	publisher, err := audit.NewKafkaPublisher(ctx, cfg.KafkaBrokers, cfg.AuditTopic, log)
	if err != nil {
		return nil, nil, err
	}
	log.Info("audit publishing enabled", "topic", cfg.AuditTopic)
	return publisher, publisher.Close, nil
}
