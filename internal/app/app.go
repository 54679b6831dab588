// Package app собирает сервис заказов: хранилище, ядро жизненного цикла, gRPC, outbox и фоновые воркеры.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/marketplace/internal/health"
	"github.com/vladislavdragonenkov/marketplace/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
	"github.com/vladislavdragonenkov/marketplace/internal/service/expiry"
	grpcsvc "github.com/vladislavdragonenkov/marketplace/internal/service/grpc"
	"github.com/vladislavdragonenkov/marketplace/internal/service/idempotency"
	"github.com/vladislavdragonenkov/marketplace/internal/service/outbox"
	"github.com/vladislavdragonenkov/marketplace/internal/telemetry"
	"github.com/vladislavdragonenkov/marketplace/internal/version"
)

const serviceName = "marketplace-order-service"

var errKafkaUnavailable = errors.New("kafka producer unavailable, outbox events are only logged")

// Run запускает сервис и блокируется до отмены ctx или ошибки gRPC сервера.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	shutdownTracing, err := telemetry.InitTracerProvider(ctx, cfg.OTLPEndpoint, serviceName, version.GetVersion())
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.WithError(err).Warn("failed to flush traces")
		}
	}()

	rt, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if rt.closeFn != nil {
		defer func() {
			if err := rt.closeFn(); err != nil {
				logger.WithError(err).Warn("failed to close storage")
			}
		}()
	}

	if cfg.SeedFile != "" {
		if err := loadSeed(ctx, cfg.SeedFile, rt, logger); err != nil {
			return err
		}
	}

	// Kafka необязательна: без неё outbox пишет события в лог.
	producer, _ := initKafkaProducer(cfg.KafkaBrokers, logger)
	defer closeKafkaProducer(producer, logger)
	publisher, dlqPublisher := buildOutboxPublishers(producer, logger)

	deps := wireDependencies(rt, cfg, metrics.NewLifecycleMetrics(), logger)
	workerMetrics := metrics.NewWorkerMetrics(prometheus.DefaultRegisterer)

	orderService := grpcsvc.NewOrderService(deps.Orders, deps.Notifications, deps.Idempotency, logger.WithField("layer", "grpc"))
	grpcServer, healthServer := newGRPCServer(orderService, deps.Outbox, cfg.OutboxMaxPending, logger)

	outboxOptions := []outbox.Option{
		outbox.WithLogger(logger.WithField("component", "outbox-worker")),
		outbox.WithMetrics(metrics.NewOutboxMetrics(prometheus.DefaultRegisterer)),
		outbox.WithPollInterval(cfg.OutboxPollInterval),
		outbox.WithBatchSize(cfg.OutboxBatchSize),
		outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
		outbox.WithRetryBaseDelay(cfg.OutboxRetryDelay),
	}
	if dlqPublisher != nil {
		outboxOptions = append(outboxOptions, outbox.WithDLQPublisher(dlqPublisher))
	}
	outboxWorker := outbox.NewWorker(deps.Outbox, publisher, outboxOptions...)

	cleanupWorker := idempotency.NewCleanupWorker(deps.Idempotency,
		idempotency.WithLogger(logger.WithField("component", "idempotency-cleanup")),
		idempotency.WithMetrics(workerMetrics),
		idempotency.WithInterval(cfg.IdempotencyCleanupInterval),
		idempotency.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
	)

	expiryWorker := expiry.NewWorker(deps.Orders,
		expiry.WithLogger(logger.WithField("component", "order-expiry")),
		expiry.WithMetrics(workerMetrics),
		expiry.WithInterval(cfg.OrderExpiryInterval),
		expiry.WithBatchSize(cfg.OrderExpiryBatchSize),
	)

	healthHandler := buildHealthHandler(cfg, rt, deps.Outbox, producer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	metricsSrv := startMetricsServer(gctx, cfg.MetricsAddr, logger, healthHandler)

	g.Go(func() error {
		logger.Infof("gRPC сервер слушает %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		outboxWorker.Run(gctx)
		return nil
	})
	g.Go(func() error {
		cleanupWorker.Run(gctx)
		return nil
	})
	g.Go(func() error {
		expiryWorker.Run(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("получен сигнал остановки, останавливаем gRPC сервер")
		stopGRPC(grpcServer, healthServer, logger)
		shutdownHTTP(metricsSrv, logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// buildHealthHandler собирает проверки: хранилище критично, outbox и Kafka только понижают статус.
func buildHealthHandler(cfg Config, rt *runtimeDependencies, outboxRepo domain.OutboxRepository, producer *kafka.Producer) *healthcheck.Handler {
	h := healthcheck.NewHandler(serviceName, version.GetVersion())
	if rt.storageChecker != nil {
		h.Register("storage", rt.storageChecker)
	}
	if outboxRepo != nil {
		h.RegisterOptional("outbox", healthcheck.NewOutboxBacklog(outboxRepo, cfg.OutboxMaxPending, cfg.OutboxStaleAfter))
	}
	if len(splitBrokers(cfg.KafkaBrokers)) > 0 {
		h.RegisterOptional("kafka", healthcheck.CheckFunc(func(context.Context) error {
			if producer == nil {
				return errKafkaUnavailable
			}
			return nil
		}))
	}
	return h
}

// startMetricsServer запускает HTTP-обработчики /metrics и health probes.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)

	// /metrics и /livez не трассируются.
	handler := otelhttp.NewHandler(mux, "marketplace-ops",
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/metrics" && r.URL.Path != "/livez"
		}),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)

	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}
