package app

import (
	"context"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	grpcsvc "github.com/vladislavdragonenkov/marketplace/internal/service/grpc"
	marketplacev1 "github.com/vladislavdragonenkov/marketplace/proto/marketplace/v1"
)

const grpcStopTimeout = 5 * time.Second

// newGRPCServer собирает сервер с метриками, backpressure outbox и health-сервисом.
func newGRPCServer(orderService *grpcsvc.OrderService, outboxRepo domain.OutboxRepository, maxPending int, logger *log.Entry) (*grpc.Server, *health.Server) {
	grpcMetrics := promgrpc.NewServerMetrics()
	if err := prometheus.Register(grpcMetrics); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok2 := are.ExistingCollector.(*promgrpc.ServerMetrics); ok2 {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcMetrics.UnaryServerInterceptor(),
		outboxBackpressureInterceptor(outboxRepo, maxPending, logger),
	))
	marketplacev1.RegisterOrderServiceServer(server, orderService)
	grpcMetrics.InitializeMetrics(server)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(marketplacev1.OrderService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	return server, healthServer
}

// outboxBackpressureInterceptor отклоняет новые заказы, пока backlog outbox не меньше maxPending.
// Остальные методы проходят без проверки: они нужны, чтобы разгрузить очередь.
func outboxBackpressureInterceptor(repo domain.OutboxRepository, maxPending int, logger *log.Entry) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if repo == nil || maxPending <= 0 || info.FullMethod != marketplacev1.OrderService_CreateOrder_FullMethodName {
			return handler(ctx, req)
		}

		stats, err := repo.Stats(ctx)
		if err != nil {
			logger.WithError(err).Warn("failed to read outbox stats, skipping backpressure check")
			return handler(ctx, req)
		}
		if stats.PendingCount >= maxPending {
			logger.WithFields(log.Fields{
				"pending":     stats.PendingCount,
				"max_pending": maxPending,
			}).Warn("outbox backlog is full, rejecting order")
			return nil, status.Error(codes.ResourceExhausted, "outbox backlog is full, retry later")
		}
		return handler(ctx, req)
	}
}

// stopGRPC останавливает сервер, ожидая активные вызовы не дольше grpcStopTimeout.
func stopGRPC(server *grpc.Server, healthServer *health.Server, logger *log.Entry) {
	healthServer.Shutdown()

	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(grpcStopTimeout):
		logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
		server.Stop()
	}
}
