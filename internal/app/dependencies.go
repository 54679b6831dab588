package app

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/events"
	"github.com/vladislavdragonenkov/marketplace/internal/mail"
	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
	"github.com/vladislavdragonenkov/marketplace/internal/service/lifecycle"
	"github.com/vladislavdragonenkov/marketplace/internal/service/notification"
	"github.com/vladislavdragonenkov/marketplace/internal/service/orders"
	"github.com/vladislavdragonenkov/marketplace/internal/service/stock"
	"github.com/vladislavdragonenkov/marketplace/internal/service/storestats"
)

// Dependencies — собранное ядро жизненного цикла заказа.
type Dependencies struct {
	Orders        *orders.Service
	Notifications domain.NotificationRepository
	Idempotency   domain.IdempotencyRepository
	Outbox        domain.OutboxRepository
	Metrics       *metrics.LifecycleMetrics
	Logger        *log.Entry
}

// NewDependencies собирает ядро поверх in-memory хранилища с отдельным реестром метрик.
func NewDependencies(logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}
	m := metrics.NewLifecycleMetricsWithRegisterer(prometheus.NewRegistry())
	return wireDependencies(newMemoryDependencies(), DefaultConfig(), m, logger)
}

// wireDependencies связывает ledger, обработчик переходов, агрегатор магазина и диспетчер уведомлений.
// Lifecycle выполняется в транзакции изменения заказа, уведомления уходят после коммита.
func wireDependencies(rt *runtimeDependencies, cfg Config, m *metrics.LifecycleMetrics, logger *log.Entry) *Dependencies {
	ledger := stock.NewLedger(rt.productRepo,
		stock.WithLogger(logger.WithField("component", "stock-ledger")),
		stock.WithMetrics(m),
	)

	registry := events.NewRegistry(logger)
	lifecycle.NewHandler(lifecycle.Options{
		Stock:    ledger,
		Stats:    storestats.NewAggregator(rt.storeRepo, logger.WithField("component", "store-stats"), m),
		Timeline: rt.timelineRepo,
		Outbox:   rt.outboxRepo,
		Logger:   logger.WithField("component", "lifecycle"),
		Metrics:  m,
	}).Register(registry)

	bus := events.NewBus(logger)
	notification.NewDispatcher(notification.Options{
		Orders:        rt.repo,
		Stores:        rt.storeRepo,
		Users:         rt.userRepo,
		Notifications: rt.notificationRepo,
		Mail:          mail.NewOutboxQueue(rt.outboxRepo),
		AppURL:        cfg.AppURL,
		Logger:        logger.WithField("component", "notification"),
		Metrics:       m,
	}).Register(bus)

	service := orders.NewService(orders.Dependencies{
		Scope:      rt.scope,
		Orders:     rt.repo,
		Products:   rt.productRepo,
		Timeline:   rt.timelineRepo,
		Stock:      ledger,
		Handlers:   registry,
		Bus:        bus,
		PaymentTTL: cfg.OrderPaymentTTL,
		Logger:     logger.WithField("component", "orders"),
	})

	return &Dependencies{
		Orders:        service,
		Notifications: rt.notificationRepo,
		Idempotency:   rt.idempotencyRepo,
		Outbox:        rt.outboxRepo,
		Metrics:       m,
		Logger:        logger,
	}
}
