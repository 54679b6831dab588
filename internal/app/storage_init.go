package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/marketplace/internal/health"
	"github.com/vladislavdragonenkov/marketplace/internal/storage/memory"
	"github.com/vladislavdragonenkov/marketplace/internal/storage/postgres"
	"github.com/vladislavdragonenkov/marketplace/internal/transaction"
)

const storagePingTimeout = 2 * time.Second

// runtimeDependencies — репозитории выбранного хранилища.
type runtimeDependencies struct {
	scope            transaction.Scope
	repo             domain.OrderRepository
	productRepo      domain.ProductRepository
	storeRepo        domain.StoreRepository
	userRepo         domain.UserRepository
	notificationRepo domain.NotificationRepository
	timelineRepo     domain.TimelineRepository
	outboxRepo       domain.OutboxRepository
	idempotencyRepo  domain.IdempotencyRepository

	storageChecker healthcheck.Checker
	closeFn        func() error
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	driver := StorageDriver(strings.ToLower(strings.TrimSpace(string(cfg.StorageDriver))))
	if driver == "" {
		driver = StorageDriverMemory
	}

	switch driver {
	case StorageDriverMemory:
		logger.Info("используем in-memory хранилище")
		return newMemoryDependencies(), nil
	case StorageDriverPostgres:
		return initPostgresDependencies(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func newMemoryDependencies() *runtimeDependencies {
	orders := memory.NewOrderRepository()
	return &runtimeDependencies{
		scope:            memory.NewTxScope(),
		repo:             orders,
		productRepo:      memory.NewProductRepository(),
		storeRepo:        memory.NewStoreRepository(orders),
		userRepo:         memory.NewUserRepository(),
		notificationRepo: memory.NewNotificationRepository(),
		timelineRepo:     memory.NewTimelineRepository(),
		outboxRepo:       memory.NewOutboxRepository(),
		idempotencyRepo:  memory.NewIdempotencyRepository(),
	}
}

func initPostgresDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	dsn := strings.TrimSpace(cfg.PostgresDSN)
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is required for storage driver %q", StorageDriverPostgres)
	}

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if cfg.PostgresAutoMigrate {
		if err := store.MigrateUp(ctx, 0); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		version, applied, err := store.MigrationStatus(ctx)
		if err == nil {
			logger.WithFields(log.Fields{"version": version, "applied": applied}).Info("миграции применены")
		}
	}

	logger.Info("используем PostgreSQL хранилище")

	return &runtimeDependencies{
		scope:            postgres.NewTxScope(store),
		repo:             postgres.NewOrderRepository(store),
		productRepo:      postgres.NewProductRepository(store),
		storeRepo:        postgres.NewStoreRepository(store),
		userRepo:         postgres.NewUserRepository(store),
		notificationRepo: postgres.NewNotificationRepository(store),
		timelineRepo:     postgres.NewTimelineRepository(store),
		outboxRepo:       postgres.NewOutboxRepository(store),
		idempotencyRepo:  postgres.NewIdempotencyRepository(store),
		storageChecker: healthcheck.CheckFunc(func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, storagePingTimeout)
			defer cancel()
			return store.Ping(pingCtx)
		}),
		closeFn: store.Close,
	}, nil
}
