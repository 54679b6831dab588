package app

import "time"

// StorageDriver выбирает реализацию репозиториев.
type StorageDriver string

const (
	StorageDriverMemory   StorageDriver = "memory"
	StorageDriverPostgres StorageDriver = "postgres"
)

// Config описывает настройки запуска сервиса заказов.
type Config struct {
	GRPCAddr    string
	MetricsAddr string

	StorageDriver       StorageDriver
	PostgresDSN         string
	PostgresAutoMigrate bool
	// JSON с пользователями, магазинами и товарами для начальной загрузки.
	SeedFile string

	// Брокеры через запятую; пустая строка отключает Kafka.
	KafkaBrokers string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
	OutboxRetryDelay   time.Duration
	// OutboxMaxPending ограничивает backlog outbox; при превышении CreateOrder отклоняется. 0 отключает проверку.
	OutboxMaxPending int
	// Возраст старейшей pending записи, после которого /healthz показывает degraded. 0 отключает.
	OutboxStaleAfter time.Duration

	IdempotencyCleanupInterval  time.Duration
	IdempotencyCleanupBatchSize int

	OrderPaymentTTL      time.Duration
	OrderExpiryInterval  time.Duration
	OrderExpiryBatchSize int

	// Базовый адрес витрины для ссылок в уведомлениях.
	AppURL       string
	OTLPEndpoint string
}

// DefaultConfig возвращает настройки для локального запуска.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:                    ":50051",
		MetricsAddr:                 ":9090",
		StorageDriver:               StorageDriverMemory,
		PostgresAutoMigrate:         true,
		OutboxPollInterval:          time.Second,
		OutboxBatchSize:             100,
		OutboxMaxAttempts:           3,
		OutboxRetryDelay:            200 * time.Millisecond,
		OutboxMaxPending:            10000,
		OutboxStaleAfter:            5 * time.Minute,
		IdempotencyCleanupInterval:  time.Hour,
		IdempotencyCleanupBatchSize: 1000,
		OrderPaymentTTL:             24 * time.Hour,
		OrderExpiryInterval:         time.Minute,
		OrderExpiryBatchSize:        100,
	}
}
