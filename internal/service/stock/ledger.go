package stock

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
	"github.com/vladislavdragonenkov/marketplace/internal/telemetry"
)

const (
	directionReduce  = "reduce"
	directionRestore = "restore"
)

// LedgerOptions задаёт зависимости Ledger.
type LedgerOptions struct {
	Logger  *log.Entry
	Metrics *metrics.LifecycleMetrics
}

// Option настраивает Ledger.
type Option func(*LedgerOptions)

// WithLogger задаёт logger.
func WithLogger(logger *log.Entry) Option {
	return func(opts *LedgerOptions) {
		opts.Logger = logger
	}
}

// WithMetrics задаёт метрики.
func WithMetrics(m *metrics.LifecycleMetrics) Option {
	return func(opts *LedgerOptions) {
		opts.Metrics = m
	}
}

// Ledger — единственный владелец остатков товаров.
// Каждое изменение выполняется одним атомарным UPDATE в репозитории;
// атомарность всей операции обеспечивает транзакция вызывающего.
type Ledger struct {
	products domain.ProductRepository
	logger   *log.Entry
	metrics  *metrics.LifecycleMetrics
}

// NewLedger создаёт Ledger поверх репозитория товаров.
func NewLedger(products domain.ProductRepository, options ...Option) *Ledger {
	opts := LedgerOptions{}
	for _, option := range options {
		option(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "stock-ledger")
	}

	return &Ledger{
		products: products,
		logger:   logger,
		metrics:  opts.Metrics,
	}
}

// ReduceStock списывает количество каждой позиции и возвращает сигналы низкого остатка.
// Дедупликации нет: вызывающий обязан вызвать метод ровно один раз для заказа.
func (l *Ledger) ReduceStock(ctx context.Context, order domain.Order) ([]domain.LowStockSignal, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "stock.reduce")
	defer span.End()
	span.SetAttributes(attribute.String("order.id", order.ID), attribute.Int("order.items", len(order.Items)))

	var signals []domain.LowStockSignal
	for _, item := range order.Items {
		if !item.HasProduct() {
			continue
		}

		level, err := l.products.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			if domain.IsDataGap(err) {
				l.skip(order.ID, item, directionReduce, err)
				continue
			}
			l.record(directionReduce, "failed")
			span.RecordError(err)
			span.SetStatus(codes.Error, "reduce stock failed")
			return nil, fmt.Errorf("reduce stock for product %s: %w", item.ProductID, err)
		}
		l.record(directionReduce, "ok")

		if level.IsLow() {
			signals = append(signals, domain.LowStockSignal{
				ProductID:    level.ProductID,
				ProductName:  level.ProductName,
				StoreID:      level.StoreID,
				CurrentStock: level.Stock,
			})
			if l.metrics != nil {
				l.metrics.RecordLowStockSignal()
			}
		}
	}

	span.SetAttributes(attribute.Int("stock.low_signals", len(signals)))
	return signals, nil
}

// RestoreStock возвращает количество каждой позиции на склад. Переполнение int32 прерывает возврат.
func (l *Ledger) RestoreStock(ctx context.Context, order domain.Order) error {
	ctx, span := telemetry.Tracer().Start(ctx, "stock.restore")
	defer span.End()
	span.SetAttributes(attribute.String("order.id", order.ID), attribute.Int("order.items", len(order.Items)))

	for _, item := range order.Items {
		if !item.HasProduct() {
			continue
		}

		if _, err := l.products.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			if domain.IsDataGap(err) {
				l.skip(order.ID, item, directionRestore, err)
				continue
			}
			l.record(directionRestore, "failed")
			span.RecordError(err)
			span.SetStatus(codes.Error, "restore stock failed")
			return fmt.Errorf("restore stock for product %s: %w", item.ProductID, err)
		}
		l.record(directionRestore, "ok")
	}

	return nil
}

func (l *Ledger) skip(orderID string, item domain.OrderItem, direction string, err error) {
	l.logger.WithError(err).WithFields(log.Fields{
		"order_id":   orderID,
		"product_id": item.ProductID,
		"direction":  direction,
	}).Debug("stock adjustment skipped")
	l.record(direction, "skipped")
}

func (l *Ledger) record(direction, result string) {
	if l.metrics != nil {
		l.metrics.RecordStockAdjustment(direction, result)
	}
}
