// Package storestats пересчитывает производные счётчики магазина из заказов.
package storestats

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
	"github.com/vladislavdragonenkov/marketplace/internal/telemetry"
)

// Aggregator перезаписывает transactions_count магазина количеством завершённых заказов.
// Операция идемпотентна и выполняется одним выражением, поэтому гонки между
// параллельными пересчётами не приводят к расхождению.
type Aggregator struct {
	stores  domain.StoreRepository
	logger  *log.Entry
	metrics *metrics.LifecycleMetrics
}

// NewAggregator создаёт агрегатор. logger и m могут быть nil.
func NewAggregator(stores domain.StoreRepository, logger *log.Entry, m *metrics.LifecycleMetrics) *Aggregator {
	if logger == nil {
		logger = log.WithField("component", "store-stats")
	}
	return &Aggregator{stores: stores, logger: logger, metrics: m}
}

// Recompute пересчитывает transactions_count. Пустой storeID и удалённый магазин пропускаются.
func (a *Aggregator) Recompute(ctx context.Context, storeID string) error {
	if storeID == "" {
		return nil
	}

	ctx, span := telemetry.Tracer().Start(ctx, "store.recompute")
	defer span.End()
	span.SetAttributes(attribute.String("store.id", storeID))

	count, err := a.stores.RecomputeTransactions(ctx, storeID, domain.CompletedStatuses())
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			a.logger.WithField("store_id", storeID).Debug("store not found, recompute skipped")
			a.record("skipped")
			return nil
		}
		a.record("failed")
		span.RecordError(err)
		return fmt.Errorf("recompute transactions for store %s: %w", storeID, err)
	}

	span.SetAttributes(attribute.Int64("store.transactions_count", count))
	a.record("ok")
	return nil
}

func (a *Aggregator) record(result string) {
	if a.metrics != nil {
		a.metrics.RecordStoreRecompute(result)
	}
}
