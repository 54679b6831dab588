package storestats_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
	"github.com/vladislavdragonenkov/marketplace/internal/service/storestats"
	"github.com/vladislavdragonenkov/marketplace/internal/storage/memory"
)

func seedOrder(t *testing.T, orders *memory.OrderRepository, id, storeID string, status domain.OrderStatus) {
	t.Helper()
	order := domain.Order{
		ID:            id,
		CustomerID:    "customer-1",
		StoreID:       storeID,
		Status:        status,
		PaymentStatus: domain.PaymentStatusPaid,
		Items:         []domain.OrderItem{{ID: id + "-item", ProductName: "Kopi", Quantity: 1, UnitPriceMinor: 100}},
	}
	order.Recalculate()
	require.NoError(t, orders.Create(context.Background(), order))
}

func transactions(t *testing.T, stores domain.StoreRepository, id string) int64 {
	t.Helper()
	store, err := stores.Get(context.Background(), id)
	require.NoError(t, err)
	return store.TransactionsCount
}

func TestAggregator_RecomputeCountsCompletedAndDelivered(t *testing.T) {
	orders := memory.NewOrderRepository()
	stores := memory.NewStoreRepository(orders)
	require.NoError(t, stores.Create(context.Background(), domain.Store{ID: "store-1", OwnerUserID: "owner-1", Name: "Toko Kopi"}))

	seedOrder(t, orders, "o1", "store-1", domain.OrderStatusCompleted)
	seedOrder(t, orders, "o2", "store-1", domain.OrderStatusDelivered)
	seedOrder(t, orders, "o3", "store-1", domain.OrderStatusShipped)
	seedOrder(t, orders, "o4", "store-1", domain.OrderStatusCancelled)
	seedOrder(t, orders, "o5", "store-2", domain.OrderStatusCompleted)

	aggregator := storestats.NewAggregator(stores, nil, metrics.NewLifecycleMetricsWithRegisterer(prometheus.NewRegistry()))
	require.NoError(t, aggregator.Recompute(context.Background(), "store-1"))
	assert.Equal(t, int64(2), transactions(t, stores, "store-1"))

	// Повторный пересчёт без изменений даёт то же значение.
	require.NoError(t, aggregator.Recompute(context.Background(), "store-1"))
	assert.Equal(t, int64(2), transactions(t, stores, "store-1"))
}

func TestAggregator_RecomputeFollowsStatusChanges(t *testing.T) {
	ctx := context.Background()
	orders := memory.NewOrderRepository()
	stores := memory.NewStoreRepository(orders)
	require.NoError(t, stores.Create(ctx, domain.Store{ID: "store-1", Name: "Toko"}))
	seedOrder(t, orders, "o1", "store-1", domain.OrderStatusCompleted)

	aggregator := storestats.NewAggregator(stores, nil, nil)
	require.NoError(t, aggregator.Recompute(ctx, "store-1"))
	require.Equal(t, int64(1), transactions(t, stores, "store-1"))

	order, err := orders.Get(ctx, "o1")
	require.NoError(t, err)
	order.Status = domain.OrderStatusCancelled
	require.NoError(t, orders.Save(ctx, order))

	require.NoError(t, aggregator.Recompute(ctx, "store-1"))
	assert.Equal(t, int64(0), transactions(t, stores, "store-1"))
}

func TestAggregator_RecomputeSkipsEmptyAndMissingStore(t *testing.T) {
	orders := memory.NewOrderRepository()
	aggregator := storestats.NewAggregator(memory.NewStoreRepository(orders), nil, nil)

	assert.NoError(t, aggregator.Recompute(context.Background(), ""))
	assert.NoError(t, aggregator.Recompute(context.Background(), "missing"))
}

type brokenStores struct {
	domain.StoreRepository
}

func (brokenStores) RecomputeTransactions(context.Context, string, []domain.OrderStatus) (int64, error) {
	return 0, errors.New("deadlock detected")
}

func TestAggregator_RecomputePropagatesStorageErrors(t *testing.T) {
	aggregator := storestats.NewAggregator(brokenStores{}, nil, nil)
	err := aggregator.Recompute(context.Background(), "store-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store-1")
}
