package lifecycle_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/events"
	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
	"github.com/vladislavdragonenkov/marketplace/internal/service/lifecycle"
	"github.com/vladislavdragonenkov/marketplace/internal/service/stock"
	"github.com/vladislavdragonenkov/marketplace/internal/service/storestats"
	"github.com/vladislavdragonenkov/marketplace/internal/storage/memory"
)

type countingRecomputer struct {
	inner   lifecycle.StoreRecomputer
	storeID []string
}

func (c *countingRecomputer) Recompute(ctx context.Context, storeID string) error {
	c.storeID = append(c.storeID, storeID)
	return c.inner.Recompute(ctx, storeID)
}

type env struct {
	orders   *memory.OrderRepository
	products domain.ProductRepository
	stores   domain.StoreRepository
	timeline domain.TimelineRepository
	outbox   *memory.OutboxRepository
	stats    *countingRecomputer
	registry *events.Registry
	scope    *memory.TxScope
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	e := &env{
		orders:   memory.NewOrderRepository(),
		products: memory.NewProductRepository(),
		timeline: memory.NewTimelineRepository(),
		outbox:   memory.NewOutboxRepository(),
		registry: events.NewRegistry(nil),
		scope:    memory.NewTxScope(),
	}
	e.stores = memory.NewStoreRepository(e.orders)
	require.NoError(t, e.stores.Create(ctx, domain.Store{ID: "store-1", OwnerUserID: "owner-1", Name: "Toko"}))
	stockValue := int32(5)
	require.NoError(t, e.products.Create(ctx, domain.Product{ID: "p-1", StoreID: "store-1", Name: "Kopi", Stock: &stockValue}))

	m := metrics.NewLifecycleMetricsWithRegisterer(prometheus.NewRegistry())
	e.stats = &countingRecomputer{inner: storestats.NewAggregator(e.stores, nil, m)}
	lifecycle.NewHandler(lifecycle.Options{
		Stock:    stock.NewLedger(e.products),
		Stats:    e.stats,
		Timeline: e.timeline,
		Outbox:   e.outbox,
		Metrics:  m,
	}).Register(e.registry)
	return e
}

func (e *env) seed(t *testing.T, status domain.OrderStatus) domain.Order {
	t.Helper()
	order := domain.Order{
		ID:            "order-1",
		Number:        "ORD-000001",
		CustomerID:    "customer-1",
		StoreID:       "store-1",
		Status:        status,
		PaymentStatus: domain.PaymentStatusPaid,
		Items:         []domain.OrderItem{{ID: "item-1", ProductID: "p-1", ProductName: "Kopi", Quantity: 2, UnitPriceMinor: 100}},
	}
	order.Recalculate()
	require.NoError(t, e.orders.Create(context.Background(), order))
	stored, err := e.orders.Get(context.Background(), order.ID)
	require.NoError(t, err)
	return stored
}

// transition сохраняет новый статус и публикует событие в одной транзакции.
func (e *env) transition(t *testing.T, to domain.OrderStatus) error {
	t.Helper()
	return e.scope.Execute(context.Background(), func(ctx context.Context) error {
		order, err := e.orders.Get(ctx, "order-1")
		if err != nil {
			return err
		}
		previous, previousPayment := order.Status, order.PaymentStatus
		order.Status = to
		if err := e.orders.Save(ctx, order); err != nil {
			return err
		}
		saved, err := e.orders.Get(ctx, order.ID)
		if err != nil {
			return err
		}
		publisher := events.NewTransactionalPublisher(e.registry, 0)
		if err := publisher.Publish(ctx, domain.NewOrderUpdated(saved, previous, previousPayment)); err != nil {
			return err
		}
		return publisher.Flush(ctx)
	})
}

func (e *env) remove(t *testing.T) {
	t.Helper()
	err := e.scope.Execute(context.Background(), func(ctx context.Context) error {
		order, err := e.orders.Get(ctx, "order-1")
		if err != nil {
			return err
		}
		if err := e.orders.Delete(ctx, order.ID); err != nil {
			return err
		}
		publisher := events.NewTransactionalPublisher(e.registry, 0)
		_ = publisher.Publish(ctx, domain.NewOrderDeleted(order))
		return publisher.Flush(ctx)
	})
	require.NoError(t, err)
}

func (e *env) stockLevel(t *testing.T) int32 {
	t.Helper()
	p, err := e.products.Get(context.Background(), "p-1")
	require.NoError(t, err)
	return *p.Stock
}

func (e *env) transactions(t *testing.T) int64 {
	t.Helper()
	s, err := e.stores.Get(context.Background(), "store-1")
	require.NoError(t, err)
	return s.TransactionsCount
}

func TestHandler_CancelFromActiveRestoresStockOnce(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.OrderStatusProcessing)

	require.NoError(t, e.transition(t, domain.OrderStatusCancelled))
	assert.Equal(t, int32(7), e.stockLevel(t))
	assert.Equal(t, int64(0), e.transactions(t))
	assert.Equal(t, []string{"store-1"}, e.stats.storeID)

	// Повторное сохранение того же статуса не является переходом.
	require.NoError(t, e.transition(t, domain.OrderStatusCancelled))
	assert.Equal(t, int32(7), e.stockLevel(t))
	assert.Len(t, e.stats.storeID, 1)
}

func TestHandler_CancelFromInactiveDoesNotRestore(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.OrderStatus("refunded"))

	require.NoError(t, e.transition(t, domain.OrderStatusCancelled))
	assert.Equal(t, int32(5), e.stockLevel(t))
	assert.Len(t, e.stats.storeID, 1)
}

func TestHandler_NonCancelTransitionsOnlyRecompute(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.OrderStatusShipped)

	require.NoError(t, e.transition(t, domain.OrderStatusDelivered))
	assert.Equal(t, int64(1), e.transactions(t))
	require.NoError(t, e.transition(t, domain.OrderStatusCompleted))
	assert.Equal(t, int64(1), e.transactions(t))

	assert.Len(t, e.stats.storeID, 2)
	assert.Equal(t, int32(5), e.stockLevel(t))
}

func TestHandler_IllegalTransitionIsAccepted(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.OrderStatusCompleted)

	require.NoError(t, e.transition(t, domain.OrderStatusPendingPayment))
	assert.Equal(t, int64(0), e.transactions(t))
	assert.Equal(t, int32(5), e.stockLevel(t))
}

func TestHandler_DeleteActiveRestoresStock(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.OrderStatusShipped)

	e.remove(t)
	assert.Equal(t, int32(7), e.stockLevel(t))
	assert.Len(t, e.stats.storeID, 1)
}

func TestHandler_DeleteCancelledDoesNotRestore(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.OrderStatusProcessing)
	require.NoError(t, e.transition(t, domain.OrderStatusCancelled))
	require.Equal(t, int32(7), e.stockLevel(t))

	e.remove(t)
	assert.Equal(t, int32(7), e.stockLevel(t))
	assert.Len(t, e.stats.storeID, 2)
}

func TestHandler_CreatedCompletedRecomputes(t *testing.T) {
	cases := []struct {
		status     domain.OrderStatus
		recomputes int
	}{
		{domain.OrderStatusPendingPayment, 0},
		{domain.OrderStatusCompleted, 1},
		{domain.OrderStatusDelivered, 1},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			e := newEnv(t)
			order := e.seed(t, tc.status)

			publisher := events.NewTransactionalPublisher(e.registry, 0)
			require.NoError(t, publisher.Publish(context.Background(), domain.NewOrderCreated(order)))
			require.NoError(t, publisher.Flush(context.Background()))

			assert.Len(t, e.stats.storeID, tc.recomputes)
			assert.Equal(t, int64(tc.recomputes), e.transactions(t))
		})
	}
}

func TestHandler_WritesTimelineAndOutbox(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.OrderStatusProcessing)

	require.NoError(t, e.transition(t, domain.OrderStatusCancelled))

	timeline, err := e.timeline.List(context.Background(), "order-1")
	require.NoError(t, err)
	types := make([]string, 0, len(timeline))
	for _, ev := range timeline {
		types = append(types, ev.Type)
	}
	assert.ElementsMatch(t, []string{domain.TimelineOrderStockRestored, domain.TimelineOrderStatusChanged}, types)

	pending := e.outbox.AllPending()
	require.Len(t, pending, 1)
	assert.Equal(t, domain.OutboxAggregateOrder, pending[0].AggregateType)
	assert.Equal(t, domain.EventOrderUpdated, pending[0].EventType)

	var payload domain.OrderEventPayload
	require.NoError(t, json.Unmarshal(pending[0].Payload, &payload))
	assert.Equal(t, "processing", payload.PreviousStatus)
	assert.Equal(t, "cancelled", payload.Status)
	assert.Equal(t, "ORD-000001", payload.OrderNumber)
}

type failingRestorer struct{}

func (failingRestorer) RestoreStock(context.Context, domain.Order) error {
	return errors.New("lock timeout")
}

func TestHandler_FailureRollsBackTransition(t *testing.T) {
	e := newEnv(t)
	e.registry = events.NewRegistry(nil)
	lifecycle.NewHandler(lifecycle.Options{
		Stock:    failingRestorer{},
		Stats:    e.stats,
		Timeline: e.timeline,
		Outbox:   e.outbox,
	}).Register(e.registry)
	e.seed(t, domain.OrderStatusProcessing)

	err := e.transition(t, domain.OrderStatusCancelled)
	require.Error(t, err)

	order, getErr := e.orders.Get(context.Background(), "order-1")
	require.NoError(t, getErr)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.Empty(t, e.outbox.AllPending())
}

type otherEvent struct {
	events.BaseEvent
}

func TestHandler_RejectsUnexpectedEventType(t *testing.T) {
	handler := lifecycle.NewHandler(lifecycle.Options{})
	err := handler.Handle(context.Background(), otherEvent{BaseEvent: events.NewBaseEvent(domain.EventOrderCreated, "order-1")})
	assert.Error(t, err)
}
