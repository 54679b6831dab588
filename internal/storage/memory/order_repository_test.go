package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/storage/memory"
)

func newOrder() domain.Order {
	now := time.Now().UTC()
	order := domain.Order{
		ID:            "order-1",
		Number:        domain.FormatOrderNumber(1),
		CustomerID:    "customer-1",
		StoreID:       "store-1",
		Status:        domain.OrderStatusPendingPayment,
		PaymentStatus: domain.PaymentStatusPending,
		Items: []domain.OrderItem{
			{ID: "item-1", ProductID: "product-1", ProductName: "Kopi", Quantity: 5, UnitPriceMinor: 100},
		},
		OrderedAt: now,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}
	order.Recalculate()
	return order
}

func TestOrderRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	order := newOrder()

	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID {
		t.Fatalf("expected id %s, got %s", order.ID, stored.ID)
	}
	if stored.GrandTotalMinor != 500 {
		t.Fatalf("expected grand total 500, got %d", stored.GrandTotalMinor)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_NextNumber(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()

	first, err := repo.NextNumber(ctx)
	if err != nil {
		t.Fatalf("next number failed: %v", err)
	}
	second, err := repo.NextNumber(ctx)
	if err != nil {
		t.Fatalf("next number failed: %v", err)
	}
	if second != first+1 {
		t.Fatalf("expected sequential numbers, got %d and %d", first, second)
	}
}

func TestOrderRepository_ListByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	order := newOrder()
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	orders, err := repo.ListByCustomer(ctx, order.CustomerID, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
}

func TestOrderRepository_ListExpired(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()

	expired := newOrder()
	expired.ID = "order-expired"
	expired.ExpiresAt = time.Now().UTC().Add(-time.Minute)

	paid := newOrder()
	paid.ID = "order-paid"
	paid.PaymentStatus = domain.PaymentStatusPaid
	paid.ExpiresAt = time.Now().UTC().Add(-time.Minute)

	fresh := newOrder()
	fresh.ID = "order-fresh"

	for _, o := range []domain.Order{expired, paid, fresh} {
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("create %s failed: %v", o.ID, err)
		}
	}

	orders, err := repo.ListExpired(ctx, time.Now().UTC(), 10)
	if err != nil {
		t.Fatalf("list expired failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != expired.ID {
		t.Fatalf("expected only %s, got %+v", expired.ID, orders)
	}
}

func TestOrderRepository_Save(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	order := newOrder()
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	stored.Status = domain.OrderStatusProcessing
	if err := repo.Save(ctx, stored); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	updated, err := repo.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if updated.Status != domain.OrderStatusProcessing {
		t.Fatalf("expected status processing, got %s", updated.Status)
	}
	if updated.Version != stored.Version+1 {
		t.Fatalf("expected version increment, got %d", updated.Version)
	}
}

func TestOrderRepository_SaveVersionConflict(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	order := newOrder()
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	order.Version = 42
	if err := repo.Save(ctx, order); !errors.Is(err, domain.ErrOrderVersionConflict) {
		t.Fatalf("expected version conflict error, got %v", err)
	}
}

func TestOrderRepository_CountByStore(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()

	for i, status := range []domain.OrderStatus{
		domain.OrderStatusCompleted,
		domain.OrderStatusDelivered,
		domain.OrderStatusCancelled,
	} {
		order := newOrder()
		order.ID = order.ID + "-" + string(rune('a'+i))
		order.Status = status
		if err := repo.Create(ctx, order); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	if got := repo.CountByStore("store-1", domain.CompletedStatuses()); got != 2 {
		t.Fatalf("expected 2 completed orders, got %d", got)
	}
	if got := repo.CountByStore("store-2", domain.CompletedStatuses()); got != 0 {
		t.Fatalf("expected 0 orders for other store, got %d", got)
	}
}
