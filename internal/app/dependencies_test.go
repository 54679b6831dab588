package app

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
	"github.com/vladislavdragonenkov/marketplace/internal/service/orders"
)

func TestNewDependencies(t *testing.T) {
	logger := log.WithField("test", "dependencies")
	deps := NewDependencies(logger)

	if deps == nil {
		t.Fatal("NewDependencies should not return nil")
	}
	if deps.Orders == nil {
		t.Error("Orders should not be nil")
	}
	if deps.Notifications == nil || deps.Idempotency == nil || deps.Outbox == nil {
		t.Error("repositories should not be nil")
	}
	if deps.Metrics == nil {
		t.Error("Metrics should not be nil")
	}
	if deps.Logger != logger {
		t.Error("Logger should be the same instance as passed")
	}
}

func TestNewDependencies_WithNilLogger(t *testing.T) {
	deps := NewDependencies(nil)
	if deps.Logger == nil {
		t.Error("Logger should be initialized even when nil is passed")
	}
}

func TestNewDependencies_IndependentInstances(t *testing.T) {
	deps1 := NewDependencies(nil)
	deps2 := NewDependencies(nil)

	if deps1.Orders == deps2.Orders {
		t.Error("order services should be independent")
	}
	if deps1.Outbox == deps2.Outbox {
		t.Error("outbox repositories should be independent")
	}
}

func TestWireDependencies_LifecycleEndToEnd(t *testing.T) {
	ctx := context.Background()
	rt := newMemoryDependencies()
	seedTestCatalog(t, rt, 20)

	deps := wireDependencies(rt, DefaultConfig(), metrics.NewLifecycleMetricsWithRegisterer(prometheus.NewRegistry()), log.WithField("test", "wire"))

	order, err := deps.Orders.CreateOrder(ctx, orders.CreateInput{
		CustomerID: "customer-1",
		StoreID:    "store-1",
		Items:      []orders.CreateItem{{ProductID: "teh", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.GrandTotalMinor != 10000 {
		t.Fatalf("expected grand total 10000, got %d", order.GrandTotalMinor)
	}

	product, err := rt.productRepo.Get(ctx, "teh")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if *product.Stock != 18 {
		t.Fatalf("expected stock 18 after order, got %d", *product.Stock)
	}

	if _, err := deps.Orders.UpdateStatus(ctx, orders.StatusUpdate{OrderID: order.ID, Status: domain.OrderStatusCancelled}); err != nil {
		t.Fatalf("cancel order: %v", err)
	}

	product, err = rt.productRepo.Get(ctx, "teh")
	if err != nil {
		t.Fatalf("get product after cancel: %v", err)
	}
	if *product.Stock != 20 {
		t.Fatalf("expected stock restored to 20, got %d", *product.Stock)
	}

	unread, err := rt.notificationRepo.CountUnread(ctx, "customer-1")
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if unread != 1 {
		t.Fatalf("expected one status notification, got %d", unread)
	}

	stats, err := rt.outboxRepo.Stats(ctx)
	if err != nil {
		t.Fatalf("outbox stats: %v", err)
	}
	// order.created, order.updated и письмо покупателю.
	if stats.PendingCount != 3 {
		t.Fatalf("expected 3 pending outbox records, got %d", stats.PendingCount)
	}
}
