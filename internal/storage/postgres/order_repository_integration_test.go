package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

func TestOrderRepository_PostgresCreateGetListAndSave(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Round(time.Microsecond)
	order1 := sampleOrder("order-1", "customer-1", now.Add(-2*time.Minute))
	order2 := sampleOrder("order-2", "customer-1", now.Add(-time.Minute))

	if err := repo.Create(ctx, order1); err != nil {
		t.Fatalf("create order1: %v", err)
	}
	if err := repo.Create(ctx, order2); err != nil {
		t.Fatalf("create order2: %v", err)
	}

	got, err := repo.Get(ctx, order1.ID)
	if err != nil {
		t.Fatalf("get order1: %v", err)
	}
	if got.ID != order1.ID || got.Number != order1.Number || got.Status != order1.Status {
		t.Fatalf("unexpected order payload: %+v", got)
	}
	if got.GrandTotalMinor != order1.GrandTotalMinor {
		t.Fatalf("unexpected grand total: got=%d want=%d", got.GrandTotalMinor, order1.GrandTotalMinor)
	}
	if len(got.Items) != len(order1.Items) {
		t.Fatalf("unexpected items count: got=%d want=%d", len(got.Items), len(order1.Items))
	}
	if got.Items[0].ProductID != "" {
		t.Fatalf("expected item without product reference, got %q", got.Items[0].ProductID)
	}

	listed, err := repo.ListByCustomer(ctx, "customer-1", 1)
	if err != nil {
		t.Fatalf("list by customer with limit: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != order2.ID {
		t.Fatalf("unexpected list result with limit: %+v", listed)
	}

	all, err := repo.ListByCustomer(ctx, "customer-1", 0)
	if err != nil {
		t.Fatalf("list by customer without limit: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(all))
	}

	got.Status = domain.OrderStatusProcessing
	got.PaymentStatus = domain.PaymentStatusPaid
	got.UpdatedAt = now.Add(time.Minute)
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("save order: %v", err)
	}

	updated, err := repo.Get(ctx, order1.ID)
	if err != nil {
		t.Fatalf("get updated order: %v", err)
	}
	if updated.Status != domain.OrderStatusProcessing || updated.PaymentStatus != domain.PaymentStatusPaid {
		t.Fatalf("unexpected statuses after save: %s/%s", updated.Status, updated.PaymentStatus)
	}
	if updated.Version != got.Version+1 {
		t.Fatalf("unexpected version after save: got=%d want=%d", updated.Version, got.Version+1)
	}
}

func TestOrderRepository_PostgresNumberingExpiryAndDelete(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	first, err := repo.NextNumber(ctx)
	if err != nil {
		t.Fatalf("next number: %v", err)
	}
	second, err := repo.NextNumber(ctx)
	if err != nil {
		t.Fatalf("next number: %v", err)
	}
	if second <= first {
		t.Fatalf("expected increasing numbers, got %d then %d", first, second)
	}

	now := time.Now().UTC().Round(time.Microsecond)
	expired := sampleOrder("order-expired", "customer-3", now.Add(-time.Hour))
	expired.ExpiresAt = now.Add(-time.Minute)
	fresh := sampleOrder("order-fresh", "customer-3", now)
	fresh.ExpiresAt = now.Add(time.Hour)

	for _, o := range []domain.Order{expired, fresh} {
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("create %s: %v", o.ID, err)
		}
	}

	due, err := repo.ListExpired(ctx, now, 10)
	if err != nil {
		t.Fatalf("list expired: %v", err)
	}
	if len(due) != 1 || due[0].ID != expired.ID {
		t.Fatalf("unexpected expired orders: %+v", due)
	}

	if err := repo.Delete(ctx, expired.ID); err != nil {
		t.Fatalf("delete order: %v", err)
	}
	if _, err := repo.Get(ctx, expired.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, expired.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound on second delete, got %v", err)
	}
}

func TestOrderRepository_PostgresErrors(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Round(time.Microsecond)
	base := sampleOrder("order-errors", "customer-2", now)

	if _, err := repo.Get(ctx, "missing-order"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	if err := repo.Save(ctx, base); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound on save missing, got %v", err)
	}

	if err := repo.Create(ctx, base); err != nil {
		t.Fatalf("create base order: %v", err)
	}
	if err := repo.Create(ctx, base); !errors.Is(err, domain.ErrOrderVersionConflict) {
		t.Fatalf("expected ErrOrderVersionConflict on duplicate create, got %v", err)
	}

	stale := base
	stale.Status = domain.OrderStatusCancelled
	stale.UpdatedAt = now.Add(time.Minute)
	stale.Version = 42
	if err := repo.Save(ctx, stale); !errors.Is(err, domain.ErrOrderVersionConflict) {
		t.Fatalf("expected ErrOrderVersionConflict on stale save, got %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected unique violation for code 23505")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "22001"}) {
		t.Fatal("unexpected unique violation for non-unique code")
	}
	if isUniqueViolation(errors.New("plain error")) {
		t.Fatal("plain error must not be unique violation")
	}
}

func TestIsNumericOverflow(t *testing.T) {
	if !isNumericOverflow(fmt.Errorf("increment: %w", &pgconn.PgError{Code: "22003"})) {
		t.Fatal("expected numeric overflow for wrapped code 22003")
	}
	if isNumericOverflow(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("unique violation must not be numeric overflow")
	}
}

func sampleOrder(id, customerID string, createdAt time.Time) domain.Order {
	order := domain.Order{
		ID:            id,
		Number:        "ORD-" + id,
		CustomerID:    customerID,
		StoreID:       "store-1",
		Status:        domain.OrderStatusPendingPayment,
		PaymentStatus: domain.PaymentStatusPending,
		ShippingMinor: 20,
		Items: []domain.OrderItem{
			{
				ID:             id + "-item-1",
				ProductName:    "Kopi Arabika",
				Quantity:       2,
				UnitPriceMinor: 150,
			},
		},
		OrderedAt: createdAt,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	order.Recalculate()
	return order
}
