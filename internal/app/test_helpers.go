package app

import (
	"context"
	"testing"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

// seedTestCatalog заводит покупателя, магазин и товар с остатком stock.
func seedTestCatalog(t *testing.T, rt *runtimeDependencies, stock int32) {
	t.Helper()
	ctx := context.Background()

	if err := rt.userRepo.Create(ctx, domain.User{ID: "customer-1", Name: "Siti", Email: "siti@example.com"}); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if err := rt.userRepo.Create(ctx, domain.User{ID: "owner-1", Name: "Agus", Email: "agus@example.com"}); err != nil {
		t.Fatalf("create owner: %v", err)
	}
	if err := rt.storeRepo.Create(ctx, domain.Store{ID: "store-1", OwnerUserID: "owner-1", Name: "Warung Teh"}); err != nil {
		t.Fatalf("create store: %v", err)
	}
	if err := rt.productRepo.Create(ctx, domain.Product{ID: "teh", StoreID: "store-1", Name: "Teh Melati", PriceMinor: 5000, Stock: &stock}); err != nil {
		t.Fatalf("create product: %v", err)
	}
}
