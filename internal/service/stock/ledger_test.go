package stock_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
	"github.com/vladislavdragonenkov/marketplace/internal/service/stock"
	"github.com/vladislavdragonenkov/marketplace/internal/storage/memory"
)

func stockPtr(v int32) *int32 { return &v }

func seedProducts(t *testing.T, products ...domain.Product) domain.ProductRepository {
	t.Helper()
	repo := memory.NewProductRepository()
	for _, p := range products {
		require.NoError(t, repo.Create(context.Background(), p))
	}
	return repo
}

func currentStock(t *testing.T, repo domain.ProductRepository, id string) int32 {
	t.Helper()
	p, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p.Stock)
	return *p.Stock
}

func orderWith(items ...domain.OrderItem) domain.Order {
	return domain.Order{ID: "order-1", StoreID: "store-1", CustomerID: "customer-1", Items: items}
}

func newLedger(repo domain.ProductRepository) *stock.Ledger {
	return stock.NewLedger(repo, stock.WithMetrics(metrics.NewLifecycleMetricsWithRegisterer(prometheus.NewRegistry())))
}

func TestLedger_ReduceStockEmitsLowStockAtThreshold(t *testing.T) {
	repo := seedProducts(t,
		domain.Product{ID: "p-13", StoreID: "store-1", Name: "Kopi", Stock: stockPtr(13)},
		domain.Product{ID: "p-12", StoreID: "store-1", Name: "Teh", Stock: stockPtr(12)},
		domain.Product{ID: "p-50", StoreID: "store-1", Name: "Gula", Stock: stockPtr(50)},
	)
	ledger := newLedger(repo)

	signals, err := ledger.ReduceStock(context.Background(), orderWith(
		domain.OrderItem{ProductID: "p-13", Quantity: 3},
		domain.OrderItem{ProductID: "p-12", Quantity: 1},
		domain.OrderItem{ProductID: "p-50", Quantity: 5},
	))
	require.NoError(t, err)

	require.Len(t, signals, 1)
	assert.Equal(t, domain.LowStockSignal{ProductID: "p-13", ProductName: "Kopi", StoreID: "store-1", CurrentStock: 10}, signals[0])
	assert.Equal(t, int32(10), currentStock(t, repo, "p-13"))
	assert.Equal(t, int32(11), currentStock(t, repo, "p-12"))
	assert.Equal(t, int32(45), currentStock(t, repo, "p-50"))
}

func TestLedger_ReduceStockToZeroSignals(t *testing.T) {
	repo := seedProducts(t, domain.Product{ID: "p-1", StoreID: "store-1", Name: "Kopi", Stock: stockPtr(2)})
	ledger := newLedger(repo)

	signals, err := ledger.ReduceStock(context.Background(), orderWith(domain.OrderItem{ProductID: "p-1", Quantity: 2}))
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, int32(0), signals[0].CurrentStock)
}

func TestLedger_ReduceStockSkipsDataGaps(t *testing.T) {
	repo := seedProducts(t,
		domain.Product{ID: "service", StoreID: "store-1", Name: "Jasa Antar"},
		domain.Product{ID: "p-1", StoreID: "store-1", Name: "Kopi", Stock: stockPtr(30)},
	)
	ledger := newLedger(repo)

	signals, err := ledger.ReduceStock(context.Background(), orderWith(
		domain.OrderItem{ProductName: "removed product", Quantity: 1},
		domain.OrderItem{ProductID: "missing", Quantity: 1},
		domain.OrderItem{ProductID: "service", Quantity: 1},
		domain.OrderItem{ProductID: "p-1", Quantity: 4},
	))
	require.NoError(t, err)
	assert.Empty(t, signals)
	assert.Equal(t, int32(26), currentStock(t, repo, "p-1"))
}

func TestLedger_ReduceStockInsufficient(t *testing.T) {
	repo := seedProducts(t, domain.Product{ID: "p-1", StoreID: "store-1", Name: "Kopi", Stock: stockPtr(1)})
	ledger := newLedger(repo)

	_, err := ledger.ReduceStock(context.Background(), orderWith(domain.OrderItem{ProductID: "p-1", Quantity: 2}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, int32(1), currentStock(t, repo, "p-1"))
}

func TestLedger_RestoreStock(t *testing.T) {
	repo := seedProducts(t,
		domain.Product{ID: "p-1", StoreID: "store-1", Name: "Kopi", Stock: stockPtr(5)},
		domain.Product{ID: "service", StoreID: "store-1", Name: "Jasa"},
	)
	ledger := newLedger(repo)

	err := ledger.RestoreStock(context.Background(), orderWith(
		domain.OrderItem{ProductID: "p-1", Quantity: 2},
		domain.OrderItem{ProductID: "service", Quantity: 1},
		domain.OrderItem{ProductID: "missing", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, int32(7), currentStock(t, repo, "p-1"))
}

type failingProducts struct {
	domain.ProductRepository
	err error
}

func (f failingProducts) IncrementStock(context.Context, string, int32) (domain.StockLevel, error) {
	return domain.StockLevel{}, f.err
}

func TestLedger_RestoreStockPropagatesStorageErrors(t *testing.T) {
	boom := errors.New("connection reset")
	ledger := newLedger(failingProducts{ProductRepository: memory.NewProductRepository(), err: boom})

	err := ledger.RestoreStock(context.Background(), orderWith(domain.OrderItem{ProductID: "p-1", Quantity: 1}))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestLedger_RestoreStockRejectsOverflow(t *testing.T) {
	repo := seedProducts(t, domain.Product{ID: "p-1", StoreID: "store-1", Name: "Kopi", Stock: stockPtr(math.MaxInt32 - 1)})
	ledger := newLedger(repo)

	err := ledger.RestoreStock(context.Background(), orderWith(domain.OrderItem{ProductID: "p-1", Quantity: 5}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStockOverflow)
	assert.Equal(t, int32(math.MaxInt32-1), currentStock(t, repo, "p-1"))
}
