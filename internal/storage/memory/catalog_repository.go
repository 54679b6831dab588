package memory

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

type productRepositoryInMemory struct {
	mu    sync.Mutex
	items map[string]domain.Product
}

// NewProductRepository создаёт in-memory реализацию ProductRepository.
// Изменение остатка выполняется под мьютексом целиком, что эквивалентно атомарному UPDATE.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{items: make(map[string]domain.Product)}
}

func (r *productRepositoryInMemory) Create(_ context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	r.items[product.ID] = cloneProduct(product)
	return nil
}

func (r *productRepositoryInMemory) Get(_ context.Context, id string) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return cloneProduct(product), nil
}

func (r *productRepositoryInMemory) DecrementStock(ctx context.Context, productID string, qty int32) (domain.StockLevel, error) {
	return r.adjust(ctx, productID, -int64(qty))
}

func (r *productRepositoryInMemory) IncrementStock(ctx context.Context, productID string, qty int32) (domain.StockLevel, error) {
	return r.adjust(ctx, productID, int64(qty))
}

func (r *productRepositoryInMemory) adjust(ctx context.Context, productID string, delta int64) (domain.StockLevel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.items[productID]
	if !ok {
		return domain.StockLevel{}, domain.ErrProductNotFound
	}
	if product.Stock == nil {
		return domain.StockLevel{}, domain.ErrStockUntracked
	}
	wide := int64(*product.Stock) + delta
	if wide < 0 {
		return domain.StockLevel{}, domain.ErrInsufficientStock
	}
	if wide > math.MaxInt32 {
		return domain.StockLevel{}, domain.ErrStockOverflow
	}

	next := int32(wide)
	product.Stock = &next
	product.UpdatedAt = time.Now().UTC()
	r.items[productID] = product

	recordUndo(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if p, ok := r.items[productID]; ok && p.Stock != nil {
			restored := int32(int64(*p.Stock) - delta)
			p.Stock = &restored
			r.items[productID] = p
		}
	})

	return domain.StockLevel{
		ProductID:   product.ID,
		ProductName: product.Name,
		StoreID:     product.StoreID,
		Stock:       next,
	}, nil
}

func cloneProduct(src domain.Product) domain.Product {
	dst := src
	if src.Stock != nil {
		stock := *src.Stock
		dst.Stock = &stock
	}
	return dst
}

type storeRepositoryInMemory struct {
	mu     sync.RWMutex
	items  map[string]domain.Store
	orders *OrderRepository
}

// NewStoreRepository создаёт in-memory StoreRepository; счётчики пересчитываются по orders.
func NewStoreRepository(orders *OrderRepository) domain.StoreRepository {
	return &storeRepositoryInMemory{
		items:  make(map[string]domain.Store),
		orders: orders,
	}
}

func (r *storeRepositoryInMemory) Create(_ context.Context, store domain.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if store.CreatedAt.IsZero() {
		store.CreatedAt = now
	}
	store.UpdatedAt = now
	r.items[store.ID] = store
	return nil
}

func (r *storeRepositoryInMemory) Get(_ context.Context, id string) (domain.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.items[id]
	if !ok {
		return domain.Store{}, domain.ErrStoreNotFound
	}
	return store, nil
}

func (r *storeRepositoryInMemory) RecomputeTransactions(ctx context.Context, storeID string, statuses []domain.OrderStatus) (int64, error) {
	count := r.orders.CountByStore(storeID, statuses)

	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.items[storeID]
	if !ok {
		return 0, domain.ErrStoreNotFound
	}
	previous := store.TransactionsCount
	store.TransactionsCount = count
	store.UpdatedAt = time.Now().UTC()
	r.items[storeID] = store

	recordUndo(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if s, ok := r.items[storeID]; ok {
			s.TransactionsCount = previous
			r.items[storeID] = s
		}
	})

	return count, nil
}

type userRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.User
}

// NewUserRepository создаёт in-memory UserRepository.
func NewUserRepository() domain.UserRepository {
	return &userRepositoryInMemory{items: make(map[string]domain.User)}
}

func (r *userRepositoryInMemory) Create(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[user.ID] = user
	return nil
}

func (r *userRepositoryInMemory) Get(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.items[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

var (
	_ domain.ProductRepository = (*productRepositoryInMemory)(nil)
	_ domain.StoreRepository   = (*storeRepositoryInMemory)(nil)
	_ domain.UserRepository    = (*userRepositoryInMemory)(nil)
)
