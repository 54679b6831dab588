package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

// OrderRepository — in-memory реализация domain.OrderRepository.
// Экспортируется, чтобы StoreRepository мог пересчитывать счётчики по заказам.
type OrderRepository struct {
	mu     sync.RWMutex
	items  map[string]domain.Order
	number int64
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		items: make(map[string]domain.Order),
	}
}

// NextNumber выдаёт следующий номер заказа. Номер не возвращается при откате, как и sequence в PostgreSQL.
func (r *OrderRepository) NextNumber(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.number++
	return r.number, nil
}

// Create сохраняет новый заказ, если ID ещё не занят.
func (r *OrderRepository) Create(ctx context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID]; exists {
		return domain.ErrOrderVersionConflict
	}
	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	r.items[order.ID] = order.Clone()

	recordUndo(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.items, order.ID)
	})
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *OrderRepository) Get(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order.Clone(), nil
}

// ListByCustomer возвращает заказы клиента, ограничивая выборку limit (если >0).
func (r *OrderRepository) ListByCustomer(_ context.Context, customerID string, limit int) ([]domain.Order, error) {
	return r.filter(limit, func(order domain.Order) bool {
		return order.CustomerID == customerID
	}), nil
}

// ListExpired возвращает неоплаченные заказы с истёкшим сроком оплаты.
func (r *OrderRepository) ListExpired(_ context.Context, before time.Time, limit int) ([]domain.Order, error) {
	result := r.filter(0, func(order domain.Order) bool {
		return order.Status == domain.OrderStatusPendingPayment &&
			order.PaymentStatus == domain.PaymentStatusPending &&
			!order.ExpiresAt.IsZero() &&
			!order.ExpiresAt.After(before)
	})

	sort.Slice(result, func(i, j int) bool {
		return result[i].ExpiresAt.Before(result[j].ExpiresAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Save перезаписывает статусы заказа, проверяя версию (optimistic locking).
func (r *OrderRepository) Save(ctx context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[order.ID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if current.Version != order.Version {
		return domain.ErrOrderVersionConflict
	}

	// Позиции неизменяемы: берём сохранённые.
	updated := order.Clone()
	updated.Items = current.Items
	updated.Version++
	r.items[order.ID] = updated

	recordUndo(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.items[current.ID] = current
	})
	return nil
}

// Delete удаляет заказ.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.items, id)

	recordUndo(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.items[current.ID] = current
	})
	return nil
}

// CountByStore считает заказы магазина в заданных статусах.
func (r *OrderRepository) CountByStore(storeID string, statuses []domain.OrderStatus) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	allowed := make(map[domain.OrderStatus]struct{}, len(statuses))
	for _, status := range statuses {
		allowed[status] = struct{}{}
	}

	var count int64
	for _, order := range r.items {
		if order.StoreID != storeID {
			continue
		}
		if _, ok := allowed[order.Status]; ok {
			count++
		}
	}
	return count
}

func (r *OrderRepository) filter(limit int, match func(domain.Order) bool) []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range r.items {
		if match(order) {
			result = append(result, order.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

var _ domain.OrderRepository = (*OrderRepository)(nil)
