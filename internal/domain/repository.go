package domain

import (
	"context"
	"time"
)

// Все репозитории работают в транзакции, если она передана через ctx
// (см. transaction.Scope), и в автокоммите в противном случае.

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// NextNumber выдаёт следующее значение последовательности номеров заказов.
	NextNumber(ctx context.Context) (int64, error)
	// Create сохраняет новый заказ вместе с позициями. Возвращает ErrOrderVersionConflict, если ID занят.
	Create(ctx context.Context, order Order) error
	// Get возвращает заказ с позициями или ErrOrderNotFound.
	Get(ctx context.Context, id string) (Order, error)
	// ListByCustomer возвращает заказы клиента с опциональным ограничением на количество.
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]Order, error)
	// ListExpired возвращает неоплаченные заказы с expires_at <= before.
	ListExpired(ctx context.Context, before time.Time, limit int) ([]Order, error)
	// Save применяет обновления статусов с учётом optimistic locking и увеличивает Version.
	Save(ctx context.Context, order Order) error
	// Delete удаляет заказ вместе с позициями.
	Delete(ctx context.Context, id string) error
}

// ProductRepository — единственная точка изменения остатков.
// Decrement/Increment выполняются одним атомарным выражением без read-modify-write.
type ProductRepository interface {
	Create(ctx context.Context, product Product) error
	Get(ctx context.Context, id string) (Product, error)
	// DecrementStock уменьшает остаток, если stock >= qty.
	// Ошибки: ErrProductNotFound, ErrStockUntracked, ErrInsufficientStock, ErrStockOverflow.
	DecrementStock(ctx context.Context, productID string, qty int32) (StockLevel, error)
	// IncrementStock увеличивает остаток; верхняя граница только диапазон int32.
	// Ошибки: ErrProductNotFound, ErrStockUntracked, ErrStockOverflow.
	IncrementStock(ctx context.Context, productID string, qty int32) (StockLevel, error)
}

// StoreRepository хранит магазины и их производные счётчики.
type StoreRepository interface {
	Create(ctx context.Context, store Store) error
	Get(ctx context.Context, id string) (Store, error)
	// RecomputeTransactions перезаписывает transactions_count количеством заказов
	// магазина в статусах statuses и возвращает новое значение.
	RecomputeTransactions(ctx context.Context, storeID string, statuses []OrderStatus) (int64, error)
}

// UserRepository хранит покупателей и владельцев магазинов.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	Get(ctx context.Context, id string) (User, error)
}

// NotificationRepository хранит in-app уведомления.
type NotificationRepository interface {
	Create(ctx context.Context, notification Notification) (Notification, error)
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	// MarkRead проставляет read_at; повторный вызов не меняет исходное время.
	MarkRead(ctx context.Context, id, recipientID string, at time.Time) (Notification, error)
}
