package domain

import "time"

// LowStockThreshold: при таком остатке и ниже продавец получает предупреждение.
const LowStockThreshold int32 = 10

// Product — товар каталога магазина.
type Product struct {
	ID         string
	StoreID    string
	Name       string
	PriceMinor int64
	// Stock равен nil для услуг: остаток не ведётся и не меняется.
	Stock     *int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TracksStock сообщает, ведётся ли по товару складской остаток.
func (p Product) TracksStock() bool {
	return p.Stock != nil
}

// StockLevel хранит остаток товара после атомарного изменения.
type StockLevel struct {
	ProductID   string
	ProductName string
	StoreID     string
	Stock       int32
}

// IsLow сообщает, попал ли остаток в диапазон [0, LowStockThreshold].
func (l StockLevel) IsLow() bool {
	return l.Stock >= 0 && l.Stock <= LowStockThreshold
}

// LowStockSignal сигнализирует продавцу о заканчивающемся товаре.
type LowStockSignal struct {
	ProductID    string
	ProductName  string
	StoreID      string
	CurrentStock int32
}

// Store описывает витрину продавца.
type Store struct {
	ID          string
	OwnerUserID string
	Name        string
	// TransactionsCount всегда пересчитывается из заказов, инкрементов нет.
	TransactionsCount int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// User — покупатель или владелец магазина.
type User struct {
	ID    string
	Name  string
	Email string
}

// HasEmail сообщает, можно ли отправить пользователю письмо.
func (u User) HasEmail() bool {
	return u.Email != ""
}
