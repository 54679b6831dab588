package domain

import (
	"fmt"
	"time"
)

// OrderStatus описывает жизненный цикл заказа в маркетплейсе.
type OrderStatus string

const (
	// Заказ создан и ожидает оплаты.
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	// Оплата получена, продавец собирает заказ.
	OrderStatusProcessing OrderStatus = "processing"
	// Готов к самовывозу.
	OrderStatusReadyForPickup OrderStatus = "ready_for_pickup"
	// Передан в доставку.
	OrderStatusShipped OrderStatus = "shipped"
	// Доставлен покупателю.
	OrderStatusDelivered OrderStatus = "delivered"
	// Покупатель подтвердил получение.
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus описывает состояние оплаты заказа.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusExpired PaymentStatus = "expired"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// OrderNumberFormat задаёт формат человекочитаемого номера заказа.
const OrderNumberFormat = "ORD-%06d"

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingPayment, OrderStatusProcessing, OrderStatusReadyForPickup,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive сообщает, списан ли под заказ сток.
// Все статусы, кроме cancelled, считаются активными.
func (s OrderStatus) IsActive() bool {
	return s.Valid() && s != OrderStatusCancelled
}

// IsCompleted сообщает, учитывается ли заказ в transactions_count магазина.
func (s OrderStatus) IsCompleted() bool {
	return s == OrderStatusCompleted || s == OrderStatusDelivered
}

// CompletedStatuses возвращает статусы, которые учитываются в метриках магазина.
func CompletedStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusCompleted, OrderStatusDelivered}
}

// Valid проверяет, что статус оплаты относится к поддерживаемым значениям.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusExpired, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// OrderItem представляет одну позицию заказа. После создания заказа не меняется.
type OrderItem struct {
	ID string
	// ProductID пустой, если товар удалён из каталога.
	ProductID string
	// Снимок названия на момент заказа.
	ProductName    string
	Quantity       int32
	UnitPriceMinor int64
	SubtotalMinor  int64
}

// HasProduct сообщает, ссылается ли позиция на существующий товар.
func (i OrderItem) HasProduct() bool {
	return i.ProductID != ""
}

// Order агрегирует состояние заказа и его позиции.
type Order struct {
	ID              string
	Number          string
	CustomerID      string
	StoreID         string
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	SubtotalMinor   int64
	DiscountMinor   int64
	ShippingMinor   int64
	GrandTotalMinor int64
	Items           []OrderItem
	Version         int64
	OrderedAt       time.Time
	ExpiresAt       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FormatOrderNumber формирует номер заказа из значения последовательности.
func FormatOrderNumber(seq int64) string {
	return fmt.Sprintf(OrderNumberFormat, seq)
}

// Recalculate пересчитывает суммы позиций и итог заказа.
func (o *Order) Recalculate() {
	var subtotal int64
	for i := range o.Items {
		o.Items[i].SubtotalMinor = int64(o.Items[i].Quantity) * o.Items[i].UnitPriceMinor
		subtotal += o.Items[i].SubtotalMinor
	}
	o.SubtotalMinor = subtotal
	o.GrandTotalMinor = o.SubtotalMinor - o.DiscountMinor + o.ShippingMinor
}

// Clone возвращает копию заказа с независимым слайсом позиций.
func (o Order) Clone() Order {
	clone := o
	if o.Items != nil {
		clone.Items = make([]OrderItem, len(o.Items))
		copy(clone.Items, o.Items)
	}
	return clone
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, ErrCustomerRequired)
	}
	if o.StoreID == "" {
		errs = append(errs, ErrStoreRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}
	if !o.Status.Valid() {
		errs = append(errs, ErrInvalidStatus)
	}
	if !o.PaymentStatus.Valid() {
		errs = append(errs, ErrInvalidPaymentStatus)
	}
	if o.SubtotalMinor < 0 || o.DiscountMinor < 0 || o.ShippingMinor < 0 || o.GrandTotalMinor < 0 {
		errs = append(errs, ErrAmountNegative)
	}

	var calc int64
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.UnitPriceMinor < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
		if item.SubtotalMinor != int64(item.Quantity)*item.UnitPriceMinor {
			errs = append(errs, ErrAmountMismatch)
		}
		calc += item.SubtotalMinor
	}
	if calc != o.SubtotalMinor {
		errs = append(errs, ErrAmountMismatch)
	}
	// grand_total = subtotal - discount + shipping
	if o.GrandTotalMinor != o.SubtotalMinor-o.DiscountMinor+o.ShippingMinor {
		errs = append(errs, ErrGrandTotalMismatch)
	}

	return errs
}
