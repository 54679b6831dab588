package domain

import "time"

// Типы событий в таймлайне заказа.
const (
	TimelineOrderCreated        = "OrderCreated"
	TimelineOrderStatusChanged  = "OrderStatusChanged"
	TimelineOrderPaymentChanged = "OrderPaymentStatusChanged"
	TimelineOrderDeleted        = "OrderDeleted"
	TimelineOrderStockRestored  = "OrderStockRestored"
)

// TimelineEvent описывает событие в жизненном цикле заказа.
type TimelineEvent struct {
	OrderID  string
	Type     string
	Reason   string
	Occurred time.Time
}
