package domain

import (
	"time"

	"github.com/vladislavdragonenkov/marketplace/internal/events"
)

// Типы событий жизненного цикла заказа.
const (
	EventOrderCreated     = "order.created"
	EventOrderUpdated     = "order.updated"
	EventOrderDeleted     = "order.deleted"
	EventLowStockDetected = "product.low_stock"
)

// OrderCreated публикуется после вставки заказа и списания остатков.
type OrderCreated struct {
	events.BaseEvent
	Order Order
}

// NewOrderCreated создаёт событие создания заказа.
func NewOrderCreated(order Order) OrderCreated {
	return OrderCreated{
		BaseEvent: events.NewBaseEvent(EventOrderCreated, order.ID),
		Order:     order.Clone(),
	}
}

// OrderUpdated публикуется, когда изменился status или payment_status.
// Order содержит уже сохранённое состояние.
type OrderUpdated struct {
	events.BaseEvent
	Order                 Order
	PreviousStatus        OrderStatus
	PreviousPaymentStatus PaymentStatus
}

// NewOrderUpdated создаёт событие изменения заказа.
func NewOrderUpdated(order Order, previousStatus OrderStatus, previousPayment PaymentStatus) OrderUpdated {
	return OrderUpdated{
		BaseEvent:             events.NewBaseEvent(EventOrderUpdated, order.ID),
		Order:                 order.Clone(),
		PreviousStatus:        previousStatus,
		PreviousPaymentStatus: previousPayment,
	}
}

// StatusChanged сообщает, изменился ли status.
func (e OrderUpdated) StatusChanged() bool {
	return e.PreviousStatus != e.Order.Status
}

// PaymentStatusChanged сообщает, изменился ли payment_status.
func (e OrderUpdated) PaymentStatusChanged() bool {
	return e.PreviousPaymentStatus != e.Order.PaymentStatus
}

// OrderDeleted публикуется при удалении заказа. Order хранит состояние на момент удаления.
type OrderDeleted struct {
	events.BaseEvent
	Order Order
}

// NewOrderDeleted создаёт событие удаления заказа.
func NewOrderDeleted(order Order) OrderDeleted {
	return OrderDeleted{
		BaseEvent: events.NewBaseEvent(EventOrderDeleted, order.ID),
		Order:     order.Clone(),
	}
}

// LowStockDetected публикуется после коммита заказа, опустившего остаток до порога.
type LowStockDetected struct {
	events.BaseEvent
	Signal LowStockSignal
}

// NewLowStockDetected создаёт событие низкого остатка.
func NewLowStockDetected(signal LowStockSignal) LowStockDetected {
	return LowStockDetected{
		BaseEvent: events.NewBaseEvent(EventLowStockDetected, signal.ProductID),
		Signal:    signal,
	}
}

// OrderEventPayload — содержимое outbox-сообщения об изменении заказа.
type OrderEventPayload struct {
	EventID               string    `json:"event_id"`
	OrderID               string    `json:"order_id"`
	OrderNumber           string    `json:"order_number"`
	CustomerID            string    `json:"customer_id"`
	StoreID               string    `json:"store_id"`
	Status                string    `json:"status"`
	PaymentStatus         string    `json:"payment_status"`
	PreviousStatus        string    `json:"previous_status,omitempty"`
	PreviousPaymentStatus string    `json:"previous_payment_status,omitempty"`
	GrandTotalMinor       int64     `json:"grand_total_minor"`
	OccurredAt            time.Time `json:"occurred_at"`
}

// NewOrderEventPayload заполняет payload из текущего состояния заказа.
func NewOrderEventPayload(eventID string, order Order, occurredAt time.Time) OrderEventPayload {
	return OrderEventPayload{
		EventID:         eventID,
		OrderID:         order.ID,
		OrderNumber:     order.Number,
		CustomerID:      order.CustomerID,
		StoreID:         order.StoreID,
		Status:          string(order.Status),
		PaymentStatus:   string(order.PaymentStatus),
		GrandTotalMinor: order.GrandTotalMinor,
		OccurredAt:      occurredAt,
	}
}
