package notification

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/events"
)

// Register подписывает Dispatcher на события после коммита.
func (d *Dispatcher) Register(sub events.Subscriber) {
	sub.Subscribe(domain.EventOrderUpdated, events.HandlerFunc(d.handleOrderUpdated))
	sub.Subscribe(domain.EventLowStockDetected, events.HandlerFunc(d.handleLowStock))
}

func (d *Dispatcher) handleOrderUpdated(ctx context.Context, event events.Event) error {
	e, ok := event.(domain.OrderUpdated)
	if !ok {
		return fmt.Errorf("unexpected event %T for %s", event, event.EventType())
	}
	return d.NotifyStatusChanged(ctx, StatusChange{
		Order:                 e.Order,
		PreviousStatus:        e.PreviousStatus,
		NewStatus:             e.Order.Status,
		PreviousPaymentStatus: e.PreviousPaymentStatus,
		NewPaymentStatus:      e.Order.PaymentStatus,
	})
}

func (d *Dispatcher) handleLowStock(ctx context.Context, event events.Event) error {
	e, ok := event.(domain.LowStockDetected)
	if !ok {
		return fmt.Errorf("unexpected event %T for %s", event, event.EventType())
	}
	return d.NotifyLowStock(ctx, e.Signal)
}
