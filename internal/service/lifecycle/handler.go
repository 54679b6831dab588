// Package lifecycle обрабатывает переходы заказа: возвращает сток при отмене
// и удалении, пересчитывает метрики магазина, ведёт таймлайн и outbox.
package lifecycle

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/events"
	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
	"github.com/vladislavdragonenkov/marketplace/internal/telemetry"
)

// StockRestorer возвращает на склад количество позиций заказа.
type StockRestorer interface {
	RestoreStock(ctx context.Context, order domain.Order) error
}

// StoreRecomputer пересчитывает transactions_count магазина.
type StoreRecomputer interface {
	Recompute(ctx context.Context, storeID string) error
}

// Options задаёт зависимости Handler. Timeline, Outbox, Logger и Metrics необязательны.
type Options struct {
	Stock    StockRestorer
	Stats    StoreRecomputer
	Timeline domain.TimelineRepository
	Outbox   domain.OutboxRepository
	Logger   *log.Entry
	Metrics  *metrics.LifecycleMetrics
}

// Handler реагирует на события order.created, order.updated и order.deleted.
// Работает внутри транзакции вызывающего: любая ошибка откатывает изменение заказа.
// Некорректные переходы не отклоняются, каждое изменение обрабатывается по одним правилам.
type Handler struct {
	stock    StockRestorer
	stats    StoreRecomputer
	timeline domain.TimelineRepository
	outbox   domain.OutboxRepository
	logger   *log.Entry
	metrics  *metrics.LifecycleMetrics
}

// NewHandler создаёт обработчик жизненного цикла.
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "order-lifecycle")
	}
	return &Handler{
		stock:    opts.Stock,
		stats:    opts.Stats,
		timeline: opts.Timeline,
		outbox:   opts.Outbox,
		logger:   logger,
		metrics:  opts.Metrics,
	}
}

// Register подписывает обработчик на события заказа.
func (h *Handler) Register(sub events.Subscriber) {
	sub.Subscribe(domain.EventOrderCreated, events.HandlerFunc(h.Handle))
	sub.Subscribe(domain.EventOrderUpdated, events.HandlerFunc(h.Handle))
	sub.Subscribe(domain.EventOrderDeleted, events.HandlerFunc(h.Handle))
}

// Handle разбирает событие по типу.
func (h *Handler) Handle(ctx context.Context, event events.Event) (err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "order.lifecycle."+event.EventType())
	defer span.End()
	span.SetAttributes(attribute.String("order.id", event.AggregateID()))

	if h.metrics != nil {
		h.metrics.HandlerStarted()
		start := time.Now()
		defer func() {
			h.metrics.ObserveHandler(event.EventType(), time.Since(start))
			h.metrics.HandlerFinished()
		}()
	}

	switch e := event.(type) {
	case domain.OrderCreated:
		err = h.handleCreated(ctx, e)
	case domain.OrderUpdated:
		err = h.handleUpdated(ctx, e)
	case domain.OrderDeleted:
		err = h.handleDeleted(ctx, e)
	default:
		err = fmt.Errorf("unexpected event %T for %s", event, event.EventType())
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lifecycle handler failed")
	}
	return err
}

func (h *Handler) handleCreated(ctx context.Context, e domain.OrderCreated) error {
	order := e.Order
	if h.metrics != nil {
		h.metrics.RecordOrderCreated()
	}

	if order.Status.IsCompleted() {
		if err := h.stats.Recompute(ctx, order.StoreID); err != nil {
			return err
		}
	}

	if err := h.appendTimeline(ctx, order.ID, domain.TimelineOrderCreated, "status="+string(order.Status), e.OccurredAt()); err != nil {
		return err
	}
	return h.enqueue(ctx, e, domain.NewOrderEventPayload(e.EventID(), order, e.OccurredAt()))
}

func (h *Handler) handleUpdated(ctx context.Context, e domain.OrderUpdated) error {
	order := e.Order
	logger := h.logger.WithFields(log.Fields{
		"order_id":        order.ID,
		"previous_status": e.PreviousStatus,
		"status":          order.Status,
	})

	if e.StatusChanged() {
		if h.metrics != nil {
			h.metrics.RecordTransition(string(e.PreviousStatus), string(order.Status))
		}

		if order.Status == domain.OrderStatusCancelled && e.PreviousStatus.IsActive() {
			if err := h.stock.RestoreStock(ctx, order); err != nil {
				return err
			}
			if err := h.appendTimeline(ctx, order.ID, domain.TimelineOrderStockRestored, "cancelled", e.OccurredAt()); err != nil {
				return err
			}
			logger.Debug("stock restored after cancellation")
		}

		if err := h.stats.Recompute(ctx, order.StoreID); err != nil {
			return err
		}

		reason := fmt.Sprintf("%s -> %s", e.PreviousStatus, order.Status)
		if err := h.appendTimeline(ctx, order.ID, domain.TimelineOrderStatusChanged, reason, e.OccurredAt()); err != nil {
			return err
		}
	}

	if e.PaymentStatusChanged() {
		reason := fmt.Sprintf("%s -> %s", e.PreviousPaymentStatus, order.PaymentStatus)
		if err := h.appendTimeline(ctx, order.ID, domain.TimelineOrderPaymentChanged, reason, e.OccurredAt()); err != nil {
			return err
		}
	}

	if !e.StatusChanged() && !e.PaymentStatusChanged() {
		return nil
	}

	payload := domain.NewOrderEventPayload(e.EventID(), order, e.OccurredAt())
	payload.PreviousStatus = string(e.PreviousStatus)
	payload.PreviousPaymentStatus = string(e.PreviousPaymentStatus)
	return h.enqueue(ctx, e, payload)
}

func (h *Handler) handleDeleted(ctx context.Context, e domain.OrderDeleted) error {
	order := e.Order
	if h.metrics != nil {
		h.metrics.RecordOrderDeleted()
	}

	if order.Status.IsActive() {
		if err := h.stock.RestoreStock(ctx, order); err != nil {
			return err
		}
		if err := h.appendTimeline(ctx, order.ID, domain.TimelineOrderStockRestored, "deleted", e.OccurredAt()); err != nil {
			return err
		}
	}

	if err := h.stats.Recompute(ctx, order.StoreID); err != nil {
		return err
	}

	if err := h.appendTimeline(ctx, order.ID, domain.TimelineOrderDeleted, "status="+string(order.Status), e.OccurredAt()); err != nil {
		return err
	}
	return h.enqueue(ctx, e, domain.NewOrderEventPayload(e.EventID(), order, e.OccurredAt()))
}

func (h *Handler) appendTimeline(ctx context.Context, orderID, eventType, reason string, occurred time.Time) error {
	if h.timeline == nil {
		return nil
	}
	if err := h.timeline.Append(ctx, domain.TimelineEvent{
		OrderID:  orderID,
		Type:     eventType,
		Reason:   reason,
		Occurred: occurred,
	}); err != nil {
		return fmt.Errorf("append timeline %s: %w", eventType, err)
	}
	if h.metrics != nil {
		h.metrics.RecordTimelineEvent()
	}
	return nil
}

func (h *Handler) enqueue(ctx context.Context, event events.Event, payload domain.OrderEventPayload) error {
	if h.outbox == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event.EventType(), err)
	}

	if _, err := h.outbox.Enqueue(ctx, domain.OutboxMessage{
		AggregateType: domain.OutboxAggregateOrder,
		AggregateID:   event.AggregateID(),
		EventType:     event.EventType(),
		Payload:       data,
	}); err != nil {
		return fmt.Errorf("enqueue %s: %w", event.EventType(), err)
	}
	if h.metrics != nil {
		h.metrics.RecordOutboxEvent()
	}
	return nil
}
