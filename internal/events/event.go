// Package events содержит инфраструктуру доменных событий: явную публикацию
// изменений заказа и их синхронную обработку внутри и после транзакции.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event — неизменяемый факт, произошедший в системе.
type Event interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
	AggregateID() string
}

// BaseEvent содержит общие поля события. Встраивается в конкретные типы.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Aggregate string    `json:"aggregate_id"`
}

// NewBaseEvent создаёт BaseEvent с новым идентификатором и текущим временем.
func NewBaseEvent(eventType, aggregateID string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Aggregate: aggregateID,
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }

// Publisher публикует события.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Handler обрабатывает событие.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// Subscriber регистрирует обработчики по типу события.
type Subscriber interface {
	Subscribe(eventType string, handler Handler)
}

// HandlerFunc позволяет использовать обычную функцию как Handler.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}
