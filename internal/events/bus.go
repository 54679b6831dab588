package events

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Bus — синхронная шина для событий после коммита.
// Ошибки обработчиков логируются и не возвращаются: состояние уже зафиксировано.
type Bus struct {
	registry *Registry
	logger   *log.Entry
}

// NewBus создаёт шину со своим реестром подписок.
func NewBus(logger *log.Entry) *Bus {
	if logger == nil {
		logger = log.WithField("component", "event-bus")
	}
	return &Bus{
		registry: NewRegistry(logger),
		logger:   logger,
	}
}

// Subscribe регистрирует обработчик.
func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.registry.Subscribe(eventType, handler)
}

// Publish вызывает обработчики последовательно в текущей горутине.
func (b *Bus) Publish(ctx context.Context, event Event) error {
	handlers := b.registry.HandlersFor(event.EventType())

	b.logger.WithFields(log.Fields{
		"event_type":    event.EventType(),
		"event_id":      event.EventID(),
		"handler_count": len(handlers),
	}).Debug("publishing event")

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			b.logger.WithError(err).WithFields(log.Fields{
				"event_type":   event.EventType(),
				"event_id":     event.EventID(),
				"aggregate_id": event.AggregateID(),
			}).Error("event handler failed")
		}
	}

	return nil
}

var (
	_ Publisher  = (*Bus)(nil)
	_ Subscriber = (*Bus)(nil)
)
