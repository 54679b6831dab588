package outbox

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

// Router выбирает publisher по AggregateType сообщения.
type Router struct {
	routes   map[string]domain.OutboxPublisher
	fallback domain.OutboxPublisher
}

// NewRouter создаёт роутер; при nil fallback неизвестный тип агрегата возвращает ошибку.
func NewRouter(routes map[string]domain.OutboxPublisher, fallback domain.OutboxPublisher) *Router {
	copied := make(map[string]domain.OutboxPublisher, len(routes))
	for aggregate, publisher := range routes {
		if publisher != nil {
			copied[aggregate] = publisher
		}
	}
	return &Router{routes: copied, fallback: fallback}
}

// Publish передаёт сообщение publisher-у его агрегата.
func (r *Router) Publish(ctx context.Context, msg domain.OutboxMessage) error {
	if publisher, ok := r.routes[msg.AggregateType]; ok {
		return publisher.Publish(ctx, msg)
	}
	if r.fallback != nil {
		return r.fallback.Publish(ctx, msg)
	}
	return fmt.Errorf("%w: no publisher for aggregate %q", domain.ErrOutboxPublish, msg.AggregateType)
}

// LogPublisher пишет сообщения в лог; используется без брокера.
type LogPublisher struct {
	logger *log.Entry
}

// NewLogPublisher создаёт publisher, который только логирует.
func NewLogPublisher(logger *log.Entry) *LogPublisher {
	if logger == nil {
		logger = log.WithField("component", "outbox-log-publisher")
	}
	return &LogPublisher{logger: logger}
}

// Publish пишет сообщение в лог.
func (p *LogPublisher) Publish(_ context.Context, msg domain.OutboxMessage) error {
	p.logger.WithFields(log.Fields{
		"outbox_id":      msg.ID,
		"aggregate_type": msg.AggregateType,
		"aggregate_id":   msg.AggregateID,
		"event_type":     msg.EventType,
		"payload_bytes":  len(msg.Payload),
	}).Info("outbox message published")
	return nil
}

// PublisherFunc адаптирует функцию к domain.OutboxPublisher.
type PublisherFunc func(ctx context.Context, msg domain.OutboxMessage) error

// Publish вызывает f.
func (f PublisherFunc) Publish(ctx context.Context, msg domain.OutboxMessage) error {
	return f(ctx, msg)
}

var (
	_ domain.OutboxPublisher = (*Router)(nil)
	_ domain.OutboxPublisher = (*LogPublisher)(nil)
	_ domain.OutboxPublisher = PublisherFunc(nil)
)
