package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

// Topics для Kafka
const (
	TopicOrderEvents     = "marketplace.order.events"
	TopicMail            = "marketplace.mail"
	TopicDeadLetterQueue = "marketplace.dlq" // Dead Letter Queue для failed messages
)

// Kafka headers для retry логики
const (
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
	HeaderEventType     = "x-event-type"
)

// Envelope — формат сообщения, которое outbox публикует в Kafka.
type Envelope struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishedAt   time.Time       `json:"published_at"`
}

// NewEnvelope оборачивает outbox-сообщение.
func NewEnvelope(msg domain.OutboxMessage, publishedAt time.Time) Envelope {
	return Envelope{
		ID:            msg.ID,
		AggregateType: msg.AggregateType,
		AggregateID:   msg.AggregateID,
		EventType:     msg.EventType,
		Payload:       json.RawMessage(msg.Payload),
		PublishedAt:   publishedAt,
	}
}

// Key возвращает ключ партиционирования: события одного агрегата идут по порядку.
func (e Envelope) Key() string {
	if e.AggregateID != "" {
		return e.AggregateID
	}
	return e.ID
}

// ParseEnvelope парсит Envelope из сообщения
func ParseEnvelope(message *sarama.ConsumerMessage) (Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(message.Value, &envelope); err != nil {
		return Envelope{}, fmt.Errorf("failed to unmarshal envelope: %w", err)
	}
	if envelope.EventType == "" {
		return Envelope{}, fmt.Errorf("envelope without event_type")
	}
	return envelope, nil
}

// ParseOrderEvent извлекает payload события заказа.
func ParseOrderEvent(message *sarama.ConsumerMessage) (domain.OrderEventPayload, error) {
	envelope, err := ParseEnvelope(message)
	if err != nil {
		return domain.OrderEventPayload{}, err
	}
	if envelope.AggregateType != domain.OutboxAggregateOrder {
		return domain.OrderEventPayload{}, fmt.Errorf("unexpected aggregate type %q", envelope.AggregateType)
	}

	var payload domain.OrderEventPayload
	if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
		return domain.OrderEventPayload{}, fmt.Errorf("failed to unmarshal order event: %w", err)
	}
	return payload, nil
}
