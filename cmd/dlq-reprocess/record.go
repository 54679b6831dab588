package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/marketplace/internal/service/outbox"
)

// dlqRecord — исходное сообщение, восстановленное из записи DLQ.
type dlqRecord struct {
	topic         string
	key           string
	eventType     string
	aggregateType string
	value         []byte
}

// decodeDLQRecord понимает два формата marketplace.dlq:
//   - kafka.ConsumerDLQPayload, который пишет consumer после исчерпания retry;
//   - kafka.Envelope с outbox.DLQPayload внутри от outbox worker'а.
//
// false без ошибки означает чужую запись, которую нужно пропустить.
func decodeDLQRecord(msg *sarama.ConsumerMessage, overrideTopic string, now time.Time) (dlqRecord, bool, error) {
	var consumed kafka.ConsumerDLQPayload
	if json.Unmarshal(msg.Value, &consumed) == nil && consumed.OriginalValue != "" {
		topic := firstNonEmpty(consumed.OriginalTopic, headerValue(msg.Headers, kafka.HeaderOriginalTopic), kafka.TopicOrderEvents)
		return dlqRecord{
			topic:         firstNonEmpty(overrideTopic, topic),
			key:           consumed.OriginalKey,
			eventType:     headerValue(msg.Headers, kafka.HeaderEventType),
			aggregateType: aggregateForTopic(topic),
			value:         []byte(consumed.OriginalValue),
		}, true, nil
	}

	var envelope kafka.Envelope
	if json.Unmarshal(msg.Value, &envelope) != nil || len(envelope.Payload) == 0 {
		return dlqRecord{}, false, nil
	}
	var failed outbox.DLQPayload
	if err := json.Unmarshal(envelope.Payload, &failed); err != nil {
		return dlqRecord{}, false, fmt.Errorf("decode outbox dlq payload: %w", err)
	}
	if len(failed.Payload) == 0 {
		return dlqRecord{}, false, errors.New("outbox dlq payload does not contain original event payload")
	}

	original := domain.OutboxMessage{
		ID:            firstNonEmpty(failed.OutboxID, envelope.ID),
		AggregateType: firstNonEmpty(failed.AggregateType, envelope.AggregateType, domain.OutboxAggregateOrder),
		AggregateID:   firstNonEmpty(failed.AggregateID, envelope.AggregateID),
		EventType:     firstNonEmpty(failed.EventType, envelope.EventType),
		Payload:       failed.Payload,
	}
	replay := kafka.NewEnvelope(original, now)
	value, err := json.Marshal(replay)
	if err != nil {
		return dlqRecord{}, false, fmt.Errorf("encode replay envelope: %w", err)
	}
	return dlqRecord{
		topic:         firstNonEmpty(overrideTopic, topicForAggregate(original.AggregateType)),
		key:           replay.Key(),
		eventType:     original.EventType,
		aggregateType: original.AggregateType,
		value:         value,
	}, true, nil
}

func topicForAggregate(aggregateType string) string {
	if aggregateType == domain.OutboxAggregateMail {
		return kafka.TopicMail
	}
	return kafka.TopicOrderEvents
}

func aggregateForTopic(topic string) string {
	if topic == kafka.TopicMail {
		return domain.OutboxAggregateMail
	}
	return domain.OutboxAggregateOrder
}

func headerValue(headers []*sarama.RecordHeader, key string) string {
	for _, h := range headers {
		if h != nil && string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
