package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/marketplace/internal/service/outbox"
)

var replayedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func consumerDLQValue(t *testing.T, topic, key, value string) []byte {
	t.Helper()
	raw, err := json.Marshal(kafka.ConsumerDLQPayload{OriginalTopic: topic, OriginalKey: key, OriginalValue: value})
	require.NoError(t, err)
	return raw
}

// outboxDLQValue повторяет запись outbox worker'а: envelope с DLQPayload внутри.
func outboxDLQValue(t *testing.T, envelope kafka.Envelope, failed any) []byte {
	t.Helper()
	inner, err := json.Marshal(failed)
	require.NoError(t, err)
	envelope.Payload = inner
	raw, err := json.Marshal(envelope)
	require.NoError(t, err)
	return raw
}

func failedMail(t *testing.T) []byte {
	t.Helper()
	return outboxDLQValue(t, kafka.Envelope{ID: "dlq-1", EventType: "outbox.dlq"}, outbox.DLQPayload{
		OutboxID:      "ob-mail-7",
		AggregateType: domain.OutboxAggregateMail,
		AggregateID:   "customer-7",
		EventType:     "mail.order_paid",
		Payload:       json.RawMessage(`{"to":"buyer@example.com","order_id":"order-42"}`),
		PublishError:  "kafka: broker not available",
	})
}

func TestDecodeDLQRecord(t *testing.T) {
	eventHeader := &sarama.RecordHeader{Key: []byte(kafka.HeaderEventType), Value: []byte("order.paid")}
	mailTopicHeader := &sarama.RecordHeader{Key: []byte(kafka.HeaderOriginalTopic), Value: []byte(kafka.TopicMail)}

	cases := []struct {
		name     string
		msg      *sarama.ConsumerMessage
		override string
		want     dlqRecord
		wantSkip bool
		wantErr  string
	}{
		{
			name: "consumer record keeps topic and event header",
			msg: &sarama.ConsumerMessage{
				Value:   consumerDLQValue(t, kafka.TopicOrderEvents, "order-42", `{"event_type":"order.paid"}`),
				Headers: []*sarama.RecordHeader{nil, eventHeader},
			},
			want: dlqRecord{topic: kafka.TopicOrderEvents, key: "order-42", eventType: "order.paid", aggregateType: domain.OutboxAggregateOrder},
		},
		{
			name: "consumer record falls back to original topic header",
			msg: &sarama.ConsumerMessage{
				Value:   consumerDLQValue(t, "", "customer-7", `{"to":"buyer@example.com"}`),
				Headers: []*sarama.RecordHeader{mailTopicHeader},
			},
			want: dlqRecord{topic: kafka.TopicMail, key: "customer-7", aggregateType: domain.OutboxAggregateMail},
		},
		{
			name:     "consumer record with override topic",
			msg:      &sarama.ConsumerMessage{Value: consumerDLQValue(t, kafka.TopicOrderEvents, "order-42", "{}")},
			override: "marketplace.order.events.replay",
			want:     dlqRecord{topic: "marketplace.order.events.replay", key: "order-42", aggregateType: domain.OutboxAggregateOrder},
		},
		{
			name: "outbox mail routes to mail topic",
			msg:  &sarama.ConsumerMessage{Value: failedMail(t)},
			want: dlqRecord{topic: kafka.TopicMail, key: "customer-7", eventType: "mail.order_paid", aggregateType: domain.OutboxAggregateMail},
		},
		{
			name: "outbox envelope fills missing fields",
			msg: &sarama.ConsumerMessage{Value: outboxDLQValue(t,
				kafka.Envelope{ID: "ob-9", AggregateID: "order-9", EventType: "order.cancelled"},
				outbox.DLQPayload{Payload: json.RawMessage(`{"status":"CANCELLED"}`)},
			)},
			want: dlqRecord{topic: kafka.TopicOrderEvents, key: "order-9", eventType: "order.cancelled", aggregateType: domain.OutboxAggregateOrder},
		},
		{
			name: "outbox record without original payload",
			msg: &sarama.ConsumerMessage{Value: outboxDLQValue(t, kafka.Envelope{ID: "ob-1"}, outbox.DLQPayload{
				OutboxID: "ob-1", AggregateType: domain.OutboxAggregateOrder, AggregateID: "order-1",
			})},
			wantErr: "does not contain original event payload",
		},
		{
			name:    "outbox payload is not an object",
			msg:     &sarama.ConsumerMessage{Value: outboxDLQValue(t, kafka.Envelope{ID: "ob-2"}, "not-an-object")},
			wantErr: "decode outbox dlq payload",
		},
		{
			name:     "foreign json is skipped",
			msg:      &sarama.ConsumerMessage{Value: []byte(`{"sku":"SKU-1","stock":3}`)},
			wantSkip: true,
		},
		{
			name:     "garbage is skipped",
			msg:      &sarama.ConsumerMessage{Value: []byte("\x00\x01")},
			wantSkip: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := decodeDLQRecord(tc.msg, tc.override, replayedAt)
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			if tc.wantSkip {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			got.value = nil
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeDLQRecord_ConsumerValueIsReplayedAsIs(t *testing.T) {
	original := `{"id":"evt-1","aggregate_id":"order-42","event_type":"order.paid"}`
	got, ok, err := decodeDLQRecord(&sarama.ConsumerMessage{Value: consumerDLQValue(t, kafka.TopicOrderEvents, "order-42", original)}, "", replayedAt)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, original, string(got.value))
}

func TestDecodeDLQRecord_OutboxIsRewrappedInFreshEnvelope(t *testing.T) {
	got, ok, err := decodeDLQRecord(&sarama.ConsumerMessage{Value: failedMail(t)}, "", replayedAt)
	require.NoError(t, err)
	require.True(t, ok)

	var replay kafka.Envelope
	require.NoError(t, json.Unmarshal(got.value, &replay))
	assert.Equal(t, "ob-mail-7", replay.ID)
	assert.Equal(t, domain.OutboxAggregateMail, replay.AggregateType)
	assert.Equal(t, "customer-7", replay.AggregateID)
	assert.Equal(t, "mail.order_paid", replay.EventType)
	assert.JSONEq(t, `{"to":"buyer@example.com","order_id":"order-42"}`, string(replay.Payload))
	assert.True(t, replay.PublishedAt.Equal(replayedAt))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "order-42", firstNonEmpty("", "  ", "order-42", "order-43"))
	assert.Empty(t, firstNonEmpty("", "\t"))
	assert.Empty(t, firstNonEmpty())
}
