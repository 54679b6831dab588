package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketplace/internal/messaging/kafka"
)

type replaySummary struct {
	scanned  int
	replayed int
	skipped  int
	byTopic  map[string]int
}

type replayer struct {
	cfg    config
	deps   replayDeps
	logger *log.Entry
	now    func() time.Time
}

func newReplayer(cfg config, deps replayDeps, logger *log.Entry) *replayer {
	return &replayer{cfg: cfg, deps: deps, logger: logger, now: time.Now}
}

// Run читает партиции source-топика по возрастанию номера, пока не наберёт cfg.limit записей.
func (r *replayer) Run(ctx context.Context) (replaySummary, error) {
	summary := replaySummary{byTopic: make(map[string]int)}
	if r.deps.offsets == nil || r.deps.source == nil {
		return summary, errors.New("kafka client and consumer are required")
	}
	if r.cfg.execute && r.deps.producer == nil {
		return summary, errors.New("producer is required in execute mode")
	}

	partitions, err := r.deps.offsets.Partitions(r.cfg.sourceTopic)
	if err != nil {
		return summary, fmt.Errorf("get partitions for topic %s: %w", r.cfg.sourceTopic, err)
	}
	if len(partitions) == 0 {
		r.logger.Warn("source topic has no partitions")
		return summary, nil
	}
	sort.Slice(partitions, func(i, j int) bool { return partitions[i] < partitions[j] })

	for _, partition := range partitions {
		budget := r.cfg.limit - summary.scanned
		if budget <= 0 {
			break
		}
		if err := r.drainPartition(ctx, partition, budget, &summary); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// startOffset отступает от конца партиции на budget записей, но не дальше oldest.
func startOffset(oldest, newest int64, budget int, fromNewest bool) int64 {
	if !fromNewest {
		return oldest
	}
	return max(newest-int64(budget), oldest)
}

// drainPartition читает партицию до снимка newest, взятого в начале: записи,
// пришедшие во время replay, остаются на следующий запуск.
func (r *replayer) drainPartition(ctx context.Context, partition int32, budget int, summary *replaySummary) error {
	topic := r.cfg.sourceTopic
	oldest, err := r.deps.offsets.GetOffset(topic, partition, sarama.OffsetOldest)
	if err != nil {
		return fmt.Errorf("get oldest offset for partition %d: %w", partition, err)
	}
	newest, err := r.deps.offsets.GetOffset(topic, partition, sarama.OffsetNewest)
	if err != nil {
		return fmt.Errorf("get newest offset for partition %d: %w", partition, err)
	}
	if newest <= oldest {
		return nil
	}

	pc, err := r.deps.source.ConsumePartition(topic, partition, startOffset(oldest, newest, budget, r.cfg.fromNewest))
	if err != nil {
		return fmt.Errorf("consume partition %d: %w", partition, err)
	}
	defer func() { _ = pc.Close() }()

	errs := pc.Errors()
	for scanned := 0; scanned < budget; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case consumerErr, open := <-errs:
			if !open {
				errs = nil
				continue
			}
			if consumerErr != nil {
				return fmt.Errorf("partition %d consumer error: %w", partition, consumerErr)
			}
		case <-time.After(r.cfg.idleTimeout):
			return nil
		case msg, ok := <-pc.Messages():
			if !ok || msg == nil || msg.Offset >= newest {
				return nil
			}
			if err := r.handle(msg, summary); err != nil {
				return err
			}
			scanned++
			if msg.Offset+1 >= newest {
				return nil
			}
		}
	}
	return nil
}

func (r *replayer) handle(msg *sarama.ConsumerMessage, summary *replaySummary) error {
	summary.scanned++
	entry := r.logger.WithFields(log.Fields{"partition": msg.Partition, "offset": msg.Offset})

	rec, ok, err := decodeDLQRecord(msg, r.cfg.targetTopic, r.now().UTC())
	if err != nil {
		summary.skipped++
		entry.WithError(err).Warn("skip unsupported dlq record")
		return nil
	}
	if !ok || (r.cfg.aggregate != "" && rec.aggregateType != r.cfg.aggregate) {
		summary.skipped++
		return nil
	}

	entry = entry.WithFields(log.Fields{"target_topic": rec.topic, "key": rec.key, "event_type": rec.eventType})
	if r.cfg.execute {
		if err := r.publish(rec); err != nil {
			return fmt.Errorf("publish replay message: %w", err)
		}
		entry.Debug("dlq record replayed")
	} else {
		entry.Info("dlq replay candidate")
	}
	summary.replayed++
	summary.byTopic[rec.topic]++
	return nil
}

func (r *replayer) publish(rec dlqRecord) error {
	if r.deps.producer == nil {
		return errors.New("producer is nil")
	}
	msg := &sarama.ProducerMessage{
		Topic:     rec.topic,
		Key:       sarama.StringEncoder(rec.key),
		Value:     sarama.ByteEncoder(rec.value),
		Timestamp: r.now().UTC(),
	}
	if rec.eventType != "" {
		msg.Headers = []sarama.RecordHeader{{Key: []byte(kafka.HeaderEventType), Value: []byte(rec.eventType)}}
	}
	_, _, err := r.deps.producer.SendMessage(msg)
	return err
}
