package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

// Queue ставит письмо в очередь на доставку. Отправка выполняется асинхронно.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
}

// OutboxQueue сохраняет письма в transactional outbox; дальше их забирает outbox.Worker.
type OutboxQueue struct {
	outbox domain.OutboxRepository
}

// NewOutboxQueue создаёт очередь писем поверх outbox.
func NewOutboxQueue(outbox domain.OutboxRepository) *OutboxQueue {
	return &OutboxQueue{outbox: outbox}
}

// Enqueue сериализует письмо и кладёт его в outbox с aggregate_type = mail.
func (q *OutboxQueue) Enqueue(ctx context.Context, job Job) error {
	if err := job.Validate(); err != nil {
		return err
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal mail job: %w", err)
	}

	if _, err := q.outbox.Enqueue(ctx, domain.OutboxMessage{
		ID:            job.ID,
		AggregateType: domain.OutboxAggregateMail,
		AggregateID:   job.ID,
		EventType:     "mail." + job.Template,
		Payload:       payload,
	}); err != nil {
		return fmt.Errorf("enqueue mail job: %w", err)
	}
	return nil
}

// DecodeJob восстанавливает письмо из payload outbox-сообщения.
func DecodeJob(payload []byte) (Job, error) {
	var job Job
	if err := json.Unmarshal(payload, &job); err != nil {
		return Job{}, fmt.Errorf("decode mail job: %w", err)
	}
	if err := job.Validate(); err != nil {
		return Job{}, err
	}
	return job, nil
}

var _ Queue = (*OutboxQueue)(nil)
