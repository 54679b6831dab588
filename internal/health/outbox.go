package health

import (
	"context"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

type outboxStatsReader interface {
	Stats(ctx context.Context) (domain.OutboxStats, error)
}

// OutboxBacklog сообщает о застрявшем outbox: слишком много pending записей
// или слишком старая неотправленная запись.
type OutboxBacklog struct {
	stats      outboxStatsReader
	maxPending int
	maxAge     time.Duration
	now        func() time.Time
}

// NewOutboxBacklog создаёт проверку; нулевой порог отключает соответствующее условие.
func NewOutboxBacklog(stats outboxStatsReader, maxPending int, maxAge time.Duration) *OutboxBacklog {
	return &OutboxBacklog{
		stats:      stats,
		maxPending: maxPending,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// Check реализует Checker.
func (c *OutboxBacklog) Check(ctx context.Context) Check {
	stats, err := c.stats.Stats(ctx)
	if err != nil {
		return Check{Status: StatusUnhealthy, Message: fmt.Sprintf("read outbox stats: %v", err)}
	}

	details := map[string]any{"pending": stats.PendingCount}
	var age time.Duration
	if stats.PendingCount > 0 && !stats.OldestPendingAt.IsZero() {
		age = c.now().Sub(stats.OldestPendingAt)
		details["oldest_pending_seconds"] = int64(age.Seconds())
	}

	switch {
	case c.maxPending > 0 && stats.PendingCount >= c.maxPending:
		return Check{
			Status:  StatusDegraded,
			Message: fmt.Sprintf("outbox backlog %d reached limit %d", stats.PendingCount, c.maxPending),
			Details: details,
		}
	case c.maxAge > 0 && age > c.maxAge:
		return Check{
			Status:  StatusDegraded,
			Message: fmt.Sprintf("oldest pending outbox record is %s old", age.Truncate(time.Second)),
			Details: details,
		}
	}
	return Check{Status: StatusHealthy, Details: details}
}
