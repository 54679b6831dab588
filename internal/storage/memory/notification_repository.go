package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

type notificationRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Notification
}

// NewNotificationRepository создаёт in-memory NotificationRepository.
func NewNotificationRepository() domain.NotificationRepository {
	return &notificationRepositoryInMemory{items: make(map[string]domain.Notification)}
}

func (r *notificationRepositoryInMemory) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	r.items[n.ID] = cloneNotification(n)
	r.mu.Unlock()

	recordUndo(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.items, n.ID)
	})

	return cloneNotification(n), nil
}

func (r *notificationRepositoryInMemory) ListByRecipient(_ context.Context, recipientID string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Notification, 0)
	for _, n := range r.items {
		if n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.IsRead() {
			continue
		}
		result = append(result, cloneNotification(n))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *notificationRepositoryInMemory) CountUnread(_ context.Context, recipientID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.items {
		if n.RecipientID == recipientID && !n.IsRead() {
			count++
		}
	}
	return count, nil
}

func (r *notificationRepositoryInMemory) MarkRead(_ context.Context, id, recipientID string, at time.Time) (domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.items[id]
	if !ok || n.RecipientID != recipientID {
		return domain.Notification{}, domain.ErrNotificationNotFound
	}
	if n.ReadAt == nil {
		readAt := at.UTC()
		n.ReadAt = &readAt
		r.items[id] = n
	}
	return cloneNotification(n), nil
}

func cloneNotification(src domain.Notification) domain.Notification {
	dst := src
	if src.Payload != nil {
		dst.Payload = make(map[string]any, len(src.Payload))
		for k, v := range src.Payload {
			dst.Payload[k] = v
		}
	}
	if src.ReadAt != nil {
		readAt := *src.ReadAt
		dst.ReadAt = &readAt
	}
	return dst
}

var _ domain.NotificationRepository = (*notificationRepositoryInMemory)(nil)
