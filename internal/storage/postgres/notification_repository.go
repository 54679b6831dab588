package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

const notificationColumns = `id, recipient_id, kind, title, message, icon, action_url, payload, read_at, created_at`

type notificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository создаёт PostgreSQL-реализацию NotificationRepository.
func NewNotificationRepository(store *Store) domain.NotificationRepository {
	return &notificationRepository{db: store.DB()}
}

func (r *notificationRepository) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	payload := n.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("marshal notification payload: %w", err)
	}

	if _, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO notifications (`+notificationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		n.ID, n.RecipientID, string(n.Kind), n.Title, n.Message, n.Icon, n.ActionURL,
		raw, n.ReadAt, n.CreatedAt,
	); err != nil {
		return domain.Notification{}, fmt.Errorf("insert notification: %w", err)
	}

	return n, nil
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_id = $1
	`
	if unreadOnly {
		query += " AND read_at IS NULL"
	}
	query += " ORDER BY created_at DESC, id DESC"

	args := []any{recipientID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return result, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int
	if err := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND read_at IS NULL
	`, recipientID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead проставляет read_at только при первом прочтении.
func (r *notificationRepository) MarkRead(ctx context.Context, id, recipientID string, at time.Time) (domain.Notification, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	n, err := scanNotification(conn(ctx, r.db).QueryRowContext(ctx, `
		UPDATE notifications
		SET read_at = COALESCE(read_at, $3)
		WHERE id = $1 AND recipient_id = $2
		RETURNING `+notificationColumns,
		id, recipientID, at.UTC(),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Notification{}, domain.ErrNotificationNotFound
		}
		return domain.Notification{}, err
	}
	return n, nil
}

func scanNotification(row rowScanner) (domain.Notification, error) {
	var (
		n       domain.Notification
		kind    string
		payload []byte
		readAt  sql.NullTime
	)
	if err := row.Scan(
		&n.ID, &n.RecipientID, &kind, &n.Title, &n.Message, &n.Icon, &n.ActionURL,
		&payload, &readAt, &n.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Notification{}, err
		}
		return domain.Notification{}, fmt.Errorf("scan notification: %w", err)
	}
	n.Kind = domain.NotificationKind(kind)
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &n.Payload); err != nil {
			return domain.Notification{}, fmt.Errorf("decode notification payload: %w", err)
		}
	}
	if readAt.Valid {
		t := readAt.Time.UTC()
		n.ReadAt = &t
	}
	return n, nil
}

var _ domain.NotificationRepository = (*notificationRepository)(nil)
