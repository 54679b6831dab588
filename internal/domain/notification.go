package domain

import "time"

// NotificationKind определяет тип уведомления и набор каналов доставки.
type NotificationKind string

const (
	NotificationKindOrderStatusChanged NotificationKind = "order_status_changed"
	NotificationKindOrderReviewRequest NotificationKind = "order_review_request"
	NotificationKindLowStock           NotificationKind = "low_stock"
)

// Channel задаёт независимый канал доставки уведомления.
type Channel string

const (
	ChannelDatabase Channel = "database"
	ChannelMail     Channel = "mail"
)

// Notification — in-app уведомление одного получателя.
type Notification struct {
	ID          string
	RecipientID string
	Kind        NotificationKind
	Title       string
	Message     string
	Icon        string
	ActionURL   string
	Payload     map[string]any
	ReadAt      *time.Time
	CreatedAt   time.Time
}

// IsRead сообщает, прочитано ли уведомление.
func (n Notification) IsRead() bool {
	return n.ReadAt != nil
}
