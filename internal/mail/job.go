// Package mail описывает письма уведомлений: постановку в очередь через
// transactional outbox, рендеринг шаблонов и доставку через SMTP.
package mail

import (
	"errors"
	"time"
)

// Шаблоны писем.
const (
	TemplateOrderStatusChanged = "order_status_changed"
	TemplateLowStock           = "low_stock"
)

var (
	// ErrRecipientRequired возвращается для письма без адреса.
	ErrRecipientRequired = errors.New("mail recipient is required")
	// ErrUnknownTemplate возвращается для неизвестного шаблона.
	ErrUnknownTemplate = errors.New("unknown mail template")
)

// Job — письмо, ожидающее доставки.
type Job struct {
	ID        string    `json:"id"`
	Template  string    `json:"template"`
	To        string    `json:"to"`
	ToName    string    `json:"to_name,omitempty"`
	Subject   string    `json:"subject"`
	Data      Data      `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// Data — контекст шаблона письма.
type Data struct {
	Order                 *OrderSummary   `json:"order,omitempty"`
	PreviousStatus        string          `json:"previousStatus,omitempty"`
	NewStatus             string          `json:"newStatus,omitempty"`
	PreviousPaymentStatus string          `json:"previousPaymentStatus,omitempty"`
	NewPaymentStatus      string          `json:"newPaymentStatus,omitempty"`
	StatusLabel           string          `json:"statusLabel,omitempty"`
	PaymentStatusLabel    string          `json:"paymentStatusLabel,omitempty"`
	StoreName             string          `json:"storeName,omitempty"`
	Product               *ProductSummary `json:"product,omitempty"`
	ActionURL             string          `json:"actionUrl,omitempty"`
}

// OrderSummary — снимок заказа для письма.
type OrderSummary struct {
	ID              string        `json:"id"`
	Number          string        `json:"number"`
	GrandTotalMinor int64         `json:"grand_total_minor"`
	Items           []ItemSummary `json:"items"`
}

// ItemSummary описывает позицию заказа в письме.
type ItemSummary struct {
	Name          string `json:"name"`
	Quantity      int32  `json:"quantity"`
	SubtotalMinor int64  `json:"subtotal_minor"`
}

// ProductSummary описывает товар в письме о низком остатке.
type ProductSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CurrentStock int32  `json:"current_stock"`
}

// Validate проверяет, что письмо можно отрендерить и отправить.
func (j Job) Validate() error {
	if j.To == "" {
		return ErrRecipientRequired
	}
	switch j.Template {
	case TemplateOrderStatusChanged, TemplateLowStock:
		return nil
	default:
		return ErrUnknownTemplate
	}
}
