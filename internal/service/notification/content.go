package notification

import (
	"fmt"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

// Иконки in-app уведомлений.
const (
	IconPackage        = "package"
	IconTruck          = "truck"
	IconCheckCircle    = "check-circle"
	IconXCircle        = "x-circle"
	IconCreditCard     = "credit-card"
	IconStar           = "star"
	IconAlertTriangle  = "alert-triangle"
	defaultStatusTitle = "Status Pesanan Diperbarui"
)

type statusContent struct {
	title string
	icon  string
}

// statusContents сопоставляет статус заказа заголовку и иконке.
// Статусы без записи получают defaultStatusTitle и IconPackage.
var statusContents = map[domain.OrderStatus]statusContent{
	domain.OrderStatusProcessing: {title: "Pesanan Diproses", icon: IconPackage},
	domain.OrderStatusShipped:    {title: "Pesanan Dikirim", icon: IconTruck},
	domain.OrderStatusDelivered:  {title: "Pesanan Sampai", icon: IconCheckCircle},
	domain.OrderStatusCompleted:  {title: "Pesanan Selesai", icon: IconCheckCircle},
	domain.OrderStatusCancelled:  {title: "Pesanan Dibatalkan", icon: IconXCircle},
}

var paidContent = statusContent{title: "Pembayaran Diterima", icon: IconCreditCard}

var statusLabels = map[domain.OrderStatus]string{
	domain.OrderStatusPendingPayment: "Menunggu Pembayaran",
	domain.OrderStatusProcessing:     "Diproses",
	domain.OrderStatusReadyForPickup: "Siap Diambil",
	domain.OrderStatusShipped:        "Dikirim",
	domain.OrderStatusDelivered:      "Sampai",
	domain.OrderStatusCompleted:      "Selesai",
	domain.OrderStatusCancelled:      "Dibatalkan",
}

var paymentLabels = map[domain.PaymentStatus]string{
	domain.PaymentStatusPending: "Menunggu Pembayaran",
	domain.PaymentStatusPaid:    "Pembayaran Diterima",
	domain.PaymentStatusExpired: "Pembayaran Kedaluwarsa",
	domain.PaymentStatusFailed:  "Pembayaran Gagal",
}

// StatusLabel возвращает подпись статуса для покупателя.
func StatusLabel(status domain.OrderStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// PaymentStatusLabel возвращает подпись статуса оплаты для покупателя.
func PaymentStatusLabel(status domain.PaymentStatus) string {
	if label, ok := paymentLabels[status]; ok {
		return label
	}
	return string(status)
}

// statusChangedContent выбирает заголовок, иконку и текст.
// Переход оплаты в paid имеет приоритет над статусом; уже оплаченный заказ описывается статусом.
func statusChangedContent(change StatusChange) (title, icon, message string) {
	number := change.Order.Number
	if change.PreviousPaymentStatus != domain.PaymentStatusPaid && change.NewPaymentStatus == domain.PaymentStatusPaid {
		return paidContent.title, paidContent.icon,
			fmt.Sprintf("Pembayaran untuk pesanan %s telah diterima.", number)
	}

	content, ok := statusContents[change.NewStatus]
	if !ok {
		return defaultStatusTitle, IconPackage,
			fmt.Sprintf("Status pesanan %s diperbarui menjadi %s.", number, StatusLabel(change.NewStatus))
	}
	return content.title, content.icon,
		fmt.Sprintf("Pesanan %s sekarang berstatus %s.", number, StatusLabel(change.NewStatus))
}
