package notification

import (
	"testing"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

func TestStatusChangedContent(t *testing.T) {
	cases := []struct {
		name        string
		status      domain.OrderStatus
		prevPayment domain.PaymentStatus
		payment     domain.PaymentStatus
		wantTitle   string
		wantIcon    string
	}{
		{"processing", domain.OrderStatusProcessing, domain.PaymentStatusPending, domain.PaymentStatusPending, "Pesanan Diproses", IconPackage},
		{"shipped", domain.OrderStatusShipped, domain.PaymentStatusPending, domain.PaymentStatusPending, "Pesanan Dikirim", IconTruck},
		{"delivered", domain.OrderStatusDelivered, domain.PaymentStatusPending, domain.PaymentStatusPending, "Pesanan Sampai", IconCheckCircle},
		{"completed", domain.OrderStatusCompleted, domain.PaymentStatusPending, domain.PaymentStatusPending, "Pesanan Selesai", IconCheckCircle},
		{"cancelled", domain.OrderStatusCancelled, domain.PaymentStatusPending, domain.PaymentStatusFailed, "Pesanan Dibatalkan", IconXCircle},
		{"paid wins over status", domain.OrderStatusShipped, domain.PaymentStatusPending, domain.PaymentStatusPaid, "Pembayaran Diterima", IconCreditCard},
		{"already paid uses status", domain.OrderStatusShipped, domain.PaymentStatusPaid, domain.PaymentStatusPaid, "Pesanan Dikirim", IconTruck},
		{"completed after payment", domain.OrderStatusCompleted, domain.PaymentStatusPaid, domain.PaymentStatusPaid, "Pesanan Selesai", IconCheckCircle},
		{"unmapped status", domain.OrderStatusReadyForPickup, domain.PaymentStatusPending, domain.PaymentStatusPending, defaultStatusTitle, IconPackage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			title, icon, message := statusChangedContent(StatusChange{
				Order:                 domain.Order{Number: "ORD-000007"},
				NewStatus:             tc.status,
				PreviousPaymentStatus: tc.prevPayment,
				NewPaymentStatus:      tc.payment,
			})
			if title != tc.wantTitle {
				t.Fatalf("title: expected %q, got %q", tc.wantTitle, title)
			}
			if icon != tc.wantIcon {
				t.Fatalf("icon: expected %q, got %q", tc.wantIcon, icon)
			}
			if message == "" {
				t.Fatal("expected non-empty message")
			}
		})
	}
}

func TestLabelsFallBackToRawValue(t *testing.T) {
	if got := StatusLabel("on_hold"); got != "on_hold" {
		t.Fatalf("unexpected status label %q", got)
	}
	if got := PaymentStatusLabel(domain.PaymentStatusExpired); got != "Pembayaran Kedaluwarsa" {
		t.Fatalf("unexpected payment label %q", got)
	}
}
