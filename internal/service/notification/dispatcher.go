// Package notification доставляет уведомления о заказах и остатках
// по независимым каналам: in-app запись и письмо.
package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/mail"
	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
	"github.com/vladislavdragonenkov/marketplace/internal/telemetry"
)

const (
	resultOK      = "ok"
	resultFailed  = "failed"
	resultSkipped = "skipped"
)

// routes фиксирует набор каналов для каждого вида уведомления. Каналы выполняются по порядку.
var routes = map[domain.NotificationKind][]domain.Channel{
	domain.NotificationKindOrderStatusChanged: {domain.ChannelDatabase, domain.ChannelMail},
	domain.NotificationKindOrderReviewRequest: {domain.ChannelDatabase},
	domain.NotificationKindLowStock:           {domain.ChannelDatabase, domain.ChannelMail},
}

// Channels возвращает каналы доставки вида уведомления.
func Channels(kind domain.NotificationKind) []domain.Channel {
	channels := routes[kind]
	result := make([]domain.Channel, len(channels))
	copy(result, channels)
	return result
}

// StatusChange — переход заказа, о котором нужно уведомить покупателя.
type StatusChange struct {
	Order                 domain.Order
	PreviousStatus        domain.OrderStatus
	NewStatus             domain.OrderStatus
	PreviousPaymentStatus domain.PaymentStatus
	NewPaymentStatus      domain.PaymentStatus
}

// Changed сообщает, изменился ли status или payment_status.
func (c StatusChange) Changed() bool {
	return c.PreviousStatus != c.NewStatus || c.PreviousPaymentStatus != c.NewPaymentStatus
}

// Options задаёт зависимости Dispatcher.
type Options struct {
	Orders        domain.OrderRepository
	Stores        domain.StoreRepository
	Users         domain.UserRepository
	Notifications domain.NotificationRepository
	Mail          mail.Queue
	// Базовый адрес витрины для ссылок в уведомлениях.
	AppURL  string
	Logger  *log.Entry
	Metrics *metrics.LifecycleMetrics
}

// Dispatcher рассылает уведомления. Ошибки каналов логируются и не возвращаются.
type Dispatcher struct {
	orders        domain.OrderRepository
	stores        domain.StoreRepository
	users         domain.UserRepository
	notifications domain.NotificationRepository
	mail          mail.Queue
	appURL        string
	logger        *log.Entry
	metrics       *metrics.LifecycleMetrics
}

// NewDispatcher создаёт Dispatcher.
func NewDispatcher(opts Options) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "notification-dispatcher")
	}
	return &Dispatcher{
		orders:        opts.Orders,
		stores:        opts.Stores,
		users:         opts.Users,
		notifications: opts.Notifications,
		mail:          opts.Mail,
		appURL:        strings.TrimRight(opts.AppURL, "/"),
		logger:        logger,
		metrics:       opts.Metrics,
	}
}

// delivery описывает одно уведомление одному получателю.
type delivery struct {
	kind      domain.NotificationKind
	recipient domain.User
	fields    log.Fields
	inApp     domain.Notification
	mail      mail.Job
}

// orderReadSet — данные, которые читаются один раз перед рассылкой.
type orderReadSet struct {
	order    domain.Order
	store    domain.Store
	customer domain.User
	hasUser  bool
}

// NotifyStatusChanged уведомляет покупателя о смене статуса заказа.
// Без изменений ничего не делает. Возвращает только ошибки чтения данных.
func (d *Dispatcher) NotifyStatusChanged(ctx context.Context, change StatusChange) error {
	if !change.Changed() {
		return nil
	}

	ctx, span := telemetry.Tracer().Start(ctx, "notification.status_changed")
	defer span.End()
	span.SetAttributes(
		attribute.String("order.id", change.Order.ID),
		attribute.String("order.status.previous", string(change.PreviousStatus)),
		attribute.String("order.status.new", string(change.NewStatus)),
	)

	reads, err := d.loadOrderReadSet(ctx, change.Order)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !reads.hasUser {
		d.logger.WithField("order_id", change.Order.ID).Debug("order has no customer, notifications skipped")
		return nil
	}
	change.Order = reads.order

	d.deliver(ctx, d.statusChangedDelivery(change, reads))
	if change.NewStatus == domain.OrderStatusCompleted && change.PreviousStatus != domain.OrderStatusCompleted {
		d.deliver(ctx, d.reviewRequestDelivery(reads))
	}
	return nil
}

// NotifyLowStock предупреждает владельца магазина о заканчивающемся товаре.
func (d *Dispatcher) NotifyLowStock(ctx context.Context, signal domain.LowStockSignal) error {
	ctx, span := telemetry.Tracer().Start(ctx, "notification.low_stock")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", signal.ProductID), attribute.Int("product.stock", int(signal.CurrentStock)))

	fields := log.Fields{"product_id": signal.ProductID, "store_id": signal.StoreID}

	store, err := d.stores.Get(ctx, signal.StoreID)
	if err != nil {
		if domain.IsDataGap(err) {
			d.logger.WithFields(fields).Debug("store not found, low stock notification skipped")
			return nil
		}
		return fmt.Errorf("load store %s: %w", signal.StoreID, err)
	}
	owner, err := d.users.Get(ctx, store.OwnerUserID)
	if err != nil {
		if domain.IsDataGap(err) {
			d.logger.WithFields(fields).Debug("store owner not found, low stock notification skipped")
			return nil
		}
		return fmt.Errorf("load store owner %s: %w", store.OwnerUserID, err)
	}

	title := "Stok Menipis"
	actionURL := d.url("/seller/products/" + signal.ProductID)
	d.deliver(ctx, delivery{
		kind:      domain.NotificationKindLowStock,
		recipient: owner,
		fields:    fields,
		inApp: domain.Notification{
			RecipientID: owner.ID,
			Kind:        domain.NotificationKindLowStock,
			Title:       title,
			Message:     fmt.Sprintf("Stok produk %s tinggal %d.", signal.ProductName, signal.CurrentStock),
			Icon:        IconAlertTriangle,
			ActionURL:   actionURL,
			Payload: map[string]any{
				"product_name":  signal.ProductName,
				"current_stock": signal.CurrentStock,
				"product_id":    signal.ProductID,
			},
		},
		mail: mail.Job{
			Template: mail.TemplateLowStock,
			To:       owner.Email,
			ToName:   owner.Name,
			Subject:  title,
			Data: mail.Data{
				Product:   &mail.ProductSummary{ID: signal.ProductID, Name: signal.ProductName, CurrentStock: signal.CurrentStock},
				StoreName: store.Name,
				ActionURL: actionURL,
			},
		},
	})
	return nil
}

// loadOrderReadSet читает позиции (если не загружены), магазин и покупателя.
// Отсутствующие магазин и покупатель не считаются ошибкой.
func (d *Dispatcher) loadOrderReadSet(ctx context.Context, order domain.Order) (orderReadSet, error) {
	reads := orderReadSet{order: order}

	if len(order.Items) == 0 && order.ID != "" {
		stored, err := d.orders.Get(ctx, order.ID)
		switch {
		case err == nil:
			reads.order.Items = stored.Items
		case errors.Is(err, domain.ErrOrderNotFound):
		default:
			return orderReadSet{}, fmt.Errorf("load order items %s: %w", order.ID, err)
		}
	}

	if order.StoreID != "" {
		store, err := d.stores.Get(ctx, order.StoreID)
		switch {
		case err == nil:
			reads.store = store
		case domain.IsDataGap(err):
		default:
			return orderReadSet{}, fmt.Errorf("load store %s: %w", order.StoreID, err)
		}
	}

	if order.CustomerID == "" {
		return reads, nil
	}
	customer, err := d.users.Get(ctx, order.CustomerID)
	switch {
	case err == nil:
		reads.customer = customer
		reads.hasUser = true
	case domain.IsDataGap(err):
	default:
		return orderReadSet{}, fmt.Errorf("load customer %s: %w", order.CustomerID, err)
	}
	return reads, nil
}

func (d *Dispatcher) statusChangedDelivery(change StatusChange, reads orderReadSet) delivery {
	order := change.Order
	title, icon, message := statusChangedContent(change)
	actionURL := d.url("/orders/" + order.ID)

	return delivery{
		kind:      domain.NotificationKindOrderStatusChanged,
		recipient: reads.customer,
		fields:    log.Fields{"order_id": order.ID},
		inApp: domain.Notification{
			RecipientID: reads.customer.ID,
			Kind:        domain.NotificationKindOrderStatusChanged,
			Title:       title,
			Message:     message,
			Icon:        icon,
			ActionURL:   actionURL,
			Payload: map[string]any{
				"order_id":       order.ID,
				"order_number":   order.Number,
				"status":         string(change.NewStatus),
				"payment_status": string(change.NewPaymentStatus),
			},
		},
		mail: mail.Job{
			Template: mail.TemplateOrderStatusChanged,
			To:       reads.customer.Email,
			ToName:   reads.customer.Name,
			Subject:  title,
			Data: mail.Data{
				Order:                 orderSummary(order),
				PreviousStatus:        string(change.PreviousStatus),
				NewStatus:             string(change.NewStatus),
				PreviousPaymentStatus: string(change.PreviousPaymentStatus),
				NewPaymentStatus:      string(change.NewPaymentStatus),
				StatusLabel:           StatusLabel(change.NewStatus),
				PaymentStatusLabel:    PaymentStatusLabel(change.NewPaymentStatus),
				StoreName:             reads.store.Name,
				ActionURL:             actionURL,
			},
		},
	}
}

func (d *Dispatcher) reviewRequestDelivery(reads orderReadSet) delivery {
	order := reads.order
	return delivery{
		kind:      domain.NotificationKindOrderReviewRequest,
		recipient: reads.customer,
		fields:    log.Fields{"order_id": order.ID},
		inApp: domain.Notification{
			RecipientID: reads.customer.ID,
			Kind:        domain.NotificationKindOrderReviewRequest,
			Title:       "Beri Ulasan Produk",
			Message:     fmt.Sprintf("Pesanan %s telah selesai. Bagikan ulasan Anda untuk produk yang dibeli.", order.Number),
			Icon:        IconStar,
			ActionURL:   d.url("/orders/" + order.ID + "/review"),
			Payload: map[string]any{
				"order_id":     order.ID,
				"order_number": order.Number,
			},
		},
	}
}

// deliver выполняет каналы вида уведомления. Ошибка одного канала не останавливает остальные.
func (d *Dispatcher) deliver(ctx context.Context, dl delivery) {
	for _, channel := range routes[dl.kind] {
		var err error
		switch channel {
		case domain.ChannelDatabase:
			err = d.sendDatabase(ctx, dl)
		case domain.ChannelMail:
			if !dl.recipient.HasEmail() {
				d.logger.WithFields(dl.fields).WithField("recipient_id", dl.recipient.ID).
					Warn("recipient has no email, mail notification skipped")
				d.record(dl.kind, channel, resultSkipped)
				continue
			}
			err = d.sendMail(ctx, dl)
		}

		if err != nil {
			d.logger.WithError(err).WithFields(dl.fields).WithFields(log.Fields{
				"kind":    dl.kind,
				"channel": channel,
			}).Error("notification delivery failed")
			d.record(dl.kind, channel, resultFailed)
			continue
		}
		d.record(dl.kind, channel, resultOK)
	}
}

func (d *Dispatcher) sendDatabase(ctx context.Context, dl delivery) error {
	if _, err := d.notifications.Create(ctx, dl.inApp); err != nil {
		return fmt.Errorf("store in-app notification: %w", err)
	}
	return nil
}

func (d *Dispatcher) sendMail(ctx context.Context, dl delivery) error {
	if d.mail == nil {
		return errors.New("mail queue is not configured")
	}
	return d.mail.Enqueue(ctx, dl.mail)
}

func (d *Dispatcher) url(path string) string {
	return d.appURL + path
}

func (d *Dispatcher) record(kind domain.NotificationKind, channel domain.Channel, result string) {
	if d.metrics != nil {
		d.metrics.RecordNotification(string(kind), string(channel), result)
	}
}

func orderSummary(order domain.Order) *mail.OrderSummary {
	items := make([]mail.ItemSummary, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, mail.ItemSummary{
			Name:          item.ProductName,
			Quantity:      item.Quantity,
			SubtotalMinor: item.SubtotalMinor,
		})
	}
	return &mail.OrderSummary{
		ID:              order.ID,
		Number:          order.Number,
		GrandTotalMinor: order.GrandTotalMinor,
		Items:           items,
	}
}
