// Package orders реализует изменения заказов: создание со списанием стока,
// смену статусов, удаление и истечение неоплаченных заказов.
// Побочные эффекты переходов выполняют подписчики событий внутри той же транзакции.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/events"
	"github.com/vladislavdragonenkov/marketplace/internal/telemetry"
	"github.com/vladislavdragonenkov/marketplace/internal/transaction"
)

const (
	// Срок оплаты нового заказа по умолчанию.
	DefaultPaymentTTL = 24 * time.Hour

	maxUpdateAttempts = 3
	baseRetryDelay    = 10 * time.Millisecond
)

// ErrNothingToUpdate возвращается, если не передан ни status, ни payment_status.
var ErrNothingToUpdate = errors.New("status or payment_status is required")

// StockReducer списывает сток под новый заказ.
type StockReducer interface {
	ReduceStock(ctx context.Context, order domain.Order) ([]domain.LowStockSignal, error)
}

// CreateItem — позиция нового заказа.
type CreateItem struct {
	ProductID string
	Quantity  int32
}

// CreateInput описывает новый заказ. Цены и названия берутся из каталога.
type CreateInput struct {
	// ID необязателен: пустой заменяется на UUID.
	ID            string
	CustomerID    string
	StoreID       string
	Items         []CreateItem
	DiscountMinor int64
	ShippingMinor int64
}

// StatusUpdate задаёт новые значения статусов. Пустое поле не меняется.
type StatusUpdate struct {
	OrderID       string
	Status        domain.OrderStatus
	PaymentStatus domain.PaymentStatus
}

// Dependencies задаёт зависимости Service.
type Dependencies struct {
	Scope    transaction.Scope
	Orders   domain.OrderRepository
	Products domain.ProductRepository
	Timeline domain.TimelineRepository
	Stock    StockReducer
	// Подписчики внутри транзакции (lifecycle).
	Handlers events.HandlerRegistry
	// Публикация после коммита (уведомления).
	Bus events.Publisher

	PaymentTTL time.Duration
	Now        func() time.Time
	Logger     *log.Entry
}

// Service — use case изменения заказов.
type Service struct {
	scope      transaction.Scope
	orders     domain.OrderRepository
	products   domain.ProductRepository
	timeline   domain.TimelineRepository
	stock      StockReducer
	handlers   events.HandlerRegistry
	bus        events.Publisher
	paymentTTL time.Duration
	now        func() time.Time
	logger     *log.Entry
}

// NewService создаёт Service.
func NewService(deps Dependencies) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = log.WithField("component", "order-service")
	}
	ttl := deps.PaymentTTL
	if ttl <= 0 {
		ttl = DefaultPaymentTTL
	}
	now := deps.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		scope:      deps.Scope,
		orders:     deps.Orders,
		products:   deps.Products,
		timeline:   deps.Timeline,
		stock:      deps.Stock,
		handlers:   deps.Handlers,
		bus:        deps.Bus,
		paymentTTL: ttl,
		now:        now,
		logger:     logger,
	}
}

// CreateOrder создаёт заказ, списывает сток и публикует order.created в одной транзакции.
// Сигналы низкого остатка публикуются после коммита.
func (s *Service) CreateOrder(ctx context.Context, in CreateInput) (domain.Order, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "orders.create")
	defer span.End()

	if err := validateCreate(in); err != nil {
		return domain.Order{}, err
	}

	var signals []domain.LowStockSignal
	order, err := transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (domain.Order, error) {
		order, err := s.buildOrder(ctx, in)
		if err != nil {
			return domain.Order{}, err
		}
		if err := s.orders.Create(ctx, order); err != nil {
			return domain.Order{}, fmt.Errorf("create order: %w", err)
		}

		signals, err = s.stock.ReduceStock(ctx, order)
		if err != nil {
			return domain.Order{}, err
		}

		publisher := events.NewTransactionalPublisher(s.handlers, 0)
		if err := publisher.Publish(ctx, domain.NewOrderCreated(order)); err != nil {
			return domain.Order{}, err
		}
		if err := publisher.Flush(ctx); err != nil {
			return domain.Order{}, err
		}
		return order, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create order failed")
		return domain.Order{}, err
	}
	span.SetAttributes(attribute.String("order.id", order.ID), attribute.String("order.number", order.Number))

	for _, signal := range signals {
		s.publishAfterCommit(ctx, domain.NewLowStockDetected(signal))
	}

	s.logger.WithFields(log.Fields{
		"order_id":     order.ID,
		"order_number": order.Number,
		"store_id":     order.StoreID,
	}).Info("order created")
	return order, nil
}

// UpdateStatus меняет status и/или payment_status. Повторное сохранение тех же значений
// не считается переходом и не публикует событий. Конфликт версий повторяется с backoff.
func (s *Service) UpdateStatus(ctx context.Context, upd StatusUpdate) (domain.Order, error) {
	if upd.OrderID == "" {
		return domain.Order{}, domain.ErrOrderIDRequired
	}
	if upd.Status == "" && upd.PaymentStatus == "" {
		return domain.Order{}, ErrNothingToUpdate
	}
	if upd.Status != "" && !upd.Status.Valid() {
		return domain.Order{}, domain.ErrInvalidStatus
	}
	if upd.PaymentStatus != "" && !upd.PaymentStatus.Valid() {
		return domain.Order{}, domain.ErrInvalidPaymentStatus
	}

	return s.update(ctx, upd.OrderID, func(order *domain.Order) {
		if upd.Status != "" {
			order.Status = upd.Status
		}
		if upd.PaymentStatus != "" {
			order.PaymentStatus = upd.PaymentStatus
		}
	})
}

// Delete удаляет заказ и публикует order.deleted в той же транзакции.
func (s *Service) Delete(ctx context.Context, orderID string) error {
	if orderID == "" {
		return domain.ErrOrderIDRequired
	}
	ctx, span := telemetry.Tracer().Start(ctx, "orders.delete")
	defer span.End()
	span.SetAttributes(attribute.String("order.id", orderID))

	var deleted domain.OrderDeleted
	err := s.scope.Execute(ctx, func(ctx context.Context) error {
		order, err := s.orders.Get(ctx, orderID)
		if err != nil {
			return err
		}
		if err := s.orders.Delete(ctx, orderID); err != nil {
			return err
		}

		deleted = domain.NewOrderDeleted(order)
		publisher := events.NewTransactionalPublisher(s.handlers, 0)
		if err := publisher.Publish(ctx, deleted); err != nil {
			return err
		}
		return publisher.Flush(ctx)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete order failed")
		return err
	}

	s.publishAfterCommit(ctx, deleted)
	s.logger.WithField("order_id", orderID).Info("order deleted")
	return nil
}

// Get возвращает заказ вместе с таймлайном.
func (s *Service) Get(ctx context.Context, orderID string) (domain.Order, []domain.TimelineEvent, error) {
	if orderID == "" {
		return domain.Order{}, nil, domain.ErrOrderIDRequired
	}
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, nil, err
	}
	if s.timeline == nil {
		return order, nil, nil
	}
	timeline, err := s.timeline.List(ctx, orderID)
	if err != nil {
		return domain.Order{}, nil, fmt.Errorf("load timeline: %w", err)
	}
	return order, timeline, nil
}

// ListByCustomer возвращает заказы клиента, новые первыми.
func (s *Service) ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Order, error) {
	if customerID == "" {
		return nil, domain.ErrCustomerRequired
	}
	return s.orders.ListByCustomer(ctx, customerID, limit)
}

// ExpireUnpaid отменяет неоплаченные заказы с истёкшим сроком оплаты.
// Каждый заказ обрабатывается отдельной транзакцией; статус перепроверяется внутри неё.
func (s *Service) ExpireUnpaid(ctx context.Context, now time.Time, limit int) (int, error) {
	candidates, err := s.orders.ListExpired(ctx, now, limit)
	if err != nil {
		return 0, fmt.Errorf("list expired orders: %w", err)
	}

	expired := 0
	for _, candidate := range candidates {
		if ctx.Err() != nil {
			return expired, ctx.Err()
		}

		changed := false
		_, err := s.update(ctx, candidate.ID, func(order *domain.Order) {
			changed = false
			if order.Status != domain.OrderStatusPendingPayment || order.PaymentStatus != domain.PaymentStatusPending {
				return
			}
			order.Status = domain.OrderStatusCancelled
			order.PaymentStatus = domain.PaymentStatusExpired
			changed = true
		})
		if err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				continue
			}
			s.logger.WithError(err).WithField("order_id", candidate.ID).Error("failed to expire order")
			continue
		}
		if changed {
			expired++
		}
	}
	return expired, nil
}

// update применяет mutate к свежей версии заказа в транзакции.
func (s *Service) update(ctx context.Context, orderID string, mutate func(order *domain.Order)) (domain.Order, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "orders.update")
	defer span.End()
	span.SetAttributes(attribute.String("order.id", orderID))

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		var updated *domain.OrderUpdated
		order, err := transaction.ExecuteWithResult(ctx, s.scope, func(ctx context.Context) (domain.Order, error) {
			updated = nil
			current, err := s.orders.Get(ctx, orderID)
			if err != nil {
				return domain.Order{}, err
			}

			next := current.Clone()
			mutate(&next)
			if next.Status == current.Status && next.PaymentStatus == current.PaymentStatus {
				return current, nil
			}

			next.UpdatedAt = s.now()
			if err := s.orders.Save(ctx, next); err != nil {
				return domain.Order{}, err
			}
			saved, err := s.orders.Get(ctx, orderID)
			if err != nil {
				return domain.Order{}, err
			}

			event := domain.NewOrderUpdated(saved, current.Status, current.PaymentStatus)
			publisher := events.NewTransactionalPublisher(s.handlers, 0)
			if err := publisher.Publish(ctx, event); err != nil {
				return domain.Order{}, err
			}
			if err := publisher.Flush(ctx); err != nil {
				return domain.Order{}, err
			}
			updated = &event
			return saved, nil
		})
		if err == nil {
			if updated != nil {
				s.publishAfterCommit(ctx, *updated)
				s.logger.WithFields(log.Fields{
					"order_id":       orderID,
					"status":         order.Status,
					"payment_status": order.PaymentStatus,
				}).Info("order status updated")
			}
			return order, nil
		}

		if !domain.IsVersionConflict(err) || attempt == maxUpdateAttempts-1 {
			span.RecordError(err)
			span.SetStatus(codes.Error, "update order failed")
			return domain.Order{}, err
		}

		s.logger.WithFields(log.Fields{
			"order_id": orderID,
			"attempt":  attempt + 1,
		}).Warn("version conflict detected, retrying")

		delay := baseRetryDelay * time.Duration(1<<uint(attempt))
		select {
		case <-ctx.Done():
			return domain.Order{}, ctx.Err()
		case <-time.After(delay):
		}
	}
	return domain.Order{}, domain.ErrOrderVersionConflict
}

// buildOrder собирает заказ из каталога: цены и названия фиксируются снимком.
func (s *Service) buildOrder(ctx context.Context, in CreateInput) (domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("product %s: %w", item.ProductID, err)
		}
		if product.StoreID != in.StoreID {
			return domain.Order{}, fmt.Errorf("product %s: %w", item.ProductID, domain.ErrProductStoreMismatch)
		}
		items = append(items, domain.OrderItem{
			ID:             uuid.NewString(),
			ProductID:      product.ID,
			ProductName:    product.Name,
			Quantity:       item.Quantity,
			UnitPriceMinor: product.PriceMinor,
		})
	}

	seq, err := s.orders.NextNumber(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("next order number: %w", err)
	}

	now := s.now()
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	order := domain.Order{
		ID:            id,
		Number:        domain.FormatOrderNumber(seq),
		CustomerID:    in.CustomerID,
		StoreID:       in.StoreID,
		Status:        domain.OrderStatusPendingPayment,
		PaymentStatus: domain.PaymentStatusPending,
		DiscountMinor: in.DiscountMinor,
		ShippingMinor: in.ShippingMinor,
		Items:         items,
		OrderedAt:     now,
		ExpiresAt:     now.Add(s.paymentTTL),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	order.Recalculate()

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, errors.Join(errs...)
	}
	return order, nil
}

func (s *Service) publishAfterCommit(ctx context.Context, event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"event_type":   event.EventType(),
			"aggregate_id": event.AggregateID(),
		}).Error("post-commit publish failed")
	}
}

func validateCreate(in CreateInput) error {
	if in.CustomerID == "" {
		return domain.ErrCustomerRequired
	}
	if in.StoreID == "" {
		return domain.ErrStoreRequired
	}
	if len(in.Items) == 0 {
		return domain.ErrItemsRequired
	}
	if in.DiscountMinor < 0 || in.ShippingMinor < 0 {
		return domain.ErrAmountNegative
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return domain.ErrItemQtyInvalid
		}
	}
	return nil
}
