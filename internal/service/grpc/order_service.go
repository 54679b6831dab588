package grpcsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/service/orders"
	marketplacev1 "github.com/vladislavdragonenkov/marketplace/proto/marketplace/v1"
)

// OrderUseCase — операции над заказами, которые использует API.
type OrderUseCase interface {
	CreateOrder(ctx context.Context, in orders.CreateInput) (domain.Order, error)
	UpdateStatus(ctx context.Context, upd orders.StatusUpdate) (domain.Order, error)
	Delete(ctx context.Context, orderID string) error
	Get(ctx context.Context, orderID string) (domain.Order, []domain.TimelineEvent, error)
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Order, error)
}

// OrderService реализует gRPC API поверх use case заказов и inbox уведомлений.
type OrderService struct {
	marketplacev1.UnimplementedOrderServiceServer

	orders        OrderUseCase
	notifications domain.NotificationRepository
	idemRepo      domain.IdempotencyRepository
	logger        *log.Entry
	now           func() time.Time
}

const (
	defaultListOrdersLimit        = 100
	defaultListNotificationsLimit = 50
)

// NewOrderService конструирует сервис с зависимостями.
func NewOrderService(
	useCase OrderUseCase,
	notifications domain.NotificationRepository,
	idemRepo domain.IdempotencyRepository,
	logger *log.Entry,
) *OrderService {
	if logger == nil {
		logger = log.New().WithField("component", "order-grpc")
	}
	return &OrderService{
		orders:        useCase,
		notifications: notifications,
		idemRepo:      idemRepo,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder создаёт заказ и списывает сток.
func (s *OrderService) CreateOrder(ctx context.Context, req *marketplacev1.CreateOrderRequest) (*marketplacev1.CreateOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		s,
		ctx,
		marketplacev1.OrderService_CreateOrder_FullMethodName,
		req,
		func() *marketplacev1.CreateOrderResponse { return &marketplacev1.CreateOrderResponse{} },
		func(ctx context.Context) (*marketplacev1.CreateOrderResponse, error) {
			return s.createOrderInternal(ctx, req)
		},
	)
}

func (s *OrderService) createOrderInternal(ctx context.Context, req *marketplacev1.CreateOrderRequest) (*marketplacev1.CreateOrderResponse, error) {
	items := make([]orders.CreateItem, 0, len(req.Items))
	for idx, item := range req.GetItems() {
		if item == nil {
			return nil, status.Errorf(codes.InvalidArgument, "item[%d] is nil", idx)
		}
		items = append(items, orders.CreateItem{ProductID: item.GetProductId(), Quantity: item.GetQuantity()})
	}

	order, err := s.orders.CreateOrder(ctx, orders.CreateInput{
		ID:            req.GetOrderId(),
		CustomerID:    req.GetCustomerId(),
		StoreID:       req.GetStoreId(),
		Items:         items,
		DiscountMinor: req.GetDiscountMinor(),
		ShippingMinor: req.GetShippingMinor(),
	})
	if err != nil {
		return nil, s.statusError(err, "CreateOrder", req.GetOrderId())
	}

	return &marketplacev1.CreateOrderResponse{Order: toAPIOrder(order)}, nil
}

// UpdateOrderStatus меняет status и/или payment_status заказа.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, req *marketplacev1.UpdateOrderStatusRequest) (*marketplacev1.UpdateOrderStatusResponse, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	return withIdempotency(
		s,
		ctx,
		marketplacev1.OrderService_UpdateOrderStatus_FullMethodName,
		req,
		func() *marketplacev1.UpdateOrderStatusResponse { return &marketplacev1.UpdateOrderStatusResponse{} },
		func(ctx context.Context) (*marketplacev1.UpdateOrderStatusResponse, error) {
			order, err := s.orders.UpdateStatus(ctx, orders.StatusUpdate{
				OrderID:       req.GetOrderId(),
				Status:        domain.OrderStatus(req.GetStatus()),
				PaymentStatus: domain.PaymentStatus(req.GetPaymentStatus()),
			})
			if err != nil {
				return nil, s.statusError(err, "UpdateOrderStatus", req.GetOrderId())
			}
			return &marketplacev1.UpdateOrderStatusResponse{Order: toAPIOrder(order)}, nil
		},
	)
}

// DeleteOrder удаляет заказ; сток активного заказа возвращается.
func (s *OrderService) DeleteOrder(ctx context.Context, req *marketplacev1.DeleteOrderRequest) (*marketplacev1.DeleteOrderResponse, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	return withIdempotency(
		s,
		ctx,
		marketplacev1.OrderService_DeleteOrder_FullMethodName,
		req,
		func() *marketplacev1.DeleteOrderResponse { return &marketplacev1.DeleteOrderResponse{} },
		func(ctx context.Context) (*marketplacev1.DeleteOrderResponse, error) {
			if err := s.orders.Delete(ctx, req.GetOrderId()); err != nil {
				return nil, s.statusError(err, "DeleteOrder", req.GetOrderId())
			}
			return &marketplacev1.DeleteOrderResponse{OrderId: req.GetOrderId(), Deleted: true}, nil
		},
	)
}

// GetOrder возвращает состояние заказа и таймлайн событий.
func (s *OrderService) GetOrder(ctx context.Context, req *marketplacev1.GetOrderRequest) (*marketplacev1.GetOrderResponse, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, timeline, err := s.orders.Get(ctx, req.GetOrderId())
	if err != nil {
		return nil, s.statusError(err, "GetOrder", req.GetOrderId())
	}

	result := make([]*marketplacev1.TimelineEvent, 0, len(timeline))
	for _, event := range timeline {
		result = append(result, &marketplacev1.TimelineEvent{
			Type:       event.Type,
			Reason:     event.Reason,
			OccurredAt: timestamppb.New(event.Occurred),
		})
	}

	return &marketplacev1.GetOrderResponse{Order: toAPIOrder(order), Timeline: result}, nil
}

// ListOrders возвращает заказы клиента.
func (s *OrderService) ListOrders(ctx context.Context, req *marketplacev1.ListOrdersRequest) (*marketplacev1.ListOrdersResponse, error) {
	if req.GetCustomerId() == "" {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	limit := int(req.GetPageSize())
	if limit <= 0 {
		limit = defaultListOrdersLimit
	}

	list, err := s.orders.ListByCustomer(ctx, req.GetCustomerId(), limit)
	if err != nil {
		return nil, s.statusError(err, "ListOrders", "")
	}

	result := make([]*marketplacev1.Order, 0, len(list))
	for _, order := range list {
		result = append(result, toAPIOrder(order))
	}

	return &marketplacev1.ListOrdersResponse{Orders: result}, nil
}

// ListNotifications возвращает inbox получателя, новые первыми.
func (s *OrderService) ListNotifications(ctx context.Context, req *marketplacev1.ListNotificationsRequest) (*marketplacev1.ListNotificationsResponse, error) {
	if req.GetRecipientId() == "" {
		return nil, status.Error(codes.InvalidArgument, "recipient_id is required")
	}
	if s.notifications == nil {
		return nil, status.Error(codes.Unavailable, "notifications are not configured")
	}

	limit := int(req.GetPageSize())
	if limit <= 0 {
		limit = defaultListNotificationsLimit
	}

	list, err := s.notifications.ListByRecipient(ctx, req.GetRecipientId(), req.GetUnreadOnly(), limit)
	if err != nil {
		return nil, s.statusError(err, "ListNotifications", "")
	}

	result := make([]*marketplacev1.Notification, 0, len(list))
	for _, n := range list {
		item, err := toAPINotification(n)
		if err != nil {
			return nil, s.statusError(err, "ListNotifications", "")
		}
		result = append(result, item)
	}
	return &marketplacev1.ListNotificationsResponse{Notifications: result}, nil
}

// MarkNotificationRead отмечает уведомление прочитанным.
func (s *OrderService) MarkNotificationRead(ctx context.Context, req *marketplacev1.MarkNotificationReadRequest) (*marketplacev1.MarkNotificationReadResponse, error) {
	if req.GetNotificationId() == "" || req.GetRecipientId() == "" {
		return nil, status.Error(codes.InvalidArgument, "notification_id and recipient_id are required")
	}
	if s.notifications == nil {
		return nil, status.Error(codes.Unavailable, "notifications are not configured")
	}

	n, err := s.notifications.MarkRead(ctx, req.GetNotificationId(), req.GetRecipientId(), s.now())
	if err != nil {
		return nil, s.statusError(err, "MarkNotificationRead", "")
	}
	item, err := toAPINotification(n)
	if err != nil {
		return nil, s.statusError(err, "MarkNotificationRead", "")
	}
	return &marketplacev1.MarkNotificationReadResponse{Notification: item}, nil
}

// CountUnreadNotifications возвращает число непрочитанных уведомлений.
func (s *OrderService) CountUnreadNotifications(ctx context.Context, req *marketplacev1.CountUnreadNotificationsRequest) (*marketplacev1.CountUnreadNotificationsResponse, error) {
	if req.GetRecipientId() == "" {
		return nil, status.Error(codes.InvalidArgument, "recipient_id is required")
	}
	if s.notifications == nil {
		return nil, status.Error(codes.Unavailable, "notifications are not configured")
	}

	count, err := s.notifications.CountUnread(ctx, req.GetRecipientId())
	if err != nil {
		return nil, s.statusError(err, "CountUnreadNotifications", "")
	}
	return &marketplacev1.CountUnreadNotificationsResponse{Count: int32(count)}, nil //nolint:gosec // inbox size fits int32.
}

// statusError переводит доменные ошибки в gRPC-коды; внутренние ошибки логируются.
func (s *OrderService) statusError(err error, operation, orderID string) error {
	code := codeFor(err)
	entry := s.logger.WithError(err).WithFields(log.Fields{
		"operation": operation,
		"order_id":  orderID,
	})
	if code == codes.Internal {
		entry.Error("request failed")
		return status.Error(codes.Internal, "internal error")
	}
	entry.Debug("request rejected")
	return status.Error(code, err.Error())
}

var invalidArgumentErrors = []error{
	domain.ErrCustomerRequired,
	domain.ErrStoreRequired,
	domain.ErrItemsRequired,
	domain.ErrAmountNegative,
	domain.ErrItemQtyInvalid,
	domain.ErrItemPriceInvalid,
	domain.ErrAmountMismatch,
	domain.ErrGrandTotalMismatch,
	domain.ErrInvalidStatus,
	domain.ErrInvalidPaymentStatus,
	domain.ErrOrderIDRequired,
	orders.ErrNothingToUpdate,
}

func codeFor(err error) codes.Code {
	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		return st.Code()
	}
	for _, target := range invalidArgumentErrors {
		if errors.Is(err, target) {
			return codes.InvalidArgument
		}
	}

	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		return codes.NotFound
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrStockUntracked),
		errors.Is(err, domain.ErrProductStoreMismatch):
		return codes.FailedPrecondition
	case errors.Is(err, domain.ErrStockOverflow):
		return codes.OutOfRange
	case errors.Is(err, domain.ErrOrderVersionConflict):
		return codes.Aborted
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}

func toAPIOrder(order domain.Order) *marketplacev1.Order {
	items := make([]*marketplacev1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &marketplacev1.OrderItem{
			Id:             item.ID,
			ProductId:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceMinor: item.UnitPriceMinor,
			SubtotalMinor:  item.SubtotalMinor,
		})
	}

	result := &marketplacev1.Order{
		Id:              order.ID,
		Number:          order.Number,
		CustomerId:      order.CustomerID,
		StoreId:         order.StoreID,
		Status:          string(order.Status),
		PaymentStatus:   string(order.PaymentStatus),
		SubtotalMinor:   order.SubtotalMinor,
		DiscountMinor:   order.DiscountMinor,
		ShippingMinor:   order.ShippingMinor,
		GrandTotalMinor: order.GrandTotalMinor,
		Items:           items,
		Version:         order.Version,
		OrderedAt:       timestamppb.New(order.OrderedAt),
	}
	if !order.ExpiresAt.IsZero() {
		result.ExpiresAt = timestamppb.New(order.ExpiresAt)
	}
	return result
}

func toAPINotification(n domain.Notification) (*marketplacev1.Notification, error) {
	result := &marketplacev1.Notification{
		Id:          n.ID,
		RecipientId: n.RecipientID,
		Kind:        string(n.Kind),
		Title:       n.Title,
		Message:     n.Message,
		Icon:        n.Icon,
		ActionUrl:   n.ActionURL,
		CreatedAt:   timestamppb.New(n.CreatedAt),
	}
	if len(n.Payload) > 0 {
		payload, err := structpb.NewStruct(n.Payload)
		if err != nil {
			return nil, fmt.Errorf("encode notification %s payload: %w", n.ID, err)
		}
		result.Payload = payload
	}
	if n.ReadAt != nil {
		result.ReadAt = timestamppb.New(*n.ReadAt)
	}
	return result, nil
}
