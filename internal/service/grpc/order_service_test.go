package grpcsvc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/events"
	"github.com/vladislavdragonenkov/marketplace/internal/mail"
	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
	grpcsvc "github.com/vladislavdragonenkov/marketplace/internal/service/grpc"
	"github.com/vladislavdragonenkov/marketplace/internal/service/lifecycle"
	"github.com/vladislavdragonenkov/marketplace/internal/service/notification"
	"github.com/vladislavdragonenkov/marketplace/internal/service/orders"
	"github.com/vladislavdragonenkov/marketplace/internal/service/stock"
	"github.com/vladislavdragonenkov/marketplace/internal/service/storestats"
	"github.com/vladislavdragonenkov/marketplace/internal/storage/memory"
	marketplacev1 "github.com/vladislavdragonenkov/marketplace/proto/marketplace/v1"
)

const bufSize = 1024 * 1024

func idemCtx(key string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "idempotency-key", key)
}

type testEnv struct {
	client   marketplacev1.OrderServiceClient
	products domain.ProductRepository
	stores   domain.StoreRepository
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	logger := loggerForTests()

	orderRepo := memory.NewOrderRepository()
	products := memory.NewProductRepository()
	stores := memory.NewStoreRepository(orderRepo)
	users := memory.NewUserRepository()
	notifications := memory.NewNotificationRepository()
	timeline := memory.NewTimelineRepository()
	outbox := memory.NewOutboxRepository()

	require.NoError(t, users.Create(ctx, domain.User{ID: "customer-1", Name: "Budi", Email: "budi@example.com"}))
	require.NoError(t, users.Create(ctx, domain.User{ID: "owner-1", Name: "Joko", Email: "joko@example.com"}))
	require.NoError(t, stores.Create(ctx, domain.Store{ID: "store-1", OwnerUserID: "owner-1", Name: "Toko Kopi"}))
	kopiStock := int32(12)
	require.NoError(t, products.Create(ctx, domain.Product{ID: "kopi", StoreID: "store-1", Name: "Kopi Arabika", PriceMinor: 15000, Stock: &kopiStock}))

	m := metrics.NewLifecycleMetricsWithRegisterer(prometheus.NewRegistry())
	ledger := stock.NewLedger(products, stock.WithMetrics(m))
	registry := events.NewRegistry(logger)
	lifecycle.NewHandler(lifecycle.Options{
		Stock:    ledger,
		Stats:    storestats.NewAggregator(stores, logger, m),
		Timeline: timeline,
		Outbox:   outbox,
		Logger:   logger,
		Metrics:  m,
	}).Register(registry)
	bus := events.NewBus(logger)
	notification.NewDispatcher(notification.Options{
		Orders:        orderRepo,
		Stores:        stores,
		Users:         users,
		Notifications: notifications,
		Mail:          mail.NewOutboxQueue(outbox),
		Logger:        logger,
		Metrics:       m,
	}).Register(bus)

	useCase := orders.NewService(orders.Dependencies{
		Scope:    memory.NewTxScope(),
		Orders:   orderRepo,
		Products: products,
		Timeline: timeline,
		Stock:    ledger,
		Handlers: registry,
		Bus:      bus,
		Logger:   logger,
	})

	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer()
	marketplacev1.RegisterOrderServiceServer(server, grpcsvc.NewOrderService(useCase, notifications, memory.NewIdempotencyRepository(), logger))

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.WithError(err).Error("grpc serve failed")
		}
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return &testEnv{
		client:   marketplacev1.NewOrderServiceClient(conn),
		products: products,
		stores:   stores,
	}
}

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func (e *testEnv) createOrder(t *testing.T, key string, qty int32) *marketplacev1.Order {
	t.Helper()
	resp, err := e.client.CreateOrder(idemCtx(key), &marketplacev1.CreateOrderRequest{
		CustomerId:    "customer-1",
		StoreId:       "store-1",
		Items:         []*marketplacev1.CreateOrderItem{{ProductId: "kopi", Quantity: qty}},
		ShippingMinor: 9000,
	})
	require.NoError(t, err)
	return resp.Order
}

func (e *testEnv) stock(t *testing.T) int32 {
	t.Helper()
	product, err := e.products.Get(context.Background(), "kopi")
	require.NoError(t, err)
	return *product.Stock
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected grpc status error, got %v", err)
	assert.Equal(t, code, st.Code(), st.Message())
}

func TestOrderService_CreateAndGet(t *testing.T) {
	env := newTestServer(t)

	order := env.createOrder(t, "create-1", 2)
	assert.Equal(t, "ORD-000001", order.Number)
	assert.Equal(t, string(domain.OrderStatusPendingPayment), order.Status)
	assert.Equal(t, string(domain.PaymentStatusPending), order.PaymentStatus)
	assert.Equal(t, int64(30000), order.SubtotalMinor)
	assert.Equal(t, int64(39000), order.GrandTotalMinor)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Kopi Arabika", order.Items[0].ProductName)
	require.NotNil(t, order.ExpiresAt)
	assert.Equal(t, int32(10), env.stock(t))

	got, err := env.client.GetOrder(context.Background(), &marketplacev1.GetOrderRequest{OrderId: order.Id})
	require.NoError(t, err)
	assert.Equal(t, order.Id, got.Order.Id)
	require.NotEmpty(t, got.Timeline)
	assert.Equal(t, domain.TimelineOrderCreated, got.Timeline[0].Type)
}

func TestOrderService_CreateOrder_RequiresIdempotencyKey(t *testing.T) {
	env := newTestServer(t)

	_, err := env.client.CreateOrder(context.Background(), &marketplacev1.CreateOrderRequest{
		CustomerId: "customer-1",
		StoreId:    "store-1",
		Items:      []*marketplacev1.CreateOrderItem{{ProductId: "kopi", Quantity: 1}},
	})
	requireCode(t, err, codes.InvalidArgument)
	assert.Equal(t, int32(12), env.stock(t))
}

func TestOrderService_CreateOrder_IdempotentReplay(t *testing.T) {
	env := newTestServer(t)

	first := env.createOrder(t, "replay-1", 1)
	second := env.createOrder(t, "replay-1", 1)

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, int32(11), env.stock(t), "replay must not reduce stock twice")
}

func TestOrderService_CreateOrder_IdempotencyHashMismatch(t *testing.T) {
	env := newTestServer(t)
	env.createOrder(t, "mismatch-1", 1)

	_, err := env.client.CreateOrder(idemCtx("mismatch-1"), &marketplacev1.CreateOrderRequest{
		CustomerId: "customer-1",
		StoreId:    "store-1",
		Items:      []*marketplacev1.CreateOrderItem{{ProductId: "kopi", Quantity: 3}},
	})
	requireCode(t, err, codes.AlreadyExists)
}

func TestOrderService_CreateOrder_ErrorCodes(t *testing.T) {
	env := newTestServer(t)

	cases := []struct {
		name string
		req  *marketplacev1.CreateOrderRequest
		code codes.Code
	}{
		{
			name: "missing customer",
			req:  &marketplacev1.CreateOrderRequest{StoreId: "store-1", Items: []*marketplacev1.CreateOrderItem{{ProductId: "kopi", Quantity: 1}}},
			code: codes.InvalidArgument,
		},
		{
			name: "nil item",
			req:  &marketplacev1.CreateOrderRequest{CustomerId: "customer-1", StoreId: "store-1", Items: []*marketplacev1.CreateOrderItem{nil}},
			code: codes.InvalidArgument,
		},
		{
			name: "unknown product",
			req:  &marketplacev1.CreateOrderRequest{CustomerId: "customer-1", StoreId: "store-1", Items: []*marketplacev1.CreateOrderItem{{ProductId: "teh", Quantity: 1}}},
			code: codes.NotFound,
		},
		{
			name: "insufficient stock",
			req:  &marketplacev1.CreateOrderRequest{CustomerId: "customer-1", StoreId: "store-1", Items: []*marketplacev1.CreateOrderItem{{ProductId: "kopi", Quantity: 13}}},
			code: codes.FailedPrecondition,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.client.CreateOrder(idemCtx("err-"+tc.name), tc.req)
			requireCode(t, err, tc.code)
		})
	}

	assert.Equal(t, int32(12), env.stock(t))
}

func TestOrderService_FailedRequestReplaysError(t *testing.T) {
	env := newTestServer(t)
	req := &marketplacev1.CreateOrderRequest{CustomerId: "customer-1", StoreId: "store-1", Items: []*marketplacev1.CreateOrderItem{{ProductId: "kopi", Quantity: 13}}}

	_, err := env.client.CreateOrder(idemCtx("failed-1"), req)
	requireCode(t, err, codes.FailedPrecondition)

	// Повтор отдаёт сохранённую ошибку, даже если сток успел пополниться.
	_, err = env.client.CreateOrder(idemCtx("failed-1"), req)
	requireCode(t, err, codes.FailedPrecondition)
}

func TestOrderService_CancelRestoresStockAndNotifies(t *testing.T) {
	env := newTestServer(t)
	order := env.createOrder(t, "cancel-create", 4)
	require.Equal(t, int32(8), env.stock(t))

	resp, err := env.client.UpdateOrderStatus(idemCtx("cancel-1"), &marketplacev1.UpdateOrderStatusRequest{
		OrderId: order.Id,
		Status:  string(domain.OrderStatusCancelled),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.OrderStatusCancelled), resp.Order.Status)
	assert.Equal(t, int32(12), env.stock(t))

	count, err := env.client.CountUnreadNotifications(context.Background(), &marketplacev1.CountUnreadNotificationsRequest{RecipientId: "customer-1"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), count.Count)

	list, err := env.client.ListNotifications(context.Background(), &marketplacev1.ListNotificationsRequest{RecipientId: "customer-1", UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, "/orders/"+order.Id, list.Notifications[0].ActionUrl)

	read, err := env.client.MarkNotificationRead(context.Background(), &marketplacev1.MarkNotificationReadRequest{
		NotificationId: list.Notifications[0].Id,
		RecipientId:    "customer-1",
	})
	require.NoError(t, err)
	require.NotNil(t, read.Notification.ReadAt)

	count, err = env.client.CountUnreadNotifications(context.Background(), &marketplacev1.CountUnreadNotificationsRequest{RecipientId: "customer-1"})
	require.NoError(t, err)
	assert.Zero(t, count.Count)
}

func TestOrderService_CompletedCountsStoreTransaction(t *testing.T) {
	env := newTestServer(t)
	order := env.createOrder(t, "complete-create", 1)

	_, err := env.client.UpdateOrderStatus(idemCtx("complete-1"), &marketplacev1.UpdateOrderStatusRequest{
		OrderId:       order.Id,
		Status:        string(domain.OrderStatusCompleted),
		PaymentStatus: string(domain.PaymentStatusPaid),
	})
	require.NoError(t, err)

	store, err := env.stores.Get(context.Background(), "store-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), store.TransactionsCount)
}

func TestOrderService_UpdateOrderStatus_Errors(t *testing.T) {
	env := newTestServer(t)
	order := env.createOrder(t, "upd-create", 1)

	_, err := env.client.UpdateOrderStatus(idemCtx("upd-1"), &marketplacev1.UpdateOrderStatusRequest{})
	requireCode(t, err, codes.InvalidArgument)

	_, err = env.client.UpdateOrderStatus(idemCtx("upd-2"), &marketplacev1.UpdateOrderStatusRequest{OrderId: order.Id, Status: "refunded"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = env.client.UpdateOrderStatus(idemCtx("upd-3"), &marketplacev1.UpdateOrderStatusRequest{OrderId: order.Id})
	requireCode(t, err, codes.InvalidArgument)

	_, err = env.client.UpdateOrderStatus(idemCtx("upd-4"), &marketplacev1.UpdateOrderStatusRequest{OrderId: "missing", Status: "shipped"})
	requireCode(t, err, codes.NotFound)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	env := newTestServer(t)
	order := env.createOrder(t, "del-create", 5)
	require.Equal(t, int32(7), env.stock(t))

	resp, err := env.client.DeleteOrder(idemCtx("del-1"), &marketplacev1.DeleteOrderRequest{OrderId: order.Id})
	require.NoError(t, err)
	assert.True(t, resp.Deleted)
	assert.Equal(t, int32(12), env.stock(t))

	_, err = env.client.GetOrder(context.Background(), &marketplacev1.GetOrderRequest{OrderId: order.Id})
	requireCode(t, err, codes.NotFound)

	_, err = env.client.DeleteOrder(idemCtx("del-2"), &marketplacev1.DeleteOrderRequest{OrderId: order.Id})
	requireCode(t, err, codes.NotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	env := newTestServer(t)
	env.createOrder(t, "list-1", 1)
	env.createOrder(t, "list-2", 1)

	resp, err := env.client.ListOrders(context.Background(), &marketplacev1.ListOrdersRequest{CustomerId: "customer-1"})
	require.NoError(t, err)
	assert.Len(t, resp.Orders, 2)

	limited, err := env.client.ListOrders(context.Background(), &marketplacev1.ListOrdersRequest{CustomerId: "customer-1", PageSize: 1})
	require.NoError(t, err)
	assert.Len(t, limited.Orders, 1)

	_, err = env.client.ListOrders(context.Background(), &marketplacev1.ListOrdersRequest{})
	requireCode(t, err, codes.InvalidArgument)
}

func TestOrderService_NotificationErrors(t *testing.T) {
	env := newTestServer(t)

	_, err := env.client.ListNotifications(context.Background(), &marketplacev1.ListNotificationsRequest{})
	requireCode(t, err, codes.InvalidArgument)

	_, err = env.client.MarkNotificationRead(context.Background(), &marketplacev1.MarkNotificationReadRequest{NotificationId: "missing", RecipientId: "customer-1"})
	requireCode(t, err, codes.NotFound)

	_, err = env.client.CountUnreadNotifications(context.Background(), &marketplacev1.CountUnreadNotificationsRequest{})
	requireCode(t, err, codes.InvalidArgument)
}

func TestOrderService_Deadline(t *testing.T) {
	env := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := env.client.GetOrder(ctx, &marketplacev1.GetOrderRequest{OrderId: "any"})
	requireCode(t, err, codes.DeadlineExceeded)
}
