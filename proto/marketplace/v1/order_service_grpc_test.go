package marketplacev1

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeClientConn struct {
	invoke func(ctx context.Context, method string, args, reply any) error
}

func (f *fakeClientConn) Invoke(ctx context.Context, method string, args any, reply any, _ ...grpc.CallOption) error {
	if f.invoke == nil {
		return errors.New("unexpected Invoke call")
	}
	return f.invoke(ctx, method, args, reply)
}

func (f *fakeClientConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("not implemented")
}

type echoOrderService struct {
	UnimplementedOrderServiceServer
}

func (echoOrderService) GetOrder(_ context.Context, req *GetOrderRequest) (*GetOrderResponse, error) {
	return &GetOrderResponse{Order: &Order{Id: req.GetOrderId()}}, nil
}

func (echoOrderService) CountUnreadNotifications(_ context.Context, req *CountUnreadNotificationsRequest) (*CountUnreadNotificationsResponse, error) {
	return &CountUnreadNotificationsResponse{Count: int32(len(req.GetRecipientId()))}, nil
}

func TestOrderServiceClient_RoutesEveryMethod(t *testing.T) {
	called := map[string]int{}
	conn := &fakeClientConn{invoke: func(_ context.Context, method string, _, reply any) error {
		called[method]++
		if out, ok := reply.(*GetOrderResponse); ok {
			out.Order = &Order{Id: "o-1"}
		}
		return nil
	}}
	client := NewOrderServiceClient(conn)
	ctx := context.Background()

	_, err := client.CreateOrder(ctx, &CreateOrderRequest{})
	require.NoError(t, err)
	_, err = client.UpdateOrderStatus(ctx, &UpdateOrderStatusRequest{})
	require.NoError(t, err)
	_, err = client.DeleteOrder(ctx, &DeleteOrderRequest{})
	require.NoError(t, err)
	got, err := client.GetOrder(ctx, &GetOrderRequest{OrderId: "o-1"})
	require.NoError(t, err)
	assert.Equal(t, "o-1", got.GetOrder().GetId())
	_, err = client.ListOrders(ctx, &ListOrdersRequest{})
	require.NoError(t, err)
	_, err = client.ListNotifications(ctx, &ListNotificationsRequest{})
	require.NoError(t, err)
	_, err = client.MarkNotificationRead(ctx, &MarkNotificationReadRequest{})
	require.NoError(t, err)
	_, err = client.CountUnreadNotifications(ctx, &CountUnreadNotificationsRequest{})
	require.NoError(t, err)

	for _, desc := range OrderService_ServiceDesc.Methods {
		assert.Equal(t, 1, called["/"+OrderService_ServiceDesc.ServiceName+"/"+desc.MethodName], desc.MethodName)
	}
}

func TestOrderServiceClient_PropagatesStatus(t *testing.T) {
	conn := &fakeClientConn{invoke: func(context.Context, string, any, any) error {
		return status.Error(codes.FailedPrecondition, "insufficient stock")
	}}
	client := NewOrderServiceClient(conn)

	resp, err := client.CreateOrder(context.Background(), &CreateOrderRequest{})
	assert.Nil(t, resp)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestUnimplementedOrderServiceServer_ReturnsUnimplemented(t *testing.T) {
	var srv UnimplementedOrderServiceServer
	ctx := context.Background()

	_, err := srv.UpdateOrderStatus(ctx, &UpdateOrderStatusRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
	_, err = srv.MarkNotificationRead(ctx, &MarkNotificationReadRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestGeneratedHandler_DecodeAndInterceptor(t *testing.T) {
	srv := echoOrderService{}
	ctx := context.Background()

	_, err := _OrderService_GetOrder_Handler(srv, ctx, func(any) error { return errors.New("decode failed") }, nil)
	require.Error(t, err)

	decode := func(v any) error {
		v.(*GetOrderRequest).OrderId = "o-7"
		return nil
	}
	resp, err := _OrderService_GetOrder_Handler(srv, ctx, decode, nil)
	require.NoError(t, err)
	assert.Equal(t, "o-7", resp.(*GetOrderResponse).GetOrder().GetId())

	var seen string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		return handler(ctx, req)
	}
	resp, err = _OrderService_CountUnreadNotifications_Handler(srv, ctx, func(v any) error {
		v.(*CountUnreadNotificationsRequest).RecipientId = "owner"
		return nil
	}, interceptor)
	require.NoError(t, err)
	assert.Equal(t, OrderService_CountUnreadNotifications_FullMethodName, seen)
	assert.Equal(t, int32(5), resp.(*CountUnreadNotificationsResponse).GetCount())
}

func TestRegisterOrderServiceServer(t *testing.T) {
	server := grpc.NewServer()
	RegisterOrderServiceServer(server, echoOrderService{})

	info := server.GetServiceInfo()
	require.Contains(t, info, "marketplace.v1.OrderService")
	assert.Len(t, info["marketplace.v1.OrderService"].Methods, 8)
	assert.Equal(t, "proto/marketplace/v1/order_service.proto", OrderService_ServiceDesc.Metadata)
}
