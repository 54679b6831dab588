package events_test

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/marketplace/internal/events"
)

type testEvent struct {
	events.BaseEvent
}

func newTestEvent(eventType string) testEvent {
	return testEvent{BaseEvent: events.NewBaseEvent(eventType, "agg-1")}
}

func TestTransactionalPublisher_FlushDispatchesInOrder(t *testing.T) {
	registry := events.NewRegistry(nil)
	var seen []string
	registry.Subscribe("a", events.HandlerFunc(func(_ context.Context, e events.Event) error {
		seen = append(seen, "a:"+e.AggregateID())
		return nil
	}))
	registry.Subscribe("b", events.HandlerFunc(func(context.Context, events.Event) error {
		seen = append(seen, "b")
		return nil
	}))

	publisher := events.NewTransactionalPublisher(registry, 0)
	ctx := context.Background()
	require.NoError(t, publisher.Publish(ctx, newTestEvent("a")))
	require.NoError(t, publisher.Publish(ctx, newTestEvent("b")))
	require.Equal(t, 2, publisher.PendingCount())
	require.Empty(t, seen, "handlers must not run before Flush")

	require.NoError(t, publisher.Flush(ctx))
	require.Equal(t, []string{"a:agg-1", "b"}, seen)
	require.Zero(t, publisher.PendingCount())
}

func TestTransactionalPublisher_HandlerErrorStopsFlush(t *testing.T) {
	registry := events.NewRegistry(nil)
	boom := errors.New("boom")
	registry.Subscribe("a", events.HandlerFunc(func(context.Context, events.Event) error { return boom }))

	publisher := events.NewTransactionalPublisher(registry, 0)
	require.NoError(t, publisher.Publish(context.Background(), newTestEvent("a")))

	err := publisher.Flush(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestTransactionalPublisher_NestedEventsAndDepthLimit(t *testing.T) {
	registry := events.NewRegistry(nil)
	publisher := events.NewTransactionalPublisher(registry, 3)
	registry.Subscribe("loop", events.HandlerFunc(func(ctx context.Context, _ events.Event) error {
		return publisher.Publish(ctx, newTestEvent("loop"))
	}))

	require.NoError(t, publisher.Publish(context.Background(), newTestEvent("loop")))
	err := publisher.Flush(context.Background())
	require.ErrorIs(t, err, events.ErrProcessingDepthExceeded)
}

func TestBus_LogsHandlerErrorsAndContinues(t *testing.T) {
	logger, hook := test.NewNullLogger()
	bus := events.NewBus(log.NewEntry(logger))

	calls := 0
	bus.Subscribe("a", events.HandlerFunc(func(context.Context, events.Event) error {
		calls++
		return errors.New("first failed")
	}))
	bus.Subscribe("a", events.HandlerFunc(func(context.Context, events.Event) error {
		calls++
		return nil
	}))

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("a")))
	require.Equal(t, 2, calls)
	require.NotNil(t, hook.LastEntry())
	require.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
}
