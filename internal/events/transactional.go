package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

const defaultMaxDepth = 10

// ErrProcessingDepthExceeded возвращается, если обработчики порождают слишком длинную цепочку событий.
var ErrProcessingDepthExceeded = errors.New("event processing depth exceeded")

// TransactionalPublisher буферизует события и обрабатывает их синхронно внутри транзакции.
// Экземпляр создаётся на каждую попытку транзакции, чтобы повтор начинался с чистого буфера.
//
//	scope.Execute(ctx, func(ctx context.Context) error {
//	    publisher := events.NewTransactionalPublisher(registry, 0)
//	    ...
//	    _ = publisher.Publish(ctx, event)
//	    return publisher.Flush(ctx)
//	})
type TransactionalPublisher struct {
	registry HandlerRegistry
	pending  []Event
	mu       sync.Mutex
	maxDepth int
}

// NewTransactionalPublisher создаёт publisher поверх реестра. maxDepth<=0 означает значение по умолчанию.
func NewTransactionalPublisher(registry HandlerRegistry, maxDepth int) *TransactionalPublisher {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	return &TransactionalPublisher{
		registry: registry,
		maxDepth: maxDepth,
	}
}

// Publish добавляет событие в буфер. Обработка начинается только в Flush.
func (p *TransactionalPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending = append(p.pending, event)
	return nil
}

// Flush синхронно обрабатывает буфер. Обработчики могут публиковать новые события,
// они обрабатываются в том же вызове. Ошибка обработчика означает откат транзакции.
func (p *TransactionalPublisher) Flush(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	depth := 0
	for len(p.pending) > 0 {
		if depth >= p.maxDepth {
			return ErrProcessingDepthExceeded
		}

		event := p.pending[0]
		p.pending = p.pending[1:]

		for _, handler := range p.registry.HandlersFor(event.EventType()) {
			p.mu.Unlock()
			err := handler.Handle(ctx, event)
			p.mu.Lock()
			if err != nil {
				return fmt.Errorf("handler failed for event %s: %w", event.EventType(), err)
			}
		}
		depth++
	}

	return nil
}

// PendingCount возвращает число необработанных событий.
func (p *TransactionalPublisher) PendingCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

var _ Publisher = (*TransactionalPublisher)(nil)
