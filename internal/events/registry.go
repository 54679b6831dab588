package events

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// HandlerRegistry отдаёт обработчики по типу события.
type HandlerRegistry interface {
	HandlersFor(eventType string) []Handler
}

// Registry хранит подписки обработчиков. Регистрация выполняется один раз при старте.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *log.Entry
}

// NewRegistry создаёт пустой реестр обработчиков.
func NewRegistry(logger *log.Entry) *Registry {
	if logger == nil {
		logger = log.WithField("component", "event-registry")
	}
	return &Registry{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe добавляет обработчик для типа события.
func (r *Registry) Subscribe(eventType string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[eventType] = append(r.handlers[eventType], handler)
	r.logger.WithField("event_type", eventType).Debug("subscribed to event")
}

// HandlersFor возвращает копию списка обработчиков.
func (r *Registry) HandlersFor(eventType string) []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers := r.handlers[eventType]
	result := make([]Handler, len(handlers))
	copy(result, handlers)
	return result
}

var (
	_ Subscriber      = (*Registry)(nil)
	_ HandlerRegistry = (*Registry)(nil)
)
