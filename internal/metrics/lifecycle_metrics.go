package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LifecycleMetrics содержит метрики жизненного цикла заказа и побочных эффектов.
type LifecycleMetrics struct {
	// Переходы заказа
	ordersCreated prometheus.Counter
	transitions   *prometheus.CounterVec
	ordersDeleted prometheus.Counter

	// Склад и магазины
	stockAdjustments *prometheus.CounterVec
	lowStockSignals  prometheus.Counter
	storeRecomputes  *prometheus.CounterVec

	// Уведомления по каналам
	notifications *prometheus.CounterVec

	handlerDuration *prometheus.HistogramVec

	timelineEvents prometheus.Counter
	outboxEvents   prometheus.Counter

	inFlight prometheus.Gauge
}

// NewLifecycleMetrics создаёт метрики в default registry.
func NewLifecycleMetrics() *LifecycleMetrics {
	return NewLifecycleMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewLifecycleMetricsWithRegisterer создаёт метрики в переданном registry; повторная регистрация переиспользует коллекторы.
func NewLifecycleMetricsWithRegisterer(registerer prometheus.Registerer) *LifecycleMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &LifecycleMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "marketplace_orders_created_total",
			Help: "Total number of orders created",
		}),
		transitions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "marketplace_order_transitions_total",
			Help: "Total number of order status transitions grouped by source and target status",
		}, []string{"from", "to"}),
		ordersDeleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "marketplace_orders_deleted_total",
			Help: "Total number of deleted orders",
		}),
		stockAdjustments: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "marketplace_stock_adjustments_total",
			Help: "Total number of stock adjustments grouped by direction and result",
		}, []string{"direction", "result"}),
		lowStockSignals: registerCounter(registerer, prometheus.CounterOpts{
			Name: "marketplace_low_stock_signals_total",
			Help: "Total number of low stock signals emitted",
		}),
		storeRecomputes: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "marketplace_store_recomputes_total",
			Help: "Total number of store transactions_count recomputations grouped by result",
		}, []string{"result"}),
		notifications: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "marketplace_notifications_total",
			Help: "Total number of notification deliveries grouped by kind, channel and result",
		}, []string{"kind", "channel", "result"}),
		handlerDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "marketplace_lifecycle_handler_duration_seconds",
			Help:    "Duration of lifecycle event handling in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"event"}),
		timelineEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "marketplace_timeline_events_total",
			Help: "Total number of timeline events recorded",
		}),
		outboxEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "marketplace_outbox_events_total",
			Help: "Total number of outbox events enqueued",
		}),
		inFlight: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "marketplace_lifecycle_in_flight",
			Help: "Number of lifecycle events currently being handled",
		}),
	}
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *LifecycleMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordTransition учитывает переход статуса.
func (m *LifecycleMetrics) RecordTransition(from, to string) {
	m.transitions.WithLabelValues(from, to).Inc()
}

// RecordOrderDeleted увеличивает счётчик удалённых заказов.
func (m *LifecycleMetrics) RecordOrderDeleted() {
	m.ordersDeleted.Inc()
}

// RecordStockAdjustment учитывает изменение остатка; direction принимает reduce или restore.
func (m *LifecycleMetrics) RecordStockAdjustment(direction, result string) {
	m.stockAdjustments.WithLabelValues(direction, result).Inc()
}

// RecordLowStockSignal увеличивает счётчик сигналов низкого остатка.
func (m *LifecycleMetrics) RecordLowStockSignal() {
	m.lowStockSignals.Inc()
}

// RecordStoreRecompute учитывает пересчёт transactions_count.
func (m *LifecycleMetrics) RecordStoreRecompute(result string) {
	m.storeRecomputes.WithLabelValues(result).Inc()
}

// RecordNotification учитывает доставку уведомления по каналу.
func (m *LifecycleMetrics) RecordNotification(kind, channel, result string) {
	m.notifications.WithLabelValues(kind, channel, result).Inc()
}

// ObserveHandler записывает длительность обработки события.
func (m *LifecycleMetrics) ObserveHandler(event string, duration time.Duration) {
	m.handlerDuration.WithLabelValues(event).Observe(duration.Seconds())
}

// RecordTimelineEvent увеличивает счётчик событий timeline.
func (m *LifecycleMetrics) RecordTimelineEvent() {
	m.timelineEvents.Inc()
}

// RecordOutboxEvent увеличивает счётчик событий outbox.
func (m *LifecycleMetrics) RecordOutboxEvent() {
	m.outboxEvents.Inc()
}

// HandlerStarted увеличивает число обрабатываемых событий.
func (m *LifecycleMetrics) HandlerStarted() {
	m.inFlight.Inc()
}

// HandlerFinished уменьшает число обрабатываемых событий.
func (m *LifecycleMetrics) HandlerFinished() {
	m.inFlight.Dec()
}
