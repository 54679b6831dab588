package metrics

import "github.com/prometheus/client_golang/prometheus"

// WorkerMetrics — метрики периодических воркеров (очистка idempotency, истечение заказов).
type WorkerMetrics struct {
	runs          *prometheus.CounterVec
	processed     *prometheus.CounterVec
	lastProcessed *prometheus.GaugeVec
}

// NewWorkerMetrics создаёт метрики в переданном registry; nil означает default registry.
func NewWorkerMetrics(registerer prometheus.Registerer) *WorkerMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &WorkerMetrics{
		runs: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "marketplace_worker_runs_total",
			Help: "Total number of periodic worker runs grouped by worker and result.",
		}, []string{"worker", "result"}),
		processed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "marketplace_worker_processed_total",
			Help: "Total number of records processed by periodic workers.",
		}, []string{"worker"}),
		lastProcessed: registerGaugeVec(registerer, prometheus.GaugeOpts{
			Name: "marketplace_worker_last_processed",
			Help: "Number of records processed during the last run.",
		}, []string{"worker"}),
	}
}

// RecordRun учитывает завершённый цикл воркера.
func (m *WorkerMetrics) RecordRun(worker, result string) {
	m.runs.WithLabelValues(worker, result).Inc()
}

// AddProcessed увеличивает счётчик обработанных записей.
func (m *WorkerMetrics) AddProcessed(worker string, n int) {
	if n > 0 {
		m.processed.WithLabelValues(worker).Add(float64(n))
	}
}

// SetLastProcessed фиксирует результат последнего цикла.
func (m *WorkerMetrics) SetLastProcessed(worker string, n int) {
	m.lastProcessed.WithLabelValues(worker).Set(float64(n))
}
