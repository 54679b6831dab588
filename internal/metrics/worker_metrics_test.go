package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWorkerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWorkerMetrics(reg)

	m.RecordRun("order-expiry", "ok")
	m.RecordRun("order-expiry", "ok")
	m.AddProcessed("order-expiry", 3)
	m.AddProcessed("order-expiry", 0)
	m.SetLastProcessed("order-expiry", 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.runs.WithLabelValues("order-expiry", "ok")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.processed.WithLabelValues("order-expiry")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.lastProcessed.WithLabelValues("order-expiry")))

	// Повторная регистрация в том же registry переиспользует коллекторы.
	again := NewWorkerMetrics(reg)
	again.RecordRun("order-expiry", "ok")
	assert.Equal(t, 3.0, testutil.ToFloat64(m.runs.WithLabelValues("order-expiry", "ok")))
}
