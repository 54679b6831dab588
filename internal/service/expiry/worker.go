// Package expiry отменяет заказы, не оплаченные в срок.
package expiry

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketplace/internal/metrics"
)

const (
	defaultInterval  = time.Minute
	defaultBatchSize = 100

	workerName = "order-expiry"
)

// Expirer переводит просроченные заказы в cancelled/expired и возвращает их число.
type Expirer interface {
	ExpireUnpaid(ctx context.Context, now time.Time, limit int) (int, error)
}

// Options задаёт параметры Worker.
type Options struct {
	Logger    *log.Entry
	Metrics   *metrics.WorkerMetrics
	Interval  time.Duration
	BatchSize int
	Now       func() time.Time
}

// Option настраивает Worker.
type Option func(*Options)

// WithLogger задаёт logger.
func WithLogger(logger *log.Entry) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithMetrics задаёт метрики.
func WithMetrics(m *metrics.WorkerMetrics) Option {
	return func(opts *Options) {
		opts.Metrics = m
	}
}

// WithInterval задаёт интервал между проходами.
func WithInterval(interval time.Duration) Option {
	return func(opts *Options) {
		opts.Interval = interval
	}
}

// WithBatchSize задаёт максимальное число заказов за один запрос.
func WithBatchSize(batchSize int) Option {
	return func(opts *Options) {
		opts.BatchSize = batchSize
	}
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(opts *Options) {
		opts.Now = now
	}
}

// Worker периодически отменяет неоплаченные заказы через use case,
// поэтому сток возвращается и покупатель получает уведомление.
type Worker struct {
	expirer   Expirer
	logger    *log.Entry
	metrics   *metrics.WorkerMetrics
	interval  time.Duration
	batchSize int
	now       func() time.Time
}

// NewWorker создаёт воркер истечения заказов.
func NewWorker(expirer Expirer, options ...Option) *Worker {
	opts := Options{
		Interval:  defaultInterval,
		BatchSize: defaultBatchSize,
	}
	for _, option := range options {
		option(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "order-expiry-worker")
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}

	return &Worker{
		expirer:   expirer,
		logger:    logger,
		metrics:   opts.Metrics,
		interval:  opts.Interval,
		batchSize: opts.BatchSize,
		now:       opts.Now,
	}
}

// Run выполняет проходы до отмены ctx.
func (w *Worker) Run(ctx context.Context) {
	if w.expirer == nil {
		w.logger.Warn("order expiry worker is disabled: expirer is nil")
		return
	}

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	expired, err := w.ExpireAll(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		w.record("error", expired)
		w.logger.WithError(err).Warn("order expiry run failed")
		return
	}

	w.record("ok", expired)
	if expired > 0 {
		w.logger.WithField("expired", expired).Info("unpaid orders expired")
	}
}

// ExpireAll отменяет просроченные заказы порциями batchSize, пока порция заполнена.
func (w *Worker) ExpireAll(ctx context.Context) (int, error) {
	now := w.now()
	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		expired, err := w.expirer.ExpireUnpaid(ctx, now, w.batchSize)
		if err != nil {
			return total, err
		}
		total += expired

		if expired < w.batchSize {
			return total, nil
		}
	}
}

func (w *Worker) record(result string, processed int) {
	if w.metrics == nil {
		return
	}
	w.metrics.RecordRun(workerName, result)
	w.metrics.AddProcessed(workerName, processed)
	w.metrics.SetLastProcessed(workerName, processed)
}
