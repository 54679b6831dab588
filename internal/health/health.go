// Package health отдаёт HTTP probes сервиса заказов и сводный отчёт по зависимостям.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Status — состояние компонента или сервиса целиком.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

const defaultCheckTimeout = 2 * time.Second

// Check — результат одной проверки.
type Check struct {
	Name       string         `json:"name"`
	Status     Status         `json:"status"`
	Critical   bool           `json:"critical"`
	Message    string         `json:"message,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	DurationMs int64          `json:"duration_ms"`
}

// Report — ответ /healthz.
type Report struct {
	Service       string    `json:"service"`
	Status        Status    `json:"status"`
	Version       string    `json:"version,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	Checks        []Check   `json:"checks,omitempty"`
}

// Checker проверяет одну зависимость. Name и Critical заполняет Handler.
type Checker interface {
	Check(ctx context.Context) Check
}

// CheckFunc превращает функцию с ошибкой в Checker.
type CheckFunc func(ctx context.Context) error

// Check реализует Checker.
func (f CheckFunc) Check(ctx context.Context) Check {
	if err := f(ctx); err != nil {
		return Check{Status: StatusUnhealthy, Message: err.Error()}
	}
	return Check{Status: StatusHealthy}
}

type registration struct {
	checker  Checker
	critical bool
}

// Handler агрегирует проверки. Сбой критичной проверки делает сервис unhealthy,
// сбой необязательной только degraded.
type Handler struct {
	mu      sync.RWMutex
	checks  map[string]registration
	service string
	version string
	started time.Time
	timeout time.Duration
	now     func() time.Time
}

// Option настраивает Handler.
type Option func(*Handler)

// WithCheckTimeout ограничивает время одной проверки.
func WithCheckTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		if timeout > 0 {
			h.timeout = timeout
		}
	}
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHandler создаёт Handler без проверок.
func NewHandler(service, version string, opts ...Option) *Handler {
	h := &Handler{
		checks:  make(map[string]registration),
		service: service,
		version: version,
		timeout: defaultCheckTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.started = h.now()
	return h
}

// Register добавляет критичную проверку: её сбой снимает сервис с readiness.
func (h *Handler) Register(name string, checker Checker) {
	h.register(name, checker, true)
}

// RegisterOptional добавляет проверку, сбой которой только понижает статус до degraded.
func (h *Handler) RegisterOptional(name string, checker Checker) {
	h.register(name, checker, false)
}

func (h *Handler) register(name string, checker Checker, critical bool) {
	if checker == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = registration{checker: checker, critical: critical}
}

// Evaluate выполняет все проверки параллельно, каждую со своим таймаутом.
func (h *Handler) Evaluate(ctx context.Context) Report {
	h.mu.RLock()
	names := make([]string, 0, len(h.checks))
	regs := make([]registration, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		regs = append(regs, h.checks[name])
	}
	h.mu.RUnlock()

	results := make([]Check, len(regs))
	var g errgroup.Group
	for i := range regs {
		g.Go(func() error {
			results[i] = h.run(ctx, names[i], regs[i])
			return nil
		})
	}
	_ = g.Wait()

	overall := StatusHealthy
	for _, check := range results {
		switch {
		case check.Status == StatusUnhealthy && check.Critical:
			overall = StatusUnhealthy
		case check.Status != StatusHealthy && overall == StatusHealthy:
			overall = StatusDegraded
		}
	}

	now := h.now()
	return Report{
		Service:       h.service,
		Status:        overall,
		Version:       h.version,
		Timestamp:     now.UTC(),
		UptimeSeconds: int64(now.Sub(h.started).Seconds()),
		Checks:        results,
	}
}

func (h *Handler) run(ctx context.Context, name string, reg registration) Check {
	checkCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	check := reg.checker.Check(checkCtx)
	if check.Status == StatusHealthy && checkCtx.Err() != nil {
		check = Check{Status: StatusUnhealthy, Message: checkCtx.Err().Error()}
	}
	check.Name = name
	check.Critical = reg.critical
	check.DurationMs = time.Since(start).Milliseconds()
	return check
}

// ServeHTTP отдаёт Report в JSON; 503 только для unhealthy.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report := h.Evaluate(r.Context())

	status := http.StatusOK
	if report.Status == StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(report)
}

// ReadinessHandler отвечает 503, пока хотя бы одна критичная проверка не проходит.
func (h *Handler) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	if h.Evaluate(r.Context()).Status == StatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// LivenessHandler не трогает зависимости.
func LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
