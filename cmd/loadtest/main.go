package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	marketplacev1 "github.com/vladislavdragonenkov/marketplace/proto/marketplace/v1"
)

const (
	idempotencyHeader = "idempotency-key"
	scenarioMethod    = "scenario"
)

type loadMode string

const (
	modeCreate            loadMode = "create"
	modeCreatePay         loadMode = "create-pay"
	modeCreatePayComplete loadMode = "create-pay-complete"
	modeCreateCancel      loadMode = "create-cancel"
)

type config struct {
	addr        string
	total       int
	totalSet    bool
	duration    time.Duration
	concurrency int
	connections int
	timeout     time.Duration
	mode        loadMode
	cancelRate  int
	customerID  string
	storeID     string
	productID   string
	qty         int
	outputPath  string
}

type latencySummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

type methodReport struct {
	Calls     int64            `json:"calls"`
	Failed    int64            `json:"failed"`
	ErrorRate float64          `json:"error_rate"`
	Codes     map[string]int64 `json:"codes"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

type report struct {
	StartedAt       time.Time               `json:"started_at"`
	DurationSeconds float64                 `json:"duration_seconds"`
	Scenarios       int64                   `json:"scenarios"`
	Failed          int64                   `json:"failed"`
	ErrorRate       float64                 `json:"error_rate"`
	RPS             float64                 `json:"rps"`
	Methods         map[string]methodReport `json:"methods"`
}

// recorder копит латентности и коды ответов по методам.
type recorder struct {
	mu      sync.Mutex
	samples map[string]*samples
}

type samples struct {
	codes     map[string]int64
	latencies []float64
	failed    int64
}

func newRecorder() *recorder {
	return &recorder{samples: make(map[string]*samples)}
}

func (r *recorder) observe(method string, latency time.Duration, code codes.Code) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.samples[method]
	if !ok {
		s = &samples{codes: make(map[string]int64)}
		r.samples[method] = s
	}
	s.codes[code.String()]++
	s.latencies = append(s.latencies, float64(latency.Microseconds())/1000.0)
	if code != codes.OK {
		s.failed++
	}
}

func (r *recorder) report(startedAt time.Time, elapsed time.Duration) report {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := report{
		StartedAt:       startedAt.UTC(),
		DurationSeconds: elapsed.Seconds(),
		Methods:         make(map[string]methodReport, len(r.samples)),
	}
	for method, s := range r.samples {
		calls := int64(len(s.latencies))
		codesCopy := make(map[string]int64, len(s.codes))
		for code, count := range s.codes {
			codesCopy[code] = count
		}
		result.Methods[method] = methodReport{
			Calls:     calls,
			Failed:    s.failed,
			ErrorRate: ratio(s.failed, calls),
			Codes:     codesCopy,
			LatencyMs: summarize(s.latencies),
		}
	}

	if scenario, ok := result.Methods[scenarioMethod]; ok {
		result.Scenarios = scenario.Calls
		result.Failed = scenario.Failed
		result.ErrorRate = scenario.ErrorRate
	}
	if elapsed > 0 {
		result.RPS = float64(result.Scenarios) / elapsed.Seconds()
	}
	return result
}

func parseConfig() (config, error) {
	var (
		cfg       config
		modeValue string
	)

	flag.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	flag.IntVar(&cfg.total, "total", 400, "scenarios to run; with -duration acts as an upper bound when set explicitly")
	flag.DurationVar(&cfg.duration, "duration", 0, "optional time-based run duration (e.g. 10m)")
	flag.IntVar(&cfg.concurrency, "concurrency", 40, "concurrent scenarios")
	flag.IntVar(&cfg.connections, "connections", 20, "gRPC client connections")
	flag.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-RPC timeout")
	flag.StringVar(&modeValue, "mode", string(modeCreateCancel), "create | create-pay | create-pay-complete | create-cancel")
	flag.IntVar(&cfg.cancelRate, "cancel-rate", 0, "percent of create-pay scenarios cancelled after payment (0..100)")
	flag.StringVar(&cfg.customerID, "customer", "", "customer id from the catalog seed")
	flag.StringVar(&cfg.storeID, "store", "", "store id from the catalog seed")
	flag.StringVar(&cfg.productID, "product", "", "product id from the catalog seed")
	flag.IntVar(&cfg.qty, "qty", 1, "quantity per order")
	flag.StringVar(&cfg.outputPath, "output", "", "optional JSON report path")
	flag.Parse()

	flag.CommandLine.Visit(func(f *flag.Flag) {
		if f.Name == "total" {
			cfg.totalSet = true
		}
	})

	mode, err := parseMode(modeValue)
	if err != nil {
		return cfg, err
	}
	cfg.mode = mode

	switch {
	case cfg.duration < 0:
		return cfg, errors.New("duration must be >= 0")
	case cfg.duration == 0 && cfg.total <= 0:
		return cfg, errors.New("total must be > 0 when duration is not set")
	case cfg.concurrency <= 0:
		return cfg, errors.New("concurrency must be > 0")
	case cfg.connections <= 0:
		return cfg, errors.New("connections must be > 0")
	case cfg.timeout <= 0:
		return cfg, errors.New("timeout must be > 0")
	case cfg.qty <= 0:
		return cfg, errors.New("qty must be > 0")
	case cfg.cancelRate < 0 || cfg.cancelRate > 100:
		return cfg, errors.New("cancel-rate must be between 0 and 100")
	}
	for name, value := range map[string]string{"customer": cfg.customerID, "store": cfg.storeID, "product": cfg.productID} {
		if strings.TrimSpace(value) == "" {
			return cfg, fmt.Errorf("%s is required", name)
		}
	}
	return cfg, nil
}

func parseMode(value string) (loadMode, error) {
	switch mode := loadMode(strings.TrimSpace(value)); mode {
	case modeCreate, modeCreatePay, modeCreatePayComplete, modeCreateCancel:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", value)
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fail("invalid config: %v", err)
	}

	clients := make([]marketplacev1.OrderServiceClient, 0, cfg.connections)
	for i := 0; i < cfg.connections; i++ {
		conn, dialErr := grpc.NewClient(cfg.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if dialErr != nil {
			fail("create grpc client: %v", dialErr)
		}
		defer conn.Close()
		clients = append(clients, marketplacev1.NewOrderServiceClient(conn))
	}

	result := run(context.Background(), cfg, clients)
	printReport(os.Stdout, result, cfg)

	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			fail("write report: %v", err)
		}
	}
	if result.Failed > 0 {
		os.Exit(1)
	}
}

// run прогоняет сценарии не более чем в cfg.concurrency горутинах.
// Ошибки сценариев попадают в отчёт и не останавливают прогон.
func run(ctx context.Context, cfg config, clients []marketplacev1.OrderServiceClient) report {
	if cfg.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.duration)
		defer cancel()
	}

	startedAt := time.Now()
	runID := fmt.Sprintf("%d-%d", startedAt.UnixNano(), os.Getpid())
	rec := newRecorder()

	var g errgroup.Group
	g.SetLimit(cfg.concurrency)

	for i := 0; ctx.Err() == nil; i++ {
		if (cfg.duration <= 0 || cfg.totalSet) && i >= cfg.total {
			break
		}
		client := clients[i%len(clients)]
		index := i
		g.Go(func() error {
			_ = runScenario(client, cfg, index, runID, rec)
			return nil
		})
	}
	_ = g.Wait()

	return rec.report(startedAt, time.Since(startedAt))
}

func runScenario(client marketplacev1.OrderServiceClient, cfg config, index int, runID string, rec *recorder) (err error) {
	start := time.Now()
	defer func() {
		rec.observe(scenarioMethod, time.Since(start), grpcCode(err))
	}()

	var order *marketplacev1.CreateOrderResponse
	err = call(rec, "CreateOrder", cfg.timeout, stepKey("create", runID, index), func(ctx context.Context) error {
		var callErr error
		order, callErr = client.CreateOrder(ctx, &marketplacev1.CreateOrderRequest{
			CustomerId: cfg.customerID,
			StoreId:    cfg.storeID,
			Items:      []*marketplacev1.CreateOrderItem{{ProductId: cfg.productID, Quantity: int32(cfg.qty)}},
		})
		return callErr
	})
	if err != nil {
		return err
	}
	if order.GetOrder().GetId() == "" {
		return status.Error(codes.Internal, "create response returned empty order id")
	}
	orderID := order.GetOrder().GetId()

	update := func(step, orderStatus, paymentStatus string) error {
		return call(rec, "UpdateOrderStatus", cfg.timeout, stepKey(step, runID, index), func(ctx context.Context) error {
			_, callErr := client.UpdateOrderStatus(ctx, &marketplacev1.UpdateOrderStatusRequest{
				OrderId:       orderID,
				Status:        orderStatus,
				PaymentStatus: paymentStatus,
			})
			return callErr
		})
	}

	switch cfg.mode {
	case modeCreate:
		return nil
	case modeCreateCancel:
		return update("cancel", "cancelled", "")
	}

	if err := update("pay", "processing", "paid"); err != nil {
		return err
	}
	if cfg.mode == modeCreatePayComplete {
		return update("complete", "completed", "")
	}
	if shouldCancelScenario(index, cfg.cancelRate) {
		return update("cancel", "cancelled", "")
	}
	return nil
}

// call выполняет один RPC с таймаутом и idempotency-key и записывает результат.
func call(rec *recorder, method string, timeout time.Duration, key string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, idempotencyHeader, key)

	start := time.Now()
	err := fn(ctx)
	rec.observe(method, time.Since(start), grpcCode(err))
	return err
}

func stepKey(step, runID string, index int) string {
	return fmt.Sprintf("lt-%s-%s-%d", step, runID, index)
}

func grpcCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	return status.Code(err)
}

func shouldCancelScenario(index, cancelRate int) bool {
	return cancelRate > 0 && (cancelRate >= 100 || index%100 < cancelRate)
}

func writeJSONReport(path string, result report) error {
	cleanPath := filepath.Clean(path)
	if cleanPath == "." || cleanPath == string(filepath.Separator) {
		return errors.New("output path must point to a file")
	}
	if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output path must be inside current directory: %s", path)
	}

	// #nosec G304 -- путь задаётся явным флагом CLI.
	file, err := os.Create(cleanPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func printReport(w io.Writer, result report, cfg config) {
	_, _ = fmt.Fprintf(w, "mode=%s scenarios=%d failed=%d error_rate=%.4f duration=%.2fs rps=%.2f\n",
		cfg.mode, result.Scenarios, result.Failed, result.ErrorRate, result.DurationSeconds, result.RPS)

	methods := make([]string, 0, len(result.Methods))
	for name := range result.Methods {
		methods = append(methods, name)
	}
	sort.Strings(methods)
	for _, name := range methods {
		m := result.Methods[name]
		_, _ = fmt.Fprintf(w, "%s: calls=%d failed=%d p50=%.2fms p95=%.2fms p99=%.2fms max=%.2fms\n",
			name, m.Calls, m.Failed, m.LatencyMs.P50, m.LatencyMs.P95, m.LatencyMs.P99, m.LatencyMs.Max)
	}
}

func summarize(values []float64) latencySummary {
	if len(values) == 0 {
		return latencySummary{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	return latencySummary{
		Min: sorted[0],
		Max: sorted[len(sorted)-1],
		Avg: sum / float64(len(sorted)),
		P50: nearestRank(sorted, 50),
		P95: nearestRank(sorted, 95),
		P99: nearestRank(sorted, 99),
	}
}

// nearestRank возвращает перцентиль p по методу ближайшего ранга.
func nearestRank(sorted []float64, p int) float64 {
	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

func ratio(failed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(failed) / float64(total)
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
