package kafka

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel/trace"
)

func toPointers(headers []sarama.RecordHeader) []*sarama.RecordHeader {
	result := make([]*sarama.RecordHeader, 0, len(headers))
	for i := range headers {
		result = append(result, &headers[i])
	}
	return result
}

func traceIDFrom(ctx context.Context) string {
	spanContext := trace.SpanContextFromContext(ctx)
	if !spanContext.IsValid() {
		return ""
	}
	return spanContext.TraceID().String()
}

func TestExtractTraceContextIgnoresNilHeaders(t *testing.T) {
	ctx := extractTraceContext(context.Background(), []*sarama.RecordHeader{nil, {Key: []byte("x"), Value: []byte("y")}})
	if traceIDFrom(ctx) != "" {
		t.Fatal("unexpected span context without traceparent header")
	}
}
