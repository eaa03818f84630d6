package tracex

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider samples ratio of the root spans, ratio <= 0 never samples and
// ratio >= 1 always samples
func NewProvider(ratio float64, exporter sdktrace.SpanExporter) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
		sdktrace.WithBatcher(exporter),
	)
}
