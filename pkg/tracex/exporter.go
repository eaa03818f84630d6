// Package tracex
package tracex

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// NewLogExporter writes every finished span as a debug log of l, the export
// context of the batch processor carries no logger
func NewLogExporter(l *zap.Logger) *LogExporter {
	if l == nil {
		l = zap.NewNop()
	}
	return &LogExporter{logger: l}
}

type LogExporter struct {
	logger *zap.Logger
}

func (e *LogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	l := e.logger
	for i := range spans {
		sc := spans[i].SpanContext()
		fields := []zap.Field{
			zap.String("span", spans[i].Name()),
			zap.String("otel_trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
			zap.Duration("elapsed", spans[i].EndTime().Sub(spans[i].StartTime())),
			zap.String("status", spans[i].Status().Code.String()),
		}
		for _, attr := range spans[i].Attributes() {
			fields = append(fields, zap.String(string(attr.Key), attr.Value.Emit()))
		}
		l.Debug("span finished", fields...)
	}
	return nil
}

func (e *LogExporter) Shutdown(context.Context) error {
	return nil
}
