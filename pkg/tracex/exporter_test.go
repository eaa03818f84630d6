package tracex

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"arealookup/pkg/logger"
)

func TestLogExporter(t *testing.T) {
	var buf bytes.Buffer
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSyncer(NewLogExporter(logger.New(logger.WithWriter(&buf), logger.WithLevel("debug")))),
	)

	_, span := tp.Tracer("test").Start(context.Background(), "GET /v1/areas/children")
	span.SetAttributes(attribute.Int("http.status_code", 200))
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), "span finished")
	assert.Contains(t, buf.String(), "GET /v1/areas/children")
	assert.Contains(t, buf.String(), "http.status_code")
}

func TestNewProviderBatcher(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.WithWriter(&buf), logger.WithLevel("debug"))
	tp := NewProvider(1, NewLogExporter(l))

	// the request context carries a logger of its own, the exporter must not depend on it
	ctx := logger.With(context.Background(), logger.New(logger.WithWriter(&bytes.Buffer{})))
	_, span := tp.Tracer("test").Start(ctx, "GET /v1/areas/children")
	assert.True(t, span.SpanContext().IsSampled())
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), "span finished")
	assert.Contains(t, buf.String(), "GET /v1/areas/children")
}

func TestNewProviderNeverSample(t *testing.T) {
	var buf bytes.Buffer
	tp := NewProvider(0, NewLogExporter(logger.New(logger.WithWriter(&buf), logger.WithLevel("debug"))))

	_, span := tp.Tracer("test").Start(context.Background(), "GET /")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Empty(t, buf.String())
}

func TestNewLogExporterNil(t *testing.T) {
	assert.NoError(t, NewLogExporter(nil).ExportSpans(context.Background(), nil))
}
