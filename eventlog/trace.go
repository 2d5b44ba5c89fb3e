package eventlog

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/joshuapare/regionkit/track"
)

// TraceSink records each tracker event as a short OpenTelemetry span named
// after the operation, carrying the id and range as attributes. Rejections
// are recorded as span errors.
type TraceSink struct {
	tracer trace.Tracer
}

// NewTrace creates a TraceSink on the given tracer. Pass otel.Tracer(name)
// to use the globally installed provider (see Init), or a test tracer.
func NewTrace(tracer trace.Tracer) *TraceSink {
	return &TraceSink{tracer: tracer}
}

// Emit implements track.Sink.
func (s *TraceSink) Emit(e track.Event) {
	_, span := s.tracer.Start(context.Background(), string(e.Op))
	defer span.End()

	span.SetAttributes(
		attribute.Int64("region.id", int64(e.ID)),
		attribute.Int64("region.start", int64(e.Region.Start)),
		attribute.Int64("region.length", int64(e.Region.Length)),
	)
	if e.Err != nil {
		span.RecordError(e.Err)
		span.SetStatus(codes.Error, e.Err.Error())
	}
}

var _ track.Sink = (*TraceSink)(nil)

var (
	providerOnce sync.Once
	providerErr  error
)

// Init installs a global tracer provider backed by the stdout span exporter.
// If outputFile is empty spans go to os.Stdout. The first successful
// initialisation wins; later calls are no-ops returning the first error.
func Init(serviceName, serviceVersion, outputFile string) error {
	var w io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		w = f
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return err
	}
	return InitWithExporter(serviceName, serviceVersion, exporter)
}

// InitWithExporter installs a global tracer provider using the supplied span
// exporter, allowing integration with OTLP or any other exporter the caller
// configures. Safe to call multiple times; the first call wins.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return nil
	}

	providerOnce.Do(func() {
		res, err := resource.New(context.Background(),
			resource.WithAttributes(
				attribute.String("service.name", serviceName),
				attribute.String("service.version", serviceVersion),
			),
		)
		if err != nil {
			providerErr = err
			return
		}

		otel.SetTracerProvider(sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
			sdktrace.WithResource(res),
		))
	})

	return providerErr
}
