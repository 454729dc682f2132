package observe

import (
	"context"
	"time"

	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/trophycase/trophycase/internal/config"
)

// Configure bootstraps the OpenTelemetry SDK: an OTLP gRPC span exporter
// (endpoint from the standard OTEL_EXPORTER_OTLP_* variables), a batching
// tracer provider and the W3C propagators. Without this the otelhttp
// handler/transport wrapping records into the global noop providers.
//
// When disabled, the globals are left as noops and the returned shutdown does
// nothing. The returned shutdown flushes pending spans and should be deferred
// by the caller.
func Configure(ctx context.Context, cfg config.ObserveConfig) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	// SDK diagnostics flow through the service logger either way.
	otel.SetLogger(zerologr.New(&log.Logger))

	if !cfg.Enabled {
		return noop, nil
	}

	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(time.Duration(cfg.TraceBatchTimeoutSeconds)*time.Second),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}
