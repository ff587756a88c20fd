// Package telemetry configures OpenTelemetry tracing for the HTTP and database layers.
package telemetry

import (
	"context"
	"fmt"

	"movie-catalog/pkg/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.uber.org/zap"
)

// ShutdownFunc flushes pending spans and stops the exporter
type ShutdownFunc func(context.Context) error

// Init installs a global tracer provider exporting to the configured collector.
// Without a collector URL the global no-op provider stays in place.
func Init(ctx context.Context, config *utils.Config, logger *zap.Logger) (ShutdownFunc, error) {
	if config.Telemetry.CollectorURL == "" {
		logger.Info("OpenTelemetry collector URL not set, skipping initialization")
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.App.Name),
			semconv.DeploymentEnvironment(config.App.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(config.Telemetry.CollectorURL),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel trace exporter: %w", err)
	}

	provider := trace.NewTracerProvider(
		trace.WithSampler(trace.AlwaysSample()),
		trace.WithResource(res),
		trace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("OpenTelemetry tracing enabled", zap.String("collector", config.Telemetry.CollectorURL))

	return provider.Shutdown, nil
}
