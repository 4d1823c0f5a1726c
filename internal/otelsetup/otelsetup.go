// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

// Package otelsetup provides OpenTelemetry bootstrap helpers.
package otelsetup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/exporters/autoexport"
	"go.opentelemetry.io/contrib/instrumentation/host"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	tracesExporterEnv  = "OTEL_TRACES_EXPORTER"
	metricsExporterEnv = "OTEL_METRICS_EXPORTER"
)

// Setup initializes OpenTelemetry tracing and metrics. Exporters are chosen
// by autoexport from the standard OTEL_* environment variables.
//
// A signal is only enabled when its OTEL_<SIGNAL>_EXPORTER variable is set
// to something other than "none"; a command-line tool should not try to reach
// a collector nobody asked for. When metrics are enabled, host and Go runtime
// metrics are collected as well.
//
// It returns a shutdown function that should be deferred by the caller.
func Setup(ctx context.Context, serviceName, serviceVersion string) (shutdown func(context.Context) error, err error) {
	var shutdownFuncs []func(context.Context) error

	shutdown = func(ctx context.Context) error {
		var errs []error
		for _, fn := range shutdownFuncs {
			if fnErr := fn(ctx); fnErr != nil {
				errs = append(errs, fnErr)
			}
		}
		return errors.Join(errs...)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return shutdown, err
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if enabled(tracesExporterEnv) {
		spanExporter, err := autoexport.NewSpanExporter(ctx)
		if err != nil {
			return shutdown, fmt.Errorf("creating span exporter: %w", err)
		}
		if !autoexport.IsNoneSpanExporter(spanExporter) {
			tracerProvider := sdktrace.NewTracerProvider(
				sdktrace.WithBatcher(spanExporter),
				sdktrace.WithResource(res),
			)
			shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
			otel.SetTracerProvider(tracerProvider)
		}
	}

	if enabled(metricsExporterEnv) {
		reader, err := autoexport.NewMetricReader(ctx)
		if err != nil {
			return shutdown, fmt.Errorf("creating metric reader: %w", err)
		}
		if !autoexport.IsNoneMetricReader(reader) {
			meterProvider := metric.NewMeterProvider(
				metric.WithReader(reader),
				metric.WithResource(res),
			)
			shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)
			otel.SetMeterProvider(meterProvider)

			if err := host.Start(host.WithMeterProvider(meterProvider)); err != nil {
				return shutdown, fmt.Errorf("starting host metrics: %w", err)
			}
			if err := otelruntime.Start(otelruntime.WithMeterProvider(meterProvider)); err != nil {
				return shutdown, fmt.Errorf("starting runtime metrics: %w", err)
			}
		}
	}

	return shutdown, nil
}

func enabled(env string) bool {
	v := os.Getenv(env)
	return v != "" && v != "none"
}

// NewLogger creates a new slog.Logger with JSON output at the given level
// and trace context integration.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTraceHandler(jsonHandler))
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") to a
// slog.Level. The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
