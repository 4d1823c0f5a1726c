// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package otelsetup

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestSetup_Disabled(t *testing.T) {
	tests := []struct {
		name    string
		traces  string
		metrics string
	}{
		{name: "unset"},
		{name: "none", traces: "none", metrics: "none"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tracesExporterEnv, tc.traces)
			t.Setenv(metricsExporterEnv, tc.metrics)

			before := otel.GetTracerProvider()

			ctx := context.Background()
			shutdown, err := Setup(ctx, "test-service", "0.0.1")
			if err != nil {
				t.Fatalf("Setup returned unexpected error: %v", err)
			}
			if err := shutdown(ctx); err != nil {
				t.Errorf("shutdown returned error: %v", err)
			}
			if otel.GetTracerProvider() != before {
				t.Error("tracer provider should not change when traces are disabled")
			}
		})
	}
}

func TestSetup_Console(t *testing.T) {
	t.Setenv(tracesExporterEnv, "console")
	t.Setenv(metricsExporterEnv, "none")

	ctx := context.Background()
	shutdown, err := Setup(ctx, "test-service", "0.0.1")
	if err != nil {
		t.Fatalf("Setup returned unexpected error: %v", err)
	}
	defer shutdown(ctx)

	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Errorf("expected SDK tracer provider, got %T", otel.GetTracerProvider())
	}
}

func TestSetup_UnknownExporter(t *testing.T) {
	t.Setenv(tracesExporterEnv, "carrier-pigeon")
	t.Setenv(metricsExporterEnv, "")

	ctx := context.Background()
	shutdown, err := Setup(ctx, "test-service", "0.0.1")
	if err == nil {
		t.Fatal("expected error for unknown exporter")
	}
	if shutdown == nil {
		t.Fatal("Setup returned nil shutdown function")
	}
	_ = shutdown(ctx)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// captureHandler is a slog.Handler that captures the last record's attributes.
type captureHandler struct {
	attrs   []slog.Attr
	enabled bool
	group   string
	extra   []slog.Attr
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return h.enabled }

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	h.attrs = nil
	record.Attrs(func(a slog.Attr) bool {
		h.attrs = append(h.attrs, a)
		return true
	})
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{enabled: h.enabled, group: h.group, extra: append(h.extra, attrs...)}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{enabled: h.enabled, group: name, extra: h.extra}
}

func attrMap(attrs []slog.Attr) map[string]slog.Value {
	m := make(map[string]slog.Value, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return m
}

func TestTraceHandler_NoSpanContext(t *testing.T) {
	inner := &captureHandler{enabled: true}
	handler := NewTraceHandler(inner)

	if err := handler.Handle(context.Background(), slog.Record{Message: "no span"}); err != nil {
		t.Fatalf("Handle returned unexpected error: %v", err)
	}
	if len(inner.attrs) != 0 {
		t.Errorf("unexpected attributes without span context: %v", inner.attrs)
	}
}

func TestTraceHandler_WithSpanContext(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	ctx, span := tp.Tracer("test").Start(context.Background(), "github.get_user")
	defer span.End()
	sc := trace.SpanContextFromContext(ctx)

	inner := &captureHandler{enabled: true}
	if err := NewTraceHandler(inner).Handle(ctx, slog.Record{Message: "with span"}); err != nil {
		t.Fatalf("Handle returned unexpected error: %v", err)
	}

	got := attrMap(inner.attrs)
	if v := got["trace.id"].String(); v != sc.TraceID().String() {
		t.Errorf("trace.id = %q, want %q", v, sc.TraceID().String())
	}
	if v := got["span.id"].String(); v != sc.SpanID().String() {
		t.Errorf("span.id = %q, want %q", v, sc.SpanID().String())
	}
	if v, ok := got["trace.sampled"]; !ok || !v.Bool() {
		t.Errorf("trace.sampled = %v, want true", v)
	}
}

func TestTraceHandler_Enabled(t *testing.T) {
	inner := &captureHandler{}
	handler := NewTraceHandler(inner)

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled should return false when inner handler returns false")
	}
	inner.enabled = true
	if !handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled should return true when inner handler returns true")
	}
}

func TestTraceHandler_WithAttrsAndGroup(t *testing.T) {
	handler := NewTraceHandler(&captureHandler{enabled: true})

	th, ok := handler.WithAttrs([]slog.Attr{slog.String("operation", "get_user")}).(*TraceHandler)
	if !ok {
		t.Fatal("WithAttrs should return a *TraceHandler")
	}
	th, ok = th.WithGroup("github").(*TraceHandler)
	if !ok {
		t.Fatal("WithGroup should return a *TraceHandler")
	}

	ch, ok := th.Handler.(*captureHandler)
	if !ok {
		t.Fatal("inner handler should be a *captureHandler")
	}
	if ch.group != "github" {
		t.Errorf("group = %q, want %q", ch.group, "github")
	}
	if len(ch.extra) != 1 || ch.extra[0].Key != "operation" {
		t.Errorf("extra attrs = %v", ch.extra)
	}
}

func TestNewLogger(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	ctx, span := tp.Tracer("test").Start(context.Background(), "test-span")
	defer span.End()
	sc := trace.SpanContextFromContext(ctx)

	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)

	logger.InfoContext(ctx, "filtered")
	if buf.Len() != 0 {
		t.Fatalf("info record should be filtered at warn level, got %s", buf.String())
	}

	logger.WarnContext(ctx, "hello world")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON log output: %v\nraw output: %s", err, buf.String())
	}
	if entry["trace.id"] != sc.TraceID().String() {
		t.Errorf("trace.id = %v, want %q", entry["trace.id"], sc.TraceID().String())
	}
	if entry["span.id"] != sc.SpanID().String() {
		t.Errorf("span.id = %v, want %q", entry["span.id"], sc.SpanID().String())
	}
	if entry["msg"] != "hello world" {
		t.Errorf("msg = %v", entry["msg"])
	}
}
