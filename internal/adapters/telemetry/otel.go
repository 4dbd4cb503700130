package telemetry

import (
	"context"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
)

const instrumentationName = "go.trai.ch/peerseek"

var _ ports.Telemetry = (*OTel)(nil)

// OTel implements ports.Telemetry with OpenTelemetry spans, one span per vertex.
type OTel struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewOTel creates an OTel recorder on top of provider.
// A nil provider gets a provider without exporters, which only keeps spans in process.
func NewOTel(provider *sdktrace.TracerProvider) *OTel {
	if provider == nil {
		provider = sdktrace.NewTracerProvider()
	}
	return &OTel{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// Record starts a span named name. The vertex key is attached as the "vertex.key" attribute.
func (o *OTel) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := ports.VertexConfig{Key: name}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := o.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("vertex.key", cfg.Key)))
	v := &OTelVertex{span: span}
	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes and shuts down the tracer provider.
func (o *OTel) Close() error {
	return o.provider.Shutdown(context.Background())
}

// OTelVertex implements ports.Vertex on an OpenTelemetry span.
type OTelVertex struct {
	span trace.Span
}

// Stdout returns a writer that turns every written line into a span event.
func (v *OTelVertex) Stdout() io.Writer {
	return spanWriter{span: v.span}
}

// Log adds a span event carrying the level.
func (v *OTelVertex) Log(level domain.LogLevel, msg string) {
	v.span.AddEvent(msg, trace.WithAttributes(attribute.String("level", level.String())))
}

// Complete ends the span, recording err if it is not nil.
func (v *OTelVertex) Complete(err error) {
	if err != nil {
		v.span.RecordError(err)
		v.span.SetStatus(codes.Error, err.Error())
	} else {
		v.span.SetStatus(codes.Ok, "")
	}
	v.span.End()
}

// Cached marks the span as answered from the cache.
func (v *OTelVertex) Cached() {
	v.span.SetAttributes(attribute.Bool("cache.hit", true))
}

type spanWriter struct {
	span trace.Span
}

func (w spanWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			w.span.AddEvent(line)
		}
	}
	return len(p), nil
}
