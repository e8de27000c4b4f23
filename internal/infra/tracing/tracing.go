// Package tracing wires OpenTelemetry tracing. Spans are no-ops until Setup
// installs an exporting tracer provider.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope name.
const TracerName = "github.com/skillcoder/k8s-lifecycle-gateway"

// Span attribute keys.
const (
	AttrOperation    = "lifecycle.operation"
	AttrNamespace    = "k8s.namespace"
	AttrResourceKind = "k8s.resource.kind"
	AttrResourceName = "k8s.resource.name"
	AttrItems        = "lifecycle.items"
	AttrFailed       = "lifecycle.failed"
)

// StartSpan starts an internal span. The caller must end it.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// StartK8sSpan starts a client span for one cluster API call.
func StartK8sSpan(ctx context.Context, verb, kind, namespace, name string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String(AttrResourceKind, kind),
		attribute.String(AttrNamespace, namespace),
	}
	if name != "" {
		attrs = append(attrs, attribute.String(AttrResourceName, name))
	}

	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, "k8s."+verb,
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

// RecordSpanError records err on span and marks it failed. A nil err is ignored.
func RecordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
