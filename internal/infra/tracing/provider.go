package tracing

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/shutdown"
)

// Exporter names accepted by Setup.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

// Provider owns the installed tracer provider and flushes it on shutdown.
type Provider struct {
	logger *slog.Logger
	tp     *sdktrace.TracerProvider
}

var _ shutdown.Shutdowner = (*Provider)(nil)

// Setup installs a global tracer provider for the given exporter.
// With ExporterNone the global no-op provider is left in place.
func Setup(logger *slog.Logger, exporter, serviceName string, w io.Writer) (*Provider, error) {
	p := &Provider{logger: logger}

	switch exporter {
	case "", ExporterNone:
		return p, nil
	case ExporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("create stdout trace exporter: %w", err)
		}

		p.tp = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(resource.NewSchemaless(
				attribute.String("service.name", serviceName),
			)),
		)
	default:
		return nil, fmt.Errorf("unknown tracing exporter %q", exporter)
	}

	otel.SetTracerProvider(p.tp)
	logger.Info("tracing enabled", "exporter", exporter)

	return p, nil
}

// Name returns the name of the tracing component.
func (p *Provider) Name() string {
	return "tracing"
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.tp == nil {
		return nil
	}

	if err := p.tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracer provider: %w", err)
	}

	p.logger.InfoContext(ctx, "tracer provider flushed")

	return nil
}
