// Package telemetry sets up OpenTelemetry tracing for siteboard.
// Export is enabled only when OTEL_EXPORTER_OTLP_ENDPOINT is set.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// EndpointEnv enables OTLP export when set (host:port).
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the configured service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"
	// DefaultServiceName is used when neither config nor env names the service.
	DefaultServiceName = "siteboard"

	instrumentationName = "siteboard/viewpref"
)

// Provider owns the tracer provider. A nil *Provider is valid and yields a
// no-op tracer.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Setup creates an OTLP HTTP exporter if EndpointEnv is set.
// Returns nil, nil if export is not configured.
func Setup(ctx context.Context, serviceName string) (*Provider, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	return newProvider(sdktrace.WithBatcher(exporter), serviceName), nil
}

func newProvider(opt sdktrace.TracerProviderOption, serviceName string) *Provider {
	provider := sdktrace.NewTracerProvider(
		opt,
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", ResolveServiceName(serviceName)),
		)),
	)
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// ResolveServiceName picks env over configured over default.
func ResolveServiceName(configured string) string {
	if env := os.Getenv(ServiceNameEnv); env != "" {
		return env
	}
	if configured != "" {
		return configured
	}
	return DefaultServiceName
}

// Tracer returns the provider's tracer, or a no-op tracer when p is nil.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
