package telemetry

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	p, err := Setup(context.Background(), "siteboard")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil provider when %s unset", EndpointEnv)
	}

	// Nil provider still hands out a usable tracer.
	_, span := p.Tracer().Start(context.Background(), "noop")
	span.End()
	if span.SpanContext().IsValid() {
		t.Error("expected no-op span to have invalid span context")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown on nil provider: %v", err)
	}
}

func TestResolveServiceName(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		configured string
		want       string
	}{
		{"default", "", "", DefaultServiceName},
		{"configured", "", "erp-board", "erp-board"},
		{"env wins", "from-env", "erp-board", "from-env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ServiceNameEnv, tt.env)
			if got := ResolveServiceName(tt.configured); got != tt.want {
				t.Errorf("ResolveServiceName(%q) = %q, want %q", tt.configured, got, tt.want)
			}
		})
	}
}

func TestProvider_RecordsServiceName(t *testing.T) {
	t.Setenv(ServiceNameEnv, "")
	rec := tracetest.NewSpanRecorder()
	p := newProvider(sdktrace.WithSpanProcessor(rec), "erp-board")
	defer p.Shutdown(context.Background())

	_, span := p.Tracer().Start(context.Background(), "viewpref.get")
	span.End()

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	found := false
	for _, kv := range spans[0].Resource().Attributes() {
		if kv.Key == "service.name" && kv.Value.AsString() == "erp-board" {
			found = true
		}
	}
	if !found {
		t.Errorf("service.name=erp-board not on resource: %v", spans[0].Resource().Attributes())
	}
}
