package observability

import (
	"context"
	"testing"

	"github.com/lshigami/Surveyor/config"
)

func TestInitTracing(t *testing.T) {
	tests := []struct {
		name string
		otel config.Otel
	}{
		{"disabled", config.Otel{}},
		{"stdout exporter", config.Otel{Enabled: true, ServiceName: "surveyor-test", SamplerRatio: 1}},
		{"endpoint url", config.Otel{Enabled: true, Endpoint: "http://localhost:4318", SamplerRatio: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			shutdown, err := InitTracing(ctx, &config.Config{AppEnv: "test", Otel: tt.otel})
			if err != nil {
				t.Fatalf("InitTracing: %v", err)
			}
			if shutdown == nil {
				t.Fatal("shutdown is nil")
			}
			// Nothing was exported, so shutdown must not reach the collector.
			if err := shutdown(ctx); err != nil {
				t.Fatalf("shutdown: %v", err)
			}
		})
	}
}
