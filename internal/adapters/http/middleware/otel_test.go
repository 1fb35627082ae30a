package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/telemetry"
)

// These tests swap the global tracer provider and must not run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter
}

func onlySpan(t *testing.T, exporter *tracetest.InMemoryExporter) tracetest.SpanStub {
	t.Helper()
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	return spans[0]
}

func spanAttrs(span tracetest.SpanStub) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(span.Attributes))
	for _, kv := range span.Attributes {
		out[kv.Key] = kv.Value
	}
	return out
}

func employeeRouter(mw func(http.Handler) http.Handler, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/api/v1/employees/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func TestOpenTelemetry_SpanPerRequest(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantName  string
		wantRoute string
		wantError bool
	}{
		{
			name:      "routed",
			path:      "/api/v1/employees/e-42",
			status:    http.StatusOK,
			wantName:  "HTTP GET /api/v1/employees/{id}",
			wantRoute: "/api/v1/employees/{id}",
		},
		{
			name:      "server error",
			path:      "/api/v1/employees/e-42",
			status:    http.StatusBadGateway,
			wantName:  "HTTP GET /api/v1/employees/{id}",
			wantRoute: "/api/v1/employees/{id}",
			wantError: true,
		},
		{
			name:      "not routed",
			path:      "/wp-login.php",
			status:    http.StatusNotFound,
			wantName:  "HTTP GET unmatched",
			wantRoute: "unmatched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := installTracer(t)

			h := employeeRouter(middleware.OpenTelemetry(nil), tt.status)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			span := onlySpan(t, exporter)
			assert.Equal(t, tt.wantName, span.Name)
			assert.Equal(t, trace.SpanKindServer, span.SpanKind)

			attrs := spanAttrs(span)
			assert.Equal(t, tt.wantRoute, attrs[telemetry.AttrHTTPRoute].AsString())
			assert.Equal(t, "GET", attrs[telemetry.AttrHTTPMethod].AsString())
			assert.Equal(t, int64(rec.Code), attrs[telemetry.AttrHTTPStatus].AsInt64())

			if tt.wantError {
				assert.Equal(t, codes.Error, span.Status.Code)
			} else {
				assert.NotEqual(t, codes.Error, span.Status.Code)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesInboundTrace(t *testing.T) {
	exporter := installTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/e-1", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")

	employeeRouter(middleware.OpenTelemetry(nil), http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	span := onlySpan(t, exporter)
	assert.Equal(t, traceID, span.SpanContext.TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", span.Parent.SpanID().String())
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	installTracer(t)
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	h := employeeRouter(middleware.OpenTelemetry(metrics), http.StatusNotFound)
	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/employees/missing", http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				assert.Equal(t, "error", result.AsString())
				route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
				assert.Equal(t, "/api/v1/employees/{id}", route.AsString())
			}
		}
	}
	assert.Equal(t, int64(3), total)
}
