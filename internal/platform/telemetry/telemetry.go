// Package telemetry sets up OpenTelemetry for the roster server and
// rosterctl: a tracer and a meter provider exporting to stdout in
// development or to an OTLP/HTTP collector in production, plus the roster's
// instruments (see Metrics).
//
//	tp, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
//	defer tp.Shutdown(ctx)
//	mp, err := telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
//	defer mp.Shutdown(ctx)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// target is where spans and metrics go.
type target struct {
	exporter string
	hostPort string // OTLP only
	insecure bool   // OTLP over plain http
}

// setup validates the exporter choice and builds the shared resource.
func setup(serviceName, exporter, endpoint string) (target, *resource.Resource, error) {
	t := target{exporter: exporter}
	switch exporter {
	case ExporterStdout:
	case ExporterOTLP:
		if endpoint == "" {
			return t, nil, errors.New("telemetry: otlp exporter requires an endpoint")
		}
		t.hostPort, t.insecure = endpoint, true
		if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
			t.hostPort, t.insecure = u.Host, u.Scheme != "https"
		}
	default:
		return t, nil, fmt.Errorf("telemetry: unsupported exporter %q", exporter)
	}

	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)))
	if err != nil {
		return t, nil, fmt.Errorf("creating resource: %w", err)
	}
	return t, res, nil
}

// InitTracer installs a global TracerProvider and the W3C trace-context and
// baggage propagators. The caller shuts the provider down on exit.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	t, res, err := setup(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	var exp sdktrace.SpanExporter
	if t.exporter == ExporterOTLP {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(t.hostPort)}
		if t.insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exp, err = otlptracehttp.New(ctx, opts...)
	} else {
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a global MeterProvider with a periodic reader. The
// caller shuts it down on exit.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	t, res, err := setup(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	var exp sdkmetric.Exporter
	if t.exporter == ExporterOTLP {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(t.hostPort)}
		if t.insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err = otlpmetrichttp.New(ctx, opts...)
	} else {
		exp, err = stdoutmetric.New()
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}
