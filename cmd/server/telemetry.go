package main

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/pixell-roster/internal/platform/config"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/telemetry"
)

// otelProviders is all nil when telemetry is disabled; middleware and
// services accept a nil *telemetry.Metrics.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		errs = append(errs, o.tracer.Shutdown(ctx))
	}
	if o.meter != nil {
		errs = append(errs, o.meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	o := &otelProviders{}
	tc := cfg.Telemetry
	if !tc.Enabled {
		return o, nil
	}

	var err error
	if o.tracer, err = telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint); err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	if o.meter, err = telemetry.InitMeter(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint); err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	if o.metrics, err = telemetry.NewMetrics(o.meter); err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return o, nil
}
