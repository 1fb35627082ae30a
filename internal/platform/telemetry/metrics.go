package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName scopes every instrument created by NewMetrics.
const MeterName = "github.com/jsamuelsen11/pixell-roster"

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrDepartment  = attribute.Key("roster.department_id")
	AttrField       = attribute.Key("roster.field")
)

// Metrics are the roster's instruments. The server records the
// http.server.* and roster.* ones, rosterctl the http.client.* ones.
//
//	metrics.EmployeesCreated.Add(ctx, 1, metric.WithAttributes(telemetry.AttrDepartment.String("d1")))
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// EmployeesCreated counts persisted employees by department.
	EmployeesCreated metric.Int64Counter
	// ValidationFailures counts rejected fields, one per field.
	ValidationFailures metric.Int64Counter
}

// NewMetrics registers every instrument on mp: the SDK provider from
// InitMeter, the global provider, or a manual-reader provider in tests.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	b := instruments{meter: mp.Meter(MeterName)}

	m := &Metrics{
		ServerRequestDuration: b.histogram("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.histogram("http.client.request.duration", "Duration of roster API calls made by rosterctl"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Roster API calls made by rosterctl", "{request}"),
		EmployeesCreated:      b.counter("roster.employees.created", "Employees persisted through the roster service", "{employee}"),
		ValidationFailures:    b.counter("roster.validation.failures", "Fields rejected by employee validation", "{field}"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return m, nil
}

// instruments creates instruments on meter and collects their errors.
type instruments struct {
	meter metric.Meter
	err   error
}

func (b *instruments) histogram(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	b.fail(name, err)
	return h
}

func (b *instruments) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.fail(name, err)
	return c
}

func (b *instruments) fail(name string, err error) {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("creating %s: %w", name, err))
	}
}
