package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name the underlying
// [httpclient.Client] uses for tracing and metrics.
func (c *RosterClient) Name() string {
	return c.http.Name()
}

// HealthCheck reports the roster API's availability from the circuit
// breaker state. No network call is made.
func (c *RosterClient) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
