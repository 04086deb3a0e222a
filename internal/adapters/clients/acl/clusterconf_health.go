package acl

import (
	"context"
	"fmt"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name given to the
// underlying [httpclient.Client] for tracing and metrics.
func (c *ClusterConfClient) Name() string {
	return "cluster-conf-api"
}

// HealthCheck reports the remote API's availability from the circuit
// breaker state. No network call is made.
//
// State mapping:
//   - "closed": the remote is operating normally; returns nil.
//   - "half-open": the breaker is probing recovery; returns a degraded error.
//   - "open": the breaker is rejecting requests; returns a failing error.
func (c *ClusterConfClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.Name())
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", c.Name())
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", c.Name(), state)
	}
}
