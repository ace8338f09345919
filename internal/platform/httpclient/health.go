package httpclient

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker/v2"
)

// Name identifies the upstream in the readiness report.
func (c *Client) Name() string {
	return c.serviceName
}

// BreakerState returns the circuit breaker state ("closed", "half-open",
// "open").
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// HealthCheck reports the upstream as seen by the circuit breaker. No
// request is sent.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}
