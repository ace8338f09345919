package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/retro-board/internal/platform/telemetry"
)

// Pipeline returns the service's middleware in registration order, outermost
// first. Pass the result to the router, which applies them with chi's Use.
func Pipeline(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	}
}
