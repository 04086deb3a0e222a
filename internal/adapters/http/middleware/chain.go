package middleware

import "net/http"

// Chain composes middleware into one, outermost first:
//
//	Chain(Recovery, RequestID, Logging)(handler) == Recovery(RequestID(Logging(handler)))
//
// Nil entries are skipped so callers can leave optional layers out, e.g. the
// OpenTelemetry middleware when telemetry is disabled.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			if middlewares[i] == nil {
				continue
			}
			handler = middlewares[i](handler)
		}
		return handler
	}
}
