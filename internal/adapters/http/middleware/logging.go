package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/clusterconf/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion events.
// It creates a child logger enriched with the request ID and correlation ID
// from context, stores it via logging.WithLogger for downstream use, and
// logs completion with method, path, status code, and duration.
//
// Health checks log at debug so that readiness polling does not flood the
// logs; server errors complete at error level.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			startLevel := slog.LevelInfo
			if strings.HasPrefix(r.URL.Path, "/health/") {
				startLevel = slog.LevelDebug
			}

			child.Log(ctx, startLevel, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				logHeaders(ctx, child, r.Header)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			endLevel := startLevel
			if rw.statusCode >= http.StatusInternalServerError {
				endLevel = slog.LevelError
			}

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			}
			if pattern := routePattern(r); pattern != "" {
				attrs = append(attrs, slog.String("route", pattern))
			}
			child.Log(ctx, endLevel, "request completed", attrs...)
		})
	}
}

func logHeaders(ctx context.Context, logger *slog.Logger, h http.Header) {
	headerAttrs := RedactHeaders(h)
	args := make([]any, 0, len(headerAttrs))
	for _, a := range headerAttrs {
		args = append(args, a)
	}
	logger.DebugContext(ctx, "request headers", args...)
}
