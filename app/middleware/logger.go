package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// Logger attaches a request-scoped zerolog logger carrying a request id to
// every request and logs one line per completed request.
func Logger(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("http request")
		})
		return hlog.NewHandler(log)(
			hlog.RequestIDHandler("request_id", "X-Request-Id")(
				hlog.RemoteAddrHandler("remote_addr")(
					access(next),
				),
			),
		)
	}
}
