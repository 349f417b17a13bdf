package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/hlog"

	"github.com/mytheresa/supplier-catalog-chat/app/api"
)

// Recoverer turns a handler panic into a 500 {"error": ...} response and logs
// the panic with its stack through the request logger.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			hlog.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			if r.Header.Get("Connection") != "Upgrade" {
				api.ErrorResponse(w, r, http.StatusInternalServerError, fmt.Sprint(rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
