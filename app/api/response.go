package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"
)

// OKResponse writes data as JSON with a 200 status.
func OKResponse(w http.ResponseWriter, r *http.Request, data any) {
	JSONResponse(w, r, http.StatusOK, data)
}

// MessageResponse writes {"message": msg} with the given status.
func MessageResponse(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSONResponse(w, r, status, map[string]string{"message": msg})
}

// ErrorResponse writes {"error": msg} with the given status.
func ErrorResponse(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSONResponse(w, r, status, map[string]string{"error": msg})
}

func JSONResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to encode JSON response")
	}
}

// QueryRequest is the body accepted by the free-text endpoints.
type QueryRequest struct {
	Query string `json:"query"`
}

// DecodeJSON decodes the request body into v, writing a 400 on failure.
// It reports whether decoding succeeded.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		ErrorResponse(w, r, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
