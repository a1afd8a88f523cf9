package http

import (
	"net/http"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/utils"
)

// errorResponse is the body of every error answered with JSON.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError answers with the status mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if _, wErr := utils.WriteJSON(w, errorResponse{Error: err.Error()}, statusFromError(err)); wErr != nil {
		logger.FromRequest(r).Err(wErr).Msg("writing error response failed")
	}
}

// writeResult answers with v, using okStatus when ok and the status mapped
// from cause otherwise. The body is the full result in both cases so that
// partial information reaches the caller.
func writeResult(w http.ResponseWriter, r *http.Request, v any, ok bool, cause error, okStatus int) {
	status := okStatus
	if !ok {
		status = statusFromError(cause)
	}
	if _, err := utils.WriteJSON(w, v, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
