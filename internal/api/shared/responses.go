package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// DataResponse is the standard success envelope: the payload under
// "data", plus optional paging metadata for search results.
type DataResponse struct {
	Data   any `json:"data"`
	Paging any `json:"paging,omitempty"`
}

// ErrorResponse is the standard failure envelope.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a success envelope with the given payload.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any) {
	RespondWithJSON(w, r, status, DataResponse{Data: data})
}

// RespondWithPage writes a success envelope carrying both the payload
// and its paging metadata.
func RespondWithPage(w http.ResponseWriter, r *http.Request, status int, data, paging any) {
	RespondWithJSON(w, r, status, DataResponse{Data: data, Paging: paging})
}

// RespondWithError writes a failure envelope with the given status code
// and message, logging it with the trace ID for correlation.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "sending error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, ErrorResponse{Errors: message})
}
