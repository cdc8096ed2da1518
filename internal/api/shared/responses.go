package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/skillpath/skillpath-api/internal/redact"
)

// ErrorResponse is the standard error body for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message, tagged with the request's trace ID.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes a sanitized JSON error response and logs the
// underlying error with redaction. The raw error string never reaches the
// client. 5xx responses log at ERROR, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Code:    status,
		TraceID: traceID,
	})
}
