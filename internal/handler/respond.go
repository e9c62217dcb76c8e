package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/spacesoft/enquiry/internal/domain"
)

// response is the wire body shared by every endpoint outcome.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// errorResponse maps a pipeline error onto the wire contract. The message
// comes from the domain error; underlying transport detail is logged
// server-side and never echoed to the caller.
func errorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	status := errorCodeToHTTPStatus(code)

	logError(logger, r, err, code, status)

	writeJSON(w, status, response{Success: false, Message: domain.ErrorMessage(err)})
}

// errorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.EUNCONFIGURED, domain.EUNAVAILABLE, domain.EINTERNAL:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// logError logs the error with appropriate level based on the outcome:
// client input errors are expected and log at info; a missing mail
// credential is an operational misconfiguration; transport failures carry
// the underlying cause.
func logError(logger *slog.Logger, r *http.Request, err error, code string, status int) {
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
	}

	switch {
	case code == domain.EUNCONFIGURED:
		logger.Error("mail service misconfigured", attrs...)
	case status >= 500:
		logger.Error("server error", attrs...)
	default:
		logger.Info("client error", attrs...)
	}
}
