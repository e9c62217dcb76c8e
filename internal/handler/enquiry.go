package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/spacesoft/enquiry/internal/domain"
	"github.com/spacesoft/enquiry/internal/metrics"
	"github.com/spacesoft/enquiry/internal/service"
)

// EnquiryHandler serves the contact and book-call form endpoints. Each
// request runs one linear pipeline: method gate, body normalization,
// validation, notification, response. Preflight requests are answered by the
// CORS middleware before these handlers run.
type EnquiryHandler struct {
	service *service.EnquiryService
	logger  *slog.Logger
}

// NewEnquiryHandler creates a new enquiry handler.
func NewEnquiryHandler(svc *service.EnquiryService, logger *slog.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		service: svc,
		logger:  logger,
	}
}

// Contact handles /api/contact: a GET health probe with no side effects, a
// POST submission, and 405 for anything else.
func (h *EnquiryHandler) Contact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	case http.MethodPost:
		h.submit(w, r, service.FormContact)
	default:
		h.methodNotAllowed(w)
	}
}

// BookCall handles /api/book-call: POST only.
func (h *EnquiryHandler) BookCall(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.methodNotAllowed(w)
		return
	}
	h.submit(w, r, service.FormBookCall)
}

func (h *EnquiryHandler) methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, response{Success: false, Message: "Method not allowed"})
}

// submit runs the shared pipeline for one form submission.
func (h *EnquiryHandler) submit(w http.ResponseWriter, r *http.Request, form service.Form) {
	payload, err := parseBody(r)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(form), "rejected").Inc()
		errorResponse(w, r, h.logger, err)
		return
	}

	sub := domain.Normalize(payload)

	switch form {
	case service.FormContact:
		sub = sub.WithContactDefaults()
		err = sub.ValidateContact()
	case service.FormBookCall:
		err = sub.ValidateBookCall()
	}
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(form), "rejected").Inc()
		errorResponse(w, r, h.logger, err)
		return
	}

	if err := h.service.Submit(r.Context(), form, sub); err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(form), "failed").Inc()
		errorResponse(w, r, h.logger, err)
		return
	}

	metrics.SubmissionsTotal.WithLabelValues(string(form), "delivered").Inc()
	writeJSON(w, http.StatusOK, response{Success: true})
}

// parseBody reads the request body into a generic mapping. An absent or
// empty body degrades to an empty mapping. A body that is present but not
// parseable is a client input error, not a server fault.
func parseBody(r *http.Request) (map[string]any, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, domain.Wrap(err, domain.EINVALID, "enquiry.parse", "Invalid request body.")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err == nil {
		return payload, nil
	}

	// Some hosting layers hand the body over double-encoded as a JSON
	// string; decode the inner document in that case.
	var nested string
	if err := json.Unmarshal(raw, &nested); err == nil {
		if err := json.Unmarshal([]byte(nested), &payload); err == nil {
			return payload, nil
		}
	}

	return nil, domain.Invalid("enquiry.parse", "Invalid request body.")
}
