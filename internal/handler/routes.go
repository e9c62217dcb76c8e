package handler

import (
	"net/http"

	"github.com/spacesoft/enquiry/internal/middleware"
)

// NewRouter wires the form endpoints with their CORS policies. Both hosting
// shells serve this mux; the listener shell registers /health and /metrics
// on top of it.
//
// The book-call endpoint keeps its own wildcard CORS policy — it must not be
// unified with the contact form's allow-list.
func NewRouter(h *EnquiryHandler, allowedOrigins []string) *http.ServeMux {
	contactCORS := middleware.NewCORSMiddleware(allowedOrigins)
	bookCallCORS := middleware.NewWildcardCORSMiddleware()

	mux := http.NewServeMux()
	mux.Handle("/api/contact", contactCORS.Handler(http.HandlerFunc(h.Contact)))
	mux.Handle("/api/book-call", bookCallCORS.Handler(http.HandlerFunc(h.BookCall)))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, response{Success: false, Message: "Not found"})
	})

	return mux
}
