package middleware

import (
	"net/http"
)

// defaultAllowedOrigins is the built-in allow-list used when configuration
// supplies none: local development plus the production domain with and
// without the www prefix.
var defaultAllowedOrigins = []string{
	"http://localhost:8080",
	"http://127.0.0.1:8080",
	"https://spacesoftconsultancy.com",
	"https://www.spacesoftconsultancy.com",
}

// CORSMiddleware applies the cross-origin policy for the form endpoints and
// short-circuits preflight requests with an empty 204.
//
// Two policies exist and must stay distinct:
//   - allow-list (contact form): echo the origin back only when it is in the
//     allow-list; grant "*" only to callers that send no Origin at all; an
//     unlisted origin gets no grant
//   - wildcard (book-call form): unconditional "*" — an intentional
//     relaxation for that public form
type CORSMiddleware struct {
	allowed  []string
	wildcard bool
}

// NewCORSMiddleware creates the allow-list policy. An empty list falls back
// to the built-in frontend origins.
func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	if len(allowedOrigins) == 0 {
		allowedOrigins = defaultAllowedOrigins
	}
	return &CORSMiddleware{
		allowed: allowedOrigins,
	}
}

// NewWildcardCORSMiddleware creates the unconditional-wildcard policy.
func NewWildcardCORSMiddleware() *CORSMiddleware {
	return &CORSMiddleware{
		wildcard: true,
	}
}

// Handler returns middleware that sets the CORS headers on every response
// and answers preflight requests before the wrapped handler runs.
func (m *CORSMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.setHeaders(w, r)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *CORSMiddleware) setHeaders(w http.ResponseWriter, r *http.Request) {
	if m.wildcard {
		w.Header().Set("Access-Control-Allow-Origin", "*")
	} else {
		origin := r.Header.Get("Origin")
		switch {
		case origin == "":
			// Non-browser caller: universal grant.
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case m.isAllowed(origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		// An origin outside the allow-list gets no grant at all.
	}

	w.Header().Set("Vary", "Origin")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func (m *CORSMiddleware) isAllowed(origin string) bool {
	for _, allowed := range m.allowed {
		if origin == allowed {
			return true
		}
	}
	return false
}
