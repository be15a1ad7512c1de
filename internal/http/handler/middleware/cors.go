package middleware

import "net/http"

type corsMiddleware struct {
	allowOrigin string
}

func NewCORSMiddleware(allowOrigin string) *corsMiddleware {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return &corsMiddleware{allowOrigin: allowOrigin}
}

func (m *corsMiddleware) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", m.allowOrigin)
		h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With, "+RequestIDHeader)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Expose-Headers", RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
