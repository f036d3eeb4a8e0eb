package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request ID in and out of the server.
const RequestIDHeader = "X-Request-Id"

// RequestID reuses the incoming request ID or generates one, stores it in
// the context and echoes it in the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
