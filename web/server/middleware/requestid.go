package middleware

import (
	"context"
	"net/http"

	"github.com/nrednav/cuid2"
)

type contextKey string

const contextKeyRequestID contextKey = "request_id"

// RequestIDFromContext returns the request ID stored in ctx, or the
// empty string if none was set.
func RequestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(contextKeyRequestID); v != nil {
		return v.(string) //nolint:errcheck,forcetypeassert // Acceptable risk; only set with constant key.
	}
	return ""
}

// RequestID tags each request with a generated unique ID, which is
// stored in the request context and echoed in the X-Request-Id response
// header. The ID only serves log correlation; no endpoint includes it
// in a response body.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := cuid2.Generate()
			w.Header().Set("X-Request-Id", id)

			ctx := context.WithValue(r.Context(), contextKeyRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
