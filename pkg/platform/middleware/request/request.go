// Package request assigns each request a correlation ID, honoring an
// upstream X-Request-ID when a proxy already set one.
package request

import (
	"net/http"

	"github.com/google/uuid"

	"tadipaar/pkg/requestcontext"
)

const headerRequestID = "X-Request-ID"

// RequestID stores a request ID in the context and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
