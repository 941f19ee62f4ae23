// Package requesttime captures one "now" per HTTP request so every operation
// handling the request sees the same instant.
package requesttime

import (
	"net/http"
	"time"

	"tadipaar/pkg/requestcontext"
)

// Middleware stores the current time in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
