package testutil

import (
	"net/http"
	"time"

	"tadipaar/pkg/requestcontext"

	"tadipaar/internal/scope"
)

// WithActor injects an authenticated actor into the request context,
// simulating what the session middleware does.
func WithActor(req *http.Request, actor *scope.Actor) *http.Request {
	return req.WithContext(requestcontext.WithActor(req.Context(), actor))
}

// WithTime pins the request-scoped clock.
func WithTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
