package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"tadipaar/pkg/requestcontext"
)

// RequireSession validates the bearer token, checks it against the
// revocation list, and injects the resulting actor into the request context.
// Unauthenticated requests never reach the handler; the scope evaluator
// still fails closed should a nil actor slip through.
func RequireSession(tokens *TokenManager, revocations RevocationList, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			claims, err := tokens.Validate(raw)
			if err != nil {
				logger.WarnContext(ctx, "rejected session token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				unauthorized(w, "invalid or expired token")
				return
			}

			revoked, err := revocations.IsRevoked(ctx, claims.ID)
			if err != nil {
				// Revocation backend down: reject rather than honor a
				// possibly revoked token.
				logger.ErrorContext(ctx, "revocation check failed", "error", err)
				unauthorized(w, "session check unavailable")
				return
			}
			if revoked {
				unauthorized(w, "session has been logged out")
				return
			}

			ctx = requestcontext.WithActor(ctx, claims.Actor())
			ctx = requestcontext.WithTokenID(ctx, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
