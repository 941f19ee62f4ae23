// Package httptransport assembles the HTTP surface: middleware chain, route
// groups, and operational endpoints. It carries no business logic; every
// route delegates to a domain handler.
package httptransport

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tadipaar/pkg/platform/httputil"
	"tadipaar/pkg/platform/middleware/admin"
	"tadipaar/pkg/platform/middleware/metadata"
	"tadipaar/pkg/platform/middleware/request"
	"tadipaar/pkg/platform/middleware/requesttime"

	"tadipaar/internal/analytics"
	"tadipaar/internal/area"
	"tadipaar/internal/auth"
	"tadipaar/internal/checkin"
	"tadipaar/internal/externee"
	"tadipaar/internal/officer"
	platformredis "tadipaar/internal/platform/redis"
)

// Dependencies is everything the router mounts.
type Dependencies struct {
	Logger     *slog.Logger
	AdminToken string

	Session func(http.Handler) http.Handler

	Auth      *auth.Handler
	Externees *externee.Handler
	Officers  *officer.Handler
	Areas     *area.Handler
	Checkins  *checkin.Handler
	Analytics *analytics.Handler

	// Optional backends surfaced by /healthz.
	DB    *sql.DB
	Redis *platformredis.Client
}

// NewRouter wires middleware and routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", healthz(deps))
	r.Handle("/metrics", promhttp.Handler())

	deps.Auth.Register(r)

	r.Group(func(r chi.Router) {
		r.Use(deps.Session)
		deps.Auth.RegisterSession(r)
		deps.Externees.Register(r)
		deps.Officers.Register(r)
		deps.Areas.Register(r)
		deps.Checkins.Register(r)
		deps.Analytics.Register(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(admin.RequireAdminToken(deps.AdminToken, deps.Logger))
		deps.Auth.RegisterAdmin(r)
	})

	return r
}

func healthz(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{"status": "ok"}
		healthy := true

		if deps.DB != nil {
			if err := deps.DB.PingContext(ctx); err != nil {
				status["postgres"] = "unreachable"
				healthy = false
			} else {
				status["postgres"] = "ok"
			}
		}
		if deps.Redis != nil {
			if err := deps.Redis.Health(ctx); err != nil {
				status["redis"] = "unreachable"
				healthy = false
			} else {
				status["redis"] = "ok"
			}
		}

		code := http.StatusOK
		if !healthy {
			status["status"] = "degraded"
			code = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, code, status)
	}
}
