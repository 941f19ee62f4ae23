package analytics

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tadipaar/pkg/platform/httputil"
)

// Handler wires the dashboard endpoint to the service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the dashboard endpoint. The router guards the group with
// the session middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/dashboard/summary", h.HandleSummary)
}

// HandleSummary handles GET /dashboard/summary.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summarize(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}
