package checkin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tadipaar/pkg/platform/httputil"

	"tadipaar/internal/geofence"
)

// Handler wires hazari endpoints to the service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts hazari endpoints. The router guards the group with the
// session middleware; role checks live in the service.
func (h *Handler) Register(r chi.Router) {
	r.Get("/checkins", h.HandleListScoped)
	r.Get("/alerts", h.HandleListAlerts)
	r.Post("/me/checkins", h.HandleSubmit)
	r.Get("/me/checkins", h.HandleListOwn)
	r.Get("/me/order", h.HandleOrder)
	r.Post("/me/sos", h.HandleSOS)
}

type submitRequest struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	PhotoRef string  `json:"photo_ref"`
}

// HandleSubmit handles POST /me/checkins.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req submitRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	log, err := h.service.Submit(ctx, SubmitInput{
		Location: geofence.Point{Lat: req.Lat, Lon: req.Lon},
		PhotoRef: req.PhotoRef,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, log)
}

// HandleListScoped handles GET /checkins.
func (h *Handler) HandleListScoped(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.ListScoped(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, logs)
}

// HandleListOwn handles GET /me/checkins.
func (h *Handler) HandleListOwn(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.ListOwn(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, logs)
}

// HandleOrder handles GET /me/order.
func (h *Handler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Order(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

type sosRequest struct {
	Reason string  `json:"reason"`
	Detail string  `json:"detail"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// HandleSOS handles POST /me/sos.
func (h *Handler) HandleSOS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sosRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	alert, err := h.service.RaiseSOS(ctx, SOSInput{
		Reason:   req.Reason,
		Detail:   req.Detail,
		Location: geofence.Point{Lat: req.Lat, Lon: req.Lon},
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, alert)
}

// HandleListAlerts handles GET /alerts.
func (h *Handler) HandleListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.service.ListAlerts(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, alerts)
}
