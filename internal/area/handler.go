package area

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tadipaar/pkg/platform/httputil"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/geofence"
)

// Handler wires restricted area endpoints to the service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts restricted area endpoints. The router guards the group
// with the session middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/areas", h.HandleList)
	r.Post("/areas", h.HandleCreate)
	r.Delete("/areas/{id}", h.HandleDelete)
}

type createRequest struct {
	Name          string  `json:"name"`
	PoliceStation string  `json:"police_station"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	RadiusMeters  float64 `json:"radius_meters"`
}

// HandleCreate handles POST /areas.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	area, err := h.service.Create(ctx, CreateInput{
		Name:          req.Name,
		PoliceStation: req.PoliceStation,
		Center:        geofence.Point{Lat: req.Lat, Lon: req.Lon},
		RadiusMeters:  req.RadiusMeters,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, area)
}

// HandleList handles GET /areas.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, areas)
}

// HandleDelete handles DELETE /areas/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	areaID, err := id.ParseAreaID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), areaID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusNoContent, nil)
}
