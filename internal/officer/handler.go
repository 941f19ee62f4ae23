package officer

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tadipaar/pkg/platform/httputil"

	id "tadipaar/pkg/domain"
)

// Handler wires roster endpoints to the service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts roster endpoints. The router guards the group with the
// session middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/officers", h.HandleList)
	r.Post("/officers", h.HandleCreate)
	r.Delete("/officers/{id}", h.HandleDelete)
}

type createRequest struct {
	Name          string `json:"name"`
	BuckleNumber  string `json:"buckle_number"`
	Rank          string `json:"rank"`
	PoliceStation string `json:"police_station"`
	Mobile        string `json:"mobile"`
}

// HandleCreate handles POST /officers.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	officer, err := h.service.Create(ctx, CreateInput{
		Name:          req.Name,
		BuckleNumber:  req.BuckleNumber,
		Rank:          req.Rank,
		PoliceStation: req.PoliceStation,
		Mobile:        req.Mobile,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, officer)
}

// HandleList handles GET /officers.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	officers, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, officers)
}

// HandleDelete handles DELETE /officers/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	officerID, err := id.ParseOfficerID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), officerID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusNoContent, nil)
}
