package externee

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	dErrors "tadipaar/pkg/domain-errors"
	"tadipaar/pkg/platform/httputil"
	"tadipaar/pkg/requestcontext"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/period"
)

// Handler wires externment record endpoints to the service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts externment record endpoints. The router guards the group
// with the session middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/externees", h.HandleList)
	r.Post("/externees", h.HandleCreate)
	r.Get("/externees/{id}", h.HandleGet)
	r.Delete("/externees/{id}", h.HandleDelete)
}

type createRequest struct {
	Name             string `json:"name"`
	IdentityNumber   string `json:"identity_number"`
	PoliceStation    string `json:"police_station"`
	RestrictedAreaID string `json:"restricted_area_id"`
	PeriodStart      string `json:"period_start"`
	PeriodEnd        string `json:"period_end"`
}

type recordResponse struct {
	*ExternmentRecord
	Active    bool             `json:"active"`
	Remaining period.Remaining `json:"remaining"`
}

func toResponse(record *ExternmentRecord, now time.Time) recordResponse {
	return recordResponse{
		ExternmentRecord: record,
		Active:           record.IsActive(now),
		Remaining:        record.Remaining(now),
	}
}

// parseDay accepts a calendar date or a full timestamp.
func parseDay(raw, field string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeInvalidInput, field+" must be a YYYY-MM-DD date or RFC 3339 timestamp")
	}
	return t, nil
}

// HandleCreate handles POST /externees.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	areaID, err := id.ParseAreaID(req.RestrictedAreaID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	start, err := parseDay(req.PeriodStart, "period_start")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	end, err := parseDay(req.PeriodEnd, "period_end")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.service.Create(ctx, CreateInput{
		Name:             req.Name,
		IdentityNumber:   req.IdentityNumber,
		PoliceStation:    req.PoliceStation,
		RestrictedAreaID: areaID,
		PeriodStart:      start,
		PeriodEnd:        end,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toResponse(record, requestcontext.Now(ctx)))
}

// HandleList handles GET /externees.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.service.List(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	now := requestcontext.Now(ctx)
	out := make([]recordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, toResponse(record, now))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /externees/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recordID, err := id.ParseExterneeID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.service.Get(ctx, recordID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toResponse(record, requestcontext.Now(ctx)))
}

// HandleDelete handles DELETE /externees/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recordID, err := id.ParseExterneeID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Delete(ctx, recordID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusNoContent, nil)
}
