package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "tadipaar/pkg/domain-errors"
	"tadipaar/pkg/platform/httputil"
	"tadipaar/pkg/requestcontext"
)

// Handler wires authentication endpoints to the auth service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public login endpoint.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
}

// RegisterSession mounts endpoints that require an authenticated session.
func (h *Handler) RegisterSession(r chi.Router) {
	r.Post("/auth/logout", h.HandleLogout)
}

// RegisterAdmin mounts the account provisioning endpoint. The router guards
// this group with the admin token middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/auth/accounts", h.HandleCreateAccount)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token          string `json:"token"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Zone           string `json:"zone,omitempty"`
	Station        string `json:"station,omitempty"`
	IdentityNumber string `json:"identity_number,omitempty"`
}

// HandleLogin handles POST /auth/login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login rejected",
			"request_id", requestcontext.RequestID(ctx),
			"client_ip", requestcontext.ClientIP(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "login succeeded",
		"request_id", requestcontext.RequestID(ctx),
		"role", result.Actor.Role,
		"station", result.Actor.Station,
	)
	httputil.WriteJSON(w, http.StatusOK, loginResponse{
		Token:          result.Token,
		Name:           result.Name,
		Role:           string(result.Actor.Role),
		Zone:           result.Actor.Zone,
		Station:        result.Actor.Station,
		IdentityNumber: result.Actor.IdentityNumber,
	})
}

// HandleLogout handles POST /auth/logout.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.service.Logout(ctx); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusNoContent, nil)
}

type createAccountRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	Zone           string `json:"zone,omitempty"`
	Station        string `json:"station,omitempty"`
	IdentityNumber string `json:"identity_number,omitempty"`
}

// HandleCreateAccount handles POST /auth/accounts.
func (h *Handler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createAccountRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	account, err := h.service.CreateAccount(ctx, CreateAccountInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		Zone:           req.Zone,
		Station:        req.Station,
		IdentityNumber: req.IdentityNumber,
	})
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "account creation failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"id":    account.ID.String(),
		"email": account.Email,
		"role":  string(account.Role),
	})
}
