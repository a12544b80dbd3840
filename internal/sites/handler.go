package sites

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ombaa/ombaa/internal/users"
	"github.com/ombaa/ombaa/pkg/handlers"
	"github.com/ombaa/ombaa/pkg/routes"
)

// Handler provides HTTP endpoints for site operations. All routes require a
// solar_farm bearer token.
type Handler struct {
	sys    System
	auth   *users.Authenticator
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and authenticator.
func NewHandler(sys System, auth *users.Authenticator, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		auth:   auth,
		logger: logger.With("handler", "sites"),
	}
}

// Routes returns the route group definition for site endpoints.
func (h *Handler) Routes() routes.Group {
	requireOperator := func(next http.HandlerFunc) http.HandlerFunc {
		return h.auth.RequireRole(users.RoleSolarFarm, next)
	}

	return routes.Group{
		Prefix: "/marketplace/sites",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: requireOperator(h.List)},
			{Method: "POST", Pattern: "", Handler: requireOperator(h.Create)},
			{Method: "GET", Pattern: "/{id}/analytics", Handler: requireOperator(h.ListAnalytics)},
			{Method: "POST", Pattern: "/{id}/analytics", Handler: requireOperator(h.RecordAnalytics)},
		},
	}
}

// List returns the caller's sites.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ident, _ := users.IdentityFrom(r.Context())

	result, err := h.sys.ListForUser(r.Context(), ident.UserID)
	if err != nil {
		handlers.RespondError(w, h.logger, users.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create registers a new site under the caller's profile.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ident, _ := users.IdentityFrom(r.Context())

	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	site, err := h.sys.Create(r.Context(), ident.UserID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, site)
}

// ListAnalytics returns the observation history for an owned site.
func (h *Handler) ListAnalytics(w http.ResponseWriter, r *http.Request) {
	ident, _ := users.IdentityFrom(r.Context())

	siteID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	records, err := h.sys.ListAnalytics(r.Context(), ident.UserID, siteID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, records)
}

// RecordAnalytics stores one NDVI observation for an owned site.
func (h *Handler) RecordAnalytics(w http.ResponseWriter, r *http.Request) {
	ident, _ := users.IdentityFrom(r.Context())

	siteID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	var cmd AnalyticsCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	record, err := h.sys.RecordAnalytics(r.Context(), ident.UserID, siteID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, record)
}
