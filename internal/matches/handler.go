package matches

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ombaa/ombaa/internal/users"
	"github.com/ombaa/ombaa/pkg/handlers"
	"github.com/ombaa/ombaa/pkg/routes"
)

// Handler provides HTTP endpoints for match operations.
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
		logger: logger.With("handler", "matches"),
	}
}

// Routes returns the route group definition for match endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/marketplace/matches",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.auth.Require(h.List)},
			{Method: "PUT", Pattern: "/{id}", Handler: h.auth.Require(h.Update)},
		},
	}
}

// List returns the matches visible to the caller's role.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ident, _ := users.IdentityFrom(r.Context())

	result, err := h.sys.ListForUser(r.Context(), ident)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update transitions a match status.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ident, _ := users.IdentityFrom(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	match, err := h.sys.UpdateStatus(r.Context(), ident, id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, match)
}
