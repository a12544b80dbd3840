package users

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ombaa/ombaa/pkg/handlers"
	"github.com/ombaa/ombaa/pkg/routes"
)

// Handler provides HTTP endpoints for registration, login, and profile
// management.
type Handler struct {
	sys    System
	auth   *Authenticator
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and authenticator.
func NewHandler(sys System, auth *Authenticator, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		auth:   auth,
		logger: logger.With("handler", "auth"),
	}
}

// Routes returns the route group definition for auth endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/auth",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/register", Handler: h.Register},
			{Method: "POST", Pattern: "/login", Handler: h.Login},
			{Method: "GET", Pattern: "/profile", Handler: h.auth.Require(h.Profile)},
			{Method: "PUT", Pattern: "/profile", Handler: h.auth.Require(h.UpdateProfile)},
		},
	}
}

// Register creates a user and its role profile. Duplicate email yields 409.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var cmd RegisterCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	user, err := h.sys.Register(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, user)
}

// Login verifies credentials and returns a bearer token with the user.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var cmd LoginCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	result, err := h.sys.Login(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Profile returns the authenticated user's role profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ident, _ := IdentityFrom(r.Context())

	profile, err := h.sys.Profile(r.Context(), ident)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile.Payload())
}

// UpdateProfile applies a partial update to the authenticated user's profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ident, _ := IdentityFrom(r.Context())

	var cmd UpdateProfileCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	profile, err := h.sys.UpdateProfile(r.Context(), ident, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile.Payload())
}
